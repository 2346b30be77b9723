package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/healthdsl/healthdsl-backend/internal/config"
	"github.com/healthdsl/healthdsl-backend/internal/i18n"
	"github.com/healthdsl/healthdsl-backend/internal/logging"
	"github.com/healthdsl/healthdsl-backend/internal/metrics"
	"github.com/healthdsl/healthdsl-backend/internal/serializer"
)

const name = "healthdsl"

// NewCommand creates the root command; cfg supplies flag defaults
func NewCommand(cfg config.Config, version string) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Health measurement samples built from validated metadata blocks",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   cfg.LogLevel,
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(config.EnvLogLevel),
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "write builder metrics in prometheus text format to stderr after the command",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting", "name", name, "version", version)
			return ctx, nil
		},
		After: func(_ context.Context, cmd *cli.Command) error {
			if !cmd.Bool("metrics") {
				return nil
			}
			return metrics.WriteText(errWriter(cmd))
		},
		Commands: []*cli.Command{
			previewCmd(cfg),
			typesCmd(cfg),
			summaryCmd(cfg),
			recordCmd(cfg),
		},
	}
}

func formatFlag(cfg config.Config) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   cfg.Format,
		Usage:   fmt.Sprintf("output format (%s)", serializer.SupportedFormats()),
		Sources: cli.EnvVars(config.EnvFormat),
	}
}

func localeFlag(cfg config.Config) cli.Flag {
	return &cli.StringFlag{
		Name:    "locale",
		Value:   cfg.Locale,
		Usage:   "language of the display labels (en, es)",
		Sources: cli.EnvVars(config.EnvLocale),
	}
}

func onlyFirstPartyFlag(cfg config.Config) cli.Flag {
	return &cli.BoolFlag{
		Name:    "only-first-party",
		Value:   cfg.OnlyFirstParty,
		Usage:   "keep only samples recorded by the phone or the watch",
		Sources: cli.EnvVars(config.EnvOnlyFirstParty),
	}
}

// render serializes v to the command output in the requested format and locale
func render(ctx context.Context, cmd *cli.Command, build func(tr *i18n.Translator) any) error {
	format, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	tr, err := i18n.NewTranslator(cmd.String("locale"))
	if err != nil {
		return err
	}

	return serializer.NewWriter(format, outWriter(cmd)).Serialize(ctx, build(tr))
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
