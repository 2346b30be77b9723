package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/healthdsl/healthdsl-backend/internal/config"
	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/i18n"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/catalog"
)

func previewCmd(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "List the preview sample catalog",
		Description: `Builds the preview catalog and lists every sample with its type name,
value (two decimals) and unit symbol.

Identifiers and timestamps are regenerated on every run.`,
		Flags: []cli.Flag{
			onlyFirstPartyFlag(cfg),
			formatFlag(cfg),
			localeFlag(cfg),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			samples := catalog.PreviewSamples(catalog.Options{
				OnlyFirstParty: cmd.Bool("only-first-party"),
			})

			return render(ctx, cmd, func(tr *i18n.Translator) any {
				return newSampleViews(samples, tr)
			})
		},
	}
}

func typesCmd(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List the measurement types",
		Flags: []cli.Flag{
			formatFlag(cfg),
			localeFlag(cfg),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return render(ctx, cmd, func(tr *i18n.Translator) any {
				return newTypeViews(domain.MeasurementTypes(), tr)
			})
		},
	}
}
