package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/healthdsl/healthdsl-backend/internal/adapter/repository/memory"
	"github.com/healthdsl/healthdsl-backend/internal/config"
	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/i18n"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/sample"
)

func recordCmd(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: "Build one sample from a metadata block and print it",
		Description: `The metadata block is the period (--start/--end) followed by the devices
(--device, repeatable, in order). Omitting both --start and --end leaves the block
without a period, which is rejected.

Times use RFC 3339, e.g. 2024-11-13T09:00:00Z. A missing bound defaults to the other.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Required: true,
				Usage:    "measurement type ID, as listed by the types command",
			},
			&cli.FloatFlag{
				Name:     "value",
				Required: true,
				Usage:    "measured value",
			},
			&cli.StringFlag{
				Name:  "unit",
				Usage: "measure the type in this unit instead of its default one",
			},
			&cli.StringFlag{
				Name:  "id",
				Usage: "sample ID (default: random UUID)",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "period start (RFC 3339)",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "period end (RFC 3339)",
			},
			&cli.StringSliceFlag{
				Name:  "device",
				Usage: "source device ID (iPhone, appleWatch, smartBand, unknown or custom)",
			},
			formatFlag(cfg),
			localeFlag(cfg),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			metadata, err := metadataFromCmd(cmd)
			if err != nil {
				return err
			}

			service := sample.NewSampleService(memory.NewSampleRepository())
			recorded, err := service.RecordSample(ctx, sample.RecordSampleInput{
				ID:       cmd.String("id"),
				TypeID:   cmd.String("type"),
				Unit:     domain.Unit(cmd.String("unit")),
				Value:    cmd.Float("value"),
				Metadata: metadata,
			})
			if err != nil {
				return fmt.Errorf("failed to record sample: %w", err)
			}

			return render(ctx, cmd, func(tr *i18n.Translator) any {
				return sampleViews{newSampleView(recorded, tr)}
			})
		},
	}
}

// metadataFromCmd assembles the metadata block in flag order: period, then devices
func metadataFromCmd(cmd *cli.Command) ([]domain.MetadataStatement, error) {
	var metadata []domain.MetadataStatement

	start, err := parseTime(cmd.String("start"))
	if err != nil {
		return nil, fmt.Errorf("invalid --start: %w", err)
	}
	end, err := parseTime(cmd.String("end"))
	if err != nil {
		return nil, fmt.Errorf("invalid --end: %w", err)
	}

	switch {
	case start != nil && end != nil:
		metadata = append(metadata, domain.NewPeriod(*start, *end))
	case start != nil:
		metadata = append(metadata, domain.NewPeriod(*start, *start))
	case end != nil:
		metadata = append(metadata, domain.NewPeriod(*end, *end))
	}

	for _, id := range cmd.StringSlice("device") {
		metadata = append(metadata, domain.LookupDevice(id))
	}

	return metadata, nil
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
