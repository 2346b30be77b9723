package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/healthdsl/healthdsl-backend/internal/adapter/repository/memory"
	"github.com/healthdsl/healthdsl-backend/internal/config"
	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/i18n"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/catalog"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/seeder"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/summary"
)

func summaryCmd(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Summarize the preview catalog per measurement type",
		Flags: []cli.Flag{
			onlyFirstPartyFlag(cfg),
			&cli.StringFlag{
				Name:  "type",
				Usage: "restrict the summary to one measurement type ID",
			},
			formatFlag(cfg),
			localeFlag(cfg),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			repo := memory.NewSampleRepository()
			opts := catalog.Options{OnlyFirstParty: cmd.Bool("only-first-party")}

			if _, err := seeder.NewPreviewSeeder(repo, catalog.NewGenerator()).Seed(ctx, opts); err != nil {
				return fmt.Errorf("failed to seed preview catalog: %w", err)
			}

			filter := domain.SampleFilter{TypeID: cmd.String("type")}
			if filter.TypeID != "" {
				if _, err := domain.LookupMeasurementType(filter.TypeID); err != nil {
					return fmt.Errorf("invalid type %q: %w", filter.TypeID, err)
				}
			}

			summaries, err := summary.NewSummaryService(repo).Summarize(ctx, filter)
			if err != nil {
				return err
			}

			return render(ctx, cmd, func(tr *i18n.Translator) any {
				return newSummaryViews(summaries, tr)
			})
		},
	}
}
