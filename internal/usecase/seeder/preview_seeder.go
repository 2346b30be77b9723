package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/catalog"
)

// CatalogSource produces the samples to seed
type CatalogSource interface {
	PreviewSamples(opts catalog.Options) []domain.Sample
}

// PreviewSeeder loads the preview catalog into a sample repository
type PreviewSeeder struct {
	repo   domain.SampleRepository
	source CatalogSource
}

// NewPreviewSeeder creates a new PreviewSeeder instance
func NewPreviewSeeder(repo domain.SampleRepository, source CatalogSource) *PreviewSeeder {
	return &PreviewSeeder{
		repo:   repo,
		source: source,
	}
}

// Seed ensures every preview sample exists in the repository
// If a sample doesn't exist, it creates it
// Returns the number of samples created
func (s *PreviewSeeder) Seed(ctx context.Context, opts catalog.Options) (int, error) {
	created := 0

	for _, sample := range s.source.PreviewSamples(opts) {
		// Try to get the sample by ID
		_, err := s.repo.GetByID(ctx, sample.ID)
		if err == nil {
			// Sample exists, no action needed
			continue
		}
		if !errors.Is(err, domain.ErrSampleNotFound) {
			return created, fmt.Errorf("failed to look up sample %q: %w", sample.ID, err)
		}

		// Validate before creating
		if err := sample.Validate(); err != nil {
			return created, fmt.Errorf("invalid preview sample %q: %w", sample.ID, err)
		}

		if err := s.repo.Create(ctx, &sample); err != nil {
			return created, fmt.Errorf("failed to seed sample %q: %w", sample.ID, err)
		}
		created++
	}

	slog.Debug("preview catalog seeded",
		"created", created,
		"only_first_party", opts.OnlyFirstParty)

	return created, nil
}
