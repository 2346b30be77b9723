package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/healthdsl/healthdsl-backend/internal/domain"
)

// sampleRepository implements domain.SampleRepository in process memory
type sampleRepository struct {
	mu      sync.RWMutex
	samples map[string]domain.Sample
	order   []string // Insertion order of IDs
}

// NewSampleRepository creates a new, empty sample repository
func NewSampleRepository() domain.SampleRepository {
	return &sampleRepository{
		samples: make(map[string]domain.Sample),
	}
}

// GetByID retrieves a sample by its ID
func (r *sampleRepository) GetByID(ctx context.Context, id string) (*domain.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sample, ok := r.samples[id]
	if !ok {
		return nil, fmt.Errorf("sample %q: %w", id, domain.ErrSampleNotFound)
	}

	return cloneSample(sample), nil
}

// Create stores a new sample
func (r *sampleRepository) Create(ctx context.Context, sample *domain.Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sample == nil {
		return domain.ErrNilSample
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.samples[sample.ID]; exists {
		return fmt.Errorf("sample %q: %w", sample.ID, domain.ErrSampleExists)
	}

	r.samples[sample.ID] = *cloneSample(*sample)
	r.order = append(r.order, sample.ID)

	return nil
}

// List retrieves the samples matching the filter, in insertion order
func (r *sampleRepository) List(ctx context.Context, filter domain.SampleFilter) ([]*domain.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	samples := make([]*domain.Sample, 0, len(r.order))
	for _, id := range r.order {
		sample := r.samples[id]
		if !filter.Matches(&sample) {
			continue
		}
		samples = append(samples, cloneSample(sample))
	}

	return samples, nil
}

// cloneSample copies the sample so callers never share the stored device slice
func cloneSample(s domain.Sample) *domain.Sample {
	c := domain.NewSample(s.ID, s.Value, s.Type, s.Period, s.DeviceSources)
	return &c
}
