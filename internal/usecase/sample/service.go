package sample

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/metrics"
)

// RecordSampleInput represents the input for recording a sample
type RecordSampleInput struct {
	ID       string      // Optional: a random UUID is used when empty
	TypeID   string      // Measurement type from the catalog
	Unit     domain.Unit // Optional: re-measures the type in this unit
	Value    float64
	Metadata []domain.MetadataStatement // Period first, then devices
}

// SampleService handles sample recording and retrieval
type SampleService struct {
	SampleRepo domain.SampleRepository
}

// NewSampleService creates a new SampleService instance
func NewSampleService(sampleRepo domain.SampleRepository) *SampleService {
	return &SampleService{
		SampleRepo: sampleRepo,
	}
}

// RecordSample builds a sample through the structured builder and stores it
// Logic:
//  1. Resolve the measurement type, applying the unit override if any
//  2. Build the sample from the metadata block (rejects blocks without a leading period)
//  3. Validate and store it
func (s *SampleService) RecordSample(ctx context.Context, input RecordSampleInput) (*domain.Sample, error) {
	measurementType, err := domain.LookupMeasurementType(input.TypeID)
	if err != nil {
		metrics.RecordFailure(err)
		return nil, fmt.Errorf("invalid type %q: %w", input.TypeID, err)
	}
	if input.Unit != "" {
		measurementType = measurementType.WithUnit(input.Unit)
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	sample, err := domain.BuildSample(id, measurementType, input.Value, input.Metadata...)
	if err != nil {
		metrics.RecordFailure(err)
		return nil, err
	}

	if err := sample.Validate(); err != nil {
		metrics.RecordFailure(err)
		return nil, fmt.Errorf("invalid sample %q: %w", id, err)
	}

	if err := s.SampleRepo.Create(ctx, &sample); err != nil {
		metrics.RecordFailure(err)
		return nil, fmt.Errorf("failed to store sample: %w", err)
	}

	metrics.RecordBuilt(&sample)
	slog.Debug("sample recorded",
		"id", sample.ID,
		"type", sample.Type.ID,
		"devices", len(sample.DeviceSources))

	return &sample, nil
}

// GetSample retrieves a stored sample by its ID
func (s *SampleService) GetSample(ctx context.Context, id string) (*domain.Sample, error) {
	if id == "" {
		return nil, domain.ErrEmptySampleID
	}
	return s.SampleRepo.GetByID(ctx, id)
}

// ListSamples retrieves the stored samples matching the filter
func (s *SampleService) ListSamples(ctx context.Context, filter domain.SampleFilter) ([]*domain.Sample, error) {
	if filter.TypeID != "" {
		if _, err := domain.LookupMeasurementType(filter.TypeID); err != nil {
			return nil, fmt.Errorf("invalid type filter %q: %w", filter.TypeID, err)
		}
	}

	samples, err := s.SampleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	return samples, nil
}
