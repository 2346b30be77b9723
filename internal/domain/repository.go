package domain

import (
	"context"
)

// SampleFilter narrows a sample listing
// Zero value matches every sample
type SampleFilter struct {
	TypeID         string // Empty matches every type
	OnlyFirstParty bool   // Keep only samples whose sources are all first-party devices
}

// Matches reports whether the sample passes the filter
func (f SampleFilter) Matches(s *Sample) bool {
	if f.TypeID != "" && s.Type.ID != f.TypeID {
		return false
	}
	if f.OnlyFirstParty && !s.FirstPartyOnly() {
		return false
	}
	return true
}

// SampleRepository defines the interface for sample storage operations
type SampleRepository interface {
	// GetByID retrieves a sample by its ID
	GetByID(ctx context.Context, id string) (*Sample, error)

	// Create stores a new sample
	// Returns ErrSampleExists if a sample with the same ID is already stored
	Create(ctx context.Context, sample *Sample) error

	// List retrieves the stored samples matching the filter, in insertion order
	List(ctx context.Context, filter SampleFilter) ([]*Sample, error)
}
