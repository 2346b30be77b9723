package summary

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/healthdsl/healthdsl-backend/internal/domain"
)

// TypeSummary represents the statistics of one measurement type in one unit
type TypeSummary struct {
	Type    domain.MeasurementType
	Count   int
	Min     decimal.Decimal
	Max     decimal.Decimal
	Average decimal.Decimal
}

// SummaryService handles dashboard-related operations
type SummaryService struct {
	SampleRepo domain.SampleRepository
}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(sampleRepo domain.SampleRepository) *SummaryService {
	return &SummaryService{
		SampleRepo: sampleRepo,
	}
}

type summaryKey struct {
	typeID string
	unit   domain.Unit
}

// Summarize calculates per-type statistics of the stored samples
// Logic:
//   - Samples are grouped by measurement type ID and unit (values in different units are never mixed)
//   - Each group reports count, min, max and average
//   - Groups are ordered by type ID, then unit
func (s *SummaryService) Summarize(ctx context.Context, filter domain.SampleFilter) ([]TypeSummary, error) {
	samples, err := s.SampleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}

	groups := make(map[summaryKey]*TypeSummary)
	totals := make(map[summaryKey]decimal.Decimal)

	for _, sample := range samples {
		key := summaryKey{typeID: sample.Type.ID, unit: sample.Value.Unit}
		value := sample.Value.Value

		group, ok := groups[key]
		if !ok {
			group = &TypeSummary{
				Type: sample.Type,
				Min:  value,
				Max:  value,
			}
			groups[key] = group
		}

		group.Count++
		group.Min = decimal.Min(group.Min, value)
		group.Max = decimal.Max(group.Max, value)
		totals[key] = totals[key].Add(value)
	}

	keys := make([]summaryKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].typeID != keys[j].typeID {
			return keys[i].typeID < keys[j].typeID
		}
		return keys[i].unit < keys[j].unit
	})

	summaries := make([]TypeSummary, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		group.Average = totals[key].Div(decimal.NewFromInt(int64(group.Count)))
		summaries = append(summaries, *group)
	}

	return summaries, nil
}
