// Package metrics holds the prometheus collectors for sample construction.
//
// Collectors live on Registry, not on the prometheus default registry.
package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/healthdsl/healthdsl-backend/internal/domain"
)

// Failure reasons used as the "reason" label of BuildFailures
const (
	ReasonStructural  = "structural"
	ReasonValidation  = "validation"
	ReasonUnknownType = "unknown_type"
	ReasonStorage     = "storage"
)

var (
	// Registry holds every collector of this package
	Registry = prometheus.NewRegistry()

	// SamplesBuilt counts samples assembled by the structured builder
	SamplesBuilt = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthdsl_samples_built_total",
			Help: "Total number of samples assembled from a metadata block",
		},
		[]string{"type_id"},
	)

	// BuildFailures counts rejected sample constructions
	BuildFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthdsl_sample_build_failures_total",
			Help: "Total number of rejected sample constructions",
		},
		[]string{"reason"},
	)

	// CatalogGenerations counts preview catalog generations
	CatalogGenerations = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthdsl_catalog_generations_total",
			Help: "Total number of preview catalog generations",
		},
		[]string{"only_first_party"},
	)
)

// RecordBuilt records a successfully built sample
func RecordBuilt(s *domain.Sample) {
	SamplesBuilt.WithLabelValues(s.Type.ID).Inc()
}

// RecordFailure records a failed construction, classified by its cause
func RecordFailure(err error) {
	BuildFailures.WithLabelValues(FailureReason(err)).Inc()
}

// FailureReason maps a construction error to its reason label
func FailureReason(err error) string {
	switch {
	case domain.IsStructuralError(err):
		return ReasonStructural
	case errors.Is(err, domain.ErrUnknownMeasurementType):
		return ReasonUnknownType
	case errors.Is(err, domain.ErrEmptySampleID), errors.Is(err, domain.ErrUnitMismatch):
		return ReasonValidation
	default:
		return ReasonStorage
	}
}

// WriteText writes the text exposition of every collector to w
func WriteText(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
