package catalog

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/metrics"
)

// Options controls which preview samples are produced
type Options struct {
	// OnlyFirstParty drops the samples recorded by third-party or unknown devices
	OnlyFirstParty bool
}

// Generator builds the preview sample catalog
// Every call produces fresh identifiers and timestamps
type Generator struct {
	now   func() time.Time
	newID func() string
}

// Option configures a Generator
type Option func(*Generator)

// WithClock sets the time source used for sample periods
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithIDSource sets the identifier source used for sample IDs
func WithIDSource(newID func() string) Option {
	return func(g *Generator) {
		g.newID = newID
	}
}

// NewGenerator creates a Generator using the wall clock and random UUIDs unless overridden
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// PreviewSamples returns the preview catalog built with the default Generator
func PreviewSamples(opts Options) []domain.Sample {
	return defaultGenerator.PreviewSamples(opts)
}

// PreviewSamples returns the ordered preview catalog
// 8 samples by default, 4 (heart rate, two oxygen saturation, one distance) with OnlyFirstParty
func (g *Generator) PreviewSamples(opts Options) []domain.Sample {
	now := g.now()
	hourAgo := now.Add(-time.Hour)

	samples := domain.CollectSamples(
		domain.Group(
			g.build(domain.HeartRate.WithUnit(domain.UnitBeatsPerMinute), 72,
				domain.NewPeriod(now, now),
				domain.DeviceIPhone,
				domain.DeviceAppleWatch,
			),
			g.build(domain.OxygenSaturation, 0.82,
				domain.NewPeriod(now, hourAgo),
				domain.DeviceIPhone,
				domain.DeviceAppleWatch,
			),
			g.build(domain.OxygenSaturation, 0.80,
				domain.NewPeriod(now, now.Add(-2*time.Hour)),
				domain.DeviceIPhone,
				domain.DeviceAppleWatch,
			),
			g.build(domain.DistanceWalkingRunning, 1234.2,
				domain.NewPeriod(now, hourAgo),
				domain.DeviceIPhone,
			),
		),
		domain.When(!opts.OnlyFirstParty, func() domain.SampleGroup {
			return domain.Group(
				g.build(domain.StepCount, 1234,
					domain.NewPeriod(now, hourAgo),
					domain.DeviceSmartBand,
				),
				g.build(domain.OxygenSaturation, 98.5,
					domain.NewPeriod(now, hourAgo),
					domain.DeviceUnknown,
				),
				g.build(domain.StepCount, 1234,
					domain.NewPeriod(now, hourAgo),
					domain.DeviceSmartBand,
				),
				g.build(domain.OxygenSaturation, 98.5,
					domain.NewPeriod(now, hourAgo),
					domain.DeviceUnknown,
				),
			)
		}),
	)

	metrics.CatalogGenerations.WithLabelValues(strconv.FormatBool(opts.OnlyFirstParty)).Inc()
	return samples
}

func (g *Generator) build(t domain.MeasurementType, value float64, metadata ...domain.MetadataStatement) domain.Sample {
	sample := domain.MustBuildSample(g.newID(), t, value, metadata...)
	metrics.RecordBuilt(&sample)
	return sample
}
