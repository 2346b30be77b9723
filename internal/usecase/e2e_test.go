//go:build integration

package usecase_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthdsl/healthdsl-backend/internal/adapter/repository/memory"
	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/catalog"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/sample"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/seeder"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/summary"
)

var (
	repo           domain.SampleRepository
	sampleService  *sample.SampleService
	summaryService *summary.SummaryService
	seededIDs      []string
)

// TestMain seeds a shared repository with the full preview catalog
func TestMain(m *testing.M) {
	ctx := context.Background()

	// 1. Storage
	repo = memory.NewSampleRepository()

	// 2. Services
	sampleService = sample.NewSampleService(repo)
	summaryService = summary.NewSummaryService(repo)

	// 3. Seed the preview catalog with stable identifiers
	n := 0
	generator := catalog.NewGenerator(catalog.WithIDSource(func() string {
		n++
		id := fmt.Sprintf("preview-%d", n)
		seededIDs = append(seededIDs, id)
		return id
	}))

	created, err := seeder.NewPreviewSeeder(repo, generator).Seed(ctx, catalog.Options{})
	if err != nil {
		panic(fmt.Sprintf("Failed to seed preview catalog: %v", err))
	}
	if created != 8 {
		panic(fmt.Sprintf("Expected 8 seeded samples, got %d", created))
	}

	os.Exit(m.Run())
}

func TestEndToEndFlow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 11, 13, 9, 0, 0, 0, time.UTC)

	// Record a watch heart rate reading
	recorded, err := sampleService.RecordSample(ctx, sample.RecordSampleInput{
		ID:     "e2e-heart-rate",
		TypeID: domain.HeartRate.ID,
		Unit:   domain.UnitBeatsPerMinute,
		Value:  60,
		Metadata: []domain.MetadataStatement{
			domain.NewPeriod(start, start.Add(time.Minute)),
			domain.DeviceAppleWatch,
		},
	})
	require.NoError(t, err)
	assert.True(t, recorded.FirstPartyOnly())

	// It reads back unchanged
	got, err := sampleService.GetSample(ctx, "e2e-heart-rate")
	require.NoError(t, err)
	assert.Equal(t, recorded, got)

	// And joins the preview heart rate in the summary
	summaries, err := summaryService.Summarize(ctx, domain.SampleFilter{TypeID: domain.HeartRate.ID})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	hr := summaries[0]
	assert.Equal(t, 2, hr.Count)
	assert.True(t, hr.Min.Equal(decimal.NewFromInt(60)), hr.Min.String())
	assert.True(t, hr.Max.Equal(decimal.NewFromInt(72)), hr.Max.String())
	assert.True(t, hr.Average.Equal(decimal.NewFromInt(66)), hr.Average.String())
}

func TestNegativeScenarios(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("devices before period", func(t *testing.T) {
		_, err := sampleService.RecordSample(ctx, sample.RecordSampleInput{
			TypeID:   domain.StepCount.ID,
			Value:    10,
			Metadata: []domain.MetadataStatement{domain.DeviceSmartBand, domain.NewPeriod(now, now)},
		})
		assert.ErrorIs(t, err, domain.ErrMetadataMustBeginWithPeriod)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := sampleService.RecordSample(ctx, sample.RecordSampleInput{
			ID:       seededIDs[0],
			TypeID:   domain.StepCount.ID,
			Value:    10,
			Metadata: []domain.MetadataStatement{domain.NewPeriod(now, now)},
		})
		assert.ErrorIs(t, err, domain.ErrSampleExists)
	})

	t.Run("missing sample", func(t *testing.T) {
		_, err := sampleService.GetSample(ctx, "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrSampleNotFound)
	})

	t.Run("reseeding creates nothing", func(t *testing.T) {
		n := 0
		generator := catalog.NewGenerator(catalog.WithIDSource(func() string {
			n++
			return fmt.Sprintf("preview-%d", n)
		}))
		created, err := seeder.NewPreviewSeeder(repo, generator).Seed(ctx, catalog.Options{})
		require.NoError(t, err)
		assert.Zero(t, created)
	})
}

func TestReadFlow(t *testing.T) {
	ctx := context.Background()

	all, err := sampleService.ListSamples(ctx, domain.SampleFilter{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), len(seededIDs))
	for i, id := range seededIDs {
		assert.Equal(t, id, all[i].ID, "seeded samples keep catalog order")
	}

	firstParty, err := sampleService.ListSamples(ctx, domain.SampleFilter{OnlyFirstParty: true})
	require.NoError(t, err)
	for _, s := range firstParty {
		assert.True(t, s.FirstPartyOnly(), s.ID)
		assert.False(t, s.HasDevice(domain.DeviceSmartBand.ID), s.ID)
	}

	steps, err := sampleService.ListSamples(ctx, domain.SampleFilter{TypeID: domain.StepCount.ID})
	require.NoError(t, err)
	assert.Len(t, steps, 2)
}
