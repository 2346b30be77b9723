package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/healthdsl/healthdsl-backend/internal/config"
	"github.com/healthdsl/healthdsl-backend/internal/domain"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg := config.Config{LogLevel: "error", Locale: "en", Format: "json"}
	cmd := NewCommand(cfg, "test")

	var stdout, stderr bytes.Buffer
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return stdout.String(), stderr.String(), err
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantTypes []string
	}{
		{
			name: "all samples",
			args: []string{"preview"},
			wantTypes: []string{
				"heartRate", "oxygenSaturation", "oxygenSaturation", "distanceWalkingRunning",
				"stepCount", "oxygenSaturation", "stepCount", "oxygenSaturation",
			},
		},
		{
			name:      "only first party",
			args:      []string{"preview", "--only-first-party"},
			wantTypes: []string{"heartRate", "oxygenSaturation", "oxygenSaturation", "distanceWalkingRunning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)

			var views []sampleView
			require.NoError(t, json.Unmarshal([]byte(out), &views))

			types := make([]string, 0, len(views))
			for _, v := range views {
				types = append(types, v.TypeID)
			}
			assert.Equal(t, tt.wantTypes, types)

			assert.Equal(t, "72.00", views[0].Value)
			assert.Equal(t, "bpm", views[0].Unit)
			assert.Equal(t, []string{"iPhone", "Apple Watch"}, views[0].Devices)
		})
	}
}

func TestPreview_LocalizedTable(t *testing.T) {
	out, _, err := run(t, "preview", "--format", "table", "--locale", "es")
	require.NoError(t, err)

	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "Frecuencia cardíaca")
	assert.Contains(t, out, "Pulsera inteligente")
	assert.Contains(t, out, "1234.20")
}

func TestPreview_InvalidFormat(t *testing.T) {
	_, _, err := run(t, "preview", "--format", "xml")
	require.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, _, err := run(t, "types", "--format", "yaml")
	require.NoError(t, err)

	var views []typeView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	require.Len(t, views, len(domain.MeasurementTypes()))
	assert.Equal(t, typeView{ID: "heartRate", Name: "Heart Rate", Unit: "Hz"}, views[0])
}

func TestSummary(t *testing.T) {
	out, _, err := run(t, "summary", "--type", "stepCount")
	require.NoError(t, err)

	var views []summaryView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].Count)
	assert.Equal(t, "1234.00", views[0].Average)

	out, _, err = run(t, "summary", "--only-first-party", "--type", "stepCount")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	assert.Empty(t, views)

	_, _, err = run(t, "summary", "--type", "bloodPressure")
	assert.ErrorIs(t, err, domain.ErrUnknownMeasurementType)
}

func TestRecord(t *testing.T) {
	out, _, err := run(t, "record",
		"--id", "hr-1",
		"--type", "heartRate",
		"--unit", "bpm",
		"--value", "72",
		"--start", "2024-11-13T09:00:00Z",
		"--device", "iPhone",
		"--device", "appleWatch",
	)
	require.NoError(t, err)

	var views []sampleView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)

	got := views[0]
	assert.Equal(t, "hr-1", got.ID)
	assert.Equal(t, "72.00", got.Value)
	assert.Equal(t, "bpm", got.Unit)
	assert.Equal(t, got.Start, got.End)
	assert.Equal(t, []string{"iPhone", "Apple Watch"}, got.Devices)
}

func TestRecord_CustomDeviceNameVerbatim(t *testing.T) {
	for _, format := range []string{"json", "table"} {
		t.Run(format, func(t *testing.T) {
			out, _, err := run(t, "record",
				"--type", "stepCount",
				"--value", "10",
				"--start", "2024-11-13T09:00:00Z",
				"--device", "band%d",
				"--format", format,
				"--locale", "es",
			)
			require.NoError(t, err)
			assert.Contains(t, out, "band%d")
			assert.NotContains(t, out, "MISSING")
		})
	}
}

func TestRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		errMsg  string
	}{
		{
			name:    "devices without period",
			args:    []string{"record", "--type", "stepCount", "--value", "10", "--device", "smartBand"},
			wantErr: domain.ErrMetadataMustBeginWithPeriod,
		},
		{
			name:    "unknown type",
			args:    []string{"record", "--type", "bloodPressure", "--value", "10", "--start", "2024-11-13T09:00:00Z"},
			wantErr: domain.ErrUnknownMeasurementType,
		},
		{
			name:   "malformed start",
			args:   []string{"record", "--type", "stepCount", "--value", "10", "--start", "yesterday"},
			errMsg: "invalid --start",
		},
		{
			name:   "missing value",
			args:   []string{"record", "--type", "stepCount"},
			errMsg: "value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestMetricsFlag(t *testing.T) {
	_, stderr, err := run(t, "--metrics", "preview", "--only-first-party")
	require.NoError(t, err)

	assert.Contains(t, stderr, "healthdsl_samples_built_total")
	assert.Contains(t, stderr, `healthdsl_catalog_generations_total{only_first_party="true"}`)

	_, stderr, err = run(t, "preview")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "healthdsl_samples_built_total")
}
