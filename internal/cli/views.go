package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/healthdsl/healthdsl-backend/internal/domain"
	"github.com/healthdsl/healthdsl-backend/internal/i18n"
	"github.com/healthdsl/healthdsl-backend/internal/usecase/summary"
)

// sampleView is the display row of one sample: type name, value with two decimals, unit symbol
type sampleView struct {
	ID      string    `json:"id" yaml:"id"`
	TypeID  string    `json:"typeId" yaml:"typeId"`
	Type    string    `json:"type" yaml:"type"`
	Value   string    `json:"value" yaml:"value"`
	Unit    string    `json:"unit" yaml:"unit"`
	Start   time.Time `json:"start" yaml:"start"`
	End     time.Time `json:"end" yaml:"end"`
	Devices []string  `json:"devices" yaml:"devices"`
}

type sampleViews []sampleView

func newSampleView(s *domain.Sample, tr *i18n.Translator) sampleView {
	devices := make([]string, 0, len(s.DeviceSources))
	for _, d := range s.DeviceSources {
		devices = append(devices, tr.Label(d.Name))
	}

	return sampleView{
		ID:      s.ID,
		TypeID:  s.Type.ID,
		Type:    tr.Label(s.Type.Name),
		Value:   s.Value.Value.StringFixed(2),
		Unit:    s.Type.Unit.Symbol(),
		Start:   s.Period.Start,
		End:     s.Period.End,
		Devices: devices,
	}
}

func newSampleViews(samples []domain.Sample, tr *i18n.Translator) sampleViews {
	views := make(sampleViews, 0, len(samples))
	for i := range samples {
		views = append(views, newSampleView(&samples[i], tr))
	}
	return views
}

func (v sampleViews) TableHeader() []string {
	return []string{"TYPE", "VALUE", "UNIT", "DEVICES"}
}

func (v sampleViews) TableRows() [][]string {
	rows := make([][]string, 0, len(v))
	for _, s := range v {
		rows = append(rows, []string{s.Type, s.Value, s.Unit, strings.Join(s.Devices, ", ")})
	}
	return rows
}

type typeView struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Unit string `json:"unit" yaml:"unit"`
}

type typeViews []typeView

func newTypeViews(types []domain.MeasurementType, tr *i18n.Translator) typeViews {
	views := make(typeViews, 0, len(types))
	for _, t := range types {
		views = append(views, typeView{ID: t.ID, Name: tr.Label(t.Name), Unit: t.Unit.Symbol()})
	}
	return views
}

func (v typeViews) TableHeader() []string {
	return []string{"ID", "NAME", "UNIT"}
}

func (v typeViews) TableRows() [][]string {
	rows := make([][]string, 0, len(v))
	for _, t := range v {
		rows = append(rows, []string{t.ID, t.Name, t.Unit})
	}
	return rows
}

type summaryView struct {
	TypeID  string `json:"typeId" yaml:"typeId"`
	Type    string `json:"type" yaml:"type"`
	Unit    string `json:"unit" yaml:"unit"`
	Count   int    `json:"count" yaml:"count"`
	Min     string `json:"min" yaml:"min"`
	Max     string `json:"max" yaml:"max"`
	Average string `json:"average" yaml:"average"`
}

type summaryViews []summaryView

func newSummaryViews(summaries []summary.TypeSummary, tr *i18n.Translator) summaryViews {
	views := make(summaryViews, 0, len(summaries))
	for _, s := range summaries {
		views = append(views, summaryView{
			TypeID:  s.Type.ID,
			Type:    tr.Label(s.Type.Name),
			Unit:    s.Type.Unit.Symbol(),
			Count:   s.Count,
			Min:     s.Min.StringFixed(2),
			Max:     s.Max.StringFixed(2),
			Average: s.Average.StringFixed(2),
		})
	}
	return views
}

func (v summaryViews) TableHeader() []string {
	return []string{"TYPE", "UNIT", "COUNT", "MIN", "MAX", "AVERAGE"}
}

func (v summaryViews) TableRows() [][]string {
	rows := make([][]string, 0, len(v))
	for _, s := range v {
		rows = append(rows, []string{s.Type, s.Unit, strconv.Itoa(s.Count), s.Min, s.Max, s.Average})
	}
	return rows
}
