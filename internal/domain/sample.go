package domain

import (
	"github.com/shopspring/decimal"
)

// Quantity represents a measured magnitude together with its unit
type Quantity struct {
	Value decimal.Decimal
	Unit  Unit
}

// NewQuantity creates a quantity from a raw numeric magnitude
func NewQuantity(value float64, unit Unit) Quantity {
	return Quantity{
		Value: decimal.NewFromFloat(value),
		Unit:  unit,
	}
}

// Sample represents one immutable health observation
// Adheres to the record schema: exactly one period, zero or more device sources
type Sample struct {
	ID            string
	Value         Quantity
	Type          MeasurementType
	Period        Period
	DeviceSources []Device // Ordered as given; may be empty
}

// NewSample assembles a sample from already-parsed parts
// No structural validation happens here: BuildSample is the validated entry point
func NewSample(id string, value Quantity, t MeasurementType, period Period, devices []Device) Sample {
	sources := make([]Device, len(devices))
	copy(sources, devices)

	return Sample{
		ID:            id,
		Value:         value,
		Type:          t,
		Period:        period,
		DeviceSources: sources,
	}
}

// Validate ensures the sample adheres to domain rules
// Returns an error if validation fails
func (s *Sample) Validate() error {
	if s.ID == "" {
		return ErrEmptySampleID
	}

	if s.Value.Unit != s.Type.Unit {
		return ErrUnitMismatch
	}

	return nil
}

// HasDevice reports whether the device with the given ID is one of the sample sources
func (s *Sample) HasDevice(id string) bool {
	for _, d := range s.DeviceSources {
		if d.ID == id {
			return true
		}
	}
	return false
}

// FirstPartyOnly reports whether every source of the sample is a first-party device
// A sample without sources is not first-party
func (s *Sample) FirstPartyOnly() bool {
	if len(s.DeviceSources) == 0 {
		return false
	}
	for _, d := range s.DeviceSources {
		if !d.FirstParty() {
			return false
		}
	}
	return true
}
