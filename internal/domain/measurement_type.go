package domain

// Unit represents the symbol a measured value is expressed in
type Unit string

const (
	UnitHertz          Unit = "Hz"
	UnitBeatsPerMinute Unit = "bpm"
	UnitPercent        Unit = "%"
	UnitCount          Unit = "count"
	UnitMeters         Unit = "m"
)

// Symbol returns the display symbol of the unit
func (u Unit) Symbol() string {
	return string(u)
}

// MeasurementType identifies a kind of health measurement
// Types are immutable: use WithUnit to derive a copy with a different unit
type MeasurementType struct {
	ID   string // Stable key, unique per kind
	Name string // Display label, also the lookup key for localized names
	Unit Unit
}

// Main health data types
var (
	HeartRate = MeasurementType{
		ID:   "heartRate",
		Name: "Heart Rate",
		Unit: UnitHertz,
	}

	OxygenSaturation = MeasurementType{
		ID:   "oxygenSaturation",
		Name: "Oxygen Saturation",
		Unit: UnitPercent,
	}

	StepCount = MeasurementType{
		ID:   "stepCount",
		Name: "Step Count",
		Unit: UnitCount,
	}

	DistanceWalkingRunning = MeasurementType{
		ID:   "distanceWalkingRunning",
		Name: "Distance Walking Running",
		Unit: UnitMeters,
	}
)

// WithUnit returns a copy of the type measured with the given unit
// ID and Name are preserved; the receiver is left untouched
func (t MeasurementType) WithUnit(unit Unit) MeasurementType {
	return MeasurementType{
		ID:   t.ID,
		Name: t.Name,
		Unit: unit,
	}
}

// MeasurementTypes returns the catalog of known measurement types
func MeasurementTypes() []MeasurementType {
	return []MeasurementType{
		HeartRate,
		OxygenSaturation,
		StepCount,
		DistanceWalkingRunning,
	}
}

// LookupMeasurementType resolves a measurement type from the catalog by its ID
func LookupMeasurementType(id string) (MeasurementType, error) {
	for _, t := range MeasurementTypes() {
		if t.ID == id {
			return t, nil
		}
	}
	return MeasurementType{}, ErrUnknownMeasurementType
}
