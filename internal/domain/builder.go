package domain

import (
	"errors"
	"fmt"
)

// MetadataStatement is one statement of a sample metadata block
// Only Period and Device implement it
type MetadataStatement interface {
	metadataStatement()
}

func (Period) metadataStatement() {}
func (Device) metadataStatement() {}

// metadataState is the position of the parser within a metadata block
type metadataState int

const (
	expectingPeriod metadataState = iota
	collectingDevices
)

// BuildSample assembles a sample from an identifier, a measurement type, a raw value
// and a metadata block
// Logic:
//  1. The value is measured in t.Unit
//  2. The first metadata statement must be the sample period
//  3. Every following statement must be a device, kept in the order given
//
// Returns ErrMetadataMustBeginWithPeriod when the block does not start with a period
func BuildSample(id string, t MeasurementType, value float64, metadata ...MetadataStatement) (Sample, error) {
	period, devices, err := parseMetadata(metadata)
	if err != nil {
		return Sample{}, fmt.Errorf("sample %q: %w", id, err)
	}

	return NewSample(id, NewQuantity(value, t.Unit), t, period, devices), nil
}

// MustBuildSample is like BuildSample but panics on a malformed metadata block
// Intended for static sample literals only
func MustBuildSample(id string, t MeasurementType, value float64, metadata ...MetadataStatement) Sample {
	sample, err := BuildSample(id, t, value, metadata...)
	if err != nil {
		panic(err)
	}
	return sample
}

// IsStructuralError reports whether err comes from a malformed metadata block
func IsStructuralError(err error) bool {
	return errors.Is(err, ErrMetadataMustBeginWithPeriod) ||
		errors.Is(err, ErrUnexpectedPeriod) ||
		errors.Is(err, ErrUnsupportedStatement)
}

// parseMetadata splits a metadata block into its period and device sources in a single pass
func parseMetadata(block []MetadataStatement) (Period, []Device, error) {
	state := expectingPeriod
	var period Period
	devices := make([]Device, 0, len(block))

	for i, stmt := range block {
		switch state {
		case expectingPeriod:
			p, ok := stmt.(Period)
			if !ok {
				return Period{}, nil, fmt.Errorf("%w: statement %d is %s", ErrMetadataMustBeginWithPeriod, i, describeStatement(stmt))
			}
			period = p
			state = collectingDevices

		case collectingDevices:
			switch s := stmt.(type) {
			case Device:
				devices = append(devices, s)
			case Period:
				return Period{}, nil, fmt.Errorf("%w: statement %d is a second period", ErrUnexpectedPeriod, i)
			default:
				return Period{}, nil, fmt.Errorf("%w: statement %d is %s", ErrUnsupportedStatement, i, describeStatement(stmt))
			}
		}
	}

	if state == expectingPeriod {
		return Period{}, nil, fmt.Errorf("%w: block is empty", ErrMetadataMustBeginWithPeriod)
	}

	return period, devices, nil
}

func describeStatement(stmt MetadataStatement) string {
	switch s := stmt.(type) {
	case nil:
		return "nil"
	case Device:
		return fmt.Sprintf("device %q", s.ID)
	case Period:
		return "a period"
	default:
		return fmt.Sprintf("%T", stmt)
	}
}
