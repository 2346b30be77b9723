package domain

import "errors"

var (
	// Structural misuse of a sample metadata block
	ErrMetadataMustBeginWithPeriod = errors.New("metadata block must begin with a period")
	ErrUnexpectedPeriod            = errors.New("metadata block may contain only one period")
	ErrUnsupportedStatement        = errors.New("unsupported metadata statement")

	ErrEmptySampleID          = errors.New("sample ID cannot be empty")
	ErrUnitMismatch           = errors.New("sample value unit must match the measurement type unit")
	ErrUnknownMeasurementType = errors.New("unknown measurement type")

	ErrNilSample      = errors.New("sample cannot be nil")
	ErrSampleNotFound = errors.New("sample not found")
	ErrSampleExists   = errors.New("sample already exists")
)
