package domain

import "time"

// Period represents the interval a sample was collected over
// Start and End are taken as given: End may precede Start
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod creates a period from its bounds
func NewPeriod(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// Duration returns End - Start (negative when End precedes Start)
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}
