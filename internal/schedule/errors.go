package schedule

import "errors"

// Validation sentinels returned by Plan. Callers match them with
// errors.Is; the wrapped message carries the offending values.
var (
	// ErrInvalidRange indicates the end date precedes the start date.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidWorkingHours indicates working hours outside 0..23 or a
	// start hour at or after the end hour.
	ErrInvalidWorkingHours = errors.New("invalid working hours")

	// ErrInvalidDuration indicates a non-positive slot duration or one
	// longer than a full day.
	ErrInvalidDuration = errors.New("invalid slot duration")
)
