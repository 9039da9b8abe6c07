package schedule

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// maxSlotDuration caps a single slot at one full day.
const maxSlotDuration = 24 * time.Hour

// SearchRequest describes an availability search. Dates are plain
// calendar dates interpreted in Location; Location must name the
// timezone explicitly, there is no fallback to the process-local zone.
type SearchRequest struct {
	Start    civil.Date
	End      civil.Date
	Hours    WorkingHours
	Duration time.Duration
	Location *time.Location
}

// Validate checks the request without touching the clock. Errors wrap
// the package sentinels.
func (r SearchRequest) Validate() error {
	if !r.Start.IsValid() || !r.End.IsValid() {
		return fmt.Errorf("%w: dates must be valid calendar dates", ErrInvalidRange)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: end date %s precedes start date %s", ErrInvalidRange, r.End, r.Start)
	}
	if err := r.Hours.Validate(); err != nil {
		return err
	}
	if r.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidDuration, r.Duration)
	}
	if r.Duration > maxSlotDuration {
		return fmt.Errorf("%w: duration %s exceeds 24h", ErrInvalidDuration, r.Duration)
	}
	if r.Location == nil {
		return fmt.Errorf("timezone location is required")
	}
	return nil
}

// DayAvailability lists the free slots of one calendar date. An entry
// with no slots means the day was searched and is fully booked, which
// is distinct from a day missing from the report entirely.
type DayAvailability struct {
	Date  civil.Date
	Slots []Window
}

// Report is the result of an availability search, one entry per
// searched day in date order.
type Report struct {
	Days []DayAvailability
}

// Empty reports whether no day in the range has any free slot.
func (r *Report) Empty() bool {
	for _, d := range r.Days {
		if len(d.Slots) > 0 {
			return false
		}
	}
	return true
}

// TotalSlots counts the free slots across all days.
func (r *Report) TotalSlots() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Slots)
	}
	return n
}

// Plan computes free slots for every day in the request range.
//
// The busy set is merged once in absolute time, so intervals spanning
// midnight clip every day they touch. Days entirely in the past are
// dropped from the report; days that are live but fully booked appear
// with an empty slot list. Busy windows that fail to parse or fetch are
// the caller's problem; Plan only rejects the request itself.
func Plan(req SearchRequest, busy []Window, now time.Time) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	merged := MergeBusy(busy)

	start := req.Start
	if today := civil.DateOf(now.In(req.Location)); start.Before(today) {
		start = today
	}

	report := &Report{}
	for date := start; !req.End.Before(date); date = date.AddDays(1) {
		window, ok := workingWindow(date, req.Hours, req.Location, now, req.Duration)
		if !ok {
			continue
		}

		var dayBusy []Window
		for _, b := range merged {
			if clipped, ok := b.Clip(window); ok {
				dayBusy = append(dayBusy, clipped)
			}
		}

		report.Days = append(report.Days, DayAvailability{
			Date:  date,
			Slots: slotsInWindow(window, dayBusy, req.Duration),
		})
	}
	return report, nil
}
