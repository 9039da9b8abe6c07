package schedule

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// WorkingHours bounds a working day by wall-clock hour in the search
// timezone. The day runs [StartHour:00, EndHour:00).
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// Validate checks the hour bounds. Both hours must be in 0..23 and the
// start must precede the end.
func (h WorkingHours) Validate() error {
	if h.StartHour < 0 || h.StartHour > 23 || h.EndHour < 0 || h.EndHour > 23 {
		return fmt.Errorf("%w: hours must be between 0 and 23, got start=%d end=%d",
			ErrInvalidWorkingHours, h.StartHour, h.EndHour)
	}
	if h.StartHour >= h.EndHour {
		return fmt.Errorf("%w: start hour %d must be before end hour %d",
			ErrInvalidWorkingHours, h.StartHour, h.EndHour)
	}
	return nil
}

// workingWindow builds the bookable window for one calendar date.
//
// The wall-clock bounds are materialized with time.Date in loc, so DST
// transitions resolve the way the zone database says they do. When now
// falls inside the day, the start advances to the next slot boundary at
// or after now, keeping slots aligned to the grid anchored at StartHour.
// Slots that would have started before now are simply gone.
//
// Returns false when the day is already fully elapsed. A true result
// with an empty window means the day is live but has no room left.
func workingWindow(date civil.Date, hours WorkingHours, loc *time.Location, now time.Time, slot time.Duration) (Window, bool) {
	start := time.Date(date.Year, date.Month, date.Day, hours.StartHour, 0, 0, 0, loc)
	end := time.Date(date.Year, date.Month, date.Day, hours.EndHour, 0, 0, 0, loc)

	if !now.Before(end) {
		return Window{}, false
	}
	if now.After(start) {
		offset := now.Sub(start)
		if rem := offset % slot; rem != 0 {
			offset += slot - rem
		}
		start = start.Add(offset)
		if start.After(end) {
			start = end
		}
	}
	return Window{Start: start, End: end}, true
}
