package schedule

import (
	"fmt"
	"time"
)

// Window is a half-open time interval [Start, End).
// A Window with Start >= End is empty.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsEmpty reports whether the window contains no instants.
func (w Window) IsEmpty() bool {
	return !w.Start.Before(w.End)
}

// Duration returns the length of the window. Empty windows report zero.
func (w Window) Duration() time.Duration {
	if w.IsEmpty() {
		return 0
	}
	return w.End.Sub(w.Start)
}

// Overlaps reports whether w and o share at least one instant.
// Touching windows (w.End == o.Start) do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Clip intersects w with bound. The second return value is false when
// the intersection is empty.
func (w Window) Clip(bound Window) (Window, bool) {
	out := w
	if bound.Start.After(out.Start) {
		out.Start = bound.Start
	}
	if bound.End.Before(out.End) {
		out.End = bound.End
	}
	if out.IsEmpty() {
		return Window{}, false
	}
	return out, true
}

// String formats the window in RFC 3339 for logs and error messages.
func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
