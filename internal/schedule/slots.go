package schedule

import "time"

// slotsInWindow walks the free gaps of window and emits back-to-back
// slots of the given duration. busy must be sorted and disjoint (the
// shape MergeBusy produces); intervals outside the window are ignored.
//
// The cursor only ever moves forward: each gap is filled with as many
// whole slots as fit, then the cursor jumps past the busy interval that
// closed the gap. Partial gaps shorter than duration yield nothing.
func slotsInWindow(window Window, busy []Window, duration time.Duration) []Window {
	var slots []Window
	cursor := window.Start

	fill := func(gapEnd time.Time) {
		for !cursor.Add(duration).After(gapEnd) {
			slots = append(slots, Window{Start: cursor, End: cursor.Add(duration)})
			cursor = cursor.Add(duration)
		}
	}

	for _, b := range busy {
		gapEnd := b.Start
		if window.End.Before(gapEnd) {
			gapEnd = window.End
		}
		fill(gapEnd)
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	fill(window.End)

	return slots
}
