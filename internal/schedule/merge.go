package schedule

import "sort"

// MergeBusy normalizes a set of busy windows into a minimal sorted set of
// disjoint windows. Empty input windows (Start >= End) are discarded.
// Overlapping and touching windows coalesce into one.
//
// The input slice is not modified. The result is sorted by start time and
// pairwise disjoint with strictly increasing bounds.
func MergeBusy(busy []Window) []Window {
	spans := make([]Window, 0, len(busy))
	for _, w := range busy {
		if !w.IsEmpty() {
			spans = append(spans, w)
		}
	}
	if len(spans) == 0 {
		return nil
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start.Before(spans[j].Start)
	})

	merged := spans[:1]
	for _, w := range spans[1:] {
		last := &merged[len(merged)-1]
		if !w.Start.After(last.End) {
			if w.End.After(last.End) {
				last.End = w.End
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}
