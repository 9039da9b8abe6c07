// Package schedule computes free availability slots from busy calendar
// intervals. It is pure time arithmetic: callers fetch busy windows from
// a calendar backend, and Plan turns them into per-day lists of bookable
// slots within configured working hours.
//
// All intervals are half-open [Start, End) and compared as absolute
// instants, so busy windows reported in any timezone interact correctly
// with working days defined in another.
package schedule
