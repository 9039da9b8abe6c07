package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsInWindowFullyFreeDay(t *testing.T) {
	// 09:00-17:00, 30 minute slots, nothing busy: 16 contiguous slots.
	window := win(1, 9, 0, 17, 0)

	slots := slotsInWindow(window, nil, 30*time.Minute)

	require.Len(t, slots, 16)
	assert.Equal(t, win(1, 9, 0, 9, 30), slots[0])
	assert.Equal(t, win(1, 16, 30, 17, 0), slots[15])
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start, "slots must be contiguous")
	}
}

func TestSlotsInWindowAroundBusyInterval(t *testing.T) {
	// One meeting 10:00-11:00 splits the day into 2 + 12 slots.
	window := win(1, 9, 0, 17, 0)
	busy := []Window{win(1, 10, 0, 11, 0)}

	slots := slotsInWindow(window, busy, 30*time.Minute)

	require.Len(t, slots, 14)
	assert.Equal(t, win(1, 9, 0, 9, 30), slots[0])
	assert.Equal(t, win(1, 9, 30, 10, 0), slots[1])
	assert.Equal(t, win(1, 11, 0, 11, 30), slots[2])
	assert.Equal(t, win(1, 16, 30, 17, 0), slots[13])
	for _, s := range slots {
		assert.False(t, s.Overlaps(busy[0]), "slot %s overlaps busy interval", s)
	}
}

func TestSlotsInWindowFullyBooked(t *testing.T) {
	window := win(1, 9, 0, 17, 0)
	busy := []Window{win(1, 9, 0, 17, 0)}

	slots := slotsInWindow(window, busy, 30*time.Minute)

	assert.Empty(t, slots)
}

func TestSlotsInWindowInsufficientRoom(t *testing.T) {
	// 45 minute slots in a one hour window: one slot, the 15 minute
	// remainder yields nothing.
	window := win(1, 9, 0, 10, 0)

	slots := slotsInWindow(window, nil, 45*time.Minute)

	require.Len(t, slots, 1)
	assert.Equal(t, Window{Start: utc(1, 9, 0), End: utc(1, 9, 45)}, slots[0])
}

func TestSlotsInWindowGapTooShort(t *testing.T) {
	// 20 minute gap between meetings cannot hold a 30 minute slot.
	window := win(1, 9, 0, 11, 0)
	busy := []Window{win(1, 9, 30, 10, 0), win(1, 10, 20, 11, 0)}

	slots := slotsInWindow(window, busy, 30*time.Minute)

	require.Len(t, slots, 1)
	assert.Equal(t, win(1, 9, 0, 9, 30), slots[0])
}

func TestSlotsInWindowBusyOutsideWindow(t *testing.T) {
	// Intervals entirely before or after the window must not move the
	// cursor backward or suppress the tail gap.
	window := win(1, 9, 0, 11, 0)
	busy := []Window{win(1, 6, 0, 7, 0), win(1, 20, 0, 21, 0)}

	slots := slotsInWindow(window, busy, time.Hour)

	require.Len(t, slots, 2)
	assert.Equal(t, win(1, 9, 0, 10, 0), slots[0])
	assert.Equal(t, win(1, 10, 0, 11, 0), slots[1])
}

func TestSlotsInWindowSlotTouchingBusyStart(t *testing.T) {
	// Half-open windows: a slot ending exactly where a meeting starts
	// is bookable.
	window := win(1, 9, 0, 12, 0)
	busy := []Window{win(1, 10, 0, 10, 30)}

	slots := slotsInWindow(window, busy, time.Hour)

	require.Len(t, slots, 2)
	assert.Equal(t, win(1, 9, 0, 10, 0), slots[0])
	assert.Equal(t, Window{Start: utc(1, 10, 30), End: utc(1, 11, 30)}, slots[1])
}

func TestSlotsInWindowDurationExactness(t *testing.T) {
	window := win(1, 9, 0, 17, 0)
	busy := []Window{win(1, 10, 15, 11, 5), win(1, 13, 40, 14, 10)}

	slots := slotsInWindow(window, busy, 25*time.Minute)

	require.NotEmpty(t, slots)
	for i, s := range slots {
		assert.Equal(t, 25*time.Minute, s.Duration())
		for _, b := range busy {
			assert.False(t, s.Overlaps(b))
		}
		if i > 0 {
			assert.False(t, slots[i-1].Overlaps(s))
			assert.False(t, s.Start.Before(slots[i-1].End))
		}
	}
}

func TestSlotsInWindowEmptyWindow(t *testing.T) {
	slots := slotsInWindow(Window{Start: utc(1, 17, 0), End: utc(1, 17, 0)}, nil, 30*time.Minute)
	assert.Empty(t, slots)
}
