package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// Slot is a 30-minute start position within a day. Slot 0 starts at 06:00 and
// the last start slot, SlotCount-1, begins at 23:30.
type Slot int

const (
	SlotCount       = 36
	slotMinutes     = 30
	firstSlotMinute = 6 * 60
)

// LastBoundary is the "24:00" end boundary. It is never a start slot.
const LastBoundary Slot = SlotCount

var ErrInvalidSlot = errors.New("schedule: invalid slot")

// slotLabels holds every boundary label, including the closing "24:00".
var slotLabels = func() [SlotCount + 1]string {
	var labels [SlotCount + 1]string
	for i := range labels {
		m := firstSlotMinute + i*slotMinutes
		labels[i] = fmt.Sprintf("%02d:%02d", m/60, m%60)
	}
	return labels
}()

// Valid reports whether s can start a block.
func (s Slot) Valid() bool {
	return s >= 0 && s < SlotCount
}

// Label returns the wall-clock label of the boundary s, "06:00" through "24:00".
func (s Slot) Label() string {
	if s < 0 || s > LastBoundary {
		return ""
	}
	return slotLabels[s]
}

func (s Slot) String() string {
	return s.Label()
}

// Add returns the boundary reached d slots after s. ok is false when the
// window would cross the end of the day.
func (s Slot) Add(d Duration) (Slot, bool) {
	if !s.Valid() || d <= 0 {
		return 0, false
	}
	end := s + Slot(d)
	if end > LastBoundary {
		return 0, false
	}
	return end, true
}

// ParseSlot converts an "HH:MM" label into a boundary. "24:00" is accepted and
// maps to LastBoundary, so callers checking a start must also call Valid.
func ParseSlot(label string) (Slot, error) {
	label = strings.TrimSpace(label)
	for i, l := range slotLabels {
		if l == label {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSlot, label)
}

// SlotRange lists the start slots in [start, end).
func SlotRange(start, end Slot) ([]Slot, error) {
	if !start.Valid() || end <= start || end > LastBoundary {
		return nil, fmt.Errorf("%w: range %s-%s", ErrInvalidSlot, start.Label(), end.Label())
	}
	out := make([]Slot, 0, end-start)
	for s := start; s < end; s++ {
		out = append(out, s)
	}
	return out, nil
}
