package schedule

import (
	"errors"
	"fmt"
)

// Duration is a meeting length counted in slots.
type Duration int

const (
	DurationHalf        Duration = 1
	DurationHour        Duration = 2
	DurationHourHalf    Duration = 3
	DurationTwoHour     Duration = 4
	DurationTwoHourHalf Duration = 5
	DurationThreeHour   Duration = 6
)

var ErrInvalidDuration = errors.New("schedule: duration must be positive")

var durationNames = map[Duration]string{
	DurationHalf:        "HALF",
	DurationHour:        "HOUR",
	DurationHourHalf:    "HOUR_HALF",
	DurationTwoHour:     "TWO_HOUR",
	DurationTwoHourHalf: "TWO_HOUR_HALF",
	DurationThreeHour:   "THREE_HOUR",
}

func (d Duration) String() string {
	if name, ok := durationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Duration(%d)", int(d))
}

// Minutes is the wall-clock length of d.
func (d Duration) Minutes() int {
	return int(d) * slotMinutes
}

func (d Duration) MarshalText() ([]byte, error) {
	name, ok := durationNames[d]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, int(d))
	}
	return []byte(name), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDuration maps an enum name such as "HOUR_HALF" to its Duration.
func ParseDuration(name string) (Duration, error) {
	for d, n := range durationNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("schedule: unknown duration %q", name)
}
