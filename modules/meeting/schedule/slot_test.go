package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_Label(t *testing.T) {
	assert.Equal(t, "06:00", Slot(0).Label())
	assert.Equal(t, "06:30", Slot(1).Label())
	assert.Equal(t, "12:00", Slot(12).Label())
	assert.Equal(t, "23:30", Slot(SlotCount-1).Label())
	assert.Equal(t, "24:00", LastBoundary.Label())
	assert.Equal(t, "", Slot(-1).Label())
	assert.Equal(t, "", Slot(SlotCount+1).Label())
}

func TestSlot_Add(t *testing.T) {
	tests := []struct {
		name   string
		slot   Slot
		d      Duration
		want   Slot
		wantOK bool
	}{
		{name: "half hour", slot: 12, d: DurationHalf, want: 13, wantOK: true},
		{name: "ends exactly at midnight", slot: SlotCount - 2, d: DurationHour, want: LastBoundary, wantOK: true},
		{name: "crosses midnight", slot: SlotCount - 1, d: DurationHour, wantOK: false},
		{name: "zero duration", slot: 3, d: 0, wantOK: false},
		{name: "negative slot", slot: -1, d: DurationHalf, wantOK: false},
		{name: "boundary is not a start", slot: LastBoundary, d: DurationHalf, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.slot.Add(tt.d)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot("13:30")
	require.NoError(t, err)
	assert.Equal(t, Slot(15), s)

	s, err = ParseSlot("24:00")
	require.NoError(t, err)
	assert.Equal(t, LastBoundary, s)
	assert.False(t, s.Valid())

	_, err = ParseSlot("13:15")
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = ParseSlot("05:30")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSlotRange(t *testing.T) {
	got, err := SlotRange(12, 15)
	require.NoError(t, err)
	assert.Equal(t, []Slot{12, 13, 14}, got)

	_, err = SlotRange(15, 15)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = SlotRange(30, LastBoundary+1)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestDuration_Text(t *testing.T) {
	text, err := DurationHourHalf.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "HOUR_HALF", string(text))

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("TWO_HOUR")))
	assert.Equal(t, DurationTwoHour, d)
	assert.Equal(t, 120, d.Minutes())

	assert.Error(t, d.UnmarshalText([]byte("FOREVER")))

	_, err = Duration(0).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-07-10")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 7, Day: 10}, d)
	assert.Equal(t, "2024-07-10", d.String())
	assert.True(t, Date{Year: 2024, Month: 7, Day: 9}.Before(d))
	assert.Equal(t, 0, d.Compare(Date{Year: 2024, Month: 7, Day: 10}))
	assert.Equal(t, 1, Date{Year: 2025, Month: 1, Day: 1}.Compare(d))

	_, err = ParseDate("10/07/2024")
	assert.Error(t, err)
}
