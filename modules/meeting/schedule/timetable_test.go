package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimeTable_ColorLevelsAndNames(t *testing.T) {
	roster := []Participant{{ID: kwy, Name: "KWY"}, {ID: dsh, Name: "DSH"}}
	marks := collect(
		fullMarks(july9, mustSlot(t, "12:00"), 0, kwy, dsh),
		fullMarks(july9, mustSlot(t, "13:00"), 0, kwy),
		fullMarks(july9, mustSlot(t, "14:00"), 0, kwy, dsh),
	)

	table := BuildTimeTable(Aggregate(marks), roster, 2)

	assert.Equal(t, 2, table.MemberCount)
	assert.Equal(t, []string{"KWY", "DSH"}, table.HeaderNames)
	require.Len(t, table.Dates, 1)
	assert.Equal(t, july9, table.Dates[0].Date)

	cells := table.Dates[0].Slots
	require.Len(t, cells, 3)
	assert.Equal(t, []string{"12:00", "13:00", "14:00"}, []string{cells[0].Label, cells[1].Label, cells[2].Label})
	assert.Equal(t, []int{5, 3, 5}, []int{cells[0].ColorLevel, cells[1].ColorLevel, cells[2].ColorLevel})
	assert.Equal(t, []string{"KWY", "DSH"}, cells[0].Names)
	assert.Equal(t, []string{"KWY"}, cells[1].Names)
	assert.Equal(t, []string{"KWY", "DSH"}, cells[2].Names)
}

func TestBuildTimeTable_NamesFollowSubmissionOrder(t *testing.T) {
	roster := []Participant{{ID: kwy, Name: "KWY"}, {ID: dsh, Name: "DSH"}}
	noon := mustSlot(t, "12:00")
	marks := []AvailabilityMark{
		{UserID: dsh, Date: july10, Slot: noon},
		{UserID: kwy, Date: july10, Slot: noon},
	}

	table := BuildTimeTable(Aggregate(marks), roster, 2)
	require.Len(t, table.Dates, 1)
	assert.Equal(t, []string{"DSH", "KWY"}, table.Dates[0].Slots[0].Names)
	assert.Equal(t, []string{"KWY", "DSH"}, table.HeaderNames)
}

func TestBuildTimeTable_GroupsByDate(t *testing.T) {
	roster := []Participant{{ID: kwy, Name: "KWY"}}
	marks := collect(
		fullMarks(july10, mustSlot(t, "09:00"), 0, kwy),
		fullMarks(july9, mustSlot(t, "10:00"), 0, kwy),
		fullMarks(july9, mustSlot(t, "07:30"), 0, kwy),
	)

	table := BuildTimeTable(Aggregate(marks), roster, 1)
	require.Len(t, table.Dates, 2)
	assert.Equal(t, july9, table.Dates[0].Date)
	assert.Equal(t, "07:30", table.Dates[0].Slots[0].Label)
	assert.Equal(t, "10:00", table.Dates[0].Slots[1].Label)
	assert.Equal(t, july10, table.Dates[1].Date)
}

func TestBuildTimeTable_ZeroParticipants(t *testing.T) {
	marks := collect(
		fullMarks(july10, mustSlot(t, "09:00"), 0, kwy, dsh),
		fullMarks(july10, mustSlot(t, "09:30"), 0, kwy),
	)

	table := BuildTimeTable(Aggregate(marks), nil, 0)
	require.Len(t, table.Dates, 1)
	for _, cell := range table.Dates[0].Slots {
		assert.Equal(t, MinColorLevel, cell.ColorLevel)
		assert.Empty(t, cell.Names)
	}
	assert.Empty(t, table.HeaderNames)
}

func TestBuildTimeTable_Empty(t *testing.T) {
	table := BuildTimeTable(Aggregate(nil), []Participant{{ID: kwy, Name: "KWY"}}, 1)
	assert.Empty(t, table.Dates)
	assert.Equal(t, []string{"KWY"}, table.HeaderNames)
}

func TestColorLevel(t *testing.T) {
	tests := []struct {
		present, total, want int
	}{
		{present: 2, total: 2, want: 5},
		{present: 1, total: 2, want: 3},
		{present: 1, total: 5, want: 1},
		{present: 2, total: 5, want: 2},
		{present: 3, total: 5, want: 3},
		{present: 4, total: 5, want: 4},
		{present: 1, total: 3, want: 2},
		{present: 2, total: 3, want: 4},
		{present: 1, total: 10, want: 1},
		{present: 0, total: 4, want: 1},
		{present: 3, total: 0, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorLevel(tt.present, tt.total), "%d/%d", tt.present, tt.total)
	}
}

func TestColorLevel_Monotonic(t *testing.T) {
	for total := 1; total <= 30; total++ {
		prev := MinColorLevel
		for present := 1; present <= total; present++ {
			level := ColorLevel(present, total)
			assert.GreaterOrEqual(t, level, prev, "%d/%d", present, total)
			assert.GreaterOrEqual(t, level, MinColorLevel)
			assert.LessOrEqual(t, level, MaxColorLevel)
			prev = level
		}
		assert.Equal(t, MaxColorLevel, prev)
	}
}
