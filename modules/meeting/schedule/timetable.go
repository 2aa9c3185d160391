package schedule

import "github.com/google/uuid"

const (
	MinColorLevel = 1
	MaxColorLevel = 5
)

// Participant is a roster entry. Roster order is the header order of a TimeTable.
type Participant struct {
	ID   uuid.UUID
	Name string
}

type SlotCell struct {
	Slot       Slot
	Label      string
	Names      []string
	ColorLevel int
}

type DateColumn struct {
	Date  Date
	Slots []SlotCell
}

// TimeTable is the attendance grid of one meeting.
type TimeTable struct {
	MemberCount int
	HeaderNames []string
	Dates       []DateColumn
}

// ColorLevel buckets present/total into 1..5 in steps of 20%. A non-positive
// total yields the minimum level.
func ColorLevel(present, total int) int {
	if total <= 0 || present <= 0 {
		return MinColorLevel
	}
	if present >= total {
		return MaxColorLevel
	}
	// ceil(present*5/total)
	level := (present*MaxColorLevel + total - 1) / total
	return max(MinColorLevel, min(MaxColorLevel, level))
}

// BuildTimeTable renders every block of agg into a grid. Names are resolved
// through roster; ids missing from it are left out of the cell.
func BuildTimeTable(agg Aggregation, roster []Participant, participantCount int) TimeTable {
	names := make(map[uuid.UUID]string, len(roster))
	header := make([]string, 0, len(roster))
	for _, p := range roster {
		if _, dup := names[p.ID]; dup {
			continue
		}
		names[p.ID] = p.Name
		header = append(header, p.Name)
	}

	days := agg.ByDate()
	table := TimeTable{
		MemberCount: participantCount,
		HeaderNames: header,
		Dates:       make([]DateColumn, 0, len(days)),
	}
	for _, day := range days {
		col := DateColumn{Date: day.Date, Slots: make([]SlotCell, 0, len(day.Blocks))}
		for _, b := range day.Blocks {
			cell := SlotCell{
				Slot:       b.Slot,
				Label:      b.Slot.Label(),
				Names:      make([]string, 0, len(b.ParticipantIDs)),
				ColorLevel: ColorLevel(b.Count(), participantCount),
			}
			for _, id := range b.ParticipantIDs {
				if name, ok := names[id]; ok {
					cell.Names = append(cell.Names, name)
				}
			}
			col.Slots = append(col.Slots, cell)
		}
		table.Dates = append(table.Dates, col)
	}
	return table
}
