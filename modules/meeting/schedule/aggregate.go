// Package schedule aggregates participant availability into attendance blocks
// and derives meeting recommendations and the attendance grid from them.
package schedule

import (
	"cmp"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// AvailabilityMark is one participant being free at one slot of one date.
type AvailabilityMark struct {
	UserID   uuid.UUID
	Date     Date
	Slot     Slot
	Priority int
}

// BlockKey addresses a single slot of a single date.
type BlockKey struct {
	Date Date
	Slot Slot
}

// AttendanceBlock is everyone available at one (date, slot). ParticipantIDs keeps
// the order in which participants first marked the slot.
type AttendanceBlock struct {
	Date           Date
	Slot           Slot
	ParticipantIDs []uuid.UUID
	PrioritySum    int
}

func (b AttendanceBlock) Key() BlockKey {
	return BlockKey{Date: b.Date, Slot: b.Slot}
}

func (b AttendanceBlock) Count() int {
	return len(b.ParticipantIDs)
}

// DateBlocks is the blocks of one date, ordered by slot.
type DateBlocks struct {
	Date   Date
	Blocks []AttendanceBlock
}

// Aggregation is a read-only snapshot of attendance for one meeting.
type Aggregation struct {
	byKey  map[BlockKey]AttendanceBlock
	blocks []AttendanceBlock
}

// Aggregate folds marks into attendance blocks. A repeated (user, date, slot)
// keeps the first mark and ignores the priority of later ones.
func Aggregate(marks []AvailabilityMark) Aggregation {
	type seenKey struct {
		user uuid.UUID
		key  BlockKey
	}

	index := make(map[BlockKey]int)
	seen := make(map[seenKey]struct{}, len(marks))
	var blocks []AttendanceBlock

	for _, m := range marks {
		if !m.Slot.Valid() {
			continue
		}
		key := BlockKey{Date: m.Date, Slot: m.Slot}
		sk := seenKey{user: m.UserID, key: key}
		if _, dup := seen[sk]; dup {
			continue
		}
		seen[sk] = struct{}{}

		i, ok := index[key]
		if !ok {
			i = len(blocks)
			index[key] = i
			blocks = append(blocks, AttendanceBlock{Date: m.Date, Slot: m.Slot})
		}
		blocks[i].ParticipantIDs = append(blocks[i].ParticipantIDs, m.UserID)
		blocks[i].PrioritySum += m.Priority
	}

	slices.SortFunc(blocks, compareBlocks)

	byKey := make(map[BlockKey]AttendanceBlock, len(blocks))
	for _, b := range blocks {
		byKey[b.Key()] = b
	}
	return Aggregation{byKey: byKey, blocks: blocks}
}

func compareBlocks(a, b AttendanceBlock) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.Slot, b.Slot)
}

// Block looks up the block at (date, slot).
func (a Aggregation) Block(date Date, slot Slot) (AttendanceBlock, bool) {
	b, ok := a.byKey[BlockKey{Date: date, Slot: slot}]
	return b, ok
}

// Blocks returns every block ordered by date, then slot.
func (a Aggregation) Blocks() []AttendanceBlock {
	return slices.Clone(a.blocks)
}

// ByKey returns a copy of the (date, slot) index.
func (a Aggregation) ByKey() map[BlockKey]AttendanceBlock {
	return maps.Clone(a.byKey)
}

func (a Aggregation) Len() int {
	return len(a.blocks)
}

// ByDate groups the blocks per date, dates ascending.
func (a Aggregation) ByDate() []DateBlocks {
	var out []DateBlocks
	for _, b := range a.blocks {
		if n := len(out); n == 0 || out[n-1].Date != b.Date {
			out = append(out, DateBlocks{Date: b.Date})
		}
		last := &out[len(out)-1]
		last.Blocks = append(last.Blocks, b)
	}
	return out
}
