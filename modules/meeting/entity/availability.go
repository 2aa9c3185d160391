package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityMark is one persisted (user, date, slot) record. Rows are read
// back in insertion order, which is the submission order the schedule package
// relies on.
type AvailabilityMark struct {
	ID            int64     `db:"id" json:"id"`
	MeetingID     uuid.UUID `db:"meeting_id" json:"meeting_id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	AvailableDate time.Time `db:"available_date" json:"available_date"`
	Slot          int       `db:"slot" json:"slot"`
	Priority      int       `db:"priority" json:"priority"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
