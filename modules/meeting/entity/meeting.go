package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlaceType is where a meeting takes place.
type PlaceType string

const (
	PlaceTypeOnline    PlaceType = "ONLINE"
	PlaceTypeOffline   PlaceType = "OFFLINE"
	PlaceTypeUndefined PlaceType = "UNDEFINED"
)

// Meeting is one scheduling poll, addressed publicly by Code.
type Meeting struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Code               string     `db:"code" json:"code"`
	Title              string     `db:"title" json:"title"`
	PasswordHash       string     `db:"password_hash" json:"-"`
	AdditionalInfo     *string    `db:"additional_info" json:"additional_info,omitempty"`
	Duration           int        `db:"duration" json:"duration"`
	PlaceType          PlaceType  `db:"place_type" json:"place_type"`
	PlaceDetail        *string    `db:"place_detail" json:"place_detail,omitempty"`
	ConfirmedDate      *time.Time `db:"confirmed_date" json:"confirmed_date,omitempty"`
	ConfirmedStartSlot *int       `db:"confirmed_start_slot" json:"confirmed_start_slot,omitempty"`
	ConfirmedEndSlot   *int       `db:"confirmed_end_slot" json:"confirmed_end_slot,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

func (m *Meeting) IsConfirmed() bool {
	return m.ConfirmedDate != nil && m.ConfirmedStartSlot != nil && m.ConfirmedEndSlot != nil
}

type AvailableDate struct {
	MeetingID     uuid.UUID `db:"meeting_id" json:"meeting_id"`
	AvailableDate time.Time `db:"available_date" json:"available_date"`
}

// PreferTime is a host-preferred range [StartSlot, EndSlot).
type PreferTime struct {
	MeetingID uuid.UUID `db:"meeting_id" json:"meeting_id"`
	StartSlot int       `db:"start_slot" json:"start_slot"`
	EndSlot   int       `db:"end_slot" json:"end_slot"`
}
