package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleHost   UserRole = "HOST"
	UserRoleMember UserRole = "MEMBER"
)

// MeetingUser is anyone who joined a meeting, host included.
type MeetingUser struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MeetingID uuid.UUID `db:"meeting_id" json:"meeting_id"`
	Name      string    `db:"name" json:"name"`
	Role      UserRole  `db:"role" json:"role"`
	IsFixed   bool      `db:"is_fixed" json:"is_fixed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
