package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"meeting-planner/core/database"
	"meeting-planner/core/logger"
	"meeting-planner/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrAlreadyConfirmed is returned by ConfirmMeeting when another request
// confirmed the meeting first.
var ErrAlreadyConfirmed = stderrors.New("meeting already confirmed")

// MeetingRepository stores meetings, their users and availability marks
type MeetingRepository struct {
	DB database.IDatabase
}

func NewMeetingRepository(db database.IDatabase) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

//go:generate mockgen -source=meeting_repository.go -destination=../../../mocks/mock_meeting_repository.go -package=mocks

// MeetingRepositoryInterface defines the repository contract. Getters return
// (nil, nil) when nothing matches.
type MeetingRepositoryInterface interface {
	// Meetings
	CreateMeeting(ctx context.Context, meeting *entity.Meeting, dates []entity.AvailableDate, preferTimes []entity.PreferTime, host *entity.MeetingUser) (*entity.Meeting, *entity.MeetingUser, error)
	GetMeetingByCode(ctx context.Context, code string) (*entity.Meeting, error)
	GetAvailableDates(ctx context.Context, meetingID uuid.UUID) ([]entity.AvailableDate, error)
	GetPreferTimes(ctx context.Context, meetingID uuid.UUID) ([]entity.PreferTime, error)
	ConfirmMeeting(ctx context.Context, meetingID uuid.UUID, date time.Time, startSlot, endSlot int, fixedUserIDs []uuid.UUID) error

	// Users
	GetHost(ctx context.Context, meetingID uuid.UUID) (*entity.MeetingUser, error)
	GetUsers(ctx context.Context, meetingID uuid.UUID) ([]entity.MeetingUser, error)
	GetFixedUsers(ctx context.Context, meetingID uuid.UUID) ([]entity.MeetingUser, error)

	// Availability
	CreateMemberWithAvailability(ctx context.Context, user *entity.MeetingUser, marks []entity.AvailabilityMark) (*entity.MeetingUser, error)
	ReplaceAvailability(ctx context.Context, meetingID, userID uuid.UUID, marks []entity.AvailabilityMark) error
	GetAvailabilityMarks(ctx context.Context, meetingID uuid.UUID) ([]entity.AvailabilityMark, error)
}

// ===================== Meetings =====================

const meetingColumns = `id, code, title, password_hash, additional_info, duration, place_type, place_detail,
	confirmed_date, confirmed_start_slot, confirmed_end_slot, created_at, updated_at`

const userColumns = `id, meeting_id, name, role, is_fixed, created_at`

func (r *MeetingRepository) CreateMeeting(ctx context.Context, meeting *entity.Meeting, dates []entity.AvailableDate, preferTimes []entity.PreferTime, host *entity.MeetingUser) (*entity.Meeting, *entity.MeetingUser, error) {
	var (
		created     entity.Meeting
		createdHost entity.MeetingUser
	)

	err := r.DB.WithTx(ctx, func(tx database.IDatabase) error {
		query := `
			INSERT INTO meetings (code, title, password_hash, additional_info, duration, place_type, place_detail)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + meetingColumns

		if err := tx.GetContext(ctx, &created, query,
			meeting.Code, meeting.Title, meeting.PasswordHash, meeting.AdditionalInfo,
			meeting.Duration, meeting.PlaceType, meeting.PlaceDetail); err != nil {
			return err
		}

		for _, d := range dates {
			if err := tx.ExecContext(ctx,
				`INSERT INTO meeting_available_dates (meeting_id, available_date) VALUES ($1, $2)`,
				created.ID, d.AvailableDate); err != nil {
				return err
			}
		}

		for _, p := range preferTimes {
			if err := tx.ExecContext(ctx,
				`INSERT INTO meeting_prefer_times (meeting_id, start_slot, end_slot) VALUES ($1, $2, $3)`,
				created.ID, p.StartSlot, p.EndSlot); err != nil {
				return err
			}
		}

		return tx.GetContext(ctx, &createdHost, `
			INSERT INTO meeting_users (meeting_id, name, role)
			VALUES ($1, $2, $3)
			RETURNING `+userColumns,
			created.ID, host.Name, entity.UserRoleHost)
	})
	if err != nil {
		logger.Error("MeetingRepository:CreateMeeting", err)
		return nil, nil, err
	}

	return &created, &createdHost, nil
}

func (r *MeetingRepository) GetMeetingByCode(ctx context.Context, code string) (*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE code = $1`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, code)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetMeetingByCode", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) GetAvailableDates(ctx context.Context, meetingID uuid.UUID) ([]entity.AvailableDate, error) {
	query := `
		SELECT meeting_id, available_date
		FROM meeting_available_dates
		WHERE meeting_id = $1
		ORDER BY available_date
	`

	var dates []entity.AvailableDate
	if err := r.DB.SelectContext(ctx, &dates, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetAvailableDates", err)
		return nil, err
	}
	return dates, nil
}

func (r *MeetingRepository) GetPreferTimes(ctx context.Context, meetingID uuid.UUID) ([]entity.PreferTime, error) {
	query := `
		SELECT meeting_id, start_slot, end_slot
		FROM meeting_prefer_times
		WHERE meeting_id = $1
		ORDER BY start_slot
	`

	var times []entity.PreferTime
	if err := r.DB.SelectContext(ctx, &times, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetPreferTimes", err)
		return nil, err
	}
	return times, nil
}

func (r *MeetingRepository) ConfirmMeeting(ctx context.Context, meetingID uuid.UUID, date time.Time, startSlot, endSlot int, fixedUserIDs []uuid.UUID) error {
	ids := make(pq.StringArray, 0, len(fixedUserIDs))
	for _, id := range fixedUserIDs {
		ids = append(ids, id.String())
	}

	err := r.DB.WithTx(ctx, func(tx database.IDatabase) error {
		var id uuid.UUID
		err := tx.QueryRowContext(ctx, `
			UPDATE meetings
			SET confirmed_date = $2, confirmed_start_slot = $3, confirmed_end_slot = $4, updated_at = NOW()
			WHERE id = $1 AND confirmed_date IS NULL
			RETURNING id
		`, meetingID, date, startSlot, endSlot).Scan(&id)
		if stderrors.Is(err, sql.ErrNoRows) {
			return ErrAlreadyConfirmed
		}
		if err != nil {
			return err
		}

		return tx.ExecContext(ctx, `
			UPDATE meeting_users SET is_fixed = TRUE
			WHERE meeting_id = $1 AND id = ANY($2::uuid[])
		`, meetingID, ids)
	})
	if err != nil && !stderrors.Is(err, ErrAlreadyConfirmed) {
		logger.Error("MeetingRepository:ConfirmMeeting", err)
	}
	return err
}

// ===================== Users =====================

func (r *MeetingRepository) GetHost(ctx context.Context, meetingID uuid.UUID) (*entity.MeetingUser, error) {
	query := `SELECT ` + userColumns + ` FROM meeting_users WHERE meeting_id = $1 AND role = $2 LIMIT 1`

	var host entity.MeetingUser
	err := r.DB.GetContext(ctx, &host, query, meetingID, entity.UserRoleHost)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetHost", err)
		return nil, err
	}
	return &host, nil
}

// GetUsers lists users in join order.
func (r *MeetingRepository) GetUsers(ctx context.Context, meetingID uuid.UUID) ([]entity.MeetingUser, error) {
	query := `SELECT ` + userColumns + ` FROM meeting_users WHERE meeting_id = $1 ORDER BY created_at, id`

	var users []entity.MeetingUser
	if err := r.DB.SelectContext(ctx, &users, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetUsers", err)
		return nil, err
	}
	return users, nil
}

func (r *MeetingRepository) GetFixedUsers(ctx context.Context, meetingID uuid.UUID) ([]entity.MeetingUser, error) {
	query := `SELECT ` + userColumns + ` FROM meeting_users WHERE meeting_id = $1 AND is_fixed ORDER BY created_at, id`

	var users []entity.MeetingUser
	if err := r.DB.SelectContext(ctx, &users, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetFixedUsers", err)
		return nil, err
	}
	return users, nil
}

// ===================== Availability =====================

const insertMarks = `
	INSERT INTO availability_marks (meeting_id, user_id, available_date, slot, priority)
	VALUES (:meeting_id, :user_id, :available_date, :slot, :priority)
`

func (r *MeetingRepository) CreateMemberWithAvailability(ctx context.Context, user *entity.MeetingUser, marks []entity.AvailabilityMark) (*entity.MeetingUser, error) {
	var created entity.MeetingUser

	err := r.DB.WithTx(ctx, func(tx database.IDatabase) error {
		if err := tx.GetContext(ctx, &created, `
			INSERT INTO meeting_users (meeting_id, name, role)
			VALUES ($1, $2, $3)
			RETURNING `+userColumns,
			user.MeetingID, user.Name, entity.UserRoleMember); err != nil {
			return err
		}

		if len(marks) == 0 {
			return nil
		}
		rows := make([]entity.AvailabilityMark, len(marks))
		for i, m := range marks {
			m.MeetingID = created.MeetingID
			m.UserID = created.ID
			rows[i] = m
		}
		_, err := tx.NamedExecContext(ctx, insertMarks, rows)
		return err
	})
	if err != nil {
		logger.Error("MeetingRepository:CreateMemberWithAvailability", err)
		return nil, err
	}

	return &created, nil
}

// ReplaceAvailability drops the user's earlier marks before inserting marks.
func (r *MeetingRepository) ReplaceAvailability(ctx context.Context, meetingID, userID uuid.UUID, marks []entity.AvailabilityMark) error {
	err := r.DB.WithTx(ctx, func(tx database.IDatabase) error {
		if err := tx.ExecContext(ctx,
			`DELETE FROM availability_marks WHERE meeting_id = $1 AND user_id = $2`,
			meetingID, userID); err != nil {
			return err
		}

		if len(marks) == 0 {
			return nil
		}
		rows := make([]entity.AvailabilityMark, len(marks))
		for i, m := range marks {
			m.MeetingID = meetingID
			m.UserID = userID
			rows[i] = m
		}
		_, err := tx.NamedExecContext(ctx, insertMarks, rows)
		return err
	})
	if err != nil {
		logger.Error("MeetingRepository:ReplaceAvailability", err)
	}
	return err
}

// GetAvailabilityMarks returns marks in submission order.
func (r *MeetingRepository) GetAvailabilityMarks(ctx context.Context, meetingID uuid.UUID) ([]entity.AvailabilityMark, error) {
	query := `
		SELECT id, meeting_id, user_id, available_date, slot, priority, created_at
		FROM availability_marks
		WHERE meeting_id = $1
		ORDER BY id
	`

	var marks []entity.AvailabilityMark
	if err := r.DB.SelectContext(ctx, &marks, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetAvailabilityMarks", err)
		return nil, err
	}
	return marks, nil
}
