package service

import (
	"os"
	"testing"
	"time"

	"meeting-planner/core/config"
	"meeting-planner/core/utils"
	"meeting-planner/mocks"
	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCode     = "weekly-sync-4fXk29Qa"
	testPassword = "0000"
)

var (
	meetingID = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	otherID   = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	hostID    = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	memberID  = uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
	idleID    = uuid.MustParse("00000000-0000-0000-0000-0000000000b3")

	july10 = time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC)
	july11 = time.Date(2023, time.July, 11, 0, 0, 0, 0, time.UTC)

	passwordHash string
)

func TestMain(m *testing.M) {
	config.Set(&config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Issuer: "meeting-planner-test", ExpireInMinutes: 60},
	})

	var err error
	passwordHash, err = utils.HashPassword(testPassword)
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type allMocks struct {
	mockRepo      *mocks.MockMeetingRepositoryInterface
	mockCache     *mocks.MockCache
	mockPublisher *mocks.MockPublisher
}

func newServiceTestMock(t *testing.T) (m allMocks, svc MeetingServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m = allMocks{
		mockRepo:      mocks.NewMockMeetingRepositoryInterface(ctrl),
		mockCache:     mocks.NewMockCache(ctrl),
		mockPublisher: mocks.NewMockPublisher(ctrl),
	}

	svc = NewMeetingService(m.mockRepo, m.mockCache, m.mockPublisher)
	require.NotNil(t, svc)

	return
}

func newMeeting() *entity.Meeting {
	return &entity.Meeting{
		ID:           meetingID,
		Code:         testCode,
		Title:        "Weekly sync",
		PasswordHash: passwordHash,
		Duration:     int(schedule.DurationHour),
		PlaceType:    entity.PlaceTypeOnline,
	}
}

func confirmedMeeting() *entity.Meeting {
	m := newMeeting()
	date := july10
	start, end := 10, 12
	m.ConfirmedDate = &date
	m.ConfirmedStartSlot = &start
	m.ConfirmedEndSlot = &end
	return m
}

func availableDates() []entity.AvailableDate {
	return []entity.AvailableDate{
		{MeetingID: meetingID, AvailableDate: july10},
		{MeetingID: meetingID, AvailableDate: july11},
	}
}

func users() []entity.MeetingUser {
	return []entity.MeetingUser{
		{ID: hostID, MeetingID: meetingID, Name: "KWY", Role: entity.UserRoleHost},
		{ID: memberID, MeetingID: meetingID, Name: "DSH", Role: entity.UserRoleMember},
		{ID: idleID, MeetingID: meetingID, Name: "LEE", Role: entity.UserRoleMember},
	}
}

func hostClaims() *utils.TokenClaims {
	return &utils.TokenClaims{UserID: hostID, MeetingID: meetingID, Role: "HOST"}
}

// markRows builds one row per slot in [from, to).
func markRows(userID uuid.UUID, date time.Time, from, to, priority int) []entity.AvailabilityMark {
	var rows []entity.AvailabilityMark
	for s := from; s < to; s++ {
		rows = append(rows, entity.AvailabilityMark{
			MeetingID:     meetingID,
			UserID:        userID,
			AvailableDate: date,
			Slot:          s,
			Priority:      priority,
		})
	}
	return rows
}
