package validator

import (
	"testing"

	"meeting-planner/modules/meeting/dto"
	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCreateRequest() *dto.CreateMeetingRequest {
	return &dto.CreateMeetingRequest{
		Title:          "Weekly sync",
		AvailableDates: []string{"2023-07-10", "2023-07-11"},
		PreferTimes:    []dto.PreferTimeRequest{{StartTime: "09:00", EndTime: "12:00"}},
		PlaceType:      entity.PlaceTypeOnline,
		Duration:       schedule.DurationHour,
		Name:           "KWY",
		Password:       "0000",
	}
}

func TestValidateCreateMeetingRequest(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(req *dto.CreateMeetingRequest)
		wantFields []string
	}{
		{
			name:   "valid request",
			mutate: func(req *dto.CreateMeetingRequest) {},
		},
		{
			name:       "missing title",
			mutate:     func(req *dto.CreateMeetingRequest) { req.Title = "" },
			wantFields: []string{"title"},
		},
		{
			name:       "bad date layout",
			mutate:     func(req *dto.CreateMeetingRequest) { req.AvailableDates = []string{"07/10/2023"} },
			wantFields: []string{"available_dates[0]"},
		},
		{
			name:       "unknown place type",
			mutate:     func(req *dto.CreateMeetingRequest) { req.PlaceType = "MOON" },
			wantFields: []string{"place_type"},
		},
		{
			name:       "missing duration",
			mutate:     func(req *dto.CreateMeetingRequest) { req.Duration = 0 },
			wantFields: []string{"duration"},
		},
		{
			name: "prefer time off the grid",
			mutate: func(req *dto.CreateMeetingRequest) {
				req.PreferTimes = []dto.PreferTimeRequest{{StartTime: "05:30", EndTime: "09:15"}}
			},
			wantFields: []string{"prefer_times[0].start_time", "prefer_times[0].end_time"},
		},
		{
			name: "prefer time ends before it starts",
			mutate: func(req *dto.CreateMeetingRequest) {
				req.PreferTimes = []dto.PreferTimeRequest{{StartTime: "12:00", EndTime: "11:00"}}
			},
			wantFields: []string{"prefer_times[0].end_time"},
		},
		{
			name: "24:00 is a valid end but not a start",
			mutate: func(req *dto.CreateMeetingRequest) {
				req.PreferTimes = []dto.PreferTimeRequest{{StartTime: "24:00", EndTime: "24:00"}}
			},
			wantFields: []string{"prefer_times[0].start_time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			result := ValidateCreateMeetingRequest(req)

			var got []string
			for _, e := range result.Errors {
				got = append(got, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestValidateMemberAvailabilityRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		result := ValidateMemberAvailabilityRequest(&dto.MemberAvailabilityRequest{
			Name: "DSH",
			Times: []dto.AvailableTimeRequest{
				{Date: "2023-07-10", StartTime: "06:00", EndTime: "24:00", Priority: 3},
			},
		})
		assert.False(t, result.HasError())
	})

	t.Run("priority out of range and empty name", func(t *testing.T) {
		result := ValidateMemberAvailabilityRequest(&dto.MemberAvailabilityRequest{
			Times: []dto.AvailableTimeRequest{
				{Date: "2023-07-10", StartTime: "10:00", EndTime: "11:00", Priority: 4},
			},
		})

		var got []string
		for _, e := range result.Errors {
			got = append(got, e.Field)
		}
		assert.ElementsMatch(t, []string{"name", "times[0].priority"}, got)
	})

	t.Run("no times", func(t *testing.T) {
		result := ValidateMemberAvailabilityRequest(&dto.MemberAvailabilityRequest{Name: "DSH"})
		assert.True(t, result.HasError())
	})
}

func TestValidateConfirmMeetingRequest(t *testing.T) {
	result := ValidateConfirmMeetingRequest(&dto.ConfirmMeetingRequest{
		Date:         "2023-07-10",
		StartTime:    "13:00",
		EndTime:      "12:30",
		FixedUserIDs: []uuid.UUID{uuid.New()},
	})

	var got []string
	for _, e := range result.Errors {
		got = append(got, e.Field)
	}
	assert.Equal(t, []string{"end_time"}, got)
}
