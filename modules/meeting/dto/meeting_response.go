package dto

import (
	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/schedule"

	"github.com/google/uuid"
)

// ===================== Response DTOs =====================

type CreateMeetingResponse struct {
	Code        string `json:"code"`
	AccessToken string `json:"access_token"`
}

type TokenResponse struct {
	Role        entity.UserRole `json:"role"`
	AccessToken string          `json:"access_token"`
}

type AvailableDateResponse struct {
	Date      string `json:"date"`
	Month     string `json:"month"`
	Day       string `json:"day"`
	DayOfWeek string `json:"day_of_week"`
}

type TimeRangeResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type MeetingScheduleResponse struct {
	Duration       schedule.Duration       `json:"duration" swaggertype:"string" enums:"HALF,HOUR,HOUR_HALF,TWO_HOUR,TWO_HOUR_HALF,THREE_HOUR"`
	PlaceType      entity.PlaceType        `json:"place_type"`
	PlaceDetail    *string                 `json:"place_detail,omitempty"`
	AvailableDates []AvailableDateResponse `json:"available_dates"`
	PreferTimes    []TimeRangeResponse     `json:"prefer_times"`
}

type UserResponse struct {
	ID   uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Name string    `json:"name"`
}

type BestDateTimeResponse struct {
	Date      string         `json:"date"`
	DayOfWeek string         `json:"day_of_week"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Users     []UserResponse `json:"users"`
}

// BestMeetingTimeResponse always carries three entries; empty ones encode as null.
type BestMeetingTimeResponse struct {
	MemberCount   int                                                 `json:"member_count"`
	BestDateTimes [schedule.RecommendationCount]*BestDateTimeResponse `json:"best_date_times"`
}

type TimeSlotResponse struct {
	Time       string   `json:"time"`
	UserNames  []string `json:"user_names"`
	ColorLevel int      `json:"color_level"`
}

type DateTimeTableResponse struct {
	AvailableDateResponse
	Times []TimeSlotResponse `json:"times"`
}

type TimeTableResponse struct {
	MemberCount    int                     `json:"member_count"`
	TotalUserNames []string                `json:"total_user_names"`
	AvailableDates []DateTimeTableResponse `json:"available_dates"`
}

type ConfirmedMeetingResponse struct {
	Title          string           `json:"title"`
	PlaceType      entity.PlaceType `json:"place_type"`
	PlaceDetail    *string          `json:"place_detail,omitempty"`
	Date           string           `json:"date"`
	DayOfWeek      string           `json:"day_of_week"`
	StartTime      string           `json:"start_time"`
	EndTime        string           `json:"end_time"`
	HostName       string           `json:"host_name"`
	Users          []UserResponse   `json:"users"`
	AdditionalInfo *string          `json:"additional_info,omitempty"`
}

type MeetingStatusResponse struct {
	IsConfirmed bool `json:"is_confirmed"`
}
