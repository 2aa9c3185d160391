package dto

import (
	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/schedule"

	"github.com/google/uuid"
)

type PreferTimeRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type CreateMeetingRequest struct {
	Title          string              `json:"title" validate:"required,max=50"`
	AvailableDates []string            `json:"available_dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	PreferTimes    []PreferTimeRequest `json:"prefer_times" validate:"required,min=1,dive"`
	PlaceType      entity.PlaceType    `json:"place_type" validate:"required,oneof=ONLINE OFFLINE UNDEFINED"`
	PlaceDetail    *string             `json:"place_detail" validate:"omitempty,max=100"`
	Duration       schedule.Duration   `json:"duration" validate:"required,min=1,max=6" swaggertype:"string" enums:"HALF,HOUR,HOUR_HALF,TWO_HOUR,TWO_HOUR_HALF,THREE_HOUR"`
	Name           string              `json:"name" validate:"required,max=20"`
	Password       string              `json:"password" validate:"required,min=4,max=64"`
	AdditionalInfo *string             `json:"additional_info" validate:"omitempty,max=500"`
}

type HostLoginRequest struct {
	Name     string `json:"name" validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
}

// AvailableTimeRequest marks [StartTime, EndTime) on Date as free.
type AvailableTimeRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Priority  int    `json:"priority" validate:"min=0,max=3"`
}

type HostAvailabilityRequest struct {
	Times []AvailableTimeRequest `json:"times" validate:"required,min=1,dive"`
}

type MemberAvailabilityRequest struct {
	Name  string                 `json:"name" validate:"required,max=20"`
	Times []AvailableTimeRequest `json:"times" validate:"required,min=1,dive"`
}

type ConfirmMeetingRequest struct {
	Date         string      `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string      `json:"start_time" validate:"required"`
	EndTime      string      `json:"end_time" validate:"required"`
	FixedUserIDs []uuid.UUID `json:"fixed_user_ids" validate:"required,min=1" swaggertype:"array,string"`
}
