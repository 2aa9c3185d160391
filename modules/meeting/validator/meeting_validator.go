package validator

import (
	"fmt"

	"meeting-planner/core/validator"
	"meeting-planner/modules/meeting/dto"
	"meeting-planner/modules/meeting/schedule"
)

func ValidateCreateMeetingRequest(req *dto.CreateMeetingRequest) *validator.ValidationResult {
	result := validator.Struct(req)
	for i, p := range req.PreferTimes {
		checkTimeRange(result, fmt.Sprintf("prefer_times[%d]", i), p.StartTime, p.EndTime)
	}
	return result
}

func ValidateHostLoginRequest(req *dto.HostLoginRequest) *validator.ValidationResult {
	return validator.Struct(req)
}

func ValidateHostAvailabilityRequest(req *dto.HostAvailabilityRequest) *validator.ValidationResult {
	result := validator.Struct(req)
	checkTimes(result, req.Times)
	return result
}

func ValidateMemberAvailabilityRequest(req *dto.MemberAvailabilityRequest) *validator.ValidationResult {
	result := validator.Struct(req)
	checkTimes(result, req.Times)
	return result
}

func ValidateConfirmMeetingRequest(req *dto.ConfirmMeetingRequest) *validator.ValidationResult {
	result := validator.Struct(req)
	checkTimeRange(result, "", req.StartTime, req.EndTime)
	return result
}

func checkTimes(result *validator.ValidationResult, times []dto.AvailableTimeRequest) {
	for i, t := range times {
		checkTimeRange(result, fmt.Sprintf("times[%d]", i), t.StartTime, t.EndTime)
	}
}

// checkTimeRange only reports labels that are present; missing ones are
// already flagged by the required tag.
func checkTimeRange(result *validator.ValidationResult, prefix, startLabel, endLabel string) {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	var start, end schedule.Slot
	var startOK, endOK bool
	if startLabel != "" {
		s, err := schedule.ParseSlot(startLabel)
		startOK = err == nil && s.Valid()
		if !startOK {
			result.Add(field("start_time"), "must be a half-hour time between 06:00 and 23:30")
		}
		start = s
	}
	if endLabel != "" {
		e, err := schedule.ParseSlot(endLabel)
		endOK = err == nil
		if !endOK {
			result.Add(field("end_time"), "must be a half-hour time between 06:00 and 24:00")
		}
		end = e
	}
	if startOK && endOK && end <= start {
		result.Add(field("end_time"), "must be after start_time")
	}
}
