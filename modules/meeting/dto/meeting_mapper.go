package dto

import (
	"fmt"

	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/schedule"

	"github.com/google/uuid"
)

func ToAvailableDateResponse(d schedule.Date) AvailableDateResponse {
	return AvailableDateResponse{
		Date:      d.String(),
		Month:     fmt.Sprintf("%02d", int(d.Month)),
		Day:       fmt.Sprintf("%02d", d.Day),
		DayOfWeek: d.Weekday().String(),
	}
}

func ToMeetingScheduleResponse(meeting *entity.Meeting, dates []entity.AvailableDate, preferTimes []entity.PreferTime) *MeetingScheduleResponse {
	resp := &MeetingScheduleResponse{
		Duration:       schedule.Duration(meeting.Duration),
		PlaceType:      meeting.PlaceType,
		PlaceDetail:    meeting.PlaceDetail,
		AvailableDates: make([]AvailableDateResponse, 0, len(dates)),
		PreferTimes:    make([]TimeRangeResponse, 0, len(preferTimes)),
	}
	for _, d := range dates {
		resp.AvailableDates = append(resp.AvailableDates, ToAvailableDateResponse(schedule.DateOf(d.AvailableDate)))
	}
	for _, p := range preferTimes {
		resp.PreferTimes = append(resp.PreferTimes, TimeRangeResponse{
			StartTime: schedule.Slot(p.StartSlot).Label(),
			EndTime:   schedule.Slot(p.EndSlot).Label(),
		})
	}
	return resp
}

// ToBestMeetingTimeResponse resolves participant ids through roster. Ids that
// are not on the roster are left out.
func ToBestMeetingTimeResponse(recs schedule.Recommendations, roster []schedule.Participant, memberCount int) *BestMeetingTimeResponse {
	names := make(map[uuid.UUID]string, len(roster))
	for _, p := range roster {
		names[p.ID] = p.Name
	}

	resp := &BestMeetingTimeResponse{MemberCount: memberCount}
	for i, rec := range recs {
		c, ok := rec.Candidate()
		if !ok {
			continue
		}
		users := make([]UserResponse, 0, len(c.ParticipantIDs))
		for _, id := range c.ParticipantIDs {
			if name, ok := names[id]; ok {
				users = append(users, UserResponse{ID: id, Name: name})
			}
		}
		resp.BestDateTimes[i] = &BestDateTimeResponse{
			Date:      c.Date.String(),
			DayOfWeek: c.Date.Weekday().String(),
			StartTime: c.Start.Label(),
			EndTime:   c.End.Label(),
			Users:     users,
		}
	}
	return resp
}

func ToTimeTableResponse(tt schedule.TimeTable) *TimeTableResponse {
	resp := &TimeTableResponse{
		MemberCount:    tt.MemberCount,
		TotalUserNames: tt.HeaderNames,
		AvailableDates: make([]DateTimeTableResponse, 0, len(tt.Dates)),
	}
	if resp.TotalUserNames == nil {
		resp.TotalUserNames = []string{}
	}
	for _, col := range tt.Dates {
		day := DateTimeTableResponse{
			AvailableDateResponse: ToAvailableDateResponse(col.Date),
			Times:                 make([]TimeSlotResponse, 0, len(col.Slots)),
		}
		for _, cell := range col.Slots {
			day.Times = append(day.Times, TimeSlotResponse{
				Time:       cell.Label,
				UserNames:  cell.Names,
				ColorLevel: cell.ColorLevel,
			})
		}
		resp.AvailableDates = append(resp.AvailableDates, day)
	}
	return resp
}

func ToUserResponses(users []entity.MeetingUser) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID, Name: u.Name})
	}
	return out
}

func ToConfirmedMeetingResponse(meeting *entity.Meeting, host *entity.MeetingUser, fixed []entity.MeetingUser) *ConfirmedMeetingResponse {
	resp := &ConfirmedMeetingResponse{
		Title:          meeting.Title,
		PlaceType:      meeting.PlaceType,
		PlaceDetail:    meeting.PlaceDetail,
		Users:          ToUserResponses(fixed),
		AdditionalInfo: meeting.AdditionalInfo,
	}
	if host != nil {
		resp.HostName = host.Name
	}
	if meeting.IsConfirmed() {
		date := schedule.DateOf(*meeting.ConfirmedDate)
		resp.Date = date.String()
		resp.DayOfWeek = date.Weekday().String()
		resp.StartTime = schedule.Slot(*meeting.ConfirmedStartSlot).Label()
		resp.EndTime = schedule.Slot(*meeting.ConfirmedEndSlot).Label()
	}
	return resp
}
