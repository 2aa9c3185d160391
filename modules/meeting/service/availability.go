package service

import (
	"cmp"
	"slices"

	"meeting-planner/core/constants"
	"meeting-planner/core/errors"
	"meeting-planner/modules/meeting/dto"
	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/schedule"
)

// parseAvailableDates returns the dates sorted and de-duplicated.
func parseAvailableDates(raw []string) ([]schedule.Date, *errors.AppError) {
	if len(raw) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "At least one available date is required", nil)
	}

	dates := make([]schedule.Date, 0, len(raw))
	for _, r := range raw {
		d, err := schedule.ParseDate(r)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid available date", err)
		}
		dates = append(dates, d)
	}

	slices.SortFunc(dates, schedule.Date.Compare)
	return slices.Compact(dates), nil
}

// parsePreferTimes sorts ranges by start and rejects overlapping ones.
// Touching ranges such as 09:00-10:00 and 10:00-11:00 are fine.
func parsePreferTimes(raw []dto.PreferTimeRequest) ([]entity.PreferTime, *errors.AppError) {
	out := make([]entity.PreferTime, 0, len(raw))
	for _, r := range raw {
		start, end, appErr := parseTimeRange(r.StartTime, r.EndTime)
		if appErr != nil {
			return nil, appErr
		}
		out = append(out, entity.PreferTime{StartSlot: int(start), EndSlot: int(end)})
	}

	slices.SortFunc(out, func(a, b entity.PreferTime) int {
		return cmp.Compare(a.StartSlot, b.StartSlot)
	})
	for i := 1; i < len(out); i++ {
		if out[i].StartSlot < out[i-1].EndSlot {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Prefer times must not overlap", nil)
		}
	}
	return out, nil
}

// parseTimeRange parses a [start, end) pair of "HH:MM" labels.
func parseTimeRange(startLabel, endLabel string) (schedule.Slot, schedule.Slot, *errors.AppError) {
	start, err := schedule.ParseSlot(startLabel)
	if err != nil || !start.Valid() {
		return 0, 0, errors.NewAppError(errors.ErrInvalidInput, "Invalid start time", err)
	}
	end, err := schedule.ParseSlot(endLabel)
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrInvalidInput, "Invalid end time", err)
	}
	if end <= start {
		return 0, 0, errors.NewAppError(errors.ErrInvalidInput, "Start time must be before end time", nil)
	}
	return start, end, nil
}

func parseMeetingDate(raw string, allowed map[schedule.Date]struct{}) (schedule.Date, *errors.AppError) {
	d, err := schedule.ParseDate(raw)
	if err != nil {
		return schedule.Date{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid date", err)
	}
	if _, ok := allowed[d]; !ok {
		return schedule.Date{}, errors.NewAppError(errors.ErrInvalidInput, "Date is not one of the meeting's available dates", nil)
	}
	return d, nil
}

// expandTimes turns submitted ranges into one mark per slot. A slot covered by
// two ranges keeps the priority of the first one.
func expandTimes(times []dto.AvailableTimeRequest, allowed map[schedule.Date]struct{}) ([]entity.AvailabilityMark, *errors.AppError) {
	if len(times) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "At least one available time is required", nil)
	}

	seen := make(map[schedule.BlockKey]struct{})
	var marks []entity.AvailabilityMark
	for _, t := range times {
		if t.Priority < 0 || t.Priority > constants.MaxPriority {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid priority", nil)
		}
		date, appErr := parseMeetingDate(t.Date, allowed)
		if appErr != nil {
			return nil, appErr
		}
		start, end, appErr := parseTimeRange(t.StartTime, t.EndTime)
		if appErr != nil {
			return nil, appErr
		}

		slots, err := schedule.SlotRange(start, end)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid time range", err)
		}
		for _, slot := range slots {
			key := schedule.BlockKey{Date: date, Slot: slot}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			marks = append(marks, entity.AvailabilityMark{
				AvailableDate: date.Time(),
				Slot:          int(slot),
				Priority:      t.Priority,
			})
		}
	}
	return marks, nil
}
