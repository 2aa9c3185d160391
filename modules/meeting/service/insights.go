package service

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"meeting-planner/core/cache"
	"meeting-planner/core/constants"
	"meeting-planner/core/errors"
	"meeting-planner/core/logger"
	"meeting-planner/core/utils"
	"meeting-planner/modules/meeting/dto"
	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/schedule"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// WarmInsightsPayload is the body of a constants.TaskWarmMeetingInsights task.
type WarmInsightsPayload struct {
	MeetingCode string    `json:"meeting_code"`
	RequestedAt time.Time `json:"requested_at"`
}

type insights struct {
	best  *dto.BestMeetingTimeResponse
	table *dto.TimeTableResponse
}

// insightGen is the cache generation a read or recompute started under.
// Submissions bump the generation, so results computed from an older snapshot
// land under keys nobody reads any more. When valid is false nothing is cached.
type insightGen struct {
	n     int64
	valid bool
}

func generationKey(meetingID uuid.UUID) string {
	return constants.RedisKeyInsightGeneration + meetingID.String()
}

func insightKey(prefix string, meetingID uuid.UUID, gen int64) string {
	return prefix + meetingID.String() + ":" + strconv.FormatInt(gen, 10)
}

func bestTimeKey(meetingID uuid.UUID, gen int64) string {
	return insightKey(constants.RedisKeyBestMeetingTime, meetingID, gen)
}

func timeTableKey(meetingID uuid.UUID, gen int64) string {
	return insightKey(constants.RedisKeyTimeTable, meetingID, gen)
}

func (s *MeetingService) GetBestMeetingTime(ctx context.Context, code string, claims *utils.TokenClaims) (*dto.BestMeetingTimeResponse, *errors.AppError) {
	meeting, appErr := s.getMeetingAsHost(ctx, code, claims)
	if appErr != nil {
		return nil, appErr
	}

	gen := s.insightGeneration(ctx, meeting.ID)
	var cached dto.BestMeetingTimeResponse
	if s.readCache(ctx, gen, bestTimeKey(meeting.ID, gen.n), &cached) {
		return &cached, nil
	}

	result, appErr := s.computeInsights(ctx, meeting, gen)
	if appErr != nil {
		return nil, appErr
	}
	return result.best, nil
}

func (s *MeetingService) GetTimeTable(ctx context.Context, code string, claims *utils.TokenClaims) (*dto.TimeTableResponse, *errors.AppError) {
	meeting, appErr := s.getMeetingAsHost(ctx, code, claims)
	if appErr != nil {
		return nil, appErr
	}

	gen := s.insightGeneration(ctx, meeting.ID)
	var cached dto.TimeTableResponse
	if s.readCache(ctx, gen, timeTableKey(meeting.ID, gen.n), &cached) {
		return &cached, nil
	}

	result, appErr := s.computeInsights(ctx, meeting, gen)
	if appErr != nil {
		return nil, appErr
	}
	return result.table, nil
}

// WarmInsights recomputes and caches both insights of a meeting.
func (s *MeetingService) WarmInsights(ctx context.Context, code string) *errors.AppError {
	meeting, appErr := s.getMeeting(ctx, code)
	if appErr != nil {
		return appErr
	}
	_, appErr = s.computeInsights(ctx, meeting, s.insightGeneration(ctx, meeting.ID))
	return appErr
}

// computeInsights aggregates the meeting's marks once and derives the best
// times and the time table from that snapshot concurrently.
func (s *MeetingService) computeInsights(ctx context.Context, meeting *entity.Meeting, gen insightGen) (*insights, *errors.AppError) {
	users, err := s.repo.GetUsers(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get users", err)
	}

	rows, err := s.repo.GetAvailabilityMarks(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get available times", err)
	}

	roster, marks := toScheduleInput(users, rows)
	agg := schedule.Aggregate(marks)
	memberCount := len(roster)

	var result insights
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := schedule.Recommend(agg, schedule.Duration(meeting.Duration), memberCount)
		if err != nil {
			return err
		}
		result.best = dto.ToBestMeetingTimeResponse(recs, roster, memberCount)
		return nil
	})
	g.Go(func() error {
		result.table = dto.ToTimeTableResponse(schedule.BuildTimeTable(agg, roster, memberCount))
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("MeetingService:computeInsights", "meeting_id", meeting.ID, "duration", meeting.Duration, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute meeting insights", err)
	}

	s.writeCache(ctx, gen, bestTimeKey(meeting.ID, gen.n), result.best)
	s.writeCache(ctx, gen, timeTableKey(meeting.ID, gen.n), result.table)
	return &result, nil
}

// toScheduleInput uses every user of the meeting as the roster, in join
// order. A user who never submitted still counts, so no window reaches full
// attendance until everyone has answered.
func toScheduleInput(users []entity.MeetingUser, rows []entity.AvailabilityMark) ([]schedule.Participant, []schedule.AvailabilityMark) {
	marks := make([]schedule.AvailabilityMark, 0, len(rows))
	for _, r := range rows {
		marks = append(marks, schedule.AvailabilityMark{
			UserID:   r.UserID,
			Date:     schedule.DateOf(r.AvailableDate),
			Slot:     schedule.Slot(r.Slot),
			Priority: r.Priority,
		})
	}

	roster := make([]schedule.Participant, 0, len(users))
	for _, u := range users {
		roster = append(roster, schedule.Participant{ID: u.ID, Name: u.Name})
	}
	return roster, marks
}

func (s *MeetingService) insightGeneration(ctx context.Context, meetingID uuid.UUID) insightGen {
	if s.cache == nil {
		return insightGen{}
	}
	n, err := s.cache.GetInt(ctx, generationKey(meetingID))
	if err != nil {
		logger.Warn("MeetingService:insightGeneration", "meeting_id", meetingID, "error", err)
		return insightGen{}
	}
	return insightGen{n: n, valid: true}
}

func (s *MeetingService) readCache(ctx context.Context, gen insightGen, key string, dest any) bool {
	if s.cache == nil || !gen.valid {
		return false
	}
	err := s.cache.GetJSON(ctx, key, dest)
	if err == nil {
		return true
	}
	if !stderrors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("MeetingService:readCache", "key", key, "error", err)
	}
	return false
}

func (s *MeetingService) writeCache(ctx context.Context, gen insightGen, key string, value any) {
	if s.cache == nil || !gen.valid {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, constants.InsightCacheTTL); err != nil {
		logger.Warn("MeetingService:writeCache", "key", key, "error", err)
	}
}

// invalidateInsights moves the meeting to a new generation and drops the
// previous generation's entries. If the bump fails the current entries are
// deleted instead.
func (s *MeetingService) invalidateInsights(ctx context.Context, meetingID uuid.UUID) {
	if s.cache == nil {
		return
	}
	stale, err := s.cache.Incr(ctx, generationKey(meetingID), constants.InsightGenerationTTL)
	if err == nil {
		stale--
	} else {
		logger.Warn("MeetingService:invalidateInsights:Incr", "meeting_id", meetingID, "error", err)
		if stale, err = s.cache.GetInt(ctx, generationKey(meetingID)); err != nil {
			logger.Warn("MeetingService:invalidateInsights:GetInt", "meeting_id", meetingID, "error", err)
			return
		}
	}
	if err := s.cache.Delete(ctx, bestTimeKey(meetingID, stale), timeTableKey(meetingID, stale)); err != nil {
		logger.Warn("MeetingService:invalidateInsights:Delete", "meeting_id", meetingID, "error", err)
	}
}
