package service

import (
	"context"
	stderrors "errors"
	"slices"
	"time"

	"meeting-planner/core/cache"
	"meeting-planner/core/constants"
	"meeting-planner/core/errors"
	"meeting-planner/core/logger"
	"meeting-planner/core/queue"
	"meeting-planner/core/utils"
	"meeting-planner/modules/meeting/dto"
	"meeting-planner/modules/meeting/entity"
	"meeting-planner/modules/meeting/repository"
	"meeting-planner/modules/meeting/schedule"

	"github.com/google/uuid"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	repo      repository.MeetingRepositoryInterface
	cache     cache.Cache
	publisher queue.Publisher
}

//go:generate mockgen -source=meeting_service.go -destination=../../../mocks/mock_meeting_service.go -package=mocks

// MeetingServiceInterface defines the service contract
type MeetingServiceInterface interface {
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, *errors.AppError)
	GetMeetingSchedule(ctx context.Context, code string) (*dto.MeetingScheduleResponse, *errors.AppError)
	HostLogin(ctx context.Context, code string, req *dto.HostLoginRequest) (*dto.TokenResponse, *errors.AppError)
	SubmitHostAvailability(ctx context.Context, code string, claims *utils.TokenClaims, req *dto.HostAvailabilityRequest) *errors.AppError
	SubmitMemberAvailability(ctx context.Context, code string, req *dto.MemberAvailabilityRequest) (*dto.TokenResponse, *errors.AppError)
	GetBestMeetingTime(ctx context.Context, code string, claims *utils.TokenClaims) (*dto.BestMeetingTimeResponse, *errors.AppError)
	GetTimeTable(ctx context.Context, code string, claims *utils.TokenClaims) (*dto.TimeTableResponse, *errors.AppError)
	ConfirmMeeting(ctx context.Context, code string, claims *utils.TokenClaims, req *dto.ConfirmMeetingRequest) *errors.AppError
	GetConfirmedMeeting(ctx context.Context, code string) (*dto.ConfirmedMeetingResponse, *errors.AppError)
	GetMeetingStatus(ctx context.Context, code string) (*dto.MeetingStatusResponse, *errors.AppError)
	WarmInsights(ctx context.Context, code string) *errors.AppError
}

// NewMeetingService creates a new meeting service. publisher may be nil, in
// which case insights are only computed on read.
func NewMeetingService(repo repository.MeetingRepositoryInterface, insightCache cache.Cache, publisher queue.Publisher) MeetingServiceInterface {
	return &MeetingService{
		repo:      repo,
		cache:     insightCache,
		publisher: publisher,
	}
}

// CreateMeeting stores a new meeting with its host and returns the share code
// together with a host token.
func (s *MeetingService) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, *errors.AppError) {
	if req.Duration <= 0 || req.Duration > schedule.DurationThreeHour {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid duration", schedule.ErrInvalidDuration)
	}

	dates, appErr := parseAvailableDates(req.AvailableDates)
	if appErr != nil {
		return nil, appErr
	}

	preferTimes, appErr := parsePreferTimes(req.PreferTimes)
	if appErr != nil {
		return nil, appErr
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("MeetingService:CreateMeeting:HashPassword", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting", err)
	}

	code, err := utils.GenerateMeetingCode(req.Title)
	if err != nil {
		logger.Error("MeetingService:CreateMeeting:GenerateMeetingCode", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting", err)
	}

	meeting := &entity.Meeting{
		Code:           code,
		Title:          req.Title,
		PasswordHash:   hashed,
		AdditionalInfo: req.AdditionalInfo,
		Duration:       int(req.Duration),
		PlaceType:      req.PlaceType,
		PlaceDetail:    req.PlaceDetail,
	}

	availableDates := make([]entity.AvailableDate, 0, len(dates))
	for _, d := range dates {
		availableDates = append(availableDates, entity.AvailableDate{AvailableDate: d.Time()})
	}

	created, host, err := s.repo.CreateMeeting(ctx, meeting, availableDates, preferTimes, &entity.MeetingUser{
		Name: req.Name,
		Role: entity.UserRoleHost,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting", err)
	}

	token, err := utils.GenerateToken(host.ID, created.ID, constants.TokenRoleHost)
	if err != nil {
		logger.Error("MeetingService:CreateMeeting:GenerateToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	logger.Info("MeetingService:CreateMeeting:Success", "meeting_id", created.ID, "code", created.Code)
	return &dto.CreateMeetingResponse{Code: created.Code, AccessToken: token}, nil
}

func (s *MeetingService) GetMeetingSchedule(ctx context.Context, code string) (*dto.MeetingScheduleResponse, *errors.AppError) {
	meeting, appErr := s.getMeeting(ctx, code)
	if appErr != nil {
		return nil, appErr
	}

	dates, err := s.repo.GetAvailableDates(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get available dates", err)
	}

	preferTimes, err := s.repo.GetPreferTimes(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get prefer times", err)
	}

	return dto.ToMeetingScheduleResponse(meeting, dates, preferTimes), nil
}

func (s *MeetingService) HostLogin(ctx context.Context, code string, req *dto.HostLoginRequest) (*dto.TokenResponse, *errors.AppError) {
	meeting, appErr := s.getMeeting(ctx, code)
	if appErr != nil {
		return nil, appErr
	}

	host, err := s.repo.GetHost(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get host", err)
	}
	if host == nil || host.Name != req.Name || !utils.CheckPassword(meeting.PasswordHash, req.Password) {
		logger.Warn("MeetingService:HostLogin:InvalidCredentials", "meeting_id", meeting.ID)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid name or password", nil)
	}

	token, err := utils.GenerateToken(host.ID, meeting.ID, constants.TokenRoleHost)
	if err != nil {
		logger.Error("MeetingService:HostLogin:GenerateToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.TokenResponse{Role: entity.UserRoleHost, AccessToken: token}, nil
}

// SubmitHostAvailability replaces the host's marks.
func (s *MeetingService) SubmitHostAvailability(ctx context.Context, code string, claims *utils.TokenClaims, req *dto.HostAvailabilityRequest) *errors.AppError {
	meeting, appErr := s.getMeetingAsHost(ctx, code, claims)
	if appErr != nil {
		return appErr
	}
	if meeting.IsConfirmed() {
		return errors.NewAppError(errors.ErrConflict, "Meeting is already confirmed", nil)
	}

	marks, appErr := s.expandAvailability(ctx, meeting, req.Times)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.ReplaceAvailability(ctx, meeting.ID, claims.UserID, marks); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save available times", err)
	}

	s.afterSubmission(ctx, meeting)
	return nil
}

// SubmitMemberAvailability registers a new member with their marks and
// returns a member token.
func (s *MeetingService) SubmitMemberAvailability(ctx context.Context, code string, req *dto.MemberAvailabilityRequest) (*dto.TokenResponse, *errors.AppError) {
	meeting, appErr := s.getMeeting(ctx, code)
	if appErr != nil {
		return nil, appErr
	}
	if meeting.IsConfirmed() {
		return nil, errors.NewAppError(errors.ErrConflict, "Meeting is already confirmed", nil)
	}

	marks, appErr := s.expandAvailability(ctx, meeting, req.Times)
	if appErr != nil {
		return nil, appErr
	}

	member, err := s.repo.CreateMemberWithAvailability(ctx, &entity.MeetingUser{
		MeetingID: meeting.ID,
		Name:      req.Name,
		Role:      entity.UserRoleMember,
	}, marks)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save available times", err)
	}

	s.afterSubmission(ctx, meeting)

	token, err := utils.GenerateToken(member.ID, meeting.ID, constants.TokenRoleMember)
	if err != nil {
		logger.Error("MeetingService:SubmitMemberAvailability:GenerateToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.TokenResponse{Role: entity.UserRoleMember, AccessToken: token}, nil
}

func (s *MeetingService) ConfirmMeeting(ctx context.Context, code string, claims *utils.TokenClaims, req *dto.ConfirmMeetingRequest) *errors.AppError {
	meeting, appErr := s.getMeetingAsHost(ctx, code, claims)
	if appErr != nil {
		return appErr
	}
	if meeting.IsConfirmed() {
		return errors.NewAppError(errors.ErrConflict, "Meeting is already confirmed", nil)
	}

	allowed, appErr := s.availableDateSet(ctx, meeting.ID)
	if appErr != nil {
		return appErr
	}
	date, appErr := parseMeetingDate(req.Date, allowed)
	if appErr != nil {
		return appErr
	}
	start, end, appErr := parseTimeRange(req.StartTime, req.EndTime)
	if appErr != nil {
		return appErr
	}

	users, err := s.repo.GetUsers(ctx, meeting.ID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get users", err)
	}
	for _, id := range req.FixedUserIDs {
		if !slices.ContainsFunc(users, func(u entity.MeetingUser) bool { return u.ID == id }) {
			return errors.NewAppError(errors.ErrInvalidInput, "User does not belong to this meeting", nil)
		}
	}

	err = s.repo.ConfirmMeeting(ctx, meeting.ID, date.Time(), int(start), int(end), req.FixedUserIDs)
	if stderrors.Is(err, repository.ErrAlreadyConfirmed) {
		return errors.NewAppError(errors.ErrConflict, "Meeting is already confirmed", err)
	}
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to confirm meeting", err)
	}

	logger.Info("MeetingService:ConfirmMeeting:Success", "meeting_id", meeting.ID, "date", date, "start", start, "end", end)
	return nil
}

func (s *MeetingService) GetConfirmedMeeting(ctx context.Context, code string) (*dto.ConfirmedMeetingResponse, *errors.AppError) {
	meeting, appErr := s.getMeeting(ctx, code)
	if appErr != nil {
		return nil, appErr
	}
	if !meeting.IsConfirmed() {
		return nil, errors.NewAppError(errors.ErrConflict, "Meeting is not confirmed yet", nil)
	}

	host, err := s.repo.GetHost(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get host", err)
	}

	fixed, err := s.repo.GetFixedUsers(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get fixed users", err)
	}

	return dto.ToConfirmedMeetingResponse(meeting, host, fixed), nil
}

func (s *MeetingService) GetMeetingStatus(ctx context.Context, code string) (*dto.MeetingStatusResponse, *errors.AppError) {
	meeting, appErr := s.getMeeting(ctx, code)
	if appErr != nil {
		return nil, appErr
	}
	return &dto.MeetingStatusResponse{IsConfirmed: meeting.IsConfirmed()}, nil
}

// ===================== helpers =====================

func (s *MeetingService) getMeeting(ctx context.Context, code string) (*entity.Meeting, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByCode(ctx, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	return meeting, nil
}

// getMeetingAsHost also checks that claims were issued to the host of this meeting.
func (s *MeetingService) getMeetingAsHost(ctx context.Context, code string, claims *utils.TokenClaims) (*entity.Meeting, *errors.AppError) {
	if claims == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	meeting, appErr := s.getMeeting(ctx, code)
	if appErr != nil {
		return nil, appErr
	}
	if claims.MeetingID != meeting.ID || !claims.IsHost() {
		logger.Warn("MeetingService:getMeetingAsHost:Forbidden", "meeting_id", meeting.ID, "user_id", claims.UserID)
		return nil, errors.NewAppError(errors.ErrForbidden, "Only the host of this meeting can do this", nil)
	}
	return meeting, nil
}

func (s *MeetingService) availableDateSet(ctx context.Context, meetingID uuid.UUID) (map[schedule.Date]struct{}, *errors.AppError) {
	dates, err := s.repo.GetAvailableDates(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get available dates", err)
	}
	set := make(map[schedule.Date]struct{}, len(dates))
	for _, d := range dates {
		set[schedule.DateOf(d.AvailableDate)] = struct{}{}
	}
	return set, nil
}

func (s *MeetingService) expandAvailability(ctx context.Context, meeting *entity.Meeting, times []dto.AvailableTimeRequest) ([]entity.AvailabilityMark, *errors.AppError) {
	allowed, appErr := s.availableDateSet(ctx, meeting.ID)
	if appErr != nil {
		return nil, appErr
	}
	return expandTimes(times, allowed)
}

// afterSubmission drops cached insights and schedules a recompute. Failures
// are logged; the submission itself already succeeded.
func (s *MeetingService) afterSubmission(ctx context.Context, meeting *entity.Meeting) {
	s.invalidateInsights(ctx, meeting.ID)

	if s.publisher == nil {
		return
	}
	enqueueCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()
	if err := s.publisher.Enqueue(enqueueCtx, constants.TaskWarmMeetingInsights, WarmInsightsPayload{
		MeetingCode: meeting.Code,
		RequestedAt: time.Now().UTC(),
	}); err != nil {
		logger.Warn("MeetingService:afterSubmission:Enqueue", "meeting_id", meeting.ID, "error", err)
	}
}
