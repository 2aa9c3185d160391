package controller

import (
	"meeting-planner/core/constants"
	"meeting-planner/core/controller"
	"meeting-planner/core/errors"
	"meeting-planner/core/utils"
	"meeting-planner/modules/meeting/dto"
	"meeting-planner/modules/meeting/service"
	"meeting-planner/modules/meeting/validator"

	"github.com/labstack/echo/v4"
)

// MeetingController handles meeting HTTP requests
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// getTokenClaims extracts the claims stored by the auth middleware
func (c *MeetingController) getTokenClaims(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims, nil
}

// @Summary Create a meeting
// @Description Creates a meeting and its host, and returns the share code with a host token
// @Tags Meeting
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Meeting"
// @Success 201 {object} controller.SuccessResponse{data=dto.CreateMeetingResponse}
// @Failure 400 {object} controller.ErrorResponse
// @Failure 500 {object} controller.ErrorResponse
// @Router /meetings [post]
func (c *MeetingController) CreateMeeting(ctx echo.Context) error {
	requestData := new(dto.CreateMeetingRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateMeetingRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.CreateMeeting(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "create meeting success")
}

// @Summary Get meeting schedule
// @Description Duration, place, available dates and prefer times of a meeting
// @Tags Meeting
// @Produce json
// @Param code path string true "Meeting code"
// @Success 200 {object} controller.SuccessResponse{data=dto.MeetingScheduleResponse}
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{code}/schedule [get]
func (c *MeetingController) GetMeetingSchedule(ctx echo.Context) error {
	result, appErr := c.MeetingService.GetMeetingSchedule(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "get meeting schedule success")
}

// @Summary Host login
// @Tags Meeting
// @Accept json
// @Produce json
// @Param code path string true "Meeting code"
// @Param request body dto.HostLoginRequest true "Credentials"
// @Success 200 {object} controller.SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{code}/host [post]
func (c *MeetingController) HostLogin(ctx echo.Context) error {
	requestData := new(dto.HostLoginRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateHostLoginRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.HostLogin(ctx.Request().Context(), ctx.Param("code"), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "host login success")
}

// @Summary Submit host available times
// @Description Replaces the host's available times
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param code path string true "Meeting code"
// @Param request body dto.HostAvailabilityRequest true "Available times"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 403 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /meetings/{code}/host/times [post]
func (c *MeetingController) SubmitHostAvailability(ctx echo.Context) error {
	claims, err := c.getTokenClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	requestData := new(dto.HostAvailabilityRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateHostAvailabilityRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	appErr := c.MeetingService.SubmitHostAvailability(ctx.Request().Context(), ctx.Param("code"), claims, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "save host available times success")
}

// @Summary Submit member available times
// @Description Registers a new member with their available times and returns a member token
// @Tags Meeting
// @Accept json
// @Produce json
// @Param code path string true "Meeting code"
// @Param request body dto.MemberAvailabilityRequest true "Available times"
// @Success 201 {object} controller.SuccessResponse{data=dto.TokenResponse}
// @Failure 400 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /meetings/{code}/times [post]
func (c *MeetingController) SubmitMemberAvailability(ctx echo.Context) error {
	requestData := new(dto.MemberAvailabilityRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateMemberAvailabilityRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.SubmitMemberAvailability(ctx.Request().Context(), ctx.Param("code"), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "save available times success")
}

// @Summary Get best meeting times
// @Description Up to three full-attendance windows; empty positions are null
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param code path string true "Meeting code"
// @Success 200 {object} controller.SuccessResponse{data=dto.BestMeetingTimeResponse}
// @Failure 401 {object} controller.ErrorResponse
// @Failure 403 {object} controller.ErrorResponse
// @Router /meetings/{code}/best [get]
func (c *MeetingController) GetBestMeetingTime(ctx echo.Context) error {
	claims, err := c.getTokenClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.MeetingService.GetBestMeetingTime(ctx.Request().Context(), ctx.Param("code"), claims)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "get best meeting time success")
}

// @Summary Get time table
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param code path string true "Meeting code"
// @Success 200 {object} controller.SuccessResponse{data=dto.TimeTableResponse}
// @Failure 401 {object} controller.ErrorResponse
// @Failure 403 {object} controller.ErrorResponse
// @Router /meetings/{code}/timetable [get]
func (c *MeetingController) GetTimeTable(ctx echo.Context) error {
	claims, err := c.getTokenClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.MeetingService.GetTimeTable(ctx.Request().Context(), ctx.Param("code"), claims)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "get time table success")
}

// @Summary Confirm a meeting
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param code path string true "Meeting code"
// @Param request body dto.ConfirmMeetingRequest true "Confirmed time"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /meetings/{code}/confirm [post]
func (c *MeetingController) ConfirmMeeting(ctx echo.Context) error {
	claims, err := c.getTokenClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	requestData := new(dto.ConfirmMeetingRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateConfirmMeetingRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	appErr := c.MeetingService.ConfirmMeeting(ctx.Request().Context(), ctx.Param("code"), claims, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "confirm meeting success")
}

// @Summary Get confirmed meeting
// @Tags Meeting
// @Produce json
// @Param code path string true "Meeting code"
// @Success 200 {object} controller.SuccessResponse{data=dto.ConfirmedMeetingResponse}
// @Failure 404 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /meetings/{code}/confirmed [get]
func (c *MeetingController) GetConfirmedMeeting(ctx echo.Context) error {
	result, appErr := c.MeetingService.GetConfirmedMeeting(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "get confirmed meeting success")
}

// @Summary Is the meeting confirmed
// @Tags Meeting
// @Produce json
// @Param code path string true "Meeting code"
// @Success 200 {object} controller.SuccessResponse{data=dto.MeetingStatusResponse}
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{code}/status [get]
func (c *MeetingController) GetMeetingStatus(ctx echo.Context) error {
	result, appErr := c.MeetingService.GetMeetingStatus(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "get meeting status success")
}
