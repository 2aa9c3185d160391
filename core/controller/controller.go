package controller

import (
	stderrors "errors"
	"net/http"
	"time"

	"meeting-planner/core/errors"
	"meeting-planner/core/logger"

	"github.com/labstack/echo/v4"
)

type (
	SuccessResponse struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Status    string           `json:"status"`
		Code      errors.ErrorCode `json:"code"`
		Message   string           `json:"message"`
		Details   any              `json:"details,omitempty"`
		Timestamp time.Time        `json:"timestamp"`
	}

	ValidationError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
)

// BaseController is embedded by module controllers and middleware.
type BaseController interface {
	BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	SuccessResponse(c echo.Context, data any, message string) error
	CreatedResponse(c echo.Context, data any, message string) error
	ErrorResponse(c echo.Context, err error) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

var statusByCode = map[errors.ErrorCode]int{
	errors.ErrInvalidInput:               http.StatusBadRequest,
	errors.ErrInvalidRequestData:         http.StatusBadRequest,
	errors.ErrUnauthorized:               http.StatusUnauthorized,
	errors.ErrTokenExpired:               http.StatusUnauthorized,
	errors.ErrInvalidTokenFormat:         http.StatusUnauthorized,
	errors.ErrMissingAuthorizationHeader: http.StatusUnauthorized,
	errors.ErrForbidden:                  http.StatusForbidden,
	errors.ErrNotFound:                   http.StatusNotFound,
	errors.ErrAlreadyExists:              http.StatusConflict,
	errors.ErrConflict:                   http.StatusConflict,
}

// StatusFor maps an application error code to its HTTP status. Unknown codes
// are server errors.
func StatusFor(code errors.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newErrorBody(appErrCode errors.ErrorCode, message string, details ...any) *ErrorResponse {
	body := &ErrorResponse{
		Status:    "error",
		Code:      appErrCode,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		body.Details = details[0]
	}
	return body
}

// NewErrorResponse wraps the error body in an echo.HTTPError, so handlers and
// middleware can simply return it.
func NewErrorResponse(httpStatusCode int, appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return echo.NewHTTPError(httpStatusCode, newErrorBody(appErrCode, message, details...))
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

func (h *responseHandler) BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusBadRequest, appErrCode, message, details...)
}

func (h *responseHandler) Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusUnauthorized, appErrCode, message, details...)
}

func (h *responseHandler) Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusForbidden, appErrCode, message, details...)
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, &SuccessResponse{
		Status:    http.StatusOK,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func (h *responseHandler) CreatedResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusCreated, &SuccessResponse{
		Status:    http.StatusCreated,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// ErrorResponse writes err as JSON. *errors.AppError anywhere in the chain
// decides the status; anything else is a 500 with the error text.
func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	httpStatus := http.StatusInternalServerError
	appCode := errors.ErrInternalServer
	msg := "internal server error"

	var ae *errors.AppError
	switch {
	case stderrors.As(err, &ae) && ae != nil:
		appCode = ae.Code
		httpStatus = StatusFor(ae.Code)
		if ae.Message != "" {
			msg = ae.Message
		}
	case err != nil && err.Error() != "":
		msg = err.Error()
	}

	logger.Error("BaseController:ErrorResponse",
		"status", httpStatus,
		"code", appCode,
		"message", msg,
		"error", err,
	)
	return c.JSON(httpStatus, newErrorBody(appCode, msg))
}
