package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meeting-planner/core/constants"
	"meeting-planner/core/errors"
	"meeting-planner/core/utils"
	"meeting-planner/mocks"
	"meeting-planner/modules/meeting/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestController(t *testing.T) (*MeetingController, *mocks.MockMeetingServiceInterface) {
	t.Helper()
	svc := mocks.NewMockMeetingServiceInterface(gomock.NewController(t))
	return NewMeetingController(svc), svc
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func TestMeetingController_CreateMeeting(t *testing.T) {
	t.Run("Should create meeting", func(t *testing.T) {
		ctrl, svc := newTestController(t)
		svc.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, *errors.AppError) {
				assert.Equal(t, "Weekly sync", req.Title)
				assert.Equal(t, "HOUR", req.Duration.String())
				return &dto.CreateMeetingResponse{Code: "weekly-sync-4fXk29Qa", AccessToken: "token"}, nil
			}).Times(1)

		c, rec := newContext(http.MethodPost, "/api/v1/meetings", `{
			"title": "Weekly sync",
			"available_dates": ["2023-07-10"],
			"prefer_times": [{"start_time": "09:00", "end_time": "12:00"}],
			"place_type": "ONLINE",
			"duration": "HOUR",
			"name": "KWY",
			"password": "0000"
		}`)

		require.NoError(t, ctrl.CreateMeeting(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "weekly-sync-4fXk29Qa", decodeData(t, rec)["code"])
	})

	t.Run("Should reject unknown duration name", func(t *testing.T) {
		ctrl, _ := newTestController(t)
		c, _ := newContext(http.MethodPost, "/api/v1/meetings", `{"duration": "FOREVER"}`)

		err := ctrl.CreateMeeting(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Should reject invalid body", func(t *testing.T) {
		ctrl, _ := newTestController(t)
		c, _ := newContext(http.MethodPost, "/api/v1/meetings", `{"title": ""}`)

		err := ctrl.CreateMeeting(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestMeetingController_GetBestMeetingTime(t *testing.T) {
	t.Run("Should encode empty positions as null", func(t *testing.T) {
		ctrl, svc := newTestController(t)
		claims := &utils.TokenClaims{UserID: uuid.New(), MeetingID: uuid.New(), Role: constants.TokenRoleHost}

		resp := &dto.BestMeetingTimeResponse{MemberCount: 2}
		resp.BestDateTimes[0] = &dto.BestDateTimeResponse{Date: "2023-07-10", StartTime: "11:00", EndTime: "12:00"}
		svc.EXPECT().GetBestMeetingTime(gomock.Any(), "abc", claims).Return(resp, nil).Times(1)

		c, rec := newContext(http.MethodGet, "/api/v1/meetings/abc/best", "")
		c.SetParamNames("code")
		c.SetParamValues("abc")
		c.Set(constants.ContextTokenData, claims)

		require.NoError(t, ctrl.GetBestMeetingTime(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		best, ok := decodeData(t, rec)["best_date_times"].([]any)
		require.True(t, ok)
		require.Len(t, best, 3)
		assert.NotNil(t, best[0])
		assert.Nil(t, best[1])
		assert.Nil(t, best[2])
	})

	t.Run("Should require token data", func(t *testing.T) {
		ctrl, _ := newTestController(t)
		c, _ := newContext(http.MethodGet, "/api/v1/meetings/abc/best", "")

		err := ctrl.GetBestMeetingTime(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestMeetingController_HostLogin(t *testing.T) {
	ctrl, svc := newTestController(t)
	svc.EXPECT().HostLogin(gomock.Any(), "abc", &dto.HostLoginRequest{Name: "KWY", Password: "0000"}).
		Return(&dto.TokenResponse{Role: "HOST", AccessToken: "token"}, nil).Times(1)

	c, rec := newContext(http.MethodPost, "/api/v1/meetings/abc/host", `{"name": "KWY", "password": "0000"}`)
	c.SetParamNames("code")
	c.SetParamValues("abc")

	require.NoError(t, ctrl.HostLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token", decodeData(t, rec)["access_token"])
}

func TestMeetingController_SubmitMemberAvailability(t *testing.T) {
	t.Run("Should create member", func(t *testing.T) {
		ctrl, svc := newTestController(t)
		svc.EXPECT().SubmitMemberAvailability(gomock.Any(), "abc", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *dto.MemberAvailabilityRequest) (*dto.TokenResponse, *errors.AppError) {
				require.Len(t, req.Times, 1)
				assert.Equal(t, 2, req.Times[0].Priority)
				return &dto.TokenResponse{Role: "MEMBER", AccessToken: "token"}, nil
			}).Times(1)

		c, rec := newContext(http.MethodPost, "/api/v1/meetings/abc/times", `{
			"name": "Lee",
			"times": [{"date": "2023-07-10", "start_time": "09:00", "end_time": "10:30", "priority": 2}]
		}`)
		c.SetParamNames("code")
		c.SetParamValues("abc")

		require.NoError(t, ctrl.SubmitMemberAvailability(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "MEMBER", decodeData(t, rec)["role"])
	})

	t.Run("Should reject end before start", func(t *testing.T) {
		ctrl, _ := newTestController(t)
		c, _ := newContext(http.MethodPost, "/api/v1/meetings/abc/times", `{
			"name": "Lee",
			"times": [{"date": "2023-07-10", "start_time": "10:30", "end_time": "09:00"}]
		}`)
		c.SetParamNames("code")
		c.SetParamValues("abc")

		err := ctrl.SubmitMemberAvailability(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestMeetingController_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		code       errors.ErrorCode
		wantStatus int
	}{
		{name: "not found", code: errors.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict", code: errors.ErrConflict, wantStatus: http.StatusConflict},
		{name: "invalid input", code: errors.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "forbidden", code: errors.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "internal", code: errors.ErrInternalServer, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, svc := newTestController(t)
			svc.EXPECT().GetConfirmedMeeting(gomock.Any(), "abc").
				Return(nil, errors.NewAppError(tt.code, "boom", nil)).Times(1)

			c, rec := newContext(http.MethodGet, "/api/v1/meetings/abc/confirmed", "")
			c.SetParamNames("code")
			c.SetParamValues("abc")

			require.NoError(t, ctrl.GetConfirmedMeeting(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tt.code), body["code"])
			assert.Equal(t, "boom", body["message"])
		})
	}
}

func TestMeetingController_GetMeetingStatus(t *testing.T) {
	ctrl, svc := newTestController(t)
	svc.EXPECT().GetMeetingStatus(gomock.Any(), "abc").Return(&dto.MeetingStatusResponse{IsConfirmed: true}, nil).Times(1)

	c, rec := newContext(http.MethodGet, "/api/v1/meetings/abc/status", "")
	c.SetParamNames("code")
	c.SetParamValues("abc")

	require.NoError(t, ctrl.GetMeetingStatus(c))
	assert.Equal(t, true, decodeData(t, rec)["is_confirmed"])
}
