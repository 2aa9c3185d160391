package router

import (
	"meeting-planner/core/middleware"
	"meeting-planner/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

// MeetingRouter handles meeting routes
type MeetingRouter struct {
	MeetingController *controller.MeetingController
}

func NewMeetingRouter(meetingController *controller.MeetingController) *MeetingRouter {
	return &MeetingRouter{
		MeetingController: meetingController,
	}
}

// Setup registers meeting routes
func (r *MeetingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	meetingRoutes := v1.Group("/meetings")

	// Public
	meetingRoutes.POST("", r.MeetingController.CreateMeeting)
	meetingRoutes.GET("/:code/schedule", r.MeetingController.GetMeetingSchedule)
	meetingRoutes.POST("/:code/host", r.MeetingController.HostLogin)
	meetingRoutes.POST("/:code/times", r.MeetingController.SubmitMemberAvailability)
	meetingRoutes.GET("/:code/confirmed", r.MeetingController.GetConfirmedMeeting)
	meetingRoutes.GET("/:code/status", r.MeetingController.GetMeetingStatus)

	// Host only
	hostRoutes := meetingRoutes.Group("/:code", mw.AuthMiddleware(), mw.HostOnly())
	hostRoutes.POST("/host/times", r.MeetingController.SubmitHostAvailability)
	hostRoutes.GET("/best", r.MeetingController.GetBestMeetingTime)
	hostRoutes.GET("/timetable", r.MeetingController.GetTimeTable)
	hostRoutes.POST("/confirm", r.MeetingController.ConfirmMeeting)
}
