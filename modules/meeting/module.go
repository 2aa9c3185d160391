package meeting

import (
	"meeting-planner/core/cache"
	"meeting-planner/core/database"
	"meeting-planner/core/middleware"
	"meeting-planner/core/queue"
	"meeting-planner/modules/meeting/controller"
	"meeting-planner/modules/meeting/repository"
	"meeting-planner/modules/meeting/router"
	"meeting-planner/modules/meeting/service"
	"meeting-planner/modules/meeting/worker"

	"github.com/labstack/echo/v4"
)

// Init wires the meeting module and registers its routes. When wk is non-nil
// the insight warm-up handler is registered on it.
func Init(e *echo.Echo, db database.IDatabase, insightCache cache.Cache, publisher queue.Publisher, wk *queue.Worker, mw *middleware.Middleware) {
	repo := repository.NewMeetingRepository(db)
	svc := service.NewMeetingService(repo, insightCache, publisher)
	ctrl := controller.NewMeetingController(svc)
	rtr := router.NewMeetingRouter(ctrl)

	rtr.Setup(e, mw)

	if wk != nil {
		worker.NewInsightsWorker(svc).Register(wk)
	}
}
