package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"meeting-planner/core/constants"
	"meeting-planner/core/errors"
	"meeting-planner/core/logger"
	"meeting-planner/core/queue"
	"meeting-planner/modules/meeting/service"

	"github.com/hibiken/asynq"
)

// InsightsWorker recomputes cached insights after availability changes.
type InsightsWorker struct {
	MeetingService service.MeetingServiceInterface
}

func NewInsightsWorker(svc service.MeetingServiceInterface) *InsightsWorker {
	return &InsightsWorker{MeetingService: svc}
}

func (w *InsightsWorker) Register(wk *queue.Worker) {
	wk.Handle(constants.TaskWarmMeetingInsights, w.HandleWarmInsights)
}

// HandleWarmInsights skips retries for malformed payloads and meetings that no
// longer exist.
func (w *InsightsWorker) HandleWarmInsights(ctx context.Context, payload []byte) error {
	var p service.WarmInsightsPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		logger.Error("InsightsWorker:HandleWarmInsights:Unmarshal", "error", err)
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}
	if p.MeetingCode == "" {
		return fmt.Errorf("%w: empty meeting code", asynq.SkipRetry)
	}

	if appErr := w.MeetingService.WarmInsights(ctx, p.MeetingCode); appErr != nil {
		if appErr.Code == errors.ErrNotFound {
			logger.Warn("InsightsWorker:HandleWarmInsights:NotFound", "code", p.MeetingCode)
			return fmt.Errorf("%w: %w", asynq.SkipRetry, appErr)
		}
		return appErr
	}

	logger.Debug("InsightsWorker:HandleWarmInsights:Success", "code", p.MeetingCode)
	return nil
}
