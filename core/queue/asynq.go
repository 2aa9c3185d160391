package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"meeting-planner/core/config"
	"meeting-planner/core/constants"
	"meeting-planner/core/logger"

	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=asynq.go -destination=../../mocks/mock_publisher.go -package=mocks

// Publisher enqueues background tasks.
type Publisher interface {
	Enqueue(ctx context.Context, taskType string, payload any) error
}

type AsynqPublisher struct {
	client *asynq.Client
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewPublisher(cfg config.RedisConfig) *AsynqPublisher {
	return &AsynqPublisher{client: asynq.NewClient(redisOpt(cfg))}
}

func (p *AsynqPublisher) Enqueue(ctx context.Context, taskType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	info, err := p.client.EnqueueContext(ctx, asynq.NewTask(taskType, raw),
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(constants.TaskMaxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	logger.Debug("Queue:Enqueue:Success", "type", taskType, "task_id", info.ID)
	return nil
}

func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// Worker runs registered task handlers.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *Worker {
	server := asynq.NewServer(redisOpt(redisCfg), asynq.Config{
		Concurrency: queueCfg.Concurrency,
		Queues:      map[string]int{constants.QueueDefault: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Queue:Worker:TaskFailed", "type", task.Type(), "error", err)
		}),
	})
	return &Worker{server: server, mux: asynq.NewServeMux()}
}

func (w *Worker) Handle(taskType string, handler func(ctx context.Context, payload []byte) error) {
	w.mux.HandleFunc(taskType, func(ctx context.Context, task *asynq.Task) error {
		return handler(ctx, task.Payload())
	})
}

// Start processes tasks in the background until Shutdown.
func (w *Worker) Start() error {
	logger.Info("Queue:Worker:Starting")
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
	logger.Info("Queue:Worker:Stopped")
}
