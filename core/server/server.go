package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meeting-planner/core/cache"
	"meeting-planner/core/config"
	"meeting-planner/core/constants"
	"meeting-planner/core/database"
	"meeting-planner/core/logger"
	"meeting-planner/core/middleware"
	"meeting-planner/core/queue"
	_ "meeting-planner/docs" // Swagger docs
	"meeting-planner/modules/meeting"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run loads config, connects backing services, serves HTTP and blocks until
// SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Logger.Level, cfg.App.Env)
	defer func() { _ = logger.Sync() }()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return err
	}
	insightCache := cache.NewRedisCache(redisClient)
	defer insightCache.Close()

	var (
		publisher queue.Publisher
		wk        *queue.Worker
	)
	if cfg.Queue.Enabled {
		asynqPublisher := queue.NewPublisher(cfg.Redis)
		defer asynqPublisher.Close()
		publisher = asynqPublisher
		wk = queue.NewWorker(cfg.Redis, cfg.Queue)
	}

	e := NewEcho()
	mw := middleware.NewMiddleware()
	meeting.Init(e, db, insightCache, publisher, wk, mw)

	if wk != nil {
		if err := wk.Start(); err != nil {
			return fmt.Errorf("start worker: %w", err)
		}
		defer wk.Shutdown()
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Info("Server:Run:Listening", "addr", addr, "env", cfg.App.Env)
		if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server:Run:ShuttingDown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// NewEcho builds the echo instance with shared middleware and the health route.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(echomw.ContextTimeoutWithConfig(echomw.ContextTimeoutConfig{
		Timeout: constants.DefaultTimeout,
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("HTTP:Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
