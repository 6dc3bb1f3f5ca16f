package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/joseph-ayodele/scriptsense/internal/common"
)

// RedisOpt maps the Redis config section to asynq's connection options.
func RedisOpt(cfg common.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
}

// Server runs the asynq worker loop for process tasks.
type Server struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *slog.Logger
}

func NewServer(redisOpt asynq.RedisConnOpt, cfg common.QueueConfig, h *Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues:      map[string]int{cfg.Name: 10, "default": 1},
		RetryDelayFunc: func(n int, _ error, _ *asynq.Task) time.Duration {
			delay := time.Duration(5*(1<<uint(n))) * time.Second
			if delay > time.Minute {
				delay = time.Minute
			}
			return delay
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, t *asynq.Task, err error) {
			logger.Error("queue.task.error", "task", t.Type(), "error", err)
		}),
		Logger:          slogAdapter{logger.With("component", "asynq")},
		ShutdownTimeout: cfg.RunTimeout,
	})
	mux := asynq.NewServeMux()
	mux.Handle(TaskProcessDocument, h)
	return &Server{srv: srv, mux: mux, logger: logger}
}

// Start begins processing in background goroutines.
func (s *Server) Start() error {
	s.logger.Info("queue worker starting")
	if err := s.srv.Start(s.mux); err != nil {
		return fmt.Errorf("start queue worker: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight tasks up to the configured timeout.
func (s *Server) Shutdown() {
	s.logger.Info("queue worker stopping")
	s.srv.Shutdown()
	s.logger.Info("queue worker stopped")
}

// slogAdapter satisfies asynq.Logger.
type slogAdapter struct{ l *slog.Logger }

func (a slogAdapter) Debug(args ...interface{}) { a.l.Debug(fmt.Sprint(args...)) }
func (a slogAdapter) Info(args ...interface{})  { a.l.Info(fmt.Sprint(args...)) }
func (a slogAdapter) Warn(args ...interface{})  { a.l.Warn(fmt.Sprint(args...)) }
func (a slogAdapter) Error(args ...interface{}) { a.l.Error(fmt.Sprint(args...)) }
func (a slogAdapter) Fatal(args ...interface{}) {
	a.l.Error(fmt.Sprint(args...))
	os.Exit(1)
}
