package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
	"github.com/joseph-ayodele/scriptsense/internal/pipeline"
	"github.com/joseph-ayodele/scriptsense/internal/queue"
	repo "github.com/joseph-ayodele/scriptsense/internal/repository"
	"github.com/joseph-ayodele/scriptsense/internal/retention"
	"github.com/joseph-ayodele/scriptsense/internal/server"
)

func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	logger := cfg.Log.NewLogger()
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	rdb := queue.NewRedisClient(cfg.Redis)
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis client", "error", err)
		}
	}()

	m := metrics.New()
	results := repo.NewResultRepository(db, logger)
	proc, err := pipeline.Build(cfg, m, logger, pipeline.WithSink(results))
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(2)
	}

	var pruner *retention.Pruner
	if cfg.Retention.MaxAge > 0 {
		pruner, err = retention.New(results, cfg.Retention.MaxAge, cfg.Retention.Schedule, logger)
		if err != nil {
			logger.Error("invalid retention schedule", "error", err)
			os.Exit(2)
		}
		pruner.Start()
	}

	handler := queue.NewHandler(queue.NewRedisStager(rdb), proc, m, cfg.Queue.RunTimeout, logger)
	worker := queue.NewServer(queue.RedisOpt(cfg.Redis), cfg.Queue, handler, logger)
	if err := worker.Start(); err != nil {
		logger.Error("failed to start worker", "error", err)
		os.Exit(1)
	}

	health := server.NewHealth([]server.Probe{
		{Name: "database", Check: func(ctx context.Context) error { return db.HealthCheck(ctx, 0) }},
		{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	}, 15*time.Second, logger)
	go health.Watch(ctx)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		if err := health.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	metricsSrv := server.NewMetricsServer(cfg.Server.MetricsAddr, m.Handler())
	go func() {
		logger.Info("metrics serving", "addr", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics serve failed", "error", err)
			stop()
		}
	}()

	logger.Info("ocrd started",
		"queue", cfg.Queue.Name,
		"concurrency", cfg.Queue.Concurrency,
		"task", queue.TaskProcessDocument,
		"asynq_redis", cfg.Redis.Addr,
	)

	<-ctx.Done()
	logger.Info("shutting down...")

	worker.Shutdown()
	if pruner != nil {
		pruner.Stop()
	}
	health.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
