package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported alongside the overall "".
const ServiceName = "scriptsense.OCRWorker"

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// Health serves gRPC health and reflection and keeps the serving status in
// sync with the registered probes.
type Health struct {
	grpc     *grpc.Server
	hs       *health.Server
	probes   []Probe
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewHealth(probes []Probe, interval time.Duration, logger *slog.Logger) *Health {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	g := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(g, hs)
	// Reflection for grpcurl
	reflection.Register(g)
	return &Health{grpc: g, hs: hs, probes: probes, interval: interval, timeout: 3 * time.Second, logger: logger}
}

// CheckOnce runs every probe and updates the serving status.
func (h *Health) CheckOnce(ctx context.Context) bool {
	ok := true
	for _, p := range h.probes {
		pctx, cancel := context.WithTimeout(ctx, h.timeout)
		err := p.Check(pctx)
		cancel()
		if err != nil {
			h.logger.Warn("health.probe.failed", "probe", p.Name, "error", err)
			ok = false
		}
	}
	status := healthpb.HealthCheckResponse_SERVING
	if !ok {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.hs.SetServingStatus("", status)
	h.hs.SetServingStatus(ServiceName, status)
	return ok
}

// Watch re-runs the probes until ctx ends.
func (h *Health) Watch(ctx context.Context) {
	h.CheckOnce(ctx)
	t := time.NewTicker(h.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.CheckOnce(ctx)
		}
	}
}

// Serve blocks serving gRPC on lis.
func (h *Health) Serve(lis net.Listener) error {
	h.logger.Info("gRPC health serving", "addr", lis.Addr().String())
	return h.grpc.Serve(lis)
}

// Stop marks the service not serving and drains gRPC.
func (h *Health) Stop() {
	h.hs.Shutdown()
	h.grpc.GracefulStop()
}

// NewMetricsServer exposes handler on /metrics.
func NewMetricsServer(addr string, handler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
