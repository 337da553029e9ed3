package healthcheck

import (
	"context"
	"net"
	"time"

	"github.com/sbilibin2017/gw-twitter/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Check pings one dependency. A nil error means the dependency is usable.
type Check func(ctx context.Context) error

// Server exposes the standard gRPC health service.
// The overall status ("") is SERVING only while every registered check passes.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	checks     map[string]Check
}

// NewServer creates a health server reporting the given checks by name.
func NewServer(checks map[string]Check) *Server {
	s := &Server{
		grpcServer: grpc.NewServer(),
		health:     health.NewServer(),
		checks:     checks,
	}
	healthpb.RegisterHealthServer(s.grpcServer, s.health)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	for name := range checks {
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return s
}

// Update runs every check once and publishes the results.
func (s *Server) Update(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for name, check := range s.checks {
		status := healthpb.HealthCheckResponse_SERVING
		if err := check(ctx); err != nil {
			logger.Log.Warnw("health check failed", "check", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.health.SetServingStatus(name, status)
	}
	s.health.SetServingStatus("", overall)
}

// Watch calls Update right away and then every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, every time.Duration) {
	s.Update(ctx)

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Update(ctx)
		}
	}
}

// Serve accepts gRPC connections on lis until GracefulStop is called.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop marks everything NOT_SERVING and drains open calls.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
