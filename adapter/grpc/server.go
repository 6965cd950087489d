package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/felixgeelhaar/taskstream/gen/taskmanagerpb"
)

// ServerConfig holds configuration for the gRPC server.
type ServerConfig struct {
	// Addr is the listen address, e.g. "0.0.0.0:50053".
	Addr string

	// StreamWorkers bounds the worker pool handling request streams.
	// Zero keeps gRPC's default of one goroutine per stream.
	StreamWorkers int
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          "0.0.0.0:50053",
		StreamWorkers: 10,
	}
}

// Server serves the TaskManager gRPC API.
type Server struct {
	cfg    ServerConfig
	server *grpc.Server
	health *health.Server
	logger *slog.Logger
}

// NewServer creates a new Server and registers the TaskManager and health
// services on it.
func NewServer(cfg ServerConfig, handler *TaskManagerHandler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	var opts []grpc.ServerOption
	if cfg.StreamWorkers > 0 {
		opts = append(opts,
			grpc.NumStreamWorkers(uint32(cfg.StreamWorkers)),
			grpc.MaxConcurrentStreams(uint32(cfg.StreamWorkers)),
		)
	}

	grpcServer := grpc.NewServer(opts...)
	taskmanagerpb.RegisterTaskManagerServer(grpcServer, handler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		cfg:    cfg,
		server: grpcServer,
		health: healthServer,
		logger: logger,
	}
}

// Run listens on the configured address and serves until ctx is cancelled,
// then drains in-flight requests with a graceful stop.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("gRPC server listening",
		"addr", lis.Addr().String(),
		"stream_workers", s.cfg.StreamWorkers,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		s.logger.Info("shutting down gRPC server")
		s.server.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Serve serves on an existing listener. Useful for tests that supply an
// in-memory listener.
func (s *Server) Serve(lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return s.server.Serve(lis)
}

// Stop stops the server immediately.
func (s *Server) Stop() {
	s.server.Stop()
}
