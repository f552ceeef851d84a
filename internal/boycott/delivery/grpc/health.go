package grpc

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/tair/boycott-service/pkg/logger"
)

// ServiceName is the name reported by the health service besides the empty overall name
const ServiceName = "boycott"

const pingTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer implements grpc.health.v1.Health by pinging the document store
type HealthServer struct {
	healthpb.UnimplementedHealthServer
	store Pinger
}

// NewHealthServer creates a new health server
func NewHealthServer(store Pinger) *HealthServer {
	return &HealthServer{store: store}
}

// Check reports SERVING when the store answers a ping
func (s *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if s.store == nil {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	if err := s.store.Ping(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("gRPC health check: store unavailable")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

// NewServer builds a gRPC server exposing the health and reflection services
func NewServer(store Pinger) *grpc.Server {
	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(LoggingInterceptor),
	)

	healthpb.RegisterHealthServer(server, NewHealthServer(store))

	// Register reflection service (for grpcurl and grpc tools)
	reflection.Register(server)

	return server
}
