package router

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/friendgraph/internal/api/grpc/handler"
	"github.com/dtroode/friendgraph/internal/api/grpc/middleware"
	"github.com/dtroode/friendgraph/internal/logger"
)

// Router represents a gRPC router for graph operations.
// It manages service registration and interceptor configuration.
type Router struct {
	service      handler.NetworkService
	readOnly     bool
	snapshotPath string
	logger       *logger.Logger
}

// New creates new gRPC Router instance.
//
// Parameters:
//   - service: The graph façade
//   - readOnly: Whether mutating methods are rejected
//   - snapshotPath: Path used by Save and Load requests without a path
//   - logger: The logger for request logging
func New(
	service handler.NetworkService,
	readOnly bool,
	snapshotPath string,
	logger *logger.Logger,
) *Router {
	return &Router{
		service:      service,
		readOnly:     readOnly,
		snapshotPath: snapshotPath,
		logger:       logger,
	}
}

// Register registers the graph, health and reflection services.
// Requests pass through panic recovery, request logging and, in read-only
// mode, a guard on mutating methods.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	interceptors := []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(r.recover)),
		logging.HandleGRPC,
	}
	if r.readOnly {
		mutations := make([]string, 0, len(handler.Mutations))
		for _, m := range handler.Mutations {
			mutations = append(mutations, handler.FullMethod(m))
		}
		interceptors = append(interceptors, selector.UnaryServerInterceptor(
			middleware.RejectMutations,
			selector.MatchFunc(middleware.MatchMethods(mutations...)),
		))
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))

	handler.RegisterGraphServer(s, handler.NewGraph(r.service, r.snapshotPath, r.logger))

	hs := health.NewServer()
	hs.SetServingStatus(handler.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	reflection.Register(s)

	return s
}

func (r *Router) recover(ctx context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal server error")
}
