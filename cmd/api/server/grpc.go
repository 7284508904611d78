package server

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"land-marketplace-service/pkg/logger"
)

// HealthServiceName is the gRPC health entry reported for the marketplace API.
const HealthServiceName = "land.v1"

// SetupGRPC creates the gRPC server exposing the standard health service
func SetupGRPC(l *zap.Logger) (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			logger.LoggingInterceptor(l),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(HealthServiceName, healthpb.HealthCheckResponse_SERVING)

	return grpcServer, healthServer
}
