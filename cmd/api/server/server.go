package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"land-marketplace-service/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	Gin    *http.Server
	GRPC   *grpc.Server
	Health *health.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, router *gin.Engine) *Server {
	grpcServer, healthServer := SetupGRPC(l)
	return &Server{
		Config: cfg,
		Logger: l,
		Gin:    SetupGinServer(router, ":"+cfg.App.HTTPPort, l),
		GRPC:   grpcServer,
		Health: healthServer,
	}
}

// Start runs the REST and gRPC servers and returns when either stops with an error
func (s *Server) Start() error {
	errCh := make(chan error, 2)

	go func() {
		if err := s.startGRPC(); err != nil {
			errCh <- fmt.Errorf("failed to start gRPC server: %w", err)
		}
	}()

	go func() {
		s.Logger.Info("Gin REST API running", zap.String("address", s.Gin.Addr))
		if err := s.Gin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start Gin server: %w", err)
		}
	}()

	return <-errCh
}

// Shutdown marks the service as not serving, then stops both servers
func (s *Server) Shutdown(ctx context.Context) error {
	s.Health.Shutdown()

	var errs []error
	s.Logger.Info("shutting down Gin server...")
	if err := s.Gin.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("gin shutdown: %w", err))
	}

	s.Logger.Info("shutting down gRPC server...")
	stopped := make(chan struct{})
	go func() {
		s.GRPC.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.GRPC.Stop()
		errs = append(errs, fmt.Errorf("grpc shutdown: %w", ctx.Err()))
	}

	return errors.Join(errs...)
}

// startGRPC starts the gRPC server
func (s *Server) startGRPC() error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(context.Background(), "tcp", ":"+s.Config.App.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.Logger.Info("gRPC server running", zap.String("address", lis.Addr().String()))
	if err := s.GRPC.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
