package logger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// RequestIDInterceptor is a gRPC interceptor that adds a request ID to the context.
// An incoming x-request-id metadata value is reused.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get("x-request-id"); len(ids) > 0 {
				requestID = ids[0]
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}

		return handler(WithRequestID(ctx, requestID), req)
	}
}

// LoggingInterceptor logs every unary call with its duration and error.
func LoggingInterceptor(l *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		log := WithContext(ctx, l)
		if err != nil {
			log.Warn("grpc call failed", zap.String("method", info.FullMethod), zap.Duration("latency", time.Since(start)), zap.Error(err))
		} else {
			log.Debug("grpc call", zap.String("method", info.FullMethod), zap.Duration("latency", time.Since(start)))
		}
		return resp, err
	}
}
