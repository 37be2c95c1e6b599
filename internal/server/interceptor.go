package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/o-adebayo/pdf-assistant/internal/common"
)

// UnaryRequestID tags every call with a request id and logs its outcome.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"code", status.Code(err).String(),
				"elapsed_ms", elapsed.Milliseconds(),
			)
		} else {
			logger.Info("rpc ok",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed_ms", elapsed.Milliseconds(),
			)
		}
		return resp, err
	}
}
