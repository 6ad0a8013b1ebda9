package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
)

// RequestIDHeader is read from incoming metadata and echoed back.
const RequestIDHeader = "x-request-id"

// UnaryInterceptor attaches a request-scoped logger (req_id, method) to the
// context and records request count and latency.
func UnaryInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := requestID(ctx)
		log := base.With("req_id", reqID, "method", info.FullMethod)
		ctx = logger.IntoContext(ctx, log)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, reqID))

		start := time.Now()
		timer := prometheus.NewTimer(metrics.GRPCRequestDuration.WithLabelValues(info.FullMethod))
		resp, err := handler(ctx, req)
		timer.ObserveDuration()

		code := status.Code(err)
		metrics.GRPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()

		switch code {
		case codes.OK:
			log.Debug("request handled", "duration", time.Since(start))
		case codes.Internal, codes.Unknown, codes.Unavailable:
			log.Error("request failed", "code", code.String(), "err", err, "duration", time.Since(start))
		default:
			log.Info("request rejected", "code", code.String(), "err", err)
		}
		return resp, err
	}
}

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDHeader); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return uuid.NewString()
}
