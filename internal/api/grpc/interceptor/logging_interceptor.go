package interceptor

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"agrorent-backend/internal/logger"
)

// Logging tags each call with a request id, logs its outcome and turns a
// handler panic into codes.Internal. Install it before the auth interceptor.
func Logging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		requestID := requestIDFrom(ctx)
		l := logger.Get().With("request_id", requestID, "rpc", info.FullMethod)
		ctx = logger.WithContext(ctx, l)
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				l.Error("Panic in handler", "panic", r, "stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "internal error")
				resp = nil
			}
			code := status.Code(err)
			attrs := []any{"code", code.String(), "duration_ms", time.Since(start).Milliseconds()}
			switch code {
			case codes.OK:
				l.Info("rpc", attrs...)
			case codes.Internal, codes.Unavailable, codes.Unknown:
				l.Error("rpc", append(attrs, "error", err)...)
			default:
				l.Warn("rpc", append(attrs, "error", err)...)
			}
		}()

		return handler(ctx, req)
	}
}

func requestIDFrom(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get("x-request-id"); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}
