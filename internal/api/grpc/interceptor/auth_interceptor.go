package interceptor

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"agrorent-backend/internal/config"
	"agrorent-backend/internal/security"
)

// userIDHeader must match the key the handlers read.
const userIDHeader = "user-id"

type AuthInterceptor struct {
	tokenManager security.TokenManager
	levelFor     func(method string) config.SecurityLevel
}

func NewAuthInterceptor(tm security.TokenManager) *AuthInterceptor {
	return &AuthInterceptor{tokenManager: tm, levelFor: config.GetSecurityLevel}
}

// Unary returns a server interceptor function to authenticate unary RPCs
func (i *AuthInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		// A client-supplied user-id is never trusted.
		ctx = stripUserID(ctx)

		if i.levelFor(info.FullMethod) == config.SecurityPublic {
			return handler(ctx, req)
		}

		token, err := extractToken(ctx)
		if err != nil {
			return nil, err
		}

		claims, err := i.tokenManager.ValidateToken(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}
		if claims.Type != security.TokenTypeAccess {
			return nil, status.Error(codes.PermissionDenied, "access token required")
		}

		md, _ := metadata.FromIncomingContext(ctx)
		md = md.Copy()
		md.Set(userIDHeader, claims.UserID.String())
		return handler(metadata.NewIncomingContext(ctx, md), req)
	}
}

func stripUserID(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return metadata.NewIncomingContext(ctx, metadata.New(nil))
	}
	if len(md.Get(userIDHeader)) == 0 {
		return ctx
	}
	md = md.Copy()
	md.Delete(userIDHeader)
	return metadata.NewIncomingContext(ctx, md)
}

func extractToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is not provided")
	}

	authHeader := md.Get("authorization")
	if len(authHeader) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization token is not provided")
	}

	token := authHeader[0]
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}
	return token, nil
}
