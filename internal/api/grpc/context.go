package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UserIDKey is the metadata header the auth interceptor sets after validating
// the bearer token.
const UserIDKey = "user-id"

// GetUserIDFromContext extracts the authenticated user ID from the gRPC metadata.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, status.Errorf(codes.Unauthenticated, "metadata is not provided")
	}

	userIDs := md.Get(UserIDKey)
	if len(userIDs) == 0 {
		return uuid.Nil, status.Errorf(codes.Unauthenticated, "user id is not provided in metadata")
	}

	userID, err := uuid.Parse(userIDs[0])
	if err != nil {
		return uuid.Nil, status.Errorf(codes.Unauthenticated, "invalid user id format: %v", err)
	}
	return userID, nil
}
