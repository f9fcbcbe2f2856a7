package grpc

import (
	"google.golang.org/grpc"

	pb "agrorent-backend/api/gen/v1"
)

// Handlers groups the API implementations mounted on one server.
type Handlers struct {
	Booking      *BookingHandler
	Reputation   *ReputationHandler
	Verification *VerificationHandler
	Listing      *ListingHandler
	Profile      *ProfileHandler
}

// Register mounts every non-nil handler on s.
func Register(s grpc.ServiceRegistrar, h Handlers) {
	if h.Booking != nil {
		pb.RegisterBookingServiceServer(s, h.Booking)
	}
	if h.Reputation != nil {
		pb.RegisterReputationServiceServer(s, h.Reputation)
	}
	if h.Verification != nil {
		pb.RegisterVerificationServiceServer(s, h.Verification)
	}
	if h.Listing != nil {
		pb.RegisterListingServiceServer(s, h.Listing)
	}
	if h.Profile != nil {
		pb.RegisterProfileServiceServer(s, h.Profile)
	}
}
