package service

import (
	"context"

	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
)

type VerificationService interface {
	GetStatus(ctx context.Context, userID uuid.UUID) (*domain.VerificationStatus, error)
	CanCreateBooking(ctx context.Context, userID uuid.UUID) (bool, error)
	CanCreateListing(ctx context.Context, userID uuid.UUID) (bool, error)
	DescribeBlockingReason(status domain.VerificationStatus) string
}

type BookingService interface {
	CreateRequest(ctx context.Context, renterID uuid.UUID, req domain.BookingRequest) (*domain.Booking, error)
	Approve(ctx context.Context, bookingID, actorID uuid.UUID) (*domain.Booking, error)
	Reject(ctx context.Context, bookingID, actorID uuid.UUID) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID, actorID uuid.UUID, payload domain.CompletionPayload) (*domain.Booking, error)
	Get(ctx context.Context, bookingID, actorID uuid.UUID) (*domain.Booking, error)
	ListForParty(ctx context.Context, actorID uuid.UUID, role domain.PartyRole, status domain.BookingStatus) ([]domain.Booking, error)
}

type ReputationService interface {
	ComputeSubjectRating(ctx context.Context, subjectID uuid.UUID, perspective domain.Perspective) (*domain.SubjectRating, error)
	ComputeMachineRating(ctx context.Context, machineID uuid.UUID) (*domain.MachineRating, error)
	SubmitReview(ctx context.Context, actorID uuid.UUID, sub domain.ReviewSubmission) (*domain.Review, error)
	ListReviewsForSubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Review, error)
	ListReviewsForMachine(ctx context.Context, machineID uuid.UUID) ([]domain.Review, error)
	RebuildAggregates(ctx context.Context) (*RebuildSummary, error)
}

type PaymentService interface {
	ApplyPaymentUpdate(ctx context.Context, bookingID uuid.UUID, status domain.PaymentStatus, gatewayRef string) (*domain.Booking, error)
}

type ListingService interface {
	CreateMachine(ctx context.Context, ownerID uuid.UUID, listing domain.MachineListing) (*domain.Machine, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// RatingCache is a read-through cache in front of the aggregate tables.
// A miss returns a nil rating and the entry's generation. Handing that
// generation back to the Set call drops the fill if the entry was invalidated
// in between, so a slow reader never caches counters older than a review.
type RatingCache interface {
	GetSubjectRating(ctx context.Context, subjectID uuid.UUID, perspective domain.Perspective) (*domain.SubjectRating, int64, error)
	SetSubjectRating(ctx context.Context, rating *domain.SubjectRating, gen int64) error
	GetMachineRating(ctx context.Context, machineID uuid.UUID) (*domain.MachineRating, int64, error)
	SetMachineRating(ctx context.Context, rating *domain.MachineRating, gen int64) error
	InvalidateSubject(ctx context.Context, subjectID uuid.UUID, perspective domain.Perspective) error
	InvalidateMachine(ctx context.Context, machineID uuid.UUID) error
}

// EventPublisher announces committed transitions. Implementations must not
// block the caller for long; failures are logged by the caller and dropped.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
