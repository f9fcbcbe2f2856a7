package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
)

// BookingCompletion is the column set written together with the
// confirmed -> completed edge.
type BookingCompletion struct {
	Terms       domain.CompletionPayload
	CompletedAt time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByParty(ctx context.Context, userID uuid.UUID, role domain.PartyRole, status domain.BookingStatus) ([]domain.Booking, error)

	// TransitionStatus moves the booking from expected to next only if its
	// status still equals expected at write time. It reports whether the row
	// was written.
	TransitionStatus(ctx context.Context, id uuid.UUID, expected, next domain.BookingStatus) (bool, error)
	// Complete writes status=completed, completed_at and the billing columns
	// in one conditional statement guarded by status=confirmed.
	Complete(ctx context.Context, id uuid.UUID, completion BookingCompletion) (bool, error)
	// UpdatePaymentStatus is the gateway path. It never touches status.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, expected, next domain.PaymentStatus) (bool, error)
}

type ReviewRepository interface {
	// InsertIfAbsent stores the review and folds it into both aggregates in
	// one transaction. A second review for (booking, reviewer) fails with
	// domain.ErrDuplicateReview and changes nothing.
	InsertIfAbsent(ctx context.Context, review *domain.Review) error
	ListBySubject(ctx context.Context, reviewedID uuid.UUID) ([]domain.Review, error)
	// ListByMachine returns only client_reviews_owner rows, the ones that
	// describe the machine.
	ListByMachine(ctx context.Context, machineID uuid.UUID) ([]domain.Review, error)
}

// AggregateBuilder derives the complete aggregate sets from every stored
// review.
type AggregateBuilder func(reviews []domain.Review) ([]domain.RatingAggregate, []domain.MachineRatingAggregate)

type RatingAggregateRepository interface {
	GetSubject(ctx context.Context, subjectID uuid.UUID, perspective domain.Perspective) (*domain.RatingAggregate, error)
	GetMachine(ctx context.Context, machineID uuid.UUID) (*domain.MachineRatingAggregate, error)
	// Rebuild reads every review, hands them to build and replaces all
	// aggregate rows with its result, in one transaction that holds a SHARE
	// lock on reviews. A review insert racing the rebuild waits for it and
	// then applies its increment on top of the rebuilt rows.
	Rebuild(ctx context.Context, build AggregateBuilder) error
}

type DocumentRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error)
}

type MachineRepository interface {
	Create(ctx context.Context, machine *domain.Machine) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Machine, error)
}
