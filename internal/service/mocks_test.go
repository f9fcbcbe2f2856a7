package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/repository"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByParty(ctx context.Context, userID uuid.UUID, role domain.PartyRole, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, role, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) TransitionStatus(ctx context.Context, id uuid.UUID, expected, next domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) Complete(ctx context.Context, id uuid.UUID, c repository.BookingCompletion) (bool, error) {
	args := m.Called(ctx, id, c)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, expected, next domain.PaymentStatus) (bool, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Bool(0), args.Error(1)
}

// MockMachineRepo
type MockMachineRepo struct {
	mock.Mock
}

func (m *MockMachineRepo) Create(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}
func (m *MockMachineRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}

// MockDocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) InsertIfAbsent(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReviewRepo) ListBySubject(ctx context.Context, reviewedID uuid.UUID) ([]domain.Review, error) {
	args := m.Called(ctx, reviewedID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ListByMachine(ctx context.Context, machineID uuid.UUID) ([]domain.Review, error) {
	args := m.Called(ctx, machineID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

// MockAggregateRepo
type MockAggregateRepo struct {
	mock.Mock
}

func (m *MockAggregateRepo) GetSubject(ctx context.Context, subjectID uuid.UUID, p domain.Perspective) (*domain.RatingAggregate, error) {
	args := m.Called(ctx, subjectID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingAggregate), args.Error(1)
}
func (m *MockAggregateRepo) GetMachine(ctx context.Context, machineID uuid.UUID) (*domain.MachineRatingAggregate, error) {
	args := m.Called(ctx, machineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MachineRatingAggregate), args.Error(1)
}
// Rebuild runs build over the reviews given to Return and records what it
// produced with a "Replace" call, so tests can match on the rows written.
func (m *MockAggregateRepo) Rebuild(ctx context.Context, build repository.AggregateBuilder) error {
	args := m.Called(ctx)
	if err := args.Error(1); err != nil {
		return err
	}
	subjects, machines := build(args.Get(0).([]domain.Review))
	return m.MethodCalled("Replace", subjects, machines).Error(0)
}

// MockRatingCache
type MockRatingCache struct {
	mock.Mock
}

func (m *MockRatingCache) GetSubjectRating(ctx context.Context, subjectID uuid.UUID, p domain.Perspective) (*domain.SubjectRating, int64, error) {
	args := m.Called(ctx, subjectID, p)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.SubjectRating), args.Get(1).(int64), args.Error(2)
}
func (m *MockRatingCache) SetSubjectRating(ctx context.Context, r *domain.SubjectRating, gen int64) error {
	args := m.Called(ctx, r, gen)
	return args.Error(0)
}
func (m *MockRatingCache) GetMachineRating(ctx context.Context, machineID uuid.UUID) (*domain.MachineRating, int64, error) {
	args := m.Called(ctx, machineID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.MachineRating), args.Get(1).(int64), args.Error(2)
}
func (m *MockRatingCache) SetMachineRating(ctx context.Context, r *domain.MachineRating, gen int64) error {
	args := m.Called(ctx, r, gen)
	return args.Error(0)
}
func (m *MockRatingCache) InvalidateSubject(ctx context.Context, subjectID uuid.UUID, p domain.Perspective) error {
	args := m.Called(ctx, subjectID, p)
	return args.Error(0)
}
func (m *MockRatingCache) InvalidateMachine(ctx context.Context, machineID uuid.UUID) error {
	args := m.Called(ctx, machineID)
	return args.Error(0)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, payload any) error {
	args := m.Called(ctx, subject, payload)
	return args.Error(0)
}
