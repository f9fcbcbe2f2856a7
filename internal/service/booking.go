package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/events"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	machineRepo repository.MachineRepository
	gate        VerificationService
	publisher   EventPublisher
	validate    *validator.Validate
	retry       ReadRetry
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	machineRepo repository.MachineRepository,
	gate VerificationService,
	publisher EventPublisher,
	retry ReadRetry,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		machineRepo: machineRepo,
		gate:        gate,
		publisher:   publisher,
		validate:    newValidator(),
		retry:       retry,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *bookingService) CreateRequest(ctx context.Context, renterID uuid.UUID, req domain.BookingRequest) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.CreateRequest", "renterID", renterID, "machineID", req.MachineID)

	if err := requireGate(ctx, s.gate, renterID); err != nil {
		logger.ExitMethodWithError("bookingService.CreateRequest", err, "renterID", renterID)
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		logger.ExitMethodWithError("bookingService.CreateRequest", err, "renterID", renterID)
		return nil, err
	}

	machine, err := readWithRetry(ctx, s.retry, "get machine", func(ctx context.Context) (*domain.Machine, error) {
		return s.machineRepo.GetByID(ctx, req.MachineID)
	})
	if err != nil {
		logger.ExitMethodWithError("bookingService.CreateRequest", err, "machineID", req.MachineID)
		return nil, err
	}
	if machine.OwnerID == renterID {
		err := domain.NewValidationError("machine_id", "cannot book your own machine")
		logger.ExitMethodWithError("bookingService.CreateRequest", err, "renterID", renterID)
		return nil, err
	}

	b := &domain.Booking{
		RenterID:        renterID,
		OwnerID:         machine.OwnerID,
		MachineID:       machine.ID,
		Status:          domain.BookingStatusPending,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Quantity:        req.Quantity,
		EstimatedAmount: req.EstimatedAmount,
		PaymentStatus:   domain.PaymentStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		logger.ExitMethodWithError("bookingService.CreateRequest", err, "renterID", renterID)
		return nil, err
	}

	s.announce(ctx, events.SubjectBookingRequested, b)
	logger.ExitMethod("bookingService.CreateRequest", "bookingID", b.ID)
	return b, nil
}

func (s *bookingService) validateRequest(req domain.BookingRequest) error {
	if err := validateStruct(s.validate, req); err != nil {
		return err
	}
	if req.EndDate.Before(req.StartDate) {
		return domain.NewValidationError("end_date", "must not be before start_date")
	}
	if !req.Quantity.IsPositive() {
		return domain.NewValidationError("quantity", "must be greater than zero")
	}
	if !domain.FitsScale(req.Quantity) {
		return domain.NewValidationError("quantity", "must have at most 2 decimal places")
	}
	if req.EstimatedAmount.IsNegative() {
		return domain.NewValidationError("estimated_amount", "must not be negative")
	}
	if !domain.FitsScale(req.EstimatedAmount) {
		return domain.NewValidationError("estimated_amount", "must have at most 2 decimal places")
	}
	return nil
}

func (s *bookingService) Approve(ctx context.Context, bookingID, actorID uuid.UUID) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.Approve", "bookingID", bookingID, "actorID", actorID)
	b, err := s.transition(ctx, bookingID, actorID, domain.BookingStatusConfirmed)
	if err != nil {
		logger.ExitMethodWithError("bookingService.Approve", err, "bookingID", bookingID)
		return nil, err
	}
	s.announce(ctx, events.SubjectBookingConfirmed, b)
	logger.ExitMethod("bookingService.Approve", "bookingID", bookingID)
	return b, nil
}

func (s *bookingService) Reject(ctx context.Context, bookingID, actorID uuid.UUID) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.Reject", "bookingID", bookingID, "actorID", actorID)
	b, err := s.transition(ctx, bookingID, actorID, domain.BookingStatusRejected)
	if err != nil {
		logger.ExitMethodWithError("bookingService.Reject", err, "bookingID", bookingID)
		return nil, err
	}
	s.announce(ctx, events.SubjectBookingRejected, b)
	logger.ExitMethod("bookingService.Reject", "bookingID", bookingID)
	return b, nil
}

// transition drives one owner edge out of pending.
func (s *bookingService) transition(ctx context.Context, bookingID, actorID uuid.UUID, next domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.loadForOwner(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, domain.NewTransitionError("booking", b.Status, next)
	}

	ok, err := s.bookingRepo.TransitionStatus(ctx, bookingID, b.Status, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.lostRace(ctx, bookingID, next)
	}
	b.Status = next
	b.UpdatedAt = s.now()
	return b, nil
}

func (s *bookingService) Complete(ctx context.Context, bookingID, actorID uuid.UUID, payload domain.CompletionPayload) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.Complete", "bookingID", bookingID, "actorID", actorID)

	b, err := s.loadForOwner(ctx, bookingID, actorID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.Complete", err, "bookingID", bookingID)
		return nil, err
	}
	if !b.Status.CanTransitionTo(domain.BookingStatusCompleted) {
		err := domain.NewTransitionError("booking", b.Status, domain.BookingStatusCompleted)
		logger.ExitMethodWithError("bookingService.Complete", err, "bookingID", bookingID)
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		logger.ExitMethodWithError("bookingService.Complete", err, "bookingID", bookingID)
		return nil, err
	}

	completedAt := s.now()
	ok, err := s.bookingRepo.Complete(ctx, bookingID, repository.BookingCompletion{Terms: payload, CompletedAt: completedAt})
	if err != nil {
		logger.ExitMethodWithError("bookingService.Complete", err, "bookingID", bookingID)
		return nil, err
	}
	if !ok {
		err := s.lostRace(ctx, bookingID, domain.BookingStatusCompleted)
		logger.ExitMethodWithError("bookingService.Complete", err, "bookingID", bookingID)
		return nil, err
	}

	price, quantity, billingType := payload.NegotiatedPrice, payload.BillingQuantity, payload.BillingType
	b.Status = domain.BookingStatusCompleted
	b.NegotiatedPrice = &price
	b.BillingType = &billingType
	b.BillingQuantity = &quantity
	b.CompletedAt = &completedAt
	b.UpdatedAt = completedAt

	s.announce(ctx, events.SubjectBookingCompleted, b)
	logger.ExitMethod("bookingService.Complete", "bookingID", bookingID, "negotiatedPrice", price.String())
	return b, nil
}

func (s *bookingService) Get(ctx context.Context, bookingID, actorID uuid.UUID) (*domain.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParty(actorID) {
		return nil, domain.ErrUnauthorized
	}
	return b, nil
}

func (s *bookingService) ListForParty(ctx context.Context, actorID uuid.UUID, role domain.PartyRole, status domain.BookingStatus) ([]domain.Booking, error) {
	if role != domain.PartyRoleRenter && role != domain.PartyRoleOwner {
		return nil, domain.NewValidationError("role", "must be renter or owner")
	}
	return readWithRetry(ctx, s.retry, "list bookings", func(ctx context.Context) ([]domain.Booking, error) {
		return s.bookingRepo.ListByParty(ctx, actorID, role, status)
	})
}

func (s *bookingService) load(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	return readWithRetry(ctx, s.retry, "get booking", func(ctx context.Context) (*domain.Booking, error) {
		return s.bookingRepo.GetByID(ctx, bookingID)
	})
}

func (s *bookingService) loadForOwner(ctx context.Context, bookingID, actorID uuid.UUID) (*domain.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != actorID {
		return nil, domain.ErrUnauthorized
	}
	return b, nil
}

// lostRace explains a conditional write that matched no row: either the
// booking vanished or another caller moved it first.
func (s *bookingService) lostRace(ctx context.Context, bookingID uuid.UUID, next domain.BookingStatus) error {
	current, err := s.load(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	logger.Warn("Booking changed concurrently", "bookingID", bookingID, "current", current.Status, "wanted", next)
	return domain.NewTransitionError("booking", current.Status, next)
}

func (s *bookingService) announce(ctx context.Context, subject string, b *domain.Booking) {
	ev := events.BookingEvent{
		BookingID:     b.ID,
		MachineID:     b.MachineID,
		RenterID:      b.RenterID,
		OwnerID:       b.OwnerID,
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		Amount:        b.EffectiveAmount().String(),
		OccurredAt:    s.now(),
	}
	publish(ctx, s.publisher, subject, ev)
}

func publish(ctx context.Context, p EventPublisher, subject string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, subject, payload); err != nil {
		logger.Error("Failed to publish event", "subject", subject, "error", err)
	}
}

// requireGate reads the user's documents once and turns a missing approval
// into an AccessError that tells the user what to do next.
func requireGate(ctx context.Context, gate VerificationService, userID uuid.UUID) error {
	status, err := gate.GetStatus(ctx, userID)
	if err != nil {
		return err
	}
	if status.HasApproved {
		return nil
	}
	return &domain.AccessError{Reason: gate.DescribeBlockingReason(*status)}
}
