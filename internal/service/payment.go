package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/events"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
)

type paymentService struct {
	bookingRepo repository.BookingRepository
	publisher   EventPublisher
	retry       ReadRetry
}

// NewPaymentService builds the reconciler for gateway updates. It only ever
// writes payment_status.
func NewPaymentService(bookingRepo repository.BookingRepository, publisher EventPublisher, retry ReadRetry) PaymentService {
	return &paymentService{bookingRepo: bookingRepo, publisher: publisher, retry: retry}
}

func (s *paymentService) ApplyPaymentUpdate(ctx context.Context, bookingID uuid.UUID, status domain.PaymentStatus, gatewayRef string) (*domain.Booking, error) {
	logger.EnterMethod("paymentService.ApplyPaymentUpdate", "bookingID", bookingID, "status", status, "gatewayRef", gatewayRef)

	if status != domain.PaymentStatusPaid && status != domain.PaymentStatusFailed {
		err := domain.NewValidationError("status", "must be paid or failed")
		logger.ExitMethodWithError("paymentService.ApplyPaymentUpdate", err, "bookingID", bookingID)
		return nil, err
	}

	b, err := readWithRetry(ctx, s.retry, "get booking", func(ctx context.Context) (*domain.Booking, error) {
		return s.bookingRepo.GetByID(ctx, bookingID)
	})
	if err != nil {
		logger.ExitMethodWithError("paymentService.ApplyPaymentUpdate", err, "bookingID", bookingID)
		return nil, err
	}

	// gateways redeliver; the same status twice is not an error
	if b.PaymentStatus == status {
		logger.ExitMethod("paymentService.ApplyPaymentUpdate", "bookingID", bookingID, "unchanged", true)
		return b, nil
	}
	if !b.PaymentStatus.CanTransitionTo(status) {
		err := domain.NewTransitionError("payment", b.PaymentStatus, status)
		logger.ExitMethodWithError("paymentService.ApplyPaymentUpdate", err, "bookingID", bookingID)
		return nil, err
	}

	ok, err := s.bookingRepo.UpdatePaymentStatus(ctx, bookingID, b.PaymentStatus, status)
	if err != nil {
		logger.ExitMethodWithError("paymentService.ApplyPaymentUpdate", err, "bookingID", bookingID)
		return nil, err
	}
	if !ok {
		current, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current.PaymentStatus == status {
			return current, nil
		}
		err = domain.NewTransitionError("payment", current.PaymentStatus, status)
		logger.ExitMethodWithError("paymentService.ApplyPaymentUpdate", err, "bookingID", bookingID)
		return nil, err
	}
	b.PaymentStatus = status
	b.UpdatedAt = time.Now().UTC()

	needsRefund := status == domain.PaymentStatusPaid && b.Status == domain.BookingStatusRejected
	if needsRefund {
		logger.Warn("Payment received for rejected booking, manual refund required",
			"bookingID", bookingID, "gatewayRef", gatewayRef, "amount", b.EffectiveAmount().String())
	}

	publish(ctx, s.publisher, events.SubjectPaymentUpdated, events.PaymentEvent{
		BookingID:     bookingID,
		PaymentStatus: status.String(),
		GatewayRef:    gatewayRef,
		NeedsRefund:   needsRefund,
		OccurredAt:    b.UpdatedAt,
	})

	logger.ExitMethod("paymentService.ApplyPaymentUpdate", "bookingID", bookingID, "paymentStatus", status, "bookingStatus", b.Status)
	return b, nil
}
