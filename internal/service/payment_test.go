package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/events"
	"agrorent-backend/internal/service"
)

func TestPaymentService_ApplyPaymentUpdate(t *testing.T) {
	ctx := context.Background()
	owner, renter := uuid.New(), uuid.New()

	setup := func(b *domain.Booking) (*MockBookingRepo, *MockPublisher, service.PaymentService) {
		repo := new(MockBookingRepo)
		pub := new(MockPublisher)
		pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		repo.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)
		return repo, pub, service.NewPaymentService(repo, pub, fastRetry)
	}

	t.Run("Paid leaves the workflow status alone", func(t *testing.T) {
		b := booking(owner, renter, domain.BookingStatusPending)
		repo, pub, svc := setup(b)
		repo.On("UpdatePaymentStatus", mock.Anything, b.ID, domain.PaymentStatusPending, domain.PaymentStatusPaid).Return(true, nil)

		res, err := svc.ApplyPaymentUpdate(ctx, b.ID, domain.PaymentStatusPaid, "pix-123")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, res.PaymentStatus)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
		repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		pub.AssertCalled(t, "Publish", mock.Anything, events.SubjectPaymentUpdated, mock.Anything)
	})

	t.Run("Failed then paid", func(t *testing.T) {
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		b.PaymentStatus = domain.PaymentStatusFailed
		repo, _, svc := setup(b)
		repo.On("UpdatePaymentStatus", mock.Anything, b.ID, domain.PaymentStatusFailed, domain.PaymentStatusPaid).Return(true, nil)

		res, err := svc.ApplyPaymentUpdate(ctx, b.ID, domain.PaymentStatusPaid, "pix-124")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, res.PaymentStatus)
	})

	t.Run("Redelivery is a no-op", func(t *testing.T) {
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		b.PaymentStatus = domain.PaymentStatusPaid
		repo, pub, svc := setup(b)

		res, err := svc.ApplyPaymentUpdate(ctx, b.ID, domain.PaymentStatusPaid, "pix-125")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, res.PaymentStatus)
		repo.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Paid cannot become failed", func(t *testing.T) {
		b := booking(owner, renter, domain.BookingStatusCompleted)
		b.PaymentStatus = domain.PaymentStatusPaid
		_, _, svc := setup(b)

		_, err := svc.ApplyPaymentUpdate(ctx, b.ID, domain.PaymentStatusFailed, "pix-126")
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})

	t.Run("Payment on a rejected booking is flagged for refund", func(t *testing.T) {
		b := booking(owner, renter, domain.BookingStatusRejected)
		repo, pub, svc := setup(b)
		repo.On("UpdatePaymentStatus", mock.Anything, b.ID, domain.PaymentStatusPending, domain.PaymentStatusPaid).Return(true, nil)

		res, err := svc.ApplyPaymentUpdate(ctx, b.ID, domain.PaymentStatusPaid, "pix-127")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusRejected, res.Status)
		pub.AssertCalled(t, "Publish", mock.Anything, events.SubjectPaymentUpdated, mock.MatchedBy(func(ev events.PaymentEvent) bool {
			return ev.NeedsRefund && ev.GatewayRef == "pix-127"
		}))
	})

	t.Run("Only paid or failed are accepted", func(t *testing.T) {
		b := booking(owner, renter, domain.BookingStatusPending)
		_, _, svc := setup(b)

		_, err := svc.ApplyPaymentUpdate(ctx, b.ID, domain.PaymentStatusPending, "pix-128")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
