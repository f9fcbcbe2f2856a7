package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/events"
	"agrorent-backend/internal/repository"
	"agrorent-backend/internal/service"
)

type bookingFixture struct {
	bookings  *MockBookingRepo
	machines  *MockMachineRepo
	docs      *MockDocumentRepo
	publisher *MockPublisher
	svc       service.BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookings:  new(MockBookingRepo),
		machines:  new(MockMachineRepo),
		docs:      new(MockDocumentRepo),
		publisher: new(MockPublisher),
	}
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	gate := service.NewVerificationService(f.docs, fastRetry)
	f.svc = service.NewBookingService(f.bookings, f.machines, gate, f.publisher, fastRetry)
	return f
}

func booking(owner, renter uuid.UUID, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		RenterID:        renter,
		OwnerID:         owner,
		MachineID:       uuid.New(),
		Status:          status,
		Quantity:        decimal.NewFromInt(5),
		EstimatedAmount: decimal.RequireFromString("750.00"),
		PaymentStatus:   domain.PaymentStatusPending,
	}
}

func copyOf(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}

func validCompletion() domain.CompletionPayload {
	return domain.CompletionPayload{
		NegotiatedPrice: decimal.RequireFromString("1200.00"),
		BillingType:     domain.BillingTypeHectare,
		BillingQuantity: decimal.RequireFromString("8.5"),
	}
}

func TestBookingService_Approve(t *testing.T) {
	ctx := context.Background()
	owner, renter := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusPending)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)
		f.bookings.On("TransitionStatus", mock.Anything, b.ID, domain.BookingStatusPending, domain.BookingStatusConfirmed).Return(true, nil)

		res, err := f.svc.Approve(ctx, b.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
		f.publisher.AssertCalled(t, "Publish", mock.Anything, events.SubjectBookingConfirmed, mock.Anything)
	})

	t.Run("Renter cannot approve", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusPending)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)

		res, err := f.svc.Approve(ctx, b.ID, renter)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		f.bookings.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Only pending bookings", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)

		_, err := f.svc.Approve(ctx, b.ID, owner)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing booking", func(t *testing.T) {
		f := newBookingFixture()
		id := uuid.New()
		f.bookings.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := f.svc.Approve(ctx, id, owner)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingService_Reject(t *testing.T) {
	ctx := context.Background()
	owner, renter := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusPending)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)
		f.bookings.On("TransitionStatus", mock.Anything, b.ID, domain.BookingStatusPending, domain.BookingStatusRejected).Return(true, nil)

		res, err := f.svc.Reject(ctx, b.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusRejected, res.Status)
		f.publisher.AssertCalled(t, "Publish", mock.Anything, events.SubjectBookingRejected, mock.Anything)
	})

	t.Run("Confirmed cannot go back to rejected", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)

		_, err := f.svc.Reject(ctx, b.ID, owner)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})

	t.Run("Approved concurrently", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusPending)
		moved := copyOf(b)
		moved.Status = domain.BookingStatusConfirmed
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil).Once()
		f.bookings.On("TransitionStatus", mock.Anything, b.ID, domain.BookingStatusPending, domain.BookingStatusRejected).Return(false, nil)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(moved, nil).Once()

		_, err := f.svc.Reject(ctx, b.ID, owner)
		var te *domain.TransitionError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "confirmed", te.From)
		assert.Equal(t, "rejected", te.To)
	})
}

func TestBookingService_Complete(t *testing.T) {
	ctx := context.Background()
	owner, renter := uuid.New(), uuid.New()

	t.Run("Success captures billing terms", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		payload := validCompletion()
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)
		f.bookings.On("Complete", mock.Anything, b.ID, mock.MatchedBy(func(c repository.BookingCompletion) bool {
			return c.Terms.NegotiatedPrice.Equal(payload.NegotiatedPrice) &&
				c.Terms.BillingType == domain.BillingTypeHectare &&
				!c.CompletedAt.IsZero()
		})).Return(true, nil)

		res, err := f.svc.Complete(ctx, b.ID, owner, payload)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, res.Status)
		require.NotNil(t, res.NegotiatedPrice)
		assert.True(t, res.NegotiatedPrice.Equal(payload.NegotiatedPrice))
		assert.Equal(t, domain.BillingTypeHectare, *res.BillingType)
		assert.True(t, res.BillingQuantity.Equal(payload.BillingQuantity))
		assert.NotNil(t, res.CompletedAt)
		assert.True(t, res.EffectiveAmount().Equal(payload.NegotiatedPrice))
		f.publisher.AssertCalled(t, "Publish", mock.Anything, events.SubjectBookingCompleted, mock.Anything)
	})

	t.Run("Invalid payload names the field", func(t *testing.T) {
		cases := []struct {
			field  string
			mutate func(p *domain.CompletionPayload)
		}{
			{"negotiated_price", func(p *domain.CompletionPayload) { p.NegotiatedPrice = decimal.Zero }},
			{"negotiated_price", func(p *domain.CompletionPayload) { p.NegotiatedPrice = decimal.NewFromInt(-10) }},
			{"billing_type", func(p *domain.CompletionPayload) { p.BillingType = "semana" }},
			{"billing_quantity", func(p *domain.CompletionPayload) { p.BillingQuantity = decimal.Zero }},
		}
		for _, tc := range cases {
			f := newBookingFixture()
			b := booking(owner, renter, domain.BookingStatusConfirmed)
			f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)
			payload := validCompletion()
			tc.mutate(&payload)

			_, err := f.svc.Complete(ctx, b.ID, owner, payload)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve), tc.field)
			assert.Equal(t, tc.field, ve.Field)
			assert.ErrorIs(t, err, domain.ErrValidation)
			f.bookings.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Pending booking cannot be completed", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusPending)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)

		_, err := f.svc.Complete(ctx, b.ID, owner, validCompletion())
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})

	t.Run("Renter cannot complete", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)

		_, err := f.svc.Complete(ctx, b.ID, renter, validCompletion())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Second completion fails and keeps the first price", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		first := validCompletion()
		second := validCompletion()
		second.NegotiatedPrice = decimal.RequireFromString("999.00")

		stored := copyOf(b)
		stored.Status = domain.BookingStatusCompleted
		price := first.NegotiatedPrice
		stored.NegotiatedPrice = &price

		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil).Once()
		f.bookings.On("Complete", mock.Anything, b.ID, mock.Anything).Return(true, nil).Once()
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(stored, nil)

		_, err := f.svc.Complete(ctx, b.ID, owner, first)
		require.NoError(t, err)

		_, err = f.svc.Complete(ctx, b.ID, owner, second)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		f.bookings.AssertNumberOfCalls(t, "Complete", 1)

		current, err := f.svc.Get(ctx, b.ID, owner)
		require.NoError(t, err)
		assert.True(t, current.NegotiatedPrice.Equal(first.NegotiatedPrice))
	})

	t.Run("Losing the compare-and-swap", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		winner := copyOf(b)
		winner.Status = domain.BookingStatusCompleted

		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil).Once()
		f.bookings.On("Complete", mock.Anything, b.ID, mock.Anything).Return(false, nil)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(winner, nil).Once()

		res, err := f.svc.Complete(ctx, b.ID, owner, validCompletion())
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Booking vanished before the write", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil).Once()
		f.bookings.On("Complete", mock.Anything, b.ID, mock.Anything).Return(false, nil)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(nil, domain.ErrNotFound).Once()

		_, err := f.svc.Complete(ctx, b.ID, owner, validCompletion())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Write failures are not retried", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusConfirmed)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)
		f.bookings.On("Complete", mock.Anything, b.ID, mock.Anything).Return(false, domain.NewRetrievalError("complete booking", errors.New("timeout")))

		_, err := f.svc.Complete(ctx, b.ID, owner, validCompletion())
		assert.ErrorIs(t, err, domain.ErrRetrieval)
		f.bookings.AssertNumberOfCalls(t, "Complete", 1)
	})
}

func TestBookingService_CreateRequest(t *testing.T) {
	ctx := context.Background()
	owner, renter := uuid.New(), uuid.New()
	machine := &domain.Machine{ID: uuid.New(), OwnerID: owner, Name: "Colheitadeira", Category: "colheita"}
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	req := domain.BookingRequest{
		MachineID:       machine.ID,
		StartDate:       start,
		EndDate:         start.Add(48 * time.Hour),
		Quantity:        decimal.NewFromInt(20),
		EstimatedAmount: decimal.RequireFromString("4000.00"),
	}

	t.Run("Success", func(t *testing.T) {
		f := newBookingFixture()
		f.docs.On("ListByUser", mock.Anything, renter).Return(docs(domain.DocumentStatusApproved), nil)
		f.machines.On("GetByID", mock.Anything, machine.ID).Return(machine, nil)
		f.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

		res, err := f.svc.CreateRequest(ctx, renter, req)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
		assert.Equal(t, domain.PaymentStatusPending, res.PaymentStatus)
		assert.Equal(t, owner, res.OwnerID)
		assert.Equal(t, renter, res.RenterID)
		assert.Nil(t, res.NegotiatedPrice)
		f.docs.AssertNumberOfCalls(t, "ListByUser", 1)
		f.publisher.AssertCalled(t, "Publish", mock.Anything, events.SubjectBookingRequested, mock.Anything)
	})

	t.Run("Blocked renter gets the reason", func(t *testing.T) {
		f := newBookingFixture()
		f.docs.On("ListByUser", mock.Anything, renter).Return(docs(domain.DocumentStatusPending, domain.DocumentStatusRejected), nil)

		res, err := f.svc.CreateRequest(ctx, renter, req)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		var ae *domain.AccessError
		require.True(t, errors.As(err, &ae))
		assert.Contains(t, ae.Reason, "resubmit")
		f.docs.AssertNumberOfCalls(t, "ListByUser", 1)
		f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Amounts beyond cents", func(t *testing.T) {
		for field, mutate := range map[string]func(*domain.BookingRequest){
			"quantity":         func(r *domain.BookingRequest) { r.Quantity = decimal.RequireFromString("12.555") },
			"estimated_amount": func(r *domain.BookingRequest) { r.EstimatedAmount = decimal.RequireFromString("4000.001") },
		} {
			f := newBookingFixture()
			f.docs.On("ListByUser", mock.Anything, renter).Return(docs(domain.DocumentStatusApproved), nil)
			bad := req
			mutate(&bad)

			_, err := f.svc.CreateRequest(ctx, renter, bad)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve), field)
			assert.Equal(t, field, ve.Field)
		}
	})

	t.Run("Own machine", func(t *testing.T) {
		f := newBookingFixture()
		f.docs.On("ListByUser", mock.Anything, owner).Return(docs(domain.DocumentStatusApproved), nil)
		f.machines.On("GetByID", mock.Anything, machine.ID).Return(machine, nil)

		_, err := f.svc.CreateRequest(ctx, owner, req)
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "machine_id", ve.Field)
	})

	t.Run("End before start", func(t *testing.T) {
		f := newBookingFixture()
		f.docs.On("ListByUser", mock.Anything, renter).Return(docs(domain.DocumentStatusApproved), nil)
		bad := req
		bad.EndDate = start.Add(-24 * time.Hour)

		_, err := f.svc.CreateRequest(ctx, renter, bad)
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "end_date", ve.Field)
	})

	t.Run("Missing machine id", func(t *testing.T) {
		f := newBookingFixture()
		f.docs.On("ListByUser", mock.Anything, renter).Return(docs(domain.DocumentStatusApproved), nil)
		bad := req
		bad.MachineID = uuid.Nil

		_, err := f.svc.CreateRequest(ctx, renter, bad)
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "machine_id", ve.Field)
	})

	t.Run("Unknown machine", func(t *testing.T) {
		f := newBookingFixture()
		f.docs.On("ListByUser", mock.Anything, renter).Return(docs(domain.DocumentStatusApproved), nil)
		f.machines.On("GetByID", mock.Anything, machine.ID).Return(nil, domain.ErrNotFound)

		_, err := f.svc.CreateRequest(ctx, renter, req)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingService_Reads(t *testing.T) {
	ctx := context.Background()
	owner, renter := uuid.New(), uuid.New()

	t.Run("Both parties can read", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusPending)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil)

		_, err := f.svc.Get(ctx, b.ID, owner)
		assert.NoError(t, err)
		_, err = f.svc.Get(ctx, b.ID, renter)
		assert.NoError(t, err)
		_, err = f.svc.Get(ctx, b.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Transient read failure is retried", func(t *testing.T) {
		f := newBookingFixture()
		b := booking(owner, renter, domain.BookingStatusPending)
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(nil, domain.NewRetrievalError("get booking", errors.New("i/o timeout"))).Once()
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(copyOf(b), nil).Once()

		res, err := f.svc.Get(ctx, b.ID, renter)
		require.NoError(t, err)
		assert.Equal(t, b.ID, res.ID)
	})

	t.Run("List by role", func(t *testing.T) {
		f := newBookingFixture()
		list := []domain.Booking{*booking(owner, renter, domain.BookingStatusConfirmed)}
		f.bookings.On("ListByParty", mock.Anything, owner, domain.PartyRoleOwner, domain.BookingStatusConfirmed).Return(list, nil)

		res, err := f.svc.ListForParty(ctx, owner, domain.PartyRoleOwner, domain.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Len(t, res, 1)

		_, err = f.svc.ListForParty(ctx, owner, "admin", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
