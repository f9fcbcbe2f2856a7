package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	all := []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusRejected}
	allowed := map[[2]BookingStatus]bool{
		{BookingStatusPending, BookingStatusConfirmed}:   true,
		{BookingStatusPending, BookingStatusRejected}:    true,
		{BookingStatusConfirmed, BookingStatusCompleted}: true,
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]BookingStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusPaid))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusFailed))
	assert.True(t, PaymentStatusFailed.CanTransitionTo(PaymentStatusPaid))
	assert.False(t, PaymentStatusPaid.CanTransitionTo(PaymentStatusFailed))
	assert.False(t, PaymentStatusPaid.CanTransitionTo(PaymentStatusPending))
}

func TestEffectiveAmount(t *testing.T) {
	b := &Booking{EstimatedAmount: decimal.NewFromInt(800)}
	assert.True(t, b.EffectiveAmount().Equal(decimal.NewFromInt(800)))

	negotiated := decimal.RequireFromString("950.50")
	b.NegotiatedPrice = &negotiated
	assert.True(t, b.EffectiveAmount().Equal(negotiated))
}

func TestCounterparty(t *testing.T) {
	b := &Booking{RenterID: uuid.New(), OwnerID: uuid.New()}

	other, rt, ok := b.Counterparty(b.OwnerID)
	require.True(t, ok)
	assert.Equal(t, b.RenterID, other)
	assert.Equal(t, ReviewTypeOwnerReviewsClient, rt)
	assert.Equal(t, PerspectiveClient, rt.Perspective())

	other, rt, ok = b.Counterparty(b.RenterID)
	require.True(t, ok)
	assert.Equal(t, b.OwnerID, other)
	assert.Equal(t, PerspectiveProvider, rt.Perspective())

	_, _, ok = b.Counterparty(uuid.New())
	assert.False(t, ok)
}

func TestCompletionPayload_Validate(t *testing.T) {
	valid := CompletionPayload{
		NegotiatedPrice: decimal.NewFromInt(1200),
		BillingType:     BillingTypeHectare,
		BillingQuantity: decimal.RequireFromString("12.5"),
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CompletionPayload)
		field  string
	}{
		{"zero price", func(p *CompletionPayload) { p.NegotiatedPrice = decimal.Zero }, "negotiated_price"},
		{"negative price", func(p *CompletionPayload) { p.NegotiatedPrice = decimal.NewFromInt(-1) }, "negotiated_price"},
		{"unknown unit", func(p *CompletionPayload) { p.BillingType = "acre" }, "billing_type"},
		{"zero quantity", func(p *CompletionPayload) { p.BillingQuantity = decimal.Zero }, "billing_quantity"},
		{"price below cents", func(p *CompletionPayload) { p.NegotiatedPrice = decimal.RequireFromString("1200.005") }, "negotiated_price"},
		{"quantity below cents", func(p *CompletionPayload) { p.BillingQuantity = decimal.RequireFromString("12.555") }, "billing_quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFitsScale(t *testing.T) {
	assert.True(t, FitsScale(decimal.RequireFromString("12.55")))
	assert.True(t, FitsScale(decimal.RequireFromString("12.500")))
	assert.True(t, FitsScale(decimal.NewFromInt(7)))
	assert.False(t, FitsScale(decimal.RequireFromString("12.555")))
	assert.False(t, FitsScale(decimal.RequireFromString("0.001")))
}

func TestDocumentStatusFromVerified(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, DocumentStatusPending, DocumentStatusFromVerified(nil))
	assert.Equal(t, DocumentStatusApproved, DocumentStatusFromVerified(&yes))
	assert.Equal(t, DocumentStatusRejected, DocumentStatusFromVerified(&no))
}

func TestRetrievalError_Retryable(t *testing.T) {
	err := NewRetrievalError("get booking", errors.New("connection reset"))
	assert.True(t, IsRetryable(err))
	assert.ErrorIs(t, err, ErrRetrieval)
	assert.False(t, IsRetryable(ErrNotFound))
	assert.False(t, IsRetryable(NewTransitionError("booking", BookingStatusCompleted, BookingStatusCompleted)))
}
