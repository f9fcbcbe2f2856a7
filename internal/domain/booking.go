package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusRejected  BookingStatus = "rejected"
)

func (s BookingStatus) String() string { return string(s) }

// IsTerminal reports whether no workflow transition leaves this status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusRejected
}

// CanTransitionTo encodes the owner-driven workflow graph.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusRejected
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) String() string { return string(s) }

// CanTransitionTo encodes the gateway-driven payment graph. It is independent
// of BookingStatus.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusPaid || next == PaymentStatusFailed
	case PaymentStatusFailed:
		return next == PaymentStatusPaid
	}
	return false
}

type BillingType string

const (
	BillingTypeHour    BillingType = "hora"
	BillingTypeHectare BillingType = "hectare"
	BillingTypeDay     BillingType = "dia"
	BillingTypeUnit    BillingType = "unidade"
	BillingTypeTon     BillingType = "tonelada"
	BillingTypeKm      BillingType = "km"
)

// BillingTypes is the billing unit enumeration exposed at the API boundary.
var BillingTypes = []BillingType{
	BillingTypeHour,
	BillingTypeHectare,
	BillingTypeDay,
	BillingTypeUnit,
	BillingTypeTon,
	BillingTypeKm,
}

func (b BillingType) Valid() bool {
	for _, t := range BillingTypes {
		if b == t {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              uuid.UUID       `json:"id"`
	RenterID        uuid.UUID       `json:"renter_id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	MachineID       uuid.UUID       `json:"machine_id"`
	Status          BookingStatus   `json:"status"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Quantity        decimal.Decimal `json:"quantity"`
	EstimatedAmount decimal.Decimal `json:"estimated_amount"`
	// Billing capture, set together with Status=completed and never before.
	NegotiatedPrice *decimal.Decimal `json:"negotiated_price,omitempty"`
	BillingType     *BillingType     `json:"billing_type,omitempty"`
	BillingQuantity *decimal.Decimal `json:"billing_quantity,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	PaymentStatus   PaymentStatus    `json:"payment_status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// EffectiveAmount is the amount to show for the booking: the negotiated price
// once completed, otherwise the estimate taken at request time.
func (b *Booking) EffectiveAmount() decimal.Decimal {
	if b.NegotiatedPrice != nil {
		return *b.NegotiatedPrice
	}
	return b.EstimatedAmount
}

// IsParty reports whether userID is the renter or the owner.
func (b *Booking) IsParty(userID uuid.UUID) bool {
	return userID == b.RenterID || userID == b.OwnerID
}

// Counterparty returns the other party of the booking and the review type a
// review written by userID carries. ok is false when userID is not a party.
func (b *Booking) Counterparty(userID uuid.UUID) (other uuid.UUID, reviewType ReviewType, ok bool) {
	switch userID {
	case b.OwnerID:
		return b.RenterID, ReviewTypeOwnerReviewsClient, true
	case b.RenterID:
		return b.OwnerID, ReviewTypeClientReviewsOwner, true
	}
	return uuid.Nil, "", false
}

// CompletionPayload carries the billing terms agreed when the owner closes
// the engagement.
type CompletionPayload struct {
	NegotiatedPrice decimal.Decimal `json:"negotiated_price"`
	BillingType     BillingType     `json:"billing_type"`
	BillingQuantity decimal.Decimal `json:"billing_quantity"`
}

// Validate checks the payload and names the first offending field.
func (p CompletionPayload) Validate() error {
	if !p.NegotiatedPrice.IsPositive() {
		return NewValidationError("negotiated_price", "must be greater than zero")
	}
	if !FitsScale(p.NegotiatedPrice) {
		return NewValidationError("negotiated_price", "must have at most 2 decimal places")
	}
	if !p.BillingType.Valid() {
		return NewValidationError("billing_type", "must be one of hora, hectare, dia, unidade, tonelada, km")
	}
	if !p.BillingQuantity.IsPositive() {
		return NewValidationError("billing_quantity", "must be greater than zero")
	}
	if !FitsScale(p.BillingQuantity) {
		return NewValidationError("billing_quantity", "must have at most 2 decimal places")
	}
	return nil
}

// AmountScale is the number of decimal places the NUMERIC money and quantity
// columns keep.
const AmountScale = 2

// FitsScale reports whether d is stored without rounding. Trailing zeros are
// fine: 12.500 fits, 12.555 does not.
func FitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

// BookingRequest is what a renter submits to open a booking.
type BookingRequest struct {
	MachineID       uuid.UUID       `json:"machine_id" validate:"required"`
	StartDate       time.Time       `json:"start_date" validate:"required"`
	EndDate         time.Time       `json:"end_date" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	EstimatedAmount decimal.Decimal `json:"estimated_amount"`
}

type PartyRole string

const (
	PartyRoleRenter PartyRole = "renter"
	PartyRoleOwner  PartyRole = "owner"
)
