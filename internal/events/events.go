// Package events publishes committed booking, review and payment transitions
// on NATS for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"agrorent-backend/internal/logger"
)

const (
	SubjectBookingRequested = "booking.requested"
	SubjectBookingConfirmed = "booking.confirmed"
	SubjectBookingRejected  = "booking.rejected"
	SubjectBookingCompleted = "booking.completed"
	SubjectReviewSubmitted  = "review.submitted"
	SubjectPaymentUpdated   = "payment.updated"
)

type BookingEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	MachineID     uuid.UUID `json:"machine_id"`
	RenterID      uuid.UUID `json:"renter_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Amount        string    `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type ReviewEvent struct {
	ReviewID   uuid.UUID `json:"review_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	ReviewedID uuid.UUID `json:"reviewed_id"`
	ReviewType string    `json:"review_type"`
	Rating     int32     `json:"rating"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PaymentEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	PaymentStatus string    `json:"payment_status"`
	GatewayRef    string    `json:"gateway_ref"`
	NeedsRefund   bool      `json:"needs_refund"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Config struct {
	URL           string
	Name          string
	SubjectPrefix string
	ReconnectWait time.Duration
	MaxReconnects int
	Timeout       time.Duration
}

// Connect dials NATS with reconnect handling logged through the app logger.
func Connect(cfg Config) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.Timeout(cfg.Timeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

// publisher is the part of *nats.Conn used here.
type publisher interface {
	Publish(subject string, data []byte) error
}

type NATSPublisher struct {
	conn   publisher
	prefix string
}

func NewNATSPublisher(conn *nats.Conn, prefix string) *NATSPublisher {
	return newPublisher(conn, prefix)
}

func newPublisher(conn publisher, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	full := p.prefix + subject
	logger.ExternalServiceCall("nats", "publish", "subject", full)
	err = p.conn.Publish(full, data)
	logger.ExternalServiceResult("nats", "publish", err, "subject", full)
	return err
}

// NoopPublisher drops every event. Used when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
