package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
)

const bookingColumns = `id, renter_id, owner_id, machine_id, status, start_date, end_date, quantity,
	total_price, total_amount, negotiated_price, billing_type, billing_quantity, completed_at,
	payment_status, created_at, updated_at`

// bookingRow is the storage shape of a booking. toDomain is the only place
// where column variants are folded into domain.Booking.
type bookingRow struct {
	ID              uuid.UUID           `db:"id"`
	RenterID        uuid.UUID           `db:"renter_id"`
	OwnerID         uuid.UUID           `db:"owner_id"`
	MachineID       uuid.UUID           `db:"machine_id"`
	Status          string              `db:"status"`
	StartDate       time.Time           `db:"start_date"`
	EndDate         time.Time           `db:"end_date"`
	Quantity        decimal.Decimal     `db:"quantity"`
	TotalPrice      decimal.NullDecimal `db:"total_price"`
	TotalAmount     decimal.NullDecimal `db:"total_amount"`
	NegotiatedPrice decimal.NullDecimal `db:"negotiated_price"`
	BillingType     sql.NullString      `db:"billing_type"`
	BillingQuantity decimal.NullDecimal `db:"billing_quantity"`
	CompletedAt     sql.NullTime        `db:"completed_at"`
	PaymentStatus   string              `db:"payment_status"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}

func (r *bookingRow) toDomain() domain.Booking {
	b := domain.Booking{
		ID:            r.ID,
		RenterID:      r.RenterID,
		OwnerID:       r.OwnerID,
		MachineID:     r.MachineID,
		Status:        domain.BookingStatus(r.Status),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Quantity:      r.Quantity,
		PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	// total_price wins over the legacy total_amount
	switch {
	case r.TotalPrice.Valid:
		b.EstimatedAmount = r.TotalPrice.Decimal
	case r.TotalAmount.Valid:
		b.EstimatedAmount = r.TotalAmount.Decimal
	}
	if r.NegotiatedPrice.Valid {
		v := r.NegotiatedPrice.Decimal
		b.NegotiatedPrice = &v
	}
	if r.BillingType.Valid {
		v := domain.BillingType(r.BillingType.String)
		b.BillingType = &v
	}
	if r.BillingQuantity.Valid {
		v := r.BillingQuantity.Decimal
		b.BillingQuantity = &v
	}
	if r.CompletedAt.Valid {
		v := r.CompletedAt.Time
		b.CompletedAt = &v
	}
	return b
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, renter_id, owner_id, machine_id, status, start_date, end_date, quantity, total_price, payment_status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UTC()
	logger.DatabaseCall("INSERT", "bookings", "bookingID", b.ID, "renterID", b.RenterID)
	_, err := r.db.ExecContext(ctx, query, b.ID, b.RenterID, b.OwnerID, b.MachineID, b.Status, b.StartDate, b.EndDate, b.Quantity, b.EstimatedAmount, b.PaymentStatus, now)
	logger.DatabaseResult("INSERT", 1, err, "bookingID", b.ID)
	if err != nil {
		return domain.NewRetrievalError("create booking", err)
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var row bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewRetrievalError("get booking", err)
	}
	b := row.toDomain()
	return &b, nil
}

func (r *bookingRepository) ListByParty(ctx context.Context, userID uuid.UUID, role domain.PartyRole, status domain.BookingStatus) ([]domain.Booking, error) {
	column := "renter_id"
	if role == domain.PartyRoleOwner {
		column = "owner_id"
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + column + ` = $1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	var rows []bookingRow
	logger.DatabaseCall("SELECT", "bookings", "userID", userID, "role", role)
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.DatabaseResult("SELECT", 0, err, "userID", userID)
		return nil, domain.NewRetrievalError("list bookings", err)
	}
	logger.DatabaseResult("SELECT", int64(len(rows)), nil, "userID", userID)

	bookings := make([]domain.Booking, 0, len(rows))
	for i := range rows {
		bookings = append(bookings, rows[i].toDomain())
	}
	return bookings, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, expected, next domain.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	return r.conditionalExec(ctx, "transition booking", query, next, time.Now().UTC(), id, expected)
}

func (r *bookingRepository) Complete(ctx context.Context, id uuid.UUID, c repository.BookingCompletion) (bool, error) {
	query := `UPDATE bookings
	          SET status = $1, negotiated_price = $2, billing_type = $3, billing_quantity = $4, completed_at = $5, updated_at = $5
	          WHERE id = $6 AND status = $7`
	return r.conditionalExec(ctx, "complete booking", query,
		domain.BookingStatusCompleted, c.Terms.NegotiatedPrice, c.Terms.BillingType, c.Terms.BillingQuantity, c.CompletedAt,
		id, domain.BookingStatusConfirmed)
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, expected, next domain.PaymentStatus) (bool, error) {
	query := `UPDATE bookings SET payment_status = $1, updated_at = $2 WHERE id = $3 AND payment_status = $4`
	return r.conditionalExec(ctx, "update payment status", query, next, time.Now().UTC(), id, expected)
}

// conditionalExec runs a guarded UPDATE and reports whether exactly one row
// matched the guard.
func (r *bookingRepository) conditionalExec(ctx context.Context, op, query string, args ...interface{}) (bool, error) {
	logger.DatabaseCall("UPDATE", "bookings", "op", op)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "op", op)
		return false, domain.NewRetrievalError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.NewRetrievalError(op, err)
	}
	logger.DatabaseResult("UPDATE", n, nil, "op", op)
	return n == 1, nil
}
