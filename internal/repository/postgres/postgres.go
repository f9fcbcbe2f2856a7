package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"agrorent-backend/internal/repository"
)

type Store struct {
	db *sqlx.DB
	repository.BookingRepository
	repository.ReviewRepository
	repository.RatingAggregateRepository
	repository.DocumentRepository
	repository.MachineRepository
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:                        db,
		BookingRepository:         NewBookingRepository(db),
		ReviewRepository:          NewReviewRepository(db),
		RatingAggregateRepository: NewRatingAggregateRepository(db),
		DocumentRepository:        NewDocumentRepository(db),
		MachineRepository:         NewMachineRepository(db),
	}
}

// DB exposes the handle for migrations and health checks.
func (s *Store) DB() *sqlx.DB { return s.db }

// Open connects to Postgres and applies the pool limits.
func Open(ctx context.Context, dsn string, maxOpen, maxIdle int, maxLifetime time.Duration) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	return db, nil
}
