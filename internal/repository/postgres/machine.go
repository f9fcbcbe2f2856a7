package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
)

type machineRepository struct {
	db *sqlx.DB
}

func NewMachineRepository(db *sqlx.DB) repository.MachineRepository {
	return &machineRepository{db: db}
}

func (r *machineRepository) Create(ctx context.Context, m *domain.Machine) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()
	query := `INSERT INTO machines (id, owner_id, name, category, created_at)
	          VALUES (:id, :owner_id, :name, :category, :created_at)`
	logger.DatabaseCall("INSERT", "machines", "ownerID", m.OwnerID)
	_, err := r.db.NamedExecContext(ctx, query, m)
	logger.DatabaseResult("INSERT", 1, err, "machineID", m.ID)
	if err != nil {
		return domain.NewRetrievalError("create machine", err)
	}
	return nil
}

func (r *machineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Machine, error) {
	m := &domain.Machine{}
	query := `SELECT id, owner_id, name, category, created_at FROM machines WHERE id = $1`
	if err := r.db.GetContext(ctx, m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewRetrievalError("get machine", err)
	}
	return m, nil
}
