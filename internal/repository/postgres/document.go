package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
)

type documentRow struct {
	ID           uuid.UUID    `db:"id"`
	UserID       uuid.UUID    `db:"user_id"`
	DocumentType string       `db:"document_type"`
	Verified     sql.NullBool `db:"verified"`
	CreatedAt    time.Time    `db:"created_at"`
}

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	var rows []documentRow
	query := `SELECT id, user_id, document_type, verified, created_at FROM documents WHERE user_id = $1 ORDER BY created_at`
	logger.DatabaseCall("SELECT", "documents", "userID", userID)
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.DatabaseResult("SELECT", 0, err, "userID", userID)
		return nil, domain.NewRetrievalError("list documents", err)
	}
	logger.DatabaseResult("SELECT", int64(len(rows)), nil, "userID", userID)

	docs := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		var verified *bool
		if row.Verified.Valid {
			verified = &row.Verified.Bool
		}
		docs = append(docs, domain.Document{
			ID:           row.ID,
			UserID:       row.UserID,
			DocumentType: row.DocumentType,
			Verified:     domain.DocumentStatusFromVerified(verified),
			CreatedAt:    row.CreatedAt,
		})
	}
	return docs, nil
}
