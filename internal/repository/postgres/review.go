package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
	"agrorent-backend/internal/reputation"
)

const uniqueViolation = "23505"

const reviewColumns = `id, booking_id, machine_id, reviewer_id, reviewed_id, review_type, rating,
	service_rating, operator_rating, machine_rating, client_rating, communication_rating,
	punctuality_rating, comment, observations, created_at`

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) InsertIfAbsent(ctx context.Context, rv *domain.Review) (err error) {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.NewRetrievalError("begin review tx", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	insert := `INSERT INTO reviews (` + reviewColumns + `)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	           ON CONFLICT (booking_id, reviewer_id) DO NOTHING`
	logger.DatabaseCall("INSERT", "reviews", "bookingID", rv.BookingID, "reviewerID", rv.ReviewerID)
	res, err := tx.ExecContext(ctx, insert,
		rv.ID, rv.BookingID, rv.MachineID, rv.ReviewerID, rv.ReviewedID, rv.ReviewType, rv.Rating,
		rv.ServiceRating, rv.OperatorRating, rv.MachineRating, rv.ClientRating, rv.CommunicationRating,
		rv.PunctualityRating, rv.Comment, rv.Observations, rv.CreatedAt)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "bookingID", rv.BookingID)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateReview
		}
		return domain.NewRetrievalError("insert review", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.NewRetrievalError("insert review", err)
	}
	logger.DatabaseResult("INSERT", n, nil, "bookingID", rv.BookingID)
	if n == 0 {
		err = domain.ErrDuplicateReview
		return err
	}

	// a review without any category of its perspective is stored but not counted
	perspective := rv.ReviewType.Perspective()
	if c := reputation.ContributionOf(rv, perspective); c.Weight > 0 {
		upsertSubject := `INSERT INTO rating_aggregates (subject_id, perspective, weighted_sum, weight_total, review_count)
		                  VALUES ($1, $2, $3, $4, 1)
		                  ON CONFLICT (subject_id, perspective) DO UPDATE SET
		                      weighted_sum = rating_aggregates.weighted_sum + EXCLUDED.weighted_sum,
		                      weight_total = rating_aggregates.weight_total + EXCLUDED.weight_total,
		                      review_count = rating_aggregates.review_count + 1`
		if _, err = tx.ExecContext(ctx, upsertSubject, rv.ReviewedID, perspective, c.WeightedSum, c.Weight); err != nil {
			return domain.NewRetrievalError("update rating aggregate", err)
		}
	}

	if rv.ReviewType == domain.ReviewTypeClientReviewsOwner {
		upsertMachine := `INSERT INTO machine_rating_aggregates (machine_id, rating_sum, review_count)
		                  VALUES ($1, $2, 1)
		                  ON CONFLICT (machine_id) DO UPDATE SET
		                      rating_sum = machine_rating_aggregates.rating_sum + EXCLUDED.rating_sum,
		                      review_count = machine_rating_aggregates.review_count + 1`
		if _, err = tx.ExecContext(ctx, upsertMachine, rv.MachineID, int64(rv.Rating)); err != nil {
			return domain.NewRetrievalError("update machine rating aggregate", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.NewRetrievalError("commit review", err)
	}
	return nil
}

func (r *reviewRepository) ListBySubject(ctx context.Context, reviewedID uuid.UUID) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE reviewed_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, "list reviews by subject", query, reviewedID)
}

func (r *reviewRepository) ListByMachine(ctx context.Context, machineID uuid.UUID) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews
	          WHERE machine_id = $1 AND review_type = 'client_reviews_owner'
	          ORDER BY created_at DESC`
	return r.list(ctx, "list reviews by machine", query, machineID)
}

func (r *reviewRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]domain.Review, error) {
	var reviews []domain.Review
	logger.DatabaseCall("SELECT", "reviews", "op", op)
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		logger.DatabaseResult("SELECT", 0, err, "op", op)
		return nil, domain.NewRetrievalError(op, err)
	}
	logger.DatabaseResult("SELECT", int64(len(reviews)), nil, "op", op)
	return reviews, nil
}

type ratingAggregateRepository struct {
	db *sqlx.DB
}

func NewRatingAggregateRepository(db *sqlx.DB) repository.RatingAggregateRepository {
	return &ratingAggregateRepository{db: db}
}

// GetSubject returns zeroed counters when the subject has never been reviewed.
func (r *ratingAggregateRepository) GetSubject(ctx context.Context, subjectID uuid.UUID, perspective domain.Perspective) (*domain.RatingAggregate, error) {
	agg := domain.RatingAggregate{SubjectID: subjectID, Perspective: perspective}
	query := `SELECT subject_id, perspective, weighted_sum, weight_total, review_count
	          FROM rating_aggregates WHERE subject_id = $1 AND perspective = $2`
	if err := r.db.GetContext(ctx, &agg, query, subjectID, perspective); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewRetrievalError("get rating aggregate", err)
	}
	return &agg, nil
}

func (r *ratingAggregateRepository) GetMachine(ctx context.Context, machineID uuid.UUID) (*domain.MachineRatingAggregate, error) {
	agg := domain.MachineRatingAggregate{MachineID: machineID}
	query := `SELECT machine_id, rating_sum, review_count FROM machine_rating_aggregates WHERE machine_id = $1`
	if err := r.db.GetContext(ctx, &agg, query, machineID); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewRetrievalError("get machine rating aggregate", err)
	}
	return &agg, nil
}

func (r *ratingAggregateRepository) Rebuild(ctx context.Context, build repository.AggregateBuilder) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.NewRetrievalError("begin aggregate rebuild", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// SHARE conflicts with the ROW EXCLUSIVE lock a review insert takes, so
	// no review can commit between the scan and the swap.
	logger.DatabaseCall("LOCK", "reviews", "mode", "SHARE")
	if _, err = tx.ExecContext(ctx, `LOCK TABLE reviews IN SHARE MODE`); err != nil {
		return domain.NewRetrievalError("lock reviews", err)
	}

	var reviews []domain.Review
	logger.DatabaseCall("SELECT", "reviews", "op", "rebuild scan")
	if err = tx.SelectContext(ctx, &reviews, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at`); err != nil {
		return domain.NewRetrievalError("list reviews", err)
	}
	subjects, machines := build(reviews)

	logger.DatabaseCall("REPLACE", "rating_aggregates", "reviews", len(reviews), "subjects", len(subjects), "machines", len(machines))
	if _, err = tx.ExecContext(ctx, `DELETE FROM rating_aggregates`); err != nil {
		return domain.NewRetrievalError("clear rating aggregates", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM machine_rating_aggregates`); err != nil {
		return domain.NewRetrievalError("clear machine rating aggregates", err)
	}
	for i := range subjects {
		_, err = tx.NamedExecContext(ctx, `INSERT INTO rating_aggregates (subject_id, perspective, weighted_sum, weight_total, review_count)
		                                   VALUES (:subject_id, :perspective, :weighted_sum, :weight_total, :review_count)`, subjects[i])
		if err != nil {
			return domain.NewRetrievalError("insert rating aggregate", err)
		}
	}
	for i := range machines {
		_, err = tx.NamedExecContext(ctx, `INSERT INTO machine_rating_aggregates (machine_id, rating_sum, review_count)
		                                   VALUES (:machine_id, :rating_sum, :review_count)`, machines[i])
		if err != nil {
			return domain.NewRetrievalError("insert machine rating aggregate", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return domain.NewRetrievalError("commit aggregate rebuild", err)
	}
	logger.DatabaseResult("REPLACE", int64(len(subjects)+len(machines)), nil)
	return nil
}
