package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/repository/postgres"
)

func int32p(v int32) *int32 { return &v }

func TestReviewRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("Client review updates subject and machine counters", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewReviewRepository(db)
		rv := &domain.Review{
			BookingID:     uuid.New(),
			MachineID:     uuid.New(),
			ReviewerID:    uuid.New(),
			ReviewedID:    uuid.New(),
			ReviewType:    domain.ReviewTypeClientReviewsOwner,
			Rating:        4,
			ServiceRating: int32p(5),
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rating_aggregates").
			WithArgs(rv.ReviewedID, domain.PerspectiveProvider, int64(13), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO machine_rating_aggregates").
			WithArgs(rv.MachineID, int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.InsertIfAbsent(ctx, rv)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rv.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Owner review leaves machine counters alone", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewReviewRepository(db)
		rv := &domain.Review{
			BookingID:    uuid.New(),
			MachineID:    uuid.New(),
			ReviewerID:   uuid.New(),
			ReviewedID:   uuid.New(),
			ReviewType:   domain.ReviewTypeOwnerReviewsClient,
			Rating:       3,
			ClientRating: int32p(4),
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rating_aggregates").
			WithArgs(rv.ReviewedID, domain.PerspectiveClient, int64(8), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.InsertIfAbsent(ctx, rv))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Review without weighted categories is stored but not counted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewReviewRepository(db)
		rv := &domain.Review{
			BookingID:  uuid.New(),
			MachineID:  uuid.New(),
			ReviewerID: uuid.New(),
			ReviewedID: uuid.New(),
			ReviewType: domain.ReviewTypeOwnerReviewsClient,
			Rating:     5,
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.InsertIfAbsent(ctx, rv))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict on booking and reviewer", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewReviewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.InsertIfAbsent(ctx, &domain.Review{BookingID: uuid.New(), ReviewerID: uuid.New(), ReviewType: domain.ReviewTypeClientReviewsOwner, Rating: 5})
		assert.ErrorIs(t, err, domain.ErrDuplicateReview)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique violation from a racing insert", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewReviewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.InsertIfAbsent(ctx, &domain.Review{BookingID: uuid.New(), ReviewerID: uuid.New(), ReviewType: domain.ReviewTypeClientReviewsOwner, Rating: 5})
		assert.ErrorIs(t, err, domain.ErrDuplicateReview)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Aggregate failure rolls back the review", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewReviewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO reviews").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rating_aggregates").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.InsertIfAbsent(ctx, &domain.Review{BookingID: uuid.New(), ReviewerID: uuid.New(), ReviewType: domain.ReviewTypeClientReviewsOwner, Rating: 5})
		assert.ErrorIs(t, err, domain.ErrRetrieval)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_ListBySubject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewReviewRepository(db)
	subject := uuid.New()
	now := time.Now().UTC()

	cols := []string{"id", "booking_id", "machine_id", "reviewer_id", "reviewed_id", "review_type", "rating",
		"service_rating", "operator_rating", "machine_rating", "client_rating", "communication_rating",
		"punctuality_rating", "comment", "observations", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString(), subject.String(), "client_reviews_owner", 4,
			5, nil, nil, nil, nil, nil, "bom servico", nil, now)
	mock.ExpectQuery("SELECT (.+) FROM reviews WHERE reviewed_id = \\$1").
		WithArgs(subject).
		WillReturnRows(rows)

	reviews, err := repo.ListBySubject(context.Background(), subject)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, int32(4), reviews[0].Rating)
	require.NotNil(t, reviews[0].ServiceRating)
	assert.Equal(t, int32(5), *reviews[0].ServiceRating)
	assert.Nil(t, reviews[0].OperatorRating)
	require.NotNil(t, reviews[0].Comment)
	assert.Equal(t, "bom servico", *reviews[0].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingAggregateRepository_GetSubject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewRatingAggregateRepository(db)
	ctx := context.Background()
	subject := uuid.New()
	cols := []string{"subject_id", "perspective", "weighted_sum", "weight_total", "review_count"}

	t.Run("Existing counters", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rating_aggregates WHERE subject_id = \\$1 AND perspective = \\$2").
			WithArgs(subject, domain.PerspectiveProvider).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(subject.String(), "provider", 17, 5, 2))

		agg, err := repo.GetSubject(ctx, subject, domain.PerspectiveProvider)
		require.NoError(t, err)
		assert.Equal(t, int64(17), agg.WeightedSum)
		assert.Equal(t, int64(5), agg.WeightTotal)
		assert.Equal(t, int64(2), agg.ReviewCount)
	})

	t.Run("Never reviewed", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rating_aggregates").
			WithArgs(subject, domain.PerspectiveClient).
			WillReturnRows(sqlmock.NewRows(cols))

		agg, err := repo.GetSubject(ctx, subject, domain.PerspectiveClient)
		require.NoError(t, err)
		assert.Equal(t, subject, agg.SubjectID)
		assert.Equal(t, domain.PerspectiveClient, agg.Perspective)
		assert.Equal(t, int64(0), agg.ReviewCount)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func reviewRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "booking_id", "machine_id", "reviewer_id", "reviewed_id", "review_type", "rating",
		"service_rating", "operator_rating", "machine_rating", "client_rating", "communication_rating",
		"punctuality_rating", "comment", "observations", "created_at"})
}

func TestReviewRepository_ListByMachine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewReviewRepository(db)
	machine := uuid.New()

	rows := reviewRows().
		AddRow(uuid.NewString(), uuid.NewString(), machine.String(), uuid.NewString(), uuid.NewString(), "client_reviews_owner", 5,
			nil, nil, 4, nil, nil, nil, nil, "trator revisado", time.Now().UTC())
	mock.ExpectQuery("SELECT (.+) FROM reviews WHERE machine_id = \\$1 AND review_type = 'client_reviews_owner'").
		WithArgs(machine).
		WillReturnRows(rows)

	reviews, err := repo.ListByMachine(context.Background(), machine)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, machine, reviews[0].MachineID)
	require.NotNil(t, reviews[0].MachineRating)
	assert.Equal(t, int32(4), *reviews[0].MachineRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingAggregateRepository_Rebuild(t *testing.T) {
	ctx := context.Background()
	subject := domain.RatingAggregate{SubjectID: uuid.New(), Perspective: domain.PerspectiveProvider, WeightedSum: 10, WeightTotal: 2, ReviewCount: 1}
	machine := domain.MachineRatingAggregate{MachineID: uuid.New(), RatingSum: 5, ReviewCount: 1}

	t.Run("Scan and swap share one locked transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewRatingAggregateRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("LOCK TABLE reviews IN SHARE MODE").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM reviews ORDER BY created_at").
			WillReturnRows(reviewRows().
				AddRow(uuid.NewString(), uuid.NewString(), machine.MachineID.String(), uuid.NewString(), subject.SubjectID.String(), "client_reviews_owner", 5,
					nil, nil, nil, nil, nil, nil, nil, nil, time.Now().UTC()))
		mock.ExpectExec("DELETE FROM rating_aggregates").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("DELETE FROM machine_rating_aggregates").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rating_aggregates").
			WithArgs(subject.SubjectID, subject.Perspective, subject.WeightedSum, subject.WeightTotal, subject.ReviewCount).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO machine_rating_aggregates").
			WithArgs(machine.MachineID, machine.RatingSum, machine.ReviewCount).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		var seen []domain.Review
		err := repo.Rebuild(ctx, func(reviews []domain.Review) ([]domain.RatingAggregate, []domain.MachineRatingAggregate) {
			seen = reviews
			return []domain.RatingAggregate{subject}, []domain.MachineRatingAggregate{machine}
		})
		require.NoError(t, err)
		require.Len(t, seen, 1)
		assert.Equal(t, subject.SubjectID, seen[0].ReviewedID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lock failure changes nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewRatingAggregateRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("LOCK TABLE reviews IN SHARE MODE").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		called := false
		err := repo.Rebuild(ctx, func([]domain.Review) ([]domain.RatingAggregate, []domain.MachineRatingAggregate) {
			called = true
			return nil, nil
		})
		assert.ErrorIs(t, err, domain.ErrRetrieval)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDocumentRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDocumentRepository(db)
	user := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "document_type", "verified", "created_at"}).
		AddRow(uuid.NewString(), user.String(), "cnh", nil, now).
		AddRow(uuid.NewString(), user.String(), "cpf", true, now).
		AddRow(uuid.NewString(), user.String(), "comprovante_residencia", false, now)
	mock.ExpectQuery("SELECT (.+) FROM documents WHERE user_id = \\$1").
		WithArgs(user).
		WillReturnRows(rows)

	docs, err := repo.ListByUser(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, domain.DocumentStatusPending, docs[0].Verified)
	assert.Equal(t, domain.DocumentStatusApproved, docs[1].Verified)
	assert.Equal(t, domain.DocumentStatusRejected, docs[2].Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMachineRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewMachineRepository(db)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		m := &domain.Machine{OwnerID: uuid.New(), Name: "Trator John Deere 6110J", Category: "trator"}
		mock.ExpectExec("INSERT INTO machines").
			WithArgs(sqlmock.AnyArg(), m.OwnerID, m.Name, m.Category, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, m))
		assert.NotEqual(t, uuid.Nil, m.ID)
	})

	t.Run("Missing", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM machines WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "category", "created_at"}))

		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
