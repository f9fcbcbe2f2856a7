package reputation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"agrorent-backend/internal/domain"
)

func i32(v int32) *int32 { return &v }

func providerReview(subject uuid.UUID, rating int32) domain.Review {
	return domain.Review{
		ID:         uuid.New(),
		ReviewedID: subject,
		ReviewType: domain.ReviewTypeClientReviewsOwner,
		Rating:     rating,
	}
}

func TestAggregateSubject_Provider(t *testing.T) {
	subject := uuid.New()

	t.Run("No reviews", func(t *testing.T) {
		got := SubjectRating(AggregateSubject(subject, domain.PerspectiveProvider, nil))
		assert.Equal(t, 0.0, got.AverageRating)
		assert.Equal(t, int64(0), got.TotalReviews)
		assert.False(t, got.IsRated())
	})

	t.Run("Single overall rating", func(t *testing.T) {
		reviews := []domain.Review{providerReview(subject, 5)}
		got := SubjectRating(AggregateSubject(subject, domain.PerspectiveProvider, reviews))
		assert.Equal(t, 5.0, got.AverageRating)
		assert.Equal(t, int64(1), got.TotalReviews)
	})

	t.Run("Absent categories are skipped", func(t *testing.T) {
		a := providerReview(subject, 4)
		a.ServiceRating = i32(5)
		b := providerReview(subject, 2)

		agg := AggregateSubject(subject, domain.PerspectiveProvider, []domain.Review{a, b})
		assert.Equal(t, int64(17), agg.WeightedSum)
		assert.Equal(t, int64(5), agg.WeightTotal)
		assert.Equal(t, 3.4, SubjectRating(agg).AverageRating)
	})

	t.Run("All categories present", func(t *testing.T) {
		r := providerReview(subject, 5)
		r.ServiceRating = i32(4)
		r.OperatorRating = i32(3)
		r.MachineRating = i32(2)
		// (10+4+3+2)/5 = 3.8
		got := SubjectRating(AggregateSubject(subject, domain.PerspectiveProvider, []domain.Review{r}))
		assert.Equal(t, 3.8, got.AverageRating)
	})

	t.Run("Other subjects and client reviews are ignored", func(t *testing.T) {
		other := providerReview(uuid.New(), 1)
		clientSide := providerReview(subject, 1)
		clientSide.ReviewType = domain.ReviewTypeOwnerReviewsClient
		mine := providerReview(subject, 4)

		got := SubjectRating(AggregateSubject(subject, domain.PerspectiveProvider, []domain.Review{other, clientSide, mine}))
		assert.Equal(t, 4.0, got.AverageRating)
		assert.Equal(t, int64(1), got.TotalReviews)
	})
}

func TestAggregateSubject_Client(t *testing.T) {
	subject := uuid.New()
	r := domain.Review{
		ReviewedID:          subject,
		ReviewType:          domain.ReviewTypeOwnerReviewsClient,
		Rating:              1,
		ClientRating:        i32(5),
		CommunicationRating: i32(4),
	}
	legacy := domain.Review{
		ReviewedID:        subject,
		ReviewType:        domain.ReviewTypeOwnerReviewsClient,
		Rating:            5,
		PunctualityRating: i32(3),
	}

	agg := AggregateSubject(subject, domain.PerspectiveClient, []domain.Review{r, legacy})
	// (5*2 + 4) + 3 = 17 over (2+1) + 1 = 4
	assert.Equal(t, int64(17), agg.WeightedSum)
	assert.Equal(t, int64(4), agg.WeightTotal)
	assert.Equal(t, int64(2), agg.ReviewCount)
	assert.Equal(t, 4.3, SubjectRating(agg).AverageRating)
}

func TestAggregateSubject_ClientWithoutCategories(t *testing.T) {
	renter := uuid.New()
	overallOnly := domain.Review{ReviewedID: renter, ReviewType: domain.ReviewTypeOwnerReviewsClient, Rating: 5}

	agg := AggregateSubject(renter, domain.PerspectiveClient, []domain.Review{overallOnly})
	assert.Equal(t, domain.RatingAggregate{SubjectID: renter, Perspective: domain.PerspectiveClient}, agg)

	got := SubjectRating(agg)
	assert.Equal(t, int64(0), got.TotalReviews)
	assert.False(t, got.IsRated())

	rated := overallOnly
	rated.ClientRating = i32(4)
	agg = AggregateSubject(renter, domain.PerspectiveClient, []domain.Review{overallOnly, rated})
	assert.Equal(t, int64(1), agg.ReviewCount)
	assert.Equal(t, 4.0, SubjectRating(agg).AverageRating)
}

func TestAggregateSubject_Idempotent(t *testing.T) {
	subject := uuid.New()
	reviews := []domain.Review{providerReview(subject, 3), providerReview(subject, 4)}

	first := AggregateSubject(subject, domain.PerspectiveProvider, reviews)
	second := AggregateSubject(subject, domain.PerspectiveProvider, reviews)
	assert.Equal(t, first, second)
}

func TestApply_MatchesFullAggregate(t *testing.T) {
	subject := uuid.New()
	a := providerReview(subject, 4)
	a.OperatorRating = i32(2)
	b := providerReview(subject, 5)

	running := domain.RatingAggregate{SubjectID: subject, Perspective: domain.PerspectiveProvider}
	running = Apply(running, &a)
	running = Apply(running, &b)

	assert.Equal(t, AggregateSubject(subject, domain.PerspectiveProvider, []domain.Review{a, b}), running)
}

func TestAggregateMachine(t *testing.T) {
	machine := uuid.New()

	t.Run("Owner reviews of the client are excluded", func(t *testing.T) {
		reviews := []domain.Review{
			{MachineID: machine, ReviewType: domain.ReviewTypeClientReviewsOwner, Rating: 5},
			{MachineID: machine, ReviewType: domain.ReviewTypeOwnerReviewsClient, Rating: 1},
		}
		got := MachineRating(AggregateMachine(machine, reviews))
		assert.Equal(t, 5.0, got.AverageRating)
		assert.Equal(t, int64(1), got.ReviewCount)
	})

	t.Run("Category fields are ignored", func(t *testing.T) {
		reviews := []domain.Review{
			{MachineID: machine, ReviewType: domain.ReviewTypeClientReviewsOwner, Rating: 4, MachineRating: i32(1)},
			{MachineID: machine, ReviewType: domain.ReviewTypeClientReviewsOwner, Rating: 5},
			{MachineID: machine, ReviewType: domain.ReviewTypeClientReviewsOwner, Rating: 5},
		}
		got := MachineRating(AggregateMachine(machine, reviews))
		assert.Equal(t, 4.7, got.AverageRating)
		assert.Equal(t, int64(3), got.ReviewCount)
	})

	t.Run("No reviews", func(t *testing.T) {
		got := MachineRating(AggregateMachine(machine, nil))
		assert.Equal(t, 0.0, got.AverageRating)
		assert.Equal(t, int64(0), got.ReviewCount)
	})
}

func TestRoundedMean_HalfUp(t *testing.T) {
	tests := []struct {
		sum, count int64
		expected   float64
	}{
		{17, 5, 3.4},
		{9, 2, 4.5},
		{5, 4, 1.3},   // 1.25 rounds up
		{41, 12, 3.4}, // 3.4166...
		{7, 3, 2.3},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundedMean(tt.sum, tt.count), "sum=%d count=%d", tt.sum, tt.count)
	}
}
