// Package reputation holds the pure rating arithmetic shared by the live
// incremental counters and the full rebuild. Everything here is a function of
// its inputs only.
package reputation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agrorent-backend/internal/domain"
)

const (
	primaryWeight  = 2
	categoryWeight = 1
)

// Contribution is what one review adds to its subject's counters.
type Contribution struct {
	WeightedSum int64
	Weight      int64
}

type weightedField struct {
	value  *int32
	weight int64
}

func fieldsFor(r *domain.Review, p domain.Perspective) []weightedField {
	if p == domain.PerspectiveClient {
		return []weightedField{
			{r.ClientRating, primaryWeight},
			{r.CommunicationRating, categoryWeight},
			{r.PunctualityRating, categoryWeight},
		}
	}
	rating := r.Rating
	return []weightedField{
		{&rating, primaryWeight},
		{r.ServiceRating, categoryWeight},
		{r.OperatorRating, categoryWeight},
		{r.MachineRating, categoryWeight},
	}
}

// ContributionOf weighs the categories present on r for perspective p.
// Absent categories are skipped, not counted as zero.
func ContributionOf(r *domain.Review, p domain.Perspective) Contribution {
	var c Contribution
	for _, f := range fieldsFor(r, p) {
		if f.value == nil {
			continue
		}
		c.WeightedSum += int64(*f.value) * f.weight
		c.Weight += f.weight
	}
	return c
}

// Apply folds one review into an aggregate. A review that carries none of the
// perspective's categories adds no weight and is not counted, so a subject is
// never reported as reviewed with nothing to average.
func Apply(agg domain.RatingAggregate, r *domain.Review) domain.RatingAggregate {
	c := ContributionOf(r, agg.Perspective)
	if c.Weight == 0 {
		return agg
	}
	agg.WeightedSum += c.WeightedSum
	agg.WeightTotal += c.Weight
	agg.ReviewCount++
	return agg
}

// AggregateSubject builds the counters for subjectID in perspective p from
// the full review set. It selects reviews by reviewed_id AND by review type:
// a user reviewed both as owner and as client has two independent ratings,
// so owner_reviews_client rows never feed the provider perspective and
// client_reviews_owner rows never feed the client perspective.
func AggregateSubject(subjectID uuid.UUID, p domain.Perspective, reviews []domain.Review) domain.RatingAggregate {
	agg := domain.RatingAggregate{SubjectID: subjectID, Perspective: p}
	want := p.ReviewType()
	for i := range reviews {
		r := &reviews[i]
		if r.ReviewedID != subjectID || r.ReviewType != want {
			continue
		}
		agg = Apply(agg, r)
	}
	return agg
}

// AggregateMachine builds the listing counters for machineID. Only
// client_reviews_owner rows count, and only their overall rating.
func AggregateMachine(machineID uuid.UUID, reviews []domain.Review) domain.MachineRatingAggregate {
	agg := domain.MachineRatingAggregate{MachineID: machineID}
	for i := range reviews {
		r := &reviews[i]
		if r.MachineID != machineID || r.ReviewType != domain.ReviewTypeClientReviewsOwner {
			continue
		}
		agg.RatingSum += int64(r.Rating)
		agg.ReviewCount++
	}
	return agg
}

// SubjectRating turns counters into the caller-facing rating. No reviews
// yields the {0, 0} sentinel.
func SubjectRating(agg domain.RatingAggregate) domain.SubjectRating {
	out := domain.SubjectRating{
		SubjectID:    agg.SubjectID,
		Perspective:  agg.Perspective,
		TotalReviews: agg.ReviewCount,
	}
	if agg.ReviewCount == 0 {
		return out
	}
	out.AverageRating = RoundedMean(agg.WeightedSum, agg.WeightTotal)
	return out
}

func MachineRating(agg domain.MachineRatingAggregate) domain.MachineRating {
	return domain.MachineRating{
		MachineID:     agg.MachineID,
		AverageRating: RoundedMean(agg.RatingSum, agg.ReviewCount),
		ReviewCount:   agg.ReviewCount,
	}
}

// RoundedMean is sum/count rounded half up to one decimal, computed exactly.
func RoundedMean(sum, count int64) float64 {
	if count == 0 {
		return 0
	}
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 1).InexactFloat64()
}
