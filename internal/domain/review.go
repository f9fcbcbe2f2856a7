package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReviewType string

const (
	ReviewTypeOwnerReviewsClient ReviewType = "owner_reviews_client"
	ReviewTypeClientReviewsOwner ReviewType = "client_reviews_owner"
)

// Perspective is the role in which a subject's reputation is read.
type Perspective string

const (
	PerspectiveProvider Perspective = "provider"
	PerspectiveClient   Perspective = "client"
)

func (p Perspective) Valid() bool {
	return p == PerspectiveProvider || p == PerspectiveClient
}

// ReviewType is the kind of review that feeds this perspective.
func (p Perspective) ReviewType() ReviewType {
	if p == PerspectiveClient {
		return ReviewTypeOwnerReviewsClient
	}
	return ReviewTypeClientReviewsOwner
}

// Perspective is the reputation a review of this type counts towards.
func (t ReviewType) Perspective() Perspective {
	if t == ReviewTypeOwnerReviewsClient {
		return PerspectiveClient
	}
	return PerspectiveProvider
}

type Review struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	BookingID           uuid.UUID  `json:"booking_id" db:"booking_id"`
	MachineID           uuid.UUID  `json:"machine_id" db:"machine_id"`
	ReviewerID          uuid.UUID  `json:"reviewer_id" db:"reviewer_id"`
	ReviewedID          uuid.UUID  `json:"reviewed_id" db:"reviewed_id"`
	ReviewType          ReviewType `json:"review_type" db:"review_type"`
	Rating              int32      `json:"rating" db:"rating"`
	ServiceRating       *int32     `json:"service_rating,omitempty" db:"service_rating"`
	OperatorRating      *int32     `json:"operator_rating,omitempty" db:"operator_rating"`
	MachineRating       *int32     `json:"machine_rating,omitempty" db:"machine_rating"`
	ClientRating        *int32     `json:"client_rating,omitempty" db:"client_rating"`
	CommunicationRating *int32     `json:"communication_rating,omitempty" db:"communication_rating"`
	PunctualityRating   *int32     `json:"punctuality_rating,omitempty" db:"punctuality_rating"`
	Comment             *string    `json:"comment,omitempty" db:"comment"`
	Observations        *string    `json:"observations,omitempty" db:"observations"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
}

// ReviewSubmission is the reviewer's input. Reviewer, reviewed party and
// review type come from the booking, not from the caller.
type ReviewSubmission struct {
	BookingID           uuid.UUID `json:"booking_id" validate:"required"`
	Rating              int32     `json:"rating" validate:"required,min=1,max=5"`
	ServiceRating       *int32    `json:"service_rating,omitempty" validate:"omitempty,min=1,max=5"`
	OperatorRating      *int32    `json:"operator_rating,omitempty" validate:"omitempty,min=1,max=5"`
	MachineRating       *int32    `json:"machine_rating,omitempty" validate:"omitempty,min=1,max=5"`
	ClientRating        *int32    `json:"client_rating,omitempty" validate:"omitempty,min=1,max=5"`
	CommunicationRating *int32    `json:"communication_rating,omitempty" validate:"omitempty,min=1,max=5"`
	PunctualityRating   *int32    `json:"punctuality_rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment             *string   `json:"comment,omitempty" validate:"omitempty,max=2000"`
	Observations        *string   `json:"observations,omitempty" validate:"omitempty,max=2000"`
}

// SubjectRating is the reputation of a user in one perspective. A zero
// TotalReviews means "not rated", not "rated zero".
type SubjectRating struct {
	SubjectID     uuid.UUID   `json:"subject_id"`
	Perspective   Perspective `json:"perspective"`
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int64       `json:"total_reviews"`
}

func (r SubjectRating) IsRated() bool { return r.TotalReviews > 0 }

type MachineRating struct {
	MachineID     uuid.UUID `json:"machine_id"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}

// RatingAggregate holds the running counters behind a SubjectRating.
type RatingAggregate struct {
	SubjectID   uuid.UUID   `db:"subject_id"`
	Perspective Perspective `db:"perspective"`
	WeightedSum int64       `db:"weighted_sum"`
	WeightTotal int64       `db:"weight_total"`
	ReviewCount int64       `db:"review_count"`
}

// MachineRatingAggregate holds the running counters behind a MachineRating.
type MachineRatingAggregate struct {
	MachineID   uuid.UUID `db:"machine_id"`
	RatingSum   int64     `db:"rating_sum"`
	ReviewCount int64     `db:"review_count"`
}
