package domain

import (
	"time"

	"github.com/google/uuid"
)

type Machine struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   uuid.UUID `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type MachineListing struct {
	Name     string `json:"name" validate:"required,max=120"`
	Category string `json:"category" validate:"required,max=60"`
}

// Profile is the public trust summary of a user.
type Profile struct {
	UserID         uuid.UUID          `json:"user_id"`
	ProviderRating SubjectRating      `json:"provider_rating"`
	ClientRating   SubjectRating      `json:"client_rating"`
	Verification   VerificationStatus `json:"verification"`
}
