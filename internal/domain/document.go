package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus is the review state of an uploaded document. The upstream
// encoding (verified = null/true/false) maps onto these three values.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// DocumentStatusFromVerified maps the nullable verified flag onto a status.
func DocumentStatusFromVerified(verified *bool) DocumentStatus {
	switch {
	case verified == nil:
		return DocumentStatusPending
	case *verified:
		return DocumentStatusApproved
	default:
		return DocumentStatusRejected
	}
}

type Document struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	DocumentType string         `json:"document_type"`
	Verified     DocumentStatus `json:"verified"`
	CreatedAt    time.Time      `json:"created_at"`
}

// VerificationStatus is the rollup of every document a user submitted. The
// flags are independent of each other.
type VerificationStatus struct {
	HasDocuments   bool  `json:"has_documents"`
	HasPending     bool  `json:"has_pending"`
	HasApproved    bool  `json:"has_approved"`
	HasRejected    bool  `json:"has_rejected"`
	TotalDocuments int32 `json:"total_documents"`
}
