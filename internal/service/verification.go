package service

import (
	"context"

	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
)

const (
	reasonRejected    = "documents rejected: resubmit a valid document to continue"
	reasonPending     = "documents pending review: wait for verification to finish"
	reasonNoDocuments = "no documents submitted: upload an identity document to continue"
)

type verificationService struct {
	docRepo repository.DocumentRepository
	retry   ReadRetry
}

func NewVerificationService(docRepo repository.DocumentRepository, retry ReadRetry) VerificationService {
	return &verificationService{docRepo: docRepo, retry: retry}
}

// RollupDocuments reduces a user's documents to one status. The flags are
// computed independently of each other.
func RollupDocuments(docs []domain.Document) domain.VerificationStatus {
	status := domain.VerificationStatus{
		HasDocuments:   len(docs) > 0,
		TotalDocuments: int32(len(docs)),
	}
	for _, d := range docs {
		switch d.Verified {
		case domain.DocumentStatusPending:
			status.HasPending = true
		case domain.DocumentStatusApproved:
			status.HasApproved = true
		case domain.DocumentStatusRejected:
			status.HasRejected = true
		}
	}
	return status
}

func (s *verificationService) GetStatus(ctx context.Context, userID uuid.UUID) (*domain.VerificationStatus, error) {
	logger.EnterMethod("verificationService.GetStatus", "userID", userID)

	docs, err := readWithRetry(ctx, s.retry, "list documents", func(ctx context.Context) ([]domain.Document, error) {
		return s.docRepo.ListByUser(ctx, userID)
	})
	if err != nil {
		logger.ExitMethodWithError("verificationService.GetStatus", err, "userID", userID)
		return nil, err
	}

	status := RollupDocuments(docs)
	logger.ExitMethod("verificationService.GetStatus", "userID", userID, "total", status.TotalDocuments, "approved", status.HasApproved)
	return &status, nil
}

// CanCreateBooking needs one approved document. Pending or rejected
// documents alongside it do not matter.
func (s *verificationService) CanCreateBooking(ctx context.Context, userID uuid.UUID) (bool, error) {
	status, err := s.GetStatus(ctx, userID)
	if err != nil {
		return false, err
	}
	return status.HasApproved, nil
}

func (s *verificationService) CanCreateListing(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.CanCreateBooking(ctx, userID)
}

// DescribeBlockingReason picks the message for a blocked user with precedence
// rejected, then pending, then no documents. It is empty when not blocked.
func (s *verificationService) DescribeBlockingReason(status domain.VerificationStatus) string {
	return DescribeBlockingReason(status)
}

func DescribeBlockingReason(status domain.VerificationStatus) string {
	switch {
	case status.HasApproved:
		return ""
	case status.HasRejected:
		return reasonRejected
	case status.HasPending:
		return reasonPending
	default:
		return reasonNoDocuments
	}
}
