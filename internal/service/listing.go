package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
)

type listingService struct {
	machineRepo repository.MachineRepository
	gate        VerificationService
	validate    *validator.Validate
}

func NewListingService(machineRepo repository.MachineRepository, gate VerificationService) ListingService {
	return &listingService{machineRepo: machineRepo, gate: gate, validate: newValidator()}
}

func (s *listingService) CreateMachine(ctx context.Context, ownerID uuid.UUID, listing domain.MachineListing) (*domain.Machine, error) {
	logger.EnterMethod("listingService.CreateMachine", "ownerID", ownerID)

	if err := requireGate(ctx, s.gate, ownerID); err != nil {
		logger.ExitMethodWithError("listingService.CreateMachine", err, "ownerID", ownerID)
		return nil, err
	}
	if err := validateStruct(s.validate, listing); err != nil {
		logger.ExitMethodWithError("listingService.CreateMachine", err, "ownerID", ownerID)
		return nil, err
	}

	m := &domain.Machine{
		OwnerID:  ownerID,
		Name:     listing.Name,
		Category: listing.Category,
	}
	if err := s.machineRepo.Create(ctx, m); err != nil {
		logger.ExitMethodWithError("listingService.CreateMachine", err, "ownerID", ownerID)
		return nil, err
	}

	logger.ExitMethod("listingService.CreateMachine", "machineID", m.ID)
	return m, nil
}
