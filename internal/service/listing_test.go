package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/service"
)

func TestListingService_CreateMachine(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	listing := domain.MachineListing{Name: "Pulverizador Jacto", Category: "pulverizacao"}

	t.Run("Verified owner", func(t *testing.T) {
		docRepo := new(MockDocumentRepo)
		machineRepo := new(MockMachineRepo)
		docRepo.On("ListByUser", mock.Anything, owner).Return(docs(domain.DocumentStatusApproved), nil)
		machineRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Machine")).Return(nil)
		svc := service.NewListingService(machineRepo, service.NewVerificationService(docRepo, fastRetry))

		m, err := svc.CreateMachine(ctx, owner, listing)
		require.NoError(t, err)
		assert.Equal(t, owner, m.OwnerID)
		assert.Equal(t, listing.Name, m.Name)
	})

	t.Run("Unverified owner", func(t *testing.T) {
		docRepo := new(MockDocumentRepo)
		machineRepo := new(MockMachineRepo)
		docRepo.On("ListByUser", mock.Anything, owner).Return([]domain.Document{}, nil)
		svc := service.NewListingService(machineRepo, service.NewVerificationService(docRepo, fastRetry))

		_, err := svc.CreateMachine(ctx, owner, listing)
		var ae *domain.AccessError
		require.True(t, errors.As(err, &ae))
		assert.Contains(t, ae.Reason, "no documents submitted")
		machineRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing name", func(t *testing.T) {
		docRepo := new(MockDocumentRepo)
		docRepo.On("ListByUser", mock.Anything, owner).Return(docs(domain.DocumentStatusApproved), nil)
		svc := service.NewListingService(new(MockMachineRepo), service.NewVerificationService(docRepo, fastRetry))

		_, err := svc.CreateMachine(ctx, owner, domain.MachineListing{Category: "trator"})
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "name", ve.Field)
	})
}
