package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"agrorent-backend/internal/domain"
)

type profileService struct {
	reputation   ReputationService
	verification VerificationService
}

func NewProfileService(reputation ReputationService, verification VerificationService) ProfileService {
	return &profileService{reputation: reputation, verification: verification}
}

// GetProfile reads both ratings and the verification rollup concurrently.
// Any failed read fails the whole profile.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p := &domain.Profile{UserID: userID}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := s.reputation.ComputeSubjectRating(gctx, userID, domain.PerspectiveProvider)
		if err != nil {
			return err
		}
		p.ProviderRating = *r
		return nil
	})
	g.Go(func() error {
		r, err := s.reputation.ComputeSubjectRating(gctx, userID, domain.PerspectiveClient)
		if err != nil {
			return err
		}
		p.ClientRating = *r
		return nil
	})
	g.Go(func() error {
		v, err := s.verification.GetStatus(gctx, userID)
		if err != nil {
			return err
		}
		p.Verification = *v
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return p, nil
}
