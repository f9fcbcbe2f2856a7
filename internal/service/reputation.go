package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/events"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository"
	"agrorent-backend/internal/reputation"
)

// RebuildSummary reports what a full aggregate rebuild wrote.
type RebuildSummary struct {
	ReviewsScanned  int
	SubjectsWritten int
	MachinesWritten int
}

type reputationService struct {
	reviewRepo  repository.ReviewRepository
	aggRepo     repository.RatingAggregateRepository
	bookingRepo repository.BookingRepository
	cache       RatingCache
	publisher   EventPublisher
	validate    *validator.Validate
	retry       ReadRetry
}

func NewReputationService(
	reviewRepo repository.ReviewRepository,
	aggRepo repository.RatingAggregateRepository,
	bookingRepo repository.BookingRepository,
	cache RatingCache,
	publisher EventPublisher,
	retry ReadRetry,
) ReputationService {
	return &reputationService{
		reviewRepo:  reviewRepo,
		aggRepo:     aggRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		publisher:   publisher,
		validate:    newValidator(),
		retry:       retry,
	}
}

func (s *reputationService) ComputeSubjectRating(ctx context.Context, subjectID uuid.UUID, perspective domain.Perspective) (*domain.SubjectRating, error) {
	if !perspective.Valid() {
		return nil, domain.NewValidationError("perspective", "must be provider or client")
	}

	fill := s.cache != nil
	var gen int64
	if fill {
		r, g, err := s.cache.GetSubjectRating(ctx, subjectID, perspective)
		switch {
		case err != nil:
			logger.Warn("Rating cache read failed", "subjectID", subjectID, "error", err)
			fill = false
		case r != nil:
			return r, nil
		}
		gen = g
	}

	agg, err := readWithRetry(ctx, s.retry, "get rating aggregate", func(ctx context.Context) (*domain.RatingAggregate, error) {
		return s.aggRepo.GetSubject(ctx, subjectID, perspective)
	})
	if err != nil {
		return nil, err
	}
	rating := reputation.SubjectRating(*agg)

	if fill {
		if err := s.cache.SetSubjectRating(ctx, &rating, gen); err != nil {
			logger.Warn("Rating cache write failed", "subjectID", subjectID, "error", err)
		}
	}
	return &rating, nil
}

func (s *reputationService) ComputeMachineRating(ctx context.Context, machineID uuid.UUID) (*domain.MachineRating, error) {
	fill := s.cache != nil
	var gen int64
	if fill {
		r, g, err := s.cache.GetMachineRating(ctx, machineID)
		switch {
		case err != nil:
			logger.Warn("Rating cache read failed", "machineID", machineID, "error", err)
			fill = false
		case r != nil:
			return r, nil
		}
		gen = g
	}

	agg, err := readWithRetry(ctx, s.retry, "get machine rating aggregate", func(ctx context.Context) (*domain.MachineRatingAggregate, error) {
		return s.aggRepo.GetMachine(ctx, machineID)
	})
	if err != nil {
		return nil, err
	}
	rating := reputation.MachineRating(*agg)

	if fill {
		if err := s.cache.SetMachineRating(ctx, &rating, gen); err != nil {
			logger.Warn("Rating cache write failed", "machineID", machineID, "error", err)
		}
	}
	return &rating, nil
}

func (s *reputationService) SubmitReview(ctx context.Context, actorID uuid.UUID, sub domain.ReviewSubmission) (*domain.Review, error) {
	logger.EnterMethod("reputationService.SubmitReview", "actorID", actorID, "bookingID", sub.BookingID)

	if err := validateStruct(s.validate, sub); err != nil {
		logger.ExitMethodWithError("reputationService.SubmitReview", err, "actorID", actorID)
		return nil, err
	}

	b, err := readWithRetry(ctx, s.retry, "get booking", func(ctx context.Context) (*domain.Booking, error) {
		return s.bookingRepo.GetByID(ctx, sub.BookingID)
	})
	if err != nil {
		logger.ExitMethodWithError("reputationService.SubmitReview", err, "bookingID", sub.BookingID)
		return nil, err
	}
	reviewedID, reviewType, ok := b.Counterparty(actorID)
	if !ok {
		logger.ExitMethodWithError("reputationService.SubmitReview", domain.ErrUnauthorized, "bookingID", sub.BookingID)
		return nil, domain.ErrUnauthorized
	}
	if b.Status != domain.BookingStatusCompleted {
		err := &domain.TransitionError{Entity: "review", From: b.Status.String(), To: "reviewed"}
		logger.ExitMethodWithError("reputationService.SubmitReview", err, "bookingID", sub.BookingID)
		return nil, err
	}
	if reviewType == domain.ReviewTypeOwnerReviewsClient && sub.ClientRating == nil {
		err := domain.NewValidationError("client_rating", "is required when the owner reviews the client")
		logger.ExitMethodWithError("reputationService.SubmitReview", err, "bookingID", sub.BookingID)
		return nil, err
	}

	rv := &domain.Review{
		ID:                  uuid.New(),
		BookingID:           b.ID,
		MachineID:           b.MachineID,
		ReviewerID:          actorID,
		ReviewedID:          reviewedID,
		ReviewType:          reviewType,
		Rating:              sub.Rating,
		ServiceRating:       sub.ServiceRating,
		OperatorRating:      sub.OperatorRating,
		MachineRating:       sub.MachineRating,
		ClientRating:        sub.ClientRating,
		CommunicationRating: sub.CommunicationRating,
		PunctualityRating:   sub.PunctualityRating,
		Comment:             sub.Comment,
		Observations:        sub.Observations,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.reviewRepo.InsertIfAbsent(ctx, rv); err != nil {
		logger.ExitMethodWithError("reputationService.SubmitReview", err, "bookingID", sub.BookingID)
		return nil, err
	}

	s.invalidate(ctx, rv)
	publish(ctx, s.publisher, events.SubjectReviewSubmitted, events.ReviewEvent{
		ReviewID:   rv.ID,
		BookingID:  rv.BookingID,
		ReviewedID: rv.ReviewedID,
		ReviewType: string(rv.ReviewType),
		Rating:     rv.Rating,
		OccurredAt: rv.CreatedAt,
	})

	logger.ExitMethod("reputationService.SubmitReview", "reviewID", rv.ID, "reviewType", rv.ReviewType)
	return rv, nil
}

// invalidate drops the cached ratings the new review changed. A failure only
// leaves a stale entry until its TTL expires.
func (s *reputationService) invalidate(ctx context.Context, rv *domain.Review) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSubject(ctx, rv.ReviewedID, rv.ReviewType.Perspective()); err != nil {
		logger.Warn("Rating cache invalidation failed", "subjectID", rv.ReviewedID, "error", err)
	}
	if rv.ReviewType == domain.ReviewTypeClientReviewsOwner {
		if err := s.cache.InvalidateMachine(ctx, rv.MachineID); err != nil {
			logger.Warn("Rating cache invalidation failed", "machineID", rv.MachineID, "error", err)
		}
	}
}

func (s *reputationService) ListReviewsForSubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Review, error) {
	return readWithRetry(ctx, s.retry, "list reviews by subject", func(ctx context.Context) ([]domain.Review, error) {
		return s.reviewRepo.ListBySubject(ctx, subjectID)
	})
}

// ListReviewsForMachine returns what renters wrote about the machine's
// bookings, newest first. Owner reviews of the renter are not part of a
// listing's record.
func (s *reputationService) ListReviewsForMachine(ctx context.Context, machineID uuid.UUID) ([]domain.Review, error) {
	return readWithRetry(ctx, s.retry, "list reviews by machine", func(ctx context.Context) ([]domain.Review, error) {
		return s.reviewRepo.ListByMachine(ctx, machineID)
	})
}

// RebuildAggregates recomputes every counter row from the review set. The
// scan and the swap run in one store transaction, so reviews submitted while
// it runs are neither lost nor counted twice.
func (s *reputationService) RebuildAggregates(ctx context.Context) (*RebuildSummary, error) {
	logger.EnterMethod("reputationService.RebuildAggregates")

	type subjectKey struct {
		id uuid.UUID
		p  domain.Perspective
	}
	var (
		summary      RebuildSummary
		subjectOrder []subjectKey
		machineOrder []uuid.UUID
	)
	build := func(reviews []domain.Review) ([]domain.RatingAggregate, []domain.MachineRatingAggregate) {
		subjects := make(map[subjectKey]bool)
		machines := make(map[uuid.UUID]bool)
		subjectOrder, machineOrder = nil, nil
		for _, r := range reviews {
			k := subjectKey{r.ReviewedID, r.ReviewType.Perspective()}
			if !subjects[k] {
				subjects[k] = true
				subjectOrder = append(subjectOrder, k)
			}
			if r.ReviewType == domain.ReviewTypeClientReviewsOwner && !machines[r.MachineID] {
				machines[r.MachineID] = true
				machineOrder = append(machineOrder, r.MachineID)
			}
		}

		subjectAggs := make([]domain.RatingAggregate, 0, len(subjectOrder))
		for _, k := range subjectOrder {
			// subjects whose reviews carry no weighted category have no row
			if agg := reputation.AggregateSubject(k.id, k.p, reviews); agg.ReviewCount > 0 {
				subjectAggs = append(subjectAggs, agg)
			}
		}
		machineAggs := make([]domain.MachineRatingAggregate, 0, len(machineOrder))
		for _, id := range machineOrder {
			machineAggs = append(machineAggs, reputation.AggregateMachine(id, reviews))
		}

		summary = RebuildSummary{
			ReviewsScanned:  len(reviews),
			SubjectsWritten: len(subjectAggs),
			MachinesWritten: len(machineAggs),
		}
		return subjectAggs, machineAggs
	}

	if err := s.aggRepo.Rebuild(ctx, build); err != nil {
		logger.ExitMethodWithError("reputationService.RebuildAggregates", err)
		return nil, err
	}

	if s.cache != nil {
		for _, k := range subjectOrder {
			_ = s.cache.InvalidateSubject(ctx, k.id, k.p)
		}
		for _, id := range machineOrder {
			_ = s.cache.InvalidateMachine(ctx, id)
		}
	}

	logger.ExitMethod("reputationService.RebuildAggregates", "reviews", summary.ReviewsScanned, "subjects", summary.SubjectsWritten, "machines", summary.MachinesWritten)
	return &summary, nil
}
