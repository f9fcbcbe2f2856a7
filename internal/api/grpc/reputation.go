package grpc

import (
	"context"

	pb "agrorent-backend/api/gen/v1"
	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/service"
)

type ReputationHandler struct {
	pb.UnimplementedReputationServiceServer
	reputationSvc service.ReputationService
}

func NewReputationHandler(reputationSvc service.ReputationService) *ReputationHandler {
	return &ReputationHandler{reputationSvc: reputationSvc}
}

func (h *ReputationHandler) SubmitReview(ctx context.Context, req *pb.SubmitReviewRequest) (*pb.ReviewResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	bookingID, err := parseID("booking_id", req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	rv, err := h.reputationSvc.SubmitReview(ctx, userID, domain.ReviewSubmission{
		BookingID:           bookingID,
		Rating:              req.Rating,
		ServiceRating:       optionalInt32(req.ServiceRating),
		OperatorRating:      optionalInt32(req.OperatorRating),
		MachineRating:       optionalInt32(req.MachineRating),
		ClientRating:        optionalInt32(req.ClientRating),
		CommunicationRating: optionalInt32(req.CommunicationRating),
		PunctualityRating:   optionalInt32(req.PunctualityRating),
		Comment:             optionalString(req.Comment),
		Observations:        optionalString(req.Observations),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReviewResponse{Review: MapDomainReviewToProto(rv)}, nil
}

func (h *ReputationHandler) GetSubjectRating(ctx context.Context, req *pb.GetSubjectRatingRequest) (*pb.SubjectRating, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, toStatus(err)
	}
	r, err := h.reputationSvc.ComputeSubjectRating(ctx, subjectID, domain.Perspective(req.Perspective))
	if err != nil {
		return nil, toStatus(err)
	}
	return MapDomainSubjectRatingToProto(r), nil
}

func (h *ReputationHandler) GetMachineRating(ctx context.Context, req *pb.GetMachineRatingRequest) (*pb.MachineRating, error) {
	machineID, err := parseID("machine_id", req.MachineId)
	if err != nil {
		return nil, toStatus(err)
	}
	r, err := h.reputationSvc.ComputeMachineRating(ctx, machineID)
	if err != nil {
		return nil, toStatus(err)
	}
	return MapDomainMachineRatingToProto(r), nil
}

func (h *ReputationHandler) ListSubjectReviews(ctx context.Context, req *pb.ListSubjectReviewsRequest) (*pb.ListReviewsResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, toStatus(err)
	}
	reviews, err := h.reputationSvc.ListReviewsForSubject(ctx, subjectID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListReviewsResponse{Reviews: MapDomainReviewsToProto(reviews)}, nil
}

func (h *ReputationHandler) ListMachineReviews(ctx context.Context, req *pb.ListMachineReviewsRequest) (*pb.ListReviewsResponse, error) {
	machineID, err := parseID("machine_id", req.MachineId)
	if err != nil {
		return nil, toStatus(err)
	}
	reviews, err := h.reputationSvc.ListReviewsForMachine(ctx, machineID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListReviewsResponse{Reviews: MapDomainReviewsToProto(reviews)}, nil
}
