package grpc

import (
	"context"

	pb "agrorent-backend/api/gen/v1"
	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/service"
)

// Verification, listing and profile endpoints are small; they share a file.

type VerificationHandler struct {
	pb.UnimplementedVerificationServiceServer
	verificationSvc service.VerificationService
}

func NewVerificationHandler(verificationSvc service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationSvc: verificationSvc}
}

func (h *VerificationHandler) GetVerificationStatus(ctx context.Context, _ *pb.GetVerificationStatusRequest) (*pb.VerificationStatus, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	st, err := h.verificationSvc.GetStatus(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return MapDomainVerificationToProto(st), nil
}

type ListingHandler struct {
	pb.UnimplementedListingServiceServer
	listingSvc service.ListingService
}

func NewListingHandler(listingSvc service.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

func (h *ListingHandler) CreateMachine(ctx context.Context, req *pb.CreateMachineRequest) (*pb.MachineResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	m, err := h.listingSvc.CreateMachine(ctx, userID, domain.MachineListing{Name: req.Name, Category: req.Category})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MachineResponse{Machine: MapDomainMachineToProto(m)}, nil
}

type ProfileHandler struct {
	pb.UnimplementedProfileServiceServer
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (h *ProfileHandler) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	userID, err := parseID("user_id", req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}
	p, err := h.profileSvc.GetProfile(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProfileResponse{
		UserId:         p.UserID.String(),
		ProviderRating: MapDomainSubjectRatingToProto(&p.ProviderRating),
		ClientRating:   MapDomainSubjectRatingToProto(&p.ClientRating),
		Verification:   MapDomainVerificationToProto(&p.Verification),
	}, nil
}
