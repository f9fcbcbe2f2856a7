package grpc

import (
	"context"

	pb "agrorent-backend/api/gen/v1"
	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/service"
)

type BookingHandler struct {
	pb.UnimplementedBookingServiceServer
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

func (h *BookingHandler) CreateBookingRequest(ctx context.Context, req *pb.CreateBookingRequestRequest) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	br, err := mapCreateBookingRequest(req)
	if err != nil {
		return nil, toStatus(err)
	}
	b, err := h.bookingSvc.CreateRequest(ctx, userID, br)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BookingResponse{Booking: MapDomainBookingToProto(b)}, nil
}

func mapCreateBookingRequest(req *pb.CreateBookingRequestRequest) (domain.BookingRequest, error) {
	var (
		br  domain.BookingRequest
		err error
	)
	if br.MachineID, err = parseID("machine_id", req.MachineId); err != nil {
		return br, err
	}
	if br.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		return br, err
	}
	if br.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		return br, err
	}
	if br.Quantity, err = parseDecimal("quantity", req.Quantity); err != nil {
		return br, err
	}
	if br.EstimatedAmount, err = parseDecimal("estimated_amount", req.EstimatedAmount); err != nil {
		return br, err
	}
	return br, nil
}

func (h *BookingHandler) ApproveBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	bookingID, err := parseID("booking_id", req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	b, err := h.bookingSvc.Approve(ctx, bookingID, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BookingResponse{Booking: MapDomainBookingToProto(b)}, nil
}

func (h *BookingHandler) RejectBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	bookingID, err := parseID("booking_id", req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	b, err := h.bookingSvc.Reject(ctx, bookingID, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BookingResponse{Booking: MapDomainBookingToProto(b)}, nil
}

func (h *BookingHandler) CompleteBooking(ctx context.Context, req *pb.CompleteBookingRequest) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	bookingID, err := parseID("booking_id", req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	price, err := parseDecimal("negotiated_price", req.NegotiatedPrice)
	if err != nil {
		return nil, toStatus(err)
	}
	qty, err := parseDecimal("billing_quantity", req.BillingQuantity)
	if err != nil {
		return nil, toStatus(err)
	}
	b, err := h.bookingSvc.Complete(ctx, bookingID, userID, domain.CompletionPayload{
		NegotiatedPrice: price,
		BillingType:     domain.BillingType(req.BillingType),
		BillingQuantity: qty,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BookingResponse{Booking: MapDomainBookingToProto(b)}, nil
}

func (h *BookingHandler) GetBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	bookingID, err := parseID("booking_id", req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	b, err := h.bookingSvc.Get(ctx, bookingID, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BookingResponse{Booking: MapDomainBookingToProto(b)}, nil
}

func (h *BookingHandler) ListMyBookings(ctx context.Context, req *pb.ListMyBookingsRequest) (*pb.ListBookingsResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	status := domain.BookingStatus(req.Status)
	switch status {
	case "", domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCompleted, domain.BookingStatusRejected:
	default:
		return nil, toStatus(domain.NewValidationError("status", "unknown booking status"))
	}
	bookings, err := h.bookingSvc.ListForParty(ctx, userID, domain.PartyRole(req.Role), status)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListBookingsResponse{Bookings: MapDomainBookingsToProto(bookings)}, nil
}
