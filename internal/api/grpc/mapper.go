package grpc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pb "agrorent-backend/api/gen/v1"
	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/service"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func MapDomainBookingToProto(b *domain.Booking) *pb.Booking {
	if b == nil {
		return nil
	}
	m := &pb.Booking{
		Id:              b.ID.String(),
		RenterId:        b.RenterID.String(),
		OwnerId:         b.OwnerID.String(),
		MachineId:       b.MachineID.String(),
		Status:          b.Status.String(),
		StartDate:       b.StartDate.Format(dateLayout),
		EndDate:         b.EndDate.Format(dateLayout),
		Quantity:        b.Quantity.String(),
		EstimatedAmount: b.EstimatedAmount.StringFixed(domain.AmountScale),
		EffectiveAmount: b.EffectiveAmount().StringFixed(domain.AmountScale),
		PaymentStatus:   b.PaymentStatus.String(),
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
	if b.NegotiatedPrice != nil {
		m.NegotiatedPrice = b.NegotiatedPrice.StringFixed(domain.AmountScale)
	}
	if b.BillingType != nil {
		m.BillingType = string(*b.BillingType)
	}
	if b.BillingQuantity != nil {
		m.BillingQuantity = b.BillingQuantity.String()
	}
	if b.CompletedAt != nil {
		m.CompletedAt = formatTime(*b.CompletedAt)
	}
	return m
}

func MapDomainBookingsToProto(bs []domain.Booking) []*pb.Booking {
	out := make([]*pb.Booking, len(bs))
	for i := range bs {
		out[i] = MapDomainBookingToProto(&bs[i])
	}
	return out
}

func MapDomainReviewToProto(r *domain.Review) *pb.Review {
	if r == nil {
		return nil
	}
	return &pb.Review{
		Id:                  r.ID.String(),
		BookingId:           r.BookingID.String(),
		MachineId:           r.MachineID.String(),
		ReviewerId:          r.ReviewerID.String(),
		ReviewedId:          r.ReviewedID.String(),
		ReviewType:          string(r.ReviewType),
		Rating:              r.Rating,
		ServiceRating:       int32Value(r.ServiceRating),
		OperatorRating:      int32Value(r.OperatorRating),
		MachineRating:       int32Value(r.MachineRating),
		ClientRating:        int32Value(r.ClientRating),
		CommunicationRating: int32Value(r.CommunicationRating),
		PunctualityRating:   int32Value(r.PunctualityRating),
		Comment:             stringValue(r.Comment),
		Observations:        stringValue(r.Observations),
		CreatedAt:           formatTime(r.CreatedAt),
	}
}

func MapDomainReviewsToProto(rs []domain.Review) []*pb.Review {
	out := make([]*pb.Review, len(rs))
	for i := range rs {
		out[i] = MapDomainReviewToProto(&rs[i])
	}
	return out
}

func MapDomainSubjectRatingToProto(r *domain.SubjectRating) *pb.SubjectRating {
	if r == nil {
		return nil
	}
	return &pb.SubjectRating{
		SubjectId:     r.SubjectID.String(),
		Perspective:   string(r.Perspective),
		AverageRating: r.AverageRating,
		TotalReviews:  r.TotalReviews,
	}
}

func MapDomainMachineRatingToProto(r *domain.MachineRating) *pb.MachineRating {
	if r == nil {
		return nil
	}
	return &pb.MachineRating{
		MachineId:     r.MachineID.String(),
		AverageRating: r.AverageRating,
		ReviewCount:   r.ReviewCount,
	}
}

// MapDomainVerificationToProto also carries the gate decision so clients
// can explain a blocked action without a second call.
func MapDomainVerificationToProto(v *domain.VerificationStatus) *pb.VerificationStatus {
	if v == nil {
		return nil
	}
	reason := service.DescribeBlockingReason(*v)
	return &pb.VerificationStatus{
		HasDocuments:   v.HasDocuments,
		HasPending:     v.HasPending,
		HasApproved:    v.HasApproved,
		HasRejected:    v.HasRejected,
		TotalDocuments: v.TotalDocuments,
		CanBook:        reason == "",
		BlockingReason: reason,
	}
}

func MapDomainMachineToProto(m *domain.Machine) *pb.Machine {
	if m == nil {
		return nil
	}
	return &pb.Machine{
		Id:        m.ID.String(),
		OwnerId:   m.OwnerID.String(),
		Name:      m.Name,
		Category:  m.Category,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

func int32Value(p *int32) int32 {
	if p == nil {
		return 0
	}
	return *p
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Inbound conversions. Failures surface as validation errors naming the
// request field, which toStatus maps to InvalidArgument.

func parseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "must be a UUID")
	}
	return id, nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a YYYY-MM-DD date")
	}
	return t, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, "must be a decimal number")
	}
	return d, nil
}

// optionalInt32 treats the proto3 zero value as "not given".
func optionalInt32(v int32) *int32 {
	if v == 0 {
		return nil
	}
	return &v
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
