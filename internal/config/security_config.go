// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps methods to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// BookingService - Access Protected
	"/agrorent.v1.BookingService/CreateBookingRequest": SecurityAccess,
	"/agrorent.v1.BookingService/ApproveBooking":       SecurityAccess,
	"/agrorent.v1.BookingService/RejectBooking":        SecurityAccess,
	"/agrorent.v1.BookingService/CompleteBooking":      SecurityAccess,
	"/agrorent.v1.BookingService/GetBooking":           SecurityAccess,
	"/agrorent.v1.BookingService/ListMyBookings":       SecurityAccess,

	// ReputationService - ratings and reviews are public reads
	"/agrorent.v1.ReputationService/GetSubjectRating":   SecurityPublic,
	"/agrorent.v1.ReputationService/GetMachineRating":   SecurityPublic,
	"/agrorent.v1.ReputationService/ListSubjectReviews": SecurityPublic,
	"/agrorent.v1.ReputationService/ListMachineReviews": SecurityPublic,
	"/agrorent.v1.ReputationService/SubmitReview":       SecurityAccess,

	// VerificationService - Access Protected
	"/agrorent.v1.VerificationService/GetVerificationStatus": SecurityAccess,

	// ListingService - Access Protected
	"/agrorent.v1.ListingService/CreateMachine": SecurityAccess,

	// ProfileService - Public
	"/agrorent.v1.ProfileService/GetProfile": SecurityPublic,
}

// GetSecurityLevel returns the security level for a given method
func GetSecurityLevel(method string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
