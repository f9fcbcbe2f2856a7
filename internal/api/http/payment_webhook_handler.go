package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/service"
)

const (
	SignatureHeader = "X-Signature"
	maxWebhookBody  = 64 << 10
)

type paymentNotification struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
	Reference string    `json:"reference"`
}

type paymentAck struct {
	BookingID     uuid.UUID `json:"bookingId"`
	PaymentStatus string    `json:"paymentStatus"`
}

// PaymentWebhookHandler receives asynchronous payment updates from the gateway
type PaymentWebhookHandler struct {
	paymentSvc service.PaymentService
	secret     []byte
}

// NewPaymentWebhookHandler creates a handler that verifies bodies against secret
func NewPaymentWebhookHandler(paymentSvc service.PaymentService, secret string) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{paymentSvc: paymentSvc, secret: []byte(secret)}
}

// Sign returns the hex HMAC-SHA256 of body, as the gateway sends it.
func Sign(secret, body []byte) string {
	return hex.EncodeToString(hmacSum(secret, body))
}

// HandlePaymentUpdate handles POST /webhooks/payments
func (h *PaymentWebhookHandler) HandlePaymentUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "body too large")
		return
	}

	sig, err := hex.DecodeString(r.Header.Get(SignatureHeader))
	if err != nil || !hmac.Equal(sig, hmacSum(h.secret, body)) {
		logger.Warn("Rejected payment webhook with bad signature", "remote", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var n paymentNotification
	if err := json.Unmarshal(body, &n); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if n.BookingID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "bookingId is required")
		return
	}

	b, err := h.paymentSvc.ApplyPaymentUpdate(r.Context(), n.BookingID, domain.PaymentStatus(n.Status), n.Reference)
	if err != nil {
		code := statusFor(err)
		if code >= http.StatusInternalServerError {
			logger.Error("Payment webhook failed", "bookingID", n.BookingID, "error", err)
		}
		writeError(w, code, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, paymentAck{BookingID: b.ID, PaymentStatus: b.PaymentStatus.String()})
}

func hmacSum(secret, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return mac.Sum(nil)
}

// statusFor maps domain errors to HTTP codes. Gateways retry on 5xx, so only
// store failures use that range.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidStateTransition), errors.Is(err, domain.ErrDuplicateReview):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrRetrieval):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
