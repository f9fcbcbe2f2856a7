package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Pinger is satisfied by *sql.DB and *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter wires the webhook and health endpoints. db may be nil.
func NewRouter(webhook *PaymentWebhookHandler, db Pinger) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/webhooks/payments", webhook.HandlePaymentUpdate).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", readiness(db)).Methods(http.MethodGet)
	return r
}

func readiness(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				writeError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
