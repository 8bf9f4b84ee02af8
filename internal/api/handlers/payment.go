package handlers

import (
	"log/slog"
	"net/http"

	"storefront/internal/api/middleware"
	service "storefront/internal/services"
	"storefront/internal/session"
	"storefront/internal/view"
)

type PaymentHandler struct {
	payments *service.PaymentService
	sessions session.Store
	render   view.Renderer
}

func NewPaymentHandler(payments *service.PaymentService, sessions session.Store, render view.Renderer) *PaymentHandler {
	return &PaymentHandler{payments: payments, sessions: sessions, render: render}
}

func (h *PaymentHandler) PaymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		renderView(w, r, h.render, "payment", map[string]any{"Total": state.Total})
	}
}

func (h *PaymentHandler) VerifyPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		transactionID := r.URL.Query().Get("transaction_id")

		_, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		if state.OrderID == 0 || transactionID == "" {
			logger.Warn("Missing order id or transaction id for payment verification")
			http.Redirect(w, r, "/", http.StatusFound)

			return
		}

		if err := h.payments.VerifyPayment(r.Context(), state.OrderID, transactionID); err != nil {
			logger.Error("Failed to record payment", slog.Any("error", err))
			http.Error(w, "Database connection error", http.StatusInternalServerError)

			return
		}

		logger.Info("Payment recorded",
			slog.Int64("orderId", state.OrderID),
			slog.String("transactionId", transactionID))

		http.Redirect(w, r, "/thank_you", http.StatusFound)
	}
}

func (h *PaymentHandler) ThankYou() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		renderView(w, r, h.render, "thank_you", map[string]any{"OrderID": state.OrderID})
	}
}
