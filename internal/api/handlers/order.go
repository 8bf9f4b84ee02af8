package handlers

import (
	"log/slog"
	"net/http"

	"storefront/internal/api/middleware"
	appErrors "storefront/internal/errors"
	"storefront/internal/models"
	service "storefront/internal/services"
	"storefront/internal/session"
	"storefront/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

type OrderHandler struct {
	orders    *service.OrderService
	sessions  session.Store
	render    view.Renderer
	validator *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewOrderHandler(orders *service.OrderService, sessions session.Store, render view.Renderer) *OrderHandler {
	return &OrderHandler{
		orders:    orders,
		sessions:  sessions,
		render:    render,
		validator: validator.New(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		renderView(w, r, h.render, "checkout", map[string]any{"Total": state.Total})
	}
}

func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)

			return
		}

		// Customer text ends up rendered back into HTML later, so strip any
		// markup before it is persisted.
		req := models.PlaceOrderRequest{
			Name:    h.sanitizer.Sanitize(r.FormValue("name")),
			Email:   h.sanitizer.Sanitize(r.FormValue("email")),
			Phone:   h.sanitizer.Sanitize(r.FormValue("phone")),
			City:    h.sanitizer.Sanitize(r.FormValue("city")),
			Address: h.sanitizer.Sanitize(r.FormValue("address")),
		}

		if err := h.validator.Struct(req); err != nil {
			logger.Warn("Invalid checkout input", slog.String("error", err.Error()))
			http.Error(w, "Invalid input data", http.StatusBadRequest)

			return
		}

		sid, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		order, err := h.orders.PlaceOrder(r.Context(), &req, state)
		if err != nil {

			if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodeBadRequest {
				logger.Warn("Attempted to place order with an empty cart")
				http.Redirect(w, r, "/cart", http.StatusSeeOther)

				return
			}

			logger.Error("Failed to place order", slog.Any("error", err))
			http.Error(w, "Error placing order", http.StatusInternalServerError)

			return
		}

		if !saveState(w, r, h.sessions, sid, state) {
			return
		}

		logger.Info("Order placed", slog.Int64("orderId", order.ID))

		http.Redirect(w, r, "/payment", http.StatusSeeOther)
	}
}
