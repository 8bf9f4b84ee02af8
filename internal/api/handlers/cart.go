package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/api/middleware"
	"storefront/internal/models"
	service "storefront/internal/services"
	"storefront/internal/session"
	"storefront/internal/view"

	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	carts     *service.CartService
	sessions  session.Store
	render    view.Renderer
	validator *validator.Validate
}

func NewCartHandler(carts *service.CartService, sessions session.Store, render view.Renderer) *CartHandler {
	return &CartHandler{
		carts:     carts,
		sessions:  sessions,
		render:    render,
		validator: validator.New(),
	}
}

func (h *CartHandler) ViewCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		renderView(w, r, h.render, "cart", map[string]any{
			"Cart":  state.Cart,
			"Total": state.Total,
		})
	}
}

func (h *CartHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)

			return
		}

		quantity, err := strconv.Atoi(r.FormValue("quantity"))
		if err != nil {
			logger.Warn("Rejected non-numeric quantity",
				slog.String("quantity", r.FormValue("quantity")))
			http.Error(w, "Quantity must be a whole number", http.StatusBadRequest)

			return
		}

		req := models.AddToCartRequest{
			ProductID: r.FormValue("id"),
			Name:      r.FormValue("name"),
			Price:     r.FormValue("price"),
			SalePrice: r.FormValue("sale_price"),
			Quantity:  quantity,
			Image:     r.FormValue("image"),
		}

		if err := h.validator.Struct(req); err != nil {
			logger.Warn("Invalid add to cart input", slog.String("error", err.Error()))
			http.Error(w, "Invalid input data", http.StatusBadRequest)

			return
		}

		sid, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		h.carts.AddItem(state, &req)

		if !saveState(w, r, h.sessions, sid, state) {
			return
		}

		logger.Info("Item added to cart",
			slog.String("productId", req.ProductID),
			slog.Int("quantity", req.Quantity))

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (h *CartHandler) RemoveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)

			return
		}

		sid, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		h.carts.RemoveItem(state, r.FormValue("id"))

		if !saveState(w, r, h.sessions, sid, state) {
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (h *CartHandler) EditQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)

			return
		}

		req := models.EditQuantityRequest{
			ProductID: r.FormValue("id"),
		}

		// The cart form submits exactly one of the two buttons.
		switch {
		case r.FormValue("increase_product_quantity") != "":
			req.Direction = models.QuantityIncrease
		case r.FormValue("decrease_product_quantity") != "":
			req.Direction = models.QuantityDecrease
		}

		if err := h.validator.Struct(req); err != nil {
			logger.Warn("Invalid quantity edit input", slog.String("error", err.Error()))
			http.Error(w, "Invalid input data", http.StatusBadRequest)

			return
		}

		sid, state, ok := currentState(w, r, h.sessions)
		if !ok {
			return
		}

		h.carts.AdjustQuantity(state, req.ProductID, req.Direction)

		if !saveState(w, r, h.sessions, sid, state) {
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}
