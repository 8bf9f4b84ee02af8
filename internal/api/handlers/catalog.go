package handlers

import (
	"log/slog"
	"net/http"

	"storefront/internal/api/middleware"
	service "storefront/internal/services"
	"storefront/internal/view"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	render  view.Renderer
}

func NewCatalogHandler(catalog *service.CatalogService, render view.Renderer) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, render: render}
}

func (h *CatalogHandler) Home() http.HandlerFunc {
	return h.listing("index")
}

func (h *CatalogHandler) Products() http.HandlerFunc {
	return h.listing("products")
}

// listing renders the full catalog under the given view. The home page and
// the products page differ only in presentation.
func (h *CatalogHandler) listing(viewName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalog.ListProducts(r.Context())
		if err != nil {
			logger.Error("Failed to fetch products", slog.Any("error", err))
			http.Error(w, "Error fetching products", http.StatusInternalServerError)

			return
		}

		renderView(w, r, h.render, viewName, map[string]any{"Products": products})
	}
}

func (h *CatalogHandler) SingleProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.URL.Query().Get("id")
		if id == "" {
			logger.Warn("Product detail requested without an id")
			http.Error(w, "Product ID is required.", http.StatusBadRequest)

			return
		}

		products, err := h.catalog.GetProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to fetch product",
				slog.String("productId", id),
				slog.Any("error", err))
			http.Error(w, "Error fetching product data", http.StatusInternalServerError)

			return
		}

		renderView(w, r, h.render, "single_product", map[string]any{"Products": products})
	}
}

func (h *CatalogHandler) About() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderView(w, r, h.render, "about", nil)
	}
}
