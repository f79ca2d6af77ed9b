package handler

import (
	"net/http"

	"fastfood/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler serves the public storefront catalogue.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products and GET /products?id=<id>.
// A single product that is missing or unavailable is returned as null.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	id, byID, err := queryID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidID, h.logger)
		return
	}

	if byID {
		product, err := h.service.GetAvailableByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, product)
		return
	}

	products, err := h.service.ListAvailable(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}
