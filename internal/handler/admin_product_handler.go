package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"fastfood/internal/model"
	"fastfood/internal/service"

	"github.com/rs/zerolog"
)

// AdminProductHandler serves catalogue maintenance on a single URL, dispatched by method.
type AdminProductHandler struct {
	catalog service.CatalogService
	admin   service.AdminProductService
	logger  zerolog.Logger
}

// NewAdminProductHandler creates a new admin product handler.
func NewAdminProductHandler(
	catalog service.CatalogService,
	admin service.AdminProductService,
	logger zerolog.Logger,
) *AdminProductHandler {
	return &AdminProductHandler{
		catalog: catalog,
		admin:   admin,
		logger:  logger.With().Str("handler", "admin_product").Logger(),
	}
}

// Route handles GET, POST, PUT and DELETE on /admin/products.
func (h *AdminProductHandler) Route(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		methodNotAllowed(w, strings.Join([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		}, ", "), h.logger)
	}
}

func (h *AdminProductHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *AdminProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody, h.logger)
		return
	}
	in.ID = 0

	id, err := h.admin.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, Result{Success: true, ID: id})
}

func (h *AdminProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody, h.logger)
		return
	}

	id, err := h.admin.Update(r.Context(), &in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, Result{Success: true, ID: id})
}

func (h *AdminProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID int64 `json:"id"`
	}
	// An empty body is treated as a missing id.
	if err := decodeJSON(w, r, &body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, msgInvalidBody, h.logger)
		return
	}

	outcome, err := h.admin.Delete(r.Context(), body.ID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, Result{Success: true, Message: outcome.Message(), Outcome: outcome})
}
