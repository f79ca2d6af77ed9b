package handler

import (
	"net/http"
	"strings"

	"fastfood/internal/model"
	"fastfood/internal/service"

	"github.com/rs/zerolog"
)

// SaleHandler serves order placement and the sales history on /sales.
type SaleHandler struct {
	orders  service.OrderService
	history service.HistoryService
	logger  zerolog.Logger
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(orders service.OrderService, history service.HistoryService, logger zerolog.Logger) *SaleHandler {
	return &SaleHandler{
		orders:  orders,
		history: history,
		logger:  logger.With().Str("handler", "sale").Logger(),
	}
}

// Route handles POST /sales, GET /sales and GET /sales?id=<id>.
func (h *SaleHandler) Route(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.place(w, r)
	case http.MethodGet:
		h.read(w, r)
	default:
		methodNotAllowed(w, strings.Join([]string{http.MethodGet, http.MethodPost}, ", "), h.logger)
	}
}

func (h *SaleHandler) place(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody, h.logger)
		return
	}

	saleID, err := h.orders.PlaceOrder(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, Result{Success: true, SaleID: saleID})
}

func (h *SaleHandler) read(w http.ResponseWriter, r *http.Request) {
	id, byID, err := queryID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidID, h.logger)
		return
	}

	if byID {
		sale, err := h.history.GetSale(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, sale)
		return
	}

	sales, err := h.history.ListSales(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sales)
}
