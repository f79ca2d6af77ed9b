package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fastfood/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// User-facing transport messages.
const (
	msgMethodNotAllowed = "Método no permitido"
	msgInvalidBody      = "Cuerpo de la solicitud inválido"
	msgInvalidID        = "ID inválido"
)

// Result is the envelope returned by every mutating endpoint.
type Result struct {
	Success bool                `json:"success"`
	ID      int64               `json:"id,omitempty"`
	SaleID  int64               `json:"saleId,omitempty"`
	Message string              `json:"message,omitempty"`
	Outcome model.DeleteOutcome `json:"outcome,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  []string            `json:"errors,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a failed Result with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, Result{Success: false, Error: message})
}

// writeServiceError maps a service error onto a status code and failed Result.
// Storage errors are reported verbatim.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		logger.Warn().Strs("errors", verr.Messages).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, Result{Success: false, Errors: verr.Messages})
		return
	}

	var derr *model.DomainError
	if errors.As(err, &derr) {
		status := http.StatusBadRequest
		if derr.Code == model.ErrCodeProductNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, derr.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error(), logger)
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// queryID parses the optional id query parameter. ok is false when absent.
func queryID(r *http.Request) (id int64, ok bool, err error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, err
	}
	return id, true, nil
}

// methodNotAllowed writes a 405 listing the allowed methods.
func methodNotAllowed(w http.ResponseWriter, allow string, logger zerolog.Logger) {
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed, logger)
}
