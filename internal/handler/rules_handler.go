package handler

import (
	"net/http"

	"fastfood/internal/validation"

	"github.com/rs/zerolog"
)

// RulesHandler publishes the validation rule set for the browser forms.
type RulesHandler struct {
	rules  validation.Rules
	logger zerolog.Logger
}

// NewRulesHandler creates a new rules handler.
func NewRulesHandler(logger zerolog.Logger) *RulesHandler {
	return &RulesHandler{
		rules:  validation.Describe(),
		logger: logger.With().Str("handler", "rules").Logger(),
	}
}

// Get handles GET /validation/rules.
func (h *RulesHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.rules)
}
