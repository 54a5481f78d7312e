package handler

import (
	"fxwatch/internal/domain"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// pairFromURL pulls and validates the {base}/{target} path params.
func (h *Handler) pairFromURL(r *http.Request) (domain.Pair, error) {
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))
	target := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "target")))

	if err := h.validator.ValidateCodes(base, target); err != nil {
		return domain.Pair{}, err
	}
	return domain.Pair{Base: base, Target: target}, nil
}

func baseFromURL(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))
}
