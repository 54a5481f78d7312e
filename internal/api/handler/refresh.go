package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RefreshResponse struct {
	ExecID string `json:"exec_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
}

// RefreshAll godoc
// @Summary Run an ingest cycle for every watched base currency
// @Tags Rates
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 500 {object} errorResponse
// @Router /rates/refresh [post]
func (h *Handler) RefreshAll(w http.ResponseWriter, r *http.Request) {
	execID := uuid.NewString()
	if err := h.ingest.RefreshAll(r.Context(), execID); err != nil {
		msg := "ups, couldn't refresh rates this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "RefreshAll", "exec_id": execID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, RefreshResponse{ExecID: execID})
}

// RefreshBase godoc
// @Summary Run an ingest cycle for one base currency
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency code"
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /rates/{base}/refresh [post]
func (h *Handler) RefreshBase(w http.ResponseWriter, r *http.Request) {
	base := baseFromURL(r)
	if err := h.validator.ValidateBase(base); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	execID := uuid.NewString()
	if err := h.ingest.RefreshBase(r.Context(), base); err != nil {
		msg := "quote provider is unavailable for this base"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "RefreshBase", "base": base, "exec_id": execID}).Warn(msg)
		writeError(w, http.StatusBadGateway, msg)
		return
	}
	writeJSON(w, http.StatusOK, RefreshResponse{ExecID: execID})
}
