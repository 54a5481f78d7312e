package handler

import (
	"errors"
	"fxwatch/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

type LatestRatesResponse struct {
	Base      string             `json:"base" example:"USD"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp" example:"1735822800000"`
}

// GetLatest godoc
// @Summary Get the latest full quote table for a base currency
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency code"
// @Success 200 {object} LatestRatesResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{base}/latest [get]
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	base := baseFromURL(r)
	if err := h.validator.ValidateBase(base); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshot, err := h.history.LatestSnapshot(r.Context(), base)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, "no rates fetched yet for this base")
			return
		}
		msg := "ups, couldn't get latest rates this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetLatest", "base": base}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := LatestRatesResponse{
		Base:      snapshot.BaseCurrency,
		Rates:     snapshot.Rates,
		Timestamp: snapshot.Timestamp,
	}
	writeJSON(w, http.StatusOK, res)
}
