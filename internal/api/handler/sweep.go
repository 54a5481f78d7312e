package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type SweepResponse struct {
	Status string `json:"status" example:"ok"`
}

// RunRetentionSweep godoc
// @Summary Run the system-wide retention sweep
// @Description Deletes samples older than the retention horizon across all pairs. Idempotent.
// @Tags Maintenance
// @Produce json
// @Success 200 {object} SweepResponse
// @Failure 500 {object} errorResponse
// @Router /maintenance/retention-sweep [post]
func (h *Handler) RunRetentionSweep(w http.ResponseWriter, r *http.Request) {
	if err := h.history.SweepAll(r.Context(), time.Now()); err != nil {
		msg := "ups, couldn't run retention sweep this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "RunRetentionSweep"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, SweepResponse{Status: "ok"})
}
