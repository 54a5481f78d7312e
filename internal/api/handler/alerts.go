package handler

import (
	"encoding/json"
	"errors"
	"fxwatch/internal/auth"
	"fxwatch/internal/domain"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateAlertRequest struct {
	Base       string  `json:"base" example:"USD"`
	Target     string  `json:"target" example:"KES"`
	TargetRate float64 `json:"target_rate" example:"130.0"`
	Condition  string  `json:"condition" example:"above" enums:"above,below"`
}

type AlertResponse struct {
	ID         string  `json:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Base       string  `json:"base" example:"USD"`
	Target     string  `json:"target" example:"KES"`
	TargetRate float64 `json:"target_rate" example:"130.0"`
	Condition  string  `json:"condition" example:"above"`
	IsActive   bool    `json:"is_active" example:"true"`
	Triggered  bool    `json:"triggered" example:"false"`
}

func toAlertResponse(alert domain.Alert) AlertResponse {
	return AlertResponse{
		ID:         alert.ID.String(),
		Base:       alert.Pair.Base,
		Target:     alert.Pair.Target,
		TargetRate: alert.TargetRate,
		Condition:  string(alert.Condition),
		IsActive:   alert.IsActive,
		Triggered:  alert.Triggered,
	}
}

// CreateAlert godoc
// @Summary Create a threshold alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAlertRequest true "Alert definition"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /alerts [post]
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req CreateAlertRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	base := strings.ToUpper(strings.TrimSpace(req.Base))
	target := strings.ToUpper(strings.TrimSpace(req.Target))
	if err = h.validator.ValidateCodes(base, target); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.TargetRate <= 0 {
		writeError(w, http.StatusBadRequest, "target rate must be positive")
		return
	}
	condition := domain.AlertCondition(req.Condition)
	if !condition.Valid() {
		writeError(w, http.StatusBadRequest, "condition must be 'above' or 'below'")
		return
	}

	alert, err := h.alerts.Create(r.Context(), userID, domain.Pair{Base: base, Target: target}, req.TargetRate, condition)
	if err != nil {
		msg := "ups, couldn't create alert this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateAlert", "user": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusCreated, toAlertResponse(alert))
}

// ListAlerts godoc
// @Summary List the caller's alerts
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /alerts [get]
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	alerts, err := h.alerts.List(r.Context(), userID)
	if err != nil {
		msg := "ups, couldn't list alerts this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListAlerts", "user": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		res = append(res, toAlertResponse(alert))
	}
	writeJSON(w, http.StatusOK, res)
}

// DeleteAlert godoc
// @Summary Delete one of the caller's alerts
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 204 "deleted"
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /alerts/{id} [delete]
func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid alert ID format")
		return
	}

	if err = h.alerts.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			writeError(w, http.StatusNotFound, domain.ErrAlertNotFound.Error())
			return
		}
		msg := "ups, couldn't delete alert this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteAlert", "user": userID, "alert": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
