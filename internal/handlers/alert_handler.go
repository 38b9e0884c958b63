package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/services"
)

type AlertHandler struct {
	alertService services.AlertService
	logger       *zap.Logger
}

func NewAlertHandler(alertService services.AlertService, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		logger:       logger,
	}
}

func (h *AlertHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/alerts", h.CreateAlert).Methods("POST")
	router.HandleFunc("/alerts/{userId}", h.GetAlerts).Methods("GET")
	router.HandleFunc("/alerts/{id}", h.UpdateAlert).Methods("PATCH")
	router.HandleFunc("/alerts/{id}", h.DeleteAlert).Methods("DELETE")
}

// createAlertRequest has no trigger fields; any sent by the client are ignored.
type createAlertRequest struct {
	UserID            string `json:"userId" validate:"required"`
	StockID           string `json:"stockId" validate:"required"`
	Type              string `json:"type" validate:"required,oneof=price sentiment volume news"`
	Condition         string `json:"condition" validate:"required,oneof=above below change"`
	Value             *int64 `json:"value" validate:"required"`
	IsActive          *bool  `json:"isActive"`
	EmailNotification *bool  `json:"emailNotification"`
}

type updateAlertRequest struct {
	Type              *string    `json:"type" validate:"omitempty,oneof=price sentiment volume news"`
	Condition         *string    `json:"condition" validate:"omitempty,oneof=above below change"`
	Value             *int64     `json:"value"`
	IsActive          *bool      `json:"isActive"`
	IsTriggered       *bool      `json:"isTriggered"`
	EmailNotification *bool      `json:"emailNotification"`
	TriggeredAt       *time.Time `json:"triggeredAt"`
}

func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	items, err := h.alertService.GetUserAlerts(mux.Vars(r)["userId"])
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Failed to fetch alerts")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid alert data")
		return
	}

	in := models.NewAlert{
		UserID:    req.UserID,
		StockID:   req.StockID,
		Type:      models.AlertType(req.Type),
		Condition: models.AlertCondition(req.Condition),
		Value:     *req.Value,
		IsActive:  true,
	}
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}
	if req.EmailNotification != nil {
		in.EmailNotification = *req.EmailNotification
	}

	alert, err := h.alertService.CreateAlert(in)
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Failed to create alert")
		return
	}
	writeJSON(w, http.StatusCreated, alert)
}

// UpdateAlert records changes made outside the store, such as an alert firing
func (h *AlertHandler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	var req updateAlertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid alert data")
		return
	}

	patch := models.AlertPatch{
		Value:             req.Value,
		IsActive:          req.IsActive,
		IsTriggered:       req.IsTriggered,
		EmailNotification: req.EmailNotification,
		TriggeredAt:       req.TriggeredAt,
	}
	if req.Type != nil {
		t := models.AlertType(*req.Type)
		patch.Type = &t
	}
	if req.Condition != nil {
		c := models.AlertCondition(*req.Condition)
		patch.Condition = &c
	}

	alert, err := h.alertService.UpdateAlert(mux.Vars(r)["id"], patch)
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Alert not found")
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	if !h.alertService.DeleteAlert(mux.Vars(r)["id"]) {
		writeError(w, http.StatusNotFound, "Alert not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
