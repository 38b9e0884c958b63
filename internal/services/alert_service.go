package services

import (
	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/store"
)

type AlertService interface {
	GetUserAlerts(userID string) ([]models.AlertItem, error)
	CreateAlert(alert models.NewAlert) (models.Alert, error)
	UpdateAlert(id string, patch models.AlertPatch) (models.Alert, error)
	DeleteAlert(id string) bool
}

type alertService struct {
	store *store.Store
}

func NewAlertService(s *store.Store) AlertService {
	return &alertService{store: s}
}

func (s *alertService) GetUserAlerts(userID string) ([]models.AlertItem, error) {
	return s.store.AlertsForUser(userID)
}

func (s *alertService) CreateAlert(alert models.NewAlert) (models.Alert, error) {
	return s.store.CreateAlert(alert)
}

// UpdateAlert records changes to an alert, including that it has fired
func (s *alertService) UpdateAlert(id string, patch models.AlertPatch) (models.Alert, error) {
	return s.store.UpdateAlert(id, patch)
}

func (s *alertService) DeleteAlert(id string) bool {
	return s.store.DeleteAlert(id)
}
