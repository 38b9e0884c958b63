package store

import (
	"fmt"

	"github.com/vikasavnish/marketpulse/internal/models"
)

// AlertsForUser returns the user's alerts in insertion order, each joined
// with its stock. A dangling stock reference fails with ErrIntegrity.
func (s *Store) AlertsForUser(userID string) ([]models.AlertItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.AlertItem{}
	for pair := s.alerts.Oldest(); pair != nil; pair = pair.Next() {
		alert := pair.Value
		if alert.UserID != userID {
			continue
		}
		stock, ok := s.stocks.Get(alert.StockID)
		if !ok {
			return nil, fmt.Errorf("alert %s references stock %s: %w", alert.ID, alert.StockID, ErrIntegrity)
		}
		items = append(items, models.AlertItem{Alert: copyAlert(alert), Stock: stock})
	}
	return items, nil
}

// CreateAlert stores a new, untriggered alert. Both the user and the stock must exist.
func (s *Store) CreateAlert(in models.NewAlert) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRefsLocked(in.UserID, in.StockID); err != nil {
		return models.Alert{}, err
	}

	alert := models.Alert{
		ID:                s.newID(),
		UserID:            in.UserID,
		StockID:           in.StockID,
		Type:              in.Type,
		Condition:         in.Condition,
		Value:             in.Value,
		IsActive:          in.IsActive,
		IsTriggered:       false,
		EmailNotification: in.EmailNotification,
		CreatedAt:         s.now(),
		TriggeredAt:       nil,
	}
	s.alerts.Set(alert.ID, alert)

	return copyAlert(alert), nil
}

// UpdateAlert merges patch over the stored alert. This is the only way an
// alert's trigger state changes; the store records triggering, it never
// decides it.
func (s *Store) UpdateAlert(id string, patch models.AlertPatch) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert, ok := s.alerts.Get(id)
	if !ok {
		return models.Alert{}, fmt.Errorf("alert %s: %w", id, ErrNotFound)
	}

	if patch.Type != nil {
		alert.Type = *patch.Type
	}
	if patch.Condition != nil {
		alert.Condition = *patch.Condition
	}
	if patch.Value != nil {
		alert.Value = *patch.Value
	}
	if patch.IsActive != nil {
		alert.IsActive = *patch.IsActive
	}
	if patch.IsTriggered != nil {
		alert.IsTriggered = *patch.IsTriggered
	}
	if patch.EmailNotification != nil {
		alert.EmailNotification = *patch.EmailNotification
	}
	if patch.TriggeredAt != nil {
		t := *patch.TriggeredAt
		alert.TriggeredAt = &t
	}

	s.alerts.Set(id, alert)
	return copyAlert(alert), nil
}

func (s *Store) DeleteAlert(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.alerts.Delete(id)
	return ok
}
