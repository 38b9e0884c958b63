package models

import (
	"time"
)

// AlertType is the metric an alert watches
type AlertType string

const (
	AlertPrice     AlertType = "price"
	AlertSentiment AlertType = "sentiment"
	AlertVolume    AlertType = "volume"
	AlertNews      AlertType = "news"
)

// AlertCondition is how the watched metric is compared against Value
type AlertCondition string

const (
	ConditionAbove  AlertCondition = "above"
	ConditionBelow  AlertCondition = "below"
	ConditionChange AlertCondition = "change"
)

type Alert struct {
	ID                string         `json:"id"`
	UserID            string         `json:"userId"`
	StockID           string         `json:"stockId"`
	Type              AlertType      `json:"type"`
	Condition         AlertCondition `json:"condition"`
	Value             int64          `json:"value"`
	IsActive          bool           `json:"isActive"`
	IsTriggered       bool           `json:"isTriggered"`
	EmailNotification bool           `json:"emailNotification"`
	CreatedAt         time.Time      `json:"createdAt"`
	TriggeredAt       *time.Time     `json:"triggeredAt"`
}

// AlertItem is an alert joined with the stock it references
type AlertItem struct {
	Alert
	Stock Stock `json:"stock"`
}

// NewAlert holds the caller-supplied fields of an alert. Trigger state is
// always assigned by the store.
type NewAlert struct {
	UserID            string
	StockID           string
	Type              AlertType
	Condition         AlertCondition
	Value             int64
	IsActive          bool
	EmailNotification bool
}

// AlertPatch carries a partial alert update; nil fields are left untouched
type AlertPatch struct {
	Type              *AlertType
	Condition         *AlertCondition
	Value             *int64
	IsActive          *bool
	IsTriggered       *bool
	EmailNotification *bool
	TriggeredAt       *time.Time
}
