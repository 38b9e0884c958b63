package models

import (
	"time"
)

// InvestorType describes a user's risk appetite
type InvestorType string

const (
	InvestorConservative InvestorType = "conservative"
	InvestorBalanced     InvestorType = "balanced"
	InvestorAggressive   InvestorType = "aggressive"
)

// Interest is an analysis style a user wants surfaced on the dashboard
type Interest string

const (
	InterestFundamental Interest = "fundamental"
	InterestTechnical   Interest = "technical"
	InterestPattern     Interest = "pattern"
)

type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Password     string       `json:"-"`
	InvestorType InvestorType `json:"investorType"`
	Interests    []Interest   `json:"interests"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NewUser holds the caller-supplied fields of a user
type NewUser struct {
	Username     string
	Password     string
	InvestorType InvestorType
	Interests    []Interest
}

// UserPatch carries a partial user update; nil fields are left untouched
type UserPatch struct {
	Username     *string
	Password     *string
	InvestorType *InvestorType
	Interests    *[]Interest
}
