package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the coarse project state; no workflow is attached.
type ProjectStatus string

const (
	StatusPlanned   ProjectStatus = "planned"
	StatusOngoing   ProjectStatus = "ongoing"
	StatusCompleted ProjectStatus = "completed"
	StatusOnHold    ProjectStatus = "on_hold"
)

// Project carries a budget that the report aggregator compares against
// approved expenses.
type Project struct {
	ID         string
	Code       string
	Name       string
	CustomerID *string
	Budget     decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	Status     ProjectStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
