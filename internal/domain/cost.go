package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CostStatus represents the approval state of a cost record.
type CostStatus string

// Possible cost status values. PENDING is the initial state; APPROVED and
// REJECTED are terminal in the modeled workflow.
const (
	CostStatusPending  CostStatus = "PENDING"
	CostStatusApproved CostStatus = "APPROVED"
	CostStatusRejected CostStatus = "REJECTED"
)

// Common validation errors for Cost.
var (
	ErrEmptyCostID          = errors.New("cost ID cannot be empty")
	ErrEmptyCostServiceName = errors.New("cost service name cannot be empty")
	ErrInvalidCostStatus    = errors.New("invalid cost status")
)

// Cost represents a cost record moving through the approval workflow.
type Cost struct {
	ID          uuid.UUID  `json:"id"`
	ServiceName string     `json:"service_name"`
	CostDetails string     `json:"cost_details,omitempty"`
	Status      CostStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewCost creates a new Cost in the PENDING state.
// Returns an error if validation fails.
func NewCost(serviceName, costDetails string) (*Cost, error) {
	now := time.Now().UTC()
	cost := &Cost{
		ID:          uuid.New(),
		ServiceName: serviceName,
		CostDetails: costDetails,
		Status:      CostStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := cost.Validate(); err != nil {
		return nil, err
	}

	return cost, nil
}

// Validate checks if the Cost has valid data.
func (c *Cost) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCostID
	}

	if c.ServiceName == "" {
		return ErrEmptyCostServiceName
	}

	if !isValidCostStatus(c.Status) {
		return ErrInvalidCostStatus
	}

	return nil
}

// Approve sets the status to APPROVED and refreshes the UpdatedAt timestamp.
// The transition is unconditional: approving an already-terminal record is
// permitted, and concurrent approve/reject calls resolve last-write-wins at
// the store.
func (c *Cost) Approve() {
	c.Status = CostStatusApproved
	c.UpdatedAt = time.Now().UTC()
}

// Reject sets the status to REJECTED and refreshes the UpdatedAt timestamp.
// Unconditional, symmetric with Approve.
func (c *Cost) Reject() {
	c.Status = CostStatusRejected
	c.UpdatedAt = time.Now().UTC()
}

// isValidCostStatus checks if the given status is a valid CostStatus.
func isValidCostStatus(status CostStatus) bool {
	switch status {
	case CostStatusPending, CostStatusApproved, CostStatusRejected:
		return true
	default:
		return false
	}
}
