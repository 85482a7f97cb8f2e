package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewCost(t *testing.T) {
	t.Parallel()

	cost, err := NewCost("Cloud hosting", "monthly infrastructure bill")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cost.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if cost.Status != CostStatusPending {
		t.Errorf("Expected status %s, got %s", CostStatusPending, cost.Status)
	}

	if cost.CreatedAt.IsZero() || cost.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	_, err = NewCost("", "details")
	if err != ErrEmptyCostServiceName {
		t.Errorf("Expected error %v, got %v", ErrEmptyCostServiceName, err)
	}
}

func TestCostValidate(t *testing.T) {
	t.Parallel()

	valid := Cost{
		ID:          uuid.New(),
		ServiceName: "Cloud hosting",
		Status:      CostStatusPending,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.ID = uuid.Nil
	if err := invalid.Validate(); err != ErrEmptyCostID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCostID, err)
	}

	invalid = valid
	invalid.Status = "ESCALATED"
	if err := invalid.Validate(); err != ErrInvalidCostStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidCostStatus, err)
	}
}

func TestCostApproveReject(t *testing.T) {
	t.Parallel()

	cost, err := NewCost("Cloud hosting", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cost.Approve()
	if cost.Status != CostStatusApproved {
		t.Errorf("Expected status %s, got %s", CostStatusApproved, cost.Status)
	}

	// Transitions are unconditional: a later reject overrides the approval.
	cost.Reject()
	if cost.Status != CostStatusRejected {
		t.Errorf("Expected status %s, got %s", CostStatusRejected, cost.Status)
	}

	// Re-rejecting an already-rejected record is permitted.
	cost.Reject()
	if cost.Status != CostStatusRejected {
		t.Errorf("Expected status %s, got %s", CostStatusRejected, cost.Status)
	}
}
