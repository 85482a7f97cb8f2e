package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewServiceOffering(t *testing.T) {
	t.Parallel()

	offering, err := NewServiceOffering("Premium support", "24/7 phone line", decimal.NewFromFloat(99.90))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if offering.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if offering.Name != "Premium support" {
		t.Errorf("Expected name Premium support, got %s", offering.Name)
	}

	_, err = NewServiceOffering("", "", decimal.Zero)
	if err != ErrEmptyOfferingName {
		t.Errorf("Expected error %v, got %v", ErrEmptyOfferingName, err)
	}

	_, err = NewServiceOffering("Premium support", "", decimal.NewFromInt(-1))
	if err != ErrNegativePrice {
		t.Errorf("Expected error %v, got %v", ErrNegativePrice, err)
	}
}
