package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common validation errors for ServiceOffering.
var (
	ErrEmptyOfferingID   = errors.New("service offering ID cannot be empty")
	ErrEmptyOfferingName = errors.New("service offering name cannot be empty")
	ErrNegativePrice     = errors.New("service offering price cannot be negative")
)

// ServiceOffering represents a customer service the business offers.
// Beyond existing and round-tripping through the store it carries no
// workflow of its own.
type ServiceOffering struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewServiceOffering creates a new ServiceOffering.
// Returns an error if validation fails.
func NewServiceOffering(name, description string, price decimal.Decimal) (*ServiceOffering, error) {
	now := time.Now().UTC()
	offering := &ServiceOffering{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := offering.Validate(); err != nil {
		return nil, err
	}

	return offering, nil
}

// Validate checks if the ServiceOffering has valid data.
func (o *ServiceOffering) Validate() error {
	if o.ID == uuid.Nil {
		return ErrEmptyOfferingID
	}
	if o.Name == "" {
		return ErrEmptyOfferingName
	}
	if o.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
