package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trancendos/alervato/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username    string `json:"username"     validate:"required,max=50"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,max=72"`
	FirstName   string `json:"first_name"   validate:"max=100"`
	LastName    string `json:"last_name"    validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// UserResponse defines the registered-user view returned by the register
// endpoint. Credentials are never included.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse builds a UserResponse from a domain User.
func NewUserResponse(user *domain.User) UserResponse {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}

	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Roles:     roles,
		CreatedAt: user.CreatedAt,
	}
}

// MessageResponse carries a simple informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TransactionRequest defines the payload for creating or updating a
// transaction. Amount and type limits beyond the struct tags are enforced by
// the domain entity.
type TransactionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"      validate:"max=255"`
	Type            string          `json:"type"             validate:"required,oneof=INCOME EXPENSE TRANSFER"`
	Category        string          `json:"category"         validate:"max=100"`
	TransactionDate *time.Time      `json:"transaction_date"`
	ReferenceNumber string          `json:"reference_number" validate:"max=100"`
}

// TransactionPageResponse is a page of the caller's transactions.
type TransactionPageResponse struct {
	Items      []*domain.Transaction `json:"items"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	TotalItems int                   `json:"total_items"`
	TotalPages int                   `json:"total_pages"`
}

// CostRequest defines the payload for creating a cost record.
type CostRequest struct {
	ServiceName string `json:"service_name" validate:"required,max=100"`
	CostDetails string `json:"cost_details" validate:"max=1000"`
}

// OfferingRequest defines the payload for creating a service offering.
type OfferingRequest struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price"`
}
