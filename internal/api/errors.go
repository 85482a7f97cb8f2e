package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/service"
	"github.com/trancendos/alervato/internal/service/auth"
	"github.com/trancendos/alervato/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors. Foreign-owner access maps here too: a record owned
	// by another user is indistinguishable from a missing one.
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrTransactionNotFound),
		errors.Is(err, store.ErrCostNotFound),
		errors.Is(err, store.ErrOfferingNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrReferenceNumberExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error. Includes store.ErrRoleNotFound, which
	// means the seeded roles are missing.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTransactionNotFound):
		return "Transaction not found"

	case errors.Is(err, store.ErrCostNotFound):
		return "Cost record not found"

	case errors.Is(err, store.ErrOfferingNotFound):
		return "Service offering not found"

	// Conflict errors
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, store.ErrUsernameExists):
		return "Username is already taken"

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, store.ErrEmailExists):
		return "Email is already in use"

	case errors.Is(err, store.ErrReferenceNumberExists):
		return "Reference number is already in use"

	// Bad request errors
	case isDomainValidationError(err):
		return validationMessage(err)

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// domainValidationErrors lists the domain sentinels that indicate invalid
// caller-supplied data rather than a server fault.
var domainValidationErrors = []error{
	domain.ErrEmptyUsername,
	domain.ErrEmptyEmail,
	domain.ErrInvalidEmail,
	domain.ErrEmptyPassword,
	domain.ErrNonPositiveAmount,
	domain.ErrAmountPrecision,
	domain.ErrInvalidTransactionType,
	domain.ErrEmptyCostServiceName,
	domain.ErrInvalidCostStatus,
	domain.ErrEmptyOfferingName,
	domain.ErrNegativePrice,
}

func isDomainValidationError(err error) bool {
	for _, sentinel := range domainValidationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// validationMessage surfaces the domain sentinel's own text, which is
// written to be safe for clients.
func validationMessage(err error) string {
	for _, sentinel := range domainValidationErrors {
		if errors.Is(err, sentinel) {
			return "Invalid request: " + sentinel.Error()
		}
	}
	return "Invalid request"
}

// SanitizeValidationError removes sensitive details from struct tag
// validation errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Username' Error:Field validation
	// for 'Username' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "gt":
		return "must be greater than zero"
	default:
		return "validation failed"
	}
}
