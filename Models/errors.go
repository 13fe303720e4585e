package Models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by controllers and the identity/vin adapters.
var (
	ErrNotFound           = errors.New("registro no encontrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
)

// ValidationError carries the offending field so handlers can build a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError wraps a failure from an external service (store, identity
// provider or the VIN registry). The raw text is surfaced to the caller as-is.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("error de %s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
