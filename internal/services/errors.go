package services

import "errors"

// Common service errors. The record messages are user-facing and are
// surfaced verbatim in the response envelope.
var (
	ErrNotFound           = errors.New("Registro não encontrado")
	ErrNoRecords          = errors.New("Nenhum registro encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
)

// ValidationError marks validator and binding failures so the response
// layer maps them to 400 instead of 500.
type ValidationError struct {
	Err error
}

func NewValidationError(err error) error {
	return &ValidationError{Err: err}
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
