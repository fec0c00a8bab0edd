// Package domain defines the error taxonomy raised by the service layer.
// Handlers inspect the error kind to pick the HTTP status; services never
// decide status codes themselves.
package domain

import "errors"

// ErrCredencialesInvalidas covers user-not-found, inactive account and
// password mismatch alike, so login failures cannot be used to enumerate
// accounts.
var ErrCredencialesInvalidas = errors.New("Credenciales inválidas")

// NotFoundError indicates the referenced entity does not exist.
type NotFoundError struct {
	Entidad string
}

func (e *NotFoundError) Error() string { return e.Entidad + " no encontrado" }

func NewNotFound(entidad string) error { return &NotFoundError{Entidad: entidad} }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ConflictError indicates a state-invariant violation: duplicate open arqueo,
// insufficient stock, delete of a referenced row, close of an already closed
// session.
type ConflictError struct {
	Motivo string
}

func (e *ConflictError) Error() string { return e.Motivo }

func NewConflict(motivo string) error { return &ConflictError{Motivo: motivo} }

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// ValidationError indicates malformed or out-of-range input that survived the
// transport-level binding (e.g. an unknown movement kind reaching a service).
type ValidationError struct {
	Motivo string
}

func (e *ValidationError) Error() string { return e.Motivo }

func NewValidation(motivo string) error { return &ValidationError{Motivo: motivo} }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
