package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Session-related errors

type SessionError struct {
	*DomainError
}

func NewSessionError(message string) *SessionError {
	return &SessionError{DomainError: &DomainError{Message: message}}
}

// SessionActiveError indicates a second session was started while one is running
type SessionActiveError struct {
	*SessionError
	Epoch string
}

func NewSessionActiveError(epoch string) *SessionActiveError {
	return &SessionActiveError{
		SessionError: NewSessionError(fmt.Sprintf("a search session is already active (epoch %s)", epoch)),
		Epoch:        epoch,
	}
}

// SessionNotRunningError indicates a control operation on a stopped session
type SessionNotRunningError struct {
	*SessionError
}

func NewSessionNotRunningError(message string) *SessionNotRunningError {
	return &SessionNotRunningError{SessionError: NewSessionError(message)}
}

// Catalog errors

type UnknownProductError struct {
	*DomainError
	Product string
}

func NewUnknownProductError(product string) *UnknownProductError {
	return &UnknownProductError{
		DomainError: &DomainError{Message: fmt.Sprintf("unknown product variety: %s", product)},
		Product:     product,
	}
}

type UnknownSubstanceError struct {
	*DomainError
	Substance string
}

func NewUnknownSubstanceError(substance string) *UnknownSubstanceError {
	return &UnknownSubstanceError{
		DomainError: &DomainError{Message: fmt.Sprintf("unknown substance: %s", substance)},
		Substance:   substance,
	}
}

// Engine errors

// EngineUnavailableError indicates the alternate engine's entry point could
// not be located. Fatal to that engine's session only.
type EngineUnavailableError struct {
	*DomainError
	Engine string
}

func NewEngineUnavailableError(engine, message string) *EngineUnavailableError {
	return &EngineUnavailableError{
		DomainError: &DomainError{Message: fmt.Sprintf("engine %s unavailable: %s", engine, message)},
		Engine:      engine,
	}
}

// Validation error

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
