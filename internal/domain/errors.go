package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation             = errors.New("validation error")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrDuplicateReview        = errors.New("duplicate review")
	ErrNotFound               = errors.New("not found")
	ErrRetrieval              = errors.New("retrieval error")
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// TransitionError reports an edge that is not in the state graph.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func NewTransitionError(entity string, from, to fmt.Stringer) *TransitionError {
	return &TransitionError{Entity: entity, From: from.String(), To: to.String()}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: %s %s -> %s", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidStateTransition }

// AccessError is an authorization failure with a caller-facing reason.
type AccessError struct {
	Reason string
}

func (e *AccessError) Error() string {
	if e.Reason == "" {
		return ErrUnauthorized.Error()
	}
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

func (e *AccessError) Unwrap() error { return ErrUnauthorized }

// RetrievalError wraps a store or network failure. Only reads that fail with
// it are retried.
type RetrievalError struct {
	Op  string
	Err error
}

func NewRetrievalError(op string, err error) *RetrievalError {
	return &RetrievalError{Op: op, Err: err}
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval error: %s: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() []error { return []error{ErrRetrieval, e.Err} }

// IsRetryable reports whether err may be retried transparently.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRetrieval)
}
