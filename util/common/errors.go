package common

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing input. Maps to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func NewValidationErrorf(format string, a ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// AuthError reports bad credentials. Maps to HTTP 400/401.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string {
	return e.Msg
}

func NewAuthError(msg string) error {
	return &AuthError{Msg: msg}
}

func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// NotFoundError reports a referenced entity that does not exist. Maps to
// HTTP 404.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
