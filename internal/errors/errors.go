// Package errors defines the domain error taxonomy shared by all
// services. Handlers translate kinds into HTTP status codes; services
// never wrap storage failures into a kind they did not cause.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error for the caller.
type Kind string

const (
	// KindValidation: caller input violates a precondition. Fix the
	// input and retry; never retried automatically.
	KindValidation Kind = "validation"
	// KindNotFound: a referenced entity does not exist.
	KindNotFound Kind = "not_found"
	// KindSecurity: the referenced resource is not owned by the acting
	// principal.
	KindSecurity Kind = "security"
	// KindState: a system configuration precondition is unmet, e.g. a
	// cryptocurrency without a price.
	KindState Kind = "state"
)

type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is matches two domain errors by code, so a formatted instance matches
// its sentinel.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func Validationf(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Securityf(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindSecurity, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Statef(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindState, Code: code, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" for non-domain errors.
func KindOf(err error) Kind {
	var d *DomainError
	if errors.As(err, &d) {
		return d.Kind
	}
	return ""
}

// Is reports whether err matches target, delegating to the standard
// library so callers need only this package.
func Is(err, target error) bool { return errors.Is(err, target) }
