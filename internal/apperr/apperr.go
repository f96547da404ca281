// Package apperr holds the error kinds shared by services and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("you do not have permission to perform this action")
	ErrUnauthorized = errors.New("authentication credentials were not provided or are invalid")

	// ErrAccountGone is returned when a still-valid token names a deleted user.
	ErrAccountGone = fmt.Errorf("user not found: %w", ErrUnauthorized)
)

// NonFieldKey collects messages that belong to the object rather than one attribute.
const NonFieldKey = "non_field_errors"

// FieldError is a validation failure keyed by the offending request field.
type FieldError struct {
	Fields map[string][]string
}

func NewFieldError(field, msg string) *FieldError {
	return &FieldError{Fields: map[string][]string{field: {msg}}}
}

// Add appends msg under field and returns the receiver so calls can be chained.
func (e *FieldError) Add(field, msg string) *FieldError {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
	return e
}

// OrNil returns nil when nothing was added, so accumulated checks can be returned directly.
func (e *FieldError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *FieldError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return strings.Join(parts, ", ")
}

// RuleError is a domain rule violation that is not tied to a single field.
type RuleError struct {
	Message string
}

func NewRuleError(msg string) *RuleError { return &RuleError{Message: msg} }

func (e *RuleError) Error() string { return e.Message }

func IsFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}
