package model

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation = errors.New("validation error") // 400
	ErrNotFound   = errors.New("not found")        // 404
	ErrConflict   = errors.New("conflict")         // 409

	ErrBrandNotFound = &kindError{msg: "brand not found", kind: ErrNotFound}
	ErrModelNotFound = &kindError{msg: "model not found", kind: ErrNotFound}
	ErrCarNotFound   = &kindError{msg: "car not found", kind: ErrNotFound}

	ErrBrandConflict = &kindError{msg: "brand already exists", kind: ErrConflict}
	ErrModelConflict = &kindError{msg: "model already exists for brand", kind: ErrConflict}
	ErrHasDependents = &kindError{msg: "entity has dependent records", kind: ErrConflict}
)

// kindError is a sentinel that also matches its broader kind with errors.Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// ValidationError carries per-field messages keyed by the JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
