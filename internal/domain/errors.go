package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound matches any *NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrValidation matches any *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrReferentialIntegrity matches any *ReferentialIntegrityError.
	ErrReferentialIntegrity = errors.New("dangling reference")

	// ErrInvariant matches any *InvariantViolation.
	ErrInvariant = errors.New("invariant violation")

	// ErrPrecondition matches any *PreconditionError.
	ErrPrecondition = errors.New("precondition failed")
)

// NotFoundError reports an entity lookup that found nothing.
type NotFoundError struct {
	Kind string
	ID   string
}

func NewNotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a malformed date reference, criterion or field.
// Field locates the offending input (e.g. "start", "criteria[2].value").
type ValidationError struct {
	Field    string
	Problem  string
	Expected string
	Received string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Field)
	b.WriteString(": ")
	b.WriteString(e.Problem)
	if e.Expected != "" {
		b.WriteString("; expected ")
		b.WriteString(e.Expected)
	}
	if e.Received != "" {
		b.WriteString(", got ")
		b.WriteString(e.Received)
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ReferentialIntegrityError reports a refId that names no existing entity.
type ReferentialIntegrityError struct {
	Field    string
	RefType  string
	RefID    string
	Searched []string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s: %s refId %q not found in %s",
		e.Field, e.RefType, e.RefID, strings.Join(e.Searched, " or "))
}

func (e *ReferentialIntegrityError) Is(target error) bool { return target == ErrReferentialIntegrity }

// InvariantViolation reports an operation refused because it would break a
// document-wide rule.
type InvariantViolation struct {
	Rule string
}

func (e *InvariantViolation) Error() string { return e.Rule }

func (e *InvariantViolation) Is(target error) bool { return target == ErrInvariant }

// PreconditionError reports an operation attempted before its inputs exist,
// such as any document operation before a document has been loaded.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }
