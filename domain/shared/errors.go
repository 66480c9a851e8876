/*
Package shared holds the building blocks every aggregate of the back-office
relies on: errors, validation, value objects, the audit record and the
event bus.

Error model:
 1. Sentinel kinds (ErrValidation, ErrBusinessRule, ...) are matched with errors.Is.
 2. DomainError captures the stack when it is created and formats it only on demand.
 3. Validation errors keep their field-level violations; joining them into a
    single sentence is left to whoever renders the error.
 4. No transport concepts (HTTP codes) live here.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel kinds.
var (
	ErrValidation   = errors.New("validation")
	ErrBusinessRule = errors.New("business rule")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrArgument     = errors.New("invalid argument")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// DomainError carries the business context of a failure plus the stack of
// the point where it was raised.
type DomainError struct {
	// Err is the sentinel kind.
	Err error

	Entity  string
	Field   string
	Message string

	violations []Violation
	stack      []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Violations returns a copy of the field-level violations (validation kind only).
func (e *DomainError) Violations() []Violation {
	if len(e.violations) == 0 {
		return nil
	}
	out := make([]Violation, len(e.violations))
	copy(out, e.violations)
	return out
}

// Stack formats the captured frames.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack records the current call stack.
// skip is usually 3: runtime.Callers, CaptureStack, the constructor.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders at most ~10 non-runtime frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewValidationError wraps the violations of a failed validation pass.
func NewValidationError(entity string, violations []Violation) error {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Message)
	}
	field := ""
	if len(violations) == 1 {
		field = violations[0].Field
	}
	return &DomainError{
		Err:        ErrValidation,
		Entity:     entity,
		Field:      field,
		Message:    strings.Join(msgs, ", "),
		violations: append([]Violation(nil), violations...),
		stack:      CaptureStack(3),
	}
}

func NewBusinessRuleError(entity, message string) error {
	return &DomainError{
		Err:     ErrBusinessRule,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

func NewNotFoundError(entity string, id any) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("Entidade %s com id %v não encontrada", entity, id),
		stack:   CaptureStack(3),
	}
}

func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewArgumentError reports a guard-clause failure (non-positive id, nil dependency).
func NewArgumentError(field, message string) error {
	return &DomainError{
		Err:     ErrArgument,
		Field:   field,
		Message: message,
		stack:   CaptureStack(3),
	}
}

func NewUnauthorizedError(message string) error {
	return &DomainError{
		Err:     ErrUnauthorized,
		Message: message,
		stack:   CaptureStack(3),
	}
}

func NewForbiddenError(entity, message string) error {
	return &DomainError{
		Err:     ErrForbidden,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// KindOf names the sentinel kind of err, or "" when err is not a domain error.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrBusinessRule):
		return "business_rule"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrArgument):
		return "argument"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return ""
	}
}

// Stacker is implemented by errors that can report where they were raised.
type Stacker interface {
	Stack() []string
}
