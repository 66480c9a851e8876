package shared

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Violation codes.
const (
	CodeRequired    = "required"
	CodeMaxLength   = "max_length"
	CodeExactLength = "exact_length"
	CodeMin         = "min"
	CodeCPF         = "cpf"
	CodeCNPJ        = "cnpj"
	CodeEmail       = "email"
	CodeDate        = "date"
)

// Violation is one failed rule.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult is the immutable outcome of a validation pass.
type ValidationResult struct {
	violations []Violation
}

// NewValidationResult copies the given violations.
func NewValidationResult(violations ...Violation) ValidationResult {
	if len(violations) == 0 {
		return ValidationResult{}
	}
	return ValidationResult{violations: append([]Violation(nil), violations...)}
}

func (r ValidationResult) IsValid() bool { return len(r.violations) == 0 }

func (r ValidationResult) Violations() []Violation {
	if len(r.violations) == 0 {
		return nil
	}
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Messages returns the human-readable messages in order.
func (r ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(r.violations))
	for _, v := range r.violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

func (r ValidationResult) Join(sep string) string {
	return strings.Join(r.Messages(), sep)
}

// Err converts a failed result into a validation DomainError; nil when valid.
func (r ValidationResult) Err(entity string) error {
	if r.IsValid() {
		return nil
	}
	return NewValidationError(entity, r.violations)
}

// Combine is valid iff every input is valid; violations keep input order.
func Combine(results ...ValidationResult) ValidationResult {
	var all []Violation
	for _, r := range results {
		all = append(all, r.violations...)
	}
	return ValidationResult{violations: all}
}

// Validator accumulates violations for a single validation pass. Checks never
// fail fast; call Result once all of them ran.
type Validator struct {
	violations []Violation
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) add(field, code, message string) {
	v.violations = append(v.violations, Violation{Field: field, Code: code, Message: message})
}

// Required treats whitespace-only values as empty.
func (v *Validator) Required(value, field string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, CodeRequired, fmt.Sprintf("%s é obrigatório", field))
	}
	return v
}

// RequiredWithMessage is Required with a caller-supplied message.
func (v *Validator) RequiredWithMessage(value, field, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, CodeRequired, message)
	}
	return v
}

// MaxLength only applies to non-empty values.
func (v *Validator) MaxLength(value string, max int, field string) *Validator {
	if value != "" && utf8.RuneCountInString(value) > max {
		v.add(field, CodeMaxLength, fmt.Sprintf("%s deve ter no máximo %d caracteres", field, max))
	}
	return v
}

func (v *Validator) ExactLength(value string, n int, field string) *Validator {
	if utf8.RuneCountInString(value) != n {
		v.add(field, CodeExactLength, fmt.Sprintf("%s deve ter exatamente %d caractere(s)", field, n))
	}
	return v
}

func (v *Validator) GreaterThanOrEqual(value, min int64, field string) *Validator {
	if value < min {
		v.add(field, CodeMin, fmt.Sprintf("%s deve ser maior ou igual a %d", field, min))
	}
	return v
}

func (v *Validator) GreaterThan(value, min int64, field string) *Validator {
	if value <= min {
		v.add(field, CodeMin, fmt.Sprintf("%s deve ser maior que %d", field, min))
	}
	return v
}

func (v *Validator) CPF(value, field string) *Validator {
	if value != "" && !IsValidCPF(value) {
		v.add(field, CodeCPF, fmt.Sprintf("%s inválido", field))
	}
	return v
}

func (v *Validator) CNPJ(value, field string) *Validator {
	if value != "" && !IsValidCNPJ(value) {
		v.add(field, CodeCNPJ, fmt.Sprintf("%s inválido", field))
	}
	return v
}

func (v *Validator) Email(value, field string) *Validator {
	if value != "" && !IsValidEmail(value) {
		v.add(field, CodeEmail, fmt.Sprintf("%s inválido", field))
	}
	return v
}

// Check records message when ok is false.
func (v *Validator) Check(ok bool, field, code, message string) *Validator {
	if !ok {
		v.add(field, code, message)
	}
	return v
}

// Merge appends the violations of a nested result.
func (v *Validator) Merge(r ValidationResult) *Validator {
	v.violations = append(v.violations, r.violations...)
	return v
}

func (v *Validator) Result() ValidationResult {
	return NewValidationResult(v.violations...)
}
