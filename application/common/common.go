// Package common holds what every application service shares: dependency
// guards, failure logging and the document policy.
package common

import (
	"errors"
	"reflect"

	"go.uber.org/zap"

	"ecommerce/domain/shared"
)

// Options tune service behaviour from configuration.
type Options struct {
	// StrictDocuments makes services reject CPF/CNPJ values whose check
	// digits are wrong, on top of the digit-count rule.
	StrictDocuments bool

	// BatchSize caps the rows accepted by one import; 0 means no cap.
	BatchSize int
}

type Option func(*Options)

func WithStrictDocuments(strict bool) Option {
	return func(o *Options) { o.StrictDocuments = strict }
}

func WithBatchSize(n int) Option {
	return func(o *Options) { o.BatchSize = n }
}

func Apply(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Dependency is one named constructor argument.
type Dependency struct {
	Name  string
	Value any
}

// RequireDependencies fails with an argument error on the first nil value.
func RequireDependencies(deps ...Dependency) error {
	for _, d := range deps {
		if isNil(d.Value) {
			return shared.NewArgumentError(d.Name, d.Name+" é obrigatório")
		}
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Fail logs err and returns it unchanged. Expected domain outcomes go to
// Warn, anything else to Error.
func Fail(logger *zap.Logger, operation string, err error, fields ...zap.Field) error {
	if err == nil {
		return nil
	}
	fields = append(fields, zap.String("operation", operation), zap.Error(err))
	kind := shared.KindOf(err)
	if kind == "" {
		logger.Error("operação falhou", fields...)
		return err
	}
	fields = append(fields, zap.String("kind", kind))
	var stacker shared.Stacker
	if kind != "validation" && errors.As(err, &stacker) {
		fields = append(fields, zap.Strings("stack", stacker.Stack()))
	}
	logger.Warn("operação rejeitada", fields...)
	return err
}

// CheckCnpj applies the check-digit rule when the policy is strict.
func (o Options) CheckCnpj(entity string, cnpj shared.Cnpj) error {
	if !o.StrictDocuments || cnpj.IsZero() || cnpj.HasValidCheckDigits() {
		return nil
	}
	return shared.NewValidationError(entity, []shared.Violation{{Field: "CNPJ", Code: shared.CodeCNPJ, Message: "CNPJ inválido"}})
}

// CheckCpf applies the check-digit rule when the policy is strict.
func (o Options) CheckCpf(entity string, cpf shared.Cpf) error {
	if !o.StrictDocuments || cpf.IsZero() || cpf.HasValidCheckDigits() {
		return nil
	}
	return shared.NewValidationError(entity, []shared.Violation{{Field: "CPF", Code: shared.CodeCPF, Message: "CPF inválido"}})
}
