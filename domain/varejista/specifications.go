package varejista

import (
	"context"
	"strings"

	"ecommerce/domain/shared"
)

type ByCnpjSpecification struct {
	Cnpj string
}

func (s ByCnpjSpecification) IsSatisfiedBy(_ context.Context, v *Varejista) bool {
	return v.Cnpj().Value() == shared.OnlyDigits(s.Cnpj)
}

type ByActiveSpecification struct {
	Active bool
}

func (s ByActiveSpecification) IsSatisfiedBy(_ context.Context, v *Varejista) bool {
	return v.IsActive() == s.Active
}

// IdentifiedSpecification requires name, CNPJ and code.
type IdentifiedSpecification struct{}

func (IdentifiedSpecification) IsSatisfiedBy(_ context.Context, v *Varejista) bool {
	return strings.TrimSpace(v.Nome()) != "" &&
		!v.Cnpj().IsZero() &&
		strings.TrimSpace(v.Codigo()) != ""
}

func NewValidVarejistaSpecification() shared.Specification[*Varejista] {
	return shared.And[*Varejista](IdentifiedSpecification{}, ByActiveSpecification{Active: true})
}
