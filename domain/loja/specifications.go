package loja

import (
	"context"
	"strings"

	"ecommerce/domain/shared"
)

type ByVarejistaSpecification struct {
	VarejistaID int64
}

func (s ByVarejistaSpecification) IsSatisfiedBy(_ context.Context, l *Loja) bool {
	return l.IDVarejista() == s.VarejistaID
}

type ByActiveSpecification struct {
	Active bool
}

func (s ByActiveSpecification) IsSatisfiedBy(_ context.Context, l *Loja) bool {
	return l.IsActive() == s.Active
}

// IdentifiedSpecification requires name, CNPJ, code and an owning retailer.
type IdentifiedSpecification struct{}

func (IdentifiedSpecification) IsSatisfiedBy(_ context.Context, l *Loja) bool {
	return strings.TrimSpace(l.Nome()) != "" &&
		!l.Cnpj().IsZero() &&
		strings.TrimSpace(l.Codigo()) != "" &&
		l.IDVarejista() > 0
}

func NewValidLojaSpecification() shared.Specification[*Loja] {
	return shared.And[*Loja](IdentifiedSpecification{}, ByActiveSpecification{Active: true})
}
