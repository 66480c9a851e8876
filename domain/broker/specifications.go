package broker

import (
	"context"
	"strings"

	"ecommerce/domain/shared"
)

type ByNomeSpecification struct {
	Nome string
}

func (s ByNomeSpecification) IsSatisfiedBy(_ context.Context, b *Broker) bool {
	return strings.EqualFold(b.Nome(), s.Nome)
}

type HasNomeSpecification struct{}

func (HasNomeSpecification) IsSatisfiedBy(_ context.Context, b *Broker) bool {
	return strings.TrimSpace(b.Nome()) != ""
}

type ByActiveSpecification struct {
	Active bool
}

func (s ByActiveSpecification) IsSatisfiedBy(_ context.Context, b *Broker) bool {
	return b.IsActive() == s.Active
}

// NewValidBrokerSpecification: named and active.
func NewValidBrokerSpecification() shared.Specification[*Broker] {
	return shared.And[*Broker](HasNomeSpecification{}, ByActiveSpecification{Active: true})
}
