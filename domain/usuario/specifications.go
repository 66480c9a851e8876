package usuario

import (
	"context"

	"ecommerce/domain/shared"
)

type ByActiveSpecification struct {
	Active bool
}

func (s ByActiveSpecification) IsSatisfiedBy(_ context.Context, u *Usuario) bool {
	return u.IsActive() == s.Active
}

type ByVarejistaSpecification struct {
	VarejistaID int64
}

func (s ByVarejistaSpecification) IsSatisfiedBy(_ context.Context, u *Usuario) bool {
	return u.IDVarejista() == s.VarejistaID
}

// HasCredentialsSpecification requires an email and a password hash.
type HasCredentialsSpecification struct{}

func (HasCredentialsSpecification) IsSatisfiedBy(_ context.Context, u *Usuario) bool {
	return u.Email().Value() != "" && !u.Senha().IsZero()
}

func NewValidUsuarioSpecification() shared.Specification[*Usuario] {
	return shared.And[*Usuario](ByActiveSpecification{Active: true}, HasCredentialsSpecification{})
}
