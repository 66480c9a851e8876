package usuario

import (
	"strconv"

	"ecommerce/domain/shared"
)

const EventName = "usuario"

type UsuarioEvent struct {
	shared.EventBase
	usuarioID int64
	nome      string
	email     string
}

func NewUsuarioEvent(usuarioID int64, nome, email, userName string) *UsuarioEvent {
	return &UsuarioEvent{
		EventBase: shared.NewEventBase(userName),
		usuarioID: usuarioID,
		nome:      nome,
		email:     email,
	}
}

func (e *UsuarioEvent) EventName() string      { return EventName }
func (e *UsuarioEvent) GetAggregateID() string { return strconv.FormatInt(e.usuarioID, 10) }
func (e *UsuarioEvent) UsuarioID() int64       { return e.usuarioID }
func (e *UsuarioEvent) Nome() string           { return e.nome }
func (e *UsuarioEvent) Email() string          { return e.email }
