package loja

import (
	"strconv"

	"ecommerce/domain/shared"
)

const EventName = "loja"

type LojaEvent struct {
	shared.EventBase
	lojaID      int64
	nome        string
	cnpj        string
	varejistaID int64
}

func NewLojaEvent(lojaID int64, nome, cnpj string, varejistaID int64, userName string) *LojaEvent {
	return &LojaEvent{
		EventBase:   shared.NewEventBase(userName),
		lojaID:      lojaID,
		nome:        nome,
		cnpj:        cnpj,
		varejistaID: varejistaID,
	}
}

func (e *LojaEvent) EventName() string      { return EventName }
func (e *LojaEvent) GetAggregateID() string { return strconv.FormatInt(e.lojaID, 10) }
func (e *LojaEvent) LojaID() int64          { return e.lojaID }
func (e *LojaEvent) Nome() string           { return e.nome }
func (e *LojaEvent) Cnpj() string           { return e.cnpj }
func (e *LojaEvent) VarejistaID() int64     { return e.varejistaID }
