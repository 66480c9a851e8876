package varejista

import (
	"strconv"

	"ecommerce/domain/shared"
)

const EventName = "varejista"

type VarejistaEvent struct {
	shared.EventBase
	varejistaID int64
	nome        string
	cnpj        string
}

func NewVarejistaEvent(varejistaID int64, nome, cnpj, userName string) *VarejistaEvent {
	return &VarejistaEvent{
		EventBase:   shared.NewEventBase(userName),
		varejistaID: varejistaID,
		nome:        nome,
		cnpj:        cnpj,
	}
}

func (e *VarejistaEvent) EventName() string      { return EventName }
func (e *VarejistaEvent) GetAggregateID() string { return strconv.FormatInt(e.varejistaID, 10) }
func (e *VarejistaEvent) VarejistaID() int64     { return e.varejistaID }
func (e *VarejistaEvent) Nome() string           { return e.nome }
func (e *VarejistaEvent) Cnpj() string           { return e.cnpj }
