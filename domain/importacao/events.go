package importacao

import (
	"strconv"

	"ecommerce/domain/shared"
)

const EventName = "log_importacao_varejo_detalhe"

type DetalheEvent struct {
	shared.EventBase
	idDetalhe    int64
	broker       string
	cdCartao     string
	cpfComprador string
}

func NewDetalheEvent(idDetalhe int64, broker, cdCartao, cpfComprador, userName string) *DetalheEvent {
	return &DetalheEvent{
		EventBase:    shared.NewEventBase(userName),
		idDetalhe:    idDetalhe,
		broker:       broker,
		cdCartao:     cdCartao,
		cpfComprador: cpfComprador,
	}
}

func (e *DetalheEvent) EventName() string      { return EventName }
func (e *DetalheEvent) GetAggregateID() string { return strconv.FormatInt(e.idDetalhe, 10) }
func (e *DetalheEvent) IDDetalhe() int64       { return e.idDetalhe }
func (e *DetalheEvent) Broker() string         { return e.broker }
func (e *DetalheEvent) CdCartao() string       { return e.cdCartao }
func (e *DetalheEvent) CpfComprador() string   { return e.cpfComprador }
