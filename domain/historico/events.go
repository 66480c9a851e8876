package historico

import (
	"strconv"
	"time"

	"ecommerce/domain/shared"
)

const EventName = "historicos"

type HistoricoEvent struct {
	shared.EventBase
	cod  int64
	acao string
	data time.Time
}

func NewHistoricoEvent(cod int64, acao string, data time.Time, userName string) *HistoricoEvent {
	return &HistoricoEvent{
		EventBase: shared.NewEventBase(userName),
		cod:       cod,
		acao:      acao,
		data:      data,
	}
}

func (e *HistoricoEvent) EventName() string      { return EventName }
func (e *HistoricoEvent) GetAggregateID() string { return strconv.FormatInt(e.cod, 10) }
func (e *HistoricoEvent) Cod() int64             { return e.cod }
func (e *HistoricoEvent) Acao() string           { return e.acao }
func (e *HistoricoEvent) Data() time.Time        { return e.data }
