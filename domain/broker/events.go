package broker

import (
	"strconv"

	"ecommerce/domain/shared"
)

const EventName = "broker"

// BrokerEvent is raised when a broker is created, renamed or confirmed as
// linked to a retailer.
type BrokerEvent struct {
	shared.EventBase
	brokerID int64
	nome     string
}

func NewBrokerEvent(brokerID int64, nome, userName string) *BrokerEvent {
	return &BrokerEvent{
		EventBase: shared.NewEventBase(userName),
		brokerID:  brokerID,
		nome:      nome,
	}
}

func (e *BrokerEvent) EventName() string      { return EventName }
func (e *BrokerEvent) GetAggregateID() string { return strconv.FormatInt(e.brokerID, 10) }
func (e *BrokerEvent) BrokerID() int64        { return e.brokerID }
func (e *BrokerEvent) Nome() string           { return e.nome }
