package brokervarejista

import (
	"strconv"

	"ecommerce/domain/shared"
)

const EventName = "broker_varejista"

type BrokerVarejistaEvent struct {
	shared.EventBase
	id          int64
	brokerID    int64
	varejistaID int64
}

func NewBrokerVarejistaEvent(id, brokerID, varejistaID int64, userName string) *BrokerVarejistaEvent {
	return &BrokerVarejistaEvent{
		EventBase:   shared.NewEventBase(userName),
		id:          id,
		brokerID:    brokerID,
		varejistaID: varejistaID,
	}
}

func (e *BrokerVarejistaEvent) EventName() string      { return EventName }
func (e *BrokerVarejistaEvent) GetAggregateID() string { return strconv.FormatInt(e.id, 10) }
func (e *BrokerVarejistaEvent) BrokerID() int64        { return e.brokerID }
func (e *BrokerVarejistaEvent) VarejistaID() int64     { return e.varejistaID }
