package po

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ecommerce/domain/broker"
	"ecommerce/domain/brokervarejista"
	"ecommerce/domain/historico"
	"ecommerce/domain/importacao"
	"ecommerce/domain/loja"
	"ecommerce/domain/shared"
	"ecommerce/domain/usuario"
	"ecommerce/domain/varejista"
)

// OutboxEventPO is a domain event waiting to be relayed by the outbox worker.
type OutboxEventPO struct {
	ID          string    `gorm:"primaryKey;size:64"`
	AggregateID string    `gorm:"size:64;index;not null"`
	EventType   string    `gorm:"size:100;index;not null"`
	Payload     string    `gorm:"type:json;not null"`
	Status      string    `gorm:"size:20;default:PENDING;not null;index"`
	RetryCount  int       `gorm:"default:0;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (OutboxEventPO) TableName() string {
	return "outbox_events"
}

type EventStatus string

const (
	EventStatusPending    EventStatus = "PENDING"
	EventStatusProcessing EventStatus = "PROCESSING"
	EventStatusPublished  EventStatus = "PUBLISHED"
	EventStatusFailed     EventStatus = "FAILED"
)

func FromDomainEvent(event shared.DomainEvent) (*OutboxEventPO, error) {
	payload, err := json.Marshal(EventPayload(event))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &OutboxEventPO{
		ID:          uuid.New().String(),
		AggregateID: event.GetAggregateID(),
		EventType:   event.EventName(),
		Payload:     string(payload),
		Status:      string(EventStatusPending),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// EventPayload flattens an event into the JSON document stored in the outbox.
// Unknown event types keep only the common envelope.
func EventPayload(event shared.DomainEvent) map[string]any {
	data := map[string]any{
		"event_name":   event.EventName(),
		"aggregate_id": event.GetAggregateID(),
		"occurred_on":  event.OccurredOn(),
		"user_name":    event.UserName(),
	}

	switch e := event.(type) {
	case *broker.BrokerEvent:
		data["broker_id"] = e.BrokerID()
		data["nome"] = e.Nome()
	case *varejista.VarejistaEvent:
		data["varejista_id"] = e.VarejistaID()
		data["nome"] = e.Nome()
		data["cnpj"] = e.Cnpj()
	case *loja.LojaEvent:
		data["loja_id"] = e.LojaID()
		data["nome"] = e.Nome()
		data["cnpj"] = e.Cnpj()
		data["varejista_id"] = e.VarejistaID()
	case *usuario.UsuarioEvent:
		data["usuario_id"] = e.UsuarioID()
		data["nome"] = e.Nome()
		data["email"] = e.Email()
	case *historico.HistoricoEvent:
		data["historico_cod"] = e.Cod()
		data["acao"] = e.Acao()
		data["data"] = e.Data()
	case *brokervarejista.BrokerVarejistaEvent:
		data["broker_id"] = e.BrokerID()
		data["varejista_id"] = e.VarejistaID()
	case *importacao.DetalheEvent:
		data["id_detalhe"] = e.IDDetalhe()
		data["broker"] = e.Broker()
		data["cd_cartao"] = e.CdCartao()
		data["cpf_comprador"] = e.CpfComprador()
	}
	return data
}

// ToEventData decodes the stored payload.
func (p *OutboxEventPO) ToEventData() (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(p.Payload), &data); err != nil {
		return nil, err
	}
	return data, nil
}
