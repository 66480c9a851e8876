package broker

import (
	"strings"
	"time"

	"ecommerce/domain/shared"
)

const (
	entityName = "broker"
	nomeMaxLen = 100
	fieldNome  = "Nome"
)

// Broker is an intermediary linked to retailers through Brokers_Varejistas.
type Broker struct {
	shared.Audit
	shared.EventRecorder

	nome string
}

// New builds a valid Broker or returns a validation error listing every
// violated rule.
func New(nome, createdBy string) (*Broker, error) {
	return newAt(nome, createdBy, time.Now())
}

func newAt(nome, createdBy string, now time.Time) (*Broker, error) {
	nome = strings.TrimSpace(nome)
	audit := shared.NewAudit(createdBy, now)
	if err := shared.Combine(validate(nome), shared.ValidateAudit(audit)).Err(entityName); err != nil {
		return nil, err
	}

	b := &Broker{Audit: audit, nome: nome}
	b.Record(NewBrokerEvent(b.ID(), b.nome, b.CreatedBy()))
	return b, nil
}

func validate(nome string) shared.ValidationResult {
	return shared.NewValidator().
		Required(nome, fieldNome).
		MaxLength(nome, nomeMaxLen, fieldNome).
		Result()
}

// AtualizarNome renames the broker. Nothing changes when validation fails;
// an event is recorded only when the name actually changes.
func (b *Broker) AtualizarNome(nome, updatedBy string) error {
	nome = strings.TrimSpace(nome)
	if err := validate(nome).Err(entityName); err != nil {
		return err
	}
	if err := shared.TouchUpdatedBy(&b.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	if nome != b.nome {
		b.nome = nome
		b.Record(NewBrokerEvent(b.ID(), b.nome, b.UpdatedBy()))
	}
	return nil
}

// AtualizarDados is kept as the full-update entry point used by services.
func (b *Broker) AtualizarDados(nome, updatedBy string) error {
	return b.AtualizarNome(nome, updatedBy)
}

func (b *Broker) Activate(by string) error {
	return shared.Activate(&b.Audit, by, time.Now())
}

func (b *Broker) Deactivate(by string) error {
	return shared.Deactivate(&b.Audit, by, time.Now())
}

func (b *Broker) Nome() string { return b.nome }

// AssignID sets the database id after insert and stamps it on queued events.
func (b *Broker) AssignID(id int64) {
	shared.AssignID(&b.Audit, id)
	b.Rewrite(func(e shared.DomainEvent) shared.DomainEvent {
		if be, ok := e.(*BrokerEvent); ok && be.brokerID == 0 {
			clone := *be
			clone.brokerID = id
			return &clone
		}
		return e
	})
}

// Rebuild restores a Broker loaded from storage. Repositories only.
func Rebuild(audit shared.AuditSnapshot, nome string) *Broker {
	return &Broker{Audit: shared.RestoreAudit(audit), nome: nome}
}

var _ shared.AggregateRoot = (*Broker)(nil)
