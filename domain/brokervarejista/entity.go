package brokervarejista

import (
	"time"

	"ecommerce/domain/shared"
)

const entityName = "broker_varejista"

// BrokerVarejista links one broker to one retailer.
type BrokerVarejista struct {
	shared.Audit
	shared.EventRecorder

	idBroker    int64
	idVarejista int64
}

func New(idBroker, idVarejista int64, createdBy string) (*BrokerVarejista, error) {
	audit := shared.NewAudit(createdBy, time.Now())
	if err := shared.Combine(validate(idBroker, idVarejista), shared.ValidateAudit(audit)).Err(entityName); err != nil {
		return nil, err
	}

	bv := &BrokerVarejista{Audit: audit, idBroker: idBroker, idVarejista: idVarejista}
	bv.Record(NewBrokerVarejistaEvent(bv.ID(), idBroker, idVarejista, bv.CreatedBy()))
	return bv, nil
}

func validate(idBroker, idVarejista int64) shared.ValidationResult {
	return shared.NewValidator().
		Check(idBroker > 0, "IdBroker", shared.CodeMin, "IdBroker deve ser maior que zero").
		Check(idVarejista > 0, "IdVarejista", shared.CodeMin, "IdVarejista deve ser maior que zero").
		Result()
}

// AtualizarVinculo points the link at another pair.
func (bv *BrokerVarejista) AtualizarVinculo(idBroker, idVarejista int64, updatedBy string) error {
	if err := validate(idBroker, idVarejista).Err(entityName); err != nil {
		return err
	}
	if err := shared.TouchUpdatedBy(&bv.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	if idBroker != bv.idBroker || idVarejista != bv.idVarejista {
		bv.idBroker = idBroker
		bv.idVarejista = idVarejista
		bv.Record(NewBrokerVarejistaEvent(bv.ID(), idBroker, idVarejista, bv.UpdatedBy()))
	}
	return nil
}

func (bv *BrokerVarejista) Activate(by string) error {
	return shared.Activate(&bv.Audit, by, time.Now())
}

func (bv *BrokerVarejista) Deactivate(by string) error {
	return shared.Deactivate(&bv.Audit, by, time.Now())
}

func (bv *BrokerVarejista) IDBroker() int64    { return bv.idBroker }
func (bv *BrokerVarejista) IDVarejista() int64 { return bv.idVarejista }

func (bv *BrokerVarejista) AssignID(id int64) {
	shared.AssignID(&bv.Audit, id)
	bv.Rewrite(func(e shared.DomainEvent) shared.DomainEvent {
		if ev, ok := e.(*BrokerVarejistaEvent); ok && ev.id == 0 {
			clone := *ev
			clone.id = id
			return &clone
		}
		return e
	})
}

// Rebuild restores a link loaded from storage. Repositories only.
func Rebuild(audit shared.AuditSnapshot, idBroker, idVarejista int64) *BrokerVarejista {
	return &BrokerVarejista{Audit: shared.RestoreAudit(audit), idBroker: idBroker, idVarejista: idVarejista}
}

var _ shared.AggregateRoot = (*BrokerVarejista)(nil)
