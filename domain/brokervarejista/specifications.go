package brokervarejista

import "context"

// ValidVinculoSpecification holds for an active link between two persisted ids.
type ValidVinculoSpecification struct{}

func (ValidVinculoSpecification) IsSatisfiedBy(_ context.Context, bv *BrokerVarejista) bool {
	return bv.IDBroker() > 0 && bv.IDVarejista() > 0 && bv.IsActive()
}
