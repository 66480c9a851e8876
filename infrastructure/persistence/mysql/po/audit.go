package po

import (
	"time"

	"ecommerce/domain/shared"
)

// AuditColumns is embedded by every table of the back-office.
type AuditColumns struct {
	CreatedAt time.Time  `gorm:"column:CreatedAt;not null;autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"column:UpdatedAt;autoUpdateTime:false"`
	CreatedBy string     `gorm:"column:CreatedBy;size:100;not null"`
	UpdatedBy string     `gorm:"column:UpdatedBy;size:100"`
	IsActive  bool       `gorm:"column:IsActive;not null"`
}

func auditColumns(a shared.Audit) AuditColumns {
	s := a.Snapshot()
	return AuditColumns{
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		CreatedBy: s.CreatedBy,
		UpdatedBy: s.UpdatedBy,
		IsActive:  s.IsActive,
	}
}

func (c AuditColumns) snapshot(id int64) shared.AuditSnapshot {
	return shared.AuditSnapshot{
		ID:        id,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		CreatedBy: c.CreatedBy,
		UpdatedBy: c.UpdatedBy,
		IsActive:  c.IsActive,
	}
}

// Models lists every table the repositories use, for AutoMigrate.
func Models() []any {
	return []any{
		&BrokerPO{},
		&VarejistaPO{},
		&LojaPO{},
		&UsuarioPO{},
		&HistoricoPO{},
		&BrokerVarejistaPO{},
		&DetalhePO{},
		&OutboxEventPO{},
	}
}
