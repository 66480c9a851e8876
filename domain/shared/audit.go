package shared

import (
	"strings"
	"time"
)

// Audit is the bookkeeping record every entity embeds. It is mutated only
// through the package functions below.
type Audit struct {
	id        int64
	createdAt time.Time
	updatedAt *time.Time
	createdBy string
	updatedBy string
	isActive  bool
}

// AuditSnapshot is the persisted shape of an Audit, used by repositories only.
type AuditSnapshot struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt *time.Time
	CreatedBy string
	UpdatedBy string
	IsActive  bool
}

// NewAudit starts an active record created by createdBy at now (UTC).
func NewAudit(createdBy string, now time.Time) Audit {
	return Audit{
		createdAt: now.UTC(),
		createdBy: strings.TrimSpace(createdBy),
		isActive:  true,
	}
}

func RestoreAudit(s AuditSnapshot) Audit {
	a := Audit{
		id:        s.ID,
		createdAt: s.CreatedAt.UTC(),
		createdBy: s.CreatedBy,
		updatedBy: s.UpdatedBy,
		isActive:  s.IsActive,
	}
	if s.UpdatedAt != nil {
		t := s.UpdatedAt.UTC()
		a.updatedAt = &t
	}
	return a
}

func (a Audit) ID() int64            { return a.id }
func (a Audit) CreatedAt() time.Time { return a.createdAt }
func (a Audit) CreatedBy() string    { return a.createdBy }
func (a Audit) UpdatedBy() string    { return a.updatedBy }
func (a Audit) IsActive() bool       { return a.isActive }

// UpdatedAt is nil until the first update.
func (a Audit) UpdatedAt() *time.Time {
	if a.updatedAt == nil {
		return nil
	}
	t := *a.updatedAt
	return &t
}

func (a Audit) Snapshot() AuditSnapshot {
	return AuditSnapshot{
		ID:        a.id,
		CreatedAt: a.createdAt,
		UpdatedAt: a.UpdatedAt(),
		CreatedBy: a.createdBy,
		UpdatedBy: a.updatedBy,
		IsActive:  a.isActive,
	}
}

// AssignID is called once by the repository after insert.
func AssignID(a *Audit, id int64) {
	a.id = id
}

// TouchUpdatedBy stamps the actor and the update time.
func TouchUpdatedBy(a *Audit, by string, now time.Time) error {
	by = strings.TrimSpace(by)
	if by == "" {
		return NewArgumentError("updatedBy", "Usuário de atualização é obrigatório")
	}
	t := now.UTC()
	if t.Before(a.createdAt) {
		t = a.createdAt
	}
	a.updatedBy = by
	a.updatedAt = &t
	return nil
}

func Activate(a *Audit, by string, now time.Time) error {
	if err := TouchUpdatedBy(a, by, now); err != nil {
		return err
	}
	a.isActive = true
	return nil
}

func Deactivate(a *Audit, by string, now time.Time) error {
	if err := TouchUpdatedBy(a, by, now); err != nil {
		return err
	}
	a.isActive = false
	return nil
}

// ValidateAudit checks the record's own invariants.
func ValidateAudit(a Audit) ValidationResult {
	v := NewValidator()
	v.Required(a.createdBy, "Criado por")
	if a.updatedAt != nil {
		v.Check(!a.updatedAt.Before(a.createdAt), "UpdatedAt", CodeDate,
			"Data de atualização não pode ser anterior à data de criação")
	}
	return v.Result()
}
