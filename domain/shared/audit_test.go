package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAudit(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	a := NewAudit(" alice ", now)

	assert.Equal(t, "alice", a.CreatedBy())
	assert.True(t, a.IsActive())
	assert.Equal(t, time.UTC, a.CreatedAt().Location())
	assert.True(t, a.CreatedAt().Equal(now))
	assert.Nil(t, a.UpdatedAt())
	assert.Zero(t, a.ID())
	assert.True(t, ValidateAudit(a).IsValid())
}

func TestTouchUpdatedBy(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := NewAudit("alice", created)

	err := TouchUpdatedBy(&a, "  ", created.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArgument))
	assert.Nil(t, a.UpdatedAt())

	require.NoError(t, TouchUpdatedBy(&a, "bob", created.Add(time.Hour)))
	assert.Equal(t, "bob", a.UpdatedBy())
	assert.True(t, a.UpdatedAt().Equal(created.Add(time.Hour)))

	// clock skew never moves UpdatedAt before CreatedAt
	require.NoError(t, TouchUpdatedBy(&a, "bob", created.Add(-time.Minute)))
	assert.True(t, a.UpdatedAt().Equal(created))
	assert.True(t, ValidateAudit(a).IsValid())
}

func TestActivateDeactivate(t *testing.T) {
	now := time.Now()
	a := NewAudit("alice", now)

	require.NoError(t, Deactivate(&a, "bob", now))
	assert.False(t, a.IsActive())
	require.NoError(t, Deactivate(&a, "bob", now))
	assert.False(t, a.IsActive())

	require.NoError(t, Activate(&a, "carol", now))
	assert.True(t, a.IsActive())
	assert.Equal(t, "carol", a.UpdatedBy())
}

func TestRestoreAuditRoundTrip(t *testing.T) {
	updated := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	snap := AuditSnapshot{
		ID:        7,
		CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: &updated,
		CreatedBy: "alice",
		UpdatedBy: "bob",
		IsActive:  false,
	}
	a := RestoreAudit(snap)
	assert.Equal(t, snap, a.Snapshot())

	// UpdatedAt hands out a copy
	*a.UpdatedAt() = time.Time{}
	assert.True(t, a.UpdatedAt().Equal(updated))
}

func TestValidateAudit(t *testing.T) {
	assert.False(t, ValidateAudit(Audit{}).IsValid())

	before := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := RestoreAudit(AuditSnapshot{CreatedAt: before.Add(time.Hour), UpdatedAt: &before, CreatedBy: "x"})
	r := ValidateAudit(a)
	require.False(t, r.IsValid())
	assert.Equal(t, CodeDate, r.Violations()[0].Code)
}
