package brokervarejista

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/domain/shared"
)

func TestNew(t *testing.T) {
	bv, err := New(1, 2, "alice")
	require.NoError(t, err)

	assert.Equal(t, int64(1), bv.IDBroker())
	assert.Equal(t, int64(2), bv.IDVarejista())
	assert.True(t, bv.IsActive())
	require.Len(t, bv.PendingEvents(), 1)
	assert.Equal(t, EventName, bv.PendingEvents()[0].EventName())
}

func TestNewRejectsNonPositiveIDs(t *testing.T) {
	tests := []struct {
		name                  string
		idBroker, idVarejista int64
		want                  string
	}{
		{"zero broker", 0, 2, "IdBroker deve ser maior que zero"},
		{"negative varejista", 1, -1, "IdVarejista deve ser maior que zero"},
		{"both", 0, 0, "IdBroker deve ser maior que zero, IdVarejista deve ser maior que zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bv, err := New(tt.idBroker, tt.idVarejista, "alice")
			require.Error(t, err)
			assert.Nil(t, bv)
			assert.True(t, errors.Is(err, shared.ErrValidation))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestAtualizarVinculo(t *testing.T) {
	bv, err := New(1, 2, "alice")
	require.NoError(t, err)
	bv.PullEvents()

	require.NoError(t, bv.AtualizarVinculo(1, 2, "bob"))
	assert.Empty(t, bv.PendingEvents(), "same pair records nothing")
	assert.Equal(t, "bob", bv.UpdatedBy())

	err = bv.AtualizarVinculo(0, 3, "carol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IdBroker deve ser maior que zero")
	assert.Equal(t, int64(1), bv.IDBroker())
	assert.Equal(t, int64(2), bv.IDVarejista())
	assert.Equal(t, "bob", bv.UpdatedBy())

	require.NoError(t, bv.AtualizarVinculo(1, 3, "carol"))
	assert.Equal(t, int64(3), bv.IDVarejista())
	assert.Len(t, bv.PendingEvents(), 1)

	require.NoError(t, bv.AtualizarVinculo(1, 3, "carol"))
	assert.Len(t, bv.PendingEvents(), 1)
}
