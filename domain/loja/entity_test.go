package loja

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/domain/shared"
)

func TestNew(t *testing.T) {
	l, err := New(Dados{Cnpj: "11222333000181", Nome: "Centro", IDVarejista: 4}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "Centro", l.Nome())
	assert.Equal(t, int64(4), l.IDVarejista())
	require.Len(t, l.PendingEvents(), 1)

	l.AssignID(9)
	assert.Equal(t, "9", l.PullEvents()[0].GetAggregateID())
}

func TestNewUsesStoreNameMessage(t *testing.T) {
	_, err := New(Dados{Cnpj: "11222333000181"}, "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrValidation))
	assert.Contains(t, err.Error(), "Nome da loja é obrigatório")
}

func TestNewRejectsNegativeIDs(t *testing.T) {
	_, err := New(Dados{Cnpj: "11222333000181", Nome: "Centro", IDLojista: -1, IDVarejista: -1}, "alice")
	require.Error(t, err)

	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	assert.Len(t, de.Violations(), 2)
}
