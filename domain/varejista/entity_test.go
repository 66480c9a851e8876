package varejista

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/domain/shared"
)

func TestNew(t *testing.T) {
	v, err := New(Dados{Cnpj: "11.222.333/0001-81", Nome: " Loja Azul "}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "11222333000181", v.Cnpj().Value())
	assert.Equal(t, "Loja Azul", v.Nome())
	assert.True(t, v.IsActive())
	require.Len(t, v.PendingEvents(), 1)
	assert.Equal(t, EventName, v.PendingEvents()[0].EventName())
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		dados Dados
		field string
	}{
		{"missing cnpj", Dados{Nome: "X"}, "CNPJ"},
		{"short cnpj", Dados{Cnpj: "123", Nome: "X"}, "CNPJ"},
		{"missing nome", Dados{Cnpj: "11222333000181"}, "Nome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.dados, "alice")
			require.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrValidation))

			var de *shared.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.field, de.Violations()[0].Field)
		})
	}
}

func TestAtualizarDados(t *testing.T) {
	v, err := New(Dados{Cnpj: "11222333000181", Nome: "Azul"}, "alice")
	require.NoError(t, err)

	require.Error(t, v.AtualizarDados(Dados{Cnpj: "1", Nome: "Verde"}, "bob"))
	assert.Equal(t, "Azul", v.Nome())

	require.NoError(t, v.AtualizarDados(Dados{Cnpj: "11222333000181", Nome: "Verde", Site: "https://verde.example"}, "bob"))
	assert.Equal(t, "Verde", v.Nome())
	assert.Equal(t, "https://verde.example", v.Site())
	assert.Equal(t, "bob", v.UpdatedBy())
}
