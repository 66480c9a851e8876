package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCpf(t *testing.T) {
	_, err := NewCpf("123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	cpf, err := NewCpf("12345678901")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", cpf.Value())

	formatted, err := NewCpf("529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", formatted.Value())
	assert.True(t, formatted.HasValidCheckDigits())
	assert.False(t, cpf.HasValidCheckDigits())
}

func TestCpfCheckDigits(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"52998224725", true},
		{"11144477735", true},
		{"52998224724", false},
		{"11111111111", false},
		{"123", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidCPFCheckDigits(tt.cpf), tt.cpf)
	}
}

func TestNewCnpj(t *testing.T) {
	_, err := NewCnpj("11.222.333/0001")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	cnpj, err := NewCnpj("11.222.333/0001-81")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", cnpj.Value())
	assert.True(t, cnpj.HasValidCheckDigits())

	other, err := NewCnpj("11222333000182")
	require.NoError(t, err)
	assert.False(t, other.HasValidCheckDigits())
	assert.False(t, cnpj.Equals(other))
	assert.False(t, ValidCNPJCheckDigits("00000000000000"))
}

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("  Ana.Silva@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ana.silva@example.com", email.Value())

	for _, bad := range []string{"", "ana", "ana@", "@example.com", "ana@example"} {
		_, err := NewEmail(bad)
		assert.True(t, errors.Is(err, ErrValidation), bad)
	}
}

func TestSenha(t *testing.T) {
	_, err := NewSenha("")
	assert.True(t, errors.Is(err, ErrValidation))

	s, err := NewSenha("segredo")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo", s.Hash())
	assert.Len(t, s.Hash(), 44)
	assert.True(t, s.Matches("segredo"))
	assert.False(t, s.Matches("Segredo"))
	assert.False(t, s.Matches(""))
	assert.Equal(t, "********", s.String())

	restored := SenhaFromHash(s.Hash())
	assert.True(t, restored.Equals(s))
	assert.True(t, restored.Matches("segredo"))
	assert.False(t, SenhaFromHash("").Matches("segredo"))
}

func TestNewHistoryAction(t *testing.T) {
	for raw, want := range map[string]HistoryAction{"i": ActionInsert, " U ": ActionUpdate, "D": ActionDelete} {
		got, err := NewHistoryAction(raw)
		require.NoError(t, err)
		assert.True(t, got.Equals(want), raw)
	}

	_, err := NewHistoryAction("")
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = NewHistoryAction("X")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345", OnlyDigits("1a2-3.4/5 "))
	assert.Equal(t, "", OnlyDigits("abc"))
}
