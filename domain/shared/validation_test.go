package shared

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorAccumulates(t *testing.T) {
	r := NewValidator().
		Required("  ", "Nome").
		MaxLength("abcdef", 3, "Codigo").
		ExactLength("IU", 1, "Ação").
		GreaterThan(0, 0, "Id").
		GreaterThanOrEqual(-1, 0, "IdLoja").
		CPF("123", "CPF").
		CNPJ("123", "CNPJ").
		Email("x", "Email").
		Result()

	require.False(t, r.IsValid())
	codes := make([]string, 0)
	for _, v := range r.Violations() {
		codes = append(codes, v.Code)
	}
	assert.Equal(t, []string{
		CodeRequired, CodeMaxLength, CodeExactLength, CodeMin, CodeMin, CodeCPF, CodeCNPJ, CodeEmail,
	}, codes)
	assert.Equal(t, "Nome é obrigatório", r.Messages()[0])
}

func TestValidatorSkipsEmptyOptionalFields(t *testing.T) {
	r := NewValidator().
		MaxLength("", 3, "Codigo").
		CPF("", "CPF").
		CNPJ("", "CNPJ").
		Email("", "Email").
		Result()
	assert.True(t, r.IsValid())
	assert.Nil(t, r.Violations())
	assert.NoError(t, r.Err("Broker"))
}

func TestMaxLengthCountsRunes(t *testing.T) {
	assert.True(t, NewValidator().MaxLength("ação", 4, "Campo").Result().IsValid())
	assert.False(t, NewValidator().MaxLength("ações", 4, "Campo").Result().IsValid())
}

func TestCombine(t *testing.T) {
	a := NewValidationResult(Violation{Field: "A", Message: "a"})
	b := NewValidationResult()
	c := NewValidationResult(Violation{Field: "C", Message: "c"}, Violation{Field: "D", Message: "d"})

	assert.True(t, Combine().IsValid())
	assert.True(t, Combine(b, b).IsValid())

	all := Combine(a, b, c)
	assert.False(t, all.IsValid())
	assert.Equal(t, []string{"a", "c", "d"}, all.Messages())
	assert.Equal(t, "a; c; d", all.Join("; "))
}

func TestResultErr(t *testing.T) {
	r := NewValidator().RequiredWithMessage("", "NmBroker", "Nome do broker é obrigatório").Result()
	err := r.Err("Broker")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, strings.Contains(err.Error(), "obrigatório"))

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "NmBroker", de.Field)
	assert.Len(t, de.Violations(), 1)
}

func TestValidationResultIsImmutable(t *testing.T) {
	r := NewValidationResult(Violation{Field: "A", Message: "a"})
	r.Violations()[0].Message = "changed"
	assert.Equal(t, "a", r.Messages()[0])
}

func TestValidatorMerge(t *testing.T) {
	nested := NewValidationResult(Violation{Field: "X", Message: "x"})
	r := NewValidator().Check(false, "Y", "custom", "y").Merge(nested).Result()
	assert.Equal(t, []string{"y", "x"}, r.Messages())
}
