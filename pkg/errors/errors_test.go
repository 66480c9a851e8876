package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/domain/shared"
)

func TestFromErrorMapsDomainKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   ErrorCode
		status int
	}{
		{"validation", shared.NewValidationError("broker", []shared.Violation{{Field: "Nome", Code: shared.CodeRequired, Message: "Nome é obrigatório"}}), CodeValidation, http.StatusBadRequest},
		{"business rule", shared.NewBusinessRuleError("broker", "Já existe um broker com este nome"), CodeBusinessRule, http.StatusUnprocessableEntity},
		{"not found", shared.NewNotFoundError("broker", 7), CodeNotFound, http.StatusNotFound},
		{"conflict", shared.NewConflictError("broker_varejista", "duplicado"), CodeConflict, http.StatusConflict},
		{"argument", shared.NewArgumentError("Id", "Id deve ser maior que zero"), CodeInvalidArgument, http.StatusBadRequest},
		{"unauthorized", shared.NewUnauthorizedError("Email ou senha inválidos"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", shared.NewForbiddenError("loja", "sem permissão"), CodeForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromError(fmt.Errorf("wrapped: %w", tt.err))
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.HTTPStatusCode())
			assert.Equal(t, tt.err.Error(), appErr.Message)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestFromErrorValidationDetails(t *testing.T) {
	violations := []shared.Violation{
		{Field: "Nome", Code: shared.CodeRequired, Message: "Nome é obrigatório"},
		{Field: "CNPJ", Code: shared.CodeCNPJ, Message: "CNPJ inválido"},
	}
	appErr := FromError(shared.NewValidationError("varejista", violations))

	assert.Equal(t, violations, appErr.Details)
	assert.Equal(t, "Nome é obrigatório, CNPJ inválido", appErr.Message)
}

func TestFromErrorHidesUnknownErrors(t *testing.T) {
	appErr := FromError(fmt.Errorf("dial tcp: connection refused"))

	assert.Equal(t, CodeInternal, appErr.Code)
	assert.Equal(t, "internal server error", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatusCode())
}

func TestFromErrorKeepsAppError(t *testing.T) {
	original := TooManyRequests("slow down")
	assert.Same(t, original, FromError(fmt.Errorf("ctx: %w", original)))
	assert.Nil(t, FromError(nil))
}

func TestIs(t *testing.T) {
	assert.True(t, Is(New(CodeNotFound, "x"), CodeNotFound))
	assert.False(t, Is(New(CodeNotFound, "x"), CodeConflict))
	assert.False(t, Is(fmt.Errorf("plain"), CodeNotFound))
}
