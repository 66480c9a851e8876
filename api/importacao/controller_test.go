package importacao

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecommerce/api/middleware"
	"ecommerce/api/response"
	importacaoapp "ecommerce/application/importacao"
	"ecommerce/domain/shared"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) RegistrarDetalhe(ctx context.Context, req importacaoapp.DetalheRequest, by string) (*importacaoapp.DetalheResponse, error) {
	args := m.Called(ctx, req, by)
	resp, _ := args.Get(0).(*importacaoapp.DetalheResponse)
	return resp, args.Error(1)
}

func (m *mockService) ImportarLote(ctx context.Context, batch importacaoapp.Batch, by string) (*importacaoapp.ImportReport, error) {
	args := m.Called(ctx, batch, by)
	resp, _ := args.Get(0).(*importacaoapp.ImportReport)
	return resp, args.Error(1)
}

func (m *mockService) Obter(ctx context.Context, id int64) (*importacaoapp.DetalheResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*importacaoapp.DetalheResponse)
	return resp, args.Error(1)
}

func (m *mockService) ListarPorLog(ctx context.Context, idLog int64) ([]*importacaoapp.DetalheResponse, error) {
	args := m.Called(ctx, idLog)
	resp, _ := args.Get(0).([]*importacaoapp.DetalheResponse)
	return resp, args.Error(1)
}

func (m *mockService) ValidarDadosImportacao(ctx context.Context, cnpjLoja string, varejistaID int64) (bool, error) {
	args := m.Called(ctx, cnpjLoja, varejistaID)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) ValidarPermissaoImportacao(ctx context.Context, lojaID, varejistaID int64) (bool, error) {
	args := m.Called(ctx, lojaID, varejistaID)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) ValidarCpf(cpf string) bool {
	return m.Called(cpf).Bool(0)
}

func setup(t *testing.T) (*gin.Engine, *mockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &mockService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware(), middleware.ActorMiddleware())
	NewController(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine, svc
}

func do(engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

const batchBody = `{
	"id_log": 10,
	"detalhes": [
		{"status": "OK", "data_criacao": "2024-01-01T00:00:00Z", "data_validade": "2024-12-31T00:00:00Z", "data_venda": "2024-01-01T00:00:00Z"},
		{"status": "", "data_criacao": "2024-01-01T00:00:00Z", "data_validade": "2023-12-31T00:00:00Z", "data_venda": "2024-01-01T00:00:00Z"}
	]
}`

func TestImportBatchReportsRejectedRows(t *testing.T) {
	engine, svc := setup(t)
	svc.On("ImportarLote", mock.Anything, mock.MatchedBy(func(b importacaoapp.Batch) bool {
		return b.IDLog == 10 && len(b.Detalhes) == 2
	}), shared.DefaultActor).Return(&importacaoapp.ImportReport{
		Total:      2,
		Importados: 1,
		Rejeitados: 1,
		IDs:        []int64{1},
		Rejeicoes:  []importacaoapp.LinhaRejeitada{{Linha: 2}},
	}, nil)

	w, resp := do(engine, http.MethodPost, "/api/v1/importacoes", batchBody)
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, data["rejeitados"])
}

func TestImportBatchTooLarge(t *testing.T) {
	engine, svc := setup(t)
	svc.On("ImportarLote", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, shared.NewArgumentError("Detalhes", "Lote excede o limite de 1 linhas"))

	w, resp := do(engine, http.MethodPost, "/api/v1/importacoes", batchBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", resp.Error)
}

func TestImportBatchRequiresRows(t *testing.T) {
	engine, _ := setup(t)

	w, _ := do(engine, http.MethodPost, "/api/v1/importacoes", `{"id_log": 1, "detalhes": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDetailsNeedsLog(t *testing.T) {
	engine, svc := setup(t)

	w, resp := do(engine, http.MethodGet, "/api/v1/importacoes/detalhes", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", resp.Error)

	svc.On("ListarPorLog", mock.Anything, int64(10)).Return([]*importacaoapp.DetalheResponse{{IDLog: 10}}, nil)
	w, _ = do(engine, http.MethodGet, "/api/v1/importacoes/detalhes?id_log=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateCpf(t *testing.T) {
	engine, svc := setup(t)
	svc.On("ValidarCpf", "52998224725").Return(true)

	w, resp := do(engine, http.MethodGet, "/api/v1/importacoes/cpf/52998224725/validate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"valido": true}, resp.Data)
}

func TestPermission(t *testing.T) {
	engine, svc := setup(t)
	svc.On("ValidarPermissaoImportacao", mock.Anything, int64(3), int64(4)).Return(false, nil)

	w, resp := do(engine, http.MethodGet, "/api/v1/importacoes/permission?loja_id=3&varejista_id=4", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"permitido": false}, resp.Data)
}
