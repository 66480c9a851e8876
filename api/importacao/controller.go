package importacao

import (
	"context"

	"github.com/gin-gonic/gin"

	"ecommerce/api/ctxutil"
	"ecommerce/api/response"
	importacaoapp "ecommerce/application/importacao"
	"ecommerce/domain/shared"
)

type Service interface {
	RegistrarDetalhe(ctx context.Context, req importacaoapp.DetalheRequest, by string) (*importacaoapp.DetalheResponse, error)
	ImportarLote(ctx context.Context, batch importacaoapp.Batch, by string) (*importacaoapp.ImportReport, error)
	Obter(ctx context.Context, id int64) (*importacaoapp.DetalheResponse, error)
	ListarPorLog(ctx context.Context, idLog int64) ([]*importacaoapp.DetalheResponse, error)
	ValidarDadosImportacao(ctx context.Context, cnpjLoja string, varejistaID int64) (bool, error)
	ValidarPermissaoImportacao(ctx context.Context, lojaID, varejistaID int64) (bool, error)
	ValidarCpf(cpf string) bool
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/importacoes")
	{
		g.POST("", c.ImportBatch)
		g.POST("/detalhes", c.RegisterDetail)
		g.GET("/detalhes", c.ListDetails)
		g.GET("/detalhes/:id", c.GetDetail)
		g.GET("/validate", c.Validate)
		g.GET("/permission", c.Permission)
		g.GET("/cpf/:cpf/validate", c.ValidateCpf)
	}
}

// ImportBatch answers 200 with the report even when some rows were rejected;
// only batch-level failures are errors.
func (c *Controller) ImportBatch(ctx *gin.Context) {
	var batch importacaoapp.Batch
	if err := ctx.ShouldBindJSON(&batch); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	report, err := c.service.ImportarLote(ctxutil.Context(ctx), batch, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, report, "Lote processado")
}

func (c *Controller) RegisterDetail(ctx *gin.Context) {
	var req importacaoapp.DetalheRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	d, err := c.service.RegistrarDetalhe(ctxutil.Context(ctx), req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, d, "Detalhe registrado")
}

func (c *Controller) ListDetails(ctx *gin.Context) {
	idLog, ok, err := ctxutil.QueryID(ctx, "id_log")
	if err == nil && !ok {
		err = shared.NewArgumentError("id_log", "informe id_log")
	}
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	list, err := c.service.ListarPorLog(ctxutil.Context(ctx), idLog)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, list, "Detalhes encontrados")
}

func (c *Controller) GetDetail(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	d, err := c.service.Obter(ctxutil.Context(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, d, "Detalhe encontrado")
}

// Validate checks ?cnpj_loja= against ?varejista_id=.
func (c *Controller) Validate(ctx *gin.Context) {
	varejistaID, _, err := ctxutil.QueryID(ctx, "varejista_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ok, err := c.service.ValidarDadosImportacao(ctxutil.Context(ctx), ctx.Query("cnpj_loja"), varejistaID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, gin.H{"valido": ok}, "Dados verificados")
}

func (c *Controller) Permission(ctx *gin.Context) {
	lojaID, _, err := ctxutil.QueryID(ctx, "loja_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	varejistaID, _, err := ctxutil.QueryID(ctx, "varejista_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ok, err := c.service.ValidarPermissaoImportacao(ctxutil.Context(ctx), lojaID, varejistaID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, gin.H{"permitido": ok}, "Permissão verificada")
}

func (c *Controller) ValidateCpf(ctx *gin.Context) {
	response.HandleSuccess(ctx, gin.H{"valido": c.service.ValidarCpf(ctx.Param("cpf"))}, "CPF verificado")
}
