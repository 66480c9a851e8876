package loja

import (
	"context"

	"github.com/gin-gonic/gin"

	"ecommerce/api/ctxutil"
	"ecommerce/api/response"
	lojaapp "ecommerce/application/loja"
)

type Service interface {
	Cadastrar(ctx context.Context, req lojaapp.LojaRequest, by string) (*lojaapp.LojaResponse, error)
	Atualizar(ctx context.Context, id int64, req lojaapp.LojaRequest, by string) (*lojaapp.LojaResponse, error)
	Obter(ctx context.Context, id int64) (*lojaapp.LojaResponse, error)
	Listar(ctx context.Context) ([]*lojaapp.LojaResponse, error)
	ListarPorVarejista(ctx context.Context, varejistaID int64) ([]*lojaapp.LojaResponse, error)
	ListarPorLojista(ctx context.Context, lojistaID int64) ([]*lojaapp.LojaResponse, error)
	Ativar(ctx context.Context, id int64, by string) error
	Desativar(ctx context.Context, id int64, by string) error
	Remover(ctx context.Context, id int64) error
	ValidarVinculoVarejista(ctx context.Context, lojaID, varejistaID int64) (bool, error)
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/lojas")
	{
		g.POST("", c.Create)
		g.GET("", c.List)
		g.GET("/:id", c.Get)
		g.PUT("/:id", c.Update)
		g.DELETE("/:id", c.Delete)
		g.POST("/:id/activate", c.Activate)
		g.POST("/:id/deactivate", c.Deactivate)
		g.GET("/:id/varejistas/:varejistaId/validate", c.ValidateVarejista)
	}
}

func (c *Controller) Create(ctx *gin.Context) {
	var req lojaapp.LojaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	l, err := c.service.Cadastrar(ctxutil.Context(ctx), req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, l, "Loja cadastrada com sucesso")
}

// List filters by ?varejista_id= or ?lojista_id=.
func (c *Controller) List(ctx *gin.Context) {
	reqCtx := ctxutil.Context(ctx)

	varejistaID, byVarejista, err := ctxutil.QueryID(ctx, "varejista_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	lojistaID, byLojista, err := ctxutil.QueryID(ctx, "lojista_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	var list []*lojaapp.LojaResponse
	switch {
	case byVarejista:
		list, err = c.service.ListarPorVarejista(reqCtx, varejistaID)
	case byLojista:
		list, err = c.service.ListarPorLojista(reqCtx, lojistaID)
	default:
		list, err = c.service.Listar(reqCtx)
	}
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, list, "Lojas encontradas")
}

func (c *Controller) Get(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	l, err := c.service.Obter(ctxutil.Context(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, l, "Loja encontrada")
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	var req lojaapp.LojaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	l, err := c.service.Atualizar(ctxutil.Context(ctx), id, req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, l, "Loja atualizada com sucesso")
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if err := c.service.Remover(ctxutil.Context(ctx), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}

func (c *Controller) Activate(ctx *gin.Context) {
	c.setActive(ctx, c.service.Ativar, "Loja ativada")
}

func (c *Controller) Deactivate(ctx *gin.Context) {
	c.setActive(ctx, c.service.Desativar, "Loja desativada")
}

func (c *Controller) setActive(ctx *gin.Context, apply func(context.Context, int64, string) error, message string) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if err := apply(ctxutil.Context(ctx), id, ctxutil.Actor(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, message)
}

func (c *Controller) ValidateVarejista(ctx *gin.Context) {
	lojaID, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	varejistaID, err := ctxutil.ParamID(ctx, "varejistaId")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ok, err := c.service.ValidarVinculoVarejista(ctxutil.Context(ctx), lojaID, varejistaID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, gin.H{"vinculado": ok}, "Vínculo verificado")
}
