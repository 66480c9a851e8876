package varejista

import (
	"context"

	"github.com/gin-gonic/gin"

	"ecommerce/api/ctxutil"
	"ecommerce/api/response"
	varejistaapp "ecommerce/application/varejista"
)

type Service interface {
	Cadastrar(ctx context.Context, req varejistaapp.VarejistaRequest, by string) (*varejistaapp.VarejistaResponse, error)
	Atualizar(ctx context.Context, id int64, req varejistaapp.VarejistaRequest, by string) (*varejistaapp.VarejistaResponse, error)
	Obter(ctx context.Context, id int64) (*varejistaapp.VarejistaResponse, error)
	ObterPorCnpj(ctx context.Context, cnpj string) (*varejistaapp.VarejistaResponse, error)
	Listar(ctx context.Context) ([]*varejistaapp.VarejistaResponse, error)
	ListarPorBroker(ctx context.Context, brokerID int64) ([]*varejistaapp.VarejistaResponse, error)
	Ativar(ctx context.Context, id int64, by string) error
	Desativar(ctx context.Context, id int64, by string) error
	Remover(ctx context.Context, id int64) error
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/varejistas")
	{
		g.POST("", c.Create)
		g.GET("", c.List)
		g.GET("/:id", c.Get)
		g.PUT("/:id", c.Update)
		g.DELETE("/:id", c.Delete)
		g.POST("/:id/activate", c.Activate)
		g.POST("/:id/deactivate", c.Deactivate)
	}
}

func (c *Controller) Create(ctx *gin.Context) {
	var req varejistaapp.VarejistaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	v, err := c.service.Cadastrar(ctxutil.Context(ctx), req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, v, "Varejista cadastrado com sucesso")
}

// List filters by ?cnpj= (at most one result) or ?broker_id=, or answers
// every varejista.
func (c *Controller) List(ctx *gin.Context) {
	reqCtx := ctxutil.Context(ctx)

	if cnpj := ctx.Query("cnpj"); cnpj != "" {
		v, err := c.service.ObterPorCnpj(reqCtx, cnpj)
		if err != nil {
			response.HandleAppError(ctx, err)
			return
		}
		response.HandleList(ctx, []*varejistaapp.VarejistaResponse{v}, "Varejistas encontrados")
		return
	}

	brokerID, byBroker, err := ctxutil.QueryID(ctx, "broker_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	var list []*varejistaapp.VarejistaResponse
	if byBroker {
		list, err = c.service.ListarPorBroker(reqCtx, brokerID)
	} else {
		list, err = c.service.Listar(reqCtx)
	}
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, list, "Varejistas encontrados")
}

func (c *Controller) Get(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	v, err := c.service.Obter(ctxutil.Context(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, v, "Varejista encontrado")
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	var req varejistaapp.VarejistaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	v, err := c.service.Atualizar(ctxutil.Context(ctx), id, req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, v, "Varejista atualizado com sucesso")
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
	c.setActive(ctx, c.service.Ativar, "Varejista ativado")
}

func (c *Controller) Deactivate(ctx *gin.Context) {
	c.setActive(ctx, c.service.Desativar, "Varejista desativado")
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
