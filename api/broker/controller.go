package broker

import (
	"context"

	"github.com/gin-gonic/gin"

	"ecommerce/api/ctxutil"
	"ecommerce/api/response"
	brokerapp "ecommerce/application/broker"
)

// Service is the part of the broker application service the endpoints use.
type Service interface {
	Cadastrar(ctx context.Context, req brokerapp.BrokerRequest, by string) (*brokerapp.BrokerResponse, error)
	Atualizar(ctx context.Context, id int64, req brokerapp.BrokerRequest, by string) (*brokerapp.BrokerResponse, error)
	Obter(ctx context.Context, id int64) (*brokerapp.BrokerResponse, error)
	Listar(ctx context.Context) ([]*brokerapp.BrokerResponse, error)
	ListarValidos(ctx context.Context) ([]*brokerapp.BrokerResponse, error)
	Ativar(ctx context.Context, id int64, by string) error
	Desativar(ctx context.Context, id int64, by string) error
	Remover(ctx context.Context, id int64) error
	ValidarVinculoVarejista(ctx context.Context, brokerID, varejistaID int64) (bool, error)
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/brokers")
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
	var req brokerapp.BrokerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	b, err := c.service.Cadastrar(ctxutil.Context(ctx), req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, b, "Broker cadastrado com sucesso")
}

// List answers every broker, or only the valid ones with ?validos=true.
func (c *Controller) List(ctx *gin.Context) {
	list := c.service.Listar
	if ctx.Query("validos") == "true" {
		list = c.service.ListarValidos
	}

	brokers, err := list(ctxutil.Context(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, brokers, "Brokers encontrados")
}

func (c *Controller) Get(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	b, err := c.service.Obter(ctxutil.Context(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, b, "Broker encontrado")
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	var req brokerapp.BrokerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	b, err := c.service.Atualizar(ctxutil.Context(ctx), id, req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, b, "Broker atualizado com sucesso")
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
	c.setActive(ctx, c.service.Ativar, "Broker ativado")
}

func (c *Controller) Deactivate(ctx *gin.Context) {
	c.setActive(ctx, c.service.Desativar, "Broker desativado")
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
	brokerID, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	varejistaID, err := ctxutil.ParamID(ctx, "varejistaId")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ok, err := c.service.ValidarVinculoVarejista(ctxutil.Context(ctx), brokerID, varejistaID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, gin.H{"vinculado": ok}, "Vínculo verificado")
}
