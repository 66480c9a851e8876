// Package vinculo exposes the broker to varejista links.
package vinculo

import (
	"context"

	"github.com/gin-gonic/gin"

	"ecommerce/api/ctxutil"
	"ecommerce/api/response"
	bvapp "ecommerce/application/brokervarejista"
	"ecommerce/domain/shared"
)

type Service interface {
	Vincular(ctx context.Context, req bvapp.VincularRequest, by string) (*bvapp.VinculoResponse, error)
	Desvincular(ctx context.Context, id int64, by string) error
	ValidarVinculoExistente(ctx context.Context, brokerID, varejistaID int64) (bool, error)
	ListarPorBroker(ctx context.Context, brokerID int64) ([]*bvapp.VinculoResponse, error)
	ListarPorVarejista(ctx context.Context, varejistaID int64) ([]*bvapp.VinculoResponse, error)
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/vinculos")
	{
		g.POST("", c.Link)
		g.GET("", c.List)
		g.GET("/exists", c.Exists)
		g.DELETE("/:id", c.Unlink)
	}
}

func (c *Controller) Link(ctx *gin.Context) {
	var req bvapp.VincularRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	v, err := c.service.Vincular(ctxutil.Context(ctx), req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, v, "Broker vinculado ao varejista")
}

func (c *Controller) Unlink(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if err := c.service.Desvincular(ctxutil.Context(ctx), id, ctxutil.Actor(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}

// List needs exactly one of ?broker_id= or ?varejista_id=.
func (c *Controller) List(ctx *gin.Context) {
	brokerID, byBroker, err := ctxutil.QueryID(ctx, "broker_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	varejistaID, byVarejista, err := ctxutil.QueryID(ctx, "varejista_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if byBroker == byVarejista {
		response.HandleAppError(ctx, shared.NewArgumentError("broker_id", "informe broker_id ou varejista_id"))
		return
	}

	var list []*bvapp.VinculoResponse
	if byBroker {
		list, err = c.service.ListarPorBroker(ctxutil.Context(ctx), brokerID)
	} else {
		list, err = c.service.ListarPorVarejista(ctxutil.Context(ctx), varejistaID)
	}
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, list, "Vínculos encontrados")
}

func (c *Controller) Exists(ctx *gin.Context) {
	brokerID, _, err := ctxutil.QueryID(ctx, "broker_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	varejistaID, _, err := ctxutil.QueryID(ctx, "varejista_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	// zero ids are rejected by the service with an argument error
	ok, err := c.service.ValidarVinculoExistente(ctxutil.Context(ctx), brokerID, varejistaID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, gin.H{"vinculado": ok}, "Vínculo verificado")
}
