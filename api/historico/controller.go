package historico

import (
	"context"

	"github.com/gin-gonic/gin"

	"ecommerce/api/ctxutil"
	"ecommerce/api/response"
	historicoapp "ecommerce/application/historico"
	"ecommerce/domain/shared"
)

type Service interface {
	Registrar(ctx context.Context, req historicoapp.RegistrarRequest, by string) (*historicoapp.HistoricoResponse, error)
	PublicarEvento(ctx context.Context, cod int64, by string) error
	ListarPorUsuario(ctx context.Context, usuarioCod int64) ([]*historicoapp.HistoricoResponse, error)
	ListarPorEmpresa(ctx context.Context, idEmpresa int64) ([]*historicoapp.HistoricoResponse, error)
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/historicos")
	{
		g.POST("", c.Register)
		g.GET("", c.List)
		g.POST("/:id/publish", c.Publish)
	}
}

func (c *Controller) Register(ctx *gin.Context) {
	var req historicoapp.RegistrarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	h, err := c.service.Registrar(ctxutil.Context(ctx), req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, h, "Histórico registrado")
}

// List needs ?usuario_cod= or ?empresa_id=.
func (c *Controller) List(ctx *gin.Context) {
	usuarioCod, byUsuario, err := ctxutil.QueryID(ctx, "usuario_cod")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	empresaID, byEmpresa, err := ctxutil.QueryID(ctx, "empresa_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	var list []*historicoapp.HistoricoResponse
	switch {
	case byUsuario:
		list, err = c.service.ListarPorUsuario(ctxutil.Context(ctx), usuarioCod)
	case byEmpresa:
		list, err = c.service.ListarPorEmpresa(ctxutil.Context(ctx), empresaID)
	default:
		err = shared.NewArgumentError("usuario_cod", "informe usuario_cod ou empresa_id")
	}
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, list, "Históricos encontrados")
}

func (c *Controller) Publish(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if err := c.service.PublicarEvento(ctxutil.Context(ctx), id, ctxutil.Actor(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "Evento publicado")
}
