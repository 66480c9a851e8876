package usuario

import (
	"context"

	"github.com/gin-gonic/gin"

	"ecommerce/api/ctxutil"
	"ecommerce/api/response"
	usuarioapp "ecommerce/application/usuario"
)

type Service interface {
	Cadastrar(ctx context.Context, req usuarioapp.CadastrarRequest, by string) (*usuarioapp.UsuarioResponse, error)
	Atualizar(ctx context.Context, id int64, req usuarioapp.PerfilRequest, by string) (*usuarioapp.UsuarioResponse, error)
	ValidarAcesso(ctx context.Context, email, senha string) (*usuarioapp.UsuarioResponse, error)
	VerificarPermissao(ctx context.Context, usuarioID, varejistaID int64) (bool, error)
	AlterarSenha(ctx context.Context, id int64, req usuarioapp.AlterarSenhaRequest, by string) error
	Obter(ctx context.Context, id int64) (*usuarioapp.UsuarioResponse, error)
	ListarAtivos(ctx context.Context) ([]*usuarioapp.UsuarioResponse, error)
	ListarPorVarejista(ctx context.Context, varejistaID int64) ([]*usuarioapp.UsuarioResponse, error)
	Ativar(ctx context.Context, id int64, by string) error
	Desativar(ctx context.Context, id int64, by string) error
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/login", c.Login)

	g := router.Group("/usuarios")
	{
		g.POST("", c.Create)
		g.GET("", c.List)
		g.GET("/:id", c.Get)
		g.PUT("/:id", c.Update)
		g.PUT("/:id/senha", c.ChangePassword)
		g.POST("/:id/activate", c.Activate)
		g.POST("/:id/deactivate", c.Deactivate)
		g.GET("/:id/varejistas/:varejistaId/permission", c.Permission)
	}
}

func (c *Controller) Create(ctx *gin.Context) {
	var req usuarioapp.CadastrarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	u, err := c.service.Cadastrar(ctxutil.Context(ctx), req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, u, "Usuário cadastrado com sucesso")
}

// List answers the active users, or those of ?varejista_id=.
func (c *Controller) List(ctx *gin.Context) {
	reqCtx := ctxutil.Context(ctx)

	varejistaID, byVarejista, err := ctxutil.QueryID(ctx, "varejista_id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	var list []*usuarioapp.UsuarioResponse
	if byVarejista {
		list, err = c.service.ListarPorVarejista(reqCtx, varejistaID)
	} else {
		list, err = c.service.ListarAtivos(reqCtx)
	}
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, list, "Usuários encontrados")
}

func (c *Controller) Get(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	u, err := c.service.Obter(ctxutil.Context(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, u, "Usuário encontrado")
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	var req usuarioapp.PerfilRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	u, err := c.service.Atualizar(ctxutil.Context(ctx), id, req, ctxutil.Actor(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, u, "Usuário atualizado com sucesso")
}

func (c *Controller) Login(ctx *gin.Context) {
	var req usuarioapp.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	u, err := c.service.ValidarAcesso(ctxutil.Context(ctx), req.Email, req.Senha)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, u, "Acesso autorizado")
}

func (c *Controller) ChangePassword(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	var req usuarioapp.AlterarSenhaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBadRequest(ctx, err)
		return
	}

	if err := c.service.AlterarSenha(ctxutil.Context(ctx), id, req, ctxutil.Actor(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "Senha alterada com sucesso")
}

func (c *Controller) Activate(ctx *gin.Context) {
	c.setActive(ctx, c.service.Ativar, "Usuário ativado")
}

func (c *Controller) Deactivate(ctx *gin.Context) {
	c.setActive(ctx, c.service.Desativar, "Usuário desativado")
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

func (c *Controller) Permission(ctx *gin.Context) {
	usuarioID, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	varejistaID, err := ctxutil.ParamID(ctx, "varejistaId")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ok, err := c.service.VerificarPermissao(ctxutil.Context(ctx), usuarioID, varejistaID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, gin.H{"permitido": ok}, "Permissão verificada")
}
