package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce/api/broker"
	"ecommerce/api/health"
	"ecommerce/api/historico"
	"ecommerce/api/importacao"
	"ecommerce/api/loja"
	"ecommerce/api/middleware"
	"ecommerce/api/usuario"
	"ecommerce/api/varejista"
	"ecommerce/api/vinculo"
	"ecommerce/config"
)

// Controllers groups every endpoint set mounted under /api/v1.
type Controllers struct {
	Health     *health.Controller
	Broker     *broker.Controller
	Varejista  *varejista.Controller
	Loja       *loja.Controller
	Usuario    *usuario.Controller
	Vinculo    *vinculo.Controller
	Historico  *historico.Controller
	Importacao *importacao.Controller
}

type routes interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func (c Controllers) all() []routes {
	return []routes{
		c.Health, c.Broker, c.Varejista, c.Loja, c.Usuario, c.Vinculo, c.Historico, c.Importacao,
	}
}

type Router struct {
	engine      *gin.Engine
	config      *config.Config
	controllers Controllers
}

func NewRouter(cfg *config.Config, controllers Controllers) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// request id first so every later middleware can log it
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))
	engine.Use(middleware.ActorMiddleware())

	return &Router{
		engine:      engine,
		config:      cfg,
		controllers: controllers,
	}
}

func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	for _, ctrl := range r.controllers.all() {
		ctrl.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
