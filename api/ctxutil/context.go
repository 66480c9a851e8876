// Package ctxutil moves request-scoped values from gin into the
// context.Context the application layer sees.
package ctxutil

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ecommerce/api/response"
	"ecommerce/domain/shared"
	"ecommerce/pkg/logger"
)

// ActorKey is the gin context key holding the acting user.
const ActorKey = "actor"

// Context returns the request context carrying the request id and actor.
func Context(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if id := response.GetRequestID(c); id != "" {
		ctx = logger.ContextWithRequestID(ctx, id)
	}
	return shared.ContextWithActor(ctx, Actor(c))
}

// Actor is the user recorded in audit fields; shared.DefaultActor when the
// request did not name one.
func Actor(c *gin.Context) string {
	if v, ok := c.Get(ActorKey); ok {
		if actor, ok := v.(string); ok && actor != "" {
			return actor
		}
	}
	return shared.DefaultActor
}

// ParamID reads a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.NewArgumentError(name, "deve ser um número inteiro positivo")
	}
	return id, nil
}

// QueryID reads an optional positive numeric query parameter; ok is false
// when the parameter is absent.
func QueryID(c *gin.Context, name string) (id int64, ok bool, err error) {
	raw, present := c.GetQuery(name)
	if !present || strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, true, shared.NewArgumentError(name, "deve ser um número inteiro positivo")
	}
	return id, true, nil
}
