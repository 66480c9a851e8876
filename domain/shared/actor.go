package shared

import (
	"context"
	"strings"
)

// DefaultActor is used when no user is attached to the context.
const DefaultActor = "sistema"

type actorKey struct{}

func ContextWithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, strings.TrimSpace(actor))
}

// ActorFromContext returns the user acting on ctx, or DefaultActor.
func ActorFromContext(ctx context.Context) string {
	if ctx != nil {
		if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
			return actor
		}
	}
	return DefaultActor
}
