package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const actorKey contextKey = "actor"

// Actor is the authenticated caller, resolved once by the auth middleware
// and passed explicitly into every service operation.
type Actor struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

func SetActorContext(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func GetActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.ID == uuid.Nil {
		return Actor{}, false
	}
	return actor, true
}
