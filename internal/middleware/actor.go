package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const actorKey ctxKey = "actor"

// ActorHeader lleva el nombre del usuario que opera. No hay auth: es solo
// atribución para acted_by/created_by cuando el body no los trae.
const ActorHeader = "X-Actor"

// ActorContext copia el header X-Actor al contexto, si viene.
func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(ActorHeader))
		if actor == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetActor(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(actorKey).(string)
	return v, ok && v != ""
}

// ActorOr devuelve v si no está vacío; si no, el actor del contexto (o "").
func ActorOr(ctx context.Context, v string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	actor, _ := GetActor(ctx)
	return actor
}
