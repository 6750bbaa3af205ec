package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitclub-admin/internal/domain"
)

const (
	KeyActor = "actor"
	KeyToken = "sessionToken"
)

type ActorResolver interface {
	CurrentActor(ctx context.Context, token string) (*domain.Actor, error)
}

// Session attaches the logged-in actor, if any. It never rejects a request;
// guarded actions decide that themselves.
func Session(res ActorResolver, cookieName string, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := TokenFrom(c, cookieName)
		if tok == "" {
			c.Next()
			return
		}
		a, err := res.CurrentActor(c.Request.Context(), tok)
		switch {
		case err == nil:
			c.Set(KeyActor, a)
			c.Set(KeyToken, tok)
		case errors.Is(err, domain.ErrAuthFailure):
			// stale or forged token: treat as anonymous
		default:
			l.Warn("resolve session", zap.Error(err), zap.String("rid", c.GetString(KeyRequestID)))
		}
		c.Next()
	}
}

// TokenFrom prefers the Authorization header over the cookie.
func TokenFrom(c *gin.Context, cookieName string) string {
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))
	}
	if v, err := c.Cookie(cookieName); err == nil {
		return v
	}
	return ""
}

func CurrentActor(c *gin.Context) *domain.Actor {
	v, ok := c.Get(KeyActor)
	if !ok {
		return nil
	}
	a, _ := v.(*domain.Actor)
	return a
}
