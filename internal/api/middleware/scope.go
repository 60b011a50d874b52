package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

// Echo context keys set by this package.
const (
	ContextKeyAuth     = "auth"
	ContextKeyIdentity = "identity"
)

// ContextSource returns the auth context for a storage scope.
type ContextSource func(scope string) ports.AuthContext

// ScopeConfig controls the storage scope cookie.
type ScopeConfig struct {
	CookieName string
	Secure     bool
}

// Scope identifies the client's storage scope from its cookie, issuing a new
// one when absent or malformed, and injects the scope's auth context.
func Scope(cfg ScopeConfig, source ContextSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope := ""
			if ck, err := c.Cookie(cfg.CookieName); err == nil {
				if id, err := uuid.Parse(ck.Value); err == nil {
					scope = id.String()
				}
			}

			if scope == "" {
				scope = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    scope,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextKeyAuth, source(scope))
			return next(c)
		}
	}
}

// AuthFrom returns the auth context injected by Scope, or nil.
func AuthFrom(c echo.Context) ports.AuthContext {
	auth, _ := c.Get(ContextKeyAuth).(ports.AuthContext)
	return auth
}
