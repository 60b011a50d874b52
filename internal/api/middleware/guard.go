package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prismatech/marketing-dashboard/internal/api/metrics"
	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/guard"
)

// GuardConfig holds the redirect targets of the route guard.
type GuardConfig struct {
	LoginPath        string
	UnauthorizedPath string
	// ReadyWait bounds how long a request waits for the session to finish
	// rehydrating before it is answered as pending.
	ReadyWait time.Duration
}

type loadingResponse struct {
	Status string `json:"status"`
}

// Guard enforces req on every request: pending sessions get a loading
// response, anonymous users are sent to login with the original destination,
// and identities lacking the role are sent to the unauthorized page.
func Guard(cfg GuardConfig, req guard.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var s domain.Session
			if auth := AuthFrom(c); auth != nil {
				waitReady(c, auth.Ready(), cfg.ReadyWait)
				s = auth.State()
			}

			decision := guard.Evaluate(s, req)
			metrics.GuardDecisionsTotal.WithLabelValues(c.Path(), decision.String()).Inc()

			switch decision {
			case guard.Pending:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusAccepted, loadingResponse{Status: "loading"})
			case guard.Unauthenticated:
				from := c.Request().URL.RequestURI()
				return c.Redirect(http.StatusFound, cfg.LoginPath+"?from="+url.QueryEscape(from))
			case guard.Forbidden:
				return c.Redirect(http.StatusFound, cfg.UnauthorizedPath)
			}

			c.Set(ContextKeyIdentity, s.Identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity admitted by Guard, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	id, _ := c.Get(ContextKeyIdentity).(*domain.Identity)
	return id
}

func waitReady(c echo.Context, ready <-chan struct{}, wait time.Duration) {
	if wait <= 0 {
		return
	}
	t := time.NewTimer(wait)
	defer t.Stop()

	select {
	case <-ready:
	case <-t.C:
	case <-c.Request().Context().Done():
	}
}
