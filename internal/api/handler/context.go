package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prismatech/marketing-dashboard/internal/api/middleware"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

const defaultRedirect = "/dashboard"

// ctxAuth extracts the auth context injected by the Scope middleware. Its
// absence means the route was mounted without Scope, a wiring bug.
func ctxAuth(c echo.Context) (ports.AuthContext, error) {
	auth := middleware.AuthFrom(c)
	if auth == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session scope unavailable")
	}
	return auth, nil
}

// safeRedirect returns from when it is a local path, and the dashboard
// otherwise. Protocol-relative and absolute URLs are never echoed back.
func safeRedirect(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return defaultRedirect
	}
	switch path := strings.SplitN(from, "?", 2)[0]; path {
	case "/login", "/signup":
		return defaultRedirect
	}
	return from
}
