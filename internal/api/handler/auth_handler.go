package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prismatech/marketing-dashboard/internal/api/metrics"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login authenticates the client's session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	auth, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	user, err := auth.Login(c.Request().Context(), req.Email, req.Password)
	metrics.AuthOperationDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}
	metrics.AuthOperationsTotal.WithLabelValues("login", "success").Inc()

	return c.JSON(http.StatusOK, authResponse{User: user, Redirect: safeRedirect(req.From)})
}

// Signup creates an account and logs the client in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	auth, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	user, err := auth.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	metrics.AuthOperationDuration.WithLabelValues("signup").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("signup", "failure").Inc()
		return err
	}
	metrics.AuthOperationsTotal.WithLabelValues("signup", "success").Inc()

	return c.JSON(http.StatusCreated, authResponse{User: user, Redirect: safeRedirect(req.From)})
}

// Logout clears the client's session. It always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	auth, err := ctxAuth(c)
	if err != nil {
		return err
	}

	auth.Logout(c.Request().Context())
	metrics.AuthOperationsTotal.WithLabelValues("logout", "success").Inc()
	return c.JSON(http.StatusOK, logoutResponse{Status: "logged_out"})
}

// Session reports the client's current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	auth, err := ctxAuth(c)
	if err != nil {
		return err
	}

	s := auth.State()
	return c.JSON(http.StatusOK, sessionResponse{
		User:            s.Identity,
		IsAuthenticated: s.IsAuthenticated(),
		IsLoading:       s.Loading,
	})
}
