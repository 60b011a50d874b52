package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/prismatech/marketing-dashboard/docs"
	"github.com/prismatech/marketing-dashboard/internal/api/handler"
	"github.com/prismatech/marketing-dashboard/internal/api/metrics"
	"github.com/prismatech/marketing-dashboard/internal/api/middleware"
	"github.com/prismatech/marketing-dashboard/internal/core/authctx"
	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/guard"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/config"
)

// Dependencies are the collaborators the router wires into handlers.
// Mongo and Redis are nil when the matching driver is not configured.
type Dependencies struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Contexts  *authctx.Registry
	Dashboard ports.DashboardService
	Inbox     handler.NoticeDrainer
	Notifier  ports.Notifier
	Mongo     *mongo.Database
	Redis     *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	cfg := deps.Config
	log := deps.Logger

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	// Request metrics live in a registry owned by this router; /metrics serves
	// it together with the process-wide collectors.
	requestMetrics := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "prismatech",
		Registerer: requestMetrics,
	}))

	// --- Health checks, metrics and docs (no session) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{requestMetrics, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Everything below runs inside the client's session scope ---
	contexts := deps.Contexts
	scoped := e.Group("", middleware.Scope(
		middleware.ScopeConfig{CookieName: cfg.Session.CookieName, Secure: !cfg.IsDevelopment()},
		func(scope string) ports.AuthContext {
			auth := contexts.Get(scope)
			metrics.ActiveContexts.Set(float64(contexts.Len()))
			return auth
		},
	))

	authHandler := handler.NewAuthHandler()
	pageHandler := handler.NewPageHandler(deps.Inbox)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard, deps.Notifier)

	// --- Auth routes ---
	scoped.POST("/auth/login", authHandler.Login)
	scoped.POST("/auth/signup", authHandler.Signup)
	scoped.POST("/auth/logout", authHandler.Logout)
	scoped.GET("/auth/session", authHandler.Session)

	// --- Public pages and shell ---
	scoped.GET("/", pageHandler.Index)
	scoped.GET("/login", pageHandler.LoginPage)
	scoped.GET("/signup", pageHandler.SignupPage)
	scoped.GET("/unauthorized", pageHandler.Unauthorized)
	scoped.GET("/api/nav", pageHandler.Nav)
	scoped.GET("/api/notifications", pageHandler.Notifications)

	// --- Protected pages ---
	guardCfg := middleware.GuardConfig{
		LoginPath:        "/login",
		UnauthorizedPath: "/unauthorized",
		ReadyWait:        cfg.Session.ReadyWait,
	}
	members := middleware.Guard(guardCfg, guard.AnyRole())
	editors := middleware.Guard(guardCfg, guard.Roles(string(domain.RoleMarketer), string(domain.RoleAdmin)))

	scoped.GET("/dashboard", dashboardHandler.Dashboard, members)
	scoped.GET("/campaigns", dashboardHandler.Campaigns, members)
	scoped.POST("/campaigns", dashboardHandler.CreateCampaign, editors)
	scoped.GET("/ab-testing", dashboardHandler.ABTests, members)
	scoped.POST("/ab-testing", dashboardHandler.CreateTest, editors)
	scoped.GET("/ab-testing/:id", dashboardHandler.ABTest, members)
	scoped.GET("/insights", dashboardHandler.Insights, members)
	scoped.GET("/reports", dashboardHandler.Reports, members)
	scoped.GET("/settings", pageHandler.Settings, members)

	scoped.GET("/admin", pageHandler.Admin, middleware.Guard(guardCfg, guard.Roles(string(domain.RoleAdmin))))

	return e
}
