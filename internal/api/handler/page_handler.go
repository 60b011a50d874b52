package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prismatech/marketing-dashboard/internal/api/middleware"
	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

// NoticeDrainer hands out the pending notices of a scope.
type NoticeDrainer interface {
	Drain(scope string) []domain.Notice
}

var (
	memberLinks = []link{
		{Label: "Dashboard", Href: "/dashboard"},
		{Label: "Campaigns", Href: "/campaigns"},
		{Label: "A/B Testing", Href: "/ab-testing"},
		{Label: "Insights", Href: "/insights"},
		{Label: "Reports", Href: "/reports"},
		{Label: "Settings", Href: "/settings"},
	}
	visitorLinks = []link{
		{Label: "Log in", Href: "/login"},
		{Label: "Sign up", Href: "/signup"},
	}
)

// PageHandler serves the navigation shell: public pages, protected page
// frames, the header and the toast inbox.
type PageHandler struct {
	inbox NoticeDrainer
}

func NewPageHandler(inbox NoticeDrainer) *PageHandler {
	return &PageHandler{inbox: inbox}
}

func (h *PageHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{
		Title:   "Prismatech",
		Message: "Marketing analytics for every campaign, test and channel.",
		Links:   []link{{Label: "Get started", Href: "/signup"}, {Label: "Log in", Href: "/login"}},
	})
}

func (h *PageHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, formResponse{
		Title:  "Log in",
		Action: "/auth/login",
		Fields: []formField{
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
		From:  c.QueryParam("from"),
		Links: []link{{Label: "Sign up", Href: "/signup"}},
	})
}

func (h *PageHandler) SignupPage(c echo.Context) error {
	return c.JSON(http.StatusOK, formResponse{
		Title:  "Create an account",
		Action: "/auth/signup",
		Fields: []formField{
			{Name: "name", Type: "text", Required: true},
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
		From:  c.QueryParam("from"),
		Links: []link{{Label: "Log in", Href: "/login"}},
	})
}

// Unauthorized is the Access Denied page the guard redirects to.
func (h *PageHandler) Unauthorized(c echo.Context) error {
	resp := unauthorizedResponse{
		Title:   "Access Denied",
		Message: "Sorry, you don't have permission to access this page. This area requires higher access privileges.",
		Links:   []link{{Label: "Return to Dashboard", Href: "/dashboard"}, {Label: "Go to Home", Href: "/"}},
	}
	if auth := middleware.AuthFrom(c); auth != nil {
		if user := auth.State().Identity; user != nil {
			resp.Detail = fmt.Sprintf("You are logged in as %s with %s role.", user.Name, user.Role)
		}
	}
	return c.JSON(http.StatusForbidden, resp)
}

// Nav returns the header for the current session.
//
// @Summary      Header navigation
// @Tags         shell
// @Produce      json
// @Success      200  {object}  navResponse
// @Router       /api/nav [get]
func (h *PageHandler) Nav(c echo.Context) error {
	auth, err := ctxAuth(c)
	if err != nil {
		return err
	}

	s := auth.State()
	if s.Identity == nil {
		return c.JSON(http.StatusOK, navResponse{Links: visitorLinks, Loading: s.Loading})
	}
	return c.JSON(http.StatusOK, navResponse{
		Links:   memberLinks,
		User:    s.Identity,
		Initial: s.Identity.Initial(),
		Loading: s.Loading,
	})
}

// Notifications drains the toast inbox of the caller's scope.
//
// @Summary      Pending notifications
// @Tags         shell
// @Produce      json
// @Success      200  {object}  notificationsResponse
// @Router       /api/notifications [get]
func (h *PageHandler) Notifications(c echo.Context) error {
	auth, err := ctxAuth(c)
	if err != nil {
		return err
	}

	pending := h.inbox.Drain(auth.Scope())
	out := make([]noticeResponse, 0, len(pending))
	for _, n := range pending {
		out = append(out, noticeResponse{
			Title:     n.Title,
			Message:   n.Message,
			Severity:  string(n.Severity),
			CreatedAt: n.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, notificationsResponse{Notifications: out})
}

func (h *PageHandler) Settings(c echo.Context) error {
	return c.JSON(http.StatusOK, settingsResponse{Title: "Settings", User: middleware.IdentityFrom(c)})
}

func (h *PageHandler) Admin(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Title: "Admin Panel"})
}
