package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prismatech/marketing-dashboard/internal/api/middleware"
	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

type DashboardHandler struct {
	svc      ports.DashboardService
	notifier ports.Notifier
}

// NewDashboardHandler returns a DashboardHandler. notifier may be nil, in
// which case create actions send no notices.
func NewDashboardHandler(svc ports.DashboardService, notifier ports.Notifier) *DashboardHandler {
	return &DashboardHandler{svc: svc, notifier: notifier}
}

// Dashboard returns the headline campaign numbers.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.CampaignSummary
// @Failure      302  "redirect to /login"
// @Router       /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	sum, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}

// Campaigns lists campaigns.
//
// @Summary      List campaigns
// @Tags         dashboard
// @Produce      json
// @Param        q         query     string  false  "Name search"
// @Param        status    query     string  false  "Status filter (All for any)"
// @Param        platform  query     string  false  "Platform filter (All for any)"
// @Param        sort      query     string  false  "name, budget, spent, roi, ctr or start_date"
// @Param        order     query     string  false  "asc or desc"
// @Success      200  {object}  campaignListResponse
// @Router       /campaigns [get]
func (h *DashboardHandler) Campaigns(c echo.Context) error {
	filter := ports.CampaignFilter{
		Search:   c.QueryParam("q"),
		Status:   c.QueryParam("status"),
		Platform: c.QueryParam("platform"),
		SortBy:   c.QueryParam("sort"),
		Desc:     c.QueryParam("order") == "desc",
	}

	campaigns, err := h.svc.ListCampaigns(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCampaignListResponse(campaigns))
}

// CreateCampaign schedules a new campaign. Marketers and admins only.
//
// @Summary      Create campaign
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      createCampaignRequest  true  "Campaign"
// @Success      201   {object}  campaignResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /campaigns [post]
func (h *DashboardHandler) CreateCampaign(c echo.Context) error {
	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)
	if end.Before(start) {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "end_date must not be before start_date"})
	}

	campaign, err := h.svc.CreateCampaign(c.Request().Context(), ports.CreateCampaignInput{
		Name:      req.Name,
		Platform:  req.Platform,
		Budget:    req.Budget,
		StartDate: start,
		EndDate:   end,
		Segments:  req.Segments,
	})
	if err != nil {
		return err
	}

	h.notify(c, domain.Notice{
		Title:   "Campaign created",
		Message: fmt.Sprintf(`Campaign "%s" has been scheduled.`, campaign.Name),
	})
	return c.JSON(http.StatusCreated, toCampaignResponse(*campaign))
}

// ABTests lists A/B tests with their winners.
//
// @Summary      List A/B tests
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  abTestListResponse
// @Router       /ab-testing [get]
func (h *DashboardHandler) ABTests(c echo.Context) error {
	results, err := h.svc.ListTests(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]abTestResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toABTestResponse(r))
	}
	return c.JSON(http.StatusOK, abTestListResponse{Tests: out})
}

// ABTest returns a single A/B test.
//
// @Summary      Get A/B test
// @Tags         dashboard
// @Produce      json
// @Param        id   path      int  true  "Test ID"
// @Success      200  {object}  abTestResponse
// @Failure      404  {object}  errorResponse
// @Router       /ab-testing/{id} [get]
func (h *DashboardHandler) ABTest(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid test id"})
	}

	result, err := h.svc.GetTest(c.Request().Context(), id)
	if errors.Is(err, domain.ErrTestNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "test not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toABTestResponse(*result))
}

// CreateTest sets up a new A/B test. Marketers and admins only.
//
// @Summary      Create A/B test
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      createTestRequest  true  "Test"
// @Success      201   {object}  abTestResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /ab-testing [post]
func (h *DashboardHandler) CreateTest(c echo.Context) error {
	var req createTestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	result, err := h.svc.CreateTest(c.Request().Context(), ports.CreateTestInput{
		Name:           req.Name,
		TargetAudience: req.TargetAudience,
		DurationDays:   req.DurationDays,
		VariantA:       ports.VariantInput{Title: req.VariantA.Title, Content: req.VariantA.Content},
		VariantB:       ports.VariantInput{Title: req.VariantB.Title, Content: req.VariantB.Content},
	})
	if err != nil {
		return err
	}

	h.notify(c, domain.Notice{
		Title:   "A/B Test Created",
		Message: fmt.Sprintf(`Your test "%s" has been set up and will start running shortly.`, result.Test.Name),
	})
	return c.JSON(http.StatusCreated, toABTestResponse(*result))
}

// Insights returns audience segment performance and recommendations.
//
// @Summary      Audience insights
// @Tags         dashboard
// @Produce      json
// @Param        segment  query     string  false  "Segment (All Segments for any)"
// @Param        sort     query     string  false  "campaign, segment, ctr, conv_rate or roi"
// @Param        order    query     string  false  "asc or desc (default desc)"
// @Success      200  {object}  insightsResponse
// @Failure      422  {object}  errorResponse
// @Router       /insights [get]
func (h *DashboardHandler) Insights(c echo.Context) error {
	var q insightsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	report, err := h.svc.Insights(c.Request().Context(), ports.InsightsFilter{
		Segment: q.Segment,
		SortBy:  q.Sort,
		Asc:     q.Order == "asc",
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insightsResponse{
		Segments:        report.Segments,
		Performance:     report.Performance,
		Recommendations: report.Recommendations,
	})
}

// Reports returns the campaign activity feed and the written summary.
//
// @Summary      Reports
// @Tags         dashboard
// @Produce      json
// @Param        period  query     string  false  "all, today or week"
// @Param        type    query     string  false  "all, campaign, audience, metric or system"
// @Param        q       query     string  false  "Search in title and description"
// @Success      200  {object}  reportsResponse
// @Failure      422  {object}  errorResponse
// @Router       /reports [get]
func (h *DashboardHandler) Reports(c echo.Context) error {
	var q reportsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	report, err := h.svc.Reports(c.Request().Context(), ports.ReportFilter{
		Period: q.Period,
		Type:   q.Type,
		Search: q.Search,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReportsResponse(report))
}

// notify sends a toast to the caller's scope.
func (h *DashboardHandler) notify(c echo.Context, n domain.Notice) {
	auth := middleware.AuthFrom(c)
	if h.notifier == nil || auth == nil {
		return
	}
	n.Scope = auth.Scope()
	n.Severity = domain.SeverityDefault
	n.CreatedAt = time.Now().UTC()
	h.notifier.Notify(n)
}
