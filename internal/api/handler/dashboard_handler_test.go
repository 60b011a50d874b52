package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/service"
)

func TestDashboardHandler_Campaigns(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), nil)

	c, rec := newJSONContext(e, http.MethodGet, "/campaigns?platform=Email&sort=budget&order=desc", "", nil)
	if err := h.Campaigns(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp campaignListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 2 || resp.Campaigns[0].Name != "Summer Sale" || resp.Campaigns[0].StartDate != "2025-06-01" {
		t.Fatalf("unexpected campaigns: %+v", resp)
	}
	if resp.Campaigns[0].CTR != 7.1 {
		t.Fatalf("ctr = %v, want 7.1", resp.Campaigns[0].CTR)
	}
}

func TestDashboardHandler_CreateCampaign(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), nil)

	body := `{"name":"Autumn Push","platform":"Social","budget":2500,"start_date":"2025-10-01","end_date":"2025-10-31"}`
	c, rec := newJSONContext(e, http.MethodPost, "/campaigns", body, nil)
	if err := h.CreateCampaign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp campaignResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != 6 || resp.Status != "Scheduled" {
		t.Fatalf("unexpected campaign: %+v", resp)
	}
}

func TestDashboardHandler_CreateCampaign_Invalid(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), nil)

	cases := map[string]string{
		"bad platform": `{"name":"X","platform":"Radio","budget":1,"start_date":"2025-10-01","end_date":"2025-10-31"}`,
		"zero budget":  `{"name":"X","platform":"Email","budget":0,"start_date":"2025-10-01","end_date":"2025-10-31"}`,
		"bad date":     `{"name":"X","platform":"Email","budget":1,"start_date":"10/01/2025","end_date":"2025-10-31"}`,
		"end first":    `{"name":"X","platform":"Email","budget":1,"start_date":"2025-10-31","end_date":"2025-10-01"}`,
	}
	for name, body := range cases {
		c, rec := newJSONContext(e, http.MethodPost, "/campaigns", body, nil)
		_ = h.CreateCampaign(c)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", name, rec.Code)
		}
	}
}

func TestDashboardHandler_ABTest(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), nil)

	c, rec := newJSONContext(e, http.MethodGet, "/ab-testing/1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.ABTest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"winner":"B"`) || !strings.Contains(rec.Body.String(), `"improvement":23`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	for id, want := range map[string]int{"99": http.StatusNotFound, "abc": http.StatusBadRequest} {
		c, rec := newJSONContext(e, http.MethodGet, "/ab-testing/"+id, "", nil)
		c.SetParamNames("id")
		c.SetParamValues(id)
		_ = h.ABTest(c)
		if rec.Code != want {
			t.Errorf("id %s: expected %d, got %d", id, want, rec.Code)
		}
	}
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), nil)

	c, rec := newJSONContext(e, http.MethodGet, "/dashboard", "", nil)
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"active":3`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

type recordingNotifier struct {
	notices []domain.Notice
}

func (n *recordingNotifier) Notify(notice domain.Notice) {
	n.notices = append(n.notices, notice)
}

func TestDashboardHandler_CreateCampaign_Notifies(t *testing.T) {
	e := newTestEcho()
	n := &recordingNotifier{}
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), n)

	body := `{"name":"Autumn Push","platform":"Social","budget":2500,"start_date":"2025-10-01","end_date":"2025-10-31"}`
	c, _ := newJSONContext(e, http.MethodPost, "/campaigns", body, &stubAuthContext{scope: "scope-7"})
	if err := h.CreateCampaign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(n.notices) != 1 {
		t.Fatalf("expected one notice, got %d", len(n.notices))
	}
	got := n.notices[0]
	if got.Scope != "scope-7" || got.Title != "Campaign created" || got.Message != `Campaign "Autumn Push" has been scheduled.` {
		t.Fatalf("unexpected notice: %+v", got)
	}
}

func TestDashboardHandler_CreateTest(t *testing.T) {
	e := newTestEcho()
	n := &recordingNotifier{}
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), n)

	body := `{"test_name":"Banner Copy","target_audience":"New visitors",
		"variant_a":{"title":"Save 10%","content":"Today only"},
		"variant_b":{"title":"Free shipping","content":"On every order"}}`
	c, rec := newJSONContext(e, http.MethodPost, "/ab-testing", body, &stubAuthContext{scope: "scope-7"})
	if err := h.CreateTest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp abTestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 3 || resp.DurationDays != 14 || resp.Winner != "" || resp.VariantB.Title != "Free shipping" {
		t.Fatalf("unexpected test: %+v", resp)
	}

	if len(n.notices) != 1 || n.notices[0].Title != "A/B Test Created" ||
		n.notices[0].Message != `Your test "Banner Copy" has been set up and will start running shortly.` {
		t.Fatalf("unexpected notices: %+v", n.notices)
	}
}

func TestDashboardHandler_CreateTest_Invalid(t *testing.T) {
	e := newTestEcho()
	n := &recordingNotifier{}
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), n)

	cases := map[string]string{
		"no name":      `{"target_audience":"All","variant_a":{"title":"a","content":"a"},"variant_b":{"title":"b","content":"b"}}`,
		"no variant b": `{"test_name":"X","target_audience":"All","variant_a":{"title":"a","content":"a"}}`,
		"too long":     `{"test_name":"X","target_audience":"All","duration":365,"variant_a":{"title":"a","content":"a"},"variant_b":{"title":"b","content":"b"}}`,
	}
	for name, body := range cases {
		c, rec := newJSONContext(e, http.MethodPost, "/ab-testing", body, nil)
		_ = h.CreateTest(c)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", name, rec.Code)
		}
	}
	if len(n.notices) != 0 {
		t.Fatalf("rejected tests should not notify, got %+v", n.notices)
	}
}

func TestDashboardHandler_Insights(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), nil)

	cases := []struct {
		query     string
		wantRows  int
		wantFirst string
	}{
		{"", 8, "Abandoned Cart"},
		{"?segment=All%20Segments", 8, "Abandoned Cart"},
		{"?segment=Urban", 1, "Urban"},
		{"?sort=ctr&order=asc", 8, "Age 35-44"},
		{"?sort=conv_rate", 8, "Abandoned Cart"},
	}
	for _, tc := range cases {
		c, rec := newJSONContext(e, http.MethodGet, "/insights"+tc.query, "", nil)
		if err := h.Insights(c); err != nil {
			t.Fatalf("%q: handler error: %v", tc.query, err)
		}
		var resp insightsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%q: invalid json: %v", tc.query, err)
		}
		if len(resp.Performance) != tc.wantRows || resp.Performance[0].Segment != tc.wantFirst {
			t.Errorf("%q: got %d rows starting with %+v", tc.query, len(resp.Performance), resp.Performance[0])
		}
		if len(resp.Segments) != 11 || len(resp.Recommendations) != 4 {
			t.Errorf("%q: unexpected segments/recommendations: %d/%d", tc.query, len(resp.Segments), len(resp.Recommendations))
		}
	}

	c, rec := newJSONContext(e, http.MethodGet, "/insights?sort=budget", "", nil)
	_ = h.Insights(c)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown sort field, got %d", rec.Code)
	}
}

func TestDashboardHandler_Reports(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(service.NewDashboardService(zerolog.Nop()), nil)

	cases := map[string]int{
		"":                          7,
		"?period=today":             4,
		"?period=week":              6,
		"?type=metric":              2,
		"?q=VARIANT":                1,
		"?period=today&type=system": 1,
	}
	for query, want := range cases {
		c, rec := newJSONContext(e, http.MethodGet, "/reports"+query, "", nil)
		if err := h.Reports(c); err != nil {
			t.Fatalf("%q: handler error: %v", query, err)
		}
		var resp reportsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%q: invalid json: %v", query, err)
		}
		if resp.Total != want {
			t.Errorf("%q: expected %d activities, got %d", query, want, resp.Total)
		}
		if len(resp.Summary.Recommendations) != 4 {
			t.Errorf("%q: summary missing", query)
		}
	}

	c, rec := newJSONContext(e, http.MethodGet, "/reports?period=month", "", nil)
	_ = h.Reports(c)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown period, got %d", rec.Code)
	}
}
