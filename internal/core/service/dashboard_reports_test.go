package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newClockedService() (*DashboardService, *clock) {
	clk := &clock{t: time.Date(2025, 10, 16, 9, 30, 0, 0, time.UTC)}
	return newDashboardService(clk.now, zerolog.Nop()), clk
}

func TestDashboardService_CreateTest(t *testing.T) {
	svc, _ := newClockedService()

	r, err := svc.CreateTest(context.Background(), ports.CreateTestInput{
		Name:           "Hero Image Test",
		TargetAudience: "Returning visitors",
		VariantA:       ports.VariantInput{Title: "Lifestyle", Content: "People using the product"},
		VariantB:       ports.VariantInput{Title: "Studio", Content: "Product on white"},
	})
	if err != nil {
		t.Fatalf("CreateTest returned error: %v", err)
	}
	if r.Test.ID != 3 || r.Test.DurationDays != defaultTestDuration {
		t.Fatalf("unexpected test: %+v", r.Test)
	}
	if want := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC); !r.Test.StartDate.Equal(want) {
		t.Fatalf("start date = %v, want %v", r.Test.StartDate, want)
	}
	if r.Winner != "" || r.Improvement != 0 {
		t.Fatalf("a test without traffic has no winner, got %q/%d", r.Winner, r.Improvement)
	}

	got, err := svc.GetTest(context.Background(), 3)
	if err != nil || got.Test.Name != "Hero Image Test" {
		t.Fatalf("created test not retrievable: %v %+v", err, got)
	}

	r, _ = svc.CreateTest(context.Background(), ports.CreateTestInput{Name: "Short", DurationDays: 7})
	if r.Test.ID != 4 || r.Test.DurationDays != 7 {
		t.Fatalf("unexpected second test: %+v", r.Test)
	}
}

func TestDashboardService_Insights(t *testing.T) {
	svc, _ := newClockedService()

	cases := []struct {
		name   string
		filter ports.InsightsFilter
		want   []string // campaign/segment of each row
	}{
		{
			name:   "single segment",
			filter: ports.InsightsFilter{Segment: "previous customers"},
			want:   []string{"Product Launch/Previous Customers"},
		},
		{
			name:   "roi descending by default",
			filter: ports.InsightsFilter{Segment: "All Segments"},
			want: []string{
				"Retargeting/Abandoned Cart", "Product Launch/Previous Customers", "Retargeting/Product Viewers",
				"Product Launch/High Income", "Summer Sale/Age 25-34", "Summer Sale/Age 35-44",
				"Brand Awareness/Urban", "Brand Awareness/Age 18-24",
			},
		},
		{
			name:   "segment ascending",
			filter: ports.InsightsFilter{SortBy: "segment", Asc: true},
			want: []string{
				"Retargeting/Abandoned Cart", "Brand Awareness/Age 18-24", "Summer Sale/Age 25-34",
				"Summer Sale/Age 35-44", "Product Launch/High Income", "Product Launch/Previous Customers",
				"Retargeting/Product Viewers", "Brand Awareness/Urban",
			},
		},
		{
			name:   "unknown segment",
			filter: ports.InsightsFilter{Segment: "Martians"},
			want:   []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := svc.Insights(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("Insights returned error: %v", err)
			}
			got := make([]string, 0, len(report.Performance))
			for _, p := range report.Performance {
				got = append(got, p.Campaign+"/"+p.Segment)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("rows = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("rows = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestDashboardService_Reports(t *testing.T) {
	svc, clk := newClockedService()

	activityIDs := func(f ports.ReportFilter) []int {
		t.Helper()
		report, err := svc.Reports(context.Background(), f)
		if err != nil {
			t.Fatalf("Reports returned error: %v", err)
		}
		out := make([]int, 0, len(report.Activities))
		for _, a := range report.Activities {
			out = append(out, a.ID)
		}
		return out
	}

	cases := []struct {
		name   string
		filter ports.ReportFilter
		want   []int
	}{
		{"everything newest first", ports.ReportFilter{Period: "all"}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"today", ports.ReportFilter{Period: "today"}, []int{1, 2, 3, 4}},
		{"week", ports.ReportFilter{Period: "week"}, []int{1, 2, 3, 4, 5, 6}},
		{"type", ports.ReportFilter{Type: string(domain.ActivityCampaign)}, []int{1, 5, 7}},
		{"search title", ports.ReportFilter{Search: "roi milestone"}, []int{6}},
		{"search description", ports.ReportFilter{Search: "urban professionals"}, []int{2}},
		{"combined", ports.ReportFilter{Period: "week", Type: "metric", Search: "conversion"}, []int{3}},
	}
	for _, tc := range cases {
		if got := activityIDs(tc.filter); !equalInts(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	// Entries age out of the window as time passes.
	clk.t = clk.t.Add(23 * time.Hour)
	if got := activityIDs(ports.ReportFilter{Period: "today"}); len(got) != 0 {
		t.Fatalf("expected nothing from the last 24h, got %v", got)
	}
}
