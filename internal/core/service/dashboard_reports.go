package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

const allSegments = "All Segments"

var audienceSegments = []string{
	allSegments,
	"Age 18-24",
	"Age 25-34",
	"Age 35-44",
	"Age 45+",
	"Male",
	"Female",
	"Urban",
	"Suburban",
	"High Income",
	"Previous Customers",
}

// Insights returns the segment performance table filtered to one segment and
// sorted by the requested field, descending unless filter.Asc is set.
func (s *DashboardService) Insights(_ context.Context, f ports.InsightsFilter) (*ports.InsightsReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]domain.SegmentPerformance, 0, len(s.performance))
	for _, p := range s.performance {
		if f.Segment != "" && f.Segment != allSegments && !strings.EqualFold(f.Segment, p.Segment) {
			continue
		}
		rows = append(rows, p)
	}

	less := performanceOrder(f.SortBy)
	sort.SliceStable(rows, func(i, j int) bool {
		if f.Asc {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})

	return &ports.InsightsReport{
		Segments:        append([]string(nil), audienceSegments...),
		Performance:     rows,
		Recommendations: seedRecommendations(),
	}, nil
}

// Reports returns the activity feed, newest first, narrowed by period, type
// and search text.
func (s *DashboardService) Reports(_ context.Context, f ports.ReportFilter) (*ports.ActivityReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		if !withinPeriod(f.Period, now.Sub(a.OccurredAt)) {
			continue
		}
		if f.Type != "" && f.Type != "all" && f.Type != string(a.Type) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Description), search) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })

	return &ports.ActivityReport{Activities: out, Summary: seedReportSummary()}, nil
}

func withinPeriod(period string, age time.Duration) bool {
	switch period {
	case "today":
		return age < 24*time.Hour
	case "week":
		return age < 7*24*time.Hour
	default:
		return true
	}
}

func performanceOrder(field string) func(a, b domain.SegmentPerformance) bool {
	switch field {
	case "campaign":
		return func(a, b domain.SegmentPerformance) bool { return a.Campaign < b.Campaign }
	case "segment":
		return func(a, b domain.SegmentPerformance) bool { return a.Segment < b.Segment }
	case "ctr":
		return func(a, b domain.SegmentPerformance) bool { return a.CTR < b.CTR }
	case "conv_rate":
		return func(a, b domain.SegmentPerformance) bool { return a.ConversionRate < b.ConversionRate }
	default:
		return func(a, b domain.SegmentPerformance) bool { return a.ROI < b.ROI }
	}
}

func seedPerformance() []domain.SegmentPerformance {
	return []domain.SegmentPerformance{
		{Campaign: "Summer Sale", Segment: "Age 25-34", CTR: 4.2, ConversionRate: 3.8, ROI: 2.7},
		{Campaign: "Summer Sale", Segment: "Age 35-44", CTR: 3.1, ConversionRate: 2.9, ROI: 1.8},
		{Campaign: "Product Launch", Segment: "High Income", CTR: 5.7, ConversionRate: 4.2, ROI: 3.1},
		{Campaign: "Product Launch", Segment: "Previous Customers", CTR: 7.3, ConversionRate: 5.8, ROI: 3.6},
		{Campaign: "Brand Awareness", Segment: "Age 18-24", CTR: 3.8, ConversionRate: 1.5, ROI: 1.2},
		{Campaign: "Brand Awareness", Segment: "Urban", CTR: 4.5, ConversionRate: 2.3, ROI: 1.7},
		{Campaign: "Retargeting", Segment: "Abandoned Cart", CTR: 8.2, ConversionRate: 6.1, ROI: 4.3},
		{Campaign: "Retargeting", Segment: "Product Viewers", CTR: 6.5, ConversionRate: 4.2, ROI: 3.2},
	}
}

func seedRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Title:       "Increase Social Ad Frequency for Age 25-34",
			Description: "This demographic shows 2.3x higher engagement but current frequency is below optimal levels.",
			Impact:      domain.LevelHigh, Effort: domain.LevelLow,
			Tags: []string{"Social Media", "Frequency Optimization", "Young Adults"},
		},
		{
			Title:       "Create Loyalty Program for High-Value Customers",
			Description: "Analysis shows repeat purchase rate could increase by 20% with structured loyalty incentives.",
			Impact:      domain.LevelHigh, Effort: domain.LevelMedium,
			Tags: []string{"Customer Retention", "Loyalty", "High LTV"},
		},
		{
			Title:       "Adjust Email Send Times for Urban Segment",
			Description: "Open rates peak 2-3 hours later than suburban segment. Adjust send time to 8PM local time.",
			Impact:      domain.LevelMedium, Effort: domain.LevelLow,
			Tags: []string{"Email Marketing", "Timing Optimization", "Urban"},
		},
		{
			Title:       "Develop Video Content for Product Tutorials",
			Description: "Analysis shows 45% higher conversion when prospects view tutorial content before purchase.",
			Impact:      domain.LevelMedium, Effort: domain.LevelHigh,
			Tags: []string{"Content Strategy", "Video", "Conversion Optimization"},
		},
	}
}

func seedActivities(now time.Time) []domain.Activity {
	ago := func(d time.Duration) time.Time { return now.Add(-d).UTC() }
	return []domain.Activity{
		{
			ID: 1, Type: domain.ActivityCampaign, Status: "success",
			Title:       "Summer Sale Campaign Completed",
			Description: "Campaign ran for 45 days and achieved 128% of target ROAS.",
			OccurredAt:  ago(2 * time.Hour),
			Metrics: []domain.ActivityMetric{
				{Name: "Impressions", Value: "1.2M", Change: 15},
				{Name: "Clicks", Value: "85.4K", Change: 23},
				{Name: "Conversions", Value: "3,241", Change: 18},
				{Name: "ROAS", Value: "2.8x", Change: 12},
			},
			Actions: []string{"View Details", "Download Report"},
		},
		{
			ID: 2, Type: domain.ActivityAudience, Status: "info",
			Title:       "New Audience Segment Identified",
			Description: "AI detected a high-performing audience segment: Urban professionals, age 28-35.",
			OccurredAt:  ago(4 * time.Hour),
			Actions:     []string{"Create Segment", "Analyze Further"},
		},
		{
			ID: 3, Type: domain.ActivityKindMetric, Status: "warning",
			Title:       "Conversion Rate Declining",
			Description: "Product Launch campaign showing 12% lower conversion rate over the past week.",
			OccurredAt:  ago(8 * time.Hour),
			Metrics: []domain.ActivityMetric{
				{Name: "Previous", Value: "4.8%"},
				{Name: "Current", Value: "4.2%", Change: -12},
			},
			Actions: []string{"Investigate", "Adjust Campaign"},
		},
		{
			ID: 4, Type: domain.ActivitySystem, Status: "error",
			Title:       "API Connection Error",
			Description: "Connection to analytics service was interrupted. Some data may be delayed.",
			OccurredAt:  ago(11 * time.Hour),
			Actions:     []string{"Check Status", "Reconnect"},
		},
		{
			ID: 5, Type: domain.ActivityCampaign, Status: "success",
			Title:       "A/B Test Completed",
			Description: "Email subject line test completed with clear winner: Variant B outperformed by 23%.",
			OccurredAt:  ago(26 * time.Hour),
			Metrics: []domain.ActivityMetric{
				{Name: "Variant A CTR", Value: "3.2%"},
				{Name: "Variant B CTR", Value: "3.9%", Change: 23},
			},
			Actions: []string{"View Results", "Apply to Campaigns"},
		},
		{
			ID: 6, Type: domain.ActivityKindMetric, Status: "info",
			Title:       "ROI Milestone Reached",
			Description: "Brand Awareness campaign has surpassed 200% ROI target.",
			OccurredAt:  ago(50 * time.Hour),
			Metrics: []domain.ActivityMetric{
				{Name: "Target ROI", Value: "2.0x"},
				{Name: "Current ROI", Value: "2.3x", Change: 15},
			},
			Actions: []string{"View Campaign"},
		},
		{
			ID: 7, Type: domain.ActivityCampaign, Status: "success",
			Title:       "Loyalty Rewards Campaign Paused",
			Description: "Campaign paused after reaching its spring spend cap.",
			OccurredAt:  ago(40 * 24 * time.Hour),
			Actions:     []string{"View Campaign"},
		},
	}
}

func seedReportSummary() ports.ReportSummary {
	return ports.ReportSummary{
		Positives: []string{
			"Email campaigns consistently outperformed industry benchmarks by 18%",
			"Social media targeting improvements led to 32% higher CTR",
			"Retargeting campaigns achieved 2.7x ROI, up from 2.1x last quarter",
		},
		Negatives: []string{
			"Mobile ad performance lagging behind desktop by 24%",
			"Video completion rates declining month-over-month",
			"Weekend campaign performance consistently underperforms weekdays",
		},
		Recommendations: []string{
			"Increase budget allocation to email retargeting by 20%",
			"Test new creative formats for mobile ad placements",
			"Develop specific weekend promotions to boost engagement",
			"Expand high-performing lookalike audiences to more campaigns",
		},
	}
}
