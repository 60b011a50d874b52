package ports

import (
	"context"
	"time"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

// CampaignFilter carries the list parameters of the campaigns page.
type CampaignFilter struct {
	Search   string // case-insensitive substring of the campaign name
	Status   string // "" or "All" = any status
	Platform string // "" or "All" = any platform
	SortBy   string // name, budget, spent, roi, ctr, start_date; default id
	Desc     bool
}

// CreateCampaignInput carries the fields of a new campaign.
type CreateCampaignInput struct {
	Name      string
	Platform  string
	Budget    float64
	StartDate time.Time
	EndDate   time.Time
	Segments  []string
}

// CampaignSummary aggregates the dashboard headline numbers.
type CampaignSummary struct {
	Campaigns      int     `json:"campaigns"`
	Active         int     `json:"active"`
	Budget         float64 `json:"budget"`
	Spent          float64 `json:"spent"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

// TestResult is an A/B test with its derived winner.
type TestResult struct {
	Test        domain.ABTest `json:"test"`
	CTRA        float64       `json:"ctr_a"`
	CTRB        float64       `json:"ctr_b"`
	Winner      string        `json:"winner,omitempty"` // "A", "B" or "" on a tie
	Improvement int           `json:"improvement"`      // whole percent
}

// VariantInput is one arm of a new A/B test.
type VariantInput struct {
	Title   string
	Content string
}

// CreateTestInput carries the fields of a new A/B test.
type CreateTestInput struct {
	Name           string
	TargetAudience string
	DurationDays   int // 0 selects the default duration
	VariantA       VariantInput
	VariantB       VariantInput
}

// InsightsFilter narrows and orders the segment performance table.
type InsightsFilter struct {
	Segment string // "" or "All Segments" = every segment
	SortBy  string // campaign, segment, ctr, conv_rate, roi; default roi
	Asc     bool   // descending unless set
}

// InsightsReport backs the audience insights page.
type InsightsReport struct {
	Segments        []string                    `json:"segments"`
	Performance     []domain.SegmentPerformance `json:"performance"`
	Recommendations []domain.Recommendation     `json:"recommendations"`
}

// ReportFilter narrows the activity feed of the reports page.
type ReportFilter struct {
	Period string // all, today (last 24h), week (last 7 days)
	Type   string // all or a domain.ActivityType
	Search string // case-insensitive substring of title or description
}

// ReportSummary is the written campaign summary shown next to the feed.
type ReportSummary struct {
	Positives       []string `json:"positives"`
	Negatives       []string `json:"negatives"`
	Recommendations []string `json:"recommendations"`
}

// ActivityReport backs the reports page.
type ActivityReport struct {
	Activities []domain.Activity `json:"activities"`
	Summary    ReportSummary     `json:"summary"`
}

// DashboardService serves the mock marketing data behind the protected pages.
type DashboardService interface {
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (*domain.Campaign, error)
	Summary(ctx context.Context) (*CampaignSummary, error)
	ListTests(ctx context.Context) ([]TestResult, error)
	GetTest(ctx context.Context, id int) (*TestResult, error)
	CreateTest(ctx context.Context, input CreateTestInput) (*TestResult, error)
	Insights(ctx context.Context, filter InsightsFilter) (*InsightsReport, error)
	Reports(ctx context.Context, filter ReportFilter) (*ActivityReport, error)
}
