package handler

import (
	"time"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

type createCampaignRequest struct {
	Name      string   `json:"name"       validate:"required,max=120"`
	Platform  string   `json:"platform"   validate:"required,oneof=Email Search Social Display"`
	Budget    float64  `json:"budget"     validate:"gt=0"`
	StartDate string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Segments  []string `json:"segments"`
}

type campaignResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Platform    string   `json:"platform"`
	Status      string   `json:"status"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      float64  `json:"budget"`
	Spent       float64  `json:"spent"`
	ROI         float64  `json:"roi"`
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	Conversions int64    `json:"conversions"`
	CTR         float64  `json:"ctr"`
	Segments    []string `json:"segments"`
}

type campaignListResponse struct {
	Campaigns []campaignResponse `json:"campaigns"`
	Total     int                `json:"total"`
}

type variantResponse struct {
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

type abTestResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"test_name"`
	TargetAudience  string          `json:"target_audience"`
	StartDate       string          `json:"start_date"`
	DurationDays    int             `json:"duration"`
	VariantA        variantResponse `json:"variant_a"`
	VariantB        variantResponse `json:"variant_b"`
	Winner          string          `json:"winner,omitempty"`
	Improvement     int             `json:"improvement"`
	Insights        string          `json:"ai_insights,omitempty"`
	Tags            []string        `json:"ai_tags,omitempty"`
	Recommendations []string        `json:"recommendations,omitempty"`
}

type abTestListResponse struct {
	Tests []abTestResponse `json:"tests"`
}

type variantRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type createTestRequest struct {
	Name           string         `json:"test_name"       validate:"required,max=120"`
	TargetAudience string         `json:"target_audience" validate:"required"`
	DurationDays   int            `json:"duration"        validate:"gte=0,lte=90"`
	VariantA       variantRequest `json:"variant_a"`
	VariantB       variantRequest `json:"variant_b"`
}

type insightsQuery struct {
	Segment string `query:"segment"`
	Sort    string `query:"sort"  validate:"omitempty,oneof=campaign segment ctr conv_rate roi"`
	Order   string `query:"order" validate:"omitempty,oneof=asc desc"`
}

type insightsResponse struct {
	Segments        []string                    `json:"segments"`
	Performance     []domain.SegmentPerformance `json:"performance"`
	Recommendations []domain.Recommendation     `json:"recommendations"`
}

type reportsQuery struct {
	Period string `query:"period" validate:"omitempty,oneof=all today week"`
	Type   string `query:"type"   validate:"omitempty,oneof=all campaign audience metric system"`
	Search string `query:"q"`
}

type activityResponse struct {
	ID          int                     `json:"id"`
	Type        string                  `json:"type"`
	Status      string                  `json:"status"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	OccurredAt  time.Time               `json:"occurred_at"`
	Metrics     []domain.ActivityMetric `json:"metrics,omitempty"`
	Actions     []string                `json:"actions,omitempty"`
}

type reportsResponse struct {
	Activities []activityResponse  `json:"activities"`
	Total      int                 `json:"total"`
	Summary    ports.ReportSummary `json:"summary"`
}
