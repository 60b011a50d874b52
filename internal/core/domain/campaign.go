package domain

import "time"

// CampaignStatus is the lifecycle state of a marketing campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "Active"
	CampaignPaused    CampaignStatus = "Paused"
	CampaignScheduled CampaignStatus = "Scheduled"
	CampaignCompleted CampaignStatus = "Completed"
)

// Campaign is a single marketing campaign with its delivery metrics.
type Campaign struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Platform    string         `json:"platform"`
	Status      CampaignStatus `json:"status"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	ROI         float64        `json:"roi"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions int64          `json:"conversions"`
	Segments    []string       `json:"segments"`
}

// CTR returns the click-through rate in percent, or 0 without impressions.
func (c Campaign) CTR() float64 {
	return percent(c.Clicks, c.Impressions)
}

// Variant is one arm of an A/B test.
type Variant struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image,omitempty"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
	Conversions int64  `json:"conversions"`
}

// CTR returns the click-through rate in percent.
func (v Variant) CTR() float64 {
	return percent(v.Clicks, v.Impressions)
}

// ConversionRate returns conversions per click in percent.
func (v Variant) ConversionRate() float64 {
	return percent(v.Conversions, v.Clicks)
}

// ABTest is a finished or running A/B test between two variants.
type ABTest struct {
	ID              int       `json:"id"`
	Name            string    `json:"test_name"`
	TargetAudience  string    `json:"target_audience"`
	StartDate       time.Time `json:"start_date"`
	DurationDays    int       `json:"duration"`
	VariantA        Variant   `json:"variant_a"`
	VariantB        Variant   `json:"variant_b"`
	Insights        string    `json:"ai_insights,omitempty"`
	Tags            []string  `json:"ai_tags,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
}

func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
