package domain

import "time"

// SegmentPerformance is one row of the audience performance table: how a
// campaign did with a single audience segment. Rates are in percent.
type SegmentPerformance struct {
	Campaign       string  `json:"campaign"`
	Segment        string  `json:"segment"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conv_rate"`
	ROI            float64 `json:"roi"`
}

// Level grades the impact or effort of a recommendation.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// Recommendation is a strategy suggestion derived from audience data.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      Level    `json:"impact"`
	Effort      Level    `json:"effort"`
	Tags        []string `json:"tags"`
}

// ActivityType groups entries of the reports activity feed.
type ActivityType string

const (
	ActivityCampaign   ActivityType = "campaign"
	ActivityAudience   ActivityType = "audience"
	ActivityKindMetric ActivityType = "metric"
	ActivitySystem     ActivityType = "system"
)

// ActivityMetric is a figure attached to an activity. Change is the relative
// change in whole percent; 0 means unchanged.
type ActivityMetric struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change int    `json:"change"`
}

// Activity is an entry of the reports activity feed.
type Activity struct {
	ID          int              `json:"id"`
	Type        ActivityType     `json:"type"`
	Status      string           `json:"status"` // success, info, warning, error
	Title       string           `json:"title"`
	Description string           `json:"description"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Metrics     []ActivityMetric `json:"metrics,omitempty"`
	Actions     []string         `json:"actions,omitempty"`
}
