package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

const defaultTestDuration = 14

// DashboardService holds the in-memory campaign, A/B test and reporting
// catalog.
type DashboardService struct {
	mu          sync.RWMutex
	campaigns   []domain.Campaign
	tests       []domain.ABTest
	performance []domain.SegmentPerformance
	activities  []domain.Activity
	now         func() time.Time
	logger      zerolog.Logger
}

// NewDashboardService returns a service seeded with the demo catalog. The
// activity feed is dated relative to the moment of the call.
func NewDashboardService(logger zerolog.Logger) *DashboardService {
	return newDashboardService(time.Now, logger)
}

func newDashboardService(now func() time.Time, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		campaigns:   seedCampaigns(),
		tests:       seedTests(),
		performance: seedPerformance(),
		activities:  seedActivities(now()),
		now:         now,
		logger:      logger,
	}
}

// ListCampaigns filters and sorts the catalog. The result is a copy.
func (s *DashboardService) ListCampaigns(_ context.Context, f ports.CampaignFilter) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if !matchesOption(f.Status, string(c.Status)) || !matchesOption(f.Platform, c.Platform) {
			continue
		}
		out = append(out, c)
	}

	less := campaignOrder(f.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		if f.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

// CreateCampaign appends a scheduled campaign with the next free id.
func (s *DashboardService) CreateCampaign(_ context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, c := range s.campaigns {
		if c.ID >= next {
			next = c.ID + 1
		}
	}

	c := domain.Campaign{
		ID:        next,
		Name:      in.Name,
		Platform:  in.Platform,
		Status:    domain.CampaignScheduled,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Budget:    in.Budget,
		Segments:  append([]string(nil), in.Segments...),
	}
	s.campaigns = append(s.campaigns, c)

	s.logger.Info().Int("campaign_id", c.ID).Str("name", c.Name).Msg("campaign created")
	return &c, nil
}

// Summary aggregates the headline numbers over every campaign.
func (s *DashboardService) Summary(_ context.Context) (*ports.CampaignSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum ports.CampaignSummary
	for _, c := range s.campaigns {
		sum.Campaigns++
		if c.Status == domain.CampaignActive {
			sum.Active++
		}
		sum.Budget += c.Budget
		sum.Spent += c.Spent
		sum.Impressions += c.Impressions
		sum.Clicks += c.Clicks
		sum.Conversions += c.Conversions
	}
	if sum.Impressions > 0 {
		sum.CTR = round1(float64(sum.Clicks) / float64(sum.Impressions) * 100)
	}
	if sum.Clicks > 0 {
		sum.ConversionRate = round1(float64(sum.Conversions) / float64(sum.Clicks) * 100)
	}
	return &sum, nil
}

func (s *DashboardService) ListTests(_ context.Context) ([]ports.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ports.TestResult, 0, len(s.tests))
	for _, t := range s.tests {
		out = append(out, Evaluate(t))
	}
	return out, nil
}

func (s *DashboardService) GetTest(_ context.Context, id int) (*ports.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tests {
		if t.ID == id {
			r := Evaluate(t)
			return &r, nil
		}
	}
	return nil, domain.ErrTestNotFound
}

// CreateTest registers a new A/B test starting today. Variants start without
// traffic, so the result has no winner yet.
func (s *DashboardService) CreateTest(_ context.Context, in ports.CreateTestInput) (*ports.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, t := range s.tests {
		if t.ID >= next {
			next = t.ID + 1
		}
	}

	duration := in.DurationDays
	if duration <= 0 {
		duration = defaultTestDuration
	}

	t := domain.ABTest{
		ID:             next,
		Name:           in.Name,
		TargetAudience: in.TargetAudience,
		StartDate:      s.now().UTC().Truncate(24 * time.Hour),
		DurationDays:   duration,
		VariantA:       domain.Variant{Title: in.VariantA.Title, Content: in.VariantA.Content},
		VariantB:       domain.Variant{Title: in.VariantB.Title, Content: in.VariantB.Content},
	}
	s.tests = append(s.tests, t)

	s.logger.Info().Int("test_id", t.ID).Str("name", t.Name).Msg("ab test created")
	r := Evaluate(t)
	return &r, nil
}

// Evaluate derives the CTR winner of an A/B test. The variant with the
// strictly higher CTR wins; improvement is the CTR gap relative to the lower
// CTR, in whole percent.
func Evaluate(t domain.ABTest) ports.TestResult {
	a, b := t.VariantA.CTR(), t.VariantB.CTR()
	r := ports.TestResult{Test: t, CTRA: round1(a), CTRB: round1(b)}

	switch {
	case a > b:
		r.Winner = "A"
	case b > a:
		r.Winner = "B"
	default:
		return r
	}
	if low := math.Min(a, b); low > 0 {
		r.Improvement = int(math.Round(math.Abs(a-b) / low * 100))
	}
	return r
}

func matchesOption(want, got string) bool {
	return want == "" || strings.EqualFold(want, "All") || strings.EqualFold(want, got)
}

func campaignOrder(field string) func(a, b domain.Campaign) bool {
	switch field {
	case "name":
		return func(a, b domain.Campaign) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "budget":
		return func(a, b domain.Campaign) bool { return a.Budget < b.Budget }
	case "spent":
		return func(a, b domain.Campaign) bool { return a.Spent < b.Spent }
	case "roi":
		return func(a, b domain.Campaign) bool { return a.ROI < b.ROI }
	case "ctr":
		return func(a, b domain.Campaign) bool { return a.CTR() < b.CTR() }
	case "start_date":
		return func(a, b domain.Campaign) bool { return a.StartDate.Before(b.StartDate) }
	default:
		return func(a, b domain.Campaign) bool { return a.ID < b.ID }
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func seedCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: 1, Name: "Summer Sale", Platform: "Email", Status: domain.CampaignActive,
			StartDate: day("2025-06-01"), EndDate: day("2025-08-31"), Budget: 5000, Spent: 1890, ROI: 2.3,
			Impressions: 45780, Clicks: 3245, Conversions: 287, Segments: []string{"Age 25-34", "Female", "Urban"}},
		{ID: 2, Name: "Product Launch", Platform: "Search", Status: domain.CampaignActive,
			StartDate: day("2025-04-15"), EndDate: day("2025-07-15"), Budget: 12000, Spent: 5640, ROI: 1.8,
			Impressions: 89240, Clicks: 6729, Conversions: 412, Segments: []string{"Age 18-45", "Tech Enthusiasts", "High Income"}},
		{ID: 3, Name: "Brand Awareness", Platform: "Social", Status: domain.CampaignActive,
			StartDate: day("2025-03-01"), EndDate: day("2025-09-01"), Budget: 8500, Spent: 3960, ROI: 1.2,
			Impressions: 120345, Clicks: 4567, Conversions: 189, Segments: []string{"Age 18-24", "Students", "Urban"}},
		{ID: 4, Name: "Holiday Promotion", Platform: "Display", Status: domain.CampaignScheduled,
			StartDate: day("2025-11-15"), EndDate: day("2025-12-31"), Budget: 7500,
			Segments: []string{"Shoppers", "Previous Customers"}},
		{ID: 5, Name: "Loyalty Rewards", Platform: "Email", Status: domain.CampaignPaused,
			StartDate: day("2025-02-01"), EndDate: day("2025-05-01"), Budget: 3500, Spent: 1200, ROI: 2.1,
			Impressions: 28450, Clicks: 1890, Conversions: 134, Segments: []string{"Previous Customers", "Frequent Buyers"}},
	}
}

func seedTests() []domain.ABTest {
	return []domain.ABTest{
		{
			ID:             1,
			Name:           "Email Subject Line Test",
			TargetAudience: "Previous customers, aged 25-54",
			StartDate:      day("2025-04-01"),
			DurationDays:   14,
			VariantA: domain.Variant{
				Title:       "Last Chance: 20% Off Summer Collection",
				Content:     "Don't miss our biggest sale of the season. Shop now before items sell out!",
				Impressions: 5000, Clicks: 350, Conversions: 52,
			},
			VariantB: domain.Variant{
				Title:       "Summer Collection: 20% Off Ends Tomorrow",
				Content:     "Shop our summer collection with 20% off everything. Offer ends tomorrow!",
				Impressions: 5000, Clicks: 430, Conversions: 74,
			},
			Insights: "Variant B performed better by creating a sense of urgency with \"Ends Tomorrow\" while being specific about the offer.",
			Tags:     []string{"Urgency", "Specificity", "Product Focus", "Clear Timeline"},
			Recommendations: []string{
				"Apply the winning variant to your upcoming summer campaign",
				"Test adding a specific percentage in future subject lines",
				"Consider A/B testing the email layout next",
			},
		},
		{
			ID:             2,
			Name:           "Call-to-Action Button Test",
			TargetAudience: "Website visitors, all demographics",
			StartDate:      day("2025-03-15"),
			DurationDays:   7,
			VariantA: domain.Variant{
				Title:       "Get Started Free",
				Content:     "Start your 14-day free trial today. No credit card required.",
				Impressions: 8500, Clicks: 425, Conversions: 85,
			},
			VariantB: domain.Variant{
				Title:       "Sign Up Now",
				Content:     "Create your account and start using our platform today.",
				Impressions: 8500, Clicks: 365, Conversions: 62,
			},
			Insights: "The \"Get Started Free\" CTA removed friction by stating that no credit card is required.",
			Tags:     []string{"Friction Reduction", "Value Proposition", "Clear Benefit"},
			Recommendations: []string{
				"Update all CTAs to use \"Get Started Free\" messaging",
				"Emphasize \"no credit card required\" in proximity to sign-up buttons",
			},
		},
	}
}
