package handler

import (
	"math"
	"time"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

func toCampaignResponse(c domain.Campaign) campaignResponse {
	segments := c.Segments
	if segments == nil {
		segments = []string{}
	}
	return campaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Platform:    c.Platform,
		Status:      string(c.Status),
		StartDate:   c.StartDate.Format(time.DateOnly),
		EndDate:     c.EndDate.Format(time.DateOnly),
		Budget:      c.Budget,
		Spent:       c.Spent,
		ROI:         c.ROI,
		Impressions: c.Impressions,
		Clicks:      c.Clicks,
		Conversions: c.Conversions,
		CTR:         round1(c.CTR()),
		Segments:    segments,
	}
}

func toCampaignListResponse(campaigns []domain.Campaign) campaignListResponse {
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	return campaignListResponse{Campaigns: out, Total: len(out)}
}

func toVariantResponse(v domain.Variant) variantResponse {
	return variantResponse{
		Title:          v.Title,
		Content:        v.Content,
		Impressions:    v.Impressions,
		Clicks:         v.Clicks,
		Conversions:    v.Conversions,
		CTR:            round1(v.CTR()),
		ConversionRate: round1(v.ConversionRate()),
	}
}

func toABTestResponse(r ports.TestResult) abTestResponse {
	t := r.Test
	return abTestResponse{
		ID:              t.ID,
		Name:            t.Name,
		TargetAudience:  t.TargetAudience,
		StartDate:       t.StartDate.Format(time.DateOnly),
		DurationDays:    t.DurationDays,
		VariantA:        toVariantResponse(t.VariantA),
		VariantB:        toVariantResponse(t.VariantB),
		Winner:          r.Winner,
		Improvement:     r.Improvement,
		Insights:        t.Insights,
		Tags:            t.Tags,
		Recommendations: t.Recommendations,
	}
}

func toReportsResponse(r *ports.ActivityReport) reportsResponse {
	out := make([]activityResponse, 0, len(r.Activities))
	for _, a := range r.Activities {
		out = append(out, activityResponse{
			ID:          a.ID,
			Type:        string(a.Type),
			Status:      a.Status,
			Title:       a.Title,
			Description: a.Description,
			OccurredAt:  a.OccurredAt,
			Metrics:     a.Metrics,
			Actions:     a.Actions,
		})
	}
	return reportsResponse{Activities: out, Total: len(out), Summary: r.Summary}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
