package scoring

import (
	"venture-agent/internal/domain/entity"
)

// TrendSummary aggregates trend information across a tool set.
type TrendSummary struct {
	Total          int
	ByStatus       map[entity.TrendStatus]int
	AvgPopularity  float64
	MostPopular    string
	LeastPopular   string
	RisingTools    []string
	DecliningTools []string
}

// TrendStats tallies trend status counts and popularity extremes.
func TrendStats(tools []entity.ToolRecord) TrendSummary {
	summary := TrendSummary{
		Total:    len(tools),
		ByStatus: make(map[entity.TrendStatus]int),
	}
	if len(tools) == 0 {
		return summary
	}

	var popSum int
	most, least := tools[0], tools[0]
	for _, t := range tools {
		summary.ByStatus[t.TrendStatus]++
		popSum += t.PopularityScore
		if t.PopularityScore > most.PopularityScore {
			most = t
		}
		if t.PopularityScore < least.PopularityScore {
			least = t
		}
		switch t.TrendStatus {
		case entity.TrendRising:
			summary.RisingTools = append(summary.RisingTools, t.Name)
		case entity.TrendDeclining:
			summary.DecliningTools = append(summary.DecliningTools, t.Name)
		}
	}

	summary.AvgPopularity = float64(popSum) / float64(len(tools))
	summary.MostPopular = most.Name
	summary.LeastPopular = least.Name
	return summary
}

// QuickStatsSummary counts coarse attributes across a tool set.
type QuickStatsSummary struct {
	Total       int
	OpenSource  int
	WithAPI     int
	ByPricing   map[entity.PricingModel]int
	AvgLangs    float64
	UniqueLangs int
}

// QuickStats gives a coarse overview of the collection: openness, API
// availability, pricing spread, and language coverage.
func QuickStats(tools []entity.ToolRecord) QuickStatsSummary {
	stats := QuickStatsSummary{
		Total:     len(tools),
		ByPricing: make(map[entity.PricingModel]int),
	}
	if len(tools) == 0 {
		return stats
	}

	langs := make(map[string]bool)
	var langTotal int
	for _, t := range tools {
		if t.IsOpenSource != nil && *t.IsOpenSource {
			stats.OpenSource++
		}
		if t.APIAvailable != nil && *t.APIAvailable {
			stats.WithAPI++
		}
		if t.PricingModel != "" {
			stats.ByPricing[t.PricingModel]++
		}
		langTotal += len(t.LanguageSupport)
		for _, l := range t.LanguageSupport {
			langs[l] = true
		}
	}

	stats.AvgLangs = float64(langTotal) / float64(len(tools))
	stats.UniqueLangs = len(langs)
	return stats
}
