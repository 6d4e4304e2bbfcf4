package scoring

import (
	"sort"
	"strings"

	"venture-agent/internal/domain/entity"
)

// Point budget per criterion. The total caps at 100.
const (
	pricingPoints     = 25.0
	openSourcePoints  = 20.0
	apiPoints         = 15.0
	languageMaxPoints = 20.0
	techMaxPoints     = 10.0
	integrationPoints = 10.0
)

// Score rates a tool against user preferences on a 0–100 scale. Pure and
// deterministic: an empty preference set always scores 0.
func Score(tool entity.ToolRecord, prefs entity.PreferenceSet) float64 {
	score := 0.0

	if prefs.Pricing != "" && tool.PricingModel == prefs.Pricing {
		score += pricingPoints
	}

	if prefs.PreferOpenSource && tool.IsOpenSource != nil && *tool.IsOpenSource {
		score += openSourcePoints
	}

	if prefs.RequireAPI && tool.APIAvailable != nil && *tool.APIAvailable {
		score += apiPoints
	}

	score += overlapFraction(prefs.Languages, tool.LanguageSupport) * languageMaxPoints
	score += overlapFraction(prefs.TechStack, tool.TechStack) * techMaxPoints
	score += overlapFraction(prefs.Integrations, tool.IntegrationCapabilities) * integrationPoints

	if score > 100 {
		score = 100
	}
	return score
}

// ScoredTool pairs a record with its preference score.
type ScoredTool struct {
	Tool  entity.ToolRecord
	Score float64
}

// Rank scores every tool and sorts descending. Ties keep the original list
// order (stable sort).
func Rank(tools []entity.ToolRecord, prefs entity.PreferenceSet) []ScoredTool {
	ranked := make([]ScoredTool, 0, len(tools))
	for _, t := range tools {
		ranked = append(ranked, ScoredTool{Tool: t, Score: Score(t, prefs)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// overlapFraction returns the fraction of wanted items present in have,
// compared case-insensitively. No wants means no contribution.
func overlapFraction(wanted, have []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	haveSet := make(map[string]bool, len(have))
	for _, h := range have {
		haveSet[strings.ToLower(strings.TrimSpace(h))] = true
	}
	matched := 0
	for _, w := range wanted {
		if haveSet[strings.ToLower(strings.TrimSpace(w))] {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}
