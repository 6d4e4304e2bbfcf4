package scoring

import (
	"sort"
	"strings"

	"venture-agent/internal/domain/entity"
)

// FilterOptions selects tools by individual attributes. Zero-value options
// match everything.
type FilterOptions struct {
	Pricing    entity.PricingModel
	OpenSource *bool
	HasAPI     *bool
	Language   string
}

// Filter returns the tools matching every set option.
func Filter(tools []entity.ToolRecord, opts FilterOptions) []entity.ToolRecord {
	var out []entity.ToolRecord
	for _, t := range tools {
		if opts.Pricing != "" && t.PricingModel != opts.Pricing {
			continue
		}
		if opts.OpenSource != nil && !matchTriState(t.IsOpenSource, *opts.OpenSource) {
			continue
		}
		if opts.HasAPI != nil && !matchTriState(t.APIAvailable, *opts.HasAPI) {
			continue
		}
		if opts.Language != "" && !containsFold(t.LanguageSupport, opts.Language) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortKey names a supported sort order for SortTools.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByPopularity   SortKey = "popularity"
	SortByLanguages    SortKey = "languages"
	SortByIntegrations SortKey = "integrations"
)

// SortTools returns a copy sorted by the given key. Unknown keys leave the
// order unchanged. Descending applies to numeric keys only.
func SortTools(tools []entity.ToolRecord, key SortKey, descending bool) []entity.ToolRecord {
	out := make([]entity.ToolRecord, len(tools))
	copy(out, tools)

	switch key {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortByPopularity:
		sort.SliceStable(out, func(i, j int) bool {
			if descending {
				return out[i].PopularityScore > out[j].PopularityScore
			}
			return out[i].PopularityScore < out[j].PopularityScore
		})
	case SortByLanguages:
		sort.SliceStable(out, func(i, j int) bool {
			if descending {
				return len(out[i].LanguageSupport) > len(out[j].LanguageSupport)
			}
			return len(out[i].LanguageSupport) < len(out[j].LanguageSupport)
		})
	case SortByIntegrations:
		sort.SliceStable(out, func(i, j int) bool {
			if descending {
				return len(out[i].IntegrationCapabilities) > len(out[j].IntegrationCapabilities)
			}
			return len(out[i].IntegrationCapabilities) < len(out[j].IntegrationCapabilities)
		})
	}
	return out
}

func matchTriState(v *bool, want bool) bool {
	return v != nil && *v == want
}

func containsFold(list []string, target string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
