package entity

// PreferenceSet holds user-supplied ranking criteria for a single scoring
// call. The zero value expresses no preferences and awards no points.
type PreferenceSet struct {
	Pricing          PricingModel `json:"pricing,omitempty"`
	PreferOpenSource bool         `json:"prefer_open_source,omitempty"`
	RequireAPI       bool         `json:"require_api,omitempty"`
	Languages        []string     `json:"languages,omitempty"`
	TechStack        []string     `json:"tech_stack,omitempty"`
	Integrations     []string     `json:"integrations,omitempty"`
}

// IsZero reports whether no preference is set at all.
func (p PreferenceSet) IsZero() bool {
	return p.Pricing == "" && !p.PreferOpenSource && !p.RequireAPI &&
		len(p.Languages) == 0 && len(p.TechStack) == 0 && len(p.Integrations) == 0
}
