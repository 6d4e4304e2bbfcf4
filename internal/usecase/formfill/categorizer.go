package formfill

import (
	"regexp"
	"strings"

	"venture-agent/internal/domain/entity"
)

// CategoryOther marks a field no known pattern claims.
const CategoryOther = "other"

type fieldCategory struct {
	name     string
	patterns []*regexp.Regexp
}

// Categories are checked in declaration order and the first match wins, so
// more specific ones must come before generic ones ("company name" before
// "name").
var fieldCategories = []fieldCategory{
	{"company_name", compileAll(
		`company\s*name`,
		`business\s*name`,
		`organization\s*name`,
		`startup\s*name`,
	)},
	{"industry", compileAll(
		`industry`,
		`sector`,
		`business\s*type`,
		`market\s*segment`,
	)},
	{"funding_stage", compileAll(
		`funding\s*stage`,
		`investment\s*stage`,
		`round`,
		`capital\s*stage`,
	)},
	{"team_size", compileAll(
		`team\s*size`,
		`employees`,
		`headcount`,
		`staff\s*size`,
	)},
	{"revenue", compileAll(
		`revenue`,
		`annual\s*revenue`,
		`monthly\s*revenue`,
		`sales`,
	)},
	{"description", compileAll(
		`description`,
		`about`,
		`overview`,
		`summary`,
		`pitch`,
	)},
	{"use_of_funds", compileAll(
		`use\s*of\s*funds`,
		`funding\s*purpose`,
		`investment\s*use`,
		`capital\s*allocation`,
	)},
	{"email", compileAll(
		`e[-\s]?mail`,
		`contact\s*address`,
	)},
	{"phone", compileAll(
		`phone`,
		`mobile`,
		`telephone`,
	)},
	{"website", compileAll(
		`website`,
		`company\s*url`,
		`home\s*page`,
	)},
	{"founding_date", compileAll(
		`found(?:ing|ed)\s*(?:date|year)`,
		`year\s*founded`,
		`date\s*of\s*incorporation`,
	)},
	{"founders", compileAll(
		`founders?\b`,
		`co[-\s]?founders?`,
		`founding\s*team`,
	)},
	{"target_market", compileAll(
		`target\s*market`,
		`target\s*(?:audience|customer)`,
		`customer\s*segment`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// CategorizeField classifies a form field by matching its combined name,
// label, and placeholder text against the known category patterns.
func CategorizeField(field entity.FormField) string {
	return CategorizeText(field.CombinedText())
}

// CategorizeText classifies free text the same way CategorizeField does.
func CategorizeText(text string) string {
	text = strings.ToLower(text)
	for _, cat := range fieldCategories {
		for _, p := range cat.patterns {
			if p.MatchString(text) {
				return cat.name
			}
		}
	}
	return CategoryOther
}

// MappingSuggestions pairs each recognizable field with its category. Fields
// classified as "other" are left for the AI mapper.
func MappingSuggestions(fields []entity.FormField) map[string]string {
	suggestions := make(map[string]string)
	for _, f := range fields {
		if cat := CategorizeField(f); cat != CategoryOther {
			suggestions[f.Name] = cat
		}
	}
	return suggestions
}
