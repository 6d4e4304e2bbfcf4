package formfill

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"venture-agent/internal/domain/entity"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern      = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	urlPattern        = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	datePattern       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern   = regexp.MustCompile(`^\$?[\d,]+(\.\d{2})?$`)
	percentagePattern = regexp.MustCompile(`^\d+(\.\d+)?%?$`)

	phoneStrip = regexp.MustCompile(`[\s\-()]`)
)

// ValidEmail reports whether s looks like a plausible email address.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidPhone strips common formatting and checks the remaining digits.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(phoneStrip.ReplaceAllString(s, ""))
}

// ValidURL accepts http(s) URLs only.
func ValidURL(s string) bool { return urlPattern.MatchString(s) }

// ValidDate accepts ISO dates and the common US slash format.
func ValidDate(s string) bool {
	if datePattern.MatchString(s) {
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	}
	_, err := time.Parse("01/02/2006", s)
	return err == nil
}

// ValidCurrency accepts amounts like 1000, $1,000,000 or 99.95.
func ValidCurrency(s string) bool {
	return currencyPattern.MatchString(strings.ReplaceAll(s, ",", ""))
}

// ValidPercentage accepts plain numbers with an optional percent sign.
func ValidPercentage(s string) bool { return percentagePattern.MatchString(s) }

// ValidateFilledForm checks the values destined for a form: every mapped
// value present, format rules per field name, and cross-field consistency.
// Format problems on soft fields downgrade to warnings, matching how lenient
// real application forms are about them.
func ValidateFilledForm(mappings map[string]string) *entity.ValidationResult {
	result := &entity.ValidationResult{}

	validateRequired(mappings, result)
	validateFormats(mappings, result)
	validateConsistency(mappings, result)
	result.Suggestions = buildSuggestions(mappings, result)
	result.CompletionPercentage = completionPercentage(mappings)
	result.Valid = len(result.Errors) == 0
	return result
}

func validateRequired(mappings map[string]string, r *entity.ValidationResult) {
	for name, value := range mappings {
		if strings.TrimSpace(value) == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("required field %q is empty", name))
		}
	}
	for _, common := range []string{"company_name", "email", "description"} {
		if !hasFieldLike(mappings, common) {
			r.Warnings = append(r.Warnings, fmt.Sprintf("common field %q not found", common))
		}
	}
}

func validateFormats(mappings map[string]string, r *entity.ValidationResult) {
	for name, value := range mappings {
		if value == "" {
			continue
		}
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "email"):
			if !ValidEmail(value) {
				r.Errors = append(r.Errors, fmt.Sprintf("invalid email in %q: %s", name, value))
			}
		case strings.Contains(lower, "phone"):
			if !ValidPhone(value) {
				r.Warnings = append(r.Warnings, fmt.Sprintf("suspect phone format in %q: %s", name, value))
			}
		case strings.Contains(lower, "url"), strings.Contains(lower, "website"):
			if !ValidURL(value) {
				r.Warnings = append(r.Warnings, fmt.Sprintf("suspect URL in %q: %s", name, value))
			}
		case strings.Contains(lower, "date"):
			if !ValidDate(value) {
				r.Warnings = append(r.Warnings, fmt.Sprintf("suspect date format in %q: %s", name, value))
			}
		case strings.Contains(lower, "revenue"), strings.Contains(lower, "funding"):
			if !ValidCurrency(value) {
				r.Warnings = append(r.Warnings, fmt.Sprintf("suspect currency format in %q: %s", name, value))
			}
		case strings.Contains(lower, "growth"), strings.Contains(lower, "rate"):
			if !ValidPercentage(value) {
				r.Warnings = append(r.Warnings, fmt.Sprintf("suspect percentage in %q: %s", name, value))
			}
		}
	}
}

func validateConsistency(mappings map[string]string, r *entity.ValidationResult) {
	teamSize, hasTeam := parseIntField(mappings, "team_size")
	revenue, hasRevenue := parseMoneyField(mappings, "revenue")

	if hasTeam {
		if teamSize < 1 {
			r.Errors = append(r.Errors, "team size must be at least 1")
		} else if teamSize > 10000 {
			r.Warnings = append(r.Warnings, "team size seems unusually large")
		}
	}

	if hasTeam && hasRevenue && teamSize > 0 {
		perEmployee := revenue / float64(teamSize)
		if perEmployee > 1_000_000 {
			r.Warnings = append(r.Warnings, "revenue per employee seems unusually high")
		} else if perEmployee < 1000 {
			r.Warnings = append(r.Warnings, "revenue per employee seems unusually low")
		}
	}

	if stage, ok := mappings["funding_stage"]; ok && hasRevenue {
		lower := strings.ToLower(stage)
		if strings.Contains(lower, "seed") && revenue > 1_000_000 {
			r.Warnings = append(r.Warnings, "high revenue for a seed stage company")
		} else if strings.Contains(lower, "series a") && revenue < 100_000 {
			r.Warnings = append(r.Warnings, "low revenue for a Series A company")
		}
	}
}

func buildSuggestions(mappings map[string]string, r *entity.ValidationResult) []string {
	var suggestions []string

	if anyContains(r.Errors, "email") {
		suggestions = append(suggestions, "use a standard email format (user@domain.com)")
	}
	if anyContains(r.Warnings, "phone") {
		suggestions = append(suggestions, "use an international phone format (+15551234567)")
	}
	if anyContains(r.Warnings, "currency") {
		suggestions = append(suggestions, "use a consistent currency format such as $1,000,000")
	}
	for name, value := range mappings {
		lower := strings.ToLower(name)
		if (strings.Contains(lower, "description") || strings.Contains(lower, "about")) &&
			value != "" && len(strings.TrimSpace(value)) < 10 {
			suggestions = append(suggestions, fmt.Sprintf("expand the %s field for better detail", name))
		}
	}
	return suggestions
}

func completionPercentage(mappings map[string]string) float64 {
	if len(mappings) == 0 {
		return 0
	}
	filled := 0
	for _, v := range mappings {
		if strings.TrimSpace(v) != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(mappings)) * 100
}

// ValidateProfile checks a company profile for the fields VC applications
// always ask about.
func ValidateProfile(p *entity.CompanyProfile) *entity.ValidationResult {
	result := &entity.ValidationResult{}

	if strings.TrimSpace(p.CompanyName) == "" {
		result.Errors = append(result.Errors, "company_name is required")
	}
	if strings.TrimSpace(p.Industry) == "" {
		result.Errors = append(result.Errors, "industry is required")
	}
	if strings.TrimSpace(p.FoundingDate) == "" {
		result.Errors = append(result.Errors, "founding_date is required")
	}
	if p.TeamSize < 1 {
		result.Errors = append(result.Errors, "team_size must be at least 1")
	}
	if p.Email != "" && !ValidEmail(p.Email) {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid email: %s", p.Email))
	}
	if p.Website != "" && !ValidURL(p.Website) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("suspect website URL: %s", p.Website))
	}
	if p.Revenue < 0 {
		result.Errors = append(result.Errors, "revenue cannot be negative")
	}

	if strings.TrimSpace(p.CompetitiveAdvantage) == "" {
		result.Suggestions = append(result.Suggestions, "add competitive advantage information")
	}
	if strings.TrimSpace(p.UseOfFunds) == "" {
		result.Suggestions = append(result.Suggestions, "add use of funds information")
	}
	if len(p.TractionMetrics) == 0 {
		result.Suggestions = append(result.Suggestions, "add traction metrics")
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func hasFieldLike(mappings map[string]string, needle string) bool {
	for name := range mappings {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}
	return false
}

func anyContains(list []string, needle string) bool {
	for _, s := range list {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func parseIntField(mappings map[string]string, key string) (int, bool) {
	raw, ok := mappings[key]
	if !ok || raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseMoneyField(mappings map[string]string, key string) (float64, bool) {
	raw, ok := mappings[key]
	if !ok || raw == "" {
		return 0, false
	}
	clean := strings.NewReplacer(",", "", "$", "", " ", "").Replace(raw)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
