package formfill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venture-agent/internal/domain/entity"
)

func TestFormatValidators(t *testing.T) {
	assert.True(t, ValidEmail("founder@example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("user@nodot"))

	assert.True(t, ValidPhone("+1 (555) 123-4567"))
	assert.True(t, ValidPhone("15551234567"))
	assert.False(t, ValidPhone("call me"))

	assert.True(t, ValidURL("https://example.com"))
	assert.True(t, ValidURL("http://www.example.io/apply"))
	assert.False(t, ValidURL("example.com"))

	assert.True(t, ValidDate("2023-04-15"))
	assert.True(t, ValidDate("04/15/2023"))
	assert.False(t, ValidDate("April 15th"))

	assert.True(t, ValidCurrency("$1,000,000"))
	assert.True(t, ValidCurrency("500000"))
	assert.True(t, ValidCurrency("99.95"))
	assert.False(t, ValidCurrency("a lot"))

	assert.True(t, ValidPercentage("15%"))
	assert.True(t, ValidPercentage("3.5"))
	assert.False(t, ValidPercentage("fast"))
}

func TestValidateFilledFormEmptyRequired(t *testing.T) {
	r := ValidateFilledForm(map[string]string{
		"company_name": "Acme",
		"email":        "",
	})
	assert.False(t, r.Valid)
	assert.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "email")
	assert.InDelta(t, 50.0, r.CompletionPercentage, 1e-9)
}

func TestValidateFilledFormFormats(t *testing.T) {
	r := ValidateFilledForm(map[string]string{
		"company_name":  "Acme",
		"contact_email": "nope",
		"website":       "not a url",
		"description":   "We build infrastructure tooling for deployment automation.",
	})
	assert.False(t, r.Valid)
	assert.Contains(t, r.Errors[0], "invalid email")
	assert.NotEmpty(t, r.Warnings)
}

func TestValidateFilledFormConsistency(t *testing.T) {
	r := ValidateFilledForm(map[string]string{
		"company_name":  "Acme",
		"email":         "founder@acme.io",
		"description":   "Infrastructure automation for mid-market manufacturers.",
		"team_size":     "5",
		"revenue":       "$2,000,000",
		"funding_stage": "Seed",
	})
	assert.True(t, r.Valid)
	assert.Contains(t, r.Warnings, "high revenue for a seed stage company")
	assert.InDelta(t, 100.0, r.CompletionPercentage, 1e-9)
}

func TestValidateFilledFormTeamSizeBounds(t *testing.T) {
	r := ValidateFilledForm(map[string]string{"team_size": "0"})
	assert.Contains(t, r.Errors, "team size must be at least 1")

	r = ValidateFilledForm(map[string]string{"team_size": "50000"})
	assert.Contains(t, r.Warnings, "team size seems unusually large")
}

func TestValidateProfile(t *testing.T) {
	p := &entity.CompanyProfile{
		CompanyName:  "Acme Robotics",
		Industry:     "Robotics",
		FoundingDate: "2022-06-01",
		TeamSize:     12,
		Email:        "hello@acme.dev",
		Website:      "https://acme.dev",
	}
	r := ValidateProfile(p)
	assert.True(t, r.Valid)
	assert.NotEmpty(t, r.Suggestions)

	bad := &entity.CompanyProfile{Email: "broken", Revenue: -5}
	r = ValidateProfile(bad)
	assert.False(t, r.Valid)
	assert.GreaterOrEqual(t, len(r.Errors), 4)
}
