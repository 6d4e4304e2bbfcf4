package formfill

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

// Mapper resolves form field values the categorizer and templates could not,
// by asking the LLM to read the field against the company profile.
type Mapper struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func NewMapper(llm output.LLMPort, logger output.LoggerPort) *Mapper {
	return &Mapper{llm: llm, logger: logger}
}

// MapFields asks the model to pick a value for each unmapped field. Returns
// an empty map rather than an error when the response cannot be parsed, so a
// bad completion never aborts a fill run.
func (m *Mapper) MapFields(ctx context.Context, fields []entity.FormField, profile *entity.CompanyProfile) map[string]string {
	if len(fields) == 0 {
		return map[string]string{}
	}

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		m.logger.Error("marshal profile for field mapping", "error", err)
		return map[string]string{}
	}

	var fieldDesc strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&fieldDesc, "- name: %s, type: %s, label: %s", f.Name, f.Type, f.Label)
		if len(f.Options) > 0 {
			fmt.Fprintf(&fieldDesc, ", options: %s", strings.Join(f.Options, " | "))
		}
		fieldDesc.WriteString("\n")
	}

	resp, err := m.llm.ChatJSON(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: "You fill out venture capital application forms. " +
				"Answer only with a JSON object mapping field names to string values. " +
				"For select fields choose one of the listed options. " +
				"Leave out fields the profile cannot answer."},
			{Role: entity.RoleUser, Content: fmt.Sprintf(
				"Company profile:\n%s\n\nForm fields:\n%s", profileJSON, fieldDesc.String())},
		},
		Temperature: 0.1,
	})
	if err != nil {
		m.logger.Warn("ai field mapping request failed", "error", err)
		return map[string]string{}
	}

	parsed, err := ParseFieldValues(resp.Content)
	if err != nil {
		m.logger.Warn("ai field mapping returned unparseable content", "error", err)
		return map[string]string{}
	}
	return parsed
}

// GenerateValue asks for a single field's value. Empty string means the model
// declined or failed.
func (m *Mapper) GenerateValue(ctx context.Context, field entity.FormField, profile *entity.CompanyProfile) string {
	values := m.MapFields(ctx, []entity.FormField{field}, profile)
	return values[field.Name]
}

// ParseFieldValues extracts the outermost JSON object from a possibly noisy
// completion and decodes it into field values. Non-string values are
// stringified.
func ParseFieldValues(content string) (map[string]string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode field values: %w", err)
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			if val != "" {
				out[k] = val
			}
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		}
	}
	return out, nil
}

// ProfileValue resolves a categorized field directly from the profile without
// involving the model.
func ProfileValue(profile *entity.CompanyProfile, category string) string {
	switch category {
	case "company_name":
		return profile.CompanyName
	case "industry":
		return profile.Industry
	case "funding_stage":
		return profile.FundingStage
	case "team_size":
		if profile.TeamSize > 0 {
			return strconv.Itoa(profile.TeamSize)
		}
	case "revenue":
		if profile.Revenue > 0 {
			return strconv.FormatFloat(profile.Revenue, 'f', -1, 64)
		}
	case "description":
		return profile.CompetitiveAdvantage
	case "use_of_funds":
		return profile.UseOfFunds
	case "founding_date":
		return profile.FoundingDate
	case "founders":
		return strings.Join(profile.Founders, ", ")
	case "target_market":
		return profile.TargetMarket
	case "email":
		return profile.Email
	case "phone":
		return profile.Phone
	case "website":
		return profile.Website
	}
	return ""
}
