package formparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-agent/internal/domain/entity"
)

const applicationFormHTML = `<!DOCTYPE html>
<html>
<body>
	<form id="application">
		<label for="company">Company Name</label>
		<input id="company" name="company" type="text" required />

		<label>Industry
			<input name="industry" type="text" placeholder="e.g. Fintech" />
		</label>

		<input name="email" type="email" aria-label="Contact Email" />

		<select name="stage" required>
			<option value="">Choose...</option>
			<option value="seed">Seed</option>
			<option value="a">Series A</option>
		</select>

		<textarea name="pitch" placeholder="Describe your company"></textarea>

		<input id="deck" name="deck" type="file" />

		<input type="hidden" name="csrf" value="tok" />
		<input type="submit" value="Send" />
	</form>
</body>
</html>`

func extractAll(t *testing.T, html string) map[string]entity.FormField {
	t.Helper()
	fields, err := NewParser().ExtractFields(html)
	require.NoError(t, err)
	byName := make(map[string]entity.FormField, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return byName
}

func TestExtractFields(t *testing.T) {
	fields := extractAll(t, applicationFormHTML)
	require.Len(t, fields, 6, "hidden and submit inputs are skipped")

	company := fields["company"]
	assert.Equal(t, "text", company.Type)
	assert.Equal(t, "Company Name", company.Label)
	assert.True(t, company.Required)
	assert.Equal(t, "#company", company.Selector)

	industry := fields["industry"]
	assert.Equal(t, "Industry", industry.Label)
	assert.Equal(t, "e.g. Fintech", industry.Placeholder)
	assert.Equal(t, `input[name="industry"]`, industry.Selector)

	email := fields["email"]
	assert.Equal(t, "email", email.Type)
	assert.Equal(t, "Contact Email", email.Label)

	stage := fields["stage"]
	assert.Equal(t, "select", stage.Type)
	assert.True(t, stage.Required)
	assert.Equal(t, []string{"Choose...", "Seed", "Series A"}, stage.Options)

	pitch := fields["pitch"]
	assert.Equal(t, "textarea", pitch.Type)
	assert.Equal(t, "Describe your company", pitch.Label)

	deck := fields["deck"]
	assert.Equal(t, "file", deck.Type)
}

func TestExtractFieldsOutsideForms(t *testing.T) {
	fields := extractAll(t, `<div><input name="standalone" type="text"/></div>`)
	require.Len(t, fields, 1)
	assert.Equal(t, "standalone", fields["standalone"].Name)
}

func TestExtractFieldsSkipsAnonymousInputs(t *testing.T) {
	fields := extractAll(t, `<form><input type="text"/></form>`)
	assert.Empty(t, fields)
}

func TestFindApplyLinkByText(t *testing.T) {
	selector, ok := NewParser().FindApplyLink(
		`<nav><a href="/about">About</a><a id="cta" href="/go">Apply Now</a></nav>`)
	require.True(t, ok)
	assert.Equal(t, `//a[@id="cta"]`, selector)
}

func TestFindApplyLinkByHref(t *testing.T) {
	selector, ok := NewParser().FindApplyLink(
		`<a href="/application/start">Get going</a>`)
	require.True(t, ok)
	assert.Equal(t, `//a[@href="/application/start"]`, selector)
}

func TestFindApplyLinkButtonByClass(t *testing.T) {
	selector, ok := NewParser().FindApplyLink(
		`<button class="btn apply-button">Continue</button>`)
	require.True(t, ok)
	assert.Equal(t, `//button[contains(., "Continue")]`, selector)
}

func TestFindApplyLinkAbsent(t *testing.T) {
	_, ok := NewParser().FindApplyLink(`<a href="/pricing">Pricing</a>`)
	assert.False(t, ok)
}
