package output

import "venture-agent/internal/domain/entity"

// FormParser extracts fillable fields and navigation hints from page HTML.
type FormParser interface {
	// ExtractFields returns every detectable input of the page's forms.
	ExtractFields(html string) ([]entity.FormField, error)
	// FindApplyLink returns a CSS selector for an application link, if one
	// can be recognized on the page.
	FindApplyLink(html string) (string, bool)
}
