package entity

import "time"

// FormField is a single input detected on an application form. Created by
// the form parser, consumed by the filling stage, discarded after.
type FormField struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	Selector    string   `json:"selector"`
	Category    string   `json:"category,omitempty"`
}

// CombinedText returns the text the field categorizer matches against.
func (f FormField) CombinedText() string {
	return f.Name + " " + f.Label + " " + f.Placeholder
}

// FillResult reports the outcome of one form-filling run.
type FillResult struct {
	Success        bool          `json:"success"`
	URL            string        `json:"url"`
	FieldsFilled   int           `json:"fields_filled"`
	TotalFields    int           `json:"total_fields"`
	Errors         []string      `json:"errors"`
	Warnings       []string      `json:"warnings"`
	ScreenshotPath string        `json:"screenshot_path,omitempty"`
	FilesUploaded  []string      `json:"files_uploaded,omitempty"`
	Elapsed        time.Duration `json:"elapsed"`
}

// FormReview is the LLM's pre-submission assessment of the filled data.
type FormReview struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// ValidationResult aggregates local (non-LLM) form validation findings.
type ValidationResult struct {
	Valid                bool     `json:"valid"`
	Errors               []string `json:"errors"`
	Warnings             []string `json:"warnings"`
	Suggestions          []string `json:"suggestions"`
	CompletionPercentage float64  `json:"completion_percentage"`
}
