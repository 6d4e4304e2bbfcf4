package input

import (
	"context"

	"venture-agent/internal/domain/entity"
)

// FillRequest configures a single form-filling run.
type FillRequest struct {
	URL            string
	TemplateName   string
	CustomFields   map[string]string
	FileUploads    map[string][]string
	AutoNavigate   bool
	TakeScreenshot bool
	Validate       bool
}

// FormFiller locates, analyzes, and fills a VC application form.
type FormFiller interface {
	Fill(ctx context.Context, req FillRequest) *entity.FillResult
	Batch(ctx context.Context, urls []string, req FillRequest) []*entity.FillResult
}
