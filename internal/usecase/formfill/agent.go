package formfill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"venture-agent/internal/application/port/input"
	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

var _ input.FormFiller = (*Agent)(nil)

// BrowserFactory opens a fresh browser session. The agent opens one per fill
// run and closes it when the run finishes.
type BrowserFactory func(ctx context.Context) (output.BrowserPort, error)

// Options tune the pacing of a fill run.
type Options struct {
	// FieldDelay is the pause between individual field fills.
	FieldDelay time.Duration
	// FormDelay is the pause between forms in batch mode.
	FormDelay time.Duration
}

func (o *Options) withDefaults() Options {
	out := Options{FieldDelay: 500 * time.Millisecond, FormDelay: 30 * time.Second}
	if o == nil {
		return out
	}
	if o.FieldDelay > 0 {
		out.FieldDelay = o.FieldDelay
	}
	if o.FormDelay > 0 {
		out.FormDelay = o.FormDelay
	}
	return out
}

// Agent locates, analyzes, and fills VC application forms using a browser
// session per run.
type Agent struct {
	newBrowser BrowserFactory
	parser     output.FormParser
	store      output.ProfileStore
	mapper     *Mapper
	logger     output.LoggerPort
	opts       Options
}

func NewAgent(
	newBrowser BrowserFactory,
	parser output.FormParser,
	store output.ProfileStore,
	mapper *Mapper,
	logger output.LoggerPort,
	opts *Options,
) *Agent {
	return &Agent{
		newBrowser: newBrowser,
		parser:     parser,
		store:      store,
		mapper:     mapper,
		logger:     logger,
		opts:       opts.withDefaults(),
	}
}

// Fill runs the whole workflow for one URL. It never panics and never returns
// nil: failures are reported inside the FillResult.
func (a *Agent) Fill(ctx context.Context, req input.FillRequest) *entity.FillResult {
	started := time.Now()
	result := &entity.FillResult{URL: req.URL}
	defer func() { result.Elapsed = time.Since(started) }()

	profile, err := a.store.LoadCompanyProfile()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("load company profile: %v", err))
		return result
	}

	browser, err := a.newBrowser(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("open browser: %v", err))
		return result
	}
	defer browser.Close()

	a.logger.Info("navigating to form", "url", req.URL)
	if err := browser.Navigate(ctx, req.URL); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("navigate: %v", err))
		return result
	}

	if req.AutoNavigate {
		a.followApplyLink(ctx, browser, result)
	}

	page, err := browser.GetPageContent(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("read page: %v", err))
		return result
	}
	result.URL = browser.CurrentURL()

	fields, err := a.parser.ExtractFields(page.HTML)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("parse form: %v", err))
		return result
	}
	if len(fields) == 0 {
		result.Errors = append(result.Errors, "no form fields found on the page")
		return result
	}
	result.TotalFields = len(fields)
	a.logger.Info("form analyzed", "fields", len(fields))

	values := a.resolveValues(ctx, req, fields, profile)

	for _, field := range fields {
		value, ok := values[field.Name]
		if !ok || value == "" {
			if field.Required {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("no value for required field %q", field.Name))
			}
			continue
		}

		var fillErr error
		if field.Type == "select" {
			fillErr = browser.SelectOption(ctx, field.Selector, value)
		} else {
			fillErr = browser.Fill(ctx, field.Selector, value)
		}
		if fillErr != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("fill field %q: %v", field.Name, fillErr))
			continue
		}
		result.FieldsFilled++
		sleepCtx(ctx, a.opts.FieldDelay)
	}

	a.uploadFiles(ctx, browser, fields, req.FileUploads, result)

	if req.Validate {
		validation := ValidateFilledForm(filledSubset(values, fields))
		result.Errors = append(result.Errors, validation.Errors...)
		result.Warnings = append(result.Warnings, validation.Warnings...)
	}

	if req.TakeScreenshot {
		if shot, err := browser.Screenshot(ctx); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("screenshot: %v", err))
		} else {
			result.ScreenshotPath = shot.Path
		}
	}

	result.Success = len(result.Errors) == 0
	return result
}

// Batch fills every URL sequentially with a pause between forms.
func (a *Agent) Batch(ctx context.Context, urls []string, req input.FillRequest) []*entity.FillResult {
	results := make([]*entity.FillResult, 0, len(urls))
	for i, url := range urls {
		r := req
		r.URL = url
		results = append(results, a.Fill(ctx, r))
		if i < len(urls)-1 {
			sleepCtx(ctx, a.opts.FormDelay)
		}
	}
	return results
}

// resolveValues builds the field value map with the documented precedence:
// custom overrides, then template mappings, then categorizer plus profile,
// then the AI mapper for whatever is left.
func (a *Agent) resolveValues(
	ctx context.Context,
	req input.FillRequest,
	fields []entity.FormField,
	profile *entity.CompanyProfile,
) map[string]string {
	values := make(map[string]string, len(fields))

	var tpl *entity.FormTemplate
	if req.TemplateName != "" {
		loaded, err := a.store.Template(req.TemplateName)
		if err != nil {
			a.logger.Warn("template not found", "name", req.TemplateName, "error", err)
		} else {
			tpl = loaded
		}
	}

	var unmapped []entity.FormField
	for _, field := range fields {
		if v, ok := req.CustomFields[field.Name]; ok && v != "" {
			values[field.Name] = v
			continue
		}
		if tpl != nil {
			if category, ok := tpl.FieldMappings[field.Name]; ok {
				if v := ProfileValue(profile, category); v != "" {
					values[field.Name] = v
					continue
				}
			}
		}
		if category := CategorizeField(field); category != CategoryOther {
			if v := ProfileValue(profile, category); v != "" {
				values[field.Name] = v
				continue
			}
		}
		unmapped = append(unmapped, field)
	}

	if len(unmapped) > 0 {
		a.logger.Info("asking model to map fields", "count", len(unmapped))
		for name, v := range a.mapper.MapFields(ctx, unmapped, profile) {
			if _, taken := values[name]; !taken && v != "" {
				values[name] = v
			}
		}
	}
	return values
}

func (a *Agent) followApplyLink(ctx context.Context, browser output.BrowserPort, result *entity.FillResult) {
	page, err := browser.GetPageContent(ctx)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("read page for apply link: %v", err))
		return
	}
	selector, found := a.parser.FindApplyLink(page.HTML)
	if !found {
		a.logger.Info("no apply link found, continuing with current page")
		return
	}
	if err := browser.Click(ctx, selector); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("click apply link: %v", err))
		return
	}
	a.logger.Info("navigated to application form", "selector", selector)
}

func (a *Agent) uploadFiles(
	ctx context.Context,
	browser output.BrowserPort,
	fields []entity.FormField,
	uploads map[string][]string,
	result *entity.FillResult,
) {
	if len(uploads) == 0 {
		return
	}
	selectors := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Type == "file" {
			selectors[f.Name] = f.Selector
		}
	}
	for name, paths := range uploads {
		selector, ok := selectors[name]
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no file input named %q on the form", name))
			continue
		}
		if err := browser.UploadFiles(ctx, selector, paths); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("upload to %q: %v", name, err))
			continue
		}
		result.FilesUploaded = append(result.FilesUploaded, paths...)
	}
}

// filledSubset keeps only the values for fields that exist on the form, so
// validation matches what was actually typed.
func filledSubset(values map[string]string, fields []entity.FormField) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if v, ok := values[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Summary renders a FillResult for console display.
func Summary(r *entity.FillResult) string {
	var sb strings.Builder
	if r.Success {
		sb.WriteString("form filled successfully\n")
	} else {
		sb.WriteString("form filling failed\n")
	}
	fmt.Fprintf(&sb, "url: %s\n", r.URL)
	fmt.Fprintf(&sb, "fields: %d/%d filled in %s\n", r.FieldsFilled, r.TotalFields, r.Elapsed.Round(time.Millisecond))
	if r.ScreenshotPath != "" {
		fmt.Fprintf(&sb, "screenshot: %s\n", r.ScreenshotPath)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&sb, "error: %s\n", e)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&sb, "warning: %s\n", w)
	}
	return sb.String()
}
