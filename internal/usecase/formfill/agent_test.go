package formfill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-agent/internal/application/port/input"
	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

type fakeBrowser struct {
	html      string
	navErr    error
	filled    map[string]string
	selected  map[string]string
	uploaded  map[string][]string
	clicked   []string
	shots     int
	closed    bool
	currently string
}

func newFakeBrowser(html string) *fakeBrowser {
	return &fakeBrowser{
		html:     html,
		filled:   map[string]string{},
		selected: map[string]string{},
		uploaded: map[string][]string{},
	}
}

func (b *fakeBrowser) Navigate(_ context.Context, url string) error {
	if b.navErr != nil {
		return b.navErr
	}
	b.currently = url
	return nil
}

func (b *fakeBrowser) Click(_ context.Context, selector string) error {
	b.clicked = append(b.clicked, selector)
	return nil
}

func (b *fakeBrowser) Fill(_ context.Context, selector, text string) error {
	b.filled[selector] = text
	return nil
}

func (b *fakeBrowser) SelectOption(_ context.Context, selector, value string) error {
	b.selected[selector] = value
	return nil
}

func (b *fakeBrowser) UploadFiles(_ context.Context, selector string, paths []string) error {
	b.uploaded[selector] = paths
	return nil
}

func (b *fakeBrowser) GetPageContent(context.Context) (*entity.PageContent, error) {
	return &entity.PageContent{URL: b.currently, HTML: b.html}, nil
}

func (b *fakeBrowser) Screenshot(context.Context) (*entity.Screenshot, error) {
	b.shots++
	return &entity.Screenshot{Path: "screenshots/test.png"}, nil
}

func (b *fakeBrowser) CurrentURL() string { return b.currently }
func (b *fakeBrowser) Close()             { b.closed = true }

type fakeParser struct {
	fields    []entity.FormField
	applyLink string
}

func (p *fakeParser) ExtractFields(string) ([]entity.FormField, error) {
	return p.fields, nil
}

func (p *fakeParser) FindApplyLink(string) (string, bool) {
	return p.applyLink, p.applyLink != ""
}

type fakeStore struct {
	profile   *entity.CompanyProfile
	templates map[string]*entity.FormTemplate
}

func (s *fakeStore) LoadCompanyProfile() (*entity.CompanyProfile, error) {
	if s.profile == nil {
		return nil, errors.New("no profile")
	}
	return s.profile, nil
}

func (s *fakeStore) SaveCompanyProfile(*entity.CompanyProfile) error { return nil }
func (s *fakeStore) LoadVCDatabase() ([]entity.VCFirm, error)       { return nil, nil }
func (s *fakeStore) SaveVCDatabase([]entity.VCFirm) error           { return nil }
func (s *fakeStore) AddVCFirm(entity.VCFirm) error                  { return nil }
func (s *fakeStore) SearchFirms([]string, []string) ([]entity.VCFirm, error) {
	return nil, nil
}
func (s *fakeStore) ExportVCListCSV(string) error        { return nil }
func (s *fakeStore) ImportVCListCSV(string) (int, error) { return 0, nil }

func (s *fakeStore) Template(name string) (*entity.FormTemplate, error) {
	tpl, ok := s.templates[name]
	if !ok {
		return nil, errors.New("template not found")
	}
	return tpl, nil
}

func (s *fakeStore) SaveTemplate(string, *entity.FormTemplate) error { return nil }
func (s *fakeStore) ListTemplates() ([]string, error)                { return nil, nil }

func testAgent(browser *fakeBrowser, parser *fakeParser, store *fakeStore, llm *fakeLLM) *Agent {
	factory := func(context.Context) (output.BrowserPort, error) { return browser, nil }
	opts := &Options{FieldDelay: time.Nanosecond, FormDelay: time.Nanosecond}
	return NewAgent(factory, parser, store, NewMapper(llm, nopLogger{}), nopLogger{}, opts)
}

func testProfile() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		CompanyName:  "Acme Robotics",
		Industry:     "Robotics",
		FundingStage: "Seed",
		TeamSize:     7,
		Email:        "hello@acme.dev",
	}
}

func TestFillMapsProfileThroughCategorizer(t *testing.T) {
	browser := newFakeBrowser("<form></form>")
	parser := &fakeParser{fields: []entity.FormField{
		{Name: "company", Label: "Company Name", Type: "text", Selector: "#company"},
		{Name: "industry", Label: "Industry", Type: "text", Selector: "#industry"},
	}}
	store := &fakeStore{profile: testProfile()}
	agent := testAgent(browser, parser, store, &fakeLLM{response: "{}"})

	result := agent.Fill(context.Background(), input.FillRequest{URL: "https://vc.example/apply"})

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 2, result.FieldsFilled)
	assert.Equal(t, "Acme Robotics", browser.filled["#company"])
	assert.Equal(t, "Robotics", browser.filled["#industry"])
	assert.True(t, browser.closed)
}

func TestFillPrecedenceCustomOverTemplateOverCategorizer(t *testing.T) {
	browser := newFakeBrowser("<form></form>")
	parser := &fakeParser{fields: []entity.FormField{
		{Name: "company", Label: "Company Name", Type: "text", Selector: "#company"},
		{Name: "q7", Label: "", Type: "text", Selector: "#q7"},
	}}
	store := &fakeStore{
		profile: testProfile(),
		templates: map[string]*entity.FormTemplate{
			"ycombinator": {FieldMappings: map[string]string{"q7": "industry"}},
		},
	}
	agent := testAgent(browser, parser, store, &fakeLLM{response: "{}"})

	result := agent.Fill(context.Background(), input.FillRequest{
		URL:          "https://vc.example/apply",
		TemplateName: "ycombinator",
		CustomFields: map[string]string{"company": "Override Inc"},
	})

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, "Override Inc", browser.filled["#company"])
	assert.Equal(t, "Robotics", browser.filled["#q7"])
}

func TestFillFallsBackToAIMapper(t *testing.T) {
	browser := newFakeBrowser("<form></form>")
	parser := &fakeParser{fields: []entity.FormField{
		{Name: "xyzzy", Label: "xyzzy", Type: "text", Selector: "#xyzzy", Required: true},
	}}
	store := &fakeStore{profile: testProfile()}
	llm := &fakeLLM{response: `{"xyzzy": "model answer"}`}
	agent := testAgent(browser, parser, store, llm)

	result := agent.Fill(context.Background(), input.FillRequest{URL: "https://vc.example/apply"})

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, "model answer", browser.filled["#xyzzy"])
	require.Len(t, llm.requests, 1)
}

func TestFillSelectAndUpload(t *testing.T) {
	browser := newFakeBrowser("<form></form>")
	parser := &fakeParser{fields: []entity.FormField{
		{Name: "stage", Label: "Funding Stage", Type: "select", Selector: "#stage", Options: []string{"Seed", "Series A"}},
		{Name: "deck", Label: "Pitch Deck", Type: "file", Selector: "#deck"},
	}}
	store := &fakeStore{profile: testProfile()}
	agent := testAgent(browser, parser, store, &fakeLLM{response: "{}"})

	result := agent.Fill(context.Background(), input.FillRequest{
		URL:         "https://vc.example/apply",
		FileUploads: map[string][]string{"deck": {"deck.pdf"}},
	})

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, "Seed", browser.selected["#stage"])
	assert.Equal(t, []string{"deck.pdf"}, browser.uploaded["#deck"])
	assert.Equal(t, []string{"deck.pdf"}, result.FilesUploaded)
}

func TestFillAutoNavigateClicksApplyLink(t *testing.T) {
	browser := newFakeBrowser("<form></form>")
	parser := &fakeParser{
		applyLink: "a[href='/apply']",
		fields: []entity.FormField{
			{Name: "company", Label: "Company Name", Type: "text", Selector: "#company"},
		},
	}
	store := &fakeStore{profile: testProfile()}
	agent := testAgent(browser, parser, store, &fakeLLM{response: "{}"})

	result := agent.Fill(context.Background(), input.FillRequest{
		URL:          "https://vc.example",
		AutoNavigate: true,
	})

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, []string{"a[href='/apply']"}, browser.clicked)
}

func TestFillScreenshotAndEmptyForm(t *testing.T) {
	browser := newFakeBrowser("<p>nothing here</p>")
	parser := &fakeParser{}
	store := &fakeStore{profile: testProfile()}
	agent := testAgent(browser, parser, store, &fakeLLM{response: "{}"})

	result := agent.Fill(context.Background(), input.FillRequest{
		URL:            "https://vc.example/apply",
		TakeScreenshot: true,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Errors[0], "no form fields")
	assert.Zero(t, browser.shots)
}

func TestFillNavigateErrorFailsFast(t *testing.T) {
	browser := newFakeBrowser("<form></form>")
	browser.navErr = errors.New("dns failure")
	store := &fakeStore{profile: testProfile()}
	agent := testAgent(browser, &fakeParser{}, store, &fakeLLM{response: "{}"})

	result := agent.Fill(context.Background(), input.FillRequest{URL: "https://down.example"})

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "navigate")
	assert.True(t, browser.closed)
}

func TestBatchSequentialResults(t *testing.T) {
	browser := newFakeBrowser("<form></form>")
	parser := &fakeParser{fields: []entity.FormField{
		{Name: "company", Label: "Company Name", Type: "text", Selector: "#company"},
	}}
	store := &fakeStore{profile: testProfile()}
	agent := testAgent(browser, parser, store, &fakeLLM{response: "{}"})

	urls := []string{"https://a.example/apply", "https://b.example/apply"}
	results := agent.Batch(context.Background(), urls, input.FillRequest{})

	require.Len(t, results, 2)
	assert.Equal(t, "https://a.example/apply", results[0].URL)
	assert.Equal(t, "https://b.example/apply", results[1].URL)
}
