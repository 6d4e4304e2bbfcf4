package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"venture-agent/internal/application/port/input"
	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

var _ input.ResearchRunner = (*Pipeline)(nil)

const (
	maxArticles       = 3
	maxExtractedNames = 5
	maxResearched     = 4

	articleExcerpt = 1500
	siteExcerpt    = 2500
)

// Pipeline runs the research workflow as fixed linear stages over a
// ResearchState. Each stage degrades to a default on failure; only a failed
// initial search aborts the run.
type Pipeline struct {
	search    output.SearchPort
	llm       output.LLMPort
	logger    output.LoggerPort
	toolDelay time.Duration
}

func NewPipeline(search output.SearchPort, llm output.LLMPort, logger output.LoggerPort, toolDelay time.Duration) *Pipeline {
	return &Pipeline{search: search, llm: llm, logger: logger, toolDelay: toolDelay}
}

// Run executes extract, research, analyze, report, and matrix in order.
func (p *Pipeline) Run(ctx context.Context, query string) (*entity.ResearchState, error) {
	state := &entity.ResearchState{Query: query}

	if err := p.extractTools(ctx, state); err != nil {
		return nil, fmt.Errorf("extract tools: %w", err)
	}
	p.researchTools(ctx, state)
	p.analyze(ctx, state)
	p.writeReport(ctx, state)
	p.buildMatrix(ctx, state)

	return state, nil
}

// extractTools searches for comparison articles and asks the model for the
// tool names they mention. An LLM failure leaves the list empty; the research
// stage falls back to the raw search results.
func (p *Pipeline) extractTools(ctx context.Context, state *entity.ResearchState) error {
	articleQuery := state.Query + " tools comparison best alternatives"
	p.logger.Info("finding articles", "query", articleQuery)

	results, err := p.search.Search(ctx, articleQuery, maxArticles)
	if err != nil {
		return err
	}
	state.SearchResults = results

	var content strings.Builder
	for _, r := range results {
		content.WriteString(excerpt(r.Markdown, articleExcerpt))
		content.WriteString("\n\n")
	}

	prompt, err := toolExtractionPrompt.Format(map[string]any{
		"query":   state.Query,
		"content": content.String(),
	})
	if err != nil {
		return fmt.Errorf("format extraction prompt: %w", err)
	}

	resp, err := p.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: toolExtractionSystem},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0.1,
	})
	if err != nil {
		p.logger.Warn("tool extraction failed, falling back to search results", "error", err)
		return nil
	}

	for _, line := range strings.Split(resp.Content, "\n") {
		name := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*0123456789. "))
		if name == "" {
			continue
		}
		state.ExtractedTools = append(state.ExtractedTools, name)
		if len(state.ExtractedTools) == maxExtractedNames {
			break
		}
	}
	p.logger.Info("extracted tools", "names", strings.Join(state.ExtractedTools, ", "))
	return nil
}

// researchTools builds a ToolRecord per candidate, sequentially with a delay
// between tools. A failed search, scrape, or analysis still yields a minimal
// record so downstream stages have something to work with.
func (p *Pipeline) researchTools(ctx context.Context, state *entity.ResearchState) {
	names := state.ExtractedTools
	if len(names) == 0 {
		for _, r := range state.SearchResults {
			if t := strings.TrimSpace(r.Title); t != "" {
				names = append(names, t)
			}
		}
	}
	if len(names) > maxResearched {
		names = names[:maxResearched]
	}

	for i, name := range names {
		p.logger.Info("researching tool", "name", name)
		state.Tools = append(state.Tools, p.researchOne(ctx, name))
		if i < len(names)-1 {
			sleepCtx(ctx, p.toolDelay)
		}
	}
}

func (p *Pipeline) researchOne(ctx context.Context, name string) entity.ToolRecord {
	record := entity.ToolRecord{Name: name, PricingModel: entity.PricingUnknown}

	results, err := p.search.Search(ctx, name+" official site", 1)
	if err != nil || len(results) == 0 {
		p.logger.Warn("no site found for tool", "name", name, "error", err)
		return record
	}
	record.Website = results[0].URL

	content := results[0].Markdown
	if scraped, err := p.search.Scrape(ctx, results[0].URL); err == nil && scraped != "" {
		content = scraped
	}

	prompt, err := toolAnalysisPrompt.Format(map[string]any{
		"name":    name,
		"content": excerpt(content, siteExcerpt),
	})
	if err != nil {
		p.logger.Warn("format analysis prompt", "name", name, "error", err)
		return record
	}

	resp, err := p.llm.ChatJSON(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: toolAnalysisSystem},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0.1,
	})
	if err != nil {
		p.logger.Warn("tool analysis failed", "name", name, "error", err)
		return record
	}

	parsed, err := parseToolRecord(resp.Content)
	if err != nil {
		p.logger.Warn("unparseable tool analysis", "name", name, "error", err)
		return record
	}

	parsed.Name = name
	if parsed.Website == "" {
		parsed.Website = record.Website
	}
	if parsed.PricingModel == "" {
		parsed.PricingModel = entity.PricingUnknown
	}
	return parsed
}

func (p *Pipeline) analyze(ctx context.Context, state *entity.ResearchState) {
	prompt, err := recommendationsPrompt.Format(map[string]any{
		"query": state.Query,
		"tools": toolsJSON(state.Tools),
	})
	if err != nil {
		p.logger.Warn("format recommendations prompt", "error", err)
		return
	}
	resp, err := p.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: recommendationsSystem},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		p.logger.Warn("analysis failed", "error", err)
		state.Analysis = "No analysis available."
		return
	}
	state.Analysis = strings.TrimSpace(resp.Content)
}

func (p *Pipeline) writeReport(ctx context.Context, state *entity.ResearchState) {
	prompt, err := reportPrompt.Format(map[string]any{
		"query": state.Query,
		"tools": toolsJSON(state.Tools),
	})
	if err != nil {
		p.logger.Warn("format report prompt", "error", err)
		return
	}
	resp, err := p.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: reportSystem},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		p.logger.Warn("report generation failed", "error", err)
		state.Report = "No detailed report available."
		return
	}
	state.Report = strings.TrimSpace(resp.Content)
}

// buildMatrix asks for a structured comparison matrix and falls back to a
// locally built one on any failure. It always leaves state.Matrix non-nil.
func (p *Pipeline) buildMatrix(ctx context.Context, state *entity.ResearchState) {
	defer func() {
		if state.Matrix == nil {
			state.Matrix = FallbackMatrix(state.Tools)
		}
	}()

	prompt, err := comparisonMatrixPrompt.Format(map[string]any{
		"query": state.Query,
		"tools": toolsJSON(state.Tools),
	})
	if err != nil {
		p.logger.Warn("format matrix prompt", "error", err)
		return
	}
	resp, err := p.llm.ChatJSON(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: comparisonMatrixSystem},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0.1,
	})
	if err != nil {
		p.logger.Warn("matrix generation failed, using fallback", "error", err)
		return
	}

	matrix, err := parseMatrix(resp.Content)
	if err != nil {
		p.logger.Warn("unparseable matrix, using fallback", "error", err)
		return
	}
	state.Matrix = matrix
}

// FallbackMatrix builds a comparison matrix from the records alone. Used when
// the model cannot produce one; safe for zero tools.
func FallbackMatrix(tools []entity.ToolRecord) *entity.ComparisonMatrix {
	categories := []string{
		"Pricing Model", "Open Source", "API Available",
		"Language Support", "Learning Curve",
	}
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}

	m := entity.NewComparisonMatrix(names, categories)
	for _, t := range tools {
		m.Set(t.Name, "Pricing Model", string(orUnknownPricing(t.PricingModel)))
		m.Set(t.Name, "Open Source", triStateCell(t.IsOpenSource))
		m.Set(t.Name, "API Available", triStateCell(t.APIAvailable))
		m.Set(t.Name, "Language Support", topLanguages(t.LanguageSupport, 3))
		m.Set(t.Name, "Learning Curve", "Medium")
	}
	return m
}

func orUnknownPricing(p entity.PricingModel) entity.PricingModel {
	if p == "" {
		return entity.PricingUnknown
	}
	return p
}

func triStateCell(v *bool) string {
	switch {
	case v == nil:
		return "Unknown"
	case *v:
		return "Yes"
	default:
		return "No"
	}
}

func topLanguages(langs []string, n int) string {
	if len(langs) == 0 {
		return "N/A"
	}
	if len(langs) > n {
		langs = langs[:n]
	}
	return strings.Join(langs, ", ")
}

func parseToolRecord(content string) (entity.ToolRecord, error) {
	var record entity.ToolRecord
	obj, err := extractJSONObject(content)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal([]byte(obj), &record); err != nil {
		return record, fmt.Errorf("decode tool record: %w", err)
	}
	return record, nil
}

func parseMatrix(content string) (*entity.ComparisonMatrix, error) {
	obj, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}
	var matrix entity.ComparisonMatrix
	if err := json.Unmarshal([]byte(obj), &matrix); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	if matrix.Empty() {
		return nil, fmt.Errorf("matrix has no tools or categories")
	}
	return &matrix, nil
}

// extractJSONObject cuts the outermost JSON object out of a possibly noisy
// completion.
func extractJSONObject(content string) (string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return content[start : end+1], nil
}

func toolsJSON(tools []entity.ToolRecord) string {
	data, err := json.MarshalIndent(tools, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func excerpt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
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
