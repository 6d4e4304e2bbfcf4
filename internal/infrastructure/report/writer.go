package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

var _ output.ReportWriter = (*FileWriter)(nil)

// FileWriter dumps research results as research_<query-slug>_<timestamp>
// JSON and Markdown files under an output directory.
type FileWriter struct {
	dir string
	now func() time.Time
}

func NewFileWriter(dir string) *FileWriter {
	if dir == "" {
		dir = "reports"
	}
	return &FileWriter{dir: dir, now: time.Now}
}

func (w *FileWriter) SaveJSON(state *entity.ResearchState) (string, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal research state: %w", err)
	}
	return w.write(state.Query, "json", data)
}

func (w *FileWriter) SaveMarkdown(state *entity.ResearchState) (string, error) {
	return w.write(state.Query, "md", []byte(RenderMarkdown(state)))
}

func (w *FileWriter) write(query, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := fmt.Sprintf("research_%s_%s.%s", slug(query), w.now().Format("2006-01-02_15-04-05"), ext)
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// RenderMarkdown builds the full report document: analysis, per-tool
// summaries, the detailed report, and the comparison matrix table.
func RenderMarkdown(state *entity.ResearchState) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Research: %s\n\n", state.Query)

	if state.Analysis != "" {
		sb.WriteString("## Recommendation\n\n")
		sb.WriteString(state.Analysis)
		sb.WriteString("\n\n")
	}

	if len(state.Tools) > 0 {
		sb.WriteString("## Tools\n")
		for _, tool := range state.Tools {
			sb.WriteString(FormatToolSummary(tool))
		}
		sb.WriteString("\n")
	}

	if state.Report != "" {
		sb.WriteString("## Detailed Report\n\n")
		sb.WriteString(state.Report)
		sb.WriteString("\n")
	}

	sb.WriteString(RenderMatrix(state.Matrix))
	return sb.String()
}

// RenderMatrix renders the comparison matrix as a Markdown table. Missing
// cells show "N/A".
func RenderMatrix(m *entity.ComparisonMatrix) string {
	if m.Empty() {
		return "No comparison data available\n"
	}

	var sb strings.Builder
	sb.WriteString("\n## Comparison Matrix\n\n")

	sb.WriteString("| Tool | " + strings.Join(m.Categories, " | ") + " |\n")
	sb.WriteString("|------|" + strings.Repeat("------|", len(m.Categories)) + "\n")

	for _, tool := range m.Tools {
		cells := make([]string, 0, len(m.Categories))
		for _, cat := range m.Categories {
			cells = append(cells, m.Cell(tool, cat))
		}
		sb.WriteString("| " + tool + " | " + strings.Join(cells, " | ") + " |\n")
	}
	return sb.String()
}

// FormatToolSummary renders one tool as a Markdown section.
func FormatToolSummary(tool entity.ToolRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n### %s\n\n", orDefault(tool.Name, "Unknown Tool"))
	fmt.Fprintf(&sb, "**Description:** %s\n", orDefault(tool.Description, "No description available"))
	fmt.Fprintf(&sb, "**Website:** %s\n", orDefault(tool.Website, "N/A"))
	fmt.Fprintf(&sb, "**Pricing:** %s\n", orDefault(string(tool.PricingModel), "Unknown"))
	fmt.Fprintf(&sb, "**Open Source:** %s\n", yesNoUnknown(tool.IsOpenSource))
	fmt.Fprintf(&sb, "**API Available:** %s\n", yesNoUnknown(tool.APIAvailable))

	if len(tool.LanguageSupport) > 0 {
		fmt.Fprintf(&sb, "**Supported Languages:** %s\n", strings.Join(tool.LanguageSupport, ", "))
	}
	if len(tool.TechStack) > 0 {
		fmt.Fprintf(&sb, "**Tech Stack:** %s\n", strings.Join(tool.TechStack, ", "))
	}
	if len(tool.IntegrationCapabilities) > 0 {
		fmt.Fprintf(&sb, "**Integrations:** %s\n", strings.Join(tool.IntegrationCapabilities, ", "))
	}
	if tool.TrendStatus != "" {
		fmt.Fprintf(&sb, "**Trend:** %s (popularity %d/10)\n", tool.TrendStatus, tool.PopularityScore)
	}
	return sb.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func yesNoUnknown(v *bool) string {
	switch {
	case v == nil:
		return "Unknown"
	case *v:
		return "Yes"
	default:
		return "No"
	}
}

// slug makes a query safe for a filename.
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var sb strings.Builder
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '/':
			sb.WriteRune('-')
		}
	}
	out := strings.Trim(sb.String(), "-")
	if out == "" {
		return "query"
	}
	if len(out) > 50 {
		out = out[:50]
	}
	return out
}
