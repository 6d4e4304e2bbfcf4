package userinteraction

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"venture-agent/internal/domain/entity"
	"venture-agent/internal/usecase/scoring"
)

const timeRound = 100 * time.Millisecond

// Console renders results and reads user input for the interactive
// commands. All output goes through one writer so tests can capture it.
type Console struct {
	out    io.Writer
	reader *bufio.Reader
}

func NewConsole() *Console {
	return &Console{
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
	}
}

func NewConsoleWriter(out io.Writer) *Console {
	return &Console{
		out:    out,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Prompt prints a colored prompt and reads one line. io.EOF is returned
// as-is so the REPL can exit cleanly on Ctrl-D.
func (c *Console) Prompt(label string) (string, error) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(c.out, "\n%s ", label)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Banner(title string) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(c.out, "\n━━━ %s ━━━\n", title)
}

func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) Success(format string, args ...any) {
	green := color.New(color.FgGreen)
	green.Fprintf(c.out, "✓ "+format+"\n", args...)
}

func (c *Console) Warn(format string, args ...any) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(c.out, "⚠ "+format+"\n", args...)
}

func (c *Console) Error(format string, args ...any) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(c.out, "❌ "+format+"\n", args...)
}

func (c *Console) Step(format string, args ...any) {
	blue := color.New(color.FgBlue)
	blue.Fprintf(c.out, "🔍 "+format+"\n", args...)
}

// PrintToolList shows a compact one-line-per-tool listing.
func (c *Console) PrintToolList(tools []entity.ToolRecord) {
	if len(tools) == 0 {
		c.Warn("no tools to show")
		return
	}
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	for i, tool := range tools {
		bold.Fprintf(c.out, "%d. %s", i+1, tool.Name)
		if tool.PricingModel != "" {
			dim.Fprintf(c.out, "  [%s]", tool.PricingModel)
		}
		if tool.Website != "" {
			dim.Fprintf(c.out, "  %s", tool.Website)
		}
		fmt.Fprintln(c.out)
		if tool.Description != "" {
			dim.Fprintf(c.out, "   %s\n", truncate(tool.Description, 120))
		}
	}
}

// PrintToolDetail shows everything known about one tool.
func (c *Console) PrintToolDetail(tool entity.ToolRecord) {
	c.Banner(tool.Name)
	c.printField("Description", orDash(tool.Description))
	c.printField("Website", orDash(tool.Website))
	c.printField("Pricing", orDash(string(tool.PricingModel)))
	c.printField("Open Source", triState(tool.IsOpenSource))
	c.printField("API Available", triState(tool.APIAvailable))
	if len(tool.LanguageSupport) > 0 {
		c.printField("Languages", strings.Join(tool.LanguageSupport, ", "))
	}
	if len(tool.TechStack) > 0 {
		c.printField("Tech Stack", strings.Join(tool.TechStack, ", "))
	}
	if len(tool.IntegrationCapabilities) > 0 {
		c.printField("Integrations", strings.Join(tool.IntegrationCapabilities, ", "))
	}
	if tool.TrendStatus != "" {
		c.printField("Trend", fmt.Sprintf("%s (popularity %d/10)", tool.TrendStatus, tool.PopularityScore))
	}
}

// PrintScores shows ranked preference scores with a simple bar.
func (c *Console) PrintScores(scored []scoring.ScoredTool) {
	if len(scored) == 0 {
		c.Warn("no tools to score")
		return
	}
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	for i, s := range scored {
		bold.Fprintf(c.out, "%d. %-24s", i+1, truncate(s.Tool.Name, 24))
		green.Fprintf(c.out, " %5.1f ", s.Score)
		fmt.Fprintln(c.out, strings.Repeat("█", int(s.Score)/5))
	}
}

// PrintMatrix renders the comparison matrix as an aligned text table.
func (c *Console) PrintMatrix(m *entity.ComparisonMatrix) {
	if m.Empty() {
		c.Warn("no comparison data available")
		return
	}

	widths := make([]int, len(m.Categories)+1)
	widths[0] = len("Tool")
	for _, tool := range m.Tools {
		if len(tool) > widths[0] {
			widths[0] = len(tool)
		}
	}
	for i, cat := range m.Categories {
		widths[i+1] = len(cat)
		for _, tool := range m.Tools {
			if cell := m.Cell(tool, cat); len(cell) > widths[i+1] {
				widths[i+1] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, 0, len(widths))
	header = append(header, pad("Tool", widths[0]))
	for i, cat := range m.Categories {
		header = append(header, pad(cat, widths[i+1]))
	}
	bold.Fprintln(c.out, strings.Join(header, "  "))

	for _, tool := range m.Tools {
		row := make([]string, 0, len(widths))
		row = append(row, pad(tool, widths[0]))
		for i, cat := range m.Categories {
			row = append(row, pad(m.Cell(tool, cat), widths[i+1]))
		}
		fmt.Fprintln(c.out, strings.Join(row, "  "))
	}
}

// PrintFillResult summarizes one form-filling run.
func (c *Console) PrintFillResult(r *entity.FillResult) {
	c.Banner("Fill Result")
	c.printField("URL", r.URL)
	c.printField("Fields filled", fmt.Sprintf("%d/%d", r.FieldsFilled, r.TotalFields))
	if len(r.FilesUploaded) > 0 {
		c.printField("Files uploaded", strings.Join(r.FilesUploaded, ", "))
	}
	if r.ScreenshotPath != "" {
		c.printField("Screenshot", r.ScreenshotPath)
	}
	c.printField("Elapsed", r.Elapsed.Round(timeRound).String())

	for _, warn := range r.Warnings {
		c.Warn("%s", warn)
	}
	for _, e := range r.Errors {
		c.Error("%s", e)
	}
	if r.Success {
		c.Success("form filled successfully")
	} else {
		c.Error("form filling finished with errors")
	}
}

func (c *Console) printField(name, value string) {
	bold := color.New(color.Bold)
	bold.Fprintf(c.out, "%-16s", name+":")
	fmt.Fprintln(c.out, value)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func triState(v *bool) string {
	switch {
	case v == nil:
		return "Unknown"
	case *v:
		return "Yes"
	default:
		return "No"
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
