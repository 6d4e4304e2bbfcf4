package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"venture-agent/internal/di"
	"venture-agent/internal/domain/entity"
	"venture-agent/internal/infrastructure/userinteraction"
	"venture-agent/internal/usecase/scoring"
)

// Canned query templates for common research topics.
var queryTemplates = map[string]string{
	"ci":         "CI/CD pipeline tools",
	"db":         "developer database tools",
	"monitoring": "application monitoring tools",
	"auth":       "authentication and authorization services",
	"deploy":     "application deployment platforms",
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	query := flag.String("query", "", "run a single research query and exit")
	flag.Parse()

	container, err := di.NewResearchContainer("research", *debug)
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	console := userinteraction.NewConsole()
	repl := &repl{container: container, console: console}

	if *query != "" {
		repl.research(ctx, *query)
		return
	}

	console.Banner("Developer Tools Research Agent")
	console.Info("Type a query to research, or 'help' for commands.")

	for {
		line, err := console.Prompt("research>")
		if err == io.EOF {
			return
		}
		if err != nil {
			console.Error("%v", err)
			return
		}
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		repl.dispatch(ctx, line)
		if ctx.Err() != nil {
			return
		}
	}
}

// repl holds the last research result so follow-up commands can slice it.
type repl struct {
	container *di.ResearchContainer
	console   *userinteraction.Console
	state     *entity.ResearchState
}

func (r *repl) dispatch(ctx context.Context, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		r.help()
	case "research":
		r.research(ctx, rest)
	case "templates":
		r.templates()
	case "list":
		r.requireState(func(s *entity.ResearchState) { r.console.PrintToolList(s.Tools) })
	case "show":
		r.show(rest)
	case "filter":
		r.filter(rest)
	case "sort":
		r.sortTools(rest)
	case "score":
		r.score(rest)
	case "compare":
		r.compare(rest)
	case "stats":
		r.stats()
	case "matrix":
		r.requireState(func(s *entity.ResearchState) { r.console.PrintMatrix(s.Matrix) })
	case "report":
		r.requireState(func(s *entity.ResearchState) { r.console.Info("%s", s.Report) })
	case "save":
		r.save()
	default:
		// Bare input is treated as a research query.
		r.research(ctx, line)
	}
}

func (r *repl) help() {
	r.console.Info(`Commands:
  research <query>      run the research pipeline (or just type the query)
  templates             list canned query templates (research <name> works too)
  list                  list the tools from the last run
  show <n>              show full details for tool n
  filter k=v ...        filter tools (pricing=, opensource=, api=, lang=)
  sort <key> [desc]     sort tools (name, popularity, languages, integrations)
  score k=v ...         rank by preferences (pricing=, opensource, api,
                        lang=a,b tech=a,b integrations=a,b)
  compare <a> <b>       quick comparison of two tools by number
  stats                 trend and quick statistics
  matrix                print the comparison matrix
  report                print the detailed report
  save                  write JSON and Markdown reports
  exit                  quit`)
}

func (r *repl) research(ctx context.Context, query string) {
	if query == "" {
		r.console.Warn("usage: research <query>")
		return
	}
	if tpl, ok := queryTemplates[query]; ok {
		query = tpl
	}

	r.console.Step("researching %q, this can take a while", query)
	state, err := r.container.Runner.Run(ctx, query)
	if err != nil {
		r.console.Error("research failed: %v", err)
		return
	}
	r.state = state

	r.console.Success("found %d tools", len(state.Tools))
	r.console.PrintToolList(state.Tools)
	if state.Analysis != "" {
		r.console.Banner("Recommendation")
		r.console.Info("%s", state.Analysis)
	}
	r.console.PrintMatrix(state.Matrix)
}

func (r *repl) templates() {
	names := make([]string, 0, len(queryTemplates))
	for name := range queryTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.console.Info("  %-12s %s", name, queryTemplates[name])
	}
}

func (r *repl) requireState(fn func(*entity.ResearchState)) {
	if r.state == nil {
		r.console.Warn("run a research query first")
		return
	}
	fn(r.state)
}

func (r *repl) show(arg string) {
	r.requireState(func(s *entity.ResearchState) {
		i, err := strconv.Atoi(arg)
		if err != nil || i < 1 || i > len(s.Tools) {
			r.console.Warn("usage: show <1..%d>", len(s.Tools))
			return
		}
		r.console.PrintToolDetail(s.Tools[i-1])
	})
}

func (r *repl) filter(args string) {
	r.requireState(func(s *entity.ResearchState) {
		var opts scoring.FilterOptions
		for _, kv := range strings.Fields(args) {
			key, value, _ := strings.Cut(kv, "=")
			switch key {
			case "pricing":
				opts.Pricing = entity.PricingModel(value)
			case "opensource":
				opts.OpenSource = parseBoolFlag(value)
			case "api":
				opts.HasAPI = parseBoolFlag(value)
			case "lang":
				opts.Language = value
			default:
				r.console.Warn("unknown filter %q", key)
				return
			}
		}
		filtered := scoring.Filter(s.Tools, opts)
		r.console.Info("%d of %d tools match", len(filtered), len(s.Tools))
		r.console.PrintToolList(filtered)
	})
}

func (r *repl) sortTools(args string) {
	r.requireState(func(s *entity.ResearchState) {
		fields := strings.Fields(args)
		if len(fields) == 0 {
			r.console.Warn("usage: sort <name|popularity|languages|integrations> [desc]")
			return
		}
		desc := len(fields) > 1 && fields[1] == "desc"
		sorted := scoring.SortTools(s.Tools, scoring.SortKey(fields[0]), desc)
		r.console.PrintToolList(sorted)
	})
}

func (r *repl) score(args string) {
	r.requireState(func(s *entity.ResearchState) {
		var prefs entity.PreferenceSet
		for _, kv := range strings.Fields(args) {
			key, value, _ := strings.Cut(kv, "=")
			switch key {
			case "pricing":
				prefs.Pricing = entity.PricingModel(value)
			case "opensource":
				prefs.PreferOpenSource = true
			case "api":
				prefs.RequireAPI = true
			case "lang":
				prefs.Languages = splitCSV(value)
			case "tech":
				prefs.TechStack = splitCSV(value)
			case "integrations":
				prefs.Integrations = splitCSV(value)
			default:
				r.console.Warn("unknown preference %q", key)
				return
			}
		}
		r.console.PrintScores(scoring.Rank(s.Tools, prefs))
	})
}

func (r *repl) compare(args string) {
	r.requireState(func(s *entity.ResearchState) {
		fields := strings.Fields(args)
		if len(fields) != 2 {
			r.console.Warn("usage: compare <a> <b>")
			return
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil ||
			a < 1 || a > len(s.Tools) || b < 1 || b > len(s.Tools) {
			r.console.Warn("tool numbers must be between 1 and %d", len(s.Tools))
			return
		}
		r.console.Info("%s", scoring.CompareTwoTools(s.Tools[a-1], s.Tools[b-1]))
	})
}

func (r *repl) stats() {
	r.requireState(func(s *entity.ResearchState) {
		trend := scoring.TrendStats(s.Tools)
		quick := scoring.QuickStats(s.Tools)

		r.console.Banner("Statistics")
		r.console.Info("Tools: %d  Open source: %d  With API: %d",
			quick.Total, quick.OpenSource, quick.WithAPI)
		r.console.Info("Avg languages per tool: %.1f (unique: %d)",
			quick.AvgLangs, quick.UniqueLangs)
		r.console.Info("Avg popularity: %.1f  Most popular: %s  Least popular: %s",
			trend.AvgPopularity, trend.MostPopular, trend.LeastPopular)
		if len(trend.RisingTools) > 0 {
			r.console.Info("Rising: %s", strings.Join(trend.RisingTools, ", "))
		}
		if len(trend.DecliningTools) > 0 {
			r.console.Info("Declining: %s", strings.Join(trend.DecliningTools, ", "))
		}
	})
}

func (r *repl) save() {
	r.requireState(func(s *entity.ResearchState) {
		jsonPath, err := r.container.Reports.SaveJSON(s)
		if err != nil {
			r.console.Error("save json: %v", err)
			return
		}
		mdPath, err := r.container.Reports.SaveMarkdown(s)
		if err != nil {
			r.console.Error("save markdown: %v", err)
			return
		}
		r.console.Success("saved %s and %s", jsonPath, mdPath)
	})
}

func parseBoolFlag(s string) *bool {
	v := s == "yes" || s == "true" || s == "y" || s == "1" || s == ""
	return &v
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
