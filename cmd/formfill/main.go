package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"venture-agent/internal/application/port/input"
	"venture-agent/internal/di"
	"venture-agent/internal/domain/entity"
	"venture-agent/internal/infrastructure/userinteraction"
	"venture-agent/internal/usecase/formfill"
)

const usage = `Usage: formfill <command> [options]

Commands:
  fill -url <url> [options]       analyze and fill one application form
  batch -file <urls.txt>          fill every URL listed in a file
  profile show                    print the company profile
  profile validate                check the profile for gaps
  vc list                         list the VC database
  vc add -name <n> [options]      add a firm to the database
  vc search [-focus a,b] [-stage a,b]
  vc export -file <out.csv>       export the database as CSV
  vc import -file <in.csv>        replace the database from CSV
  templates                       list known form templates
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	console := userinteraction.NewConsole()

	var err error
	switch os.Args[1] {
	case "fill":
		err = runFill(ctx, console, os.Args[2:])
	case "batch":
		err = runBatch(ctx, console, os.Args[2:])
	case "profile":
		err = runProfile(console, os.Args[2:])
	case "vc":
		err = runVC(console, os.Args[2:])
	case "templates":
		err = runTemplates(console)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Print(usage)
		os.Exit(2)
	}
	if err != nil {
		console.Error("%v", err)
		os.Exit(1)
	}
}

func runFill(ctx context.Context, console *userinteraction.Console, args []string) error {
	fs := flag.NewFlagSet("fill", flag.ExitOnError)
	req := input.FillRequest{}
	fs.StringVar(&req.URL, "url", "", "form URL")
	fs.StringVar(&req.TemplateName, "template", "", "form template name")
	fs.BoolVar(&req.AutoNavigate, "auto-navigate", true, "follow an apply link if the page is not the form itself")
	fs.BoolVar(&req.TakeScreenshot, "screenshot", true, "capture a screenshot of the filled form")
	fs.BoolVar(&req.Validate, "validate", true, "validate filled values before reporting")
	custom := fs.String("set", "", "custom field values as name=value,name=value")
	uploads := fs.String("upload", "", "file uploads as field=path,field=path")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.URL == "" {
		return fmt.Errorf("fill: -url is required")
	}
	req.CustomFields = parsePairs(*custom)
	req.FileUploads = parseUploads(*uploads)

	container, err := di.NewFormFillContainer("fill", *debug)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	console.Step("filling form at %s", req.URL)
	result := container.Filler.Fill(ctx, req)
	console.PrintFillResult(result)
	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func runBatch(ctx context.Context, console *userinteraction.Console, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	file := fs.String("file", "", "file with one form URL per line")
	template := fs.String("template", "", "form template name")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("batch: -file is required")
	}

	urls, err := readURLs(*file)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %s", *file)
	}

	container, err := di.NewFormFillContainer("batch", *debug)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	console.Step("filling %d forms", len(urls))
	results := container.Filler.Batch(ctx, urls, input.FillRequest{
		TemplateName:   *template,
		AutoNavigate:   true,
		TakeScreenshot: true,
		Validate:       true,
	})

	succeeded := 0
	for _, result := range results {
		console.PrintFillResult(result)
		if result.Success {
			succeeded++
		}
	}
	console.Banner("Batch Summary")
	console.Info("%d/%d forms filled successfully", succeeded, len(results))
	return nil
}

func runProfile(console *userinteraction.Console, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: formfill profile <show|validate>")
	}

	container, err := di.NewFormFillContainer("profile", false)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	profile, err := container.Store.LoadCompanyProfile()
	if err != nil {
		return err
	}

	switch args[0] {
	case "show":
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return err
		}
		console.Info("%s", data)
	case "validate":
		result := formfill.ValidateProfile(profile)
		for _, e := range result.Errors {
			console.Error("%s", e)
		}
		for _, w := range result.Warnings {
			console.Warn("%s", w)
		}
		if result.Valid {
			console.Success("profile looks complete")
		}
	default:
		return fmt.Errorf("usage: formfill profile <show|validate>")
	}
	return nil
}

func runVC(console *userinteraction.Console, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: formfill vc <list|add|search|export|import>")
	}

	container, err := di.NewFormFillContainer("vc", false)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()
	store := container.Store

	switch args[0] {
	case "list":
		firms, err := store.LoadVCDatabase()
		if err != nil {
			return err
		}
		printFirms(console, firms)

	case "add":
		fs := flag.NewFlagSet("vc add", flag.ExitOnError)
		var firm entity.VCFirm
		fs.StringVar(&firm.Name, "name", "", "firm name")
		fs.StringVar(&firm.Website, "website", "", "firm website")
		fs.StringVar(&firm.ApplicationURL, "apply-url", "", "application form URL")
		focus := fs.String("focus", "", "focus areas, comma-separated")
		stages := fs.String("stages", "", "investment stages, comma-separated")
		fs.StringVar(&firm.CheckSize, "check-size", "", "typical check size")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if firm.Name == "" {
			return fmt.Errorf("vc add: -name is required")
		}
		firm.FocusAreas = splitCSV(*focus)
		firm.InvestmentStages = splitCSV(*stages)
		if err := store.AddVCFirm(firm); err != nil {
			return err
		}
		console.Success("added %s", firm.Name)

	case "search":
		fs := flag.NewFlagSet("vc search", flag.ExitOnError)
		focus := fs.String("focus", "", "focus areas, comma-separated")
		stages := fs.String("stage", "", "investment stages, comma-separated")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		firms, err := store.SearchFirms(splitCSV(*focus), splitCSV(*stages))
		if err != nil {
			return err
		}
		printFirms(console, firms)

	case "export":
		fs := flag.NewFlagSet("vc export", flag.ExitOnError)
		file := fs.String("file", "vc_list.csv", "output CSV path")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := store.ExportVCListCSV(*file); err != nil {
			return err
		}
		console.Success("exported to %s", *file)

	case "import":
		fs := flag.NewFlagSet("vc import", flag.ExitOnError)
		file := fs.String("file", "", "input CSV path")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *file == "" {
			return fmt.Errorf("vc import: -file is required")
		}
		n, err := store.ImportVCListCSV(*file)
		if err != nil {
			return err
		}
		console.Success("imported %d firms", n)

	default:
		return fmt.Errorf("usage: formfill vc <list|add|search|export|import>")
	}
	return nil
}

func runTemplates(console *userinteraction.Console) error {
	container, err := di.NewFormFillContainer("templates", false)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	names, err := container.Store.ListTemplates()
	if err != nil {
		return err
	}
	for _, name := range names {
		tpl, err := container.Store.Template(name)
		if err != nil {
			console.Warn("%s: %v", name, err)
			continue
		}
		console.Info("  %-14s %s (%d field mappings)", name, tpl.Name, len(tpl.FieldMappings))
	}
	return nil
}

func printFirms(console *userinteraction.Console, firms []entity.VCFirm) {
	if len(firms) == 0 {
		console.Warn("no firms found")
		return
	}
	for i, firm := range firms {
		console.Info("%d. %s", i+1, firm.Name)
		if len(firm.FocusAreas) > 0 {
			console.Info("   Focus: %s", strings.Join(firm.FocusAreas, ", "))
		}
		if len(firm.InvestmentStages) > 0 {
			console.Info("   Stages: %s", strings.Join(firm.InvestmentStages, ", "))
		}
		if firm.CheckSize != "" {
			console.Info("   Check size: %s", firm.CheckSize)
		}
		if firm.ApplicationURL != "" {
			console.Info("   Apply: %s", firm.ApplicationURL)
		}
	}
}

// parsePairs parses "name=value,name=value" into a map.
func parsePairs(s string) map[string]string {
	if s == "" {
		return nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		if key, value, ok := strings.Cut(pair, "="); ok && key != "" {
			out[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return out
}

// parseUploads parses "field=path;path,field=path" into a map of path lists.
func parseUploads(s string) map[string][]string {
	if s == "" {
		return nil
	}
	out := make(map[string][]string)
	for _, pair := range strings.Split(s, ",") {
		if key, value, ok := strings.Cut(pair, "="); ok && key != "" {
			for _, p := range strings.Split(value, ";") {
				if t := strings.TrimSpace(p); t != "" {
					out[strings.TrimSpace(key)] = append(out[strings.TrimSpace(key)], t)
				}
			}
		}
	}
	return out
}

func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	return urls, nil
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
