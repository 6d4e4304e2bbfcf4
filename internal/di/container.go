package di

import (
	"context"
	"fmt"

	"venture-agent/internal/application/port/input"
	"venture-agent/internal/application/port/output"
	"venture-agent/internal/config"
	"venture-agent/internal/infrastructure/browser/rod"
	"venture-agent/internal/infrastructure/env"
	"venture-agent/internal/infrastructure/formparse"
	"venture-agent/internal/infrastructure/llm/openrouter"
	"venture-agent/internal/infrastructure/logger"
	"venture-agent/internal/infrastructure/report"
	"venture-agent/internal/infrastructure/search/firecrawl"
	"venture-agent/internal/infrastructure/store"
	"venture-agent/internal/usecase/formfill"
	"venture-agent/internal/usecase/research"
)

// ResearchContainer wires everything the research command needs.
type ResearchContainer struct {
	Logger  output.LoggerPort
	LLM     output.LLMPort
	Search  output.SearchPort
	Reports output.ReportWriter
	Runner  input.ResearchRunner
	Config  *config.Config
}

// FormFillContainer wires everything the form-filling command needs.
type FormFillContainer struct {
	Logger output.LoggerPort
	LLM    output.LLMPort
	Store  output.ProfileStore
	Filler input.FormFiller
	Config *config.Config
}

// NewResearchContainer builds the research stack: env secrets, viper config,
// zap logger, OpenRouter LLM, Firecrawl search, and the pipeline on top.
func NewResearchContainer(task string, debug bool) (*ResearchContainer, error) {
	envs := env.NewService()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewZapAdapter(task, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openrouter.DefaultConfig(envs.MustGet("OPENROUTER_API_KEY"), cfg.LLM.Model)
	if cfg.LLM.BaseURL != "" {
		llmCfg.BaseURL = cfg.LLM.BaseURL
	}
	llmCfg.Logger = log
	llm := openrouter.NewOpenRouterAdapter(llmCfg)

	search := firecrawl.NewClient(envs.MustGet("FIRECRAWL_API_KEY"), cfg.Search.BaseURL, log)

	return &ResearchContainer{
		Logger:  log,
		LLM:     llm,
		Search:  search,
		Reports: report.NewFileWriter(cfg.Paths.ReportDir),
		Runner:  research.NewPipeline(search, llm, log, cfg.Research.ToolDelay),
		Config:  cfg,
	}, nil
}

// NewFormFillContainer builds the form-filling stack. The browser is not
// opened here: the agent gets a factory and opens one session per run.
func NewFormFillContainer(task string, debug bool) (*FormFillContainer, error) {
	envs := env.NewService()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewZapAdapter(task, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openrouter.DefaultConfig(envs.MustGet("OPENROUTER_API_KEY"), cfg.LLM.Model)
	if cfg.LLM.BaseURL != "" {
		llmCfg.BaseURL = cfg.LLM.BaseURL
	}
	llmCfg.Logger = log
	llm := openrouter.NewOpenRouterAdapter(llmCfg)

	st, err := store.NewFileStore(cfg.Paths.DataDir, log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.Browser.Headless
	browserCfg.SlowMotion = cfg.Browser.SlowMotion
	browserCfg.Timeout = cfg.Browser.Timeout
	browserCfg.ScreenshotDir = cfg.Paths.ScreenshotDir
	newBrowser := func(ctx context.Context) (output.BrowserPort, error) {
		return rod.NewBrowserAdapter(ctx, browserCfg)
	}

	agent := formfill.NewAgent(
		newBrowser,
		formparse.NewParser(),
		st,
		formfill.NewMapper(llm, log),
		log,
		&formfill.Options{
			FieldDelay: cfg.Fill.FieldDelay,
			FormDelay:  cfg.Fill.FormDelay,
		},
	)

	return &FormFillContainer{
		Logger: log,
		LLM:    llm,
		Store:  st,
		Filler: agent,
		Config: cfg,
	}, nil
}

func (c *ResearchContainer) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func (c *FormFillContainer) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
