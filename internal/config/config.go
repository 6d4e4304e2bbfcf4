package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all non-secret application settings. API keys stay in the
// environment (see infrastructure/env); everything here has a sane default
// and can be overridden via config.yaml or VENTURE_* environment variables.
type Config struct {
	LLM      LLMConfig
	Search   SearchConfig
	Browser  BrowserConfig
	Fill     FillConfig
	Research ResearchConfig
	Paths    PathsConfig
}

type LLMConfig struct {
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type SearchConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type BrowserConfig struct {
	Headless   bool          `mapstructure:"headless"`
	SlowMotion time.Duration `mapstructure:"slow_motion"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type FillConfig struct {
	FieldDelay time.Duration `mapstructure:"field_delay"`
	FormDelay  time.Duration `mapstructure:"form_delay"`
}

type ResearchConfig struct {
	ToolDelay time.Duration `mapstructure:"tool_delay"`
}

type PathsConfig struct {
	DataDir       string `mapstructure:"data_dir"`
	ReportDir     string `mapstructure:"report_dir"`
	ScreenshotDir string `mapstructure:"screenshot_dir"`
}

// Load reads config.yaml (optional) and VENTURE_* environment variables,
// falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("VENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.model", "openai/gpt-4o-mini")
	v.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")

	v.SetDefault("search.base_url", "https://api.firecrawl.dev")

	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.slow_motion", "500ms")
	v.SetDefault("browser.timeout", "10s")

	v.SetDefault("fill.field_delay", "500ms")
	v.SetDefault("fill.form_delay", "30s")

	v.SetDefault("research.tool_delay", "1s")

	v.SetDefault("paths.data_dir", "data")
	v.SetDefault("paths.report_dir", "reports")
	v.SetDefault("paths.screenshot_dir", "screenshots")
}

func validate(config *Config) error {
	if config.LLM.Model == "" {
		return fmt.Errorf("LLM model is required (set VENTURE_LLM_MODEL)")
	}
	if config.Browser.Timeout <= 0 {
		return fmt.Errorf("browser timeout must be positive, got: %s", config.Browser.Timeout)
	}
	if config.Fill.FieldDelay < 0 || config.Fill.FormDelay < 0 {
		return fmt.Errorf("fill delays must not be negative")
	}
	if config.Research.ToolDelay < 0 {
		return fmt.Errorf("research tool delay must not be negative")
	}
	return nil
}
