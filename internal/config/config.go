package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrConfiguration marks a missing or invalid provider configuration detected
// at startup. It is fatal: no runtime degradation path exists for it.
var ErrConfiguration = eris.New("configuration error")

// Config holds the full application configuration.
type Config struct {
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
	Search   SearchConfig   `yaml:"search" mapstructure:"search"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Results  ResultsConfig  `yaml:"results" mapstructure:"results"`
	Prompts  PromptsConfig  `yaml:"prompts" mapstructure:"prompts"`
	Profile  ProfileConfig  `yaml:"profile" mapstructure:"profile"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// LLMConfig holds text generation provider settings.
type LLMConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Key         string  `yaml:"key" mapstructure:"key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// SearchConfig holds web search provider settings.
type SearchConfig struct {
	Provider     string  `yaml:"provider" mapstructure:"provider"`
	Key          string  `yaml:"key" mapstructure:"key"`
	GoogleCSEID  string  `yaml:"google_cse_id" mapstructure:"google_cse_id"`
	BaseURL      string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit    float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	CacheTTLMins int     `yaml:"cache_ttl_mins" mapstructure:"cache_ttl_mins"`
	TimeoutSecs  int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxPerQuery  int     `yaml:"max_per_query" mapstructure:"max_per_query"`
}

// PipelineConfig bounds the discovery and ranking stages.
type PipelineConfig struct {
	MaxCandidates int `yaml:"max_candidates" mapstructure:"max_candidates"`
	TopN          int `yaml:"top_n" mapstructure:"top_n"`
}

// StoreConfig configures the run-history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ResultsConfig configures the JSON artifact directory.
type ResultsConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// PromptsConfig points at the prompt template directory. Missing templates
// fall back to built-in defaults.
type PromptsConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ProfileConfig points at an optional company context JSON override.
type ProfileConfig struct {
	ContextPath string `yaml:"context_path" mapstructure:"context_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Secrets default to empty so AutomaticEnv can see the keys.
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", 2048)
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.timeout_secs", 120)
	v.SetDefault("search.provider", "serper")
	v.SetDefault("search.key", "")
	v.SetDefault("search.google_cse_id", "")
	v.SetDefault("search.base_url", "")
	v.SetDefault("search.rate_limit", 2)
	v.SetDefault("search.cache_ttl_mins", 30)
	v.SetDefault("search.timeout_secs", 30)
	v.SetDefault("search.max_per_query", 10)
	v.SetDefault("pipeline.max_candidates", 50)
	v.SetDefault("pipeline.top_n", 10)
	v.SetDefault("store.path", "leadgen.db")
	v.SetDefault("results.dir", "data/results")
	v.SetDefault("prompts.dir", "prompts")
	v.SetDefault("profile.context_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
