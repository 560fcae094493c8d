package model

import "time"

// Config is the full engine configuration. Values are resolved through the
// usual hierarchy: CLI flags, TRADECHECK_* environment variables, the config
// file, then these defaults.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Registry    RegistryConfig    `yaml:"registry"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig configures the remote document fetcher
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// RegistryConfig configures the registry lookup layer
type RegistryConfig struct {
	SeedFile      string        `yaml:"seed_file"`       // optional YAML fixtures; empty uses built-in seeds
	LookupTimeout time.Duration `yaml:"lookup_timeout"`  // per-lookup deadline, timeouts degrade to error verdicts
	CacheTTL      time.Duration `yaml:"cache_ttl"`       // 0 disables the lookup cache
	CacheCleanup  time.Duration `yaml:"cache_cleanup"`
	RatePerSecond float64       `yaml:"rate_per_second"` // 0 disables rate limiting
	RateBurst     int           `yaml:"rate_burst"`
}

// ConcurrencyConfig configures batch verification
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// LLMConfig configures the optional analyst summary
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig configures CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the engine defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "tradecheck/0.1 (+https://github.com/skhumalo/tradecheck)",
			MaxBodyBytes: 2_000_000,
		},
		Registry: RegistryConfig{
			LookupTimeout: 10 * time.Second,
			CacheTTL:      5 * time.Minute,
			CacheCleanup:  10 * time.Minute,
			RatePerSecond: 10,
			RateBurst:     5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 600,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
