package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// Version is reported by GET / and the version command.
const Version = "1.0.0"

// Config holds runtime parameters for the service.
// Fields left out of a config file keep their default tag value.
type Config struct {
	Addr        string `json:"addr" yaml:"addr" toml:"addr" default:":8000"`
	Environment string `json:"environment" yaml:"environment" toml:"environment" default:"development"`

	OpenAIAPIKey   string `json:"openai_api_key" yaml:"openai_api_key" toml:"openai_api_key"`
	OpenAIBaseURL  string `json:"openai_base_url" yaml:"openai_base_url" toml:"openai_base_url" default:"https://api.openai.com/v1"`
	OpenAIModel    string `json:"openai_model" yaml:"openai_model" toml:"openai_model" default:"gpt-4o"`
	RequestTimeout int    `json:"request_timeout_seconds" yaml:"request_timeout_seconds" toml:"request_timeout_seconds" default:"60"`
	ConnectTimeout int    `json:"connect_timeout_seconds" yaml:"connect_timeout_seconds" toml:"connect_timeout_seconds" default:"10"`
	MaxRetries     int    `json:"max_retries" yaml:"max_retries" toml:"max_retries" default:"2"`

	AllowedOrigins     []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins" default:"[\"*\"]"`
	RateLimitPerMinute int      `json:"rate_limit_per_minute" yaml:"rate_limit_per_minute" toml:"rate_limit_per_minute" default:"30"`
	MaxUploadBytes     int64    `json:"max_upload_bytes" yaml:"max_upload_bytes" toml:"max_upload_bytes" default:"10485760"`
	SimulationDelayMS  int      `json:"simulation_delay_ms" yaml:"simulation_delay_ms" toml:"simulation_delay_ms" default:"1500"`

	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level" default:"info"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format" default:"json"`
}

// ApplyEnv overlays environment variables onto cfg. Unset or empty
// variables leave the current value alone; unparsable numbers are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	str := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}
	num := func(dst *int, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	str(&c.Addr, "FITSCAN_ADDR")
	if p := strings.TrimSpace(getenv("PORT")); p != "" && getenv("FITSCAN_ADDR") == "" {
		c.Addr = ":" + p
	}
	str(&c.Environment, "APP_ENV")
	str(&c.OpenAIAPIKey, "OPENAI_API_KEY")
	str(&c.OpenAIBaseURL, "OPENAI_BASE_URL")
	str(&c.OpenAIModel, "OPENAI_MODEL")
	num(&c.RequestTimeout, "FITSCAN_REQUEST_TIMEOUT")
	num(&c.MaxRetries, "FITSCAN_MAX_RETRIES")
	if v := getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = SplitCSV(v)
	}
	num(&c.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE")
	num(&c.SimulationDelayMS, "FITSCAN_SIMULATION_DELAY")
	if v := strings.TrimSpace(getenv("FITSCAN_MAX_UPLOAD_BYTES")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxUploadBytes = n
		}
	}
	str(&c.LogLevel, "FITSCAN_LOG_LEVEL")
	str(&c.LogFormat, "FITSCAN_LOG_FORMAT")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if strings.TrimSpace(c.Addr) == "" {
		err = multierr.Append(err, fmt.Errorf("addr is required"))
	}
	if strings.TrimSpace(c.Environment) == "" {
		err = multierr.Append(err, fmt.Errorf("environment is required"))
	}
	if c.RateLimitPerMinute <= 0 {
		err = multierr.Append(err, fmt.Errorf("rate_limit_per_minute must be positive, got %d", c.RateLimitPerMinute))
	}
	if c.MaxUploadBytes <= 0 {
		err = multierr.Append(err, fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes))
	}
	if c.SimulationDelayMS < 0 {
		err = multierr.Append(err, fmt.Errorf("simulation_delay_ms must not be negative"))
	}
	if c.RequestTimeout < 0 || c.ConnectTimeout < 0 {
		err = multierr.Append(err, fmt.Errorf("timeouts must not be negative"))
	}
	if c.MaxRetries < 0 {
		err = multierr.Append(err, fmt.Errorf("max_retries must not be negative"))
	}
	if c.HasOpenAIKey() && strings.TrimSpace(c.OpenAIBaseURL) == "" {
		err = multierr.Append(err, fmt.Errorf("openai_base_url is required when an API key is set"))
	}
	if _, perr := zerolog.ParseLevel(c.LogLevel); perr != nil {
		err = multierr.Append(err, fmt.Errorf("log_level: %w", perr))
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("log_format must be json or console, got %q", c.LogFormat))
	}
	return err
}

// HasOpenAIKey reports whether a usable model API key is configured. The
// placeholder keys shipped in example env files ("sk-your...") do not count.
func (c Config) HasOpenAIKey() bool {
	k := strings.TrimSpace(c.OpenAIAPIKey)
	return k != "" && !strings.HasPrefix(k, "sk-your")
}

// IsProduction reports whether the service runs with production hardening.
func (c Config) IsProduction() bool { return c.Environment == "production" }

// IsDevelopment gates developer-only surfaces such as the API docs.
func (c Config) IsDevelopment() bool { return c.Environment == "development" }

func (c Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func (c Config) ConnectTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectTimeout) * time.Second
}

func (c Config) SimulationDelay() time.Duration {
	return time.Duration(c.SimulationDelayMS) * time.Millisecond
}

// SplitCSV splits a comma separated list, trimming blanks and dropping
// empty items.
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
