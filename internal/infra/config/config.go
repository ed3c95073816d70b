package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PlaceholderProviderToken ships in sample config and marks the provider as unconfigured.
const PlaceholderProviderToken = "replace-with-provider-token"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Provider  ProviderConfig  `yaml:"provider"`
	Quotes    QuotesConfig    `yaml:"quotes"`
	Cancer    CancerConfig    `yaml:"cancer"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool         `yaml:"enabled"`
	RequestsPerMinute int          `yaml:"requestsPerMinute"`
	Burst             int          `yaml:"burst"`
	Valkey            ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig points the rate limiter at a shared Valkey instance.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// RetryConfig configures best-effort retries of requests that failed with a 5xx.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// ProviderConfig describes the external rating provider.
type ProviderConfig struct {
	BaseURL        string        `yaml:"baseUrl"`
	APIToken       string        `yaml:"apiToken"`
	AuthHeader     string        `yaml:"authHeader"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxConcurrency int           `yaml:"maxConcurrency"`
}

// Configured reports whether a usable token is present.
func (p ProviderConfig) Configured() bool {
	token := strings.TrimSpace(p.APIToken)
	return token != "" && token != PlaceholderProviderToken
}

// QuotesConfig holds user facing quote settings.
type QuotesConfig struct {
	UnavailableMessage string `yaml:"unavailableMessage"`
}

// CancerConfig controls the locally priced cancer product.
type CancerConfig struct {
	CarrierName string `yaml:"carrierName"`
}

// DiscoveryConfig tunes lead tiering.
type DiscoveryConfig struct {
	HotLeadScore  int `yaml:"hotLeadScore"`
	WarmLeadScore int `yaml:"warmLeadScore"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("PROVIDER_API_TOKEN"); v != "" {
		cfg.Provider.APIToken = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_AUTH_HEADER"); v != "" {
		cfg.Provider.AuthHeader = v
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Provider.Timeout = parsed
		}
	}
	if v := os.Getenv("PROVIDER_MAX_CONCURRENCY"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Provider.MaxConcurrency = parsed
		}
	}
	if v := os.Getenv("CANCER_CARRIER_NAME"); v != "" {
		cfg.Cancer.CarrierName = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_VALKEY_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_VALKEY_ADDR"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Addr = v
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			AllowedOrigins: []string{
				"http://localhost:3000",
			},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
				Valkey: ValkeyConfig{
					Prefix: "insurance-quotes:ratelimit",
				},
			},
			Retry: RetryConfig{
				Enabled:     false,
				MaxAttempts: 2,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/discovery",
				},
			},
		},
		Provider: ProviderConfig{
			BaseURL:        "https://csgapi.appspot.com/v1",
			APIToken:       PlaceholderProviderToken,
			AuthHeader:     "x-api-token",
			Timeout:        15 * time.Second,
			MaxConcurrency: 1,
		},
		Quotes: QuotesConfig{
			UnavailableMessage: "unable to fetch quotes right now, please try again later",
		},
		Cancer: CancerConfig{
			CarrierName: "Unknown Carrier",
		},
		Discovery: DiscoveryConfig{
			HotLeadScore:  70,
			WarmLeadScore: 40,
		},
	}
}

// Validate ensures the configuration is safe to use. An unconfigured provider
// token is allowed; quote calls fail until one is supplied.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Provider.BaseURL) == "" {
		return errors.New("provider.baseUrl cannot be empty")
	}
	if c.Provider.Timeout <= 0 {
		return errors.New("provider.timeout must be positive")
	}
	if c.Provider.MaxConcurrency <= 0 {
		return errors.New("provider.maxConcurrency must be positive")
	}
	if c.Discovery.WarmLeadScore <= 0 || c.Discovery.HotLeadScore <= c.Discovery.WarmLeadScore {
		return errors.New("discovery.hotLeadScore must be greater than discovery.warmLeadScore, both positive")
	}
	if c.Discovery.HotLeadScore > 100 {
		return errors.New("discovery.hotLeadScore cannot exceed 100")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
		if c.HTTP.RateLimit.Valkey.Enabled && strings.TrimSpace(c.HTTP.RateLimit.Valkey.Addr) == "" {
			return errors.New("http.rateLimit.valkey.addr cannot be empty when valkey is enabled")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
