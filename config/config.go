package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Book agent specifics
	Search    SearchConfig
	Identity  IdentityConfig
	Responder ResponderConfig
	Store     StoreConfig
	Gemini    GeminiConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SearchConfig points at the external search service.
type SearchConfig struct {
	URL           string
	TimeoutSecs   int
	DirectLimit   int // passages fetched when the responder composes the reply itself
	GenerateLimit int // passages fetched when the reply is delegated to the LLM
	CacheSize     int
	CacheTTLSecs  int
}

// IdentityConfig controls how the bearer credential for the search service
// is obtained. A non-empty StaticToken is used verbatim and bypasses ambient
// identity entirely.
type IdentityConfig struct {
	StaticToken string
	Audience    string // identity-token audience; defaults to the search URL
}

// ResponderConfig selects the synthesis mode.
type ResponderConfig struct {
	Mode string // "template" (deterministic) or "llm"
}

// StoreConfig selects the conversation store backend at startup.
// Runtime backend substitution is deliberately not supported: whether
// conversations survive a restart is a product promise, not a fallback.
type StoreConfig struct {
	Backend       string // "memory" or "postgres"
	PostgresDSN   string
	AllowDegraded bool // permit explicit, logged degradation to memory when postgres init fails
}

type GeminiConfig struct {
	APIKey string
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Search service
	cfg.Search.URL = viper.GetString("search.url")
	cfg.Search.TimeoutSecs = viper.GetInt("search.timeout_secs")
	cfg.Search.DirectLimit = viper.GetInt("search.direct_limit")
	cfg.Search.GenerateLimit = viper.GetInt("search.generate_limit")
	cfg.Search.CacheSize = viper.GetInt("search.cache_size")
	cfg.Search.CacheTTLSecs = viper.GetInt("search.cache_ttl_secs")
	if searchURL := viper.GetString("search_service_url"); searchURL != "" {
		cfg.Search.URL = searchURL
	}

	// Identity
	cfg.Identity.StaticToken = viper.GetString("identity.static_token")
	cfg.Identity.Audience = viper.GetString("identity.audience")
	if token := viper.GetString("auth_token"); token != "" {
		cfg.Identity.StaticToken = token
	}
	if cfg.Identity.Audience == "" {
		cfg.Identity.Audience = cfg.Search.URL
	}

	// Responder
	cfg.Responder.Mode = viper.GetString("responder.mode")

	// Store
	cfg.Store.Backend = viper.GetString("store.backend")
	cfg.Store.PostgresDSN = viper.GetString("store.postgres_dsn")
	cfg.Store.AllowDegraded = viper.GetBool("store.allow_degraded")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Store.PostgresDSN = dsn
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Rate limiting
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Search.URL == "" {
		return fmt.Errorf("search.url is required")
	}
	switch c.Responder.Mode {
	case "template", "llm":
	default:
		return fmt.Errorf("responder.mode must be \"template\" or \"llm\", got %q", c.Responder.Mode)
	}
	switch c.Store.Backend {
	case "memory", "postgres":
	default:
		return fmt.Errorf("store.backend must be \"memory\" or \"postgres\", got %q", c.Store.Backend)
	}
	if c.Store.Backend == "postgres" && c.Store.PostgresDSN == "" && !c.Store.AllowDegraded {
		return fmt.Errorf("store.postgres_dsn is required when store.backend=postgres and degraded mode is not allowed")
	}
	if c.Responder.Mode == "llm" && c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required when responder.mode=llm")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("search.timeout_secs", 30)
	viper.SetDefault("search.direct_limit", 5)
	viper.SetDefault("search.generate_limit", 3)
	viper.SetDefault("search.cache_size", 256)
	viper.SetDefault("search.cache_ttl_secs", 60)

	viper.SetDefault("responder.mode", "template")
	viper.SetDefault("store.backend", "memory")
	viper.SetDefault("store.allow_degraded", false)

	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
}
