package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Site     SiteConfig     `yaml:"site" mapstructure:"site"`
	Auth     AuthConfig     `yaml:"auth" mapstructure:"auth"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Resolver ResolverConfig `yaml:"resolver" mapstructure:"resolver"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SiteConfig holds the remote site's URL surface.
type SiteConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	APIBase string `yaml:"api_base" mapstructure:"api_base"`
	Domain  string `yaml:"domain" mapstructure:"domain"`
}

// AuthConfig configures the browser login capture.
type AuthConfig struct {
	LoginPath        string `yaml:"login_path" mapstructure:"login_path"`
	DraftKitPath     string `yaml:"draft_kit_path" mapstructure:"draft_kit_path"`
	LoginTimeoutSecs int    `yaml:"login_timeout_secs" mapstructure:"login_timeout_secs"`
	Username         string `yaml:"username" mapstructure:"username"`
	Password         string `yaml:"password" mapstructure:"password"`
}

// CacheConfig holds per-feed cache freshness windows.
type CacheConfig struct {
	PlayersTTLHours    int `yaml:"players_ttl_hours" mapstructure:"players_ttl_hours"`
	ProjectionsTTLMins int `yaml:"projections_ttl_mins" mapstructure:"projections_ttl_mins"`
	TradeTTLMins       int `yaml:"trade_ttl_mins" mapstructure:"trade_ttl_mins"`
	NewsTTLMins        int `yaml:"news_ttl_mins" mapstructure:"news_ttl_mins"`
}

// ResolverConfig holds fuzzy match acceptance thresholds.
type ResolverConfig struct {
	SearchThreshold  int `yaml:"search_threshold" mapstructure:"search_threshold"`
	ResolveThreshold int `yaml:"resolve_threshold" mapstructure:"resolve_threshold"`
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
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}

	// Environment
	v.SetEnvPrefix("FFB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credential fallback for headless login.
	_ = v.BindEnv("auth.username", "FFB_USERNAME", "FFB_AUTH_USERNAME")
	_ = v.BindEnv("auth.password", "FFB_PASSWORD", "FFB_AUTH_PASSWORD")

	// Defaults
	v.SetDefault("site.base_url", "https://www.thefantasyfootballers.com")
	v.SetDefault("site.api_base", "https://www.thefantasyfootballers.com/wp-json")
	v.SetDefault("site.domain", "thefantasyfootballers.com")
	v.SetDefault("auth.login_path", "/login/")
	v.SetDefault("auth.draft_kit_path", "/2026-ultimate-draft-kit/")
	v.SetDefault("auth.login_timeout_secs", 120)
	v.SetDefault("cache.players_ttl_hours", 24)
	v.SetDefault("cache.projections_ttl_mins", 60)
	v.SetDefault("cache.trade_ttl_mins", 60)
	v.SetDefault("cache.news_ttl_mins", 30)
	v.SetDefault("resolver.search_threshold", 55)
	v.SetDefault("resolver.resolve_threshold", 60)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

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

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", eris.Wrap(err, "config: user config dir")
	}
	return filepath.Join(base, "ffb"), nil
}

// SessionPath returns the path of the persisted session file.
func SessionPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// CacheDir returns the directory holding cache entries.
func CacheDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
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
