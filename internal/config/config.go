package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Registry  RegistryConfig  `yaml:"registry" mapstructure:"registry"`
	Directory DirectoryConfig `yaml:"directory" mapstructure:"directory"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the SQLite result store.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// RegistryConfig holds the official company register endpoints.
type RegistryConfig struct {
	SearchURL string `yaml:"search_url" mapstructure:"search_url"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
}

// DirectoryConfig holds the commercial directory endpoints.
type DirectoryConfig struct {
	SearchURL  string `yaml:"search_url" mapstructure:"search_url"`
	DetailBase string `yaml:"detail_base" mapstructure:"detail_base"`
}

// FetchConfig configures the HTTP transports.
type FetchConfig struct {
	TimeoutSecs int  `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UseBrowser  bool `yaml:"use_browser" mapstructure:"use_browser"`
}

// Timeout returns the transport timeout as a duration.
func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrentCompanies int `yaml:"max_concurrent_companies" mapstructure:"max_concurrent_companies"`
	CheckpointEvery        int `yaml:"checkpoint_every" mapstructure:"checkpoint_every"`
}

// ServerConfig configures the records server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
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
	v.SetEnvPrefix("ENRICH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.path", "enrich.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("batch.max_concurrent_companies", 1)
	v.SetDefault("batch.checkpoint_every", 10)
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.use_browser", true)
	v.SetDefault("registry.search_url", "https://find-and-update.company-information.service.gov.uk/search?q=")
	v.SetDefault("registry.base_url", "https://find-and-update.company-information.service.gov.uk")
	v.SetDefault("directory.search_url", "https://www.endole.co.uk/search?q=")
	v.SetDefault("directory.detail_base", "https://www.endole.co.uk/company")

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
