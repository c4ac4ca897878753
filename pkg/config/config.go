package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "github.com/killallgit/searchpro-api/pkg/errors"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// EnvPrefix prefixes environment variable overrides, e.g. SEARCHPRO_SERVER_PORT
const EnvPrefix = "SEARCHPRO"

// DefaultConfigPath is the optional settings file read at startup
var DefaultConfigPath = "./config/settings.yaml"

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load(DefaultConfigPath)
	})

	return initErr
}

// Reset clears the loaded configuration so Init can run again (for tests)
func Reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

func load(path string) error {
	// Set default values
	setDefaults()

	// Set up environment variable reading for overrides
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Load config from fixed location (cleaned for safety)
	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars apply
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("%d is out of range", port))
	}

	if viper.GetString("search.base_url") == "" {
		return apperrors.ConfigError("search.base_url", "value is required")
	}

	// Auto-correct invalid provider timeout
	if viper.GetDuration("search.timeout") <= 0 {
		viper.Set("search.timeout", 10*time.Second)
	}

	// Auto-correct invalid result caps
	if n := viper.GetInt("search.max_results"); n <= 0 || n > 10 {
		viper.Set("search.max_results", 10)
	}
	if viper.GetInt("search.max_related_topics") < 0 {
		viper.Set("search.max_related_topics", 8)
	}

	if viper.GetBool("rate_limiting.enabled") {
		if viper.GetInt("rate_limiting.rps") <= 0 {
			viper.Set("rate_limiting.rps", 5)
		}
		if viper.GetInt("rate_limiting.burst") <= 0 {
			viper.Set("rate_limiting.burst", 10)
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("%d is out of range", c.Server.Port))
	}

	if c.Search.BaseURL == "" {
		return apperrors.ConfigError("search.base_url", "value is required")
	}

	if c.Search.Timeout <= 0 {
		c.Search.Timeout = 10 * time.Second
	}

	if c.Search.MaxResults <= 0 || c.Search.MaxResults > 10 {
		c.Search.MaxResults = 10
	}

	if c.Search.MaxRelatedTopics < 0 {
		c.Search.MaxRelatedTopics = 8
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Search provider defaults
	viper.SetDefault("search.base_url", "https://api.duckduckgo.com")
	viper.SetDefault("search.user_agent", "Mozilla/5.0")
	viper.SetDefault("search.timeout", 10*time.Second)
	viper.SetDefault("search.max_related_topics", 8)
	viper.SetDefault("search.max_results", 10)

	// Rate limiting is opt-in
	viper.SetDefault("rate_limiting.enabled", false)
	viper.SetDefault("rate_limiting.rps", 5)
	viper.SetDefault("rate_limiting.burst", 10)

	// Security defaults
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}
