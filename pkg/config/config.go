// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Corpus configuration
	Corpus CorpusConfig `mapstructure:"corpus"`

	// Vectorizer configuration
	Vectorizer VectorizerConfig `mapstructure:"vectorizer"`

	// Cache configuration
	Cache CacheConfig `mapstructure:"cache"`

	// Export configuration
	Export ExportConfig `mapstructure:"export"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string `mapstructure:"level"`
	NoColor bool   `mapstructure:"no_color"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// CorpusConfig holds corpus loading defaults
type CorpusConfig struct {
	Language string `mapstructure:"language"`
	MinSize  int    `mapstructure:"min_size"`
	MaxSize  int    `mapstructure:"max_size"`
}

// VectorizerConfig holds vectorization defaults
type VectorizerConfig struct {
	MaxFeatures int     `mapstructure:"max_features"`
	NgramType   string  `mapstructure:"ngram_type"`
	NgramSize   int     `mapstructure:"ngram_size"`
	VectorSpace string  `mapstructure:"vector_space"`
	Lowercase   bool    `mapstructure:"lowercase"`
	MinDF       float64 `mapstructure:"min_df"`
	MaxDF       float64 `mapstructure:"max_df"`
	// StopWords culls the built-in stop-word list for the corpus language.
	StopWords bool `mapstructure:"stop_words"`
	// IgnoreFile points at an additional user ignore list.
	IgnoreFile string `mapstructure:"ignore_file"`
}

// CacheConfig holds model cache configuration
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// ExportConfig holds export configuration
type ExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"` // parquet or json
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.no_color", false)

	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Corpus defaults
	viper.SetDefault("corpus.language", "en")
	viper.SetDefault("corpus.min_size", 0)
	viper.SetDefault("corpus.max_size", 0)

	// Vectorizer defaults follow the original wrapper
	viper.SetDefault("vectorizer.max_features", 100)
	viper.SetDefault("vectorizer.ngram_type", "word")
	viper.SetDefault("vectorizer.ngram_size", 1)
	viper.SetDefault("vectorizer.vector_space", "tf")
	viper.SetDefault("vectorizer.lowercase", true)
	viper.SetDefault("vectorizer.min_df", 0.0)
	viper.SetDefault("vectorizer.max_df", 1.0)
	viper.SetDefault("vectorizer.stop_words", false)

	// Cache defaults
	home, err := os.UserHomeDir()
	if err == nil {
		viper.SetDefault("cache.dir", filepath.Join(home, ".stylo", "cache"))
	}
	viper.SetDefault("cache.enabled", false)

	// Export defaults
	viper.SetDefault("export.dir", "out")
	viper.SetDefault("export.format", "parquet")
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		viper.Set("server.port", port)
		config.Server.Port = viper.GetInt("server.port")
	}
	if dir := os.Getenv("STYLO_CACHE_DIR"); dir != "" {
		config.Cache.Dir = dir
	}
	if level := os.Getenv("STYLO_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
}
