package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       App       `mapstructure:"app"`
	Input     Input     `mapstructure:"input"`
	Sentiment Sentiment `mapstructure:"sentiment"`
	Analysis  Analysis  `mapstructure:"analysis"`
	Output    Output    `mapstructure:"output"`
	Cache     Cache     `mapstructure:"cache"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level"`
	ConfigFile string `mapstructure:"config_file"`
}

// Input holds column-detection configuration for tabular datasets
type Input struct {
	TextColumnKeywords   []string `mapstructure:"text_column_keywords"`
	RatingColumnKeywords []string `mapstructure:"rating_column_keywords"`
}

// Sentiment holds sentiment-backend configuration
type Sentiment struct {
	Provider string       `mapstructure:"provider"` // keyword, lexicon or gemini
	Gemini   GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration for the model-based provider
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Timeout     string  `mapstructure:"timeout"`
	Temperature float32 `mapstructure:"temperature"`
	MaxChars    int     `mapstructure:"max_chars"` // Review text is truncated to this before classification
}

// Analysis holds report-shaping configuration
type Analysis struct {
	TopPriority int `mapstructure:"top_priority"` // Size of the priority queue
	TopWords    int `mapstructure:"top_words"`    // Size of the word-frequency table
}

// Output holds output configuration
type Output struct {
	Directory string `mapstructure:"directory"`
	Format    string `mapstructure:"format"` // terminal, markdown or csv
}

// Cache holds analysis-history storage configuration
type Cache struct {
	Directory string `mapstructure:"directory"`
}

var globalConfig *Config

// Load loads the configuration from the config file, environment and defaults.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".smartreview")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := postProcessConfig(config); err != nil {
		return nil, fmt.Errorf("error post-processing config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	config.App.ConfigFile = viper.ConfigFileUsed()
	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// Reset clears the cached configuration. Intended for tests.
func Reset() {
	globalConfig = nil
	viper.Reset()
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("input.text_column_keywords", []string{
		"review", "text", "comment", "feedback", "description", "content",
	})
	viper.SetDefault("input.rating_column_keywords", []string{
		"rating", "score", "stars", "rate",
	})

	viper.SetDefault("sentiment.provider", "lexicon")
	viper.SetDefault("sentiment.gemini.model", "gemini-2.5-flash-preview-05-20")
	viper.SetDefault("sentiment.gemini.timeout", "30s")
	viper.SetDefault("sentiment.gemini.temperature", 0.1)
	viper.SetDefault("sentiment.gemini.max_chars", 1500)

	viper.SetDefault("analysis.top_priority", 10)
	viper.SetDefault("analysis.top_words", 15)

	viper.SetDefault("output.directory", "reports")
	viper.SetDefault("output.format", "terminal")

	viper.SetDefault("cache.directory", ".smartreview-cache")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	bindEnvKeys("sentiment.gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	bindEnvKeys("sentiment.provider", []string{
		"SMARTREVIEW_PROVIDER",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"SMARTREVIEW_DEBUG",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// postProcessConfig applies post-processing to configuration values
func postProcessConfig(config *Config) error {
	if config.Cache.Directory != "" {
		config.Cache.Directory = expandPath(config.Cache.Directory)
	}
	if config.Output.Directory != "" {
		config.Output.Directory = expandPath(config.Output.Directory)
	}
	return nil
}

// validateConfig checks configuration values for consistency
func validateConfig(config *Config) error {
	switch config.Sentiment.Provider {
	case "keyword", "lexicon", "gemini":
	default:
		return fmt.Errorf("invalid sentiment provider %q (expected keyword, lexicon or gemini)", config.Sentiment.Provider)
	}

	if config.Analysis.TopPriority < 1 {
		return fmt.Errorf("analysis.top_priority must be at least 1, got %d", config.Analysis.TopPriority)
	}
	if len(config.Input.TextColumnKeywords) == 0 {
		return fmt.Errorf("input.text_column_keywords must not be empty")
	}
	return nil
}

// expandPath expands ~ to the user home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
