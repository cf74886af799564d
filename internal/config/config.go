package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Generation GenerationConfig `mapstructure:"generation"`
	Seed       SeedConfig       `mapstructure:"seed"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite, postgres
	Path            string        `mapstructure:"path"`   // sqlite file path
	PostgresDSN     string        `mapstructure:"postgres_dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the connection string for the configured driver.
// Parameters: none.
// Returns:
//   - string: SQLite file path or PostgreSQL DSN.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "postgres" {
		return c.PostgresDSN
	}
	return c.Path
}

// GenerationConfig selects and configures the caption/art provider.
type GenerationConfig struct {
	Provider string        `mapstructure:"provider"` // gemini, openai
	Timeout  time.Duration `mapstructure:"timeout"`  // hard deadline for a generation run
	Gemini   GeminiConfig  `mapstructure:"gemini"`
	OpenAI   OpenAIConfig  `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	CaptionModel string `mapstructure:"caption_model"`
	ImageModel   string `mapstructure:"image_model"`
}

type OpenAIConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	CaptionModel string `mapstructure:"caption_model"`
	ImageModel   string `mapstructure:"image_model"`
}

// SeedConfig controls engagement-counter seeding on fresh captions.
type SeedConfig struct {
	Engagement string `mapstructure:"engagement"` // random, zero
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	// Set config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/gmn.db")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("generation.provider", "gemini")
	v.SetDefault("generation.timeout", 60*time.Second)
	v.SetDefault("generation.gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("generation.gemini.caption_model", "gemini-3-flash-preview")
	v.SetDefault("generation.gemini.image_model", "gemini-2.5-flash-image")
	v.SetDefault("generation.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("generation.openai.caption_model", "gpt-4o-mini")
	v.SetDefault("generation.openai.image_model", "gpt-image-1")
	v.SetDefault("seed.engagement", "random")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.postgres_dsn", "DATABASE_URL")
	v.BindEnv("generation.provider", "GENERATION_PROVIDER")
	v.BindEnv("generation.gemini.api_key", "GEMINI_API_KEY")
	v.BindEnv("generation.gemini.base_url", "GEMINI_BASE_URL")
	v.BindEnv("generation.openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("generation.openai.base_url", "OPENAI_BASE_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
