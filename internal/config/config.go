// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.studio/config.yaml)
//  3. Default values
//
// Error Handling:
//   - Uses sentinel errors for Go-idiomatic error checking with errors.Is()
//   - Wrap with context using fmt.Errorf("%w: details", ErrXxx)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrMissingAPIKey indicates a required API key is missing.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidModelName indicates the model name is invalid.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidEmbedderModel indicates the embedder model is invalid.
	ErrInvalidEmbedderModel = errors.New("invalid embedder model")

	// ErrInvalidRetrievalK indicates the retrieval k value is out of range.
	ErrInvalidRetrievalK = errors.New("invalid retrieval k")

	// ErrInvalidMaxIterations indicates the agent iteration ceiling is out of range.
	ErrInvalidMaxIterations = errors.New("invalid max iterations")

	// ErrInvalidPostgresHost indicates the PostgreSQL host is invalid.
	ErrInvalidPostgresHost = errors.New("invalid PostgreSQL host")

	// ErrInvalidPostgresPort indicates the PostgreSQL port is out of range.
	ErrInvalidPostgresPort = errors.New("invalid PostgreSQL port")

	// ErrInvalidPostgresDBName indicates the PostgreSQL database name is invalid.
	ErrInvalidPostgresDBName = errors.New("invalid PostgreSQL database name")

	// ErrInvalidBaseURL indicates the tracking base URL is not an absolute URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

const (
	// DefaultEmbedderModel is the Gemini embedding model. It outputs 768
	// dimensions, matching the pgvector schema; see knowledge.VectorDimension.
	DefaultEmbedderModel = "text-embedding-004"

	// DefaultModelName is the reasoning model driving the agent loop.
	DefaultModelName = "gemini-2.0-flash"

	// DefaultImageModel is the Imagen model used by the image tool.
	DefaultImageModel = "imagen-3.0-generate-002"

	// DefaultRetrievalK is the number of chunks retrieved per query.
	DefaultRetrievalK = 5

	// DefaultMaxIterations is the agent loop ceiling. The loop terminates
	// unconditionally once the count exceeds this value.
	DefaultMaxIterations = 10
)

// Config stores application configuration.
type Config struct {
	// AI model configuration
	ModelName     string `mapstructure:"model_name"`
	EmbedderModel string `mapstructure:"embedder_model"`
	ImageModel    string `mapstructure:"image_model"`

	// Agent configuration
	RetrievalK    int `mapstructure:"retrieval_k"`
	MaxIterations int `mapstructure:"max_iterations"`

	// Knowledge base configuration
	KnowledgeDir string `mapstructure:"knowledge_dir"`

	// Campaign configuration
	BaseURL        string `mapstructure:"base_url"`
	LandingPageURL string `mapstructure:"landing_page_url"`

	// PostgreSQL (vector store)
	PostgresHost     string `mapstructure:"postgres_host"`
	PostgresPort     int    `mapstructure:"postgres_port"`
	PostgresUser     string `mapstructure:"postgres_user"`
	PostgresPassword string `mapstructure:"postgres_password"`
	PostgresDBName   string `mapstructure:"postgres_db_name"`
	PostgresSSLMode  string `mapstructure:"postgres_ssl_mode"`

	// Chat history (SQLite)
	HistoryDBPath string `mapstructure:"history_db_path"`
}

// Load loads configuration.
// Priority: Environment variables > Configuration file > Default values
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".studio")

	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	setDefaults(configDir)
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		// Configuration file not found is not an error, use default values
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	// DATABASE_URL wins over individual postgres_* settings
	if err := cfg.parseDatabaseURL(); err != nil {
		return nil, fmt.Errorf("parsing DATABASE_URL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults(configDir string) {
	viper.SetDefault("model_name", DefaultModelName)
	viper.SetDefault("embedder_model", DefaultEmbedderModel)
	viper.SetDefault("image_model", DefaultImageModel)

	viper.SetDefault("retrieval_k", DefaultRetrievalK)
	viper.SetDefault("max_iterations", DefaultMaxIterations)

	viper.SetDefault("knowledge_dir", "knowledge")

	viper.SetDefault("base_url", "https://chroniclife.app")
	viper.SetDefault("landing_page_url", "https://chronic-life-landing.vercel.app")

	viper.SetDefault("postgres_host", "localhost")
	viper.SetDefault("postgres_port", 5432)
	viper.SetDefault("postgres_user", "studio")
	viper.SetDefault("postgres_password", "studio_dev_password")
	viper.SetDefault("postgres_db_name", "studio")
	viper.SetDefault("postgres_ssl_mode", "disable")

	viper.SetDefault("history_db_path", filepath.Join(configDir, "history.db"))
}

// bindEnvVariables binds environment overrides explicitly.
// GEMINI_API_KEY is read directly by Genkit and the Imagen client, not via
// Viper; Validate() only checks its presence.
func bindEnvVariables() {
	mustBind := func(key, envVar string) {
		if err := viper.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("model_name", "STUDIO_MODEL_NAME")
	mustBind("embedder_model", "STUDIO_EMBEDDER_MODEL")
	mustBind("image_model", "STUDIO_IMAGE_MODEL")
	mustBind("knowledge_dir", "STUDIO_KNOWLEDGE_DIR")
	mustBind("base_url", "STUDIO_BASE_URL")
	mustBind("history_db_path", "STUDIO_HISTORY_DB")
}

// parseDatabaseURL overrides the postgres_* fields from DATABASE_URL when set.
func (c *Config) parseDatabaseURL() error {
	raw := os.Getenv("DATABASE_URL")
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("unsupported scheme %q (expected postgres or postgresql)", u.Scheme)
	}

	c.PostgresHost = u.Hostname()
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("parsing port: %w", err)
		}
		c.PostgresPort = port
	}
	if u.User != nil {
		c.PostgresUser = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			c.PostgresPassword = pw
		}
	}
	if name := strings.TrimPrefix(u.Path, "/"); name != "" {
		c.PostgresDBName = name
	}
	if mode := u.Query().Get("sslmode"); mode != "" {
		c.PostgresSSLMode = mode
	}

	return nil
}

// ConnString returns the PostgreSQL connection URL for pgx and golang-migrate.
func (c *Config) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:   fmt.Sprintf("%s:%d", c.PostgresHost, c.PostgresPort),
		Path:   "/" + c.PostgresDBName,
	}
	q := url.Values{}
	if c.PostgresSSLMode != "" {
		q.Set("sslmode", c.PostgresSSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Validate checks the configuration for invalid values (fail-fast).
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}
	if strings.TrimSpace(c.ModelName) == "" {
		return fmt.Errorf("%w: model name is empty", ErrInvalidModelName)
	}
	if strings.TrimSpace(c.EmbedderModel) == "" {
		return fmt.Errorf("%w: embedder model is empty", ErrInvalidEmbedderModel)
	}
	if c.RetrievalK < 1 || c.RetrievalK > 100 {
		return fmt.Errorf("%w: %d (must be 1-100)", ErrInvalidRetrievalK, c.RetrievalK)
	}
	if c.MaxIterations < 1 || c.MaxIterations > 100 {
		return fmt.Errorf("%w: %d (must be 1-100)", ErrInvalidMaxIterations, c.MaxIterations)
	}
	if strings.TrimSpace(c.PostgresHost) == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidPostgresHost)
	}
	if c.PostgresPort < 1 || c.PostgresPort > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPostgresPort, c.PostgresPort)
	}
	if strings.TrimSpace(c.PostgresDBName) == "" {
		return fmt.Errorf("%w: database name is empty", ErrInvalidPostgresDBName)
	}
	if u, err := url.Parse(c.BaseURL); err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	return nil
}

// RequireAPIKey checks that GEMINI_API_KEY is present in the environment.
// Commands that call Gemini invoke this before constructing clients.
func RequireAPIKey() error {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("%w: set GEMINI_API_KEY", ErrMissingAPIKey)
	}
	return nil
}
