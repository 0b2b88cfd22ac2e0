package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Session SessionConfig
	LLM     LLMConfig
	Suggest SuggestConfig
	S3      S3Config
	Email   EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SessionConfig holds anonymous session token settings.
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// LLMConfig holds text-completion provider settings. RefinerModel and
// EngineerModel override DefaultModel for the respective flow when set.
type LLMConfig struct {
	Provider        string `mapstructure:"provider"`
	APIKey          string `mapstructure:"api_key"`
	DefaultModel    string `mapstructure:"default_model"`
	RefinerModel    string `mapstructure:"refiner_model"`
	EngineerModel   string `mapstructure:"engineer_model"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
}

// SuggestConfig holds field-suggestion settings.
type SuggestConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

// S3Config holds object storage settings for prompt artifacts.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings for prompt sharing.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the PROMPTPILOT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROMPTPILOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "promptpilot")
	v.SetDefault("db.password", "promptpilot_secret")
	v.SetDefault("db.name", "promptpilot_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development; 9002 is the Next.js dev port)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:9002,http://127.0.0.1:9002")

	// Session defaults
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.expiry", "720h")
	v.SetDefault("session.issuer", "promptpilot")

	// LLM defaults
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.default_model", "gemini-2.0-flash")
	v.SetDefault("llm.refiner_model", "")
	v.SetDefault("llm.engineer_model", "")
	v.SetDefault("llm.timeout_secs", 60)
	v.SetDefault("llm.max_output_tokens", 8192)

	// Suggestion defaults
	v.SetDefault("suggest.cache_size", 256)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "promptpilot-artifacts")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@promptpilot.app")
	v.SetDefault("email.from_name", "PromptPilot")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "PROMPTPILOT_SERVER_PORT",
		"server.read_timeout":   "PROMPTPILOT_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "PROMPTPILOT_SERVER_WRITE_TIMEOUT",
		"server.environment":    "PROMPTPILOT_SERVER_ENVIRONMENT",
		"db.host":               "PROMPTPILOT_DB_HOST",
		"db.port":               "PROMPTPILOT_DB_PORT",
		"db.user":               "PROMPTPILOT_DB_USER",
		"db.password":           "PROMPTPILOT_DB_PASSWORD",
		"db.name":               "PROMPTPILOT_DB_NAME",
		"db.sslmode":            "PROMPTPILOT_DB_SSLMODE",
		"db.max_open":           "PROMPTPILOT_DB_MAX_OPEN",
		"db.max_idle":           "PROMPTPILOT_DB_MAX_IDLE",
		"log.level":             "PROMPTPILOT_LOG_LEVEL",
		"log.format":            "PROMPTPILOT_LOG_FORMAT",
		"cors.allowed_origins":  "PROMPTPILOT_CORS_ALLOWED_ORIGINS",
		"session.secret":        "PROMPTPILOT_SESSION_SECRET",
		"session.expiry":        "PROMPTPILOT_SESSION_EXPIRY",
		"session.issuer":        "PROMPTPILOT_SESSION_ISSUER",
		"llm.provider":          "PROMPTPILOT_LLM_PROVIDER",
		"llm.api_key":           "PROMPTPILOT_LLM_API_KEY",
		"llm.default_model":     "PROMPTPILOT_LLM_DEFAULT_MODEL",
		"llm.refiner_model":     "PROMPTPILOT_LLM_REFINER_MODEL",
		"llm.engineer_model":    "PROMPTPILOT_LLM_ENGINEER_MODEL",
		"llm.timeout_secs":      "PROMPTPILOT_LLM_TIMEOUT_SECS",
		"llm.max_output_tokens": "PROMPTPILOT_LLM_MAX_OUTPUT_TOKENS",
		"suggest.cache_size":    "PROMPTPILOT_SUGGEST_CACHE_SIZE",
		"s3.region":             "PROMPTPILOT_S3_REGION",
		"s3.bucket":             "PROMPTPILOT_S3_BUCKET",
		"s3.endpoint":           "PROMPTPILOT_S3_ENDPOINT",
		"s3.access_key":         "PROMPTPILOT_S3_ACCESS_KEY",
		"s3.secret_key":         "PROMPTPILOT_S3_SECRET_KEY",
		"s3.presign_expiry":     "PROMPTPILOT_S3_PRESIGN_EXPIRY",
		"email.provider":        "PROMPTPILOT_EMAIL_PROVIDER",
		"email.region":          "PROMPTPILOT_EMAIL_REGION",
		"email.from_address":    "PROMPTPILOT_EMAIL_FROM_ADDRESS",
		"email.from_name":       "PROMPTPILOT_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PROMPTPILOT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PROMPTPILOT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Session = SessionConfig{
		Secret: v.GetString("session.secret"),
		Expiry: v.GetDuration("session.expiry"),
		Issuer: v.GetString("session.issuer"),
	}
	cfg.LLM = LLMConfig{
		Provider:        v.GetString("llm.provider"),
		APIKey:          v.GetString("llm.api_key"),
		DefaultModel:    v.GetString("llm.default_model"),
		RefinerModel:    v.GetString("llm.refiner_model"),
		EngineerModel:   v.GetString("llm.engineer_model"),
		TimeoutSecs:     v.GetInt("llm.timeout_secs"),
		MaxOutputTokens: v.GetInt("llm.max_output_tokens"),
	}
	cfg.Suggest = SuggestConfig{
		CacheSize: v.GetInt("suggest.cache_size"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	return cfg, nil
}
