package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel           OTelConfig
	Contact        ContactConfig
	Diagnostics    DiagnosticsConfig
	Env            string
	Port           string
	AllowedOrigins []string
	NodeID         int64
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// ContactConfig drives the contact form dispatch. APIKey may be empty; the
// contact endpoint then answers 500 and the other routes keep serving.
type ContactConfig struct {
	APIKey    string
	FromEmail string
	ToEmail   string
	ReplyTo   string
}

type DiagnosticsConfig struct {
	RedisURL      string
	FailureStream string
}

type ServiceType string

const (
	ServiceTypeServer  ServiceType = "server"
	ServiceTypePreview ServiceType = "preview"
)

const (
	DefaultFromEmail = "SparkCar <onboarding@resend.dev>"
	DefaultToEmail   = "sparkcar.contact@gmail.com"
)

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files:
//   - .env.server for the HTTP server
//   - .env.preview for the terminal preview
//
// Falls back to .env if service-specific file doesn't exist.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("SPARKCAR_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:            getEnv("SPARKCAR_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		NodeID:         getEnvInt64("NODE_ID", 1),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "sparkcar-site"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Contact: ContactConfig{
			APIKey:    getEnv("RESEND_API_KEY", ""),
			FromEmail: getEnvNonEmpty("CONTACT_FROM_EMAIL", DefaultFromEmail),
			ToEmail:   getEnvNonEmpty("CONTACT_TO_EMAIL", DefaultToEmail),
			ReplyTo:   getEnv("CONTACT_REPLY_TO", ""),
		},
		Diagnostics: DiagnosticsConfig{
			RedisURL:      getEnv("REDIS_URL", ""),
			FailureStream: getEnv("CONTACT_FAILURE_STREAM", "contact_failures"),
		},
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT must not be empty")
	}

	if cfg.NodeID < 0 || cfg.NodeID > 1023 {
		return Config{}, fmt.Errorf("NODE_ID must be between 0 and 1023, got %d", cfg.NodeID)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c ContactConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c DiagnosticsConfig) Enabled() bool {
	return c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvNonEmpty treats an empty value the same as an unset one.
func getEnvNonEmpty(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
