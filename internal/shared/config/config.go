package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	JWTSecret       string
	AWSRegion       string
	DynamoEndpoint  string
	UsersTable      string
	DocumentsTable  string
	AnalysesTable   string
	ResumesTable    string
	AnthropicAPIKey string
	AnthropicModel  string
	Language        string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	secret := os.Getenv("JWT_SECRET")

	if env == "production" && secret == "" {
		log.Printf("JWT_SECRET is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		Env:             env,
		JWTSecret:       secret,
		AWSRegion:       getEnv("AWS_REGION", ""),
		DynamoEndpoint:  getEnv("DYNAMODB_ENDPOINT", ""),
		UsersTable:      getEnv("USERS_TABLE", ""),
		DocumentsTable:  getEnv("DOCUMENTS_TABLE", ""),
		AnalysesTable:   getEnv("ANALYSES_TABLE", ""),
		ResumesTable:    getEnv("RESUMES_TABLE", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", ""),
		Language:        getEnv("APP_LANGUAGE", "English"),
	}
}

// HasDynamo reports whether every DynamoDB table name is configured.
func (c Config) HasDynamo() bool {
	return c.UsersTable != "" && c.DocumentsTable != "" && c.AnalysesTable != "" && c.ResumesTable != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
