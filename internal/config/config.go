package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API   APIConfig
	State StateConfig
	Log   LogConfig
	Stub  StubConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StateConfig struct {
	// Path to the local sqlite file holding session and cart state.
	Path string
}

type LogConfig struct {
	Level string
}

type StubConfig struct {
	Port          string
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		API: APIConfig{
			BaseURL: getEnv("KATCHERI_API_URL", "http://localhost:5000/api"),
			Timeout: time.Duration(getEnvAsInt("KATCHERI_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		State: StateConfig{
			Path: getEnv("KATCHERI_STATE_PATH", "katcheri.db"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Stub: StubConfig{
			Port:          getEnv("STUB_PORT", "5000"),
			AdminEmail:    getEnv("STUB_ADMIN_EMAIL", "admin@katcheri.com"),
			AdminPassword: getEnv("STUB_ADMIN_PASSWORD", "katcheri-admin"),
			JWTSecret:     getEnv("STUB_JWT_SECRET", "dev-only-secret-change-me"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
