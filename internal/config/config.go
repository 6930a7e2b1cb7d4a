package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration, loaded from environment
// variables (optionally seeded from a .env file by the caller).
type Config struct {
	Port   string
	AppEnv string

	JWTSecret      string
	AllowedOrigins []string
	UploadDir      string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load reads configuration from the environment with sensible defaults.
// JWT_SECRET is mandatory in production; in any other environment a
// development fallback is substituted so the server can start locally.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "3000"),
		AppEnv:     getEnv("APP_ENV", "development"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "portfolio"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required in production")
		}
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production behavior
// (strict CORS, no error detail in responses).
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DSN builds the postgres connection string from the discrete DB_* parts.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s dbname=%s port=%s sslmode=%s password=%s",
		c.DBHost, c.DBUser, c.DBName, c.DBPort, c.DBSSLMode, c.DBPassword)
}

// String returns a loggable representation with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, Env: %s, DB: %s@%s:%s/%s, Origins: %v, Uploads: %s, JWTSecret: ***}",
		c.Port, c.AppEnv, c.DBUser, c.DBHost, c.DBPort, c.DBName, c.AllowedOrigins, c.UploadDir)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
