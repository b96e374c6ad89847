package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret      string
	JWTExpiryHours int

	UploadDir string

	// AuthRequired controls whether /bugs routes reject requests without a
	// valid bearer token. Defaults to false: tokens are validated when
	// presented but never demanded.
	AuthRequired bool

	GinMode  string
	Port     string
	LogLevel string
}

func Load() *Config {
	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "buguser"),
		DBPassword:     getEnv("DB_PASSWORD", "bugpassword"),
		DBName:         getEnv("DB_NAME", "bug_tracker"),
		JWTSecret:      getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 10),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AuthRequired:   getEnvBool("AUTH_REQUIRED", false),
		GinMode:        getEnv("GIN_MODE", "debug"),
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
