package database

import (
	"os"
	"strconv"
	"time"
)

// NewPostgresConfigFromEnv cria a configuração a partir das variáveis de ambiente.
// DATABASE_URL, quando presente, tem precedência sobre as variáveis DB_*.
func NewPostgresConfigFromEnv() *PostgresConfig {
	return &PostgresConfig{
		URL:             os.Getenv("DATABASE_URL"),
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "postgres"),
		Database:        getEnv("DB_NAME", "erp_restaurante"),
		SSLMode:         getEnv("DB_SSL_MODE", "disable"),
		MaxConnections:  int32(getEnvInt("DB_MAX_CONNECTIONS", 10)),
		MinConnections:  int32(getEnvInt("DB_MIN_CONNECTIONS", 2)),
		MaxConnLifetime: time.Duration(getEnvInt("DB_MAX_LIFETIME", 60)) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
