package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/database"
)

// Drivers de armazenamento aceitos
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Exportadores de rastreamento aceitos
const (
	TracingNone   = "none"
	TracingStdout = "stdout"
	TracingOTLP   = "otlp"
)

var (
	ErrInvalidStorageDriver = errors.New("STORAGE_DRIVER deve ser postgres ou memory")
	ErrInvalidTracing       = errors.New("TRACING_EXPORTER deve ser none, stdout ou otlp")
	ErrMissingJWTSecret     = errors.New("JWT_SECRET não configurada")
)

// Config reúne a configuração da aplicação
type Config struct {
	Env                string
	HTTPAddr           string
	BasePath           string
	StorageDriver      string
	Database           *database.PostgresConfig
	JWTSecret          string
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	TracingExporter    string
	OTLPEndpoint       string
	MigrationsAuto     bool
}

// Load lê a configuração das variáveis de ambiente
func Load() (*Config, error) {
	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		BasePath:           getEnv("API_BASE_PATH", "/api/v1"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
		Database:           database.NewPostgresConfigFromEnv(),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		TracingExporter:    strings.ToLower(getEnv("TRACING_EXPORTER", TracingNone)),
		OTLPEndpoint:       getEnv("OTLP_ENDPOINT", "localhost:4317"),
		MigrationsAuto:     getEnvBool("MIGRATIONS_AUTO", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica os valores que impedem a inicialização
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StoragePostgres, StorageMemory:
	default:
		return ErrInvalidStorageDriver
	}

	switch c.TracingExporter {
	case TracingNone, TracingStdout, TracingOTLP:
	default:
		return ErrInvalidTracing
	}

	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getEnv retorna o valor da variável de ambiente ou o valor padrão
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
