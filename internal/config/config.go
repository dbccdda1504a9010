// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8000)
//   - GIN_MODE: Modo do gin, debug/release/test (default: release)
//   - SHUTDOWN_TIMEOUT_SECONDS: Tempo máximo para encerrar conexões (default: 10)
//
// ## Dataset
//   - DATASET_PATH: Caminho do CSV de focos (default: focos_mensal_br_202511.csv)
//   - DEFAULT_QUERY_LIMIT: Limite padrão de /focos (default: 1000)
//   - FALLBACK_SAMPLE_SIZE: Linhas devolvidas quando a consulta falha (default: 100)
//   - ALERT_CAP: Máximo de alertas em /alertas (default: 20)
//
// ## Cache
//   - CACHE_TTL_SECONDS: TTL das agregações em cache (default: 60)
//   - CACHE_MAX_SIZE: Número máximo de entradas (default: 256, 0 desativa)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	GinMode         string
	ShutdownTimeout time.Duration

	// Dataset configuration
	DatasetPath        string
	DefaultQueryLimit  int
	FallbackSampleSize int
	AlertCap           int

	// Cache configuration
	CacheTTL     time.Duration
	CacheMaxSize int

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8000"),
		GinMode:         getEnv("GIN_MODE", "release"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,

		DatasetPath:        getEnv("DATASET_PATH", "focos_mensal_br_202511.csv"),
		DefaultQueryLimit:  getEnvInt("DEFAULT_QUERY_LIMIT", 1000),
		FallbackSampleSize: getEnvInt("FALLBACK_SAMPLE_SIZE", 100),
		AlertCap:           getEnvInt("ALERT_CAP", 20),

		CacheTTL:     time.Duration(getEnvFloat("CACHE_TTL_SECONDS", 60) * float64(time.Second)),
		CacheMaxSize: getEnvInt("CACHE_MAX_SIZE", 256),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
