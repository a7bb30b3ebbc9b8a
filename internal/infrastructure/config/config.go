package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreDynamoDB = "dynamodb"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Port        int
	StoreDriver string
	GinMode     string
	Database    DatabaseConfig
	DynamoDB    DynamoDBConfig
	Log         LogConfig
	RateLimit   RateLimitConfig
}

type DatabaseConfig struct {
	DSN         string
	MaxConns    int
	AutoMigrate bool
}

// DynamoDBConfig is only read when StoreDriver is dynamodb.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tables          DynamoDBTables
}

type DynamoDBTables struct {
	Empresas   string
	Usuarios   string
	Relatorios string
	Voltas     string
	Contadores string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// RateLimitConfig limita requisições por IP. RequestsPerSecond <= 0 desliga o limite.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load carrega variáveis de ambiente e aplica defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	port, err := parseIntEnv("PORT", 8080)
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", StorePostgres)))
	switch cfg.StoreDriver {
	case StorePostgres, StoreDynamoDB:
	default:
		return nil, fmt.Errorf("STORE_DRIVER inválido: %s", cfg.StoreDriver)
	}

	cfg.GinMode = getEnv("GIN_MODE", "release")

	cfg.Database.DSN = getEnv("DB_DSN", "")
	if cfg.StoreDriver == StorePostgres && cfg.Database.DSN == "" {
		return nil, errors.New("DB_DSN obrigatório")
	}
	if cfg.Database.MaxConns, err = parseIntEnv("DB_MAX_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate, err = parseBoolEnv("DB_AUTO_MIGRATE", true); err != nil {
		return nil, err
	}

	cfg.DynamoDB = DynamoDBConfig{
		Region:          getEnv("AWS_REGION", "us-east-1"),
		Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		Tables: DynamoDBTables{
			Empresas:   getEnv("DYNAMODB_TABLE_EMPRESAS", "empresas"),
			Usuarios:   getEnv("DYNAMODB_TABLE_USUARIOS", "usuarios"),
			Relatorios: getEnv("DYNAMODB_TABLE_RELATORIOS", "relatorios_ronda"),
			Voltas:     getEnv("DYNAMODB_TABLE_VOLTAS", "voltas_ronda"),
			Contadores: getEnv("DYNAMODB_TABLE_CONTADORES", "contadores"),
		},
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	if cfg.Log.Pretty, err = parseBoolEnv("LOG_PRETTY", false); err != nil {
		return nil, err
	}

	if cfg.RateLimit.RequestsPerSecond, err = parseFloatEnv("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = parseIntEnv("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return v, nil
}

func parseFloatEnv(key string, def float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return v, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s inválido: %w", key, err)
	}
	return v, nil
}
