package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/ronda")
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected port: %d", cfg.Port)
	}
	if cfg.StoreDriver != StorePostgres || !cfg.Database.AutoMigrate || cfg.Database.MaxConns != 10 {
		t.Fatalf("unexpected database config: %+v", cfg)
	}
	if cfg.RateLimit.RequestsPerSecond != 10 || cfg.RateLimit.Burst != 20 {
		t.Fatalf("unexpected rate limit: %+v", cfg.RateLimit)
	}
}

func TestLoad_RequiresDSNForPostgres(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without DB_DSN")
	}
}

func TestLoad_DynamoDB(t *testing.T) {
	t.Setenv("STORE_DRIVER", "DynamoDB")
	t.Setenv("DB_DSN", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("DYNAMODB_TABLE_VOLTAS", "voltas_teste")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreDriver != StoreDynamoDB || cfg.DynamoDB.Endpoint != "http://localhost:8000" {
		t.Fatalf("unexpected config: %+v", cfg.DynamoDB)
	}
	if cfg.DynamoDB.Tables.Voltas != "voltas_teste" || cfg.DynamoDB.Tables.Empresas != "empresas" {
		t.Fatalf("unexpected tables: %+v", cfg.DynamoDB.Tables)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":           "abc",
		"STORE_DRIVER":   "mysql",
		"DB_MAX_CONNS":   "muitas",
		"LOG_PRETTY":     "talvez",
		"RATE_LIMIT_RPS": "rápido",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("DB_DSN", "postgres://localhost/ronda")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}
