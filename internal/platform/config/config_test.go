package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Storage.Driver != DriverMemory || cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if cfg.Paging.MaxLimit != 100 || cfg.Paging.DefaultLimit != 100 {
		t.Fatalf("unexpected paging defaults %#v", cfg.Paging)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	content := `
http:
  addr: ":9000"
  read_timeout: 2s
storage:
  driver: sqlite
  dsn: /tmp/portal.db
paging:
  max_limit: 50
  default_limit: 25
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "7000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_DSN", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Addr != ":7000" {
		t.Fatalf("PORT must override file addr, got %s", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout != 2*time.Second {
		t.Fatalf("unexpected read timeout %s", cfg.HTTP.ReadTimeout)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.DSN != "/tmp/portal.db" {
		t.Fatalf("unexpected storage %#v", cfg.Storage)
	}
	if cfg.Paging.MaxLimit != 50 || cfg.Paging.DefaultLimit != 25 {
		t.Fatalf("unexpected paging %#v", cfg.Paging)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("LOG_FORMAT must override, got %s", cfg.Log.Format)
	}
}

func TestApplyEnv_DSNImpliesPostgres(t *testing.T) {
	cfg := Default()
	env := map[string]string{"DB_DSN": "postgres://localhost/portal"}
	err := applyEnv(&cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatalf("applyEnv error: %v", err)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %s", cfg.Storage.Driver)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Driver = "mongo"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown driver error")
	}

	cfg = Default()
	cfg.Storage.Driver = DriverPostgres
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing dsn error")
	}

	cfg = Default()
	cfg.Paging.DefaultLimit = 500
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected default_limit error")
	}
}
