package config

import "testing"

func TestLoadRequiresDSNAndSecret(t *testing.T) {
	t.Setenv("RESQLINE_PG_DSN", "")
	t.Setenv("RESQLINE_AUTH_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DSN is missing")
	}

	t.Setenv("RESQLINE_PG_DSN", "postgres://localhost/resqline")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when auth secret is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RESQLINE_PG_DSN", "postgres://localhost/resqline")
	t.Setenv("RESQLINE_AUTH_SECRET", "test-secret")
	t.Setenv("RESQLINE_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.PGDSN != "postgres://localhost/resqline" || cfg.AuthSecret != "test-secret" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadOverridesAddr(t *testing.T) {
	t.Setenv("RESQLINE_PG_DSN", "postgres://localhost/resqline")
	t.Setenv("RESQLINE_AUTH_SECRET", "test-secret")
	t.Setenv("RESQLINE_ADDR", ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("expected :9999, got %q", cfg.Addr)
	}
}
