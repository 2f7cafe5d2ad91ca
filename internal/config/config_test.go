package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppPort != 8080 {
		t.Fatalf("unexpected port %d", cfg.AppPort)
	}
	if cfg.PageSize != 12 {
		t.Fatalf("unexpected page size %d", cfg.PageSize)
	}
	if cfg.SearchDelay != time.Second {
		t.Fatalf("unexpected search delay %v", cfg.SearchDelay)
	}
	if cfg.Reference.Source != ReferenceSourceHTTP {
		t.Fatalf("unexpected reference source %q", cfg.Reference.Source)
	}
	if cfg.ObjectStore.Enabled() {
		t.Fatal("expected object store to be disabled without a bucket")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ASSETFLOW_PORT", "9090")
	t.Setenv("ASSETFLOW_PAGE_SIZE", "4")
	t.Setenv("ASSETFLOW_SEARCH_DELAY", "0s")
	t.Setenv("ASSETFLOW_REFERENCE_SOURCE", "FILE")
	t.Setenv("ASSETFLOW_S3_BUCKET", "assets")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppPort != 9090 || cfg.PageSize != 4 || cfg.SearchDelay != 0 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Reference.Source != ReferenceSourceFile {
		t.Fatalf("expected file source got %q", cfg.Reference.Source)
	}
	if !cfg.ObjectStore.Enabled() {
		t.Fatal("expected object store to be enabled")
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("ASSETFLOW_PORT", "not-a-number")
	t.Setenv("ASSETFLOW_PAGE_SIZE", "-3")
	t.Setenv("ASSETFLOW_REFERENCE_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppPort != 8080 {
		t.Fatalf("expected fallback port got %d", cfg.AppPort)
	}
	if cfg.PageSize != 12 {
		t.Fatalf("expected fallback page size got %d", cfg.PageSize)
	}
	if cfg.Reference.Timeout != 10*time.Second {
		t.Fatalf("expected fallback timeout got %v", cfg.Reference.Timeout)
	}
}
