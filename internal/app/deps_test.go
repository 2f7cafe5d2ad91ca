package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/assetflow/backend/internal/config"
	"github.com/assetflow/backend/internal/reference"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildDependencies(t *testing.T) {
	cfg := config.Config{
		ObjectStore: config.ObjectStoreConfig{Bucket: "test-bucket", Endpoint: "http://localhost:9000", Region: "us-east-1"},
		Archive:     config.ArchiveConfig{QueueSize: 1, Workers: 1, Timeout: time.Second},
		RateLimit:   config.RateLimitConfig{Requests: 10, Window: time.Minute, Burst: 2, TTL: time.Minute},
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	ws := buildWorkspace(context.Background(), config.Config{Reference: config.ReferenceConfig{Source: config.ReferenceSourceEmbedded}})
	deps, cleanup, err := buildDependencies(context.Background(), cfg, ws, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleanup == nil {
		t.Fatal("expected cleanup function")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = cleanup(ctx)
	}()

	if deps.Workspace != ws {
		t.Fatal("expected workspace to be passed through")
	}
	if deps.Limiter == nil {
		t.Fatal("expected rate limiter to be configured")
	}
	if deps.Archiver == nil {
		t.Fatal("expected archiver to be configured")
	}
}

func TestBuildDependenciesWithoutObjectStore(t *testing.T) {
	ws := buildWorkspace(context.Background(), config.Config{Reference: config.ReferenceConfig{Source: config.ReferenceSourceEmbedded}})
	deps, cleanup, err := buildDependencies(context.Background(), config.Config{}, ws, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deps.Archiver != nil {
		t.Fatal("expected archiver to be disabled")
	}
	if err := cleanup(context.Background()); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestReferenceSourceSelection(t *testing.T) {
	tests := []struct {
		source  string
		wantNil bool
		wantErr bool
	}{
		{source: config.ReferenceSourceHTTP},
		{source: config.ReferenceSourceFile},
		{source: config.ReferenceSourceEmbedded, wantNil: true},
		{source: config.ReferenceSourceS3, wantErr: true},
		{source: "ftp", wantErr: true},
	}

	for _, tt := range tests {
		cfg := config.Config{Reference: config.ReferenceConfig{Source: tt.source, Dir: "reference"}}
		src, err := referenceSource(context.Background(), cfg)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s: unexpected error %v", tt.source, err)
		}
		if !tt.wantErr && (src == nil) != tt.wantNil {
			t.Fatalf("%s: unexpected source %T", tt.source, src)
		}
	}
}

func TestBuildWorkspaceFromFiles(t *testing.T) {
	dir := t.TempDir()
	docs := map[string]string{
		"licenses.yaml":             "CC-BY:\n  name: Creative Commons Attribution\n  attribution_required: true\n  commercial_use: true\n",
		"asset-sources.json":        `{"images":{"Pexels":{"license_type":"Pexels License","attribution_required":false,"commercial_use":true,"modifications_allowed":true,"description":"Free stock photos"}}}`,
		"compliance-checklist.json": `{"before_use":["Check the license"]}`,
		"content-categories.json":   `{"video":{"platforms":["YouTube"],"asset_types":["Videos"]}}`,
	}
	for name, body := range docs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cfg := config.Config{Reference: config.ReferenceConfig{Source: config.ReferenceSourceFile, Dir: dir, Timeout: time.Second}}
	ws := buildWorkspace(context.Background(), cfg)

	if ws.Dataset.Version != reference.RemoteVersion {
		t.Fatalf("expected loaded dataset got %q", ws.Dataset.Version)
	}
	if got := ws.Licenses.Resolve("cc-by").Name; got != "Creative Commons Attribution" {
		t.Fatalf("unexpected resolved license %q", got)
	}
}

func TestBuildWorkspaceFallsBack(t *testing.T) {
	cfg := config.Config{Reference: config.ReferenceConfig{Source: config.ReferenceSourceFile, Dir: t.TempDir()}}
	ws := buildWorkspace(context.Background(), cfg)
	if !ws.Dataset.IsFallback() {
		t.Fatalf("expected fallback dataset got %q", ws.Dataset.Version)
	}
}
