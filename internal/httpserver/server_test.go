package httpserver

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNewAppliesDefaults(t *testing.T) {
	srv := New(9000, http.NotFoundHandler(), 0)
	if srv.Addr() != ":9000" {
		t.Fatalf("unexpected addr %q", srv.Addr())
	}
	if srv.inner.WriteTimeout != 10*time.Second {
		t.Fatalf("expected default write timeout got %v", srv.inner.WriteTimeout)
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := New(0, http.NotFoundHandler(), time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
