package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assetflow/backend/internal/catalog"
	"github.com/assetflow/backend/internal/reference"
	"github.com/assetflow/backend/internal/workspace"
)

func newTestWorkspace() *workspace.Workspace {
	return workspace.New(reference.Fallback(), catalog.Sample(), workspace.Options{PageSize: 4})
}

func newTestMux(deps Dependencies) *http.ServeMux {
	if deps.Workspace == nil {
		deps.Workspace = newTestWorkspace()
	}
	mux := http.NewServeMux()
	RegisterRoutes(mux, deps)
	return mux
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

type denyLimiter struct{}

func (denyLimiter) Allow(string) bool { return false }
