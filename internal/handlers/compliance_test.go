package handlers

import (
	"net/http"
	"testing"

	"github.com/assetflow/backend/internal/compliance"
	"github.com/assetflow/backend/internal/licensing"
	"github.com/assetflow/backend/internal/reference"
	"github.com/assetflow/backend/internal/workspace"
)

func TestComplianceSummary(t *testing.T) {
	ws := newTestWorkspace()
	for _, id := range []string{"asset-1", "asset-2"} {
		if _, _, err := ws.Library.SaveAsset(id); err != nil {
			t.Fatal(err)
		}
	}
	mux := newTestMux(Dependencies{Workspace: ws})

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/compliance", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	var summary workspace.ComplianceSummary
	decodeResponse(t, rec, &summary)
	if summary.CompliancePercentage != 100 || summary.NonCompliantCount != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestComplianceAttribution(t *testing.T) {
	ws := newTestWorkspace()
	mux := newTestMux(Dependencies{Workspace: ws})

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/compliance/attribution", nil)
	var resp attributionResponse
	decodeResponse(t, rec, &resp)
	if resp.Format != compliance.FormatText || resp.Text != compliance.NoAttributionRequired {
		t.Fatalf("unexpected empty attribution %+v", resp)
	}

	if _, _, err := ws.Library.SaveAsset("asset-2"); err != nil {
		t.Fatal(err)
	}
	rec = doRequest(t, mux, http.MethodGet, "/api/v1/compliance/attribution?format=social", nil)
	decodeResponse(t, rec, &resp)
	if resp.Text != "📷 Technology and Innovation by ThisIsEngineering (Pexels)" {
		t.Fatalf("unexpected social attribution %q", resp.Text)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/v1/compliance/attribution?format=rtf", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected bad request got %d", rec.Code)
	}
}

func TestEducationEndpoints(t *testing.T) {
	mux := newTestMux(Dependencies{})

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/licenses", nil)
	var licenses map[string][]licensing.License
	decodeResponse(t, rec, &licenses)
	if len(licenses["licenses"]) != 1 || licenses["licenses"][0].Code != "CC0" {
		t.Fatalf("unexpected licenses %+v", licenses)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/v1/reference", nil)
	var ds referenceResponse
	decodeResponse(t, rec, &ds)
	if ds.Version != reference.FallbackVersion || len(ds.Checklist) == 0 {
		t.Fatalf("unexpected dataset %+v", ds)
	}
	if len(ds.LicenseCodes) != 1 || ds.LicenseCodes[0] != "CC0" {
		t.Fatalf("got license codes %v want [CC0]", ds.LicenseCodes)
	}
}
