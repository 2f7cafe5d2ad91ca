package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ASSETFLOW_REFERENCE_SOURCE", "embedded")
	t.Setenv("ASSETFLOW_LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	root := newRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootRequiresCommand(t *testing.T) {
	if _, _, err := runCLI(t); err == nil {
		t.Fatal("expected error without a command")
	}
	if _, _, err := runCLI(t, "migrate"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestSearchCommand(t *testing.T) {
	out, _, err := runCLI(t, "search", "office")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "asset-1") || !strings.Contains(out, "asset-6") {
		t.Fatalf("expected office assets in output:\n%s", out)
	}
	if strings.Contains(out, "asset-3") {
		t.Fatalf("unexpected asset in output:\n%s", out)
	}
	if !strings.Contains(out, "Showing 2 of 2 assets") {
		t.Fatalf("missing summary line:\n%s", out)
	}

	out, _, err = runCLI(t, "search", "--source", "pixabay")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "asset-5") || !strings.Contains(out, "Showing 1 of 1 assets") {
		t.Fatalf("unexpected filtered output:\n%s", out)
	}

	out, _, err = runCLI(t, "search", "submarine")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if strings.TrimSpace(out) != "No assets found" {
		t.Fatalf("unexpected empty output %q", out)
	}
}

func TestAttributionCommand(t *testing.T) {
	out, _, err := runCLI(t, "attribution")
	if err != nil {
		t.Fatalf("attribution: %v", err)
	}
	if strings.TrimSpace(out) != "No assets require attribution." {
		t.Fatalf("unexpected empty attribution %q", out)
	}

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	out, errOut, err := runCLI(t, "attribution", "--save", "asset-1,asset-2", "--format", "html", "--copy")
	if err != nil {
		t.Fatalf("attribution: %v", err)
	}
	want := `<p>"Technology and Innovation" by ThisIsEngineering is licensed under Attribution. Source: Pexels</p>`
	if strings.TrimSpace(out) != want {
		t.Fatalf("unexpected html attribution %q", out)
	}
	if copied != want {
		t.Fatalf("unexpected clipboard contents %q", copied)
	}
	if !strings.Contains(errOut, "Attributions copied to clipboard") {
		t.Fatalf("missing copy notice in %q", errOut)
	}

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	if _, _, err := runCLI(t, "attribution", "--copy"); err == nil {
		t.Fatal("expected clipboard failure to surface")
	}

	if _, _, err := runCLI(t, "attribution", "--format", "markdown"); err == nil {
		t.Fatal("expected unknown format error")
	}
	if _, _, err := runCLI(t, "attribution", "--save", "asset-404"); err == nil {
		t.Fatal("expected unknown asset error")
	}
}

func TestReportCommand(t *testing.T) {
	out, _, err := runCLI(t, "report", "license", "--save", "asset-1,asset-2", "--format", "csv")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.HasPrefix(out, "section,label,value") || !strings.Contains(out, "2 of 2 assets approved for commercial use") {
		t.Fatalf("unexpected csv report:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "usage.pdf")
	_, errOut, err := runCLI(t, "report", "usage", "--format", "pdf", "--out", path)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(errOut, "Exporting report as PDF...") {
		t.Fatalf("missing export notice in %q", errOut)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("expected pdf output")
	}

	if _, _, err := runCLI(t, "report", "audit"); err == nil {
		t.Fatal("expected unknown kind error")
	}
}
