package reference

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/licenses.json":
			_, _ = io.WriteString(w, `{"CC0":{"name":"Public Domain"}}`)
		case "/broken.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(map[Document]string{
		DocumentLicenses:            srv.URL + "/licenses.json",
		DocumentAssetSources:        srv.URL + "/missing.json",
		DocumentComplianceChecklist: srv.URL + "/broken.json",
	}, time.Second)

	data, err := src.Fetch(context.Background(), DocumentLicenses)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.Contains(string(data), "Public Domain") {
		t.Fatalf("unexpected body %s", data)
	}

	if _, err := src.Fetch(context.Background(), DocumentAssetSources); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected not found got %v", err)
	}
	if _, err := src.Fetch(context.Background(), DocumentComplianceChecklist); err == nil {
		t.Fatal("expected error for 500 response")
	}
	if _, err := src.Fetch(context.Background(), DocumentContentCategories); !errors.Is(err, ErrDocumentUnconfigured) {
		t.Fatalf("expected unconfigured got %v", err)
	}
}

func TestFileSourceFetch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "licenses.json"), []byte(`{"CC0":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "compliance-checklist.yaml"), []byte("before_use: [a]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := FileSource{Dir: dir}

	if _, err := src.Fetch(context.Background(), DocumentLicenses); err != nil {
		t.Fatalf("fetch json: %v", err)
	}
	if _, err := src.Fetch(context.Background(), DocumentComplianceChecklist); err != nil {
		t.Fatalf("fetch yaml: %v", err)
	}
	if _, err := src.Fetch(context.Background(), DocumentContentCategories); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected not found got %v", err)
	}
	if _, err := (FileSource{}).Fetch(context.Background(), DocumentLicenses); !errors.Is(err, ErrDocumentUnconfigured) {
		t.Fatalf("expected unconfigured got %v", err)
	}
}

type objectGetterStub struct {
	objects map[string]string
	keys    []string
}

func (s *objectGetterStub) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(in.Key)
	s.keys = append(s.keys, key)
	body, ok := s.objects[key]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3SourceFetch(t *testing.T) {
	client := &objectGetterStub{objects: map[string]string{
		"reference/licenses.json": `{"CC0":{"name":"Public Domain"}}`,
	}}
	src := NewS3Source(client, "bucket", "reference")

	data, err := src.Fetch(context.Background(), DocumentLicenses)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.Contains(string(data), "Public Domain") {
		t.Fatalf("unexpected body %s", data)
	}

	if _, err := src.Fetch(context.Background(), DocumentAssetSources); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected not found got %v", err)
	}
	if client.keys[1] != "reference/asset-sources.json" {
		t.Fatalf("unexpected key %q", client.keys[1])
	}

	if _, err := NewS3Source(nil, "", "").Fetch(context.Background(), DocumentLicenses); !errors.Is(err, ErrDocumentUnconfigured) {
		t.Fatalf("expected unconfigured got %v", err)
	}
}
