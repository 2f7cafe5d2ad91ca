package reference

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var fileExtensions = []string{".json", ".yaml", ".yml"}

// FileSource reads reference documents from a local directory. Each document
// may be JSON or YAML.
type FileSource struct {
	Dir string
}

// Fetch implements Source.
func (s FileSource) Fetch(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Dir == "" {
		return nil, fmt.Errorf("file source %s: %w", doc, ErrDocumentUnconfigured)
	}

	for _, ext := range fileExtensions {
		name := filepath.Join(s.Dir, string(doc)+ext)
		data, err := os.ReadFile(name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file source %s: %w", name, err)
		}
	}

	return nil, fmt.Errorf("file source %s in %s: %w", doc, s.Dir, ErrDocumentNotFound)
}
