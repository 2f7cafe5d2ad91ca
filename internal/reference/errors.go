package reference

import "errors"

var (
	// ErrDocumentUnconfigured indicates a source has no location for a document.
	ErrDocumentUnconfigured = errors.New("reference document not configured")
	// ErrDocumentNotFound indicates the document could not be located.
	ErrDocumentNotFound = errors.New("reference document not found")
)
