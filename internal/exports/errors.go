package exports

import "errors"

var (
	// ErrStorageUnavailable indicates no object store has been configured.
	ErrStorageUnavailable = errors.New("archive storage unavailable")
	// ErrJobNotFound indicates an unknown archive job id.
	ErrJobNotFound = errors.New("archive job not found")

	errArchiverClosed = errors.New("archiver closed")
)
