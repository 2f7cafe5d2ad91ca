package library

import "errors"

var (
	// ErrNotFound indicates the referenced asset or project does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNameRequired indicates a create call without a name; nothing is stored.
	ErrNameRequired = errors.New("name is required")
	// ErrUnknownTemplate indicates a project template key outside the fixed set.
	ErrUnknownTemplate = errors.New("unknown project template")
)
