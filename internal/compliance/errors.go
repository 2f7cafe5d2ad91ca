package compliance

import "errors"

// ErrUnknownFormat indicates an attribution format outside html, text and social.
var ErrUnknownFormat = errors.New("unknown attribution format")
