package reports

import "errors"

var (
	// ErrUnknownKind indicates a report kind outside usage, compliance,
	// attribution and license.
	ErrUnknownKind = errors.New("unknown report kind")
	// ErrUnknownFormat indicates an export format other than json, csv or pdf.
	ErrUnknownFormat = errors.New("unknown report format")
)
