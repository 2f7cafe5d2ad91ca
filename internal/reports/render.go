package reports

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/assetflow/backend/internal/logging"
)

// Format selects how a report is serialized.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts json, csv and pdf case-insensitively. An empty string
// selects json.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType is the media type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}

// Filename is the download name for a report of kind k in format f.
func (f Format) Filename(k Kind) string {
	return fmt.Sprintf("assetflow-%s-report.%s", k, f)
}

// ExportMessage is the notification shown when an export starts, e.g.
// "Exporting report as PDF...".
func ExportMessage(f Format) string {
	return fmt.Sprintf("Exporting report as %s...", cases.Upper(language.English).String(string(f)))
}

// Render writes r to w in format f.
func Render(ctx context.Context, w io.Writer, r Report, f Format) error {
	_, span := logging.StartSpan(ctx, "reports.render")
	defer span.End()

	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatCSV:
		err = renderCSV(w, r)
	case FormatPDF:
		err = renderPDF(w, r)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		span.Fail(err)
		return fmt.Errorf("render %s report: %w", f, err)
	}
	return nil
}

// renderCSV flattens the report into section,label,value rows. Header fields
// use the "summary" section.
func renderCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"section", "label", "value"}}
	for _, f := range r.Fields {
		rows = append(rows, []string{"summary", f.Label, f.Value})
	}
	for _, s := range r.Sections {
		if len(s.Items) == 0 && s.Text != "" {
			rows = append(rows, []string{s.Heading, s.Text, ""})
		}
		for _, item := range s.Items {
			rows = append(rows, []string{s.Heading, item.Label, item.Value})
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
