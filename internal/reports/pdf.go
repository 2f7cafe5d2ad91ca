package reports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

func renderPDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(r.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	for _, f := range r.Fields {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s: %s", f.Label, f.Value)), "", "L", false)
	}

	for _, s := range r.Sections {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, tr(s.Heading))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 12)
		if len(s.Items) == 0 {
			pdf.MultiCell(0, 6, tr(s.Text), "", "L", false)
			continue
		}
		for _, item := range s.Items {
			line := "- " + item.Label
			if item.Value != "" {
				line += ": " + item.Value
			}
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
