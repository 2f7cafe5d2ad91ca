package compliance

import (
	"fmt"
	"strings"

	"github.com/assetflow/backend/internal/models"
)

// Format selects an attribution template.
type Format string

const (
	FormatHTML   Format = "html"
	FormatText   Format = "text"
	FormatSocial Format = "social"
)

// NoAttributionRequired is returned when no saved asset needs credit.
const NoAttributionRequired = "No assets require attribution."

// ParseFormat accepts the three known formats case-insensitively. An empty
// string selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatHTML, FormatText, FormatSocial:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// AttributionText renders credit lines for every saved asset that requires
// attribution. Any format other than html or social renders as text.
func (e *Engine) AttributionText(saved []models.SavedAsset, format Format) string {
	needing := e.RequiringAttribution(saved)
	if len(needing) == 0 {
		return NoAttributionRequired
	}

	lines := make([]string, len(needing))
	for i, a := range needing {
		license := e.licenses.Resolve(a.License).Name
		switch format {
		case FormatHTML:
			lines[i] = fmt.Sprintf("<p>\"%s\" by %s is licensed under %s. Source: %s</p>", a.Title, a.Author, license, a.Source)
		case FormatSocial:
			lines[i] = fmt.Sprintf("📷 %s by %s (%s)", a.Title, a.Author, a.Source)
		default:
			lines[i] = fmt.Sprintf("\"%s\" by %s is licensed under %s. Source: %s", a.Title, a.Author, license, a.Source)
		}
	}

	if format == FormatHTML || format == FormatSocial {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines, "\n\n")
}
