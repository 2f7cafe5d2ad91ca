package compliance

import "github.com/assetflow/backend/internal/models"

// Severity classifies a warning entry.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Warning is one compliance note shown in the asset preview.
type Warning struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

const (
	MessageModelRelease = "Contains identifiable people - consider model releases for commercial use"
	MessageTrademark    = "May contain trademarks or logos - verify usage rights"
	MessageNoIssues     = "No compliance issues detected"
)

// Warnings inspects the asset tags. It never returns an empty slice: with
// nothing to flag it returns a single informational entry.
func Warnings(a models.Asset) []Warning {
	var out []Warning
	if a.HasTag("people") {
		out = append(out, Warning{Severity: SeverityWarning, Message: MessageModelRelease})
	}
	if a.HasTag("logo") || a.HasTag("brand") {
		out = append(out, Warning{Severity: SeverityWarning, Message: MessageTrademark})
	}
	if len(out) == 0 {
		return []Warning{{Severity: SeverityInfo, Message: MessageNoIssues}}
	}
	return out
}
