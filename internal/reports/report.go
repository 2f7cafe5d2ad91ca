package reports

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/assetflow/backend/internal/compliance"
	"github.com/assetflow/backend/internal/logging"
	"github.com/assetflow/backend/internal/models"
)

// Kind names one of the report panels.
type Kind string

const (
	KindUsage       Kind = "usage"
	KindCompliance  Kind = "compliance"
	KindAttribution Kind = "attribution"
	KindLicense     Kind = "license"
)

// Kinds lists every report kind in panel order.
var Kinds = []Kind{KindUsage, KindCompliance, KindAttribution, KindLicense}

// ParseKind matches s case-insensitively against the known kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Field is a labelled value shown in a report header or list.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// Section is a titled list. Text replaces the list when there is nothing to
// enumerate.
type Section struct {
	Heading string  `json:"heading"`
	Items   []Field `json:"items,omitempty"`
	Text    string  `json:"text,omitempty"`
}

// Report is a rendered-agnostic report document.
type Report struct {
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Generated time.Time `json:"generated"`
	Fields    []Field   `json:"fields"`
	Sections  []Section `json:"sections,omitempty"`
}

// Input is the library snapshot a report is built from.
type Input struct {
	Saved       []models.SavedAsset
	Collections int
	Projects    int
}

// Builder derives reports from the library using the compliance engine.
type Builder struct {
	engine   *compliance.Engine
	licenses compliance.LicenseResolver
	now      func() time.Time
}

// NewBuilder returns a Builder. A nil clock uses the wall clock.
func NewBuilder(engine *compliance.Engine, licenses compliance.LicenseResolver, now func() time.Time) *Builder {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Builder{engine: engine, licenses: licenses, now: now}
}

// Build produces the report of the given kind.
func (b *Builder) Build(ctx context.Context, kind Kind, in Input) (Report, error) {
	_, span := logging.StartSpan(ctx, "reports.build")
	defer span.End()

	generated := b.now()
	var r Report
	switch kind {
	case KindUsage:
		r = b.usage(generated, in)
	case KindCompliance:
		r = b.compliance(generated, in)
	case KindAttribution:
		r = b.attribution(generated, in)
	case KindLicense:
		r = b.license(generated, in)
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		span.Fail(err)
		return Report{}, err
	}
	r.Kind = kind
	r.Generated = generated
	return r, nil
}

// Project produces the compliance summary for a single project, computed over
// the saved assets the project references.
func (b *Builder) Project(ctx context.Context, p models.Project, saved []models.SavedAsset) Report {
	_, span := logging.StartSpan(ctx, "reports.project")
	defer span.End()

	members := make(map[string]struct{}, len(p.Assets))
	for _, id := range p.Assets {
		members[id] = struct{}{}
	}
	var assets []models.SavedAsset
	for _, a := range saved {
		if _, ok := members[a.ID]; ok {
			assets = append(assets, a)
		}
	}

	generated := b.now()
	m := b.engine.Metrics(assets)
	return Report{
		Kind:      KindCompliance,
		Title:     "Project Compliance Report",
		Generated: generated,
		Fields: []Field{
			{Label: "Generated", Value: formatDate(generated)},
			{Label: "Project", Value: p.Name},
			{Label: "Platform", Value: p.Platform},
			{Label: "Status", Value: StatusLabel(p.Status)},
			{Label: "Assets", Value: strconv.Itoa(len(assets))},
			{Label: "Compliance Rate", Value: fmt.Sprintf("%d%%", m.CompliancePercentage)},
		},
	}
}

// StatusLabel renders a project status for display, e.g. "Non-Compliant".
func StatusLabel(s models.ProjectStatus) string {
	return cases.Title(language.English).String(string(s))
}

func (b *Builder) usage(generated time.Time, in Input) Report {
	bySource := countBy(in.Saved, func(a models.SavedAsset) string { return a.Source })
	items := make([]Field, 0, len(bySource))
	for _, source := range sortedKeys(bySource) {
		items = append(items, Field{Label: source, Value: assetCount(bySource[source])})
	}

	last := "None"
	if n := len(in.Saved); n > 0 {
		last = relativeDay(in.Saved[n-1].SavedAt, generated)
	}

	return Report{
		Title: "Asset Usage Report",
		Fields: []Field{
			{Label: "Generated", Value: formatDate(generated)},
			{Label: "Total Assets in Library", Value: strconv.Itoa(len(in.Saved))},
			{Label: "Collections", Value: strconv.Itoa(in.Collections)},
			{Label: "Active Projects", Value: strconv.Itoa(in.Projects)},
		},
		Sections: []Section{
			{Heading: "Asset Breakdown by Source", Items: items},
			{Heading: "Recent Activity", Text: "Last asset saved: " + last},
		},
	}
}

func (b *Builder) compliance(generated time.Time, in Input) Report {
	m := b.engine.Metrics(in.Saved)
	status := "COMPLIANT"
	if m.NonCompliantCount > 0 {
		status = "NON-COMPLIANT"
	}

	byLicense := countBy(in.Saved, func(a models.SavedAsset) string { return a.License })
	items := make([]Field, 0, len(byLicense))
	for _, code := range sortedKeys(byLicense) {
		items = append(items, Field{Label: b.licenses.Resolve(code).Name, Value: assetCount(byLicense[code])})
	}

	return Report{
		Title: "Compliance Audit Report",
		Fields: []Field{
			{Label: "Generated", Value: formatDate(generated)},
			{Label: "Compliance Status", Value: status},
			{Label: "Assets Reviewed", Value: strconv.Itoa(len(in.Saved))},
			{Label: "Fully Compliant", Value: strconv.Itoa(len(in.Saved) - m.NonCompliantCount)},
			{Label: "Compliance Rate", Value: fmt.Sprintf("%d%%", m.CompliancePercentage)},
		},
		Sections: []Section{{Heading: "License Distribution", Items: items}},
	}
}

func (b *Builder) attribution(generated time.Time, in Input) Report {
	needing := b.engine.RequiringAttribution(in.Saved)

	section := Section{Heading: "Required Attributions"}
	if len(needing) == 0 {
		section.Text = compliance.NoAttributionRequired
	}
	for _, a := range needing {
		section.Items = append(section.Items, Field{Label: fmt.Sprintf("\"%s\" by %s (%s)", a.Title, a.Author, a.Source)})
	}

	return Report{
		Title: "Attribution Report",
		Fields: []Field{
			{Label: "Generated", Value: formatDate(generated)},
			{Label: "Assets Requiring Attribution", Value: strconv.Itoa(len(needing))},
		},
		Sections: []Section{section},
	}
}

func (b *Builder) license(generated time.Time, in Input) Report {
	byLicense := countBy(in.Saved, func(a models.SavedAsset) string { return a.License })
	items := make([]Field, 0, len(byLicense))
	for _, code := range sortedKeys(byLicense) {
		d := b.licenses.Resolve(code)
		items = append(items, Field{
			Label: d.Name,
			Value: fmt.Sprintf("%s - Commercial: %s, Attribution: %s",
				assetCount(byLicense[code]), yesNo(d.CommercialUse), requiredOptional(d.AttributionRequired)),
		})
	}

	commercial := b.engine.CommercialCount(in.Saved)
	return Report{
		Title:  "License Summary Report",
		Fields: []Field{{Label: "Generated", Value: formatDate(generated)}},
		Sections: []Section{
			{Heading: "License Types Used", Items: items},
			{Heading: "Commercial Use Status", Text: fmt.Sprintf("%d of %d assets approved for commercial use", commercial, len(in.Saved))},
		},
	}
}

func countBy(saved []models.SavedAsset, key func(models.SavedAsset) string) map[string]int {
	out := make(map[string]int)
	for _, a := range saved {
		out[key(a)]++
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func assetCount(n int) string {
	return strconv.Itoa(n) + " assets"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func requiredOptional(v bool) string {
	if v {
		return "Required"
	}
	return "Optional"
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func relativeDay(t, now time.Time) string {
	if formatDate(t) == formatDate(now) {
		return "Today"
	}
	return formatDate(t)
}
