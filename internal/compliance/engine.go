package compliance

import (
	"math"

	"github.com/assetflow/backend/internal/models"
)

// LicenseResolver maps license codes to descriptors.
type LicenseResolver interface {
	Resolve(code string) models.LicenseDescriptor
}

// Engine derives compliance figures from saved assets. It holds no state of
// its own beyond the resolver.
type Engine struct {
	licenses LicenseResolver
}

// NewEngine returns an Engine resolving licenses through r.
func NewEngine(r LicenseResolver) *Engine {
	return &Engine{licenses: r}
}

// Metrics is the compliance dashboard summary.
type Metrics struct {
	CompliancePercentage int `json:"compliancePercentage"`
	NonCompliantCount    int `json:"nonCompliantCount"`
	PendingReviewCount   int `json:"pendingReviewCount"`
}

// LibraryScore is the library panel score: the share of saved assets that are
// cleared for commercial use or need no attribution. It is 100 for an empty
// library.
//
// The dashboard figure in Metrics counts commercial use only, so the two can
// disagree for attribution-free, non-commercial licenses.
func (e *Engine) LibraryScore(saved []models.SavedAsset) int {
	compliant := 0
	for _, a := range saved {
		d := e.licenses.Resolve(a.License)
		if d.CommercialUse || !d.AttributionRequired {
			compliant++
		}
	}
	return percentage(compliant, len(saved))
}

// Metrics computes the compliance dashboard figures. Only commercial use
// counts as compliant here. No review workflow exists, so PendingReviewCount
// is always zero.
func (e *Engine) Metrics(saved []models.SavedAsset) Metrics {
	compliant := e.CommercialCount(saved)
	return Metrics{
		CompliancePercentage: percentage(compliant, len(saved)),
		NonCompliantCount:    len(saved) - compliant,
		PendingReviewCount:   0,
	}
}

// CommercialCount counts saved assets cleared for commercial use.
func (e *Engine) CommercialCount(saved []models.SavedAsset) int {
	n := 0
	for _, a := range saved {
		if e.licenses.Resolve(a.License).CommercialUse {
			n++
		}
	}
	return n
}

// RequiringAttribution returns the saved assets whose license requires
// attribution, in library order.
func (e *Engine) RequiringAttribution(saved []models.SavedAsset) []models.SavedAsset {
	var out []models.SavedAsset
	for _, a := range saved {
		if e.licenses.Resolve(a.License).AttributionRequired {
			out = append(out, a)
		}
	}
	return out
}

// percentage rounds half up and treats an empty set as fully compliant.
func percentage(part, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Floor(float64(part)*100/float64(total) + 0.5))
}
