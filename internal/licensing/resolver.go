package licensing

import (
	"sort"
	"strings"

	"github.com/assetflow/backend/internal/models"
)

// builtin covers the codes used by the sample catalog when the loaded table
// does not know them.
var builtin = map[string]models.LicenseDescriptor{
	"cc0":         {Name: "Public Domain", AttributionRequired: false, CommercialUse: true},
	"attribution": {Name: "Attribution", AttributionRequired: true, CommercialUse: true},
	"commercial":  {Name: "Commercial", AttributionRequired: false, CommercialUse: true},
}

// Unknown is returned for codes no table recognizes: attribution required,
// no commercial use.
var Unknown = models.LicenseDescriptor{Name: "Unknown", AttributionRequired: true, CommercialUse: false}

// Resolver maps license codes to descriptors. It never mutates the table it
// was built from and is safe for concurrent use.
type Resolver struct {
	table map[string]models.LicenseDescriptor
	codes map[string]string
}

// NewResolver indexes the loaded license table case-insensitively.
func NewResolver(table map[string]models.LicenseDescriptor) *Resolver {
	r := &Resolver{
		table: table,
		codes: make(map[string]string, len(table)),
	}
	for code := range table {
		r.codes[normalize(code)] = code
	}
	return r
}

// Resolve returns the descriptor for code: the loaded table first, then the
// built-in map, then Unknown.
func (r *Resolver) Resolve(code string) models.LicenseDescriptor {
	key := normalize(code)
	if r != nil {
		if original, ok := r.codes[key]; ok {
			return r.table[original]
		}
	}
	if d, ok := builtin[key]; ok {
		return d
	}
	return Unknown
}

// License pairs a table code with its descriptor for listings.
type License struct {
	Code string `json:"code"`
	models.LicenseDescriptor
	ModificationsAllowed bool `json:"modifications_allowed"`
}

// Licenses lists the loaded table sorted by code.
func (r *Resolver) Licenses() []License {
	if r == nil {
		return nil
	}
	out := make([]License, 0, len(r.table))
	for code, d := range r.table {
		out = append(out, License{Code: code, LicenseDescriptor: d, ModificationsAllowed: d.AllowsModifications()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
