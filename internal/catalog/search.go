package catalog

import (
	"strings"

	"github.com/assetflow/backend/internal/models"
)

const (
	// DefaultPageSize is the number of assets shown per page.
	DefaultPageSize = 12
	// AllImagesType is the type facet value that disables type filtering.
	AllImagesType = "images"
)

// Filters holds the optional facet values. Empty values are inactive.
type Filters struct {
	Source   string `json:"source"`
	Type     string `json:"type"`
	License  string `json:"license"`
	Category string `json:"category"`
}

// Matches applies every active facet. Source compares case-insensitively;
// a type of "images" leaves the type unfiltered.
func (f Filters) Matches(a models.Asset) bool {
	if f.Source != "" && !strings.EqualFold(a.Source, f.Source) {
		return false
	}
	if f.Type != "" && f.Type != AllImagesType && a.Type != f.Type {
		return false
	}
	if f.License != "" && a.License != f.License {
		return false
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	return true
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// asset title, any tag, or the category. The empty query matches everything.
func MatchesQuery(a models.Asset, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(a.Category), q)
}

// Filter returns the assets matching query and filters, in input order.
func Filter(assets []models.Asset, query string, filters Filters) []models.Asset {
	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if MatchesQuery(a, query) && filters.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Page is one window over a result set.
type Page struct {
	Assets  []models.Asset `json:"assets"`
	Total   int            `json:"total"`
	Loaded  int            `json:"loaded"`
	HasMore bool           `json:"hasMore"`
}

// Search filters the catalog and returns its first page.
func Search(c *Catalog, query string, filters Filters, pageSize int) Page {
	matches := Filter(c.All(), query, filters)
	return window(matches, normalizePageSize(pageSize))
}

// window returns the first loaded results; loaded is clamped to the set.
func window(results []models.Asset, loaded int) Page {
	if loaded > len(results) {
		loaded = len(results)
	}
	if loaded < 0 {
		loaded = 0
	}
	page := make([]models.Asset, loaded)
	copy(page, results[:loaded])
	return Page{
		Assets:  page,
		Total:   len(results),
		Loaded:  loaded,
		HasMore: loaded < len(results),
	}
}

func normalizePageSize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	return pageSize
}
