package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/assetflow/backend/internal/models"
)

// Discovery is the stateful search panel: it remembers the active query,
// facet filters and how many results have been shown.
//
// Load-more continues inside the active filtered result set.
type Discovery struct {
	catalog  *Catalog
	pageSize int
	delay    time.Duration

	mu      sync.RWMutex
	query   string
	filters Filters
	results []models.Asset
	loaded  int
}

// NewDiscovery starts a session showing the first page of the whole catalog.
// delay simulates search processing time.
func NewDiscovery(c *Catalog, pageSize int, delay time.Duration) *Discovery {
	pageSize = normalizePageSize(pageSize)
	results := c.All()
	loaded := pageSize
	if loaded > len(results) {
		loaded = len(results)
	}
	return &Discovery{
		catalog:  c,
		pageSize: pageSize,
		delay:    delay,
		results:  results,
		loaded:   loaded,
	}
}

// PageSize reports the configured page size.
func (d *Discovery) PageSize() int {
	return d.pageSize
}

// Search waits out the processing delay, then replaces the result set using
// query and whatever filters are active at that moment. Overlapping searches
// are not serialized; the last one to finish wins.
func (d *Discovery) Search(ctx context.Context, query string) (Page, error) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Page{}, ctx.Err()
		case <-timer.C:
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.query = strings.ToLower(query)
	d.refreshLocked()
	return window(d.results, d.loaded), nil
}

// ApplyFilters replaces the facet filters and re-runs the active query.
func (d *Discovery) ApplyFilters(filters Filters) Page {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filters = filters
	d.refreshLocked()
	return window(d.results, d.loaded)
}

// LoadMore extends the shown window by one page.
func (d *Discovery) LoadMore() Page {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loaded += d.pageSize
	if d.loaded > len(d.results) {
		d.loaded = len(d.results)
	}
	return window(d.results, d.loaded)
}

// Current returns the window currently shown.
func (d *Discovery) Current() Page {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return window(d.results, d.loaded)
}

// State returns the active query and filters.
func (d *Discovery) State() (string, Filters) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.query, d.filters
}

func (d *Discovery) refreshLocked() {
	d.results = Filter(d.catalog.All(), d.query, d.filters)
	d.loaded = d.pageSize
	if d.loaded > len(d.results) {
		d.loaded = len(d.results)
	}
}
