package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDiscoveryInitialWindow(t *testing.T) {
	d := NewDiscovery(Sample(), 4, 0)

	page := d.Current()
	if !equalIDs(page.Assets, "asset-1", "asset-2", "asset-3", "asset-4") || !page.HasMore {
		t.Fatalf("unexpected initial page %+v", page)
	}
	if d.PageSize() != 4 {
		t.Fatalf("unexpected page size %d", d.PageSize())
	}
}

func TestDiscoveryLoadMore(t *testing.T) {
	d := NewDiscovery(Sample(), 4, 0)

	page := d.LoadMore()
	if page.Loaded != 6 || page.HasMore {
		t.Fatalf("expected full catalog after load more got %+v", page)
	}

	page = d.LoadMore()
	if page.Loaded != 6 || page.HasMore {
		t.Fatalf("load more past the end should stay clamped got %+v", page)
	}
}

func TestDiscoveryLoadMoreKeepsFilters(t *testing.T) {
	d := NewDiscovery(Sample(), 1, 0)

	page := d.ApplyFilters(Filters{Source: "Unsplash"})
	if !equalIDs(page.Assets, "asset-1") || !page.HasMore || page.Total != 3 {
		t.Fatalf("unexpected filtered page %+v", page)
	}

	page = d.LoadMore()
	if !equalIDs(page.Assets, "asset-1", "asset-3") {
		t.Fatalf("load more should continue inside the filtered set got %v", ids(page.Assets))
	}

	page = d.LoadMore()
	if !equalIDs(page.Assets, "asset-1", "asset-3", "asset-6") || page.HasMore {
		t.Fatalf("unexpected final page %+v", page)
	}
}

func TestDiscoverySearchUsesActiveFilters(t *testing.T) {
	d := NewDiscovery(Sample(), DefaultPageSize, 0)
	d.ApplyFilters(Filters{Category: "people"})

	page, err := d.Search(context.Background(), "OFFICE")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !equalIDs(page.Assets, "asset-6") {
		t.Fatalf("unexpected results %v", ids(page.Assets))
	}

	query, filters := d.State()
	if query != "office" || filters.Category != "people" {
		t.Fatalf("unexpected state %q %+v", query, filters)
	}

	page = d.ApplyFilters(Filters{})
	if !equalIDs(page.Assets, "asset-1", "asset-6") {
		t.Fatalf("clearing filters should keep the query got %v", ids(page.Assets))
	}
}

func TestDiscoverySearchResetsCursor(t *testing.T) {
	d := NewDiscovery(Sample(), 2, 0)
	d.LoadMore()
	d.LoadMore()

	page, err := d.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Loaded != 2 || !page.HasMore {
		t.Fatalf("expected cursor reset to one page got %+v", page)
	}
}

func TestDiscoverySearchDelayHonorsContext(t *testing.T) {
	d := NewDiscovery(Sample(), DefaultPageSize, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Search(ctx, "mountain"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled got %v", err)
	}
	if page := d.Current(); page.Total != 6 {
		t.Fatalf("canceled search must not change results got %+v", page)
	}
}

func TestDiscoveryConcurrentSearchesLastWriteWins(t *testing.T) {
	d := NewDiscovery(Sample(), DefaultPageSize, time.Millisecond)

	var wg sync.WaitGroup
	for _, q := range []string{"mountain", "food", "office"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			if _, err := d.Search(context.Background(), q); err != nil {
				t.Errorf("search %q: %v", q, err)
			}
		}(q)
	}
	wg.Wait()

	query, _ := d.State()
	page := d.Current()
	want := Search(Sample(), query, Filters{}, DefaultPageSize)
	if !equalIDs(page.Assets, ids(want.Assets)...) {
		t.Fatalf("results %v do not match final query %q", ids(page.Assets), query)
	}
}
