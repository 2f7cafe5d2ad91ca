package library

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/assetflow/backend/internal/models"
)

// AssetLookup resolves catalog ids to assets.
type AssetLookup interface {
	Get(id string) (models.Asset, bool)
}

// Store is the in-memory personal library: saved assets, collections and
// projects. Nothing is ever removed from it.
type Store struct {
	assets AssetLookup
	now    func() time.Time
	newID  func() string

	mu          sync.RWMutex
	saved       []models.SavedAsset
	savedIndex  map[string]struct{}
	collections []models.Collection
	projects    []models.Project
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source used for savedAt and created stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the suffix generator for collection and project ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewStore returns a library holding the default collection and the sample
// project.
func NewStore(assets AssetLookup, opts ...Option) *Store {
	s := &Store{
		assets:     assets,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
		savedIndex: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.collections = []models.Collection{{
		ID:          models.DefaultCollectionID,
		Name:        "All Assets",
		Description: "Default collection containing all saved assets",
		Type:        "general",
		Assets:      []string{},
	}}
	s.projects = []models.Project{{
		ID:       "sample",
		Name:     "Sample Social Media Campaign",
		Platform: "Instagram",
		Status:   models.ProjectStatusCompliant,
		Assets:   []string{},
		Created:  s.now(),
		Type:     "social-media",
	}}
	return s
}

// SaveAsset adds a catalog asset to the library and the default collection.
// Saving an id twice is a no-op; created reports whether anything changed.
func (s *Store) SaveAsset(id string) (saved models.SavedAsset, created bool, err error) {
	asset, ok := s.assets.Get(id)
	if !ok {
		return models.SavedAsset{}, false, fmt.Errorf("save asset %q: %w", id, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.savedIndex[id]; exists {
		for _, existing := range s.saved {
			if existing.ID == id {
				return cloneSaved(existing), false, nil
			}
		}
	}

	record := models.SavedAsset{
		Asset:       asset,
		SavedAt:     s.now(),
		Collections: []string{models.DefaultCollectionID},
	}
	s.saved = append(s.saved, record)
	s.savedIndex[id] = struct{}{}
	s.collections[0].Assets = append(s.collections[0].Assets, id)

	return cloneSaved(record), true, nil
}

// CreateCollection appends an empty collection. A blank name stores nothing
// and returns ErrNameRequired.
func (s *Store) CreateCollection(name, description, collectionType string) (models.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Collection{}, ErrNameRequired
	}
	if strings.TrimSpace(collectionType) == "" {
		collectionType = "general"
	}

	c := models.Collection{
		ID:          "collection-" + s.newID(),
		Name:        name,
		Description: description,
		Type:        collectionType,
		Assets:      []string{},
	}

	s.mu.Lock()
	s.collections = append(s.collections, c)
	s.mu.Unlock()

	return cloneCollection(c), nil
}

// CreateProject appends a free-form project on the General platform.
func (s *Store) CreateProject(name string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, ErrNameRequired
	}
	return s.addProject(name, "General", "general"), nil
}

// CreateProjectFromTemplate appends a project using one of the fixed templates.
func (s *Store) CreateProjectFromTemplate(key string) (models.Project, error) {
	tmpl, ok := projectTemplates[key]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, key)
	}
	return s.addProject(tmpl.Name, tmpl.Platform, tmpl.Key), nil
}

func (s *Store) addProject(name, platform, projectType string) models.Project {
	p := models.Project{
		ID:       "project-" + s.newID(),
		Name:     name,
		Platform: platform,
		Status:   models.ProjectStatusCompliant,
		Assets:   []string{},
		Created:  s.now(),
		Type:     projectType,
	}

	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.mu.Unlock()

	return cloneProject(p)
}

// SavedAssets returns the saved assets in the order they were saved.
func (s *Store) SavedAssets() []models.SavedAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SavedAsset, len(s.saved))
	for i, a := range s.saved {
		out[i] = cloneSaved(a)
	}
	return out
}

// Recent returns up to n of the most recently saved assets, newest first.
func (s *Store) Recent(n int) []models.SavedAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.saved) {
		n = len(s.saved)
	}
	out := make([]models.SavedAsset, 0, max(n, 0))
	for i := len(s.saved) - 1; i >= len(s.saved)-n; i-- {
		out = append(out, cloneSaved(s.saved[i]))
	}
	return out
}

// Collections returns every collection; the default collection is first.
func (s *Store) Collections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Collection, len(s.collections))
	for i, c := range s.collections {
		out[i] = cloneCollection(c)
	}
	return out
}

// Projects returns every project in creation order.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out
}

// Project looks up a project by id.
func (s *Store) Project(id string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), nil
		}
	}
	return models.Project{}, fmt.Errorf("project %q: %w", id, ErrNotFound)
}

// CountBySource tallies saved assets per provider.
func (s *Store) CountBySource() map[string]int {
	return s.countBy(func(a models.SavedAsset) string { return a.Source })
}

// CountByLicense tallies saved assets per license code.
func (s *Store) CountByLicense() map[string]int {
	return s.countBy(func(a models.SavedAsset) string { return a.License })
}

func (s *Store) countBy(key func(models.SavedAsset) string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int)
	for _, a := range s.saved {
		out[key(a)]++
	}
	return out
}

// Export snapshots the library for download.
func (s *Store) Export() models.LibraryExport {
	return models.LibraryExport{
		Collections: s.Collections(),
		Assets:      s.SavedAssets(),
		Projects:    s.Projects(),
		Exported:    s.now(),
	}
}

func cloneSaved(a models.SavedAsset) models.SavedAsset {
	a.Tags = append([]string(nil), a.Tags...)
	a.Collections = append([]string(nil), a.Collections...)
	return a
}

func cloneCollection(c models.Collection) models.Collection {
	c.Assets = append([]string{}, c.Assets...)
	return c
}

func cloneProject(p models.Project) models.Project {
	p.Assets = append([]string{}, p.Assets...)
	return p
}
