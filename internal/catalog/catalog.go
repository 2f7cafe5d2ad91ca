package catalog

import "github.com/assetflow/backend/internal/models"

// Catalog is the fixed, ordered sequence of discoverable assets.
type Catalog struct {
	assets []models.Asset
	byID   map[string]int
}

// New builds a catalog over assets in the given order. Later duplicates of an
// id are dropped so identities stay unique.
func New(assets []models.Asset) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(assets))}
	for _, a := range assets {
		if _, dup := c.byID[a.ID]; dup {
			continue
		}
		c.byID[a.ID] = len(c.assets)
		c.assets = append(c.assets, cloneAsset(a))
	}
	return c
}

// Sample returns the catalog seeded with the bundled sample feed.
func Sample() *Catalog {
	return New(sampleAssets())
}

// All returns a copy of every asset in catalog order.
func (c *Catalog) All() []models.Asset {
	out := make([]models.Asset, len(c.assets))
	for i, a := range c.assets {
		out[i] = cloneAsset(a)
	}
	return out
}

// Len reports the number of assets.
func (c *Catalog) Len() int {
	return len(c.assets)
}

// Get looks up an asset by id.
func (c *Catalog) Get(id string) (models.Asset, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Asset{}, false
	}
	return cloneAsset(c.assets[i]), true
}

func cloneAsset(a models.Asset) models.Asset {
	a.Tags = append([]string(nil), a.Tags...)
	return a
}

func sampleAssets() []models.Asset {
	return []models.Asset{
		{
			ID:          "asset-1",
			Title:       "Modern Business Team Meeting",
			Source:      "Unsplash",
			Type:        "image",
			Category:    "business",
			License:     "cc0",
			URL:         "https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=400&h=300&fit=crop",
			Thumbnail:   "https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=280&h=200&fit=crop",
			Tags:        []string{"business", "meeting", "team", "office"},
			Author:      "Campaign Creators",
			Description: "Professional team meeting in modern office environment",
		},
		{
			ID:          "asset-2",
			Title:       "Technology and Innovation",
			Source:      "Pexels",
			Type:        "image",
			Category:    "technology",
			License:     "attribution",
			URL:         "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?w=400&h=300&fit=crop",
			Thumbnail:   "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?w=280&h=200&fit=crop",
			Tags:        []string{"technology", "laptop", "coding", "development"},
			Author:      "ThisIsEngineering",
			Description: "Developer working on laptop with code on screen",
		},
		{
			ID:          "asset-3",
			Title:       "Natural Landscape Mountains",
			Source:      "Unsplash",
			Type:        "image",
			Category:    "nature",
			License:     "cc0",
			URL:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Thumbnail:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=280&h=200&fit=crop",
			Tags:        []string{"nature", "mountains", "landscape", "outdoor"},
			Author:      "Qingbao Meng",
			Description: "Stunning mountain landscape with clear sky",
		},
		{
			ID:          "asset-4",
			Title:       "Food Photography Flatlay",
			Source:      "Pexels",
			Type:        "image",
			Category:    "food",
			License:     "cc0",
			URL:         "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?w=400&h=300&fit=crop",
			Thumbnail:   "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?w=280&h=200&fit=crop",
			Tags:        []string{"food", "healthy", "vegetables", "cooking"},
			Author:      "Ella Olsson",
			Description: "Beautiful flatlay of fresh vegetables and ingredients",
		},
		{
			ID:          "asset-5",
			Title:       "Urban Architecture Modern",
			Source:      "Pixabay",
			Type:        "image",
			Category:    "business",
			License:     "cc0",
			URL:         "https://cdn.pixabay.com/photo/2021/08/04/13/06/software-developer-6521720_640.jpg",
			Thumbnail:   "https://cdn.pixabay.com/photo/2021/08/04/13/06/software-developer-6521720_640.jpg",
			Tags:        []string{"architecture", "building", "urban", "modern"},
			Author:      "StartupStockPhotos",
			Description: "Modern glass building with geometric design",
		},
		{
			ID:          "asset-6",
			Title:       "People Working Together",
			Source:      "Unsplash",
			Type:        "image",
			Category:    "people",
			License:     "cc0",
			URL:         "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=400&h=300&fit=crop",
			Thumbnail:   "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=280&h=200&fit=crop",
			Tags:        []string{"people", "teamwork", "collaboration", "office"},
			Author:      "Annie Spratt",
			Description: "Team collaborating around a table with laptops",
		},
	}
}
