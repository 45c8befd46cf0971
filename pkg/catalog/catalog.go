// Package catalog holds the site's content: brand, destinations, gallery, offers,
// membership club and legal pages.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hotel-site/pkg/models"
)

// ErrInvalidCatalog is returned when the catalog fails validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the full content of the site
type Catalog struct {
	Brand        models.Brand          `json:"brand" yaml:"brand"`
	Destinations []models.Destination  `json:"destinations" yaml:"destinations"`
	Categories   []models.Category     `json:"categories" yaml:"categories"`
	Gallery      []models.MediaItem    `json:"gallery" yaml:"gallery"`
	Offers       []models.Offer        `json:"offers" yaml:"offers"`
	ClubTiers    []models.ClubTier     `json:"clubTiers" yaml:"club_tiers"`
	Legal        []models.LegalSection `json:"legal" yaml:"legal"`
}

// LoadFile reads a catalog from a YAML file and validates it
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and validates it
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the gallery for the invariants navigation relies on
func (c *Catalog) Validate() error {
	if len(c.Gallery) == 0 {
		return fmt.Errorf("%w: gallery is empty", ErrInvalidCatalog)
	}

	known := make(map[models.Category]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.IsAggregate() {
			continue
		}
		if known[cat] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat)
		}
		known[cat] = true
	}

	titles := make(map[string]bool, len(c.Gallery))
	for i, item := range c.Gallery {
		if item.Title == "" {
			return fmt.Errorf("%w: gallery item %d has no title", ErrInvalidCatalog, i)
		}
		if item.Category.IsAggregate() || !known[item.Category] {
			return fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidCatalog, item.Title, item.Category)
		}
		// Titles are the navigation key; they must be unique in the aggregate view.
		if titles[item.Title] {
			return fmt.Errorf("%w: duplicate gallery title %q", ErrInvalidCatalog, item.Title)
		}
		titles[item.Title] = true
	}

	slugs := make(map[string]bool, len(c.Destinations))
	for _, d := range c.Destinations {
		if d.Slug == "" || slugs[d.Slug] {
			return fmt.Errorf("%w: destination %q needs a unique slug", ErrInvalidCatalog, d.Name)
		}
		slugs[d.Slug] = true
		for _, a := range d.Amenities {
			if a == models.AmenityUnknown {
				return fmt.Errorf("%w: destination %q has an unknown amenity", ErrInvalidCatalog, d.Name)
			}
		}
	}
	return nil
}

// FilterCategories returns the selectable categories, aggregate first
func (c *Catalog) FilterCategories() []models.Category {
	out := []models.Category{models.CategoryAll}
	for _, cat := range c.Categories {
		if !cat.IsAggregate() {
			out = append(out, cat)
		}
	}
	return out
}

// Destination returns the destination with slug
func (c *Catalog) Destination(slug string) (models.Destination, bool) {
	for _, d := range c.Destinations {
		if d.Slug == slug {
			return d, true
		}
	}
	return models.Destination{}, false
}

// LegalSection returns the legal page with slug
func (c *Catalog) LegalSection(slug string) (models.LegalSection, bool) {
	for _, l := range c.Legal {
		if l.Slug == slug {
			return l, true
		}
	}
	return models.LegalSection{}, false
}

// CategoryCounts returns the number of gallery items per category, aggregate included
func (c *Catalog) CategoryCounts() map[models.Category]int {
	counts := map[models.Category]int{models.CategoryAll: len(c.Gallery)}
	for _, item := range c.Gallery {
		counts[item.Category]++
	}
	return counts
}
