package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-site/pkg/models"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, models.CategoryAll, c.FilterCategories()[0])
	assert.Len(t, c.FilterCategories(), len(c.Categories)+1)
}

func TestDefault_EveryCategoryHasItems(t *testing.T) {
	c := Default()
	counts := c.CategoryCounts()
	assert.Equal(t, len(c.Gallery), counts[models.CategoryAll])
	for _, cat := range c.Categories {
		assert.Positive(t, counts[cat], "category %s", cat)
	}
}

func TestLookups(t *testing.T) {
	c := Default()

	d, ok := c.Destination("ischia")
	require.True(t, ok)
	assert.Equal(t, "Maison Sel Ischia", d.Name)
	_, ok = c.Destination("paris")
	assert.False(t, ok)

	l, ok := c.LegalSection("privacy")
	require.True(t, ok)
	assert.Equal(t, "Privacy Policy", l.Title)
	_, ok = c.LegalSection("cookies")
	assert.False(t, ok)
}

const sampleYAML = `
brand:
  name: Test House
categories: [Bedroom, Terrace]
gallery:
  - title: One
    image: one.jpg
    category: Bedroom
  - title: Two
    image: two.jpg
    category: Terrace
destinations:
  - name: Test
    slug: test
    amenities: [spa, Pool]
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Test House", c.Brand.Name)
	assert.Equal(t, []models.MediaItem{
		{Title: "One", Image: "one.jpg", Category: "Bedroom"},
		{Title: "Two", Image: "two.jpg", Category: "Terrace"},
	}, c.Gallery)
	assert.Equal(t, []models.AmenityKind{models.AmenitySpa, models.AmenityPool}, c.Destinations[0].Amenities)
}

func TestParse_UnknownAmenity(t *testing.T) {
	_, err := Parse([]byte(`
categories: [Bedroom]
gallery: [{title: One, category: Bedroom}]
destinations: [{name: X, slug: x, amenities: [helipad]}]
`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Gallery, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
	}{
		{
			name:    "empty gallery",
			catalog: Catalog{Categories: []models.Category{"Bedroom"}},
		},
		{
			name: "unknown category",
			catalog: Catalog{
				Categories: []models.Category{"Bedroom"},
				Gallery:    []models.MediaItem{{Title: "One", Category: "Pool"}},
			},
		},
		{
			name: "aggregate category on item",
			catalog: Catalog{
				Categories: []models.Category{"Bedroom"},
				Gallery:    []models.MediaItem{{Title: "One", Category: models.CategoryAll}},
			},
		},
		{
			name: "duplicate title",
			catalog: Catalog{
				Categories: []models.Category{"Bedroom", "Terrace"},
				Gallery: []models.MediaItem{
					{Title: "One", Category: "Bedroom"},
					{Title: "One", Category: "Terrace"},
				},
			},
		},
		{
			name: "missing title",
			catalog: Catalog{
				Categories: []models.Category{"Bedroom"},
				Gallery:    []models.MediaItem{{Category: "Bedroom"}},
			},
		},
		{
			name: "duplicate destination slug",
			catalog: Catalog{
				Categories:   []models.Category{"Bedroom"},
				Gallery:      []models.MediaItem{{Title: "One", Category: "Bedroom"}},
				Destinations: []models.Destination{{Name: "A", Slug: "a"}, {Name: "B", Slug: "a"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}
}
