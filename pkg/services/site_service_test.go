package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
)

func TestService_Items_CatalogOnly(t *testing.T) {
	s := testService(t)
	assert.Equal(t, testCatalog().Gallery, s.Items(context.Background()))
}

func TestService_Items_MergesBucketAndCaches(t *testing.T) {
	src := &fakeSource{objects: []BucketObject{
		{Name: "Terrace/Deck 10.jpg", URL: "https://cdn/deck10"},
		{Name: "Terrace/Deck 2.jpg", URL: "https://cdn/deck2"},
		{Name: "Bedroom/Salt Room.png", URL: "https://cdn/dup"},
		{Name: "Pool/Blue.jpg", URL: "https://cdn/blue"},
	}}
	s := testService(t, WithObjectSource(src))

	items := s.Items(context.Background())
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"Salt Room", "Courtyard", "Harbour Suite", "Deck 2", "Deck 10"}, titles)

	s.Items(context.Background())
	assert.Equal(t, 1, src.calls, "items should come from the cache")

	s.Flush()
	s.Items(context.Background())
	assert.Equal(t, 2, src.calls)
}

func TestService_Items_BucketErrorKeepsCatalog(t *testing.T) {
	src := &fakeSource{err: errors.New("unreachable")}
	s := testService(t, WithObjectSource(src))

	assert.Len(t, s.Items(context.Background()), 3)
}

func TestService_FilteredItems(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	bedrooms, err := s.FilteredItems(ctx, "Bedroom")
	require.NoError(t, err)
	assert.Equal(t, []models.MediaItem{
		{Title: "Salt Room", Image: "salt.jpg", Category: "Bedroom"},
		{Title: "Harbour Suite", Image: "harbour.jpg", Category: "Bedroom"},
	}, bedrooms)

	all, err := s.FilteredItems(ctx, models.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = s.FilteredItems(ctx, "Pool")
	assert.True(t, errors.Is(err, gallery.ErrUnknownCategory))
}

func TestService_Categories(t *testing.T) {
	s := testService(t)
	assert.Equal(t, []models.Category{models.CategoryAll, "Bedroom", "Terrace"}, s.Categories())
}

func TestService_NewGallery(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	st, err := s.NewGallery(ctx, "Bedroom", "Harbour Suite")
	require.NoError(t, err)

	next, ok := st.Next()
	require.True(t, ok)
	assert.Equal(t, "Salt Room", next.Title)

	pos, total, ok := st.Position()
	require.True(t, ok)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, total)

	_, err = s.NewGallery(ctx, "Terrace", "Salt Room")
	assert.True(t, errors.Is(err, gallery.ErrItemNotFound))
}

func TestDefault_BeforeInit(t *testing.T) {
	if defaultService != nil {
		t.Skip("default service already initialized")
	}
	_, err := Default()
	assert.Error(t, err)
}
