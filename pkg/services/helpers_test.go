package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"hotel-site/pkg/catalog"
	"hotel-site/pkg/config"
	"hotel-site/pkg/models"
)

type fakeSource struct {
	objects []BucketObject
	err     error
	calls   int
}

func (f *fakeSource) List(context.Context) ([]BucketObject, error) {
	f.calls++
	return f.objects, f.err
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Categories: []models.Category{"Bedroom", "Terrace"},
		Gallery: []models.MediaItem{
			{Title: "Salt Room", Image: "salt.jpg", Category: "Bedroom"},
			{Title: "Courtyard", Image: "court.jpg", Category: "Terrace"},
			{Title: "Harbour Suite", Image: "harbour.jpg", Category: "Bedroom"},
		},
		ClubTiers: []models.ClubTier{{Name: "Friend"}, {Name: "Family"}},
	}
}

func testService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	cfg := &config.Config{CacheTTL: time.Minute}
	return NewService(cfg, log.New(io.Discard), testCatalog(), opts...)
}
