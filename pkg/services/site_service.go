package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"

	"hotel-site/pkg/catalog"
	"hotel-site/pkg/config"
	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
)

const itemsKey = "items"

// ErrNotInitialized is returned by the package-level helpers before InitService
var ErrNotInitialized = errors.New("service not initialized")

// Service serves the site content and the gallery views
type Service struct {
	config    *config.Config
	logger    *log.Logger
	catalog   *catalog.Catalog
	source    ObjectSource
	sink      ObjectSink
	viewCache *cache.Cache
	mu        sync.RWMutex
}

// Option configures a Service
type Option func(*Service)

// WithObjectSource layers images listed from a bucket over the catalog gallery
func WithObjectSource(src ObjectSource) Option {
	return func(s *Service) { s.source = src }
}

// WithObjectSink lets Publish and Unpublish write to an image bucket
func WithObjectSink(sink ObjectSink) Option {
	return func(s *Service) { s.sink = sink }
}

// NewService creates a service over cat
func NewService(cfg *config.Config, logger *log.Logger, cat *catalog.Catalog, opts ...Option) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	s := &Service{
		config:    cfg,
		logger:    logger,
		catalog:   cat,
		viewCache: cache.New(ttl, 2*ttl),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	initErr        error
	once           sync.Once
)

// InitService initializes the default service from the configuration: the catalog
// comes from CATALOG_FILE or the built-in content, images optionally from BUCKET_NAME.
func InitService(cfg *config.Config, logger *log.Logger) error {
	once.Do(func() {
		cat := catalog.Default()
		if cfg.CatalogFile != "" {
			cat, initErr = catalog.LoadFile(cfg.CatalogFile)
			if initErr != nil {
				return
			}
			logger.Info("Loaded catalog", "file", cfg.CatalogFile, "items", len(cat.Gallery))
		}

		var opts []Option
		if cfg.BucketName != "" {
			bucket := NewGCSBucket(cfg.BucketName, 24*time.Hour)
			opts = append(opts, WithObjectSource(bucket), WithObjectSink(bucket))
			logger.Info("Using bucket images", "bucket", cfg.BucketName)
		}
		defaultService = NewService(cfg, logger, cat, opts...)
	})
	return initErr
}

// Default returns the service set up by InitService
func Default() (*Service, error) {
	if defaultService == nil {
		if initErr != nil {
			return nil, initErr
		}
		return nil, ErrNotInitialized
	}
	return defaultService, nil
}

// Catalog returns the site content
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Categories returns the selectable gallery categories, aggregate first
func (s *Service) Categories() []models.Category {
	return s.catalog.FilterCategories()
}

// Items returns the whole gallery: catalog items followed by bucket images
func (s *Service) Items(ctx context.Context) []models.MediaItem {
	s.mu.RLock()
	if cached, found := s.viewCache.Get(itemsKey); found {
		s.mu.RUnlock()
		s.logger.Debug("Using cached gallery items")
		return cached.([]models.MediaItem)
	}
	s.mu.RUnlock()

	items := make([]models.MediaItem, len(s.catalog.Gallery))
	copy(items, s.catalog.Gallery)

	if s.source != nil {
		items = s.mergeBucketItems(ctx, items)
	}

	s.mu.Lock()
	s.viewCache.Set(itemsKey, items, cache.DefaultExpiration)
	s.mu.Unlock()

	return items
}

func (s *Service) mergeBucketItems(ctx context.Context, items []models.MediaItem) []models.MediaItem {
	objects, err := s.source.List(ctx)
	if err != nil {
		// The catalog gallery still renders when the image host is unreachable.
		s.logger.Error("Listing bucket images", "err", err)
		return items
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		seen[item.Title] = true
	}
	for _, item := range ItemsFromObjects(objects, s.catalog.Categories) {
		if seen[item.Title] {
			s.logger.Warn("Skipping bucket image with duplicate title", "title", item.Title)
			continue
		}
		seen[item.Title] = true
		items = append(items, item)
	}
	return items
}

// FilteredItems returns the gallery restricted to category, memoized per category
func (s *Service) FilteredItems(ctx context.Context, category models.Category) ([]models.MediaItem, error) {
	if !gallery.ContainsCategory(s.Categories(), category) {
		return nil, fmt.Errorf("%w: %q", gallery.ErrUnknownCategory, category)
	}

	key := "filtered:" + string(category)
	s.mu.RLock()
	cached, found := s.viewCache.Get(key)
	s.mu.RUnlock()
	if found {
		return cached.([]models.MediaItem), nil
	}

	filtered := gallery.Filter(s.Items(ctx), category)

	s.mu.Lock()
	s.viewCache.Set(key, filtered, cache.DefaultExpiration)
	s.mu.Unlock()

	return filtered, nil
}

// NewGallery restores a viewing session with filter active and title open.
// Empty values mean the aggregate filter and a closed lightbox.
func (s *Service) NewGallery(ctx context.Context, filter models.Category, title string) (*gallery.State, error) {
	opts := append(s.config.GalleryOptions(),
		gallery.WithLogger(s.logger),
		gallery.WithFilterFunc(func(c models.Category) []models.MediaItem {
			items, err := s.FilteredItems(ctx, c)
			if err != nil {
				return nil
			}
			return items
		}),
	)
	return gallery.Restore(s.Items(ctx), s.Categories(), filter, title, opts...)
}

// Flush drops every memoized view
func (s *Service) Flush() {
	s.mu.Lock()
	s.viewCache.Flush()
	s.mu.Unlock()
}
