package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
)

// BucketObject is an image stored in the bucket with a URL browsers can load
type BucketObject struct {
	Name string
	URL  string
}

// ObjectSource lists image objects from an image host
type ObjectSource interface {
	List(ctx context.Context) ([]BucketObject, error)
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// GCSBucket lists and stores images in a Cloud Storage bucket laid out as Category/Title.ext
type GCSBucket struct {
	bucketName string
	urlTTL     time.Duration
}

// NewGCSBucket creates a bucket handle signing object URLs valid for urlTTL
func NewGCSBucket(bucketName string, urlTTL time.Duration) *GCSBucket {
	return &GCSBucket{bucketName: bucketName, urlTTL: urlTTL}
}

// List returns every image object with a signed URL
func (g *GCSBucket) List(ctx context.Context) ([]BucketObject, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	bucket := client.Bucket(g.bucketName)
	it := bucket.Objects(ctx, nil)

	var objects []BucketObject
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return objects, fmt.Errorf("error iterating objects: %w", err)
		}
		if !isImage(attrs.Name) {
			continue
		}

		signedURL, err := bucket.SignedURL(attrs.Name, &storage.SignedURLOptions{
			Expires: time.Now().Add(g.urlTTL),
			Method:  "GET",
		})
		if err != nil {
			return objects, fmt.Errorf("error creating signed URL for %s: %w", attrs.Name, err)
		}
		objects = append(objects, BucketObject{Name: attrs.Name, URL: signedURL})
	}
	return objects, nil
}

// Put uploads r as the object name
func (g *GCSBucket) Put(ctx context.Context, name, contentType string, r io.Reader) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	writer := client.Bucket(g.bucketName).Object(strings.TrimPrefix(name, "/")).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

// Delete removes the object name
func (g *GCSBucket) Delete(ctx context.Context, name string) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	return client.Bucket(g.bucketName).Object(name).Delete(ctx)
}

// ItemsFromObjects turns objects named Category/Title.ext into gallery items.
// Objects outside a known category, nested deeper or without an image extension
// are skipped. Items are naturally sorted by title.
func ItemsFromObjects(objects []BucketObject, categories []models.Category) []models.MediaItem {
	items := make([]models.MediaItem, 0, len(objects))
	for _, obj := range objects {
		parts := strings.Split(obj.Name, "/")
		if len(parts) != 2 || parts[1] == "" || !isImage(parts[1]) {
			continue
		}

		category := models.Category(parts[0])
		if category.IsAggregate() || !gallery.ContainsCategory(categories, category) {
			continue
		}

		title := strings.TrimSuffix(parts[1], path.Ext(parts[1]))
		items = append(items, models.MediaItem{
			Title:    title,
			Image:    obj.URL,
			Category: category,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return naturalLess(items[i].Title, items[j].Title)
	})
	return items
}

func isImage(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
