package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
)

const (
	// colorDifferenceThreshold is the per-component distance above which two
	// sampled pixels count as different (absorbs compression artifacts)
	colorDifferenceThreshold = 256
)

// ErrNoSink is returned when publishing without a writable image host
var ErrNoSink = errors.New("no image bucket configured")

// ErrBlankImage is returned for images that are a single solid color
var ErrBlankImage = errors.New("image appears to be a solid color")

// ObjectSink stores and removes image objects on an image host
type ObjectSink interface {
	Put(ctx context.Context, name, contentType string, r io.Reader) error
	Delete(ctx context.Context, name string) error
}

// ProgressCallback is a function that receives progress updates
type ProgressCallback func(step string, progress int)

// PublishResult counts the outcome of a publish run
type PublishResult struct {
	Published int
	Skipped   int
	Failed    int
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Publish uploads the images of dir, laid out as Category/Title.ext, to the
// image bucket. Unknown categories and titles already in the catalog are
// skipped; images that fail validation or upload are counted as failed.
func (s *Service) Publish(ctx context.Context, dir string, progressCb ProgressCallback) (PublishResult, error) {
	var res PublishResult
	sendProgress := func(step string, progress int) {
		if progressCb != nil {
			progressCb(step, progress)
		}
	}

	if s.sink == nil {
		return res, ErrNoSink
	}

	sendProgress("Scanning "+dir, 5)
	files, err := s.publishable(dir, &res)
	if err != nil {
		return res, err
	}

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		sendProgress("Uploading "+f.object, 10+80*i/max(len(files), 1))

		if err := s.publishFile(ctx, f); err != nil {
			s.logger.Warn("Publishing image failed", "file", f.path, "err", err)
			res.Failed++
			continue
		}
		s.logger.Info("Published image", "object", f.object)
		res.Published++
	}

	sendProgress("Clearing cache", 95)
	s.Flush()

	sendProgress("Complete", 100)
	return res, nil
}

type publishFile struct {
	path   string
	object string
	ext    string
}

// publishable lists the files of dir that map onto a gallery item
func (s *Service) publishable(dir string, res *PublishResult) ([]publishFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	taken := make(map[string]bool)
	for _, item := range s.catalog.Gallery {
		taken[item.Title] = true
	}

	var files []publishFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		category := models.Category(entry.Name())
		if category.IsAggregate() || !gallery.ContainsCategory(s.Categories(), category) {
			s.logger.Warn("Skipping unknown category", "dir", entry.Name())
			res.Skipped++
			continue
		}

		images, err := os.ReadDir(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		for _, img := range images {
			ext := strings.ToLower(path.Ext(img.Name()))
			if img.IsDir() || contentTypes[ext] == "" {
				continue
			}
			title := strings.TrimSuffix(img.Name(), path.Ext(img.Name()))
			if taken[title] {
				s.logger.Warn("Skipping duplicate title", "title", title)
				res.Skipped++
				continue
			}
			taken[title] = true
			files = append(files, publishFile{
				path:   filepath.Join(dir, entry.Name(), img.Name()),
				object: string(category) + "/" + img.Name(),
				ext:    ext,
			})
		}
	}
	return files, nil
}

func (s *Service) publishFile(ctx context.Context, f publishFile) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	if err := validateImage(bytes.NewReader(data)); err != nil {
		return err
	}
	return s.sink.Put(ctx, f.object, contentTypes[f.ext], bytes.NewReader(data))
}

// Unpublish removes the bucket image behind a gallery item
func (s *Service) Unpublish(ctx context.Context, category models.Category, title string) error {
	if s.sink == nil || s.source == nil {
		return ErrNoSink
	}

	objects, err := s.source.List(ctx)
	if err != nil {
		return err
	}
	for _, obj := range objects {
		if strings.TrimSuffix(obj.Name, path.Ext(obj.Name)) != string(category)+"/"+title {
			continue
		}
		if err := s.sink.Delete(ctx, obj.Name); err != nil {
			return fmt.Errorf("failed to delete %s: %w", obj.Name, err)
		}
		s.logger.Info("Unpublished image", "object", obj.Name)
		s.Flush()
		return nil
	}
	return fmt.Errorf("%w: %s/%s", gallery.ErrItemNotFound, category, title)
}

// validateImage decodes r and rejects images that are one solid color
func validateImage(r io.Reader) error {
	img, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	stepX := max(bounds.Dx()/10, 1)
	stepY := max(bounds.Dy()/10, 1)

	r1, g1, b1, a1 := img.At(bounds.Min.X, bounds.Min.Y).RGBA()

	differentPixels := 0
	totalSamples := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			totalSamples++
			r2, g2, b2, a2 := img.At(x, y).RGBA()
			if differs(r1, r2) || differs(g1, g2) || differs(b1, b2) || differs(a1, a2) {
				differentPixels++
			}
		}
	}

	if totalSamples > 0 && float64(differentPixels)/float64(totalSamples) < 0.01 {
		return fmt.Errorf("%w (only %d/%d sampled pixels differ)", ErrBlankImage, differentPixels, totalSamples)
	}
	return nil
}

func differs(a, b uint32) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d > colorDifferenceThreshold
}
