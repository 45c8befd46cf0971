// Package gallery holds the category filter over the gallery collection and the
// lightbox navigator that walks the filtered view with wrap-around.
package gallery

import (
	"errors"
	"fmt"

	"hotel-site/pkg/models"
)

var (
	// ErrUnknownCategory is returned when a category is not in the enumerated set
	ErrUnknownCategory = errors.New("unknown category")

	// ErrItemNotFound is returned when opening an item that is not in the filtered view
	ErrItemNotFound = errors.New("item not found in filtered view")

	// ErrInvariantViolation is returned when the displayed item is missing from the list it navigates
	ErrInvariantViolation = errors.New("lightbox item missing from navigation list")
)

// Filter returns the items whose category equals category, in source order.
// The aggregate category returns a copy of the full list.
func Filter(items []models.MediaItem, category models.Category) []models.MediaItem {
	if category.IsAggregate() {
		out := make([]models.MediaItem, len(items))
		copy(out, items)
		return out
	}

	out := make([]models.MediaItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Locate returns the position of title within items
func Locate(items []models.MediaItem, title string) (int, error) {
	for i, item := range items {
		if item.Title == title {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrInvariantViolation, title)
}

// Wrap maps index+delta onto [0, length) circularly
func Wrap(index, delta, length int) int {
	if length <= 0 {
		return 0
	}
	return ((index+delta)%length + length) % length
}

// ContainsCategory reports whether category is part of categories
func ContainsCategory(categories []models.Category, category models.Category) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
