package gallery

import (
	"fmt"

	"github.com/charmbracelet/log"

	"hotel-site/pkg/models"
)

// FilterChangePolicy decides what an open lightbox does when the filter changes
type FilterChangePolicy int

const (
	// CloseOnFilterChange closes the lightbox whenever the active filter changes
	CloseOnFilterChange FilterChangePolicy = iota
	// SnapshotOnOpen keeps the lightbox on the list captured when it was opened
	SnapshotOnOpen
)

// RecoveryPolicy decides how navigation recovers from ErrInvariantViolation
type RecoveryPolicy int

const (
	// RecoverReset shows the first item of the navigation list
	RecoverReset RecoveryPolicy = iota
	// RecoverClose closes the lightbox
	RecoverClose
)

func (p FilterChangePolicy) String() string {
	if p == SnapshotOnOpen {
		return "snapshot"
	}
	return "close"
}

func (p RecoveryPolicy) String() string {
	if p == RecoverClose {
		return "close"
	}
	return "reset"
}

// ParseFilterChangePolicy parses "close" or "snapshot"
func ParseFilterChangePolicy(s string) (FilterChangePolicy, error) {
	switch s {
	case "", "close":
		return CloseOnFilterChange, nil
	case "snapshot":
		return SnapshotOnOpen, nil
	}
	return CloseOnFilterChange, fmt.Errorf("unknown filter change policy: %q", s)
}

// ParseRecoveryPolicy parses "reset" or "close"
func ParseRecoveryPolicy(s string) (RecoveryPolicy, error) {
	switch s {
	case "", "reset":
		return RecoverReset, nil
	case "close":
		return RecoverClose, nil
	}
	return RecoverReset, fmt.Errorf("unknown recovery policy: %q", s)
}

// Option configures a State
type Option func(*State)

// WithFilterChangePolicy sets the filter change policy
func WithFilterChangePolicy(p FilterChangePolicy) Option {
	return func(s *State) { s.onFilterChange = p }
}

// WithRecoveryPolicy sets the navigation recovery policy
func WithRecoveryPolicy(p RecoveryPolicy) Option {
	return func(s *State) { s.recovery = p }
}

// FilterFunc computes the filtered view for a category
type FilterFunc func(models.Category) []models.MediaItem

// WithFilterFunc replaces the default filtering, e.g. with a memoized one.
// fn must return items in source order.
func WithFilterFunc(fn FilterFunc) Option {
	return func(s *State) { s.filter = fn }
}

// WithLogger sets the logger used to report recovered inconsistencies
func WithLogger(logger *log.Logger) Option {
	return func(s *State) { s.logger = logger }
}

// State is the gallery state of one viewing session. It is not safe for
// concurrent use; each session owns its own State.
type State struct {
	items      []models.MediaItem
	categories []models.Category

	active     models.Category
	filtered   []models.MediaItem
	stale      bool
	generation int

	lightbox   *models.MediaItem
	snapshot   []models.MediaItem
	openedWith models.Category

	filter         FilterFunc
	onFilterChange FilterChangePolicy
	recovery       RecoveryPolicy
	logger         *log.Logger
}

// New creates a State over items with the lightbox closed and the aggregate filter active.
// The aggregate category is always part of the enumerated set.
func New(items []models.MediaItem, categories []models.Category, opts ...Option) *State {
	cats := make([]models.Category, 0, len(categories)+1)
	if !ContainsCategory(categories, models.CategoryAll) {
		cats = append(cats, models.CategoryAll)
	}
	cats = append(cats, categories...)

	s := &State{
		items:      items,
		categories: cats,
		active:     models.CategoryAll,
		stale:      true,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.filter == nil {
		s.filter = func(c models.Category) []models.MediaItem { return Filter(s.items, c) }
	}
	return s
}

// Restore rebuilds a session from its filter and the open item title, as carried in a URL.
// An empty title leaves the lightbox closed.
func Restore(items []models.MediaItem, categories []models.Category, filter models.Category, title string, opts ...Option) (*State, error) {
	s := New(items, categories, opts...)
	if filter != "" && filter != s.active && !s.SelectFilter(filter) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, filter)
	}
	if title != "" {
		if err := s.Open(title); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Categories returns the enumerated categories, aggregate first
func (s *State) Categories() []models.Category {
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ActiveFilter returns the selected category
func (s *State) ActiveFilter() models.Category {
	return s.active
}

// Generation increments on every effective filter change and keys the grid re-entry animation
func (s *State) Generation() int {
	return s.generation
}

// Filtered returns the current filtered view, recomputing it if the filter changed
func (s *State) Filtered() []models.MediaItem {
	if s.stale {
		s.filtered = s.filter(s.active)
		s.stale = false
	}
	return s.filtered
}

// SelectFilter activates category. It returns false when the category is unknown
// or already active; neither case changes the state.
func (s *State) SelectFilter(category models.Category) bool {
	if !ContainsCategory(s.categories, category) {
		s.logger.Debug("ignoring unknown gallery filter", "category", category)
		return false
	}
	if category == s.active {
		return false
	}

	s.active = category
	s.stale = true
	s.generation++

	if s.lightbox != nil && s.onFilterChange == CloseOnFilterChange {
		s.Close()
	}
	return true
}

// Open shows the item with title in the lightbox
func (s *State) Open(title string) error {
	filtered := s.Filtered()
	idx, err := Locate(filtered, title)
	if err != nil {
		return fmt.Errorf("%w: %q in %s", ErrItemNotFound, title, s.active)
	}

	s.OpenItem(filtered[idx])
	return nil
}

// OpenItem shows item as selected from the grid. The item is trusted to come from
// the filtered view; if it does not, navigation recovers per the RecoveryPolicy.
func (s *State) OpenItem(item models.MediaItem) {
	s.lightbox = &item
	s.openedWith = s.active
	if s.onFilterChange == SnapshotOnOpen {
		filtered := s.Filtered()
		s.snapshot = make([]models.MediaItem, len(filtered))
		copy(s.snapshot, filtered)
	}
}

// Close hides the lightbox. Closing a closed lightbox is a no-op.
func (s *State) Close() {
	s.lightbox = nil
	s.snapshot = nil
}

// LightboxFilter returns the filter whose list the lightbox navigates: the
// filter active at open time under SnapshotOnOpen, the active filter otherwise
func (s *State) LightboxFilter() models.Category {
	if s.snapshot != nil {
		return s.openedWith
	}
	return s.active
}

// IsOpen reports whether the lightbox is showing an item
func (s *State) IsOpen() bool {
	return s.lightbox != nil
}

// Current returns the item shown in the lightbox
func (s *State) Current() (models.MediaItem, bool) {
	if s.lightbox == nil {
		return models.MediaItem{}, false
	}
	return *s.lightbox, true
}

// Next advances the lightbox, wrapping from the last item to the first
func (s *State) Next() (models.MediaItem, bool) {
	return s.step(1)
}

// Prev moves the lightbox back, wrapping from the first item to the last
func (s *State) Prev() (models.MediaItem, bool) {
	return s.step(-1)
}

// Position returns the 1-based position of the open item and the list length
func (s *State) Position() (position, total int, ok bool) {
	if s.lightbox == nil {
		return 0, 0, false
	}
	list := s.navList()
	idx, err := Locate(list, s.lightbox.Title)
	if err != nil {
		return 0, len(list), false
	}
	return idx + 1, len(list), true
}

// Neighbours returns the items Prev and Next would show, without moving
func (s *State) Neighbours() (prev, next models.MediaItem, ok bool) {
	if s.lightbox == nil {
		return models.MediaItem{}, models.MediaItem{}, false
	}
	list := s.navList()
	idx, err := Locate(list, s.lightbox.Title)
	if err != nil {
		return models.MediaItem{}, models.MediaItem{}, false
	}
	return list[Wrap(idx, -1, len(list))], list[Wrap(idx, 1, len(list))], true
}

func (s *State) navList() []models.MediaItem {
	if s.snapshot != nil {
		return s.snapshot
	}
	return s.Filtered()
}

func (s *State) step(delta int) (models.MediaItem, bool) {
	if s.lightbox == nil {
		return models.MediaItem{}, false
	}

	list := s.navList()
	idx, err := Locate(list, s.lightbox.Title)
	if err != nil {
		return s.recover(list, err)
	}

	item := list[Wrap(idx, delta, len(list))]
	s.lightbox = &item
	return item, true
}

func (s *State) recover(list []models.MediaItem, err error) (models.MediaItem, bool) {
	s.logger.Warn("recovering lightbox navigation",
		"err", err,
		"filter", s.active,
		"policy", s.recovery,
	)
	if s.recovery == RecoverClose || len(list) == 0 {
		s.Close()
		return models.MediaItem{}, false
	}
	item := list[0]
	s.lightbox = &item
	return item, true
}
