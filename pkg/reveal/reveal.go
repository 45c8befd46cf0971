// Package reveal tracks one-shot "scrolled into view" flags for page regions.
//
// A Scope is created when a page is mounted and closed when it is torn down.
// Each region is registered explicitly with Observe and becomes visible the
// first time a reported intersection ratio crosses its threshold; its observer
// is then disposed and later reports are ignored.
package reveal

import (
	"errors"
	"fmt"
)

// DefaultThreshold is the visible fraction used by most page sections
const DefaultThreshold = 0.15

// ErrScopeClosed is returned when observing on a scope that was already closed
var ErrScopeClosed = errors.New("reveal scope closed")

// Region describes an observed region for rendering
type Region struct {
	ID        string  `json:"id"`
	Threshold float64 `json:"threshold"`
	Visible   bool    `json:"visible"`
}

// Scope owns the triggers of one mounted page. It is not safe for concurrent use.
type Scope struct {
	triggers []*Trigger
	active   map[string]*Trigger
	closed   bool
}

// NewScope creates an open scope
func NewScope() *Scope {
	return &Scope{active: make(map[string]*Trigger)}
}

// Trigger is the visibility flag of a single region
type Trigger struct {
	id        string
	threshold float64
	visible   bool
	scope     *Scope
}

// Observe registers the region id. An empty id is a no-op and returns a nil
// trigger, which is safe to use. Observing an id twice returns the existing trigger.
func (s *Scope) Observe(id string, threshold float64) (*Trigger, error) {
	if s.closed {
		return nil, fmt.Errorf("%w: observe %q", ErrScopeClosed, id)
	}
	if id == "" {
		return nil, nil
	}
	for _, t := range s.triggers {
		if t.id == id {
			return t, nil
		}
	}

	t := &Trigger{
		id:        id,
		threshold: clamp(threshold),
		scope:     s,
	}
	s.triggers = append(s.triggers, t)
	s.active[id] = t
	return t, nil
}

// MustObserve is Observe for page composition where ids are static
func (s *Scope) MustObserve(id string, threshold float64) *Trigger {
	t, err := s.Observe(id, threshold)
	if err != nil {
		panic(err)
	}
	return t
}

// Active returns the number of observers still waiting to fire
func (s *Scope) Active() int {
	return len(s.active)
}

// Regions returns every registered region in registration order
func (s *Scope) Regions() []Region {
	out := make([]Region, 0, len(s.triggers))
	for _, t := range s.triggers {
		out = append(out, Region{ID: t.id, Threshold: t.threshold, Visible: t.visible})
	}
	return out
}

// Lookup returns the trigger registered under id
func (s *Scope) Lookup(id string) (*Trigger, bool) {
	for _, t := range s.triggers {
		if t.id == id {
			return t, true
		}
	}
	return nil, false
}

// Close disposes every remaining observer. Triggers keep their flag.
func (s *Scope) Close() {
	for id, t := range s.active {
		t.scope = nil
		delete(s.active, id)
	}
	s.closed = true
}

// Report feeds an intersection ratio for the region and reports whether this
// call made it visible
func (t *Trigger) Report(ratio float64) bool {
	if t == nil || t.visible || t.scope == nil {
		return false
	}
	if ratio <= 0 || ratio < t.threshold {
		return false
	}

	t.visible = true
	delete(t.scope.active, t.id)
	t.scope = nil
	return true
}

// Visible reports whether the region has been seen
func (t *Trigger) Visible() bool {
	return t != nil && t.visible
}

// ID returns the region id
func (t *Trigger) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// Threshold returns the clamped threshold
func (t *Trigger) Threshold() float64 {
	if t == nil {
		return 0
	}
	return t.threshold
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
