package gallery

import "fmt"

// Action is a lightbox transition requested by the user
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionClose:
		return "close"
	default:
		return "none"
	}
}

// ParseAction parses the name of a lightbox control
func ParseAction(name string) (Action, error) {
	switch name {
	case "next":
		return ActionNext, nil
	case "prev":
		return ActionPrev, nil
	case "close":
		return ActionClose, nil
	}
	return ActionNone, fmt.Errorf("unknown lightbox action: %q", name)
}

// Key names as reported by KeyboardEvent.key
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// HandleKey maps a key to a lightbox action and applies it. Keys are only bound
// while the lightbox is open; otherwise it returns ActionNone and false.
func (s *State) HandleKey(key string) (Action, bool) {
	if !s.IsOpen() {
		return ActionNone, false
	}

	var action Action
	switch key {
	case KeyEscape:
		action = ActionClose
	case KeyArrowLeft:
		action = ActionPrev
	case KeyArrowRight:
		action = ActionNext
	default:
		return ActionNone, false
	}
	s.Apply(action)
	return action, true
}

// Apply performs action on the lightbox. It reports whether the lightbox is open afterwards.
func (s *State) Apply(action Action) bool {
	switch action {
	case ActionNext:
		s.Next()
	case ActionPrev:
		s.Prev()
	case ActionClose:
		s.Close()
	}
	return s.IsOpen()
}
