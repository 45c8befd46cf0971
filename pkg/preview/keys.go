package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the gallery browser
type KeyMap struct {
	NextFilter key.Binding
	PrevFilter key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Close      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev filter")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func hint(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " · "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
