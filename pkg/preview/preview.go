// Package preview is a terminal browser over the gallery navigator. It drives the
// same state machine as the site's lightbox, one key press at a time.
package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
)

// Model is the bubbletea model of the gallery browser
type Model struct {
	state  *gallery.State
	keys   KeyMap
	title  string
	cursor int
	quit   bool
}

// New creates a browser over state
func New(state *gallery.State, title string) Model {
	return Model{state: state, keys: DefaultKeyMap(), title: title}
}

// Run starts the browser and blocks until the user quits or ctx is done
func Run(ctx context.Context, state *gallery.State, title string) error {
	_, err := tea.NewProgram(New(state, title), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Cursor is the index of the highlighted grid item
func (m Model) Cursor() int {
	return m.cursor
}

// State is the navigator driven by the browser
func (m Model) State() *gallery.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(km, m.keys.NextFilter):
		m.cycleFilter(1)
	case key.Matches(km, m.keys.PrevFilter):
		m.cycleFilter(-1)
	}

	if m.state.IsOpen() {
		m.updateLightbox(km)
		return m, nil
	}

	items := m.state.Filtered()
	switch {
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Open):
		if m.cursor < len(items) {
			_ = m.state.Open(items[m.cursor].Title)
		}
	}
	return m, nil
}

// updateLightbox forwards a key to the navigator under its browser key name
func (m *Model) updateLightbox(km tea.KeyMsg) {
	var name string
	switch {
	case key.Matches(km, m.keys.Close):
		name = gallery.KeyEscape
	case key.Matches(km, m.keys.Next):
		name = gallery.KeyArrowRight
	case key.Matches(km, m.keys.Prev):
		name = gallery.KeyArrowLeft
	default:
		return
	}

	current, _ := m.state.Current()
	if action, _ := m.state.HandleKey(name); action == gallery.ActionClose {
		m.follow(current.Title)
	}
}

func (m *Model) cycleFilter(delta int) {
	cats := m.state.Categories()
	idx := 0
	for i, c := range cats {
		if c == m.state.ActiveFilter() {
			idx = i
			break
		}
	}
	current, open := m.state.Current()
	if m.state.SelectFilter(cats[gallery.Wrap(idx, delta, len(cats))]) {
		m.cursor = 0
		if open && !m.state.IsOpen() {
			m.follow(current.Title)
		}
	}
}

// follow moves the cursor onto title when it is part of the grid
func (m *Model) follow(title string) {
	if i, err := gallery.Locate(m.state.Filtered(), title); err == nil {
		m.cursor = i
	}
}

func (m Model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")

	if item, ok := m.state.Current(); ok {
		b.WriteString(m.lightbox(item))
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render(hint(m.keys.Prev, m.keys.Next, m.keys.Close, m.keys.Quit)))
		return b.String()
	}

	for i, item := range m.state.Filtered() {
		line := fmt.Sprintf("  %s  %s", item.Title, styles.Muted.Render(string(item.Category)))
		if i == m.cursor {
			line = styles.Selected.Render("› " + item.Title)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(hint(m.keys.NextFilter, m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Quit)))
	return b.String()
}

func (m Model) filterBar() string {
	var parts []string
	for _, c := range m.state.Categories() {
		if c == m.state.ActiveFilter() {
			parts = append(parts, styles.Active.Render(string(c)))
		} else {
			parts = append(parts, styles.Filter.Render(string(c)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) lightbox(item models.MediaItem) string {
	pos, total, _ := m.state.Position()
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Selected.Render(item.Title),
		styles.Normal.Render(string(item.Category)),
		styles.Muted.Render(item.Image),
		"",
		fmt.Sprintf("%d of %d", pos, total),
	)
	return styles.Lightbox.Render(body)
}
