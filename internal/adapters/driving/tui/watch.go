// Package tui provides the full-screen watch view used by
// `hubfeed normalise --watch`. It follows the Elm architecture of
// Bubbletea: renders arrive as messages on a channel and replace the
// content of a scrollable viewport.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hubfeed/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hubfeed/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hubfeed/internal/adapters/driving/tui/styles"
)

// chromeHeight is the number of lines used by the title and status bar.
const chromeHeight = 2

// Watch is a tea.Model showing the latest render of a watched file.
type Watch struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	title   string
	updates <-chan messages.Rendered

	viewport viewport.Model
	ready    bool
	width    int

	content string
	err     error
	last    messages.Rendered
	renders int
}

// Ensure Watch implements tea.Model.
var _ tea.Model = (*Watch)(nil)

// NewWatch creates a watch view titled title that renders every message
// received from updates.
func NewWatch(title string, updates <-chan messages.Rendered) *Watch {
	return &Watch{
		styles:  styles.DefaultStyles(),
		keys:    keymap.DefaultKeyMap(),
		title:   title,
		updates: updates,
	}
}

// Run shows the view until the user quits, ctx is cancelled or updates
// is closed.
func Run(ctx context.Context, title string, updates <-chan messages.Rendered) error {
	p := tea.NewProgram(NewWatch(title, updates), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch view: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (w *Watch) Init() tea.Cmd {
	return w.waitForRender()
}

// waitForRender blocks on the next render.
func (w *Watch) waitForRender() tea.Cmd {
	return func() tea.Msg {
		r, ok := <-w.updates
		if !ok {
			return messages.SourceClosed{}
		}
		return r
	}
}

// Update implements tea.Model.
func (w *Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		height := max(msg.Height-chromeHeight, 1)
		if !w.ready {
			w.viewport = viewport.New(msg.Width, height)
			w.ready = true
		} else {
			w.viewport.Width = msg.Width
			w.viewport.Height = height
		}
		w.viewport.SetContent(w.content)
		return w, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Quit):
			return w, tea.Quit
		case key.Matches(msg, w.keys.Top):
			w.viewport.GotoTop()
			return w, nil
		case key.Matches(msg, w.keys.Bottom):
			w.viewport.GotoBottom()
			return w, nil
		}

	case messages.Rendered:
		w.renders++
		w.last = msg
		w.err = msg.Err
		if msg.Err == nil {
			w.content = msg.Content
			if w.ready {
				w.viewport.SetContent(w.content)
			}
		}
		return w, w.waitForRender()

	case messages.SourceClosed:
		return w, tea.Quit
	}

	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)
	return w, cmd
}

// View implements tea.Model.
func (w *Watch) View() string {
	if !w.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(w.styles.Title.Render(w.title))
	b.WriteString("\n")
	b.WriteString(w.viewport.View())
	b.WriteString("\n")
	b.WriteString(w.statusLine())
	return b.String()
}

// statusLine shows the render count, the last error and key hints.
func (w *Watch) statusLine() string {
	left := fmt.Sprintf("render #%d", w.renders)
	if !w.last.At.IsZero() {
		left += " at " + w.last.At.Format("15:04:05")
	}
	if w.err != nil {
		left = w.styles.Error.Render(left + ": " + w.err.Error())
	}

	hints := make([]string, 0, len(w.keys.ShortHelp()))
	for _, b := range w.keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}

	return w.styles.StatusBar.Width(w.width).Render(left + "  " + strings.Join(hints, " · "))
}

// Content returns the content currently shown.
func (w *Watch) Content() string {
	return w.content
}

// Err returns the error of the last render, if any.
func (w *Watch) Err() error {
	return w.err
}
