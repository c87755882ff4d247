// Package ui provides the Bubble Tea terminal front-end for the museum.
package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prasanthprabakaran/css-art-museum/internal/museum"
	"github.com/prasanthprabakaran/css-art-museum/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Session   *museum.Session
	Prefs     *prefs.Prefs
	PrefsPath string
	LoadErr   error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	session   *museum.Session
	prefs     *prefs.Prefs
	prefsPath string
	loadErr   error

	theme    Theme
	search   textinput.Model
	querying bool

	selected int
	width    int
	height   int
	status   string
}

// New builds the root model.
func New(opts Options) Model {
	search := textinput.New()
	search.Placeholder = "search by title or author"
	search.CharLimit = 80

	theme := LightTheme()
	if opts.Prefs != nil && opts.Prefs.Theme == "dark" {
		theme = DarkTheme()
	}

	if opts.Session != nil && opts.Prefs != nil {
		opts.Session.State().SetSort(museum.ParseSortMode(opts.Prefs.Sort))
	}

	return Model{
		session:   opts.Session,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		loadErr:   opts.LoadErr,
		theme:     theme,
		search:    search,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// toggleResultMsg carries a finished like round-trip back to the UI.
type toggleResultMsg museum.ToggleResult

// toggleLikeCmd runs only the network half of a toggle; the optimistic
// flip already happened in updateBrowse, and Update applies the
// reconciled count when the message lands. The command goroutine never
// touches gallery state.
func (m Model) toggleLikeCmd(toggle museum.ToggleResult) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return toggleResultMsg(session.CompleteToggle(ctx, toggle))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toggleResultMsg:
		m.session.State().SetLikeCount(msg.ID, msg.Count)
		if msg.Err != nil {
			m.status = fmt.Sprintf("like for %s did not reach the server", msg.ID)
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.loadErr != nil {
			if s := msg.String(); s == "q" || s == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.querying {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.querying = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Recompute on every keystroke, like the original search bar.
	m.session.State().SetQuery(m.search.Value())
	m.selected = 0
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.session.State()

	switch msg.String() {
	case "q", "ctrl+c":
		m.savePrefs()
		return m, tea.Quit

	case "/":
		m.querying = true
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(state.CurrentPageItems())-1 {
			m.selected++
		}

	case "left", "p":
		if state.PreviousPage() {
			m.selected = 0
		}

	case "right", "n":
		if state.NextPage() {
			m.selected = 0
		}

	case "s":
		state.SetSort(nextSortMode(state.Sort()))
		m.prefs.Sort = state.Sort().String()
		m.selected = 0
		m.savePrefs()

	case "t":
		if m.prefs.Theme == "dark" {
			m.prefs.Theme = "light"
			m.theme = LightTheme()
		} else {
			m.prefs.Theme = "dark"
			m.theme = DarkTheme()
		}
		m.savePrefs()

	case "v":
		if art, ok := m.selectedArt(); ok {
			m.prefs.Recent.Add(prefs.RecentArt{
				File:   art.File,
				Title:  art.Title,
				Author: art.Author,
			})
			m.savePrefs()
		}

	case "enter", " ":
		if art, ok := m.selectedArt(); ok {
			toggle := m.session.BeginToggle(art.File)
			m.savePrefs()
			return m, m.toggleLikeCmd(toggle)
		}
	}

	return m, nil
}

func (m Model) selectedArt() (museum.Art, bool) {
	items := m.session.State().CurrentPageItems()
	if m.selected < 0 || m.selected >= len(items) {
		return museum.Art{}, false
	}
	return items[m.selected], true
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("Warning: could not save prefs: %v", err)
	}
}

func nextSortMode(mode museum.SortMode) museum.SortMode {
	switch mode {
	case museum.SortUnsorted:
		return museum.SortNewest
	case museum.SortNewest:
		return museum.SortOldest
	case museum.SortOldest:
		return museum.SortMostLiked
	case museum.SortMostLiked:
		return museum.SortLeastLiked
	default:
		return museum.SortUnsorted
	}
}

func (m Model) View() string {
	if m.loadErr != nil {
		return m.theme.Error.Render(
			"Could not load the art gallery. Please try again later.\n\n" + m.loadErr.Error(),
		)
	}

	state := m.session.State()
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("CSS Art Museum"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtle.Render(fmt.Sprintf(
		"Page %d of %d (%d artworks) · sort: %s",
		state.CurrentPage(), state.TotalPages(), state.VisibleCount(), state.Sort(),
	)))
	b.WriteString("\n\n")

	if recent := m.prefs.Recent.NewestFirst(); len(recent) > 0 {
		names := make([]string, 0, len(recent))
		for _, r := range recent {
			names = append(names, r.Title)
		}
		b.WriteString(m.theme.Subtle.Render("Recently viewed: " + strings.Join(names, " · ")))
		b.WriteString("\n\n")
	}

	if m.querying || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	items := state.CurrentPageItems()
	if len(items) == 0 {
		b.WriteString(m.theme.Subtle.Render("No artworks match your search."))
		b.WriteString("\n")
	}
	for i, art := range items {
		b.WriteString(m.renderCard(art, i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPageBar(state))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.theme.Error.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Subtle.Render(
		"enter like · / search · s sort · ←/→ page · v mark viewed · t theme · q quit",
	))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderCard(art museum.Art, selected bool) string {
	heart := "♡"
	style := m.theme.Card
	if m.session.IsLiked(art.File) {
		heart = "♥"
	}
	if selected {
		style = m.theme.SelectedCard
	}

	line := fmt.Sprintf("%s %-3d %s — by %s", heart, art.Likes, art.Title, art.Author)
	return style.Render(line)
}

func (m Model) renderPageBar(state *museum.State) string {
	parts := make([]string, 0, 9)
	for _, n := range state.PageNumbers() {
		switch {
		case n == museum.Ellipsis:
			parts = append(parts, "…")
		case n == state.CurrentPage():
			parts = append(parts, m.theme.ActivePage.Render(fmt.Sprintf("[%d]", n)))
		default:
			parts = append(parts, fmt.Sprintf(" %d ", n))
		}
	}
	return strings.Join(parts, " ")
}
