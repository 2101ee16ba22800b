package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"movieapp/config"
	"movieapp/model"
	"movieapp/poster"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	pagePadding   = 1
)

type appModel struct {
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	zones   *zone.Manager
	styles  styles

	bar  titleBar
	list movieList

	width  int
	height int

	spinning  bool
	animating bool
}

type options struct {
	cfg       config.Config
	movies    []model.Movie
	moviesSet bool
	loader    *poster.Loader
}

type Option func(*options)

// WithMovies replaces the built-in catalog. An empty slice is valid.
func WithMovies(movies []model.Movie) Option {
	return func(o *options) {
		o.movies = movies
		o.moviesSet = true
	}
}

// WithLoader sets the poster loader. The art size comes from the loader.
func WithLoader(loader *poster.Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

func New(opts ...Option) tea.Model {
	o := options{cfg: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	movies := o.movies
	if !o.moviesSet {
		movies = model.GetMovies()
	}
	loader := o.loader
	if loader == nil {
		loader = poster.FromConfig(o.cfg.Poster)
	}
	_, rows := loader.Size()

	st := newStyles(o.cfg.Theme.Accent)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.spinner
	zones := zone.New()

	m := appModel{
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		zones:   zones,
		styles:  st,
		list:    newMovieList(movies, loader, rows, st, zones),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.layout()
	// Init cannot record state, so the first spinner chain is accounted
	// for here.
	m.spinning = m.list.AnyPending()
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := m.list.StartPending()
	if m.spinning {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, m.follow()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case posterLoadedMsg:
		m.list.Deliver(msg)
		return m, m.follow()
	case fadeFrameMsg:
		m.animating = false
		m.list.StepFades()
		return m, m.follow()
	case spinner.TickMsg:
		if !m.list.AnyPending() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinning = true
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	width := m.contentWidth()
	body := m.list.View(m.spinner.View())
	if m.bar.Open() {
		body = overlayRight(body, m.bar.Dropdown(m.styles, m.zones), width)
	}
	page := lipgloss.JoinVertical(lipgloss.Left,
		m.bar.View(width, m.styles, m.zones),
		body,
		m.footerView(),
	)
	return m.zones.Scan(lipgloss.NewStyle().Padding(0, pagePadding).Render(page))
}

func (m appModel) footerView() string {
	var keys help.KeyMap = m.keys
	if m.bar.Open() {
		keys = menuHelp{keys: m.keys}
	}
	position := "0/0"
	if n := m.list.Len(); n > 0 {
		position = fmt.Sprintf("%d/%d", m.list.cursor+1, n)
	}
	return hint(position) + "  " + m.help.View(keys)
}

func (m *appModel) contentWidth() int {
	return max(0, m.width-2*pagePadding)
}

func (m *appModel) layout() {
	width := m.contentWidth()
	m.help.Width = max(0, width-10)
	listHeight := m.height - lipgloss.Height(m.bar.View(width, m.styles, m.zones)) - lipgloss.Height(m.footerView())
	m.list.SetSize(width, max(0, listHeight))
}

// follow starts work the current state needs: poster tasks for freshly
// mounted rows, the spinner while posters are pending and animation frames
// while a row is fading.
func (m *appModel) follow() tea.Cmd {
	cmds := m.list.StartPending()
	if m.list.AnyPending() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	if m.list.AnyFading() && !m.animating {
		m.animating = true
		cmds = append(cmds, fadeFrameCmd())
	}
	return tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.list.Close()
		return m, tea.Quit
	}

	if m.bar.Open() {
		switch {
		case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Dismiss):
			m.bar.Dismiss()
		case msg.Type == tea.KeyEnter:
			m.bar.ActivateFavorites()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Menu):
		m.bar.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.list.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.MoveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.MoveCursor(-m.list.PageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.list.MoveCursor(m.list.PageSize())
	case key.Matches(msg, m.keys.Home):
		m.list.CursorTo(0)
	case key.Matches(msg, m.keys.End):
		m.list.CursorTo(m.list.Len() - 1)
	case key.Matches(msg, m.keys.Toggle):
		m.list.ToggleAt(m.list.cursor)
	case key.Matches(msg, m.keys.Favorite):
		if row := m.list.Focused(); row != nil {
			row.requestFavorite()
		}
		return m, nil
	default:
		return m, nil
	}
	return m, m.follow()
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.bar.Open() {
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case m.zones.Get(zoneMenuFavorites).InBounds(msg):
			m.bar.ActivateFavorites()
		case m.zones.Get(zoneMenuToggle).InBounds(msg):
			m.bar.Toggle()
		case m.zones.Get(zoneMenu).InBounds(msg):
		default:
			m.bar.Dismiss()
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.Scroll(-1)
		return m, m.follow()
	case tea.MouseButtonWheelDown:
		m.list.Scroll(1)
		return m, m.follow()
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.zones.Get(zoneMenuToggle).InBounds(msg) {
		m.bar.Toggle()
		return m, nil
	}
	start, end := m.list.window()
	for i := start; i < end; i++ {
		if m.zones.Get(arrowZone(i)).InBounds(msg) {
			m.list.ToggleAt(i)
			return m, m.follow()
		}
		if m.zones.Get(heartZone(i)).InBounds(msg) {
			if row := m.list.Row(i); row != nil {
				row.requestFavorite()
			}
			return m, nil
		}
	}
	return m, nil
}

// overlayRight draws box over the top right corner of base.
func overlayRight(base, box string, width int) string {
	lines := strings.Split(base, "\n")
	left := max(0, width-lipgloss.Width(box))
	for i, line := range strings.Split(box, "\n") {
		if i >= len(lines) {
			lines = append(lines, "")
		}
		kept := ansi.Truncate(lines[i], left, "")
		pad := max(0, left-lipgloss.Width(kept))
		lines[i] = kept + ansi.ResetStyle + strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}
