package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	zone "github.com/lrstanley/bubblezone"

	"movieapp/model"
	"movieapp/poster"
)

const (
	arrowCollapsed    = "▲"
	arrowExpanded     = "▼"
	favoriteIcon      = "♡"
	posterUnavailable = "poster unavailable"
	posterLoading     = "loading poster"
	minRowInner       = 16
)

func arrowZone(index int) string {
	return fmt.Sprintf("row-%d-arrow", index)
}

func heartZone(index int) string {
	return fmt.Sprintf("row-%d-heart", index)
}

type posterLoadedMsg struct {
	index   int
	mountID string
	result  poster.Result
}

// movieRow is the mounted view-model of one catalog entry. It is created
// when the entry enters the visible window and dropped when it leaves.
type movieRow struct {
	index    int
	mountID  string
	movie    model.Movie
	expanded bool
	fade     fade
	task     *poster.Task
	started  bool
	poster   poster.Result

	// artFade blends the poster in once it arrives.
	artFade fade
	art     string
	artKey  artKey
}

// artKey identifies the size and opacity the cached art was drawn at.
type artKey struct {
	width   int
	height  int
	opacity float64
}

func newMovieRow(index int, movie model.Movie, loader *poster.Loader) *movieRow {
	row := &movieRow{
		index:   index,
		mountID: uuid.NewString(),
		movie:   movie,
		fade:    newFade(),
		artFade: newFade(),
	}
	if loader != nil {
		row.task = loader.NewTask(movie.PosterURL())
	}
	return row
}

// Toggle flips between collapsed and expanded. The fade follows on
// subsequent animation frames.
func (r *movieRow) Toggle() {
	r.expanded = !r.expanded
	if r.expanded {
		r.fade.retarget(1)
	} else {
		r.fade.retarget(0)
	}
}

func (r *movieRow) Expanded() bool {
	return r.expanded
}

func (r *movieRow) fading() bool {
	return !r.fade.settled() || !r.artFade.settled()
}

func (r *movieRow) detailsShown() bool {
	return r.expanded || !r.fade.settled()
}

func (r *movieRow) stepFades() {
	r.fade.step()
	r.artFade.step()
}

func (r *movieRow) pending() bool {
	return r.task != nil && r.poster.Status == poster.StatusPending
}

// startLoad returns the command running the poster task, once per mount.
func (r *movieRow) startLoad() tea.Cmd {
	if r.started || r.task == nil {
		return nil
	}
	r.started = true
	task, index, mountID := r.task, r.index, r.mountID
	return func() tea.Msg {
		return posterLoadedMsg{index: index, mountID: mountID, result: task.Run()}
	}
}

func (r *movieRow) setPoster(res poster.Result) {
	if r.poster.Status.Done() {
		return
	}
	r.poster = res
	if res.Status == poster.StatusLoaded {
		r.artFade.retarget(1)
	}
}

// artAt returns the poster drawn to exactly width x height cells, cropped
// to fill. Renders are cached until the size or fade opacity changes.
func (r *movieRow) artAt(width, height int) string {
	img := r.poster.Image
	if img == nil {
		return r.poster.Art
	}
	key := artKey{width: width, height: height, opacity: r.artFade.visible()}
	if r.art != "" && key == r.artKey {
		return r.art
	}
	bg, _ := colorful.Hex(fadeFromHex)
	r.art = poster.RenderFaded(img, width, height, key.opacity, bg)
	r.artKey = key
	return r.art
}

func (r *movieRow) unmount() {
	if r.task != nil {
		r.task.Cancel()
	}
}

func (r *movieRow) requestFavorite() {
	slog.Info("favorite toggle requested", "title", r.movie.Title)
}

func (r *movieRow) arrowIcon() string {
	if r.expanded {
		return arrowExpanded
	}
	return arrowCollapsed
}

type rowView struct {
	width      int
	focused    bool
	spinner    string
	posterRows int
	styles     styles
	zones      *zone.Manager
}

func (v rowView) inner() int {
	w := v.width - 4
	if w < minRowInner {
		w = minRowInner
	}
	return w
}

func (r *movieRow) View(v rowView) string {
	inner := v.inner()
	st := v.styles

	heart := v.zones.Mark(heartZone(r.index), st.heart.Render(favoriteIcon))
	posterW := inner - lipgloss.Width(heart) - 1
	top := lipgloss.JoinHorizontal(lipgloss.Top, r.posterView(posterW, v), " ", heart)

	arrow := v.zones.Mark(arrowZone(r.index), st.arrow.Render(r.arrowIcon()))
	title := st.title.Render(ansi.Truncate(r.movie.Title, inner-lipgloss.Width(arrow)-1, "…"))
	gap := inner - lipgloss.Width(title) - lipgloss.Width(arrow)
	if gap < 1 {
		gap = 1
	}
	parts := []string{top, title + strings.Repeat(" ", gap) + arrow}
	if r.detailsShown() {
		parts = append(parts, r.detailsView(inner))
	}

	card := st.card
	if v.focused {
		card = st.cardFocus
	}
	return card.Width(inner + 2).Render(strings.Join(parts, "\n"))
}

func (r *movieRow) posterView(width int, v rowView) string {
	height := v.posterRows
	var content string
	switch r.poster.Status {
	case poster.StatusLoaded:
		content = r.artAt(width, height)
	case poster.StatusFailed:
		content = v.styles.placeholder.Render(posterUnavailable)
	default:
		if r.task == nil {
			content = v.styles.placeholder.Render(posterUnavailable)
		} else {
			content = v.spinner + " " + hint(posterLoading)
		}
	}
	content = lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *movieRow) detailsView(width int) string {
	m := r.movie
	lines := []string{
		"Director: " + m.Director,
		"Released: " + strconv.Itoa(m.Year),
		"Genre: " + m.Genre,
		"Actors: " + m.ActorList(),
		"Rating: " + m.RatingLabel(),
		strings.Repeat("─", width),
		"Plot: " + m.Plot,
	}
	return lipgloss.NewStyle().
		Width(width).
		Foreground(fadeColor(r.fade.visible())).
		Render(strings.Join(lines, "\n"))
}
