package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"movieapp/model"
	"movieapp/poster"
)

// movieList renders one row per movie, in catalog order. Only rows inside
// the visible window are mounted.
type movieList struct {
	movies []model.Movie
	rows   map[int]*movieRow
	loader *poster.Loader

	cursor int
	offset int
	width  int
	height int

	posterRows int
	styles     styles
	zones      *zone.Manager
}

func newMovieList(movies []model.Movie, loader *poster.Loader, rows int, st styles, zones *zone.Manager) movieList {
	return movieList{
		movies:     movies,
		rows:       make(map[int]*movieRow),
		loader:     loader,
		posterRows: rows,
		styles:     st,
		zones:      zones,
	}
}

func (l *movieList) Len() int {
	return len(l.movies)
}

func (l *movieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.ensureCursorVisible()
	l.sync()
}

func (l *movieList) Row(index int) *movieRow {
	return l.rows[index]
}

func (l *movieList) Focused() *movieRow {
	return l.rows[l.cursor]
}

func (l *movieList) MoveCursor(delta int) {
	l.CursorTo(l.cursor + delta)
}

func (l *movieList) CursorTo(index int) {
	if len(l.movies) == 0 {
		return
	}
	l.cursor = max(0, min(index, len(l.movies)-1))
	l.ensureCursorVisible()
	l.sync()
}

// PageSize is the number of rows currently in the window, at least one.
func (l *movieList) PageSize() int {
	start, end := l.window()
	return max(1, end-start)
}

// Scroll moves the window without moving the cursor past it.
func (l *movieList) Scroll(delta int) {
	if len(l.movies) == 0 {
		return
	}
	l.offset = max(0, min(l.offset+delta, len(l.movies)-1))
	start, end := l.window()
	if l.cursor < start {
		l.cursor = start
	} else if end > start && l.cursor >= end {
		l.cursor = end - 1
	}
	l.sync()
}

func (l *movieList) rowView(index int, spinner string) rowView {
	return rowView{
		width:      l.width,
		focused:    index == l.cursor,
		spinner:    spinner,
		posterRows: l.posterRows,
		styles:     l.styles,
		zones:      l.zones,
	}
}

// collapsedHeight is the height of a card without details: borders, poster
// and title line.
func (l *movieList) collapsedHeight() int {
	return l.posterRows + 3
}

func (l *movieList) rowHeight(index int) int {
	if row := l.rows[index]; row != nil && row.detailsShown() {
		return lipgloss.Height(row.View(l.rowView(index, "")))
	}
	return l.collapsedHeight()
}

// window returns the half-open range of rows intersecting the viewport.
func (l *movieList) window() (int, int) {
	if len(l.movies) == 0 || l.height <= 0 {
		return l.offset, l.offset
	}
	used := 0
	end := l.offset
	for end < len(l.movies) && used < l.height {
		used += l.rowHeight(end)
		end++
	}
	return l.offset, end
}

func (l *movieList) ensureCursorVisible() {
	if l.cursor < l.offset {
		l.offset = l.cursor
		return
	}
	for l.offset < l.cursor {
		used := 0
		for i := l.offset; i <= l.cursor; i++ {
			used += l.rowHeight(i)
		}
		if used <= l.height {
			return
		}
		l.offset++
	}
}

// sync mounts rows entering the window and unmounts rows leaving it.
// Unmounting cancels the poster task and forgets the expansion flag.
func (l *movieList) sync() {
	start, end := l.window()
	for i, row := range l.rows {
		if i < start || i >= end {
			row.unmount()
			delete(l.rows, i)
		}
	}
	for i := start; i < end; i++ {
		if _, ok := l.rows[i]; !ok {
			l.rows[i] = newMovieRow(i, l.movies[i], l.loader)
		}
	}
}

// StartPending returns commands for mounted rows whose poster task has not
// been started yet.
func (l *movieList) StartPending() []tea.Cmd {
	var cmds []tea.Cmd
	start, end := l.window()
	for i := start; i < end; i++ {
		if row := l.rows[i]; row != nil {
			if cmd := row.startLoad(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return cmds
}

// Deliver hands a poster result to its row. Results for rows that were
// unmounted or remounted since the task started are dropped.
func (l *movieList) Deliver(msg posterLoadedMsg) bool {
	row := l.rows[msg.index]
	if row == nil || row.mountID != msg.mountID {
		return false
	}
	row.setPoster(msg.result)
	return true
}

func (l *movieList) AnyPending() bool {
	for _, row := range l.rows {
		if row.pending() {
			return true
		}
	}
	return false
}

func (l *movieList) AnyFading() bool {
	for _, row := range l.rows {
		if row.fading() {
			return true
		}
	}
	return false
}

// StepFades advances every fading row by one frame.
func (l *movieList) StepFades() {
	for _, row := range l.rows {
		row.stepFades()
	}
	l.ensureCursorVisible()
	l.sync()
}

// Close unmounts every row, cancelling outstanding poster tasks.
func (l *movieList) Close() {
	for i, row := range l.rows {
		row.unmount()
		delete(l.rows, i)
	}
}

func (l *movieList) ToggleAt(index int) {
	row := l.rows[index]
	if row == nil {
		return
	}
	row.Toggle()
	l.cursor = index
	l.ensureCursorVisible()
	l.sync()
}

func (l *movieList) View(spinner string) string {
	if l.height <= 0 {
		return ""
	}
	start, end := l.window()
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := l.rows[i]
		if row == nil {
			continue
		}
		cards = append(cards, row.View(l.rowView(i, spinner)))
	}
	lines := strings.Split(strings.Join(cards, "\n"), "\n")
	if len(lines) > l.height {
		lines = lines[:l.height]
	}
	return lipgloss.NewStyle().Height(l.height).Render(strings.Join(lines, "\n"))
}
