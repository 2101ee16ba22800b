package tui

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"movieapp/model"
	"movieapp/poster"
)

type offlineFetcher struct{}

func (offlineFetcher) FetchPoster(ctx context.Context, url string) ([]byte, error) {
	return nil, errors.New("offline")
}

func newTestModel(t *testing.T, width, height int, opts ...Option) appModel {
	t.Helper()
	loader := poster.NewLoader(offlineFetcher{}, 20, 4)
	m := New(append([]Option{WithLoader(loader)}, opts...)...).(appModel)
	m, _ = update(m, tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func update(m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(appModel), cmd
}

func press(m appModel, keys ...string) appModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = update(m, msg)
	}
	return m
}

func settle(t *testing.T, m appModel) appModel {
	t.Helper()
	for i := 0; i < 1000 && m.list.AnyFading(); i++ {
		m, _ = update(m, fadeFrameMsg(time.Now()))
	}
	if m.list.AnyFading() {
		t.Fatal("expected fades to settle")
	}
	return m
}

func plainView(m appModel) string {
	return ansi.Strip(m.View())
}

// waitZone blocks until the zone manager has recorded id. Zone positions are
// stored asynchronously after View.
func waitZone(t *testing.T, m appModel, id string) *zone.ZoneInfo {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if z := m.zones.Get(id); !z.IsZero() {
			return z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q was never recorded", id)
	return nil
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestView_OneRowPerMovieInOrder(t *testing.T) {
	m := newTestModel(t, 100, 200)
	movies := model.GetMovies()

	if got := len(m.list.rows); got != len(movies) {
		t.Fatalf("expected %d mounted rows, got %d", len(movies), got)
	}
	view := plainView(m)
	last := -1
	for _, movie := range movies {
		idx := strings.Index(view, movie.Title)
		if idx < 0 {
			t.Fatalf("expected %q in view", movie.Title)
		}
		if idx <= last {
			t.Fatalf("expected %q after previous title", movie.Title)
		}
		last = idx
	}
	if got := strings.Count(view, arrowCollapsed); got != len(movies) {
		t.Fatalf("expected %d collapsed arrows, got %d", len(movies), got)
	}
	if strings.Contains(view, "Director:") {
		t.Fatal("expected every row to start collapsed")
	}
}

func TestView_EmptyCatalog(t *testing.T) {
	m := newTestModel(t, 80, 24, WithMovies(nil))

	if got := len(m.list.rows); got != 0 {
		t.Fatalf("expected no rows, got %d", got)
	}
	m = press(m, "j", "enter", "G", "f")
	view := plainView(m)
	if !strings.Contains(view, screenTitle) {
		t.Fatalf("expected title bar in view, got %q", view)
	}
	if strings.Contains(view, arrowCollapsed) {
		t.Fatal("expected no rows in view")
	}
}

func TestToggle_ExpandsAndCollapses(t *testing.T) {
	m := newTestModel(t, 100, 200)

	m = press(m, "enter")
	row := m.list.Row(0)
	if row == nil || !row.Expanded() {
		t.Fatal("expected first row to be expanded")
	}
	if !m.list.AnyFading() {
		t.Fatal("expected the details to fade in")
	}
	m = settle(t, m)
	view := plainView(m)
	if !strings.Contains(view, arrowExpanded) || !strings.Contains(view, "Director: James Cameron") {
		t.Fatalf("expected expanded details, got %q", view)
	}

	m = press(m, "enter")
	if m.list.Row(0).Expanded() {
		t.Fatal("expected first row to collapse")
	}
	if !strings.Contains(plainView(m), "Director: James Cameron") {
		t.Fatal("expected details to stay visible while fading out")
	}
	m = settle(t, m)
	if strings.Contains(plainView(m), "Director:") {
		t.Fatal("expected details to be gone once the fade settled")
	}
}

func TestToggle_InceptionShowsReleaseYear(t *testing.T) {
	m := newTestModel(t, 100, 200)

	m = press(m, "j", "j", "j", "j", "j", "j")
	if got := m.list.Focused().movie.Title; got != "Inception" {
		t.Fatalf("expected Inception focused, got %q", got)
	}
	m = press(m, "enter")
	if !strings.Contains(plainView(m), "Released: 2010") {
		t.Fatal("expected release year after expanding")
	}

	m = press(m, "enter")
	m = settle(t, m)
	if strings.Contains(plainView(m), "Released: 2010") {
		t.Fatal("expected release year hidden after collapsing")
	}
}

func TestToggle_OnlyAffectsOneRow(t *testing.T) {
	m := newTestModel(t, 100, 200)

	m = press(m, "j", "enter")
	for i, row := range m.list.rows {
		if row.Expanded() != (i == 1) {
			t.Fatalf("unexpected expansion for row %d: %v", i, row.Expanded())
		}
	}
}

func TestMenu_OpenAndDismissWithKeys(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = press(m, "m")
	if !m.bar.Open() {
		t.Fatal("expected menu to open")
	}
	if !strings.Contains(plainView(m), "Favorites") {
		t.Fatal("expected Favorites item in view")
	}

	m = press(m, "j")
	if m.list.cursor != 0 {
		t.Fatal("expected list keys to be swallowed while the menu is open")
	}

	m = press(m, "esc")
	if m.bar.Open() {
		t.Fatal("expected esc to dismiss the menu")
	}
	if strings.Contains(plainView(m), "Favorites") {
		t.Fatal("expected Favorites item to be hidden")
	}

	m = press(m, "m", "m")
	if m.bar.Open() {
		t.Fatal("expected m to toggle the menu closed")
	}
}

func TestMenu_FavoritesOnlyLogs(t *testing.T) {
	logs := captureLogs(t)
	m := newTestModel(t, 80, 24)

	m = press(m, "m", "enter")
	if !m.bar.Open() {
		t.Fatal("expected menu to stay open after picking Favorites")
	}
	if !strings.Contains(logs.String(), "favorites menu item selected") {
		t.Fatalf("expected diagnostic log line, got %q", logs.String())
	}
	if m.list.Len() != len(model.GetMovies()) || m.list.cursor != 0 {
		t.Fatal("expected the list to be untouched")
	}
}

func TestMenu_ClickOutsideDismisses(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = press(m, "m")
	_ = m.View()

	m, _ = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.bar.Open() {
		t.Fatal("expected a click outside the menu to dismiss it")
	}
}

func TestMenu_ClickToggle(t *testing.T) {
	m := newTestModel(t, 80, 24)
	_ = m.View()

	z := waitZone(t, m, zoneMenuToggle)
	m, _ = update(m, tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !m.bar.Open() {
		t.Fatal("expected a click on the toggle to open the menu")
	}
}

func TestMenu_ClickFavoritesOnlyLogs(t *testing.T) {
	logs := captureLogs(t)
	m := newTestModel(t, 80, 24)
	m = press(m, "m")
	_ = m.View()

	z := waitZone(t, m, zoneMenuFavorites)
	m, _ = update(m, tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !m.bar.Open() {
		t.Fatal("expected menu to stay open after clicking Favorites")
	}
	if !strings.Contains(logs.String(), "favorites menu item selected") {
		t.Fatalf("expected diagnostic log line, got %q", logs.String())
	}
	if strings.Contains(logs.String(), "favorite toggle requested") {
		t.Fatal("expected the row underneath the menu to ignore the click")
	}
	if m.list.Row(0).Expanded() {
		t.Fatal("expected the list to be untouched")
	}
}

func TestRow_ClickHeartOnlyLogs(t *testing.T) {
	logs := captureLogs(t)
	m := newTestModel(t, 80, 24)
	before := plainView(m)

	z := waitZone(t, m, heartZone(0))
	m, _ = update(m, tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !strings.Contains(logs.String(), "favorite toggle requested") || !strings.Contains(logs.String(), "Avatar") {
		t.Fatalf("expected favorite log line, got %q", logs.String())
	}
	if m.list.Row(0).Expanded() || m.bar.Open() {
		t.Fatal("expected a heart click to leave rows and menu alone")
	}
	if got := plainView(m); got != before {
		t.Fatal("expected the favorite icon to change nothing")
	}
}

func TestRow_ClickArrowToggles(t *testing.T) {
	m := newTestModel(t, 80, 24)
	_ = m.View()

	z := waitZone(t, m, arrowZone(0))
	m, _ = update(m, tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !m.list.Row(0).Expanded() {
		t.Fatal("expected a click on the arrow to expand the row")
	}
}

func TestFavorite_LogsWithoutState(t *testing.T) {
	logs := captureLogs(t)
	m := newTestModel(t, 80, 24)

	before := plainView(m)
	m = press(m, "f")
	if !strings.Contains(logs.String(), "favorite toggle requested") || !strings.Contains(logs.String(), "Avatar") {
		t.Fatalf("expected favorite log line, got %q", logs.String())
	}
	if got := plainView(m); got != before {
		t.Fatal("expected the favorite icon to change nothing")
	}
}

func TestPoster_PendingLoadedFailed(t *testing.T) {
	m := newTestModel(t, 100, 200)

	if !strings.Contains(plainView(m), posterLoading) {
		t.Fatal("expected pending placeholder")
	}

	first := m.list.Row(0)
	m, _ = update(m, posterLoadedMsg{index: 0, mountID: first.mountID, result: poster.Result{Status: poster.StatusLoaded, Art: "POSTER-ART"}})
	second := m.list.Row(1)
	m, _ = update(m, posterLoadedMsg{index: 1, mountID: second.mountID, result: poster.Result{Status: poster.StatusFailed, Err: errors.New("404")}})

	view := plainView(m)
	if !strings.Contains(view, "POSTER-ART") {
		t.Fatal("expected loaded art in view")
	}
	if !strings.Contains(view, posterUnavailable) || !strings.Contains(view, "I Am Legend") {
		t.Fatal("expected failed row to keep its title and show the placeholder")
	}
	m = press(m, "j", "enter")
	if !strings.Contains(plainView(m), "Director: Francis Lawrence") {
		t.Fatal("expected details on a row whose poster failed")
	}
}

func TestPoster_TaskFailureReachesRow(t *testing.T) {
	m := newTestModel(t, 100, 200)

	row := m.list.Row(0)
	row.started = false
	cmd := row.startLoad()
	if cmd == nil {
		t.Fatal("expected a poster command")
	}
	msg, ok := cmd().(posterLoadedMsg)
	if !ok {
		t.Fatal("expected posterLoadedMsg")
	}
	if msg.result.Status != poster.StatusFailed {
		t.Fatalf("expected failed status, got %s", msg.result.Status)
	}
	m, _ = update(m, msg)
	if m.list.Row(0).poster.Status != poster.StatusFailed {
		t.Fatal("expected the row to record the failure")
	}
}

func TestPoster_StaleResultIgnored(t *testing.T) {
	m := newTestModel(t, 100, 200)

	m, _ = update(m, posterLoadedMsg{index: 0, mountID: "stale", result: poster.Result{Status: poster.StatusLoaded, Art: "OLD"}})
	if m.list.Row(0).poster.Status != poster.StatusPending {
		t.Fatal("expected a result from another mount to be dropped")
	}
	if strings.Contains(plainView(m), "OLD") {
		t.Fatal("expected stale art to stay out of the view")
	}
}

func TestWindow_UnmountResetsExpansion(t *testing.T) {
	m := newTestModel(t, 80, 24)

	if _, ok := m.list.rows[9]; ok {
		t.Fatal("expected rows below the window to be unmounted")
	}
	m = press(m, "enter")
	first := m.list.Row(0)
	firstID := first.mountID
	if !first.Expanded() {
		t.Fatal("expected first row expanded")
	}

	m = press(m, "G")
	if m.list.Row(0) != nil {
		t.Fatal("expected first row to be unmounted after scrolling away")
	}
	if !first.task.Canceled() {
		t.Fatal("expected the unmounted row's poster task to be cancelled")
	}
	if m.list.Row(9) == nil {
		t.Fatal("expected last row to be mounted")
	}

	m = press(m, "g")
	again := m.list.Row(0)
	if again == nil || again.Expanded() {
		t.Fatal("expected a fresh collapsed row after scrolling back")
	}
	if again.mountID == firstID {
		t.Fatal("expected a new mount id")
	}
	m, _ = update(m, posterLoadedMsg{index: 0, mountID: firstID, result: poster.Result{Status: poster.StatusLoaded, Art: "LATE"}})
	if m.list.Row(0).poster.Status != poster.StatusPending {
		t.Fatal("expected the late result of the old mount to be ignored")
	}
}

func TestMouseWheel_Scrolls(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.list.offset != 1 {
		t.Fatalf("expected offset 1, got %d", m.list.offset)
	}
	if m.list.Row(0) != nil {
		t.Fatal("expected first row unmounted after scrolling")
	}
	if m.list.cursor != 1 {
		t.Fatalf("expected cursor to follow the window, got %d", m.list.cursor)
	}
}

func TestSpinner_StopsWhenNothingPending(t *testing.T) {
	m := newTestModel(t, 80, 24, WithMovies(nil))
	m.spinning = true

	m, cmd := update(m, m.spinner.Tick())
	if cmd != nil || m.spinning {
		t.Fatal("expected spinner to stop without pending posters")
	}
}

func TestOverlayRight(t *testing.T) {
	base := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}, "\n")
	got := ansi.Strip(overlayRight(base, "XX\nYY", 10))
	want := strings.Join([]string{"aaaaaaaaXX", "bbbbbbbbYY", "cccccccccc"}, "\n")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestInit_StartsOneSpinnerChain(t *testing.T) {
	loader := poster.NewLoader(offlineFetcher{}, 20, 4)
	m := New(WithLoader(loader)).(appModel)
	if !m.spinning {
		t.Fatal("expected pending posters to mark the spinner as running")
	}
	if m.Init() == nil {
		t.Fatal("expected Init to start poster tasks and the spinner")
	}

	m, cmd := update(m, tea.WindowSizeMsg{Width: defaultWidth, Height: defaultHeight})
	if cmd != nil {
		t.Fatal("expected no second spinner chain after Init")
	}
	if !m.spinning {
		t.Fatal("expected the spinner to keep running")
	}
}
