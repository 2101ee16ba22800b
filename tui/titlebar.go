package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	zoneMenuToggle    = "menu-toggle"
	zoneMenuFavorites = "menu-favorites"
	zoneMenu          = "menu"
)

const (
	screenTitle    = "Movies"
	menuToggleIcon = "⋮"
	favoritesLabel = "♥ Favorites"
)

// titleBar owns the overflow menu flag.
type titleBar struct {
	open bool
}

func (b *titleBar) Toggle() {
	b.open = !b.open
}

func (b *titleBar) Dismiss() {
	b.open = false
}

func (b titleBar) Open() bool {
	return b.open
}

// ActivateFavorites is the inert Favorites entry. It only reports that it
// was picked.
func (b titleBar) ActivateFavorites() {
	slog.Info("favorites menu item selected")
}

func (b titleBar) View(width int, st styles, zones *zone.Manager) string {
	title := st.bar.Render(" " + screenTitle)
	toggle := zones.Mark(zoneMenuToggle, st.barToggle.Render(menuToggleIcon))

	gap := width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 0 {
		gap = 0
	}
	return title + st.bar.Render(strings.Repeat(" ", gap)) + toggle
}

// Dropdown renders the open menu. It is drawn over the list, right aligned
// under the toggle.
func (b titleBar) Dropdown(st styles, zones *zone.Manager) string {
	item := zones.Mark(zoneMenuFavorites, st.menuItem.Render(favoritesLabel))
	return zones.Mark(zoneMenu, st.menu.Render(item))
}
