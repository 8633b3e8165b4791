package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/models"
)

// favoriteItem wraps a Favorite for use in a list
type favoriteItem struct {
	fav models.Favorite
}

// FilterValue implements list.Item
func (f favoriteItem) FilterValue() string {
	return f.fav.Name + " " + f.fav.Admin1 + " " + f.fav.Country
}

// Title implements list.DefaultItem
func (f favoriteItem) Title() string {
	return f.fav.Place()
}

// Description implements list.DefaultItem
func (f favoriteItem) Description() string {
	desc := fmt.Sprintf("%.4f, %.4f", f.fav.Lat, f.fav.Lon)
	if f.fav.FaceDeg != nil {
		desc += fmt.Sprintf(" • faces %s (%.0f°)",
			forecast.DegToCardinal(*f.fav.FaceDeg), *f.fav.FaceDeg)
	}
	return desc
}

// createFavoritesList creates a list.Model from favorites
func createFavoritesList(favs []models.Favorite, width, height int) list.Model {
	items := make([]list.Item, len(favs))
	for i, f := range favs {
		items[i] = favoriteItem{fav: f}
	}

	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 12
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Favorites"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return l
}

// renderFavoritesPane renders the favorites list pane
func (m Model) renderFavoritesPane(width int) string {
	if len(m.favorites) == 0 {
		content := titleStyle.Render("Favorites") + "\n\n" +
			mutedStyle.Render("No favorites yet — press F on a loaded spot to add it")
		return paneStyle.Width(width).Render(content)
	}

	return paneStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.favList.View()))
}
