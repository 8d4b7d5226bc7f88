package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"quickshow-cli/format"
	"quickshow-cli/model"
	"quickshow-cli/store"
)

// movieItem is the movie card: title on top, then year, the first two
// genres, runtime and rating.
type movieItem struct {
	movie  model.Movie
	recent bool
}

func (m movieItem) Title() string {
	return m.movie.Title
}

func (m movieItem) Description() string {
	parts := []string{}
	if m.recent {
		parts = append(parts, "Recent")
	}
	if year := format.ReleaseYear(m.movie.ReleaseDate); year != "" {
		parts = append(parts, year)
	}
	if genres := strings.Join(m.movie.GenreNames(2), " | "); genres != "" {
		parts = append(parts, genres)
	}
	parts = append(parts, format.Runtime(m.movie.Runtime))
	parts = append(parts, fmt.Sprintf("★ %.1f", m.movie.VoteAverage))
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join(append([]string{m.movie.Title}, m.movie.GenreNames(0)...), " "))
}

// buildMovieItems lists recently viewed movies first, then the rest in
// catalog order.
func buildMovieItems(movies []model.Movie) []list.Item {
	recents, _ := store.LoadRecentMovies()
	byID := make(map[string]model.Movie, len(movies))
	for _, movie := range movies {
		byID[movie.Id] = movie
	}

	items := make([]list.Item, 0, len(movies))
	used := map[string]bool{}
	for _, recent := range recents {
		movie, ok := byID[recent.ID]
		if !ok || used[movie.Id] {
			continue
		}
		items = append(items, movieItem{movie: movie, recent: true})
		used[movie.Id] = true
	}
	for _, movie := range movies {
		if used[movie.Id] {
			continue
		}
		items = append(items, movieItem{movie: movie})
		used[movie.Id] = true
	}
	return items
}

type dateItem struct {
	date  string
	slots int
}

func (d dateItem) Title() string {
	t, err := time.Parse(time.DateOnly, d.date)
	if err != nil {
		return d.date
	}
	return fmt.Sprintf("%s • %s", t.Format("Mon"), t.Format("02 Jan"))
}

func (d dateItem) Description() string {
	return fmt.Sprintf("%s • %d showtimes", d.date, d.slots)
}

func (d dateItem) FilterValue() string {
	return d.date
}

func buildDateItems(show model.Show) []list.Item {
	dates := show.Dates()
	items := make([]list.Item, 0, len(dates))
	for _, date := range dates {
		items = append(items, dateItem{date: date, slots: len(show.Slots(date))})
	}
	return items
}

func (m appModel) movieDetailView() string {
	movie := m.show.Movie
	title := lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render(movie.Title)
	lines := []string{title}
	if movie.Tagline != "" {
		lines = append(lines, lipgloss.NewStyle().Italic(true).Render(movie.Tagline))
	}
	lines = append(lines, hint(movieItem{movie: movie}.Description()))
	if movie.Overview != "" {
		width := 72
		if m.width > 0 {
			width = min(width, max(20, m.width-4))
		}
		lines = append(lines, "", lipgloss.NewStyle().Width(width).Render(movie.Overview))
	}
	return strings.Join(lines, "\n")
}
