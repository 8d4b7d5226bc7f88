package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"quickshow-cli/model"
)

//go:embed fixtures/shows.json
var fixtureData []byte

type fixtureFile struct {
	Shows    []model.Movie               `json:"shows"`
	DateTime map[string][]model.TimeSlot `json:"dateTime"`
}

// FixtureSource serves the bundled demo catalog. Every movie shares the same
// showtime table.
type FixtureSource struct {
	movies   []model.Movie
	dateTime map[string][]model.TimeSlot
}

// NewFixtureSource parses the embedded catalog.
func NewFixtureSource() (*FixtureSource, error) {
	return ParseFixtures(fixtureData)
}

func ParseFixtures(data []byte) (*FixtureSource, error) {
	var file fixtureFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &FixtureSource{movies: file.Shows, dateTime: file.DateTime}, nil
}

func (f *FixtureSource) ListMovies(ctx context.Context) ([]model.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	movies := make([]model.Movie, len(f.movies))
	copy(movies, f.movies)
	return movies, nil
}

func (f *FixtureSource) FindShowByID(ctx context.Context, id string) (model.Show, error) {
	if err := ctx.Err(); err != nil {
		return model.Show{}, err
	}
	id = strings.TrimSpace(id)
	for _, movie := range f.movies {
		if movie.Id == id {
			return model.Show{Movie: movie, DateTime: f.dateTime}, nil
		}
	}
	return model.Show{}, fmt.Errorf("%w: %s", ErrShowNotFound, id)
}
