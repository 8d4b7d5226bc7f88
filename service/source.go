package service

import (
	"context"
	"errors"
	"net/http"

	"quickshow-cli/model"
)

var ErrShowNotFound = errors.New("show not found")

// Source looks up the movies on display and their showtimes.
type Source interface {
	ListMovies(ctx context.Context) ([]model.Movie, error)
	FindShowByID(ctx context.Context, id string) (model.Show, error)
}

// IsNotFound reports whether err means the requested show does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrShowNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}
