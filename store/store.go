package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"quickshow-cli/model"
)

const (
	appDir          = "quickshow-cli"
	maxRecentMovies = 8
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

type RecentMovie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type movieHistory struct {
	Movies []RecentMovie `json:"movies"`
}

// LoadShowCache returns the cached show for id and whether it is younger
// than ttl. A missing entry yields a zero show and no error.
func LoadShowCache(id string, ttl time.Duration) (model.Show, bool, error) {
	path, err := showCachePath(id)
	if err != nil {
		return model.Show{}, false, err
	}
	cache, err := loadCache[model.Show](path)
	if err != nil {
		return model.Show{}, false, err
	}
	if cache.UpdatedAt.IsZero() {
		return model.Show{}, false, nil
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= ttl, nil
}

func SaveShowCache(id string, show model.Show) error {
	path, err := showCachePath(id)
	if err != nil {
		return err
	}
	return saveCache(path, show)
}

func LoadRecentMovies() ([]RecentMovie, error) {
	path, err := configPath("recent_movies.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history movieHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid movie history format")
	}
	return history.Movies, nil
}

// RememberMovie moves movie to the front of the recently viewed list.
func RememberMovie(movie model.Movie) error {
	if strings.TrimSpace(movie.Id) == "" {
		return errors.New("movie id is required")
	}
	history, _ := LoadRecentMovies()
	next := []RecentMovie{{ID: movie.Id, Title: movie.Title}}

	for _, existing := range history {
		if existing.ID == movie.Id {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentMovies {
			break
		}
	}

	return saveRecentMovies(next)
}

func showCachePath(id string) (string, error) {
	key := slug.Make(id)
	if key == "" {
		return "", fmt.Errorf("invalid show id %q", id)
	}
	return cachePath(fmt.Sprintf("show_%s.json", key))
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cache := cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func saveRecentMovies(movies []RecentMovie) error {
	path, err := configPath("recent_movies.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(movieHistory{Movies: movies}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
