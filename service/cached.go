package service

import (
	"context"
	"log/slog"
	"time"

	"quickshow-cli/model"
	"quickshow-cli/store"
)

// CachedSource serves show lookups from the on-disk cache while fresh and
// writes through on a miss. Movie listings always hit the wrapped source.
type CachedSource struct {
	next   Source
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSource(next Source, ttl time.Duration, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedSource{next: next, ttl: ttl, logger: logger}
}

func (c *CachedSource) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return c.next.ListMovies(ctx)
}

func (c *CachedSource) FindShowByID(ctx context.Context, id string) (model.Show, error) {
	if c.ttl > 0 {
		cached, fresh, err := store.LoadShowCache(id, c.ttl)
		if err != nil {
			c.logger.Warn("show cache unreadable", "id", id, "err", err)
		} else if fresh && cached.Movie.Id != "" {
			return cached, nil
		}
	}

	show, err := c.next.FindShowByID(ctx, id)
	if err != nil {
		return model.Show{}, err
	}
	if c.ttl > 0 {
		if err := store.SaveShowCache(id, show); err != nil {
			c.logger.Warn("show cache write failed", "id", id, "err", err)
		}
	}
	return show, nil
}
