package store

import (
	"testing"
	"time"

	"quickshow-cli/model"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)
}

func TestShowCache_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	show, fresh, err := LoadShowCache("324544", time.Minute)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if fresh || show.Movie.Id != "" {
		t.Fatalf("expected empty cache, got %+v (fresh=%v)", show, fresh)
	}

	want := model.Show{
		Movie: model.Movie{Id: "324544", Title: "In the Lost Lands"},
		DateTime: map[string][]model.TimeSlot{
			"2025-07-24": {{Time: "2025-07-24T01:00:00.000Z", ShowId: "a"}},
		},
	}
	if err := SaveShowCache("324544", want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	show, fresh, err = LoadShowCache("324544", time.Minute)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !fresh {
		t.Fatal("expected cache to be fresh")
	}
	if show.Movie.Title != want.Movie.Title || len(show.Slots("2025-07-24")) != 1 {
		t.Fatalf("unexpected cached show: %+v", show)
	}

	_, fresh, err = LoadShowCache("324544", 0)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if fresh {
		t.Fatal("expected zero ttl to report stale")
	}
}

func TestShowCache_InvalidID(t *testing.T) {
	setTestConfigDir(t)

	if err := SaveShowCache("   ", model.Show{}); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestRememberMovie_MovesToFront(t *testing.T) {
	setTestConfigDir(t)

	for _, movie := range []model.Movie{
		{Id: "1", Title: "One"},
		{Id: "2", Title: "Two"},
		{Id: "1", Title: "One"},
	} {
		if err := RememberMovie(movie); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	recents, err := LoadRecentMovies()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(recents) != 2 || recents[0].ID != "1" || recents[1].ID != "2" {
		t.Fatalf("unexpected history: %+v", recents)
	}
}

func TestRememberMovie_CapsHistory(t *testing.T) {
	setTestConfigDir(t)

	for i := 0; i < maxRecentMovies+3; i++ {
		id := string(rune('a' + i))
		if err := RememberMovie(model.Movie{Id: id, Title: id}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	recents, err := LoadRecentMovies()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(recents) != maxRecentMovies {
		t.Fatalf("expected %d recents, got %d", maxRecentMovies, len(recents))
	}
	if recents[0].ID != string(rune('a'+maxRecentMovies+2)) {
		t.Fatalf("expected newest first, got %+v", recents[0])
	}
}

func TestRememberMovie_RequiresID(t *testing.T) {
	setTestConfigDir(t)

	if err := RememberMovie(model.Movie{Title: "No id"}); err == nil {
		t.Fatal("expected error for empty id")
	}
}
