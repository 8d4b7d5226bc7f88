package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envAPIURL, envTimezone, envToastMS, envCacheTTL, envRequestTimeout, envDebug} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.UseFixtures())
	assert.Equal(t, 2*time.Second, cfg.ToastDuration)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envAPIURL, "https://shows.example.com/api/")
	t.Setenv(envTimezone, "UTC")
	t.Setenv(envToastMS, "1500")
	t.Setenv(envCacheTTL, "1h")
	t.Setenv(envRequestTimeout, "3s")
	t.Setenv(envDebug, "1")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.UseFixtures())
	assert.Equal(t, "https://shows.example.com/api", cfg.APIURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.ToastDuration)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "UTC", cfg.Location.String())
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		envAPIURL:         "not a url",
		envTimezone:       "Mars/Olympus",
		envToastMS:        "soon",
		envCacheTTL:       "forever",
		envRequestTimeout: "0s",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestFinalize_RejectsNonPositiveToast(t *testing.T) {
	cfg := Config{ToastDuration: 0, RequestTimeout: time.Second}
	assert.Error(t, cfg.Finalize())
}
