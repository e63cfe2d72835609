package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefault(t *testing.T) {
	cfg, err := WithDefault().Build()
	require.NoError(t, err)

	assert.Equal(t, "https://www.nps.gov", cfg.DirectoryDomain())
	assert.Equal(t, "http://www.mapquestapi.com/search/v2/radius", cfg.SearchEndpoint())
	assert.Equal(t, 10, cfg.Radius())
	assert.Equal(t, 10, cfg.MaxMatches())
	assert.Equal(t, "parks_cache.json", cfg.CacheFile())
	assert.Equal(t, time.Duration(0), cfg.BaseDelay())
	assert.Equal(t, 10, cfg.MaxListed())
	assert.Equal(t, "parks-explorer/1.0", cfg.UserAgent())
}

func TestWithDefault_APIKeyFromEnv(t *testing.T) {
	t.Setenv(apiKeyEnv, "env-key")

	cfg, err := WithDefault().Build()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey())
}

func TestBuilderOverrides(t *testing.T) {
	cfg, err := WithDefault().
		WithDirectoryDomain("https://parks.example.com").
		WithSearchEndpoint("https://search.example.com/radius").
		WithAPIKey("secret").
		WithRadius(25).
		WithMaxMatches(5).
		WithCacheFile("alt_cache.json").
		WithBaseDelay(2 * time.Second).
		WithJitter(500 * time.Millisecond).
		WithRandomSeed(42).
		WithMaxListed(3).
		WithUserAgent("custom/0.1").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "https://parks.example.com", cfg.DirectoryDomain())
	assert.Equal(t, "https://search.example.com/radius", cfg.SearchEndpoint())
	assert.Equal(t, "secret", cfg.APIKey())
	assert.Equal(t, 25, cfg.Radius())
	assert.Equal(t, 5, cfg.MaxMatches())
	assert.Equal(t, "alt_cache.json", cfg.CacheFile())
	assert.Equal(t, 2*time.Second, cfg.BaseDelay())
	assert.Equal(t, 500*time.Millisecond, cfg.Jitter())
	assert.Equal(t, int64(42), cfg.RandomSeed())
	assert.Equal(t, 3, cfg.MaxListed())
	assert.Equal(t, "custom/0.1", cfg.UserAgent())
}

func TestBuild_Invalid(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
	}{
		{"empty domain", WithDefault().WithDirectoryDomain("")},
		{"empty search endpoint", WithDefault().WithSearchEndpoint("")},
		{"empty cache file", WithDefault().WithCacheFile("")},
		{"zero radius", WithDefault().WithRadius(0)},
		{"negative radius", WithDefault().WithRadius(-1)},
		{"zero max matches", WithDefault().WithMaxMatches(0)},
		{"zero max listed", WithDefault().WithMaxListed(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Build()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"directoryDomain": "https://parks.example.com",
		"apiKey": "file-key",
		"radius": 30,
		"maxListed": 4
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := WithConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://parks.example.com", cfg.DirectoryDomain())
	assert.Equal(t, "file-key", cfg.APIKey())
	assert.Equal(t, 30, cfg.Radius())
	assert.Equal(t, 4, cfg.MaxListed())

	// Fields the file omits keep their defaults.
	assert.Equal(t, "http://www.mapquestapi.com/search/v2/radius", cfg.SearchEndpoint())
	assert.Equal(t, "parks_cache.json", cfg.CacheFile())
	assert.Equal(t, 10, cfg.MaxMatches())
}

func TestWithConfigFile_DoesNotExist(t *testing.T) {
	_, err := WithConfigFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrFileDoesNotExist)
}

func TestWithConfigFile_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := WithConfigFile(path)
	assert.ErrorIs(t, err, ErrConfigParsingFail)
}
