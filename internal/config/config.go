package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// apiKeyEnv supplies the search-service credential when neither a flag
// nor a config file sets one.
const apiKeyEnv = "PARKS_EXPLORER_API_KEY"

type Config struct {
	//===============
	//  Data sources
	//===============
	// Origin of the site-directory service; also the prefix for every
	// relative link scraped from its pages.
	directoryDomain string
	// Geographic-search endpoint (radius search).
	searchEndpoint string
	// Access credential for the search service.
	apiKey string

	//===============
	// Search
	//===============
	// Search radius around a site's postal code, in miles.
	radius int
	// Maximum number of search hits requested per query.
	maxMatches int

	//===============
	// Cache
	//===============
	// Path of the single file holding the persisted key→payload mapping.
	cacheFile string

	//===============
	// Politeness
	//===============
	// Minimum waiting time enforced between two live requests to the
	// same host. Zero disables the delay.
	baseDelay time.Duration
	// Randomized variation added on top of the base delay.
	jitter time.Duration
	// Controls the random number generator
	randomSeed int64

	//===============
	// Presentation
	//===============
	// How many sites of a state listing are shown to the user.
	maxListed int
	// User agent sent with every live request. In raw string
	userAgent string
}

type configDTO struct {
	DirectoryDomain string        `json:"directoryDomain,omitempty"`
	SearchEndpoint  string        `json:"searchEndpoint,omitempty"`
	APIKey          string        `json:"apiKey,omitempty"`
	Radius          int           `json:"radius,omitempty"`
	MaxMatches      int           `json:"maxMatches,omitempty"`
	CacheFile       string        `json:"cacheFile,omitempty"`
	BaseDelay       time.Duration `json:"baseDelay,omitempty"`
	Jitter          time.Duration `json:"jitter,omitempty"`
	RandomSeed      int64         `json:"randomSeed,omitempty"`
	MaxListed       int           `json:"maxListed,omitempty"`
	UserAgent       string        `json:"userAgent,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg, err := WithDefault().Build()
	if err != nil {
		return Config{}, err
	}

	// Only override when a non-zero value is provided.
	if dto.DirectoryDomain != "" {
		cfg.directoryDomain = dto.DirectoryDomain
	}
	if dto.SearchEndpoint != "" {
		cfg.searchEndpoint = dto.SearchEndpoint
	}
	if dto.APIKey != "" {
		cfg.apiKey = dto.APIKey
	}
	if dto.Radius != 0 {
		cfg.radius = dto.Radius
	}
	if dto.MaxMatches != 0 {
		cfg.maxMatches = dto.MaxMatches
	}
	if dto.CacheFile != "" {
		cfg.cacheFile = dto.CacheFile
	}
	if dto.BaseDelay != 0 {
		cfg.baseDelay = dto.BaseDelay
	}
	if dto.Jitter != 0 {
		cfg.jitter = dto.Jitter
	}
	if dto.RandomSeed != 0 {
		cfg.randomSeed = dto.RandomSeed
	}
	if dto.MaxListed != 0 {
		cfg.maxListed = dto.MaxListed
	}
	if dto.UserAgent != "" {
		cfg.userAgent = dto.UserAgent
	}

	return cfg, nil
}

func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	err = json.Unmarshal(configContent, &cfgDTO)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

// WithDefault creates a new Config with default values for all fields.
// The API key defaults to the PARKS_EXPLORER_API_KEY environment
// variable; it may be empty, in which case only the nearby-places
// operation is unavailable.
func WithDefault() *Config {
	defaultConfig := Config{
		directoryDomain: "https://www.nps.gov",
		searchEndpoint:  "http://www.mapquestapi.com/search/v2/radius",
		apiKey:          os.Getenv(apiKeyEnv),
		radius:          10,
		maxMatches:      10,
		cacheFile:       "parks_cache.json",
		baseDelay:       0,
		jitter:          0,
		randomSeed:      time.Now().UnixNano(),
		maxListed:       10,
		userAgent:       "parks-explorer/1.0",
	}
	return &defaultConfig
}

func (c *Config) WithDirectoryDomain(domain string) *Config {
	c.directoryDomain = domain
	return c
}

func (c *Config) WithSearchEndpoint(endpoint string) *Config {
	c.searchEndpoint = endpoint
	return c
}

func (c *Config) WithAPIKey(key string) *Config {
	c.apiKey = key
	return c
}

func (c *Config) WithRadius(radius int) *Config {
	c.radius = radius
	return c
}

func (c *Config) WithMaxMatches(maxMatches int) *Config {
	c.maxMatches = maxMatches
	return c
}

func (c *Config) WithCacheFile(path string) *Config {
	c.cacheFile = path
	return c
}

func (c *Config) WithBaseDelay(delay time.Duration) *Config {
	c.baseDelay = delay
	return c
}

func (c *Config) WithJitter(jitter time.Duration) *Config {
	c.jitter = jitter
	return c
}

func (c *Config) WithRandomSeed(seed int64) *Config {
	c.randomSeed = seed
	return c
}

func (c *Config) WithMaxListed(maxListed int) *Config {
	c.maxListed = maxListed
	return c
}

func (c *Config) WithUserAgent(agent string) *Config {
	c.userAgent = agent
	return c
}

func (c *Config) Build() (Config, error) {
	if c.directoryDomain == "" {
		return Config{}, fmt.Errorf("%w: directoryDomain cannot be empty", ErrInvalidConfig)
	}
	if c.searchEndpoint == "" {
		return Config{}, fmt.Errorf("%w: searchEndpoint cannot be empty", ErrInvalidConfig)
	}
	if c.cacheFile == "" {
		return Config{}, fmt.Errorf("%w: cacheFile cannot be empty", ErrInvalidConfig)
	}
	if c.radius <= 0 {
		return Config{}, fmt.Errorf("%w: radius must be positive", ErrInvalidConfig)
	}
	if c.maxMatches <= 0 {
		return Config{}, fmt.Errorf("%w: maxMatches must be positive", ErrInvalidConfig)
	}
	if c.maxListed <= 0 {
		return Config{}, fmt.Errorf("%w: maxListed must be positive", ErrInvalidConfig)
	}
	return *c, nil
}

func (c Config) DirectoryDomain() string {
	return c.directoryDomain
}

func (c Config) SearchEndpoint() string {
	return c.searchEndpoint
}

func (c Config) APIKey() string {
	return c.apiKey
}

func (c Config) Radius() int {
	return c.radius
}

func (c Config) MaxMatches() int {
	return c.maxMatches
}

func (c Config) CacheFile() string {
	return c.cacheFile
}

func (c Config) BaseDelay() time.Duration {
	return c.baseDelay
}

func (c Config) Jitter() time.Duration {
	return c.jitter
}

func (c Config) RandomSeed() int64 {
	return c.randomSeed
}

func (c Config) MaxListed() int {
	return c.maxListed
}

func (c Config) UserAgent() string {
	return c.userAgent
}
