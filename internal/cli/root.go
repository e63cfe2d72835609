package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rohmanhakim/parks-explorer/internal/build"
	"github.com/rohmanhakim/parks-explorer/internal/cachestore"
	"github.com/rohmanhakim/parks-explorer/internal/config"
	"github.com/rohmanhakim/parks-explorer/internal/extractor"
	"github.com/rohmanhakim/parks-explorer/internal/fetcher"
	"github.com/rohmanhakim/parks-explorer/internal/metadata"
	"github.com/rohmanhakim/parks-explorer/internal/pipeline"
	"github.com/rohmanhakim/parks-explorer/pkg/limiter"
	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

var (
	cfgFile    string
	cacheFile  string
	apiKey     string
	radius     int
	maxMatches int
	maxListed  int
	userAgent  string
	baseDelay  time.Duration
	jitter     time.Duration
	randomSeed int64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "parks-explorer",
	Version: build.FullVersion(),
	Short:   "Browse national recreational sites and nearby places.",
	Long: `parks-explorer is an interactive CLI that lists the national
recreational sites of a US state and, given a search API key, the places
near a chosen site.

Every page and search result is kept in a local cache file, so repeated
lookups are answered without touching the network.`,
	Run: func(cmd *cobra.Command, args []string) {
		metadata.InitLogger()

		cfg := InitConfig()

		p := buildPipeline(cfg)
		runInteractive(cmd, &p, cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache-file", "", "path of the local cache file")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "search API key (defaults to PARKS_EXPLORER_API_KEY)")
	rootCmd.PersistentFlags().IntVar(&radius, "radius", 0, "search radius around a site's postal code, in miles")
	rootCmd.PersistentFlags().IntVar(&maxMatches, "max-matches", 0, "maximum number of nearby places requested per search")
	rootCmd.PersistentFlags().IntVar(&maxListed, "max-listed", 0, "how many sites of a state listing are shown")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "user agent string for HTTP requests")
	rootCmd.PersistentFlags().DurationVar(&baseDelay, "base-delay", 0, "base delay between HTTP requests to the same host")
	rootCmd.PersistentFlags().DurationVar(&jitter, "jitter", 0, "random jitter added to base delay")
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "random-seed", 0, "seed for random number generation (0 for current time)")
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() config.Config {
	cfg, err := InitConfigWithError()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
	return cfg
}

// InitConfigWithError reads in config file and ENV variables if set, returning any errors.
// This makes it easier to test error cases.
func InitConfigWithError() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	// Build config from CLI flags using the With... functions with method chaining
	configBuilder := config.WithDefault()

	// Override with CLI flag values where provided
	if cacheFile != "" {
		configBuilder = configBuilder.WithCacheFile(cacheFile)
	}

	if apiKey != "" {
		configBuilder = configBuilder.WithAPIKey(apiKey)
	}

	if radius > 0 {
		configBuilder = configBuilder.WithRadius(radius)
	}

	if maxMatches > 0 {
		configBuilder = configBuilder.WithMaxMatches(maxMatches)
	}

	if maxListed > 0 {
		configBuilder = configBuilder.WithMaxListed(maxListed)
	}

	if userAgent != "" {
		configBuilder = configBuilder.WithUserAgent(userAgent)
	}

	if baseDelay > 0 {
		configBuilder = configBuilder.WithBaseDelay(baseDelay)
	}

	if jitter > 0 {
		configBuilder = configBuilder.WithJitter(jitter)
	}

	if randomSeed != 0 {
		configBuilder = configBuilder.WithRandomSeed(randomSeed)
	}

	return configBuilder.Build()
}

// buildPipeline wires the cache, fetcher and extractor for one session.
func buildPipeline(cfg config.Config) pipeline.Pipeline {
	sink := metadata.NewLogSink()

	rateLimiter := limiter.NewHostRateLimiter()
	rateLimiter.SetBaseDelay(cfg.BaseDelay())
	rateLimiter.SetJitter(cfg.Jitter())
	rateLimiter.SetRandomSeed(cfg.RandomSeed())

	store := cachestore.NewFileStore(cfg.CacheFile(), sink)

	fetch := fetcher.NewReadThroughFetcher(store, sink, rateLimiter)
	fetch.Init(&http.Client{Timeout: requestTimeout}, cfg.UserAgent())

	extract := extractor.NewPageExtractor(sink)

	return pipeline.NewPipeline(&fetch, &extract, cfg)
}

func ResetFlags() {
	cfgFile = ""
	cacheFile = ""
	apiKey = ""
	radius = 0
	maxMatches = 0
	maxListed = 0
	userAgent = ""
	baseDelay = 0
	jitter = 0
	randomSeed = 0
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetCacheFileForTest(path string) {
	cacheFile = path
}

func SetAPIKeyForTest(key string) {
	apiKey = key
}

func SetRadiusForTest(r int) {
	radius = r
}

func SetMaxListedForTest(n int) {
	maxListed = n
}
