package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"adlibraryscraper/internal/core/domain"
)

var (
	ErrMissingAPIToken = errors.New("APIFY_API_TOKEN is not set")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Apify    Apify    `mapstructure:",squash"`
	Search   Search   `mapstructure:",squash"`
	Download Download `mapstructure:",squash"`
	Schedule Schedule `mapstructure:",squash"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	MediaDir       string `mapstructure:"media_dir"`
	SaveRawDataset bool   `mapstructure:"save_raw_dataset"`
}

type Apify struct {
	APIToken     string        `mapstructure:"apify_api_token"`
	BaseURL      string        `mapstructure:"apify_base_url"`
	ActorID      string        `mapstructure:"apify_actor_id"`
	PollInterval time.Duration `mapstructure:"apify_poll_interval"`
	UseProxy     bool          `mapstructure:"apify_use_proxy"`
}

type Search struct {
	Competitor  string `mapstructure:"competitor_name"`
	CountryCode string `mapstructure:"country_code"`
	MaxAds      int    `mapstructure:"max_ads"`
}

type Download struct {
	Timeout time.Duration `mapstructure:"download_timeout"`
	Workers int           `mapstructure:"download_workers"`
}

type Schedule struct {
	Cron string `mapstructure:"schedule_cron"`
}

// Query returns the ad-library search described by the configuration.
func (c *Config) Query() domain.SearchQuery {
	return domain.SearchQuery{
		Competitor:  c.Search.Competitor,
		CountryCode: c.Search.CountryCode,
		MaxItems:    c.Search.MaxAds,
		UseProxy:    c.Apify.UseProxy,
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"competitor": "competitor_name",
	"country":    "country_code",
	"max-ads":    "max_ads",
	"media-dir":  "media_dir",
	"actor":      "apify_actor_id",
	"workers":    "download_workers",
	"save-raw":   "save_raw_dataset",
	"cron":       "schedule_cron",
	"log-level":  "log_level",
}

// RegisterFlags declares the command line overrides on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("competitor", "", "competitor name to search in the ad library")
	fs.String("country", "", "two-letter country code")
	fs.Int("max-ads", 0, "maximum number of ads to scrape")
	fs.String("media-dir", "", "base directory for run folders")
	fs.String("actor", "", "Apify actor id")
	fs.Int("workers", 0, "parallel media downloads (1 = sequential)")
	fs.Bool("save-raw", false, "save the raw dataset JSON into the run folder")
	fs.String("cron", "", "cron expression to repeat the run; empty runs once")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MEDIA_DIR", "media")
	v.SetDefault("SAVE_RAW_DATASET", false)

	v.SetDefault("APIFY_API_TOKEN", "")
	v.SetDefault("APIFY_BASE_URL", "https://api.apify.com/v2")
	v.SetDefault("APIFY_ACTOR_ID", "curious_coder/facebook-ads-library-scraper")
	v.SetDefault("APIFY_POLL_INTERVAL", "3s")
	v.SetDefault("APIFY_USE_PROXY", true)

	v.SetDefault("COMPETITOR_NAME", "Shopify")
	v.SetDefault("COUNTRY_CODE", "US")
	v.SetDefault("MAX_ADS", 10)

	v.SetDefault("DOWNLOAD_TIMEOUT", "30m")
	v.SetDefault("DOWNLOAD_WORKERS", 1)

	v.SetDefault("SCHEDULE_CRON", "")
}

// Load builds the configuration from defaults, the optional .env file, the
// environment and the flags in fs (only flags that were set override).
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Apify.APIToken = strings.TrimSpace(c.Apify.APIToken)
	c.Apify.BaseURL = strings.TrimRight(c.Apify.BaseURL, "/")
	c.Search.Competitor = strings.TrimSpace(c.Search.Competitor)
	c.Search.CountryCode = strings.ToUpper(strings.TrimSpace(c.Search.CountryCode))
	c.App.LogLevel = strings.ToLower(strings.TrimSpace(c.App.LogLevel))
	c.Schedule.Cron = strings.TrimSpace(c.Schedule.Cron)
}

// Validate reports the first problem that makes a run impossible.
func (c *Config) Validate() error {
	if c.Apify.APIToken == "" {
		return ErrMissingAPIToken
	}
	if c.Search.Competitor == "" {
		return errors.Wrap(ErrInvalidConfig, "competitor name is empty")
	}
	if len(c.Search.CountryCode) != 2 {
		return errors.Wrapf(ErrInvalidConfig, "country code %q must have two letters", c.Search.CountryCode)
	}
	if c.Search.MaxAds <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max ads must be positive, got %d", c.Search.MaxAds)
	}
	if c.Download.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "download workers must be at least 1, got %d", c.Download.Workers)
	}
	if c.Apify.PollInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "poll interval must be positive, got %s", c.Apify.PollInterval)
	}
	return nil
}

// loadEnvFile loads .env from the working directory or its parent. Variables
// already present in the environment win.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Debug("cannot resolve working directory, skipping .env")
		return
	}

	for _, location := range []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	} {
		if err := godotenv.Load(location); err == nil {
			logrus.WithField("path", location).Debug("loaded .env file")
			return
		}
	}
	logrus.Debug("no .env file found, using process environment")
}
