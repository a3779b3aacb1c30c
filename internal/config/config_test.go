package config

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"LOG_LEVEL", "MEDIA_DIR", "SAVE_RAW_DATASET",
	"APIFY_API_TOKEN", "APIFY_BASE_URL", "APIFY_ACTOR_ID", "APIFY_POLL_INTERVAL", "APIFY_USE_PROXY",
	"COMPETITOR_NAME", "COUNTRY_CODE", "MAX_ADS",
	"DOWNLOAD_TIMEOUT", "DOWNLOAD_WORKERS", "SCHEDULE_CRON",
}

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanEnv(t)
	t.Setenv("APIFY_API_TOKEN", "token")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Apify.APIToken)
	assert.Equal(t, "https://api.apify.com/v2", cfg.Apify.BaseURL)
	assert.Equal(t, "curious_coder/facebook-ads-library-scraper", cfg.Apify.ActorID)
	assert.Equal(t, 3*time.Second, cfg.Apify.PollInterval)
	assert.True(t, cfg.Apify.UseProxy)
	assert.Equal(t, "Shopify", cfg.Search.Competitor)
	assert.Equal(t, "US", cfg.Search.CountryCode)
	assert.Equal(t, 10, cfg.Search.MaxAds)
	assert.Equal(t, "media", cfg.App.MediaDir)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.App.SaveRawDataset)
	assert.Equal(t, 30*time.Minute, cfg.Download.Timeout)
	assert.Equal(t, 1, cfg.Download.Workers)
	assert.Empty(t, cfg.Schedule.Cron)
}

func TestLoadMissingToken(t *testing.T) {
	cleanEnv(t)

	_, err := Load(nil)
	assert.Equal(t, ErrMissingAPIToken, err)
}

func TestLoadFromEnv(t *testing.T) {
	cleanEnv(t)
	t.Setenv("APIFY_API_TOKEN", " token ")
	t.Setenv("COMPETITOR_NAME", "Acme")
	t.Setenv("COUNTRY_CODE", "gb")
	t.Setenv("MAX_ADS", "25")
	t.Setenv("DOWNLOAD_TIMEOUT", "90s")
	t.Setenv("DOWNLOAD_WORKERS", "4")
	t.Setenv("APIFY_USE_PROXY", "false")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Apify.APIToken)
	assert.Equal(t, "Acme", cfg.Search.Competitor)
	assert.Equal(t, "GB", cfg.Search.CountryCode)
	assert.Equal(t, 25, cfg.Search.MaxAds)
	assert.Equal(t, 90*time.Second, cfg.Download.Timeout)
	assert.Equal(t, 4, cfg.Download.Workers)
	assert.False(t, cfg.Apify.UseProxy)
}

func TestFlagsOverrideEnv(t *testing.T) {
	cleanEnv(t)
	t.Setenv("APIFY_API_TOKEN", "token")
	t.Setenv("COMPETITOR_NAME", "FromEnv")
	t.Setenv("MAX_ADS", "5")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--competitor", "FromFlag", "--country", "de", "--save-raw"}))

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "FromFlag", cfg.Search.Competitor)
	assert.Equal(t, "DE", cfg.Search.CountryCode)
	assert.Equal(t, 5, cfg.Search.MaxAds, "unset flag must not hide the env value")
	assert.True(t, cfg.App.SaveRawDataset)
}

func TestQuery(t *testing.T) {
	cleanEnv(t)
	t.Setenv("APIFY_API_TOKEN", "token")

	cfg, err := Load(nil)
	require.NoError(t, err)

	q := cfg.Query()
	assert.Equal(t, "Shopify", q.Competitor)
	assert.Equal(t, "US", q.CountryCode)
	assert.Equal(t, 10, q.MaxItems)
	assert.True(t, q.UseProxy)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Apify:    Apify{APIToken: "t", PollInterval: time.Second},
			Search:   Search{Competitor: "Shopify", CountryCode: "US", MaxAds: 1},
			Download: Download{Workers: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty competitor", func(c *Config) { c.Search.Competitor = "" }},
		{"long country", func(c *Config) { c.Search.CountryCode = "USA" }},
		{"zero max ads", func(c *Config) { c.Search.MaxAds = 0 }},
		{"zero workers", func(c *Config) { c.Download.Workers = 0 }},
		{"zero poll interval", func(c *Config) { c.Apify.PollInterval = 0 }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
