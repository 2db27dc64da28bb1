package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/tattoo")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.Equal(t, time.UTC.String(), cfg.Location.String())
	assert.Equal(t, 3*time.Second, cfg.Calendar.ReadTimeout)
	assert.Equal(t, 512, cfg.Calendar.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.Calendar.CacheTTL)
	assert.False(t, cfg.Calendar.StrictReads)
	assert.Equal(t, 8, cfg.Calendar.ResolveConcurrency)
	assert.Equal(t, 4, cfg.WarmUp.Weeks)
	assert.Equal(t, 24*time.Hour, cfg.WarmUp.Interval)
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/tattoo")
	t.Setenv("ENV", "Production")
	t.Setenv("APP_TIMEZONE", "America/Toronto")
	t.Setenv("STRICT_READS", "true")
	t.Setenv("READ_TIMEOUT", "750ms")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "America/Toronto", cfg.Location.String())
	assert.True(t, cfg.Calendar.StrictReads)
	assert.Equal(t, 750*time.Millisecond, cfg.Calendar.ReadTimeout)
}

func TestParse_MissingDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_BadTimezone(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/tattoo")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_BadSampleRatio(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/tattoo")
	t.Setenv("OTEL_SAMPLING_RATIO", "1.5")

	_, err := Parse()
	assert.Error(t, err)
}
