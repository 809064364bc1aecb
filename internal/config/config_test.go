package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, key := range []string{
		"APP_ENV", "HTTP_HOST", "HTTP_PORT", "HTTP_READ_HEADER_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT",
		"LIVENESS_ENDPOINT", "SEED_DEMO_HOTEL", "DEMO_HOTEL_NAME", "DEMO_BASE_PRICE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "localhost", cfg.HTTPHost)
	assert.Equal(t, "8092", cfg.HTTPPort)
	assert.Equal(t, 20*time.Second, cfg.HTTPReadHeaderTimeout)
	assert.Equal(t, 4*time.Second, cfg.HTTPShutdownTimeout)
	assert.Equal(t, "/liveness", cfg.LivenessEndpoint)
	assert.True(t, cfg.SeedDemoHotel)
	assert.Equal(t, "Grand Budapest", cfg.DemoHotelName)
	assert.Equal(t, 1299.0, cfg.DemoBasePrice)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("SEED_DEMO_HOTEL", "false")
	t.Setenv("DEMO_BASE_PRICE", "2500.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.HTTPShutdownTimeout)
	assert.False(t, cfg.SeedDemoHotel)
	assert.Equal(t, 2500.5, cfg.DemoBasePrice)
}

func TestLoad_Malformed(t *testing.T) {
	t.Chdir(t.TempDir())

	for key, value := range map[string]string{
		"HTTP_READ_HEADER_TIMEOUT": "soon",
		"SEED_DEMO_HOTEL":          "maybe",
		"DEMO_BASE_PRICE":          "cheap",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}
