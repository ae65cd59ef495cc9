// SPDX-License-Identifier: EPL-2.0

package audsfx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audsfx"
	"github.com/ik5/audsfx/backend/soft"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every AUDSFX_* key for the test; empty values count as
// unset.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		audsfx.EnvPoolSize, audsfx.EnvDistanceFactor, audsfx.EnvSampleRate,
		audsfx.EnvDriver, audsfx.EnvDownmix, audsfx.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audsfx.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := audsfx.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30, cfg.PoolSize)
	assert.Equal(t, float32(3), cfg.DistanceFactor)
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, soft.DriverOto, cfg.Driver)
	assert.True(t, cfg.DownmixToMono)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadConfig_NoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := audsfx.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, audsfx.DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)

	path := writeEnv(t, `
# effect pool
AUDSFX_POOL_SIZE=8
AUDSFX_DISTANCE_FACTOR=1.5
AUDSFX_SAMPLE_RATE=48000
AUDSFX_DRIVER=MALGO
AUDSFX_DOWNMIX=false
AUDSFX_LOG_LEVEL=debug
`)

	cfg, err := audsfx.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.PoolSize)
	assert.Equal(t, float32(1.5), cfg.DistanceFactor)
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, soft.DriverMalgo, cfg.Driver)
	assert.False(t, cfg.DownmixToMono)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())

	_, present := os.LookupEnv("AUDSFX_POOL_SIZE")
	assert.True(t, present)
	assert.Empty(t, os.Getenv("AUDSFX_POOL_SIZE"), "files do not leak into the environment")
}

func TestLoadConfig_EnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(audsfx.EnvPoolSize, "12")
	t.Setenv(audsfx.EnvDriver, "none")

	cfg, err := audsfx.LoadConfig(writeEnv(t, "AUDSFX_POOL_SIZE=8\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.PoolSize)
	assert.Equal(t, soft.DriverNone, cfg.Driver)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"pool not a number", "AUDSFX_POOL_SIZE=many"},
		{"pool zero", "AUDSFX_POOL_SIZE=0"},
		{"factor", "AUDSFX_DISTANCE_FACTOR=-2"},
		{"factor not a number", "AUDSFX_DISTANCE_FACTOR=far"},
		{"rate", "AUDSFX_SAMPLE_RATE=100"},
		{"driver", "AUDSFX_DRIVER=alsa"},
		{"downmix", "AUDSFX_DOWNMIX=maybe"},
		{"log level", "AUDSFX_LOG_LEVEL=loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := audsfx.LoadConfig(writeEnv(t, tt.env+"\n"))
			assert.ErrorIs(t, err, audsfx.ErrInvalidConfig)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)

		_, err := audsfx.LoadConfig(filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, audsfx.ErrInvalidConfig)
	})
}
