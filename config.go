// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/audsfx/backend/soft"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment keys read by LoadConfig.
const (
	EnvPoolSize       = "AUDSFX_POOL_SIZE"
	EnvDistanceFactor = "AUDSFX_DISTANCE_FACTOR"
	EnvSampleRate     = "AUDSFX_SAMPLE_RATE"
	EnvDriver         = "AUDSFX_DRIVER"
	EnvDownmix        = "AUDSFX_DOWNMIX"
	EnvLogLevel       = "AUDSFX_LOG_LEVEL"
)

const (
	minSampleRate = 8000
	maxSampleRate = 192000
)

// Config holds the settings New and Open take. Start from DefaultConfig or
// LoadConfig.
type Config struct {
	// PoolSize is the number of round-robin sound-effect voices.
	PoolSize int
	// DistanceFactor multiplies every position and velocity handed to the
	// device.
	DistanceFactor float32
	// SampleRate of the output device. Ignored by New, which adopts a device.
	SampleRate int
	// Driver is oto, malgo or none.
	Driver soft.Driver
	// DownmixToMono folds stereo files to mono on load so they can be
	// positioned.
	DownmixToMono bool
	LogLevel      string
}

// DefaultConfig is a 30-voice pool with a distance factor of 3 playing
// through oto at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		PoolSize:       DefaultPoolSize,
		DistanceFactor: DefaultDistanceFactor,
		SampleRate:     soft.DefaultSampleRate,
		Driver:         soft.DriverOto,
		DownmixToMono:  true,
		LogLevel:       zerolog.LevelInfoValue,
	}
}

// LoadConfig starts from DefaultConfig, applies the AUDSFX_* keys found in
// the given .env files (".env" when none are given, ignored if missing),
// then the process environment, which wins over the files.
func LoadConfig(files ...string) (Config, error) {
	vars := map[string]string{}

	if len(files) == 0 {
		read, err := godotenv.Read()
		switch {
		case err == nil:
			vars = read
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("%w: reading .env: %w", ErrInvalidConfig, err)
		}
	} else {
		read, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, fmt.Errorf("%w: reading %s: %w", ErrInvalidConfig, strings.Join(files, ","), err)
		}
		vars = read
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := vars[key]
		return v, ok && v != ""
	}

	cfg := DefaultConfig()

	if v, ok := lookup(EnvPoolSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvPoolSize, err)
		}
		cfg.PoolSize = n
	}
	if v, ok := lookup(EnvDistanceFactor); ok {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvDistanceFactor, err)
		}
		cfg.DistanceFactor = float32(f)
	}
	if v, ok := lookup(EnvSampleRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSampleRate, err)
		}
		cfg.SampleRate = n
	}
	if v, ok := lookup(EnvDriver); ok {
		cfg.Driver = soft.Driver(strings.ToLower(v))
	}
	if v, ok := lookup(EnvDownmix); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvDownmix, err)
		}
		cfg.DownmixToMono = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.PoolSize < 1 {
		return fmt.Errorf("%w: pool size %d", ErrInvalidConfig, c.PoolSize)
	}
	f := float64(c.DistanceFactor)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: distance factor %v", ErrInvalidConfig, c.DistanceFactor)
	}
	if c.SampleRate < minSampleRate || c.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	switch c.Driver {
	case soft.DriverOto, soft.DriverMalgo, soft.DriverNone:
	default:
		return fmt.Errorf("%w: driver %q", ErrInvalidConfig, c.Driver)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Level is the parsed LogLevel; invalid values fall back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
