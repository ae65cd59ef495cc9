// SPDX-License-Identifier: EPL-2.0

package audsfx_test

import (
	"testing"
	"time"

	"github.com/ik5/audsfx"
	"github.com/ik5/audsfx/backend/soft"
	"github.com/ik5/audsfx/pcm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer_Defaults(t *testing.T) {
	t.Parallel()

	dev := soft.New(soft.Options{})
	b, err := audsfx.NewBuffer(dev, tone(441))
	require.NoError(t, err)

	minDist, maxDist := b.AttenuationRange()
	assert.Equal(t, audsfx.DefaultMinDistance, minDist)
	assert.Equal(t, audsfx.DefaultMaxDistance, maxDist)
	assert.Equal(t, audsfx.MaxVolume, b.Volume())
	assert.False(t, b.Is2D())
	assert.False(t, b.Released())
	assert.Equal(t, pcm.Mono16, b.Format())
	assert.Equal(t, 44100, b.SampleRate())
	assert.Equal(t, 10*time.Millisecond, b.Duration())
}

func TestNewBuffer_Rejects(t *testing.T) {
	t.Parallel()

	dev := soft.New(soft.Options{})

	tests := []struct {
		name string
		p    pcm.Payload
	}{
		{"empty", pcm.Payload{Format: pcm.Mono16, SampleRate: 44100}},
		{"unknown format", pcm.Payload{Format: 7, SampleRate: 44100, Data: []byte{0, 0}}},
		{"no rate", pcm.Payload{Format: pcm.Mono8, Data: []byte{128}}},
		{"partial frame", pcm.Payload{Format: pcm.Stereo16, SampleRate: 8000, Data: []byte{0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := audsfx.NewBuffer(dev, tt.p)
			assert.ErrorIs(t, err, audsfx.ErrDecode)
		})
	}
}

func TestNewBuffer_ClosedDevice(t *testing.T) {
	t.Parallel()

	dev := soft.New(soft.Options{})
	require.NoError(t, dev.Close())

	_, err := audsfx.NewBuffer(dev, tone(10))
	assert.ErrorIs(t, err, audsfx.ErrClosed)
}

func TestBuffer_SetAttenuationRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max float32
		wantErr  bool
	}{
		{"ordered", 2, 5, false},
		{"equal", 3, 3, false},
		{"zero", 0, 0, false},
		{"inverted", 5, 2, true},
		{"negative min", -1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := audsfx.NewBuffer(soft.New(soft.Options{}), tone(10))
			require.NoError(t, err)

			err = b.SetAttenuationRange(tt.min, tt.max)
			minDist, maxDist := b.AttenuationRange()
			if tt.wantErr {
				assert.ErrorIs(t, err, audsfx.ErrInvalidRange)
				assert.Equal(t, audsfx.DefaultMinDistance, minDist, "unchanged on error")
				assert.Equal(t, audsfx.DefaultMaxDistance, maxDist, "unchanged on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.min, minDist)
			assert.Equal(t, tt.max, maxDist)
		})
	}
}

func TestBuffer_Volume(t *testing.T) {
	t.Parallel()

	b, err := audsfx.NewBuffer(soft.New(soft.Options{}), tone(10))
	require.NoError(t, err)

	require.NoError(t, b.SetVolume(0))
	assert.Zero(t, b.Volume())
	require.NoError(t, b.SetVolume(128))
	assert.Equal(t, float32(128), b.Volume())

	assert.ErrorIs(t, b.SetVolume(256), audsfx.ErrInvalidVolume)
	assert.ErrorIs(t, b.SetVolume(-1), audsfx.ErrInvalidVolume)
	assert.Equal(t, float32(128), b.Volume())
}

func TestBuffer_Set2D(t *testing.T) {
	t.Parallel()

	b, err := audsfx.NewBuffer(soft.New(soft.Options{}), tone(10))
	require.NoError(t, err)

	b.Set2D()
	assert.True(t, b.Is2D())
}

func TestBuffer_Close(t *testing.T) {
	t.Parallel()

	b, err := audsfx.NewBuffer(soft.New(soft.Options{}), tone(10))
	require.NoError(t, err)

	require.NoError(t, b.Close())
	assert.True(t, b.Released())
	assert.ErrorIs(t, b.Close(), audsfx.ErrReleased)
}
