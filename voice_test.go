// SPDX-License-Identifier: EPL-2.0

package audsfx_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoice_BindAndPlay(t *testing.T) {
	t.Parallel()

	sys, dev := newTestSystem(t, 1)
	v := sys.Voices()[0]
	b := newTestBuffer(t, sys, 100)

	require.NoError(t, v.BindBuffer(b))
	assert.False(t, v.IsPlaying())
	st, err := v.State()
	require.NoError(t, err)
	assert.Equal(t, audsfx.VoiceIdle, st)

	require.NoError(t, v.Play())
	assert.True(t, v.IsPlaying())
	st, err = v.State()
	require.NoError(t, err)
	assert.Equal(t, audsfx.VoicePlaying, st)
	assert.Equal(t, "playing", st.String())

	require.NoError(t, v.Stop())
	assert.False(t, v.IsPlaying())

	require.NoError(t, v.Play())
	dev.Mix(make([]float32, 2*50))
	assert.True(t, v.IsPlaying())
	dev.Mix(make([]float32, 2*50))
	assert.False(t, v.IsPlaying(), "finished on its own")
}

func TestVoice_BindWhilePlaying(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSystem(t, 1)
	v := sys.Voices()[0]
	a, b := newTestBuffer(t, sys, 1000), newTestBuffer(t, sys, 1000)

	require.NoError(t, v.BindBuffer(a))
	require.NoError(t, v.Play())

	assert.ErrorIs(t, v.BindBuffer(b), audsfx.ErrBind)
	assert.Same(t, a, v.Buffer())

	require.NoError(t, v.PlayBuffer(b))
	assert.Same(t, b, v.Buffer())
	assert.True(t, v.IsPlaying())
}

func TestVoice_BindInvalid(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSystem(t, 1)
	v := sys.Voices()[0]

	assert.ErrorIs(t, v.BindBuffer(nil), audsfx.ErrInvalidHandle)

	b := newTestBuffer(t, sys, 10)
	require.NoError(t, b.Close())
	assert.ErrorIs(t, v.BindBuffer(b), audsfx.ErrInvalidHandle)
}

func TestVoice_Setters(t *testing.T) {
	t.Parallel()

	sys, dev := newTestSystem(t, 1)
	v := sys.Voices()[0]

	require.NoError(t, v.SetVolume(127.5))
	require.NoError(t, v.SetFrequency(22050))
	require.NoError(t, v.SetAttenuationRange(4, 8))
	require.NoError(t, v.SetLooping(true))

	p := params(t, dev, v)
	assert.InDelta(t, 0.5, p.Gain, 1e-6)
	assert.InDelta(t, 0.5, p.Pitch, 1e-6)
	assert.InDelta(t, 4, p.RefDistance, 0)
	assert.InDelta(t, 8, p.MaxDistance, 0)
	assert.True(t, p.Looping)

	assert.ErrorIs(t, v.SetVolume(300), audsfx.ErrInvalidVolume)
	assert.ErrorIs(t, v.SetFrequency(0), audsfx.ErrInvalidFrequency)
	assert.ErrorIs(t, v.SetFrequency(-44100), audsfx.ErrInvalidFrequency)
	assert.ErrorIs(t, v.SetAttenuationRange(5, 2), audsfx.ErrInvalidRange)

	p = params(t, dev, v)
	assert.InDelta(t, 0.5, p.Gain, 1e-6, "unchanged after rejected call")
}

func TestVoice_Positioning(t *testing.T) {
	t.Parallel()

	sys, dev := newTestSystem(t, 1)
	v := sys.Voices()[0]

	require.NoError(t, v.SetPosition(mgl32.Vec3{1, -2, 4}, mgl32.Vec3{2, 0, 0}))
	p := params(t, dev, v)
	assert.False(t, p.Relative)
	assert.Equal(t, mgl32.Vec3{3, -6, 12}, p.Position)
	assert.Equal(t, mgl32.Vec3{6, 0, 0}, p.Velocity)

	require.NoError(t, v.Set2D())
	p = params(t, dev, v)
	assert.True(t, p.Relative)
	assert.Equal(t, mgl32.Vec3{}, p.Position)
	assert.Equal(t, mgl32.Vec3{}, p.Velocity)

	nan := float32(math.NaN())
	assert.ErrorIs(t, v.SetPosition(mgl32.Vec3{nan, 0, 0}, mgl32.Vec3{}), audsfx.ErrInvalidPosition)
	p = params(t, dev, v)
	assert.True(t, p.Relative, "rejected position leaves the voice as it was")
	assert.Equal(t, mgl32.Vec3{}, p.Position)
}
