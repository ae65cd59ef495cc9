// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx/backend"
)

// VoiceState is what a voice is doing right now.
type VoiceState int

const (
	VoiceIdle VoiceState = iota
	VoicePlaying
)

func (s VoiceState) String() string {
	if s == VoicePlaying {
		return "playing"
	}
	return "idle"
}

// Voice is one device source. Voices are owned by a System and freed only
// when it closes; the bound buffer is borrowed, not owned.
type Voice struct {
	mtx *sync.Mutex

	dev    backend.Device
	id     backend.SourceID
	index  int // position in the pool, -1 for dedicated voices
	factor float32

	buffer *Buffer
}

func newVoice(dev backend.Device, id backend.SourceID, index int, factor float32) Voice {
	return Voice{
		mtx:    &sync.Mutex{},
		dev:    dev,
		id:     id,
		index:  index,
		factor: factor,
	}
}

func (v *Voice) ID() backend.SourceID { return v.id }

// Index is the voice's slot in the effect pool, or -1 for a voice made with
// System.NewVoice.
func (v *Voice) Index() int { return v.index }

// Buffer is the last buffer bound, nil if none or if it was released.
func (v *Voice) Buffer() *Buffer {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.buffer != nil && v.buffer.Released() {
		return nil
	}
	return v.buffer
}

// BindBuffer attaches b. The voice must not be playing.
func (v *Voice) BindBuffer(b *Buffer) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidHandle)
	}
	bid, err := b.handle()
	if err != nil {
		return err
	}

	v.mtx.Lock()
	defer v.mtx.Unlock()

	st, err := v.dev.SourceState(v.id)
	if err != nil {
		return deviceErr(err, ErrBind)
	}
	if st == backend.Playing {
		return fmt.Errorf("%w: voice is playing", ErrBind)
	}

	if err := v.dev.SourceBuffer(v.id, bid); err != nil {
		return deviceErr(err, ErrBind)
	}
	v.buffer = b

	return nil
}

// PlayBuffer stops the voice, binds b and starts it.
func (v *Voice) PlayBuffer(b *Buffer) error {
	if err := v.Stop(); err != nil {
		return err
	}
	if err := v.BindBuffer(b); err != nil {
		return err
	}
	return v.Play()
}

// detach stops the voice and drops its buffer.
func (v *Voice) detach() error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if err := v.dev.SourceStop(v.id); err != nil {
		return deviceErr(err, ErrBind)
	}
	if err := v.dev.SourceBuffer(v.id, 0); err != nil {
		return deviceErr(err, ErrBind)
	}
	v.buffer = nil

	return nil
}

// Play starts the bound buffer from the beginning. A voice with nothing bound
// stops at once.
func (v *Voice) Play() error {
	return deviceErr(v.dev.SourcePlay(v.id), ErrInvalidHandle)
}

// Stop halts playback and rewinds. Stopping an idle voice is not an error.
func (v *Voice) Stop() error {
	return deviceErr(v.dev.SourceStop(v.id), ErrInvalidHandle)
}

// IsPlaying asks the device; a voice whose sound ended on its own reports
// false. Errors read as not playing.
func (v *Voice) IsPlaying() bool {
	st, err := v.dev.SourceState(v.id)
	return err == nil && st == backend.Playing
}

func (v *Voice) State() (VoiceState, error) {
	st, err := v.dev.SourceState(v.id)
	if err != nil {
		return VoiceIdle, deviceErr(err, ErrInvalidHandle)
	}
	if st == backend.Playing {
		return VoicePlaying, nil
	}
	return VoiceIdle, nil
}

// SetLooping makes the voice repeat its buffer until stopped.
func (v *Voice) SetLooping(loop bool) error {
	return deviceErr(v.dev.SetSourceLooping(v.id, loop), ErrInvalidHandle)
}

// SetVolume takes the 0..MaxVolume scale.
func (v *Voice) SetVolume(vol float32) error {
	if err := checkVolume(vol); err != nil {
		return err
	}
	return deviceErr(v.dev.SetSourceGain(v.id, vol/MaxVolume), ErrInvalidVolume)
}

// SetFrequency plays the buffer as if it were sampled at hz against
// ReferenceFrequency; 22050 plays an octave down.
func (v *Voice) SetFrequency(hz float32) error {
	f := float64(hz)
	if math.IsNaN(f) || math.IsInf(f, 0) || hz <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, hz)
	}
	return deviceErr(v.dev.SetSourcePitch(v.id, hz/ReferenceFrequency), ErrInvalidFrequency)
}

func (v *Voice) SetAttenuationRange(minDist, maxDist float32) error {
	if err := checkRange(minDist, maxDist); err != nil {
		return err
	}
	return deviceErr(v.dev.SetSourceDistance(v.id, minDist, maxDist), ErrInvalidRange)
}

// Set2D pins the voice to the listener so it is heard without attenuation
// or panning.
func (v *Voice) Set2D() error {
	err := errors.Join(
		v.dev.SetSourceRelative(v.id, true),
		v.dev.SetSourcePosition(v.id, mgl32.Vec3{}),
		v.dev.SetSourceVelocity(v.id, mgl32.Vec3{}),
	)
	return deviceErr(err, ErrInvalidHandle)
}

// SetPosition places the voice in world space. pos and vel are multiplied
// by the system distance factor. Non-finite values leave the voice as it was.
func (v *Voice) SetPosition(pos, vel mgl32.Vec3) error {
	if err := checkPosition(pos, vel); err != nil {
		return err
	}

	err := errors.Join(
		v.dev.SetSourceRelative(v.id, false),
		v.dev.SetSourcePosition(v.id, pos.Mul(v.factor)),
		v.dev.SetSourceVelocity(v.id, vel.Mul(v.factor)),
	)
	return deviceErr(err, ErrInvalidPosition)
}

func checkPosition(pos, vel mgl32.Vec3) error {
	for _, vec := range [...]mgl32.Vec3{pos, vel} {
		for _, c := range vec {
			f := float64(c)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: position %v velocity %v", ErrInvalidPosition, pos, vel)
			}
		}
	}
	return nil
}
