// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ik5/audsfx/backend"
	"github.com/ik5/audsfx/pcm"
)

// Buffer owns one device buffer plus the settings a voice picks up when it
// plays the buffer as a sound effect.
type Buffer struct {
	mtx *sync.RWMutex

	dev        backend.Device
	id         backend.BufferID
	format     pcm.Format
	sampleRate int
	duration   time.Duration

	minDistance float32
	maxDistance float32
	volume      float32
	is2D        bool
	released    bool
}

// NewBuffer uploads p to dev.
func NewBuffer(dev backend.Device, p pcm.Payload) (*Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	id, err := dev.GenBuffer()
	if err != nil {
		return nil, deviceErr(err, ErrDecode)
	}

	if err := dev.BufferData(id, p.Format, p.Data, p.SampleRate); err != nil {
		_ = dev.DeleteBuffer(id)
		return nil, deviceErr(err, ErrDecode)
	}

	return &Buffer{
		mtx:         &sync.RWMutex{},
		dev:         dev,
		id:          id,
		format:      p.Format,
		sampleRate:  p.SampleRate,
		duration:    p.Duration(),
		minDistance: DefaultMinDistance,
		maxDistance: DefaultMaxDistance,
		volume:      MaxVolume,
	}, nil
}

// ID is the device handle. It stays the same after Close.
func (b *Buffer) ID() backend.BufferID    { return b.id }
func (b *Buffer) Format() pcm.Format      { return b.format }
func (b *Buffer) SampleRate() int         { return b.sampleRate }
func (b *Buffer) Duration() time.Duration { return b.duration }

// handle returns the device id, or an error once released.
func (b *Buffer) handle() (backend.BufferID, error) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if b.released {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHandle, ErrReleased)
	}
	return b.id, nil
}

func checkRange(minDist, maxDist float32) error {
	if math.IsNaN(float64(minDist)) || math.IsNaN(float64(maxDist)) ||
		minDist < 0 || minDist > maxDist {
		return fmt.Errorf("%w: min %v max %v", ErrInvalidRange, minDist, maxDist)
	}
	return nil
}

func checkVolume(v float32) error {
	if math.IsNaN(float64(v)) || v < 0 || v > MaxVolume {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, v)
	}
	return nil
}

// SetAttenuationRange sets the distances applied to a voice that plays this
// buffer positionally.
func (b *Buffer) SetAttenuationRange(minDist, maxDist float32) error {
	if err := checkRange(minDist, maxDist); err != nil {
		return err
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.minDistance, b.maxDistance = minDist, maxDist
	return nil
}

func (b *Buffer) AttenuationRange() (minDist, maxDist float32) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	return b.minDistance, b.maxDistance
}

// SetVolume takes the 0..MaxVolume scale.
func (b *Buffer) SetVolume(v float32) error {
	if err := checkVolume(v); err != nil {
		return err
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.volume = v
	return nil
}

func (b *Buffer) Volume() float32 {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	return b.volume
}

// Set2D makes sound effects played from this buffer ignore position.
func (b *Buffer) Set2D() {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.is2D = true
}

func (b *Buffer) Is2D() bool {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	return b.is2D
}

// Released reports whether Close succeeded.
func (b *Buffer) Released() bool {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	return b.released
}

// Close frees the device buffer. Voices that are done with it lose it. It
// fails with ErrBufferInUse while a voice is still playing it;
// System.ReleaseBuffer stops those voices first.
func (b *Buffer) Close() error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if b.released {
		return ErrReleased
	}

	if err := b.dev.DeleteBuffer(b.id); err != nil {
		if errors.Is(err, backend.ErrInvalidOperation) {
			return fmt.Errorf("%w: %w", ErrBufferInUse, err)
		}
		return deviceErr(err, ErrInvalidHandle)
	}
	b.released = true

	return nil
}
