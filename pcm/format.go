// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"time"
)

// Format is the sample layout of a Payload.
type Format int

const (
	Mono8 Format = iota + 1
	Mono16
	Stereo8
	Stereo16
)

func (f Format) String() string {
	switch f {
	case Mono8:
		return "mono8"
	case Mono16:
		return "mono16"
	case Stereo8:
		return "stereo8"
	case Stereo16:
		return "stereo16"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Valid reports whether f is one of the four known layouts.
func (f Format) Valid() bool {
	return f >= Mono8 && f <= Stereo16
}

func (f Format) Channels() int {
	switch f {
	case Mono8, Mono16:
		return 1
	case Stereo8, Stereo16:
		return 2
	default:
		return 0
	}
}

func (f Format) BytesPerSample() int {
	switch f {
	case Mono8, Stereo8:
		return 1
	case Mono16, Stereo16:
		return 2
	default:
		return 0
	}
}

// FrameSize is the byte size of one sample for every channel.
func (f Format) FrameSize() int {
	return f.Channels() * f.BytesPerSample()
}

// Payload is decoded audio ready to be uploaded to a device buffer. 16-bit
// data is signed little-endian; 8-bit data is unsigned with silence at 128.
type Payload struct {
	Format     Format
	SampleRate int
	Data       []byte
}

// Size is the payload length in bytes.
func (p Payload) Size() int { return len(p.Data) }

// Frames is the number of whole sample frames in Data.
func (p Payload) Frames() int {
	fs := p.Format.FrameSize()
	if fs == 0 {
		return 0
	}
	return len(p.Data) / fs
}

func (p Payload) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(p.Frames()) * time.Second / time.Duration(p.SampleRate)
}

// Validate checks the layout, rate and that Data holds whole frames.
func (p Payload) Validate() error {
	if !p.Format.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, p.Format)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, p.SampleRate)
	}
	if len(p.Data) == 0 {
		return ErrEmpty
	}
	if len(p.Data)%p.Format.FrameSize() != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d",
			ErrPartialFrame, len(p.Data), p.Format.FrameSize())
	}

	return nil
}
