// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx/pcm"
)

// BufferID names a device buffer. Zero is never a valid buffer and, passed
// to SourceBuffer, detaches the current one.
type BufferID uint32

// SourceID names a device source. Zero is never a valid source.
type SourceID uint32

// SourceState is the playback state the device reports for a source.
type SourceState int

const (
	Initial SourceState = iota
	Playing
	Stopped
)

func (s SourceState) String() string {
	switch s {
	case Initial:
		return "initial"
	case Playing:
		return "playing"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Listener is the point of view the device renders from. At and Up need not
// be normalised.
type Listener struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	At       mgl32.Vec3
	Up       mgl32.Vec3
}

// DefaultListener sits at the origin facing -Z.
func DefaultListener() Listener {
	return Listener{
		At: mgl32.Vec3{0, 0, -1},
		Up: mgl32.Vec3{0, 1, 0},
	}
}

// SourceParams is a snapshot of everything set on a source.
type SourceParams struct {
	Buffer      BufferID
	Looping     bool
	Gain        float32
	Pitch       float32
	RefDistance float32
	MaxDistance float32
	Relative    bool
	Position    mgl32.Vec3
	Velocity    mgl32.Vec3
}

// Device is a positional audio renderer with buffer, source and listener
// objects. Every method is safe for concurrent use and takes effect
// immediately. Methods fail with ErrInvalidName for an unknown handle and
// ErrClosed after Close.
type Device interface {
	GenBuffer() (BufferID, error)
	// BufferData replaces the buffer contents. It fails with
	// ErrInvalidOperation while any source has the buffer attached.
	BufferData(id BufferID, format pcm.Format, data []byte, freq int) error
	// DeleteBuffer fails with ErrInvalidOperation while a playing source has
	// the buffer attached. Sources that are not playing lose the buffer.
	DeleteBuffer(id BufferID) error

	GenSource() (SourceID, error)
	DeleteSource(id SourceID) error
	// SourceBuffer attaches bid, or detaches with bid 0. It fails with
	// ErrInvalidOperation while the source is playing.
	SourceBuffer(id SourceID, bid BufferID) error
	SourcePlay(id SourceID) error
	SourceStop(id SourceID) error
	SourceState(id SourceID) (SourceState, error)
	SourceParams(id SourceID) (SourceParams, error)

	SetSourceLooping(id SourceID, loop bool) error
	SetSourceGain(id SourceID, gain float32) error
	SetSourcePitch(id SourceID, pitch float32) error
	SetSourceDistance(id SourceID, ref, maxDist float32) error
	SetSourceRelative(id SourceID, relative bool) error
	SetSourcePosition(id SourceID, pos mgl32.Vec3) error
	SetSourceVelocity(id SourceID, vel mgl32.Vec3) error

	SetListener(l Listener) error
	Listener() (Listener, error)

	Close() error
}
