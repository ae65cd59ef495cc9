// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"errors"
	"fmt"

	"github.com/ik5/audsfx/backend"
)

var (
	// ErrDeviceInit indicates the device or one of the pool voices could not be created
	ErrDeviceInit = errors.New("audio device initialization failed")

	// ErrDecode indicates a file or payload the device cannot take
	ErrDecode = errors.New("cannot decode audio")

	// ErrBind indicates the voice is playing or the device refused the buffer
	ErrBind = errors.New("cannot bind buffer to voice")

	// ErrInvalidHandle indicates a released buffer or an unknown device handle
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrInvalidRange indicates min > max or a negative distance
	ErrInvalidRange = errors.New("invalid attenuation range")

	// ErrInvalidVolume indicates a volume outside 0..MaxVolume
	ErrInvalidVolume = errors.New("invalid volume")

	// ErrInvalidFrequency indicates a non-positive playback frequency
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidPosition indicates a non-finite position or velocity
	ErrInvalidPosition = errors.New("invalid position")

	// ErrReleased indicates the buffer was already released
	ErrReleased = errors.New("buffer already released")

	// ErrBufferInUse indicates the buffer is still bound to a voice
	ErrBufferInUse = errors.New("buffer in use")

	// ErrClosed indicates the system was closed
	ErrClosed = errors.New("audio system closed")

	// ErrInvalidConfig indicates a configuration value out of range
	ErrInvalidConfig = errors.New("invalid configuration")
)

// deviceErr maps a device failure onto the package sentinels, falling back
// to fallback for anything without a direct counterpart.
func deviceErr(err, fallback error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrClosed):
		return fmt.Errorf("%w: %w", ErrClosed, err)
	case errors.Is(err, backend.ErrInvalidName):
		return fmt.Errorf("%w: %w", ErrInvalidHandle, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
