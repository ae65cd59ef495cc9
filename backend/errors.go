// SPDX-License-Identifier: EPL-2.0

package backend

import "errors"

var (
	// ErrInvalidName indicates an unknown or deleted buffer or source handle
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidValue indicates an out-of-range argument
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidOperation indicates a call not allowed in the object's current state
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidEnum indicates an unknown pcm format
	ErrInvalidEnum = errors.New("invalid enum")

	// ErrClosed indicates the device was closed
	ErrClosed = errors.New("device closed")

	// ErrDeviceUnavailable indicates the output driver could not be opened
	ErrDeviceUnavailable = errors.New("audio device unavailable")
)
