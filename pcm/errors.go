// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrUnsupportedFormat indicates no decoder is registered for the file extension
	ErrUnsupportedFormat = errors.New("unsupported audio file format")

	// ErrEmpty indicates the source decoded to zero samples
	ErrEmpty = errors.New("no audio data")

	// ErrInvalidFormat indicates a Format outside Mono8..Stereo16
	ErrInvalidFormat = errors.New("invalid pcm format")

	// ErrInvalidSampleRate indicates a non-positive sample rate
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrPartialFrame indicates trailing bytes that do not form a whole frame
	ErrPartialFrame = errors.New("partial pcm frame")
)
