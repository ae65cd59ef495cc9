// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrPartialFrame    = errors.New("source returned a partial frame")
	ErrInvalidChannels = errors.New("source reports no channels")
	ErrNoProgress      = errors.New("source returned no samples and no error")
)
