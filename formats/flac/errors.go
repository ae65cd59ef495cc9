// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream has no valid fLaC signature or STREAMINFO
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacLayout indicates missing stream info or a channel mismatch
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
)
