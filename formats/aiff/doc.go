// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// # Supported Formats
//
// Currently supported:
//   - Big-endian integer PCM at 8, 16, 24 and 32 bits (8-bit is signed)
//   - Any channel count and sample rate
//
// AIFF-C compressed variants are not decoded. AIFF is the native effect
// format of many older Mac titles, which is why it sits next to WAV here.
//
// # Decoding AIFF Files
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//
// As with WAV, a reader without Seek is buffered in memory before decoding.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF container
//   - ErrUnsupportedBitDepth: a bit depth other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: a COMM chunk without channels or sample rate
package aiff
