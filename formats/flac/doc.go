// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams through github.com/mewkiz/flac.
//
// # Supported Formats
//
// Currently supported:
//   - Native FLAC streams (not Ogg-encapsulated FLAC)
//   - Any bit depth the format permits, including 12 and 20 bits
//   - Up to 8 channels at any sample rate
//
// Samples are normalised by the stream's bit depth into [-1.0, 1.0].
//
// # Decoding
//
// Frames are decoded lazily as ReadSamples asks for data. A frame larger than
// the caller's buffer is carried over to the next call, so any buffer that
// holds at least one frame of every channel works:
//
//	src, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// # Error Handling
//
//   - ErrNotFlacFile: the stream header could not be parsed
//   - ErrUnsupportedFlacLayout: no channels or sample rate, or a frame whose
//     channel count differs from the stream header
package flac
