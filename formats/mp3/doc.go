// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// # Supported Formats
//
//   - MPEG-1 and MPEG-2 Layer III at any bit rate, CBR or VBR
//   - Mono and stereo files
//
// The decoded Source is always stereo at the stream's own sample rate. Mono
// files come out with the channel duplicated, which the loader folds back
// when it prepares positional buffers.
//
// go-mp3 hands out 16-bit little-endian bytes; the Source converts them and
// keeps a trailing odd byte for the next read. Decode fails with
// ErrNotMP3File, wrapping the go-mp3 error, when the first frame cannot be
// found.
package mp3
