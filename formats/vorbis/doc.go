// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// # Supported Formats
//
//   - Ogg Vorbis I in any channel count and sample rate
//
// Samples arrive as float32 already, so the source is a thin pass-through
// that only keeps reads frame aligned. A dst shorter than one frame fails
// with ErrShortBuffer; a stream that is not Ogg Vorbis fails with
// ErrNotVorbisFile.
package vorbis
