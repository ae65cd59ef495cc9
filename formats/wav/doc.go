// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files through github.com/go-audio/wav.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM at 8, 16, 24 and 32 bits
//   - WAVE_FORMAT_EXTENSIBLE headers that carry integer PCM
//   - Any channel count and sample rate
//
// 8-bit data is unsigned as the format defines it; wider depths are signed.
// Float and compressed WAV files are rejected.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	file, _ := os.Open("shot.wav")
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The decoder returns an audio.Source with samples as float32 in [-1.0, 1.0].
//
// Decode needs random access to walk the RIFF chunks. A reader that is not an
// io.ReadSeeker is buffered in memory first, which is fine for effect-sized
// files.
//
// # Error Handling
//
// The package defines these errors:
//   - ErrNotWavFile: the input is not RIFF/WAVE at all
//   - ErrUnsupportedEncoding: float or compressed sample data
//   - ErrUnsupportedBitDepth: a bit depth other than 8, 16, 24 or 32
//   - ErrUnsupportedWavLayout: a header without channels or sample rate
//
// Example:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
