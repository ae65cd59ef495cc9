// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming contract between file decoders and the
// PCM loader.
//
// This package contains the building blocks every format shares:
//   - Source interface for decoded audio
//   - Decoder interface and the Registry that picks one by file extension
//   - MonoMixer for folding channels together
//   - ReadAll for draining a Source into memory
//
// # Source Interface
//
// Every decoder under formats/ returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved samples and reports how many values
// (not frames) it wrote. Sources chain: a MonoMixer is itself a Source.
//
// # Format Registry
//
// A Registry maps file extensions to decoders. Keys are case-insensitive and
// a leading dot is ignored, so a loader can hand it a path directly:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register(".OGG", vorbis.Decoder{})
//
//	dec, ok := reg.Lookup("sounds/shot.WAV")
//	if !ok {
//	    // no decoder for this extension
//	}
//
// Formats lists the registered keys in sorted order. A Registry is safe for
// concurrent use.
//
// # Channel Mixing
//
// MonoMixer averages each frame into one sample:
//
//	mono := audio.NewMonoMixer(src)
//	samples, err := audio.ReadAll(mono)
//
// Only mono sounds can be placed in 3D space, so stereo effects go through
// the mixer before they are uploaded. A mono Source passes through untouched.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Decoders normalise integer PCM by its bit depth, so the rest of the
// pipeline never sees the file's native width.
//
// # Reading Everything
//
// Sound effects are short and replayed often, so the loader keeps them whole.
// ReadAll reads in 4096-value chunks aligned to the channel count and stops
// at io.EOF. A Source that keeps returning (0, nil) is abandoned with
// ErrNoProgress instead of spinning forever.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors come
// from the underlying decoder or from the contract checks:
//   - ErrPartialFrame: a read that ends partway through a frame
//   - ErrInvalidChannels: the Source reports no channels
//   - ErrNoProgress: the Source stopped producing data without io.EOF
//
// A typical read loop:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use buf[:n]
//	}
package audio
