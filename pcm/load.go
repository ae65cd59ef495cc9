// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/formats/aiff"
	"github.com/ik5/audsfx/formats/flac"
	"github.com/ik5/audsfx/formats/mp3"
	"github.com/ik5/audsfx/formats/vorbis"
	"github.com/ik5/audsfx/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// Load decodes the file at path with the decoder registered for its
// extension. A nil reg means DefaultRegistry.
func Load(path string, reg *audio.Registry, opts Options) (Payload, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, ok := reg.Lookup(path)
	if !ok {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return Payload{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, dec, opts)
}

// Read decodes r with dec.
func Read(r io.Reader, dec audio.Decoder, opts Options) (Payload, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return Payload{}, fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	return Decode(src, opts)
}
