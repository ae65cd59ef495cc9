// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/dsp"
)

// Options control how a Source is turned into a Payload.
type Options struct {
	// Mono folds every source to one channel. Devices only spatialize mono
	// buffers, so positional effects want this.
	Mono bool
}

// Decode drains src into a 16-bit Payload. Sources with more than two
// channels are always folded to mono. src is not closed.
func Decode(src audio.Source, opts Options) (Payload, error) {
	channels := src.Channels()
	if channels <= 0 {
		return Payload{}, audio.ErrInvalidChannels
	}

	if opts.Mono || channels > 2 {
		src = audio.NewMonoMixer(src)
		channels = 1
	}

	samples, err := audio.ReadAll(src)
	if err != nil {
		return Payload{}, fmt.Errorf("decoding pcm: %w", err)
	}
	samples = samples[:len(samples)-len(samples)%channels]
	if len(samples) == 0 {
		return Payload{}, ErrEmpty
	}

	format := Mono16
	if channels == 2 {
		format = Stereo16
	}

	return Payload{
		Format:     format,
		SampleRate: src.SampleRate(),
		Data:       encode16(samples),
	}, nil
}

func encode16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(dsp.ToInt16(s)))
	}

	return out
}

// Samples converts p back to interleaved floats in [-1,1].
func (p Payload) Samples() ([]float32, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if p.Format.BytesPerSample() == 1 {
		out := make([]float32, len(p.Data))
		for i, b := range p.Data {
			out[i] = dsp.FromUint8(b)
		}
		return out, nil
	}

	out := make([]float32, len(p.Data)/2)
	for i := range out {
		out[i] = dsp.FromInt16(int16(binary.LittleEndian.Uint16(p.Data[i*2:])))
	}

	return out, nil
}
