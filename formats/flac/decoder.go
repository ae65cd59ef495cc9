// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/intpcm"
	"github.com/mewkiz/flac"
)

// blockReader yields one decoded FLAC frame at a time as per-channel samples.
type blockReader interface {
	next() ([][]int32, error)
	Close() error
}

type streamReader struct {
	stream *flac.Stream
}

func (r streamReader) next() ([][]int32, error) {
	frame, err := r.stream.ParseNext()
	if err != nil {
		return nil, err
	}

	chans := make([][]int32, len(frame.Subframes))
	for i, sf := range frame.Subframes {
		chans[i] = sf.Samples
	}

	return chans, nil
}

func (r streamReader) Close() error { return r.stream.Close() }

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		_ = stream.Close()
		return nil, ErrUnsupportedFlacLayout
	}

	return newSource(streamReader{stream: stream}, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample)), nil
}

type source struct {
	dec        blockReader
	sampleRate int
	channels   int
	scale      float32

	block [][]int32 // current frame
	pos   int       // next frame index within block
	done  bool
}

func newSource(dec blockReader, sampleRate, channels, bitDepth int) *source {
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      flacScale(bitDepth),
	}
}

// flacScale covers the odd depths FLAC allows (12, 20) that wav never sees.
func flacScale(bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return intpcm.Scale(bitDepth)
	}
	if bitDepth < 1 || bitDepth > 32 {
		return intpcm.Scale(16)
	}

	return float32(uint64(1) << (bitDepth - 1))
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.dec.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) < s.channels {
		return 0, nil
	}

	n := 0
	for n+s.channels <= len(dst) {
		if s.block == nil || s.pos >= len(s.block[0]) {
			if s.done {
				break
			}

			block, err := s.dec.next()
			if errors.Is(err, io.EOF) {
				s.done = true
				break
			}
			if err != nil {
				return n, fmt.Errorf("decoding flac frame: %w", err)
			}
			if len(block) != s.channels {
				return n, fmt.Errorf("%w: frame has %d channels, stream %d",
					ErrUnsupportedFlacLayout, len(block), s.channels)
			}
			s.block, s.pos = block, 0
			continue
		}

		for ch := range s.channels {
			dst[n] = float32(s.block[ch][s.pos]) / s.scale
			n++
		}
		s.pos++
	}

	if n == 0 && s.done {
		return 0, io.EOF
	}

	return n, nil
}
