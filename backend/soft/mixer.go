// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audsfx/backend"
	"github.com/ik5/audsfx/internal/dsp"
)

// Mix renders len(dst)/2 stereo frames of every playing source into dst,
// advancing their playback positions. Sources that run off the end of a
// non-looping buffer become Stopped.
func (d *Device) Mix(dst []float32) {
	clear(dst)

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return
	}

	frames := len(dst) / 2
	for _, s := range d.sources {
		if s.state != backend.Playing {
			continue
		}
		b, ok := d.buffers[s.params.Buffer]
		if !ok || b.frames() == 0 {
			s.state = backend.Stopped
			continue
		}
		d.render(s, b, dst[:frames*2])
	}

	for i, v := range dst {
		dst[i] = dsp.Clamp(v, -1, 1)
	}
}

func (d *Device) render(s *source, b *buffer, dst []float32) {
	left, right := channelGains(s.params, d.listener, b.channels)
	step := float64(s.params.Pitch) * float64(b.rate) / float64(d.rate)
	total := float64(b.frames())

	for f := 0; f < len(dst)/2; f++ {
		if b.channels == 1 {
			v := sampleAt(b, 0, s.cursor, s.params.Looping)
			dst[f*2] += v * left
			dst[f*2+1] += v * right
		} else {
			dst[f*2] += sampleAt(b, 0, s.cursor, s.params.Looping) * left
			dst[f*2+1] += sampleAt(b, 1, s.cursor, s.params.Looping) * right
		}

		s.cursor += step
		if s.cursor < total {
			continue
		}
		if s.params.Looping {
			s.cursor = math.Mod(s.cursor, total)
			continue
		}
		s.state = backend.Stopped
		s.cursor = 0
		return
	}
}

// sampleAt interpolates channel ch at fractional frame pos. Neighbours
// outside the buffer wrap when looping and repeat the edge otherwise.
func sampleAt(b *buffer, ch int, pos float64, loop bool) float32 {
	n := b.frames()
	i := int(pos)
	x := float32(pos - float64(i))

	at := func(j int) float32 {
		if loop {
			j = ((j % n) + n) % n
		} else {
			j = min(max(j, 0), n-1)
		}
		return b.samples[j*b.channels+ch]
	}

	return dsp.Cubic(at(i-1), at(i), at(i+1), at(i+2), x)
}

// Read fills p with the mix as little-endian float32 stereo, the layout
// both output drivers are opened with. It never fails. Read reuses an
// internal scratch slice, so only one goroutine may call it.
func (d *Device) Read(p []byte) (int, error) {
	n := len(p) / 4
	if cap(d.scratch) < n {
		d.scratch = make([]float32, n)
	}
	buf := d.scratch[:n]
	d.Mix(buf)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	clear(p[n*4:])

	return len(p), nil
}
