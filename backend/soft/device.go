// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx/backend"
	"github.com/ik5/audsfx/pcm"
	"github.com/rs/zerolog"
)

// Driver selects where the mix goes.
type Driver string

const (
	DriverOto   Driver = "oto"
	DriverMalgo Driver = "malgo"
	// DriverNone keeps the device headless; callers pull audio with Mix or Read.
	DriverNone Driver = "none"
)

const DefaultSampleRate = 44100

type Options struct {
	// SampleRate of the stereo output, DefaultSampleRate when zero.
	SampleRate int
	Driver     Driver
	// BufferSize is the driver latency hint; zero lets the driver decide.
	BufferSize time.Duration
	// Logger defaults to zerolog.Nop.
	Logger *zerolog.Logger
}

type buffer struct {
	samples  []float32 // interleaved
	channels int
	rate     int
	refs     int // sources attached
}

func (b *buffer) frames() int {
	if b.channels == 0 {
		return 0
	}
	return len(b.samples) / b.channels
}

type source struct {
	params backend.SourceParams
	state  backend.SourceState
	cursor float64 // frame position in the attached buffer
}

// output is a running driver.
type output interface {
	Close() error
}

// Device is a software backend.Device. It renders interleaved stereo
// float32 at a fixed rate.
type Device struct {
	mtx *sync.Mutex

	rate     int
	buffers  map[backend.BufferID]*buffer
	sources  map[backend.SourceID]*source
	nextBuf  backend.BufferID
	nextSrc  backend.SourceID
	listener backend.Listener
	closed   bool

	out     output
	scratch []float32
	log     zerolog.Logger
}

var _ backend.Device = (*Device)(nil)

// New returns a headless device. Audio is produced only when the caller
// pulls it through Mix or Read.
func New(opts Options) *Device {
	rate := opts.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Device{
		mtx:      &sync.Mutex{},
		rate:     rate,
		buffers:  make(map[backend.BufferID]*buffer),
		sources:  make(map[backend.SourceID]*source),
		listener: backend.DefaultListener(),
		log:      logger.With().Str("component", "soft-device").Logger(),
	}
}

// Open returns a device already feeding the configured driver.
func Open(opts Options) (*Device, error) {
	d := New(opts)

	var (
		out output
		err error
	)
	switch opts.Driver {
	case DriverOto, "":
		out, err = openOto(d, d.rate, opts.BufferSize)
	case DriverMalgo:
		out, err = openMalgo(d, d.rate, opts.BufferSize)
	case DriverNone:
	default:
		err = fmt.Errorf("%w: unknown driver %q", backend.ErrDeviceUnavailable, opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	d.out = out
	d.log.Info().Str("driver", string(opts.Driver)).Int("sample_rate", d.rate).Msg("audio device opened")

	return d, nil
}

func (d *Device) SampleRate() int { return d.rate }

func (d *Device) Close() error {
	d.mtx.Lock()
	if d.closed {
		d.mtx.Unlock()
		return backend.ErrClosed
	}
	d.closed = true
	out := d.out
	d.out = nil
	clear(d.sources)
	clear(d.buffers)
	d.mtx.Unlock()

	// the driver callback takes mtx, so stop it unlocked
	if out != nil {
		if err := out.Close(); err != nil {
			return fmt.Errorf("closing output: %w", err)
		}
	}

	return nil
}

func (d *Device) GenBuffer() (backend.BufferID, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return 0, backend.ErrClosed
	}

	d.nextBuf++
	d.buffers[d.nextBuf] = &buffer{}

	return d.nextBuf, nil
}

func (d *Device) BufferData(id backend.BufferID, format pcm.Format, data []byte, freq int) error {
	if !format.Valid() {
		return fmt.Errorf("%w: %v", backend.ErrInvalidEnum, format)
	}
	if freq <= 0 || len(data)%format.FrameSize() != 0 {
		return backend.ErrInvalidValue
	}

	var samples []float32
	if len(data) > 0 {
		var err error
		samples, err = pcm.Payload{Format: format, SampleRate: freq, Data: data}.Samples()
		if err != nil {
			return fmt.Errorf("%w: %w", backend.ErrInvalidValue, err)
		}
	}

	d.mtx.Lock()
	defer d.mtx.Unlock()

	b, err := d.buffer(id)
	if err != nil {
		return err
	}
	if b.refs > 0 {
		return backend.ErrInvalidOperation
	}

	b.samples = samples
	b.channels = format.Channels()
	b.rate = freq

	return nil
}

func (d *Device) DeleteBuffer(id backend.BufferID) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	b, err := d.buffer(id)
	if err != nil {
		return err
	}

	var attached []*source
	if b.refs > 0 {
		for _, s := range d.sources {
			if s.params.Buffer != id {
				continue
			}
			if s.state == backend.Playing {
				return backend.ErrInvalidOperation
			}
			attached = append(attached, s)
		}
	}
	for _, s := range attached {
		d.detach(s)
		s.cursor = 0
	}
	delete(d.buffers, id)

	return nil
}

func (d *Device) GenSource() (backend.SourceID, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return 0, backend.ErrClosed
	}

	d.nextSrc++
	d.sources[d.nextSrc] = &source{
		params: backend.SourceParams{
			Gain:        1,
			Pitch:       1,
			RefDistance: 1,
			MaxDistance: math.MaxFloat32,
		},
	}

	return d.nextSrc, nil
}

func (d *Device) DeleteSource(id backend.SourceID) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	s, err := d.source(id)
	if err != nil {
		return err
	}
	d.detach(s)
	delete(d.sources, id)

	return nil
}

func (d *Device) SourceBuffer(id backend.SourceID, bid backend.BufferID) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	s, err := d.source(id)
	if err != nil {
		return err
	}
	if s.state == backend.Playing {
		return backend.ErrInvalidOperation
	}

	var b *buffer
	if bid != 0 {
		if b, err = d.buffer(bid); err != nil {
			return err
		}
	}

	d.detach(s)
	if b != nil {
		b.refs++
		s.params.Buffer = bid
	}
	s.state = backend.Initial
	s.cursor = 0

	return nil
}

func (d *Device) detach(s *source) {
	if b, ok := d.buffers[s.params.Buffer]; ok {
		b.refs--
	}
	s.params.Buffer = 0
}

// SourcePlay restarts the source from the beginning. A source with no
// buffer, or an empty one, goes straight to Stopped.
func (d *Device) SourcePlay(id backend.SourceID) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	s, err := d.source(id)
	if err != nil {
		return err
	}

	s.cursor = 0
	b, ok := d.buffers[s.params.Buffer]
	if !ok || b.frames() == 0 {
		s.state = backend.Stopped
		return nil
	}
	s.state = backend.Playing

	return nil
}

func (d *Device) SourceStop(id backend.SourceID) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	s, err := d.source(id)
	if err != nil {
		return err
	}
	s.state = backend.Stopped
	s.cursor = 0

	return nil
}

func (d *Device) SourceState(id backend.SourceID) (backend.SourceState, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	s, err := d.source(id)
	if err != nil {
		return backend.Initial, err
	}

	return s.state, nil
}

func (d *Device) SourceParams(id backend.SourceID) (backend.SourceParams, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	s, err := d.source(id)
	if err != nil {
		return backend.SourceParams{}, err
	}

	return s.params, nil
}

func (d *Device) SetSourceLooping(id backend.SourceID, loop bool) error {
	return d.update(id, func(p *backend.SourceParams) error {
		p.Looping = loop
		return nil
	})
}

func (d *Device) SetSourceGain(id backend.SourceID, gain float32) error {
	return d.update(id, func(p *backend.SourceParams) error {
		if !finite(gain) || gain < 0 {
			return backend.ErrInvalidValue
		}
		p.Gain = gain
		return nil
	})
}

func (d *Device) SetSourcePitch(id backend.SourceID, pitch float32) error {
	return d.update(id, func(p *backend.SourceParams) error {
		if !finite(pitch) || pitch <= 0 {
			return backend.ErrInvalidValue
		}
		p.Pitch = pitch
		return nil
	})
}

func (d *Device) SetSourceDistance(id backend.SourceID, ref, maxDist float32) error {
	return d.update(id, func(p *backend.SourceParams) error {
		if !finite(ref) || ref < 0 || math.IsNaN(float64(maxDist)) || maxDist < 0 {
			return backend.ErrInvalidValue
		}
		p.RefDistance = ref
		p.MaxDistance = maxDist
		return nil
	})
}

func (d *Device) SetSourceRelative(id backend.SourceID, relative bool) error {
	return d.update(id, func(p *backend.SourceParams) error {
		p.Relative = relative
		return nil
	})
}

func (d *Device) SetSourcePosition(id backend.SourceID, pos mgl32.Vec3) error {
	return d.update(id, func(p *backend.SourceParams) error {
		if !finiteVec(pos) {
			return backend.ErrInvalidValue
		}
		p.Position = pos
		return nil
	})
}

func (d *Device) SetSourceVelocity(id backend.SourceID, vel mgl32.Vec3) error {
	return d.update(id, func(p *backend.SourceParams) error {
		if !finiteVec(vel) {
			return backend.ErrInvalidValue
		}
		p.Velocity = vel
		return nil
	})
}

func (d *Device) SetListener(l backend.Listener) error {
	if !finiteVec(l.Position) || !finiteVec(l.Velocity) ||
		!finiteVec(l.At) || !finiteVec(l.Up) {
		return backend.ErrInvalidValue
	}
	if l.At.Len() == 0 || l.Up.Len() == 0 {
		return backend.ErrInvalidValue
	}

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return backend.ErrClosed
	}
	d.listener = l

	return nil
}

func (d *Device) Listener() (backend.Listener, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return backend.Listener{}, backend.ErrClosed
	}

	return d.listener, nil
}

func (d *Device) update(id backend.SourceID, fn func(p *backend.SourceParams) error) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	s, err := d.source(id)
	if err != nil {
		return err
	}

	return fn(&s.params)
}

// buffer and source expect mtx held.
func (d *Device) buffer(id backend.BufferID) (*buffer, error) {
	if d.closed {
		return nil, backend.ErrClosed
	}
	b, ok := d.buffers[id]
	if !ok {
		return nil, fmt.Errorf("%w: buffer %d", backend.ErrInvalidName, id)
	}

	return b, nil
}

func (d *Device) source(id backend.SourceID) (*source, error) {
	if d.closed {
		return nil, backend.ErrClosed
	}
	s, ok := d.sources[id]
	if !ok {
		return nil, fmt.Errorf("%w: source %d", backend.ErrInvalidName, id)
	}

	return s, nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
