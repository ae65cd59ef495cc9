// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/backend"
	"github.com/ik5/audsfx/backend/soft"
	"github.com/ik5/audsfx/pcm"
	"github.com/rs/zerolog"
)

const (
	// DefaultPoolSize is the number of sound-effect voices.
	DefaultPoolSize = 30

	DefaultMinDistance float32 = 0
	DefaultMaxDistance float32 = 1000

	// MaxVolume is the top of the volume scale buffers and voices take.
	MaxVolume float32 = 255

	// ReferenceFrequency is the frequency that plays a buffer at its own
	// pitch.
	ReferenceFrequency float32 = 44100

	// DefaultDistanceFactor scales world positions into device units.
	DefaultDistanceFactor float32 = 3
)

// System owns the device, a fixed pool of sound-effect voices handed out
// round-robin, and the listener.
type System struct {
	mtx *sync.Mutex

	dev      backend.Device
	cfg      Config
	log      zerolog.Logger
	devLog   zerolog.Logger // handed to soft.Open without our component
	metrics  *Metrics
	registry *audio.Registry

	voices    []Voice // effect pool
	cursor    int
	dedicated []*Voice
	listener  Listener
	closed    bool
}

func newSystem(cfg Config, opts []Option) *System {
	s := &System{
		mtx: &sync.Mutex{},
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if s.registry == nil {
		s.registry = pcm.DefaultRegistry()
	}
	s.devLog = s.log
	s.log = s.log.With().Str("component", "audsfx").Logger()

	return s
}

// New builds a System on top of dev. The caller keeps ownership of dev until
// New succeeds; after that System.Close closes it.
func New(dev backend.Device, cfg Config, opts ...Option) (*System, error) {
	if dev == nil {
		return nil, fmt.Errorf("%w: nil device", ErrDeviceInit)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := newSystem(cfg, opts)
	if err := s.init(dev); err != nil {
		return nil, err
	}

	return s, nil
}

// Open starts the software device with cfg.Driver and builds a System on it.
func Open(cfg Config, opts ...Option) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := newSystem(cfg, opts)
	dev, err := soft.Open(soft.Options{
		SampleRate: cfg.SampleRate,
		Driver:     cfg.Driver,
		Logger:     &s.devLog,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}

	if err := s.init(dev); err != nil {
		_ = dev.Close()
		return nil, err
	}

	return s, nil
}

func (s *System) init(dev backend.Device) error {
	s.voices = make([]Voice, s.cfg.PoolSize)
	for i := range s.voices {
		id, err := dev.GenSource()
		if err != nil {
			for j := range i {
				_ = dev.DeleteSource(s.voices[j].id)
			}
			s.voices = nil
			return fmt.Errorf("%w: voice %d: %w", ErrDeviceInit, i, err)
		}
		s.voices[i] = newVoice(dev, id, i, s.cfg.DistanceFactor)
	}

	if err := dev.SetListener(s.listener.device(s.cfg.DistanceFactor)); err != nil {
		for i := range s.voices {
			_ = dev.DeleteSource(s.voices[i].id)
		}
		s.voices = nil
		return fmt.Errorf("%w: listener: %w", ErrDeviceInit, err)
	}

	s.dev = dev
	s.log.Info().
		Int("pool_size", s.cfg.PoolSize).
		Float32("distance_factor", s.cfg.DistanceFactor).
		Msg("sound effect pool ready")

	return nil
}

func (s *System) PoolSize() int { return len(s.voices) }

func (s *System) DistanceFactor() float32 { return s.cfg.DistanceFactor }

// Device is the device the System drives.
func (s *System) Device() backend.Device { return s.dev }

// Cursor is the pool slot NextFreeVoice returns next.
func (s *System) Cursor() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.cursor
}

// Voices returns the effect pool in slot order.
func (s *System) Voices() []*Voice {
	out := make([]*Voice, len(s.voices))
	for i := range s.voices {
		out[i] = &s.voices[i]
	}
	return out
}

// NextFreeVoice returns the voice at the cursor and advances it. The voice
// may still be playing; it is not checked. Nil after Close.
func (s *System) NextFreeVoice() *Voice {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return nil
	}
	return s.next()
}

func (s *System) next() *Voice {
	v := &s.voices[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.voices)
	return v
}

// PlaySoundEffect plays b without position on the next pool voice.
func (s *System) PlaySoundEffect(b *Buffer) (*Voice, error) {
	return s.playEffect(b, nil, nil)
}

// PlaySoundEffectAt plays b at pos moving with vel, both in world units. A
// buffer marked 2D still plays without position.
func (s *System) PlaySoundEffectAt(b *Buffer, pos, vel mgl32.Vec3) (*Voice, error) {
	return s.playEffect(b, &pos, &vel)
}

func (s *System) playEffect(b *Buffer, pos, vel *mgl32.Vec3) (*Voice, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidHandle)
	}
	if _, err := b.handle(); err != nil {
		return nil, err
	}
	if pos != nil {
		if err := checkPosition(*pos, *vel); err != nil {
			return nil, err
		}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	v := s.next()
	if v.IsPlaying() {
		s.metrics.Preemptions.Inc()
		s.log.Debug().Int("voice", v.index).Msg("voice preempted")
	}
	if err := v.Stop(); err != nil {
		return nil, err
	}

	minDist, maxDist := b.AttenuationRange()
	if err := v.SetAttenuationRange(minDist, maxDist); err != nil {
		return nil, err
	}
	if err := v.SetVolume(b.Volume()); err != nil {
		return nil, err
	}
	if err := v.SetFrequency(ReferenceFrequency); err != nil {
		return nil, err
	}
	if err := v.SetLooping(false); err != nil {
		return nil, err
	}

	mode := "2d"
	if pos == nil || b.Is2D() {
		if err := v.Set2D(); err != nil {
			return nil, err
		}
	} else {
		if err := v.SetPosition(*pos, *vel); err != nil {
			return nil, err
		}
		mode = "3d"
	}

	if err := v.BindBuffer(b); err != nil {
		return nil, err
	}
	if err := v.Play(); err != nil {
		return nil, err
	}
	s.metrics.Plays.WithLabelValues(mode).Inc()

	return v, nil
}

// SetListener moves the listener. pos and vel are multiplied by the
// distance factor; rotation is a yaw in degrees.
func (s *System) SetListener(pos, vel mgl32.Vec3, rotation float32) error {
	if err := checkPosition(pos, vel); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return ErrClosed
	}

	l := Listener{Position: pos, Velocity: vel, Rotation: rotation}
	if err := s.dev.SetListener(l.device(s.cfg.DistanceFactor)); err != nil {
		return deviceErr(err, ErrInvalidPosition)
	}
	s.listener = l

	return nil
}

// Listener returns the last listener set, in world units.
func (s *System) Listener() Listener {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.listener
}

func (s *System) isClosed() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.closed
}

// NewBuffer uploads an already decoded payload.
func (s *System) NewBuffer(p pcm.Payload) (*Buffer, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	return NewBuffer(s.dev, p)
}

// LoadBuffer decodes the file at path with the decoder registered for its
// extension and uploads it.
func (s *System) LoadBuffer(path string) (*Buffer, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}

	p, err := pcm.Load(path, s.registry, pcm.Options{Mono: s.cfg.DownmixToMono})
	if err != nil {
		s.metrics.DecodeFailures.Inc()
		s.log.Warn().Err(err).Str("path", path).Msg("cannot load audio file")
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	b, err := NewBuffer(s.dev, p)
	if err != nil {
		s.metrics.DecodeFailures.Inc()
		s.log.Warn().Err(err).Str("path", path).Msg("device rejected audio file")
		return nil, err
	}

	s.log.Debug().
		Str("path", path).
		Stringer("format", p.Format).
		Int("sample_rate", p.SampleRate).
		Dur("duration", p.Duration()).
		Msg("buffer loaded")

	return b, nil
}

// LoadBuffers loads every path. The result has one entry per path; entries
// that failed are nil and their errors are joined into the returned error.
func (s *System) LoadBuffers(paths ...string) ([]*Buffer, error) {
	out := make([]*Buffer, len(paths))

	var errs []error
	for i, path := range paths {
		b, err := s.LoadBuffer(path)
		if errors.Is(err, ErrClosed) {
			return out, err
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[i] = b
	}

	return out, errors.Join(errs...)
}

// NewVoice creates a voice outside the effect pool, bound to b when b is
// not nil. It lives until the System closes.
func (s *System) NewVoice(b *Buffer) (*Voice, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	return s.newDedicated(b)
}

// newDedicated expects mtx held.
func (s *System) newDedicated(b *Buffer) (*Voice, error) {
	id, err := s.dev.GenSource()
	if err != nil {
		return nil, deviceErr(err, ErrDeviceInit)
	}

	v := newVoice(s.dev, id, -1, s.cfg.DistanceFactor)
	if b != nil {
		if err := v.BindBuffer(b); err != nil {
			_ = s.dev.DeleteSource(id)
			return nil, err
		}
	}
	s.dedicated = append(s.dedicated, &v)

	return &v, nil
}

// NewVoices creates n voices outside the effect pool. Either all are
// created or none.
func (s *System) NewVoices(n int) ([]*Voice, error) {
	return s.newVoices(make([]*Buffer, n))
}

// NewVoicesWithBuffers creates one dedicated voice per buffer, bound to it.
func (s *System) NewVoicesWithBuffers(buffers ...*Buffer) ([]*Voice, error) {
	for _, b := range buffers {
		if b == nil {
			return nil, fmt.Errorf("%w: nil buffer", ErrInvalidHandle)
		}
	}
	return s.newVoices(buffers)
}

func (s *System) newVoices(buffers []*Buffer) ([]*Voice, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	mark := len(s.dedicated)
	out := make([]*Voice, 0, len(buffers))
	for _, b := range buffers {
		v, err := s.newDedicated(b)
		if err != nil {
			for _, v := range out {
				_ = v.detach()
				_ = s.dev.DeleteSource(v.id)
			}
			s.dedicated = s.dedicated[:mark]
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// ReleaseBuffer stops and detaches every voice playing b, then frees it.
func (s *System) ReleaseBuffer(b *Buffer) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidHandle)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return ErrClosed
	}

	for _, v := range s.allVoices() {
		if v.Buffer() != b {
			continue
		}
		if err := v.detach(); err != nil {
			return err
		}
	}

	return b.Close()
}

func (s *System) allVoices() []*Voice {
	out := make([]*Voice, 0, len(s.voices)+len(s.dedicated))
	for i := range s.voices {
		out = append(out, &s.voices[i])
	}
	return append(out, s.dedicated...)
}

// Close frees every voice and closes the device. Buffers die with the
// device. A second Close returns ErrClosed.
func (s *System) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.closed = true

	var errs []error
	for _, v := range s.allVoices() {
		if err := s.dev.DeleteSource(v.id); err != nil {
			errs = append(errs, fmt.Errorf("deleting voice %d: %w", v.id, err))
		}
	}
	if err := s.dev.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing device: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		s.log.Error().Err(err).Msg("audio system teardown")
		return err
	}
	s.log.Info().Msg("audio system closed")

	return nil
}
