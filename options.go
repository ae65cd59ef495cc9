// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"github.com/ik5/audsfx/audio"
	"github.com/rs/zerolog"
)

// Option configures a System at New or Open.
type Option func(*System)

// WithLogger sets the logger the System and its device write to. The
// default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *System) { s.log = l }
}

// WithMetrics records into m instead of a private, unregistered set.
func WithMetrics(m *Metrics) Option {
	return func(s *System) { s.metrics = m }
}

// WithRegistry replaces the decoders LoadBuffer picks from.
func WithRegistry(r *audio.Registry) Option {
	return func(s *System) { s.registry = r }
}
