// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what the sound-effect pool does.
type Metrics struct {
	// Plays is labelled by mode, "2d" or "3d".
	Plays          *prometheus.CounterVec
	Preemptions    prometheus.Counter
	DecodeFailures prometheus.Counter
}

// NewMetrics registers the counters with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Plays: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audsfx_sound_effects_played_total",
				Help: "Total number of sound effects started from the voice pool",
			},
			[]string{"mode"},
		),
		Preemptions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "audsfx_voice_preemptions_total",
				Help: "Total number of pool voices cut off while still playing",
			},
		),
		DecodeFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "audsfx_decode_failures_total",
				Help: "Total number of audio files that failed to load",
			},
		),
	}
}
