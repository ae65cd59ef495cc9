// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx/backend"
	"github.com/ik5/audsfx/internal/dsp"
)

// Attenuation is the inverse-distance-clamped gain for distance dist with
// rolloff 1. A non-positive ref disables attenuation.
func Attenuation(dist, ref, maxDist float32) float32 {
	if ref <= 0 {
		return 1
	}
	maxDist = max(maxDist, ref)
	dist = dsp.Clamp(dist, ref, maxDist)

	return ref / (ref + (dist - ref))
}

// channelGains returns the left and right gain for a source. Only mono
// buffers are positioned; multi-channel buffers play at source gain.
func channelGains(p backend.SourceParams, l backend.Listener, channels int) (left, right float32) {
	if channels != 1 {
		return p.Gain, p.Gain
	}

	// relative sources are already in listener space, where +X is right
	rel := p.Position
	right3 := mgl32.Vec3{1, 0, 0}
	if !p.Relative {
		rel = p.Position.Sub(l.Position)
		right3 = l.At.Cross(l.Up)
		if right3.Len() > 0 {
			right3 = right3.Normalize()
		}
	}

	dist := rel.Len()
	g := p.Gain * Attenuation(dist, p.RefDistance, p.MaxDistance)
	if dist < 1e-6 {
		return g, g
	}

	pl, pr := dsp.Pan(rel.Dot(right3) / dist)

	return g * pl, g * pr
}
