// SPDX-License-Identifier: EPL-2.0

// Package soft is a software implementation of backend.Device.
//
// Sources are resampled with cubic interpolation, attenuated with the
// inverse-distance-clamped model and panned with an equal-power law against
// the listener's right vector. The stereo mix is pushed to the sound card by
// one of two drivers:
//
//   - oto (github.com/ebitengine/oto/v3), pure Go on most platforms. oto
//     allows a single context per process, so every oto device must share
//     one sample rate.
//   - malgo (github.com/gen2brain/malgo), miniaudio through cgo.
//
// A device opened with DriverNone renders only when Mix or Read is called,
// which is how tests drive it.
package soft
