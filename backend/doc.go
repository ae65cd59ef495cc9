// SPDX-License-Identifier: EPL-2.0

// Package backend defines the device contract the sound-effect system drives.
//
// The model follows the classic buffer/source/listener design of positional
// audio APIs: buffers hold PCM, sources play a buffer with gain, pitch,
// looping and a position, and a single listener decides how positioned
// sources are attenuated and panned. Distance attenuation uses the
// inverse-distance-clamped model:
//
//	gain = ref / (ref + (clamp(d, ref, max) - ref))
//
// Package soft provides the software implementation.
package backend
