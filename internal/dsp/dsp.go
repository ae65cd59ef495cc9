// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the per-sample arithmetic shared by the decoder glue and
// the software mixer.
package dsp

import "math"

// Cubic performs Catmull-Rom interpolation between y1 and y2.
// x is the fractional position between y1 and y2 (0 <= x <= 1).
func Cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return ((a0*x+a1)*x+a2)*x + a3
}

// ToInt16 clamps x to [-1,1] and scales it to signed 16-bit PCM. It is the
// exact inverse of FromInt16.
func ToInt16(x float32) int16 {
	v := Clamp(x, -1, 1) * 32768.0
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

// FromInt16 maps signed 16-bit PCM to [-1,1).
func FromInt16(v int16) float32 {
	return float32(v) / 32768.0
}

// FromUint8 maps unsigned 8-bit PCM (silence at 128) to [-1,1).
func FromUint8(v uint8) float32 {
	return (float32(v) - 128.0) / 128.0
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Pan returns left/right gains for a horizontal direction x in [-1,1]
// (-1 hard left, +1 hard right). The law is equal-power, rescaled so the
// centre is unity on both sides; the louder side saturates at 1.
func Pan(x float32) (left, right float32) {
	x = Clamp(x, -1, 1)
	angle := float64(x+1) * math.Pi / 4
	left = Clamp(float32(math.Cos(angle)*math.Sqrt2), 0, 1)
	right = Clamp(float32(math.Sin(angle)*math.Sqrt2), 0, 1)

	return left, right
}
