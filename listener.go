// SPDX-License-Identifier: EPL-2.0

package audsfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx/backend"
)

// Listener is the point of view in world units, before the distance factor
// is applied. Rotation is a yaw in degrees; 0 faces -Z and positive values
// turn right, towards +X.
type Listener struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Rotation float32
}

// Orientation returns the at and up vectors for a yaw in degrees.
func Orientation(rotation float32) (at, up mgl32.Vec3) {
	r := float64(mgl32.DegToRad(rotation))
	return mgl32.Vec3{float32(math.Sin(r)), 0, float32(-math.Cos(r))}, mgl32.Vec3{0, 1, 0}
}

func (l Listener) device(factor float32) backend.Listener {
	at, up := Orientation(l.Rotation)

	return backend.Listener{
		Position: l.Position.Mul(factor),
		Velocity: l.Velocity.Mul(factor),
		At:       at,
		Up:       up,
	}
}
