// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSourceState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "initial", Initial.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", SourceState(42).String())
}

func TestDefaultListener(t *testing.T) {
	t.Parallel()

	l := DefaultListener()
	assert.Equal(t, mgl32.Vec3{}, l.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, l.At)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, l.Up)
	assert.InDelta(t, 0, l.At.Dot(l.Up), 1e-9)
}
