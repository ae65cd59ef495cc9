// SPDX-License-Identifier: EPL-2.0

package audsfx_test

import (
	"encoding/binary"
	"testing"

	"github.com/ik5/audsfx"
	"github.com/ik5/audsfx/backend"
	"github.com/ik5/audsfx/backend/soft"
	"github.com/ik5/audsfx/pcm"
	"github.com/stretchr/testify/require"
)

func testConfig(pool int) audsfx.Config {
	cfg := audsfx.DefaultConfig()
	cfg.PoolSize = pool
	cfg.Driver = soft.DriverNone
	return cfg
}

func newTestSystem(t *testing.T, pool int, opts ...audsfx.Option) (*audsfx.System, *soft.Device) {
	t.Helper()

	dev := soft.New(soft.Options{})
	sys, err := audsfx.New(dev, testConfig(pool), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sys.Close() })

	return sys, dev
}

// tone is frames of mono 16-bit audio at the reference rate.
func tone(frames int) pcm.Payload {
	data := make([]byte, frames*2)
	for i := range frames {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(1000)))
	}
	return pcm.Payload{Format: pcm.Mono16, SampleRate: 44100, Data: data}
}

func newTestBuffer(t *testing.T, sys *audsfx.System, frames int) *audsfx.Buffer {
	t.Helper()

	b, err := sys.NewBuffer(tone(frames))
	require.NoError(t, err)
	return b
}

func params(t *testing.T, dev backend.Device, v *audsfx.Voice) backend.SourceParams {
	t.Helper()

	p, err := dev.SourceParams(v.ID())
	require.NoError(t, err)
	return p
}

// flakyDevice fails GenSource once failAfter sources exist.
type flakyDevice struct {
	backend.Device
	failAfter int
	created   int
	deleted   int
}

func (d *flakyDevice) GenSource() (backend.SourceID, error) {
	if d.created == d.failAfter {
		return 0, backend.ErrDeviceUnavailable
	}
	d.created++
	return d.Device.GenSource()
}

func (d *flakyDevice) DeleteSource(id backend.SourceID) error {
	d.deleted++
	return d.Device.DeleteSource(id)
}
