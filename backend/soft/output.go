// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gen2brain/malgo"
	"github.com/ik5/audsfx/backend"
)

// oto allows one context per process; it is created on first use and kept.
var (
	otoMtx  sync.Mutex
	otoCtx  *oto.Context
	otoRate int
)

func otoContext(rate int, bufSize time.Duration) (*oto.Context, error) {
	otoMtx.Lock()
	defer otoMtx.Unlock()

	if otoCtx != nil {
		if otoRate != rate {
			return nil, fmt.Errorf("%w: oto already running at %d Hz", backend.ErrDeviceUnavailable, otoRate)
		}
		return otoCtx, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrDeviceUnavailable, err)
	}
	<-ready

	otoCtx, otoRate = ctx, rate

	return ctx, nil
}

type otoOutput struct {
	player *oto.Player
}

func openOto(d *Device, rate int, bufSize time.Duration) (output, error) {
	ctx, err := otoContext(rate, bufSize)
	if err != nil {
		return nil, err
	}

	player := ctx.NewPlayer(d)
	player.Play()

	return &otoOutput{player: player}, nil
}

func (o *otoOutput) Close() error {
	return o.player.Close()
}

type malgoOutput struct {
	ctx    *malgo.AllocatedContext
	device *malgo.Device
}

func openMalgo(d *Device, rate int, bufSize time.Duration) (output, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(string) {})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrDeviceUnavailable, err)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = 2
	cfg.SampleRate = uint32(rate)
	cfg.PerformanceProfile = malgo.LowLatency
	if bufSize > 0 {
		cfg.PeriodSizeInMilliseconds = uint32(bufSize / time.Millisecond)
	}

	device, err := malgo.InitDevice(ctx.Context, cfg, malgo.DeviceCallbacks{
		Data: func(out, _ []byte, _ uint32) {
			_, _ = d.Read(out)
		},
	})
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("%w: %w", backend.ErrDeviceUnavailable, err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("%w: %w", backend.ErrDeviceUnavailable, err)
	}

	return &malgoOutput{ctx: ctx, device: device}, nil
}

func (o *malgoOutput) Close() error {
	o.device.Uninit()
	err := o.ctx.Uninit()
	o.ctx.Free()

	return err
}
