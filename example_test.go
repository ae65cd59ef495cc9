// SPDX-License-Identifier: EPL-2.0

package audsfx_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ik5/audsfx"
	"github.com/ik5/audsfx/backend/soft"
)

func ExampleSystem_PlaySoundEffect() {
	dev := soft.New(soft.Options{})
	cfg := audsfx.DefaultConfig()
	cfg.PoolSize = 3

	sys, err := audsfx.New(dev, cfg)
	if err != nil {
		panic(err)
	}
	defer sys.Close()

	click, err := sys.NewBuffer(tone(4410))
	if err != nil {
		panic(err)
	}

	for range 4 {
		v, err := sys.PlaySoundEffect(click)
		if err != nil {
			panic(err)
		}
		fmt.Println("voice", v.Index(), "playing:", v.IsPlaying())
	}

	// render 100ms; every effect runs out
	dev.Mix(make([]float32, 2*4410))
	fmt.Println("still playing:", sys.Voices()[0].IsPlaying())

	// Output:
	// voice 0 playing: true
	// voice 1 playing: true
	// voice 2 playing: true
	// voice 0 playing: true
	// still playing: false
}

func ExampleSystem_PlaySoundEffectAt() {
	dev := soft.New(soft.Options{})
	sys, err := audsfx.New(dev, audsfx.DefaultConfig())
	if err != nil {
		panic(err)
	}
	defer sys.Close()

	shot, err := sys.NewBuffer(tone(4410))
	if err != nil {
		panic(err)
	}
	if err := shot.SetAttenuationRange(1, 50); err != nil {
		panic(err)
	}

	if err := sys.SetListener(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{}, 0); err != nil {
		panic(err)
	}
	v, err := sys.PlaySoundEffectAt(shot, mgl32.Vec3{10, 0, 0}, mgl32.Vec3{})
	if err != nil {
		panic(err)
	}

	p, _ := dev.SourceParams(v.ID())
	fmt.Println("device position:", p.Position)

	// Output:
	// device position: [30 0 0]
}
