// SPDX-License-Identifier: EPL-2.0

// Package audsfx plays game sound effects through a small positional audio
// device.
//
// It manages three kinds of object:
//   - Buffer: decoded audio uploaded to the device, plus the attenuation
//     range, volume and 2D flag used when it is played as an effect
//   - Voice: a device source that plays one buffer at a time
//   - System: the device, a fixed pool of voices and the listener
//
// # Quick Start
//
//	sys, err := audsfx.Open(audsfx.DefaultConfig(),
//	    audsfx.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer sys.Close()
//
//	shot, err := sys.LoadBuffer("sounds/shot.wav")
//	if err != nil {
//	    return err
//	}
//	shot.SetAttenuationRange(5, 200)
//
//	// 2D, e.g. menu clicks
//	sys.PlaySoundEffect(shot)
//
//	// positioned in world units
//	sys.SetListener(playerPos, playerVel, playerYaw)
//	sys.PlaySoundEffectAt(shot, enemyPos, enemyVel)
//
// # The Effect Pool
//
// PlaySoundEffect and PlaySoundEffectAt take voices from the pool strictly
// round-robin. A voice is reused even if it is still playing, which cuts the
// older sound off; with the default pool of 30 voices that is rarely
// audible. Music and other long sounds should get a dedicated voice from
// NewVoice so the pool never steals them.
//
// # Units
//
// Volumes use a 0..255 scale (MaxVolume) and frequencies are relative to
// 44100 Hz (ReferenceFrequency), so SetFrequency(22050) plays an octave
// down. Positions and velocities given to the System and to Voice.SetPosition
// are multiplied by Config.DistanceFactor before they reach the device;
// attenuation ranges are not.
//
// # Devices
//
// Open starts the software device from backend/soft with the oto or malgo
// driver. New accepts any backend.Device; tests use soft.New, which renders
// only when asked:
//
//	dev := soft.New(soft.Options{})
//	sys, _ := audsfx.New(dev, cfg)
//	...
//	dev.Mix(make([]float32, 2*512))
//
// # Errors
//
// Every failure is one of the Err values in this package, wrapped with
// context; match with errors.Is. Calls on a closed System return ErrClosed.
package audsfx
