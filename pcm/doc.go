// SPDX-License-Identifier: EPL-2.0

// Package pcm turns decoded audio into the fixed-layout payload a device
// buffer accepts: mono or stereo, 8 or 16 bit, with its sample rate.
//
// Decoding goes through audio.Source, so any format registered in an
// audio.Registry can be loaded:
//
//	p, err := pcm.Load("laser.ogg", nil, pcm.Options{Mono: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Format, p.SampleRate, p.Duration())
package pcm
