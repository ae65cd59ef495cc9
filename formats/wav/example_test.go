// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/formats/wav"
	"github.com/ik5/audsfx/internal/audiotest"
)

func ExampleDecoder() {
	data := audiotest.WAV16(44100, 2, make([]int16, 882))

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	defer src.Close()

	samples, _ := audio.ReadAll(src)
	fmt.Printf("%d Hz, %d channels, %d samples\n", src.SampleRate(), src.Channels(), len(samples))
	// Output: 44100 Hz, 2 channels, 882 samples
}
