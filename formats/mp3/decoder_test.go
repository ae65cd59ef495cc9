// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/ik5/audsfx/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMP3Reader serves little-endian PCM bytes at most chunk bytes per Read.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	chunk      int
	fail       error
}

func newMockReader(sampleRate, chunk int, samples []int16) *mockMP3Reader {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: sampleRate, data: data, chunk: chunk}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}

	n := len(buf)
	if m.chunk > 0 && n > m.chunk {
		n = m.chunk
	}
	n = copy(buf[:n], m.data)
	m.data = m.data[n:]

	return n, nil
}

func newTestSource(dec mp3Reader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), buf: make([]byte, 16)}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"empty":   nil,
		"garbage": []byte("This is not MP3 data"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			assert.ErrorIs(t, err, ErrNotMP3File)
		})
	}
}

func TestSource_Conversion(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(8000, 0, []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}))
	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	got, err := audio.ReadAll(src)
	require.NoError(t, err)

	want := []float32{0, 0.5, 32767.0 / 32768.0, -0.5, -1, 0.25, -0.25, 0}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "sample %d", i)
	}
}

func TestSource_OddByteReads(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, -1000, 2000, -2000, 3000, -3000}
	src := newTestSource(newMockReader(44100, 3, samples))

	got, err := audio.ReadAll(src)
	require.NoError(t, err)
	require.Len(t, got, len(samples))
	for i, s := range samples {
		assert.InDelta(t, float32(s)/32768, got[i], 1e-6, "sample %d", i)
	}
}

func TestSource_BufferGrows(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 5000)
	for i := range samples {
		samples[i] = int16(i)
	}
	src := newTestSource(newMockReader(22050, 0, samples))

	dst := make([]float32, 4096)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)
	assert.InDelta(t, float32(4095)/32768, dst[4095], 1e-6)
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	reader := newMockReader(44100, 0, nil)
	reader.fail = io.ErrUnexpectedEOF
	src := newTestSource(reader)

	n, err := src.ReadSamples(make([]float32, 8))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	n, err = src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
	assert.NoError(t, src.Close())
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 8192)
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newTestSource(newMockReader(44100, 0, samples))
		_, _ = src.ReadSamples(dst)
	}
}
