// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audsfx/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBlocks struct {
	blocks [][][]int32
	err    error
	closed bool
}

func (m *mockBlocks) next() ([][]int32, error) {
	if len(m.blocks) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	b := m.blocks[0]
	m.blocks = m.blocks[1:]
	return b, nil
}

func (m *mockBlocks) Close() error {
	m.closed = true
	return nil
}

func TestSource_InterleavesAndCarries(t *testing.T) {
	t.Parallel()

	mock := &mockBlocks{blocks: [][][]int32{
		{{1, 2, 3}, {-1, -2, -3}},
		{{4}, {-4}},
	}}
	src := newSource(mock, 44100, 2, 16)

	// smaller than one frame of the first block
	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.InDeltaSlice(t, []float32{1.0 / 32768, -1.0 / 32768, 2.0 / 32768, -2.0 / 32768}, dst, 1e-9)

	rest, err := audio.ReadAll(src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{3.0 / 32768, -3.0 / 32768, 4.0 / 32768, -4.0 / 32768}, rest, 1e-9)

	require.NoError(t, src.Close())
	assert.True(t, mock.closed)
}

func TestSource_OddDstLength(t *testing.T) {
	t.Parallel()

	src := newSource(&mockBlocks{blocks: [][][]int32{{{10, 20}, {30, 40}}}}, 8000, 2, 16)

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	t.Run("decode error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("crc mismatch")
		src := newSource(&mockBlocks{err: boom}, 8000, 1, 16)
		_, err := src.ReadSamples(make([]float32, 8))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("channel mismatch", func(t *testing.T) {
		t.Parallel()

		src := newSource(&mockBlocks{blocks: [][][]int32{{{1}}}}, 8000, 2, 16)
		_, err := src.ReadSamples(make([]float32, 8))
		assert.ErrorIs(t, err, ErrUnsupportedFlacLayout)
	})

	t.Run("eof", func(t *testing.T) {
		t.Parallel()

		src := newSource(&mockBlocks{}, 8000, 1, 16)
		n, err := src.ReadSamples(make([]float32, 8))
		assert.Zero(t, n)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestFlacScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth int
		want  float32
	}{
		{8, 128},
		{12, 2048},
		{16, 32768},
		{20, 524288},
		{24, 8388608},
		{0, 32768},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, flacScale(tt.depth), "depth %d", tt.depth)
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF....WAVEfmt ")))
	assert.ErrorIs(t, err, ErrNotFlacFile)
}
