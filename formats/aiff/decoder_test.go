// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"testing"

	"github.com/ik5/audsfx/internal/audiotest"
	"github.com/stretchr/testify/assert"
)

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("This is not AIFF data")},
		{"wav file", audiotest.WAV16(8000, 1, []int16{1, 2, 3, 4})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrNotAiffFile)
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotAiffFile, ErrUnsupportedBitDepth, ErrUnsupportedAiffLayout}
	seen := map[string]bool{}
	for _, err := range errs {
		assert.False(t, seen[err.Error()], "duplicate message %q", err)
		seen[err.Error()] = true
	}
}
