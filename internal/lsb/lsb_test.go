package lsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	framed := Frame([]bool{true, false})
	require.Len(t, framed, 2+MarkerLen)
	assert.Equal(t, []bool{true, false}, framed[:2])
	for i, bit := range framed[2:] {
		assert.Equal(t, i != MarkerLen-1, bit, "marker bit %d", i)
	}

	assert.Len(t, Frame(nil), MarkerLen)
}

func TestEnable(t *testing.T) {
	assert.NoError(t, Enable(24, 24))
	assert.NoError(t, Enable(25, 24))
	assert.Error(t, Enable(23, 24))
}

func TestCapacity(t *testing.T) {
	test := []struct {
		samples int
		exp     int
	}{
		{0, 0},
		{15, 0},
		{16, 0},
		{23, 0},
		{24, 1},
		{31, 1},
		{32, 2},
		{1920 * 1080 * 3, (1920*1080*3 - 16) / 8},
	}
	for _, tt := range test {
		assert.Equal(t, tt.exp, Capacity(tt.samples), "samples %d", tt.samples)
	}
}

func TestEmbed(t *testing.T) {
	samples := []uint8{0, 1, 2, 3, 254, 255, 100}
	Embed(samples, []bool{true, false, true, false, true, false})
	assert.Equal(t, []uint8{1, 0, 3, 2, 255, 254, 100}, samples)
}

func TestExtract(t *testing.T) {
	t.Run("stops at first marker", func(t *testing.T) {
		samples := make([]uint8, 64)
		Embed(samples, Frame([]bool{true, true, false}))
		// a second marker later must not be reached
		Embed(samples[40:], Frame(nil))

		payload, ok := Extract(samples)
		require.True(t, ok)
		assert.Equal(t, []bool{true, true, false}, payload)
	})
	t.Run("marker only", func(t *testing.T) {
		samples := make([]uint8, MarkerLen)
		Embed(samples, Frame(nil))
		payload, ok := Extract(samples)
		require.True(t, ok)
		assert.Empty(t, payload)
	})
	t.Run("short stream", func(t *testing.T) {
		samples := make([]uint8, MarkerLen-1)
		for i := range samples {
			samples[i] = 1
		}
		_, ok := Extract(samples)
		assert.False(t, ok)
	})
	t.Run("no marker", func(t *testing.T) {
		samples := make([]uint8, 1024)
		for i := range samples {
			samples[i] = uint8(i % 3)
		}
		_, ok := Extract(samples)
		assert.False(t, ok)
	})
	t.Run("empty", func(t *testing.T) {
		_, ok := Extract(nil)
		assert.False(t, ok)
	})
}
