package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitConv(t *testing.T) {
	test := []struct {
		data []byte
		exp  []byte
	}{
		{data: []byte{0b10101010}, exp: []byte{0b10101010}},
		{data: []byte{0b11110000, 0b00001111}, exp: []byte{0b11110000, 0b00001111}},
		{data: []byte("Hello"), exp: []byte("Hello")},
		{data: []byte{0x00, 0xff, 0xfe, 0x01}, exp: []byte{0x00, 0xff, 0xfe, 0x01}},
		{data: []byte("crosses a word"), exp: []byte("crosses a word")},
		{data: []byte{}, exp: []byte{}},
	}
	for _, tt := range test {
		bits := BytesToBools(tt.data)
		assert.Len(t, bits, len(tt.data)*8)
		out := BoolsToBytes(bits)
		assert.Equal(t, tt.exp, out)
	}
}

func TestBytesToBoolsOrder(t *testing.T) {
	bits := BytesToBools([]byte{'A'})
	assert.Equal(t, []bool{false, true, false, false, false, false, false, true}, bits)
}

func TestBoolsToBytesOrder(t *testing.T) {
	assert.Equal(t, []byte{'A'}, BoolsToBytes([]bool{false, true, false, false, false, false, false, true}))
}

func TestBoolsToBytesPadding(t *testing.T) {
	assert.Equal(t, []byte{0b10110000}, BoolsToBytes([]bool{true, false, true, true}))
	assert.Equal(t, []byte{0xff, 0x80}, BoolsToBytes([]bool{true, true, true, true, true, true, true, true, true}))
	assert.Equal(t, []byte{}, BoolsToBytes(nil))
}
