// Package transcode converts text to and from the bit sequences carried in
// least-significant bits.
//
// Every character is framed as exactly one byte. Text is read as Unicode code
// points and mapped through ISO-8859-1, so only code points 0..255 can be
// carried; 'é' (U+00E9) becomes the single byte 0xE9, not its two UTF-8 bytes.
package transcode

import (
	"errors"
	"fmt"

	"github.com/Optimusprime44/Steganography/internal/bitconv"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrCharacterOutOfRange = errors.New("character does not fit in a single byte")
	ErrFraming             = errors.New("bit count is not a multiple of 8")
)

// TextToBits encodes text into 8 bits per character, most significant bit first.
// It fails with ErrCharacterOutOfRange on any code point above 255,
// including the replacement rune produced by invalid UTF-8.
func TextToBits(text string) ([]bool, error) {
	b, err := Encode(text)
	if err != nil {
		return nil, err
	}
	return bitconv.BytesToBools(b), nil
}

// BitsToText decodes 8-bit groups back into characters.
// It fails with ErrFraming when len(bits) is not a multiple of 8.
func BitsToText(bits []bool) (string, error) {
	if len(bits)%8 != 0 {
		return "", fmt.Errorf("%w: %d bits", ErrFraming, len(bits))
	}
	return Decode(bitconv.BoolsToBytes(bits)), nil
}

// Encode maps each character of text to its single-byte value.
func Encode(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	at := 0
	for _, r := range text {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q (U+%04X) at character %d", ErrCharacterOutOfRange, r, r, at)
		}
		out = append(out, b)
		at++
	}
	return out, nil
}

// Decode maps each byte back to its character.
func Decode(b []byte) string {
	runes := make([]rune, len(b))
	for i, v := range b {
		runes[i] = charmap.ISO8859_1.DecodeByte(v)
	}
	return string(runes)
}
