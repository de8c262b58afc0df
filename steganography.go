// Package steganography hides text in the least-significant bits of 8-bit
// image samples and recovers it.
//
// A payload is framed as 8 bits per character, most significant bit first,
// followed by the 16-bit end-of-message marker 1111111111111110. Bit i of the
// frame replaces the least-significant bit of sample i; every other bit of
// every sample is left as it was.
package steganography

import (
	"errors"
	"fmt"

	"github.com/Optimusprime44/Steganography/internal/lsb"
	"github.com/Optimusprime44/Steganography/transcode"
)

// MarkerLen is the number of samples taken by the end-of-message marker.
const MarkerLen = lsb.MarkerLen

var (
	ErrCapacityExceeded = errors.New("message is too long to embed in the samples")
	ErrMarkerNotFound   = errors.New("end-of-message marker not found")

	ErrCharacterOutOfRange = transcode.ErrCharacterOutOfRange
	ErrFraming             = transcode.ErrFraming
)

// Embed writes text into the least-significant bits of samples and returns samples.
// The slice is modified in place; copy it first to keep the original.
//
// Embed needs 8*len(text)+16 samples. On any error samples is left untouched.
func Embed(samples []uint8, text string) ([]uint8, error) {
	bits, err := transcode.TextToBits(text)
	if err != nil {
		return nil, err
	}
	framed := lsb.Frame(bits)
	if err := lsb.Enable(len(samples), len(framed)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	lsb.Embed(samples, framed)
	return samples, nil
}

// Extract reads least-significant bits from the start of samples until the
// end-of-message marker and decodes the bits before it.
// Scanning stops at the first marker, so the cost is proportional to the
// message length rather than the number of samples.
func Extract(samples []uint8) (string, error) {
	bits, ok := lsb.Extract(samples)
	if !ok {
		return "", fmt.Errorf("%w: scanned %d samples", ErrMarkerNotFound, len(samples))
	}
	return transcode.BitsToText(bits)
}

// Capacity returns the longest message, in characters, that fits into n samples.
func Capacity(n int) int {
	return lsb.Capacity(n)
}
