package lsb

import "fmt"

const (
	// Marker is the end-of-message pattern 1111111111111110.
	Marker    uint16 = 0xFFFE
	MarkerLen        = 16
)

// Frame returns bits followed by the end-of-message marker.
func Frame(bits []bool) []bool {
	framed := make([]bool, len(bits), len(bits)+MarkerLen)
	copy(framed, bits)
	for i := MarkerLen - 1; i >= 0; i-- {
		framed = append(framed, (Marker>>uint(i))&1 == 1)
	}
	return framed
}

// Enable reports whether framedLen bits fit into sampleLen samples.
func Enable(sampleLen, framedLen int) error {
	if sampleLen < framedLen {
		return fmt.Errorf("samples %d < framed bits %d", sampleLen, framedLen)
	}
	return nil
}

// Capacity returns how many 8-bit characters fit into sampleLen samples
// after the marker.
func Capacity(sampleLen int) int {
	if sampleLen < MarkerLen {
		return 0
	}
	return (sampleLen - MarkerLen) / 8
}

// Embed overwrites the least-significant bit of samples[i] with framed[i].
// The caller must check Enable first.
func Embed(samples []uint8, framed []bool) {
	for i, bit := range framed {
		var v uint8
		if bit {
			v = 1
		}
		samples[i] = samples[i]&0xFE | v
	}
}

// Extract scans least-significant bits until the last 16 of them equal Marker
// and returns the bits before the marker. ok is false if the samples run out first.
func Extract(samples []uint8) (payload []bool, ok bool) {
	var window uint16
	for i, s := range samples {
		window = window<<1 | uint16(s&1)
		if i+1 < MarkerLen || window != Marker {
			continue
		}
		payload = make([]bool, i+1-MarkerLen)
		for j := range payload {
			payload[j] = samples[j]&1 == 1
		}
		return payload, true
	}
	return nil, false
}
