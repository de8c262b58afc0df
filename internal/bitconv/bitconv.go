package bitconv

import "github.com/yyyoichi/bitstream-go"

// BytesToBools expands b into bits, most significant bit first.
func BytesToBools(b []byte) []bool {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range b {
		w.Write8(0, 8, v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())

	bits := make([]bool, r.Bits())
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}

// BoolsToBytes packs bits into bytes, most significant bit first.
// A trailing partial byte is padded with zero bits.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	if len(out) == 0 {
		return out
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range 8 * len(out) {
		w.WriteBitAt(i, i < len(bits) && bits[i])
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	for i := range out {
		out[i] = r.Read8R(8, i)
	}
	return out
}
