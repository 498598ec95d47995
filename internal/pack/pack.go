// Package pack transcodes between byte-packed pixels (one byte per sample)
// and word-packed pixels (one uint32 per pixel).
//
// Word layout is fixed: the first of N samples occupies bits
// (N-1)*8..(N-1)*8+7 and the last sample occupies the low byte. A
// four-sample word therefore reads 0xAAXXYYZZ for a leading-alpha pixel.
package pack

// OpaqueMask is the top byte of a word set to full opacity. Three-sample
// pixels packed into words always carry it.
const OpaqueMask uint32 = 0xFF000000

// FromBytes packs the samples of p into one word. Sample i lands at shift
// (len(p)-1-i)*8. p must hold at most four samples.
func FromBytes(p []byte) uint32 {
	var w uint32
	for _, s := range p {
		w = w<<8 | uint32(s)
	}
	return w
}

// ToBytes is the inverse of FromBytes: it extracts len(p) samples from w,
// sample i from shift (len(p)-1-i)*8.
func ToBytes(w uint32, p []byte) {
	for i := len(p) - 1; i >= 0; i-- {
		p[i] = byte(w)
		w >>= 8
	}
}

// Join packs four samples into a word, s0 in the top byte.
func Join(s0, s1, s2, s3 uint8) uint32 {
	return uint32(s0)<<24 | uint32(s1)<<16 | uint32(s2)<<8 | uint32(s3)
}

// Split extracts the four byte fields of w, top byte first.
func Split(w uint32) (s0, s1, s2, s3 uint8) {
	return uint8(w >> 24), uint8(w >> 16), uint8(w >> 8), uint8(w)
}

// Opaque packs three samples into a word with a leading 0xFF alpha.
func Opaque(s0, s1, s2 uint8) uint32 {
	return OpaqueMask | uint32(s0)<<16 | uint32(s1)<<8 | uint32(s2)
}
