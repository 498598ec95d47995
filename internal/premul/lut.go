package premul

// multiplyLUT holds Multiply(c, a) at index a<<8 | c.
// 64KB, built once at init.
var multiplyLUT [256 * 256]uint8

// divideLUT holds Divide(cp, a) at index a<<8 | cp.
var divideLUT [256 * 256]uint8

func init() {
	for a := 0; a < 256; a++ {
		for c := 0; c < 256; c++ {
			multiplyLUT[a<<8|c] = Multiply(uint8(c), uint8(a))
			divideLUT[a<<8|c] = Divide(uint8(c), uint8(a))
		}
	}
}

// MultiplyFast is Multiply backed by a lookup table.
func MultiplyFast(c, a uint8) uint8 {
	return multiplyLUT[int(a)<<8|int(c)]
}

// DivideFast is Divide backed by a lookup table.
func DivideFast(cp, a uint8) uint8 {
	return divideLUT[int(a)<<8|int(cp)]
}

// MultiplyColor premultiplies three color samples by a.
// Alpha 255 is the identity and skips the lookups.
func MultiplyColor(c0, c1, c2, a uint8) (uint8, uint8, uint8) {
	if a == 0xFF {
		return c0, c1, c2
	}
	return MultiplyFast(c0, a), MultiplyFast(c1, a), MultiplyFast(c2, a)
}

// DivideColor un-premultiplies three color samples by a.
// Alpha 255 is the identity; alpha 0 passes the samples through.
func DivideColor(c0, c1, c2, a uint8) (uint8, uint8, uint8) {
	if a == 0xFF || a == 0 {
		return c0, c1, c2
	}
	return DivideFast(c0, a), DivideFast(c1, a), DivideFast(c2, a)
}
