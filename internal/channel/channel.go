// Package channel reorders and reduces the color samples of a single pixel.
//
// All functions operate on canonical three-sample color (c0, c1, c2). The
// permutations are lossless; grayscale reduction is not.
package channel

// Reverse swaps the first and third sample, converting XYZ order to ZYX
// order and back. The middle sample is untouched.
func Reverse(c0, c1, c2 uint8) (uint8, uint8, uint8) {
	return c2, c1, c0
}

// Gray reduces three color samples to one gray sample.
//
// The result is the arithmetic mean truncated toward zero, not rounded:
//
//	Gray(3, 5, 7)    // 5
//	Gray(19, 23, 25) // 22
func Gray(c0, c1, c2 uint8) uint8 {
	//nolint:gosec // G115: the mean of three bytes is at most 255
	return uint8((uint16(c0) + uint16(c1) + uint16(c2)) / 3)
}

// Broadcast duplicates a gray sample into all three color samples.
func Broadcast(g uint8) (uint8, uint8, uint8) {
	return g, g, g
}

// ReverseRun swaps the first and third color sample of n consecutive pixels
// in place. Each pixel occupies bpp bytes and its color samples start at
// colorOffset within the pixel.
//
// It panics if p is too short for n pixels.
func ReverseRun(p []byte, n, bpp, colorOffset int) {
	if n == 0 {
		return
	}
	_ = p[(n-1)*bpp+colorOffset+2]
	for i := 0; i < n; i++ {
		o := i*bpp + colorOffset
		p[o], p[o+2] = p[o+2], p[o]
	}
}
