// Package premul applies and reverses alpha premultiplication on 8-bit
// color samples.
//
// Premultiplied data with alpha 0 is degenerate: Divide passes the stored
// sample through unchanged instead of dividing by zero. A premultiplied
// sample larger than its alpha is invalid upstream data; Divide clamps the
// result to 255 rather than rejecting it.
package premul

// Multiply returns c scaled by a/255, rounded to the nearest integer.
//
// Example:
//
//	Multiply(0x06, 0xE3) // 5 (6*227/255 = 5.34)
func Multiply(c, a uint8) uint8 {
	//nolint:gosec // G115: (255*255+127)/255 fits in uint8
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}

// Divide returns cp scaled by 255/a, rounded to the nearest integer and
// clamped to 255. When a is 0, cp is returned unchanged.
func Divide(cp, a uint8) uint8 {
	if a == 0 {
		return cp
	}
	v := (uint32(cp)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
