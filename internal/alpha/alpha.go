// Package alpha places, synthesizes and strips the alpha sample of a
// byte-packed pixel.
//
// A format without alpha always reads as fully opaque. Writing alpha to such
// a format discards it. There is no way to recover a stripped alpha value.
package alpha

// Opaque is the synthesized alpha for pixels whose format has no alpha.
const Opaque uint8 = 0xFF

// Position is where the alpha sample sits within a pixel.
type Position uint8

const (
	// None means the format carries no alpha sample.
	None Position = iota

	// Leading means alpha is the first sample (AXYZ).
	Leading

	// Trailing means alpha is the last sample (XYZA).
	Trailing
)

// String returns a string representation of the position.
func (p Position) String() string {
	switch p {
	case None:
		return "None"
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	default:
		return "Unknown"
	}
}

// ColorOffset returns the index of the first color sample within a pixel.
func ColorOffset(p Position) int {
	if p == Leading {
		return 1
	}
	return 0
}

// Read returns the alpha sample of px, or Opaque when the format has none.
// For Trailing, alpha is the last sample of px.
func Read(px []byte, p Position) uint8 {
	switch p {
	case Leading:
		return px[0]
	case Trailing:
		return px[len(px)-1]
	default:
		return Opaque
	}
}

// Write stores a into px at position p. It is a no-op for None, which is
// how alpha gets stripped.
func Write(px []byte, p Position, a uint8) {
	switch p {
	case Leading:
		px[0] = a
	case Trailing:
		px[len(px)-1] = a
	}
}
