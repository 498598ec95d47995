package pixconv

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"
)

// TestNamedConversionsMatchLookup checks that every named conversion is
// wired to the table entry its name promises.
func TestNamedConversionsMatchLookup(t *testing.T) {
	tests := []struct {
		name     string
		fn       any
		src, dst Format
	}{
		{"GrayBytesToAXYZBytes", GrayBytesToAXYZBytes, FormatGrayBytes, FormatAXYZBytes},
		{"AXYZBytesToGrayBytes", AXYZBytesToGrayBytes, FormatAXYZBytes, FormatGrayBytes},
		{"XYZBytesToAXYZBytes", XYZBytesToAXYZBytes, FormatXYZBytes, FormatAXYZBytes},
		{"AXYZBytesToXYZBytes", AXYZBytesToXYZBytes, FormatAXYZBytes, FormatXYZBytes},
		{"ZYXBytesToAXYZBytes", ZYXBytesToAXYZBytes, FormatZYXBytes, FormatAXYZBytes},
		{"AXYZBytesToZYXBytes", AXYZBytesToZYXBytes, FormatAXYZBytes, FormatZYXBytes},
		{"AXYZPreBytesToAXYZBytes", AXYZPreBytesToAXYZBytes, FormatAXYZPreBytes, FormatAXYZBytes},
		{"AXYZBytesToAXYZPreBytes", AXYZBytesToAXYZPreBytes, FormatAXYZBytes, FormatAXYZPreBytes},
		{"AZYXBytesToAXYZBytes", AZYXBytesToAXYZBytes, FormatAZYXBytes, FormatAXYZBytes},
		{"AXYZBytesToAZYXBytes", AXYZBytesToAZYXBytes, FormatAXYZBytes, FormatAZYXBytes},
		{"AZYXPreBytesToAXYZBytes", AZYXPreBytesToAXYZBytes, FormatAZYXPreBytes, FormatAXYZBytes},
		{"AXYZBytesToAZYXPreBytes", AXYZBytesToAZYXPreBytes, FormatAXYZBytes, FormatAZYXPreBytes},
		{"XYZABytesToAXYZBytes", XYZABytesToAXYZBytes, FormatXYZABytes, FormatAXYZBytes},
		{"AXYZBytesToXYZABytes", AXYZBytesToXYZABytes, FormatAXYZBytes, FormatXYZABytes},
		{"XYZAPreBytesToAXYZBytes", XYZAPreBytesToAXYZBytes, FormatXYZAPreBytes, FormatAXYZBytes},
		{"AXYZBytesToXYZAPreBytes", AXYZBytesToXYZAPreBytes, FormatAXYZBytes, FormatXYZAPreBytes},
		{"ZYXABytesToAXYZBytes", ZYXABytesToAXYZBytes, FormatZYXABytes, FormatAXYZBytes},
		{"AXYZBytesToZYXABytes", AXYZBytesToZYXABytes, FormatAXYZBytes, FormatZYXABytes},
		{"ZYXAPreBytesToAXYZBytes", ZYXAPreBytesToAXYZBytes, FormatZYXAPreBytes, FormatAXYZBytes},
		{"AXYZBytesToZYXAPreBytes", AXYZBytesToZYXAPreBytes, FormatAXYZBytes, FormatZYXAPreBytes},
		{"XYZBytesToZYXBytes", XYZBytesToZYXBytes, FormatXYZBytes, FormatZYXBytes},
		{"ZYXBytesToXYZBytes", ZYXBytesToXYZBytes, FormatZYXBytes, FormatXYZBytes},
		{"GrayBytesToXYZBytes", GrayBytesToXYZBytes, FormatGrayBytes, FormatXYZBytes},
		{"XYZBytesToGrayBytes", XYZBytesToGrayBytes, FormatXYZBytes, FormatGrayBytes},
		{"ZYXBytesToGrayBytes", ZYXBytesToGrayBytes, FormatZYXBytes, FormatGrayBytes},
		{"GrayBytesToZYXBytes", GrayBytesToZYXBytes, FormatGrayBytes, FormatZYXBytes},
		{"XYZABytesToXYZAPreBytes", XYZABytesToXYZAPreBytes, FormatXYZABytes, FormatXYZAPreBytes},
		{"XYZAPreBytesToXYZABytes", XYZAPreBytesToXYZABytes, FormatXYZAPreBytes, FormatXYZABytes},
		{"ZYXABytesToZYXAPreBytes", ZYXABytesToZYXAPreBytes, FormatZYXABytes, FormatZYXAPreBytes},
		{"ZYXAPreBytesToZYXABytes", ZYXAPreBytesToZYXABytes, FormatZYXAPreBytes, FormatZYXABytes},
		{"XYZABytesToZYXABytes", XYZABytesToZYXABytes, FormatXYZABytes, FormatZYXABytes},
		{"ZYXABytesToXYZABytes", ZYXABytesToXYZABytes, FormatZYXABytes, FormatXYZABytes},
		{"XYZAPreBytesToZYXAPreBytes", XYZAPreBytesToZYXAPreBytes, FormatXYZAPreBytes, FormatZYXAPreBytes},
		{"XYZBytesToXYZABytes", XYZBytesToXYZABytes, FormatXYZBytes, FormatXYZABytes},
		{"XYZABytesToXYZBytes", XYZABytesToXYZBytes, FormatXYZABytes, FormatXYZBytes},
		{"ZYXBytesToZYXABytes", ZYXBytesToZYXABytes, FormatZYXBytes, FormatZYXABytes},
		{"XYZBytesToAXYZPreBytes", XYZBytesToAXYZPreBytes, FormatXYZBytes, FormatAXYZPreBytes},
		{"GrayBytesToAXYZInts", GrayBytesToAXYZInts, FormatGrayBytes, FormatAXYZInts},
		{"XYZBytesToAXYZInts", XYZBytesToAXYZInts, FormatXYZBytes, FormatAXYZInts},
		{"ZYXBytesToAXYZInts", ZYXBytesToAXYZInts, FormatZYXBytes, FormatAXYZInts},
		{"AXYZBytesToAXYZInts", AXYZBytesToAXYZInts, FormatAXYZBytes, FormatAXYZInts},
		{"AXYZPreBytesToAXYZInts", AXYZPreBytesToAXYZInts, FormatAXYZPreBytes, FormatAXYZInts},
		{"AZYXBytesToAXYZInts", AZYXBytesToAXYZInts, FormatAZYXBytes, FormatAXYZInts},
		{"AZYXPreBytesToAXYZInts", AZYXPreBytesToAXYZInts, FormatAZYXPreBytes, FormatAXYZInts},
		{"XYZABytesToAXYZInts", XYZABytesToAXYZInts, FormatXYZABytes, FormatAXYZInts},
		{"XYZAPreBytesToAXYZInts", XYZAPreBytesToAXYZInts, FormatXYZAPreBytes, FormatAXYZInts},
		{"ZYXABytesToAXYZInts", ZYXABytesToAXYZInts, FormatZYXABytes, FormatAXYZInts},
		{"ZYXAPreBytesToAXYZInts", ZYXAPreBytesToAXYZInts, FormatZYXAPreBytes, FormatAXYZInts},
		{"AXYZBytesToXYZInts", AXYZBytesToXYZInts, FormatAXYZBytes, FormatXYZInts},
		{"AXYZBytesToZYXInts", AXYZBytesToZYXInts, FormatAXYZBytes, FormatZYXInts},
		{"AXYZBytesToAXYZPreInts", AXYZBytesToAXYZPreInts, FormatAXYZBytes, FormatAXYZPreInts},
		{"AXYZBytesToAZYXInts", AXYZBytesToAZYXInts, FormatAXYZBytes, FormatAZYXInts},
		{"AXYZBytesToAZYXPreInts", AXYZBytesToAZYXPreInts, FormatAXYZBytes, FormatAZYXPreInts},
		{"AXYZPreBytesToAXYZPreInts", AXYZPreBytesToAXYZPreInts, FormatAXYZPreBytes, FormatAXYZPreInts},
		{"XYZBytesToXYZInts", XYZBytesToXYZInts, FormatXYZBytes, FormatXYZInts},
		{"AXYZIntsToGrayBytes", AXYZIntsToGrayBytes, FormatAXYZInts, FormatGrayBytes},
		{"AXYZIntsToXYZBytes", AXYZIntsToXYZBytes, FormatAXYZInts, FormatXYZBytes},
		{"AXYZIntsToZYXBytes", AXYZIntsToZYXBytes, FormatAXYZInts, FormatZYXBytes},
		{"AXYZIntsToAXYZBytes", AXYZIntsToAXYZBytes, FormatAXYZInts, FormatAXYZBytes},
		{"AXYZIntsToAXYZPreBytes", AXYZIntsToAXYZPreBytes, FormatAXYZInts, FormatAXYZPreBytes},
		{"AXYZIntsToAZYXBytes", AXYZIntsToAZYXBytes, FormatAXYZInts, FormatAZYXBytes},
		{"AXYZIntsToAZYXPreBytes", AXYZIntsToAZYXPreBytes, FormatAXYZInts, FormatAZYXPreBytes},
		{"AXYZIntsToXYZABytes", AXYZIntsToXYZABytes, FormatAXYZInts, FormatXYZABytes},
		{"AXYZIntsToXYZAPreBytes", AXYZIntsToXYZAPreBytes, FormatAXYZInts, FormatXYZAPreBytes},
		{"AXYZIntsToZYXABytes", AXYZIntsToZYXABytes, FormatAXYZInts, FormatZYXABytes},
		{"AXYZIntsToZYXAPreBytes", AXYZIntsToZYXAPreBytes, FormatAXYZInts, FormatZYXAPreBytes},
		{"XYZIntsToAXYZBytes", XYZIntsToAXYZBytes, FormatXYZInts, FormatAXYZBytes},
		{"ZYXIntsToAXYZBytes", ZYXIntsToAXYZBytes, FormatZYXInts, FormatAXYZBytes},
		{"AXYZPreIntsToAXYZBytes", AXYZPreIntsToAXYZBytes, FormatAXYZPreInts, FormatAXYZBytes},
		{"AZYXIntsToAXYZBytes", AZYXIntsToAXYZBytes, FormatAZYXInts, FormatAXYZBytes},
		{"AZYXPreIntsToAXYZBytes", AZYXPreIntsToAXYZBytes, FormatAZYXPreInts, FormatAXYZBytes},
		{"AXYZPreIntsToAXYZPreBytes", AXYZPreIntsToAXYZPreBytes, FormatAXYZPreInts, FormatAXYZPreBytes},
		{"XYZIntsToXYZBytes", XYZIntsToXYZBytes, FormatXYZInts, FormatXYZBytes},
		{"XYZIntsToAXYZInts", XYZIntsToAXYZInts, FormatXYZInts, FormatAXYZInts},
		{"AXYZIntsToXYZInts", AXYZIntsToXYZInts, FormatAXYZInts, FormatXYZInts},
		{"ZYXIntsToAXYZInts", ZYXIntsToAXYZInts, FormatZYXInts, FormatAXYZInts},
		{"AXYZIntsToZYXInts", AXYZIntsToZYXInts, FormatAXYZInts, FormatZYXInts},
		{"AXYZPreIntsToAXYZInts", AXYZPreIntsToAXYZInts, FormatAXYZPreInts, FormatAXYZInts},
		{"AXYZIntsToAXYZPreInts", AXYZIntsToAXYZPreInts, FormatAXYZInts, FormatAXYZPreInts},
		{"AZYXIntsToAXYZInts", AZYXIntsToAXYZInts, FormatAZYXInts, FormatAXYZInts},
		{"AXYZIntsToAZYXInts", AXYZIntsToAZYXInts, FormatAXYZInts, FormatAZYXInts},
		{"AZYXPreIntsToAXYZInts", AZYXPreIntsToAXYZInts, FormatAZYXPreInts, FormatAXYZInts},
		{"AXYZIntsToAZYXPreInts", AXYZIntsToAZYXPreInts, FormatAXYZInts, FormatAZYXPreInts},
		{"XYZIntsToZYXInts", XYZIntsToZYXInts, FormatXYZInts, FormatZYXInts},
		{"ZYXIntsToXYZInts", ZYXIntsToXYZInts, FormatZYXInts, FormatXYZInts},
		{"AZYXIntsToAXYZPreInts", AZYXIntsToAXYZPreInts, FormatAZYXInts, FormatAXYZPreInts},
	}

	const n = 16
	rng := rand.New(rand.NewPCG(3, 4))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb, sw := randomSamples(rng, tt.src, n)
			c := MustLookup(tt.src, tt.dst)

			switch fn := tt.fn.(type) {
			case BytesFunc:
				got, want := make([]byte, n*4), make([]byte, n*4)
				if err := fn(got, 0, sb, 0, n); err != nil {
					t.Fatal(err)
				}
				if err := c.ConvertBytes(want, 0, sb, 0, n); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("%s differs from %v", tt.name, c)
				}
			case PackFunc:
				got, want := make([]uint32, n), make([]uint32, n)
				if err := fn(got, 0, sb, 0, n); err != nil {
					t.Fatal(err)
				}
				if err := c.PackWords(want, 0, sb, 0, n); err != nil {
					t.Fatal(err)
				}
				if !slices.Equal(got, want) {
					t.Errorf("%s differs from %v", tt.name, c)
				}
			case UnpackFunc:
				got, want := make([]byte, n*4), make([]byte, n*4)
				if err := fn(got, 0, sw, 0, n); err != nil {
					t.Fatal(err)
				}
				if err := c.UnpackWords(want, 0, sw, 0, n); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("%s differs from %v", tt.name, c)
				}
			case WordsFunc:
				got, want := make([]uint32, n), make([]uint32, n)
				if err := fn(got, 0, sw, 0, n); err != nil {
					t.Fatal(err)
				}
				if err := c.ConvertWords(want, 0, sw, 0, n); err != nil {
					t.Fatal(err)
				}
				if !slices.Equal(got, want) {
					t.Errorf("%s differs from %v", tt.name, c)
				}
			default:
				t.Fatalf("%s has unexpected type %T", tt.name, tt.fn)
			}

			if want := tt.src.String() + "To" + tt.dst.String(); tt.name != want {
				t.Errorf("name %q does not match %q", tt.name, want)
			}
		})
	}
}
