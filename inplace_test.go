package pixconv

import (
	"bytes"
	"slices"
	"testing"
)

func grayRamp(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*29 + 3)
	}
	return b
}

func TestInPlace_GrowingMatchesSeparateBuffer(t *testing.T) {
	tests := []struct {
		src, dst Format
	}{
		{FormatGrayBytes, FormatAXYZBytes},
		{FormatGrayBytes, FormatXYZABytes},
		{FormatGrayBytes, FormatZYXBytes},
		{FormatXYZBytes, FormatAXYZBytes},
		{FormatZYXBytes, FormatXYZAPreBytes},
	}

	for _, tt := range tests {
		c := MustLookup(tt.src, tt.dst)
		t.Run(c.String(), func(t *testing.T) {
			const n = 8
			src := grayRamp(n * tt.src.BytesPerPixel())

			want := make([]byte, n*tt.dst.BytesPerPixel())
			if err := c.ConvertBytes(want, 0, src, 0, n); err != nil {
				t.Fatal(err)
			}

			buf := make([]byte, n*tt.dst.BytesPerPixel())
			copy(buf, src)
			if err := c.ConvertBytes(buf, 0, buf, 0, n); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, want) {
				t.Errorf("in place = % x\nwant       % x", buf, want)
			}
		})
	}
}

func TestInPlace_ForwardOrderWouldCorrupt(t *testing.T) {
	const n = 8
	p := plans[FormatGrayBytes][FormatAXYZBytes]
	if !p.descending {
		t.Fatal("GrayBytes->AXYZBytes should run descending")
	}

	want := make([]byte, n*4)
	if err := GrayBytesToAXYZBytes(want, 0, grayRamp(n), 0, n); err != nil {
		t.Fatal(err)
	}

	forward := p
	forward.descending = false
	buf := make([]byte, n*4)
	copy(buf, grayRamp(n))
	forward.bytesToBytes(buf, 0, buf, 0, n)
	if bytes.Equal(buf, want) {
		t.Error("forward in-place growth unexpectedly matched; the descending order is not being tested")
	}
}

func TestInPlace_Shrinking(t *testing.T) {
	const n = 16
	src := grayRamp(n * 4)

	want := make([]byte, n*3)
	if err := AXYZBytesToZYXBytes(want, 0, src, 0, n); err != nil {
		t.Fatal(err)
	}

	buf := slices.Clone(src)
	if err := AXYZBytesToZYXBytes(buf, 0, buf, 0, n); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:n*3], want) {
		t.Errorf("in place = % x\nwant       % x", buf[:n*3], want)
	}

	g := slices.Clone(src)
	wantGray := make([]byte, n)
	if err := AXYZBytesToGrayBytes(wantGray, 0, src, 0, n); err != nil {
		t.Fatal(err)
	}
	if err := AXYZBytesToGrayBytes(g, 0, g, 0, n); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(g[:n], wantGray) {
		t.Errorf("gray in place = % x, want % x", g[:n], wantGray)
	}
}

func TestInPlace_EqualWidth(t *testing.T) {
	const n = 32
	src := grayRamp(n * 4)
	for _, dst := range []Format{FormatAZYXPreBytes, FormatXYZABytes, FormatZYXAPreBytes, FormatAXYZPreBytes} {
		c := MustLookup(FormatAXYZBytes, dst)
		want := make([]byte, n*4)
		if err := c.ConvertBytes(want, 0, src, 0, n); err != nil {
			t.Fatal(err)
		}
		buf := slices.Clone(src)
		if err := c.ConvertBytes(buf, 0, buf, 0, n); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(buf, want) {
			t.Errorf("%v in place differs from a separate buffer", c)
		}
	}

	words := make([]uint32, n)
	for i := range words {
		words[i] = uint32(i) * 0x07050301
	}
	want := make([]uint32, n)
	if err := AXYZIntsToAZYXPreInts(want, 0, words, 0, n); err != nil {
		t.Fatal(err)
	}
	if err := AXYZIntsToAZYXPreInts(words, 0, words, 0, n); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(words, want) {
		t.Error("AXYZInts->AZYXPreInts in place differs from a separate buffer")
	}
}
