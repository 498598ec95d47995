package pixconv

import (
	"github.com/gogpu/pixconv/internal/channel"
	"github.com/gogpu/pixconv/internal/pack"
)

// The loops below assume arguments were validated by Conversion.check.
// Each pixel is read completely before any of its samples is written, so
// equal-width conversions are safe in place in either direction.

func (p *plan) bytesToBytes(dst []byte, dstOff int, src []byte, srcOff, n int) {
	sw, dw := p.in.samples, p.out.samples

	switch p.path {
	case pathCopy:
		copy(dst[dstOff:dstOff+n*dw], src[srcOff:srcOff+n*sw])
		return
	case pathReverse:
		copy(dst[dstOff:dstOff+n*dw], src[srcOff:srcOff+n*sw])
		channel.ReverseRun(dst[dstOff:], n, dw, p.out.colorOff)
		return
	}

	if p.descending {
		for i := n - 1; i >= 0; i-- {
			p.bytePixel(dst, dstOff+i*dw, src, srcOff+i*sw)
		}
		return
	}
	for i := range n {
		p.bytePixel(dst, dstOff+i*dw, src, srcOff+i*sw)
	}
}

func (p *plan) bytePixel(dst []byte, d int, src []byte, s int) {
	sw, dw := p.in.samples, p.out.samples
	a, c0, c1, c2 := p.in.readBytes(src[s : s+sw : s+sw])
	c0, c1, c2 = p.transform(a, c0, c1, c2)
	p.out.writeBytes(dst[d:d+dw:d+dw], a, c0, c1, c2)
}

func (p *plan) bytesToWords(dst []uint32, dstOff int, src []byte, srcOff, n int) {
	sw := p.in.samples

	if p.path == pathPack {
		var mask uint32
		if !p.src.HasAlpha() {
			mask = pack.OpaqueMask
		}
		for i := range n {
			s := srcOff + i*sw
			dst[dstOff+i] = pack.FromBytes(src[s:s+sw:s+sw]) | mask
		}
		return
	}

	if p.descending {
		for i := n - 1; i >= 0; i-- {
			s := srcOff + i*sw
			dst[dstOff+i] = p.packPixel(src[s : s+sw : s+sw])
		}
		return
	}
	for i := range n {
		s := srcOff + i*sw
		dst[dstOff+i] = p.packPixel(src[s : s+sw : s+sw])
	}
}

func (p *plan) packPixel(px []byte) uint32 {
	a, c0, c1, c2 := p.in.readBytes(px)
	c0, c1, c2 = p.transform(a, c0, c1, c2)
	return p.out.writeWord(a, c0, c1, c2)
}

func (p *plan) wordsToBytes(dst []byte, dstOff int, src []uint32, srcOff, n int) {
	dw := p.out.samples

	if p.path == pathUnpack {
		for i := range n {
			d := dstOff + i*dw
			pack.ToBytes(src[srcOff+i], dst[d:d+dw:d+dw])
		}
		return
	}

	if p.descending {
		for i := n - 1; i >= 0; i-- {
			d := dstOff + i*dw
			p.unpackPixel(dst[d:d+dw:d+dw], src[srcOff+i])
		}
		return
	}
	for i := range n {
		d := dstOff + i*dw
		p.unpackPixel(dst[d:d+dw:d+dw], src[srcOff+i])
	}
}

func (p *plan) unpackPixel(px []byte, w uint32) {
	a, c0, c1, c2 := p.in.readWord(w)
	c0, c1, c2 = p.transform(a, c0, c1, c2)
	p.out.writeBytes(px, a, c0, c1, c2)
}

// wordsToWords never grows, so it always runs forward.
func (p *plan) wordsToWords(dst []uint32, dstOff int, src []uint32, srcOff, n int) {
	if p.path == pathCopy {
		copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])
		return
	}
	for i := range n {
		a, c0, c1, c2 := p.in.readWord(src[srcOff+i])
		c0, c1, c2 = p.transform(a, c0, c1, c2)
		dst[dstOff+i] = p.out.writeWord(a, c0, c1, c2)
	}
}
