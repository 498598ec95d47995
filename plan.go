package pixconv

import (
	"github.com/gogpu/pixconv/internal/alpha"
	"github.com/gogpu/pixconv/internal/channel"
	"github.com/gogpu/pixconv/internal/pack"
	"github.com/gogpu/pixconv/internal/premul"
)

// premulOp is the premultiplication step of a plan.
type premulOp uint8

const (
	premulNone premulOp = iota
	premulMultiply
	premulDivide
)

// path selects the loop a plan runs.
type path uint8

const (
	// pathGeneral reads, transforms and writes one pixel at a time.
	pathGeneral path = iota

	// pathCopy moves samples unchanged between identical formats.
	pathCopy

	// pathReverse copies and then swaps the outer color samples in place.
	pathReverse

	// pathPack packs byte pixels into words of the same layout.
	pathPack

	// pathUnpack extracts byte pixels from words of the same layout.
	pathUnpack
)

// layout is the part of a format the per-pixel loops need.
type layout struct {
	samples  int // buffer elements per pixel
	bytes    int // bytes per pixel
	alpha    alpha.Position
	colorOff int
	reversed bool
	gray     bool
	words    bool
}

func layoutOf(f Format) layout {
	info := f.Info()
	return layout{
		samples:  f.SamplesPerPixel(),
		bytes:    info.BytesPerPixel,
		alpha:    info.Alpha,
		colorOff: alpha.ColorOffset(info.Alpha),
		reversed: info.Order == OrderZYX,
		gray:     info.Order == OrderGray,
		words:    info.Storage == StorageWords,
	}
}

// plan is the fixed composition of building blocks for one format pair.
type plan struct {
	src, dst Format
	in, out  layout
	path     path

	permute    bool // channel orders differ
	synthesize bool // destination gains an opaque alpha
	strip      bool // source alpha is dropped
	move       bool // alpha changes between leading and trailing
	reduce     bool // color collapses to gray
	broadcast  bool // gray expands to color
	premul     premulOp

	// descending processes the highest pixel index first so that a wider
	// destination written over its own source never clobbers unread input.
	descending bool
}

// plans is the dispatch table, indexed [src][dst].
var plans = buildPlans()

func buildPlans() *[formatCount][formatCount]plan {
	var t [formatCount][formatCount]plan
	for src := range formatCount {
		for dst := range formatCount {
			t[src][dst] = newPlan(src, dst)
		}
	}
	return &t
}

func newPlan(src, dst Format) plan {
	si, di := src.Info(), dst.Info()
	p := plan{
		src:        src,
		dst:        dst,
		in:         layoutOf(src),
		out:        layoutOf(dst),
		permute:    si.Order != di.Order && si.Order != OrderGray && di.Order != OrderGray,
		synthesize: si.Alpha == alpha.None && di.Alpha != alpha.None,
		strip:      si.Alpha != alpha.None && di.Alpha == alpha.None,
		move:       si.Alpha != di.Alpha && si.Alpha != alpha.None && di.Alpha != alpha.None,
		reduce:     si.Order != OrderGray && di.Order == OrderGray,
		broadcast:  si.Order == OrderGray && di.Order != OrderGray,
		descending: di.BytesPerPixel > si.BytesPerPixel,
	}

	// A source without alpha is opaque, so multiplying by 255 is skipped.
	switch {
	case si.IsPremultiplied && !di.IsPremultiplied:
		p.premul = premulDivide
	case !si.IsPremultiplied && di.IsPremultiplied && si.Alpha != alpha.None:
		p.premul = premulMultiply
	}

	sameColor := si.Order == di.Order && si.Alpha == di.Alpha && si.IsPremultiplied == di.IsPremultiplied
	switch {
	case src == dst:
		p.path = pathCopy
	case si.Storage == StorageBytes && di.Storage == StorageBytes &&
		p.permute && si.Alpha == di.Alpha && si.IsPremultiplied == di.IsPremultiplied:
		p.path = pathReverse
	case si.Storage == StorageBytes && di.Storage == StorageWords && sameColor:
		p.path = pathPack
	case si.Storage == StorageWords && di.Storage == StorageBytes && sameColor:
		p.path = pathUnpack
	}
	return p
}

// steps names the building blocks the plan composes, in order.
func (p *plan) steps() []string {
	var s []string
	switch p.path {
	case pathCopy:
		return []string{"copy"}
	case pathReverse:
		return []string{"copy", "reverse"}
	case pathPack:
		return []string{"pack"}
	case pathUnpack:
		return []string{"unpack"}
	}
	if p.in.words {
		s = append(s, "unpack")
	}
	if p.broadcast {
		s = append(s, "broadcast")
	}
	if p.synthesize {
		s = append(s, "synthesize-alpha")
	}
	switch p.premul {
	case premulMultiply:
		s = append(s, "premultiply")
	case premulDivide:
		s = append(s, "unpremultiply")
	}
	if p.move {
		s = append(s, "move-alpha")
	}
	if p.permute {
		s = append(s, "reverse")
	}
	if p.reduce {
		s = append(s, "gray")
	}
	if p.strip {
		s = append(s, "strip-alpha")
	}
	if p.out.words {
		s = append(s, "pack")
	}
	return s
}

// transform applies the premultiplication step to one pixel in canonical
// XYZ order.
func (p *plan) transform(a, c0, c1, c2 uint8) (uint8, uint8, uint8) {
	switch p.premul {
	case premulMultiply:
		return premul.MultiplyColor(c0, c1, c2, a)
	case premulDivide:
		return premul.DivideColor(c0, c1, c2, a)
	}
	return c0, c1, c2
}

// readBytes reads one byte pixel into canonical XYZ order. px must be
// exactly one pixel long.
func (l *layout) readBytes(px []byte) (a, c0, c1, c2 uint8) {
	a = alpha.Read(px, l.alpha)
	s := px[l.colorOff:]
	if l.gray {
		c0, c1, c2 = channel.Broadcast(s[0])
		return a, c0, c1, c2
	}
	c0, c1, c2 = s[0], s[1], s[2]
	if l.reversed {
		c0, c1, c2 = channel.Reverse(c0, c1, c2)
	}
	return a, c0, c1, c2
}

// writeBytes writes one pixel given in canonical XYZ order. px must be
// exactly one pixel long.
func (l *layout) writeBytes(px []byte, a, c0, c1, c2 uint8) {
	alpha.Write(px, l.alpha, a)
	s := px[l.colorOff:]
	if l.gray {
		s[0] = channel.Gray(c0, c1, c2)
		return
	}
	if l.reversed {
		c0, c1, c2 = channel.Reverse(c0, c1, c2)
	}
	s[0], s[1], s[2] = c0, c1, c2
}

// readWord reads one word pixel into canonical XYZ order.
func (l *layout) readWord(w uint32) (a, c0, c1, c2 uint8) {
	a, c0, c1, c2 = pack.Split(w)
	if l.alpha == alpha.None {
		a = alpha.Opaque
	}
	if l.reversed {
		c0, c1, c2 = channel.Reverse(c0, c1, c2)
	}
	return a, c0, c1, c2
}

// writeWord packs one pixel given in canonical XYZ order.
func (l *layout) writeWord(a, c0, c1, c2 uint8) uint32 {
	if l.reversed {
		c0, c1, c2 = channel.Reverse(c0, c1, c2)
	}
	if l.alpha == alpha.None {
		return pack.Opaque(c0, c1, c2)
	}
	return pack.Join(a, c0, c1, c2)
}
