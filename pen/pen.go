package pen

import "strings"

// Attr is a bitmask of boolean text attributes.
type Attr uint16

const (
	Bold Attr = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Hidden
	Strike
)

// Has reports whether the attribute set contains attr.
func (a Attr) Has(attr Attr) bool { return a&attr != 0 }

// Pen is an immutable-once-built set of drawing attributes: foreground and
// background color plus a bitmask of boolean attributes. It is reference
// counted so a single Pen value can be shared by many cells, stack frames,
// and callers without copying.
//
// A Pen is never mutated after Ref/Unref accounting begins; setpen-style
// composition always produces a new Pen via Merge.
type Pen struct {
	Fg    Color
	Bg    Color
	Attrs Attr

	refcount int
}

// New returns a fresh default (blank) pen with a refcount of 1.
func New() *Pen {
	return &Pen{refcount: 1}
}

// Ref increments the reference count and returns the same pen, mirroring
// libtickit's tickit_pen_ref.
func (p *Pen) Ref() *Pen {
	if p == nil {
		return nil
	}
	p.refcount++
	return p
}

// Unref decrements the reference count. Dropping a pen below zero
// references is a programmer error: the grid's bookkeeping has gone wrong
// and recovering would only mask the bug, so it panics rather than
// silently underflowing.
func (p *Pen) Unref() {
	if p == nil {
		return
	}
	if p.refcount <= 0 {
		panic("pen: Unref called with refcount already at zero")
	}
	p.refcount--
}

// Refcount reports the current reference count, for tests and invariant
// checks.
func (p *Pen) Refcount() int {
	if p == nil {
		return 0
	}
	return p.refcount
}

// Clone returns a new, independently-refcounted copy of the pen's
// attributes.
func (p *Pen) Clone() *Pen {
	if p == nil {
		return New()
	}
	return &Pen{Fg: p.Fg, Bg: p.Bg, Attrs: p.Attrs, refcount: 1}
}

// Equiv reports whether two pens carry the same attributes, independent of
// identity or refcount — this is TickitPen's tickit_pen_equiv.
func (p *Pen) Equiv(o *Pen) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Fg.Equal(o.Fg) && p.Bg.Equal(o.Bg) && p.Attrs == o.Attrs
}

// NonDefault reports whether the pen carries any attribute or color that
// differs from a fresh default pen.
func (p *Pen) NonDefault() bool {
	if p == nil {
		return false
	}
	return p.Fg.Type != ColorNone || p.Bg.Type != ColorNone || p.Attrs != 0
}

// Merge returns a new pen formed by starting from base and overwriting with
// every attribute set on overlay. A zero-value field on overlay (ColorNone,
// attribute bit unset) leaves base's value in place — this is exactly
// RenderBuffer.SetPen's composition rule: the caller's argument overlays
// the save-stack's captured pen.
func Merge(base, overlay *Pen) *Pen {
	result := New()
	result.refcount = 1

	if base != nil {
		result.Fg = base.Fg
		result.Bg = base.Bg
		result.Attrs = base.Attrs
	}
	if overlay != nil {
		if overlay.Fg.Type != ColorNone {
			result.Fg = overlay.Fg
		}
		if overlay.Bg.Type != ColorNone {
			result.Bg = overlay.Bg
		}
		result.Attrs |= overlay.Attrs
	}
	return result
}

// SGR renders the pen as a single SGR (Select Graphic Rendition) escape
// sequence body (without the leading "\x1b[" or trailing "m"), suitable for
// a terminal driver to emit. An empty string means "no attributes to set".
func (p *Pen) SGR() string {
	if p == nil {
		return ""
	}

	var parts []string
	if p.Attrs.Has(Bold) {
		parts = append(parts, "1")
	}
	if p.Attrs.Has(Dim) {
		parts = append(parts, "2")
	}
	if p.Attrs.Has(Italic) {
		parts = append(parts, "3")
	}
	if p.Attrs.Has(Underline) {
		parts = append(parts, "4")
	}
	if p.Attrs.Has(Blink) {
		parts = append(parts, "5")
	}
	if p.Attrs.Has(Reverse) {
		parts = append(parts, "7")
	}
	if p.Attrs.Has(Hidden) {
		parts = append(parts, "8")
	}
	if p.Attrs.Has(Strike) {
		parts = append(parts, "9")
	}
	if p.Fg.Type != ColorNone {
		parts = append(parts, p.Fg.fgSequence())
	}
	if p.Bg.Type != ColorNone {
		parts = append(parts, p.Bg.bgSequence())
	}

	return strings.Join(parts, ";")
}
