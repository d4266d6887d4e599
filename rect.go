package termrb

// Rect is an axis-aligned rectangle of cells, given as an origin (Top,Left)
// and extent (Lines, Cols). An empty rectangle (Lines == 0 or Cols == 0)
// denotes "nothing".
type Rect struct {
	Top, Left   int
	Lines, Cols int
}

// NewRect builds a rectangle from its origin and size.
func NewRect(top, left, lines, cols int) Rect {
	return Rect{Top: top, Left: left, Lines: lines, Cols: cols}
}

// Right returns the column just past the rectangle's right edge.
func (r Rect) Right() int { return r.Left + r.Cols }

// Bottom returns the line just past the rectangle's bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Lines }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Lines <= 0 || r.Cols <= 0 }

// Translate returns the rectangle shifted by (dy, dx).
func (r Rect) Translate(dy, dx int) Rect {
	r.Top += dy
	r.Left += dx
	return r
}

// Intersect returns the overlap of r and o. The result is empty (Lines==0)
// if they don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	top := max(r.Top, o.Top)
	left := max(r.Left, o.Left)
	bottom := min(r.Bottom(), o.Bottom())
	right := min(r.Right(), o.Right())

	if bottom <= top || right <= left {
		return Rect{}
	}
	return Rect{Top: top, Left: left, Lines: bottom - top, Cols: right - left}
}

// Subtract returns the set of rectangles covering r minus o (0 to 4
// rectangles, the edge-slices left after removing the overlap). Used by
// MoveRect to compute which part of the source rectangle was vacated by
// the move and must be skipped.
func (r Rect) Subtract(o Rect) []Rect {
	overlap := r.Intersect(o)
	if overlap.Empty() {
		return []Rect{r}
	}

	var out []Rect
	if overlap.Top > r.Top {
		out = append(out, NewRect(r.Top, r.Left, overlap.Top-r.Top, r.Cols))
	}
	if overlap.Bottom() < r.Bottom() {
		out = append(out, NewRect(overlap.Bottom(), r.Left, r.Bottom()-overlap.Bottom(), r.Cols))
	}
	if overlap.Left > r.Left {
		out = append(out, NewRect(overlap.Top, r.Left, overlap.Lines, overlap.Left-r.Left))
	}
	if overlap.Right() < r.Right() {
		out = append(out, NewRect(overlap.Top, overlap.Right(), overlap.Lines, r.Right()-overlap.Right()))
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
