// Package geom checks axis-aligned rectangles against their common bounding
// box after a quarter turn.
package geom

import "math"

// Rect is an axis-aligned rectangle given by its lower-left (X1, Y1) and
// upper-right (X2, Y2) corners.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

func (r Rect) Center() (float32, float32) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Rotate90 turns r a quarter turn about its own centre.
func (r Rect) Rotate90() Rect {
	cx, cy := r.Center()
	halfW := (r.Y2 - r.Y1) / 2
	halfH := (r.X2 - r.X1) / 2
	return Rect{X1: cx - halfW, Y1: cy - halfH, X2: cx + halfW, Y2: cy + halfH}
}

// Contains reports whether o lies entirely inside r; touching edges count
// as inside.
func (r Rect) Contains(o Rect) bool {
	return o.X1 >= r.X1 && o.X2 <= r.X2 && o.Y1 >= r.Y1 && o.Y2 <= r.Y2
}

// BoundingBox returns the smallest rectangle containing every rect, or the
// zero Rect when rects is empty.
func BoundingBox(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	box := Rect{
		X1: math.MaxFloat32, Y1: math.MaxFloat32,
		X2: -math.MaxFloat32, Y2: -math.MaxFloat32,
	}
	for _, r := range rects {
		box.X1 = min(box.X1, r.X1)
		box.Y1 = min(box.Y1, r.Y1)
		box.X2 = max(box.X2, r.X2)
		box.Y2 = max(box.Y2, r.Y2)
	}
	return box
}

// CountOutOfBounds counts the rects that protrude from box once rotated.
func CountOutOfBounds(box Rect, rects []Rect) int {
	n := 0
	for _, r := range rects {
		if !box.Contains(r.Rotate90()) {
			n++
		}
	}
	return n
}
