package geometry

import "math"

// SegmentIntersect finds where segment (p1,p2) crosses segment (p3,p4),
// rounding the result to the nearest integer point. When the segments
// are collinear and overlap, the degenerate intersection is resolved
// deterministically by taking the point on the overlap farthest along
// the (p1->p2) direction, per spec.md's smoothing design note.
func SegmentIntersect(p1, p2, p3, p4 Vector2D) (Vector2D, bool) {
	rx, ry := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	sx, sy := float64(p4.X-p3.X), float64(p4.Y-p3.Y)
	qpx, qpy := float64(p3.X-p1.X), float64(p3.Y-p1.Y)

	rxs := rx*sy - ry*sx

	if rxs == 0 {
		if qpx*ry-qpy*rx != 0 {
			return Vector2D{}, false // parallel, not collinear
		}
		return collinearFarthest(p1, rx, ry, p3, p4)
	}

	t := (qpx*sy - qpy*sx) / rxs
	u := (qpx*ry - qpy*rx) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vector2D{}, false
	}

	ix := float64(p1.X) + t*rx
	iy := float64(p1.Y) + t*ry
	return Vector2D{X: int(math.Round(ix)), Y: int(math.Round(iy))}, true
}

// collinearFarthest projects p3/p4 onto the line through p1 with
// direction (rx, ry), intersects that projected range with [0,1] (the
// p1->p2 segment itself), and returns the point at the far end of the
// overlap — the deterministic choice spec.md calls for.
func collinearFarthest(p1 Vector2D, rx, ry float64, p3, p4 Vector2D) (Vector2D, bool) {
	rr := rx*rx + ry*ry
	if rr == 0 {
		return Vector2D{}, false
	}
	proj := func(p Vector2D) float64 {
		return (float64(p.X-p1.X)*rx + float64(p.Y-p1.Y)*ry) / rr
	}
	t3, t4 := proj(p3), proj(p4)
	lo, hi := t3, t4
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	if lo > hi {
		return Vector2D{}, false
	}
	ix := float64(p1.X) + hi*rx
	iy := float64(p1.Y) + hi*ry
	return Vector2D{X: int(math.Round(ix)), Y: int(math.Round(iy))}, true
}
