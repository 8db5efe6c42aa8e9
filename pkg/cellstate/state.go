package cellstate

import "github.com/chazu/wayfarer/pkg/geometry"

// State classifies a pixel rectangle.
type State int

const (
	Safe State = iota
	Mixed
	Unsafe
)

func (s State) String() string {
	switch s {
	case Safe:
		return "SAFE"
	case Unsafe:
		return "UNSAFE"
	default:
		return "MIXED"
	}
}

// Reference colors used for exact pixel comparison. Owned here rather
// than in the rendering palette because the classifier itself depends
// on them; the overlay palette reuses these constants for the
// background fill it draws for each state.
var (
	SafeColor   = RGB{R: 255, G: 255, B: 255}
	UnsafeColor = RGB{R: 0, G: 0, B: 0}
)

// Of classifies the rectangle with origin (position) and size (w, h)
// over matrix m using the all/none-unsafe rule: UNSAFE iff every pixel
// in the rectangle equals UnsafeColor, SAFE iff none does, MIXED
// otherwise. This is deliberately not "any unsafe pixel disqualifies
// the cell" — see spec commentary on Grid coarsening.
func Of(m *Matrix, position geometry.Vector2D, w, h int) State {
	area := w * h
	unsafe := 0
	for dy := 0; dy < h; dy++ {
		y := position.Y + dy
		for dx := 0; dx < w; dx++ {
			x := position.X + dx
			if m.At(x, y) == UnsafeColor {
				unsafe++
			}
		}
	}
	switch {
	case unsafe == area:
		return Unsafe
	case unsafe == 0:
		return Safe
	default:
		return Mixed
	}
}
