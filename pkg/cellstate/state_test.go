package cellstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chazu/wayfarer/pkg/geometry"
)

func fillMatrix(w, h int, c RGB) *Matrix {
	m := NewMatrix(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

func TestOfAllSafe(t *testing.T) {
	m := fillMatrix(4, 4, SafeColor)
	assert.Equal(t, Safe, Of(m, geometry.Vector2D{X: 0, Y: 0}, 4, 4))
}

func TestOfAllUnsafe(t *testing.T) {
	m := fillMatrix(4, 4, UnsafeColor)
	assert.Equal(t, Unsafe, Of(m, geometry.Vector2D{X: 0, Y: 0}, 4, 4))
}

func TestOfMixed(t *testing.T) {
	m := fillMatrix(4, 4, SafeColor)
	m.Set(2, 2, UnsafeColor)
	assert.Equal(t, Mixed, Of(m, geometry.Vector2D{X: 0, Y: 0}, 4, 4))
}

func TestOfIsTotal(t *testing.T) {
	// Every possible pixel mix classifies to exactly one of the three
	// states — there is no rectangle the classifier refuses to label.
	m := NewMatrix(2, 2)
	colors := []RGB{SafeColor, UnsafeColor, {R: 1, G: 2, B: 3}, SafeColor}
	i := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			m.Set(x, y, colors[i])
			i++
		}
	}
	s := Of(m, geometry.Vector2D{X: 0, Y: 0}, 2, 2)
	assert.Contains(t, []State{Safe, Mixed, Unsafe}, s)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "SAFE", Safe.String())
	assert.Equal(t, "UNSAFE", Unsafe.String())
	assert.Equal(t, "MIXED", Mixed.String())
}
