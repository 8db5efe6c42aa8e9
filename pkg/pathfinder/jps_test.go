package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/graph"
	"github.com/chazu/wayfarer/pkg/world"
)

// containsVertex reports whether id appears among vs.
func containsVertex(vs []*graph.Vertex, id string) bool {
	for _, v := range vs {
		if v.ID() == id {
			return true
		}
	}
	return false
}

// TestPruneStraightDoesNotCornerCutBlockedForward is a regression test
// for the forced-neighbor diagonal extension: when the straight-ahead
// cell is blocked, the diagonal successor through an open perpendicular
// neighbor must not be offered, or JPS would cut the corner past the
// obstacle. Grid layout (3 cols x 2 rows, cellSize 10):
//
//	(0,0) (1,0) (2,0)
//	(0,1) (1,1) (2,1)
//
// (1,1) is UNSAFE. current = (0,1), direction East: forward=(1,1) is
// blocked, N-side=(0,0) is open. The buggy code still offered
// neighbor((0,0), E) = (1,0) as a jump candidate; the fix must not.
func TestPruneStraightDoesNotCornerCutBlockedForward(t *testing.T) {
	m := cellstate.NewMatrix(30, 20)
	for i := range m.Pixels {
		m.Pixels[i] = cellstate.SafeColor
	}
	for y := 10; y < 20; y++ {
		for x := 10; x < 20; x++ {
			m.Set(x, y, cellstate.UnsafeColor)
		}
	}

	g, err := world.NewGrid(m, 10)
	require.NoError(t, err)
	graphAll := graph.Build(g, false)

	currentEl, ok := g.Get(geometry.Vector2D{X: 5, Y: 15})
	require.True(t, ok)
	current, ok := graphAll.Vertex(currentEl)
	require.True(t, ok)

	northEl, ok := g.Get(geometry.Vector2D{X: 5, Y: 5})
	require.True(t, ok)
	north, ok := graphAll.Vertex(northEl)
	require.True(t, ok)

	forbiddenEl, ok := g.Get(geometry.Vector2D{X: 15, Y: 5})
	require.True(t, ok)
	forbidden, ok := graphAll.Vertex(forbiddenEl)
	require.True(t, ok)

	candidates := pruneStraight(graphAll, current, geometry.E, geometry.N, geometry.S)

	assert.True(t, containsVertex(candidates, north.ID()), "open perpendicular neighbor should still be offered")
	assert.False(t, containsVertex(candidates, forbidden.ID()), "diagonal extension past a blocked forward cell must not be offered")
}

// TestJPSNeverCornerCutsDiagonally integrates the fix: a search across a
// grid with a solid block must not find a path cheaper than A*'s
// pre-pruned graph allows, which would only happen if JPS's jump
// recursion slipped a corner-cutting move past the fix above.
func TestJPSNeverCornerCutsDiagonally(t *testing.T) {
	m := cellstate.NewMatrix(100, 100)
	for i := range m.Pixels {
		m.Pixels[i] = cellstate.SafeColor
	}
	for y := 40; y < 60; y++ {
		for x := 40; x < 60; x++ {
			m.Set(x, y, cellstate.UnsafeColor)
		}
	}

	g, err := world.NewGrid(m, 10)
	require.NoError(t, err)
	graphSafe := graph.Build(g, true)
	graphAll := graph.Build(g, false)

	startEl, _ := g.Get(geometry.Vector2D{X: 5, Y: 5})
	endEl, _ := g.Get(geometry.Vector2D{X: 95, Y: 95})

	startSafe, _ := graphSafe.Vertex(startEl)
	endSafe, _ := graphSafe.Vertex(endEl)
	startAll, _ := graphAll.Vertex(startEl)
	endAll, _ := graphAll.Vertex(endEl)

	astarResult := Run(AStarAlgorithm, graphSafe, startSafe, endSafe, geometry.Euclidean)
	jpsResult := Run(JPSAlgorithm, graphAll, startAll, endAll, geometry.Euclidean)

	require.True(t, astarResult.Reached)
	require.True(t, jpsResult.Reached)

	astarCost := pathCost(astarResult, endSafe, geometry.Euclidean)
	jpsCost := pathCost(jpsResult, endAll, geometry.Euclidean)

	assert.InDelta(t, astarCost, jpsCost, 1e-6)
}
