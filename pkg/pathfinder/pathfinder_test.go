package pathfinder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/graph"
	"github.com/chazu/wayfarer/pkg/world"
)

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "astar", AStarAlgorithm.String())
	assert.Equal(t, "jps", JPSAlgorithm.String())
}

// pathCost walks result.Parent from end back to start and sums metric
// distance between consecutive cell centers — the true geometric cost
// of the reconstructed route, independent of how many jump points the
// search happened to record along the way.
func pathCost(result *Result, end *graph.Vertex, metric geometry.Metric) float64 {
	total := 0.0
	current := end
	for {
		prev, ok := result.Parent[current.ID()]
		if !ok {
			break
		}
		total += metric.Calculate(current.Element.Cell().Center(), prev.Element.Cell().Center())
		current = prev
	}
	return total
}

func openGrid(t *testing.T, size, cellSize int) *world.Grid {
	t.Helper()
	m := cellstate.NewMatrix(size, size)
	for i := range m.Pixels {
		m.Pixels[i] = cellstate.SafeColor
	}
	g, err := world.NewGrid(m, cellSize)
	require.NoError(t, err)
	return g
}

func TestJPSMatchesAStarCostOnOpenGrid(t *testing.T) {
	grid := openGrid(t, 100, 10)

	graphSafe := graph.Build(grid, true)
	graphAll := graph.Build(grid, false)

	startEl, _ := grid.Get(geometry.Vector2D{X: 5, Y: 5})
	endEl, _ := grid.Get(geometry.Vector2D{X: 95, Y: 85})

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

func TestRunUnreachableWhenWalledOff(t *testing.T) {
	m := cellstate.NewMatrix(50, 30)
	for i := range m.Pixels {
		m.Pixels[i] = cellstate.SafeColor
	}
	// A full-height unsafe wall across the middle column seals the grid
	// into two halves once coarsened to 10px cells.
	for y := 0; y < 30; y++ {
		for x := 20; x < 30; x++ {
			m.Set(x, y, cellstate.UnsafeColor)
		}
	}

	g, err := world.NewGrid(m, 10)
	require.NoError(t, err)
	graphSafe := graph.Build(g, true)

	startEl, _ := g.Get(geometry.Vector2D{X: 5, Y: 5})
	endEl, _ := g.Get(geometry.Vector2D{X: 45, Y: 5})
	start, _ := graphSafe.Vertex(startEl)
	end, _ := graphSafe.Vertex(endEl)

	result := Run(AStarAlgorithm, graphSafe, start, end, geometry.Euclidean)
	assert.False(t, result.Reached)
}

func TestHeuristicUsesSameMetricAsCost(t *testing.T) {
	// A regression guard for spec.md's admissibility requirement: cost and
	// heuristic must use the identical metric, or A* is no longer optimal.
	grid := openGrid(t, 20, 10)
	graphAll := graph.Build(grid, true)
	a, _ := grid.Get(geometry.Vector2D{X: 5, Y: 5})
	b, _ := grid.Get(geometry.Vector2D{X: 15, Y: 5})
	va, _ := graphAll.Vertex(a)
	vb, _ := graphAll.Vertex(b)

	c := cost(geometry.Euclidean, va, vb)
	h := heuristic(geometry.Euclidean, va, vb)
	assert.True(t, math.Abs(c-h) < 1e-9)
}
