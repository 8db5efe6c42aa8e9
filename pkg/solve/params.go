// Package solve is the orchestrator: it validates a request, builds the
// chosen world and graph, runs the chosen pathfinder, and traces the
// result into a PathResult.
package solve

import (
	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/pathfinder"
	"github.com/chazu/wayfarer/pkg/tracer"
)

// WorldKind selects the decomposition strategy.
type WorldKind int

const (
	GridWorld WorldKind = iota
	QTreeWorld
)

func (k WorldKind) String() string {
	if k == QTreeWorld {
		return "qtree"
	}
	return "grid"
}

// Params bundles every option solve.Solve recognizes, mirroring the
// original service's Context/ContextBuilder (app/context.py).
type Params struct {
	World      WorldKind
	Pathfinder pathfinder.Algorithm
	Distance   geometry.Metric
	Trajectory tracer.Trajectory

	CellSize int

	Start, End geometry.Vector2D

	BorderSize     int
	TrajectorySize int
	PointSize      int
}

// Defaults returns the field defaults the original Context carried
// (cell_size 50, trajectory Smooth, start (100,100), end (5000,5000));
// Pathfinder and Distance have no canonical default in the core spec,
// so these are sensible config-layer fallbacks, not a contract the
// orchestrator depends on.
func Defaults() Params {
	return Params{
		World:      GridWorld,
		Pathfinder: pathfinder.AStarAlgorithm,
		Distance:   geometry.Euclidean,
		Trajectory: tracer.Smooth,
		CellSize:   50,
		Start:      geometry.Vector2D{X: 100, Y: 100},
		End:        geometry.Vector2D{X: 5000, Y: 5000},
		BorderSize: 1,
		TrajectorySize: 5,
		PointSize:      10,
	}
}

// PathResult is returned to the rendering collaborator.
type PathResult struct {
	Cells   []cellstate.Cell
	Visited []cellstate.Cell
	Path    []cellstate.Cell
	Points  []geometry.Vector2D
}
