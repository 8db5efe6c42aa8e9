package solve

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/graph"
	"github.com/chazu/wayfarer/pkg/pathfinder"
	"github.com/chazu/wayfarer/pkg/tracer"
	"github.com/chazu/wayfarer/pkg/world"
)

// Solve is the engine's single entry point: validate, build world and
// graph, search, trace, and return a PathResult. logger may be nil, in
// which case per-stage timing is not logged. Stage timings mirror the
// original's @timing decorator (core/timing.py) applied to
// Grid/QTree construction, World.graph, the pathfinder's method, and
// Tracer.backtrace — reported here as zap.Duration fields on one Info
// line instead of per-stage prints.
func Solve(m *cellstate.Matrix, p Params, logger *zap.Logger) (*PathResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if p.Start.Equals(p.End) {
		return nil, newError(EndpointsCoincide, "start and end coincide")
	}

	worldStart := time.Now()
	w, err := buildWorld(m, p)
	worldElapsed := time.Since(worldStart)
	if err != nil {
		if errors.Is(err, world.ErrMalformedRaster) {
			return nil, newError(MalformedRaster, err.Error())
		}
		return nil, err
	}

	startEl, ok := w.Get(p.Start)
	if !ok {
		return nil, newPointError(OutOfBounds, p.Start, "start out of bounds")
	}
	endEl, ok := w.Get(p.End)
	if !ok {
		return nil, newPointError(OutOfBounds, p.End, "end out of bounds")
	}

	if !startEl.Safe() {
		return nil, newPointError(EndpointUnsafe, p.Start, "start is not safe")
	}
	if !endEl.Safe() {
		return nil, newPointError(EndpointUnsafe, p.End, "end is not safe")
	}

	if p.Pathfinder == pathfinder.JPSAlgorithm && p.World != GridWorld {
		return nil, newError(UnsupportedPair, "JPS is only supported on a grid world")
	}

	onlySafe := p.Pathfinder == pathfinder.AStarAlgorithm

	graphStart := time.Now()
	g := graph.Build(w, onlySafe)
	graphElapsed := time.Since(graphStart)

	startVertex, _ := g.Vertex(startEl)
	endVertex, _ := g.Vertex(endEl)

	searchStart := time.Now()
	search := pathfinder.Run(p.Pathfinder, g, startVertex, endVertex, p.Distance)
	searchElapsed := time.Since(searchStart)

	traceStart := time.Now()
	trace, traceErr := tracer.Backtrace(search, startVertex, endVertex, p.Start, p.End, p.Trajectory)
	traceElapsed := time.Since(traceStart)

	if traceErr != nil {
		if errors.Is(traceErr, tracer.ErrNoPath) {
			// Search exhausted without reaching end: a normal result with
			// an empty path, not an error, per spec.md §7's propagation
			// policy ("algorithmic outcomes are returned as a normal
			// result with empty path").
			logger.Info("solve timing",
				zap.Duration("world_build", worldElapsed),
				zap.Duration("graph_build", graphElapsed),
				zap.Duration("search", searchElapsed),
				zap.Duration("backtrace", traceElapsed),
				zap.Int("visited_cells", len(search.Visited)),
				zap.Int("path_cells", 0),
			)
			return &PathResult{
				Cells:   allCells(w),
				Visited: cellsOf(search.Visited, func(v *graph.Vertex) cellstate.Cell { return v.Element.Cell() }),
			}, nil
		}
		return nil, traceErr
	}

	logger.Info("solve timing",
		zap.Duration("world_build", worldElapsed),
		zap.Duration("graph_build", graphElapsed),
		zap.Duration("search", searchElapsed),
		zap.Duration("backtrace", traceElapsed),
		zap.Int("visited_cells", len(trace.Visited)),
		zap.Int("path_cells", len(trace.Path)),
	)

	return &PathResult{
		Cells:   allCells(w),
		Visited: trace.Visited,
		Path:    trace.Path,
		Points:  trace.Points,
	}, nil
}

func buildWorld(m *cellstate.Matrix, p Params) (world.World, error) {
	if p.World == QTreeWorld {
		return world.NewQuadtree(m, p.CellSize)
	}
	return world.NewGrid(m, p.CellSize)
}

func allCells(w world.World) []cellstate.Cell {
	elements := w.Elements()
	cells := make([]cellstate.Cell, len(elements))
	for i, e := range elements {
		cells[i] = e.Cell()
	}
	return cells
}

func cellsOf[T any](items []T, get func(T) cellstate.Cell) []cellstate.Cell {
	cells := make([]cellstate.Cell, len(items))
	for i, item := range items {
		cells[i] = get(item)
	}
	return cells
}
