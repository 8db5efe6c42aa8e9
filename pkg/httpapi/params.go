package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/pathfinder"
	"github.com/chazu/wayfarer/pkg/solve"
	"github.com/chazu/wayfarer/pkg/tracer"
)

// formInt reads an integer form field, falling back to def when the
// field is absent or empty.
func formInt(r *http.Request, key string, def int) (int, error) {
	v := r.FormValue(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func parseWorld(v string) (solve.WorldKind, error) {
	switch v {
	case "", "grid":
		return solve.GridWorld, nil
	case "qtree":
		return solve.QTreeWorld, nil
	default:
		return 0, fmt.Errorf("world: unrecognized value %q", v)
	}
}

func parsePathfinder(v string) (pathfinder.Algorithm, error) {
	switch v {
	case "", "astar":
		return pathfinder.AStarAlgorithm, nil
	case "jps":
		return pathfinder.JPSAlgorithm, nil
	default:
		return 0, fmt.Errorf("pathfinder: unrecognized value %q", v)
	}
}

func parseDistance(v string) (geometry.Metric, error) {
	switch v {
	case "", "euclidean":
		return geometry.Euclidean, nil
	case "manhattan":
		return geometry.Manhattan, nil
	default:
		return 0, fmt.Errorf("distance: unrecognized value %q", v)
	}
}

func parseTrajectory(v string) (tracer.Trajectory, error) {
	switch v {
	case "", "smooth":
		return tracer.Smooth, nil
	case "sharp":
		return tracer.Sharp, nil
	default:
		return 0, fmt.Errorf("trajectory: unrecognized value %q", v)
	}
}

// worldParams decodes a POST /world/image request's form fields, using
// the server's configured defaults for anything omitted.
func worldParams(r *http.Request, defaults solve.Params) (solve.Params, error) {
	p := solve.Params{
		World:      defaults.World,
		BorderSize: defaults.BorderSize,
		CellSize:   defaults.CellSize,
	}

	world, err := parseWorld(r.FormValue("world"))
	if err != nil {
		return p, err
	}
	p.World = world

	if p.CellSize, err = formInt(r, "cell_size", defaults.CellSize); err != nil {
		return p, err
	}
	if p.BorderSize, err = formInt(r, "border_size", defaults.BorderSize); err != nil {
		return p, err
	}
	return p, nil
}

// pathParams decodes a POST /path/image request's form fields.
func pathParams(r *http.Request, defaults solve.Params) (solve.Params, error) {
	p := defaults

	var err error
	if p.World, err = parseWorld(r.FormValue("world")); err != nil {
		return p, err
	}
	if p.Pathfinder, err = parsePathfinder(r.FormValue("pathfinder")); err != nil {
		return p, err
	}
	if p.Distance, err = parseDistance(r.FormValue("distance")); err != nil {
		return p, err
	}
	if p.Trajectory, err = parseTrajectory(r.FormValue("trajectory")); err != nil {
		return p, err
	}

	if p.CellSize, err = formInt(r, "cell_size", defaults.CellSize); err != nil {
		return p, err
	}
	if p.BorderSize, err = formInt(r, "border_size", defaults.BorderSize); err != nil {
		return p, err
	}
	if p.TrajectorySize, err = formInt(r, "trajectory_size", defaults.TrajectorySize); err != nil {
		return p, err
	}
	if p.PointSize, err = formInt(r, "point_size", defaults.PointSize); err != nil {
		return p, err
	}

	startX, err := formInt(r, "start_x", defaults.Start.X)
	if err != nil {
		return p, err
	}
	startY, err := formInt(r, "start_y", defaults.Start.Y)
	if err != nil {
		return p, err
	}
	endX, err := formInt(r, "end_x", defaults.End.X)
	if err != nil {
		return p, err
	}
	endY, err := formInt(r, "end_y", defaults.End.Y)
	if err != nil {
		return p, err
	}
	p.Start = geometry.Vector2D{X: startX, Y: startY}
	p.End = geometry.Vector2D{X: endX, Y: endY}

	return p, nil
}
