// Package palette owns the reference colors the renderer draws with,
// following the registry-of-constants shape of the teacher's terrain
// registry (pkg/tilemap/terrain.go in the original game code this
// module was adapted from).
package palette

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/chazu/wayfarer/pkg/cellstate"
)

// CellColors maps a cell's classification to its background fill,
// reusing the exact reference colors the classifier itself compares
// pixels against for SAFE/UNSAFE, plus a distinct MIXED tone.
var CellColors = map[cellstate.State]rl.Color{
	cellstate.Safe:   toRL(cellstate.SafeColor),
	cellstate.Unsafe: toRL(cellstate.UnsafeColor),
	cellstate.Mixed:  rl.NewColor(160, 160, 160, 255),
}

// Overlay colors for the visualization layer drawn on top of cells.
var (
	Border     = rl.NewColor(90, 90, 90, 255)
	Visited    = rl.NewColor(173, 216, 230, 255)
	Path       = rl.NewColor(255, 165, 0, 255)
	Point      = rl.NewColor(220, 20, 60, 255)
	Trajectory = rl.NewColor(30, 144, 255, 255)
)

func toRL(c cellstate.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// ColorFor returns the background fill for a cell's state, defaulting
// to the MIXED tone for any state that somehow isn't registered.
func ColorFor(s cellstate.State) rl.Color {
	if c, ok := CellColors[s]; ok {
		return c
	}
	return CellColors[cellstate.Mixed]
}
