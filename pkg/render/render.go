// Package render decodes an uploaded raster into a cellstate.Matrix and
// encodes a solve.PathResult back into a PNG visualization, reusing the
// teacher's raylib-go dependency headlessly (its image module needs no
// GL context) instead of adding a second image library.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/palette"
	"github.com/chazu/wayfarer/pkg/solve"
)

// Options carries the visual-only passthrough parameters spec.md §6
// treats as opaque to the core.
type Options struct {
	BorderSize     int
	TrajectorySize int
	PointSize      int
}

// Decode reads an uploaded image (any format raylib recognizes from its
// extension, e.g. ".png") into a row-major RGB matrix.
func Decode(fileExt string, data []byte) (*cellstate.Matrix, error) {
	img := rl.LoadImageFromMemory(fileExt, data, int32(len(data)))
	defer rl.UnloadImage(img)

	colors := rl.LoadImageColors(img)
	m := cellstate.NewMatrix(int(img.Width), int(img.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := colors[y*m.Width+x]
			m.Set(x, y, cellstate.RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return m, nil
}

// EncodeWorld renders just the cell decomposition — the supplemented
// world-only visualization endpoint — with no path/visited/trajectory
// overlay.
func EncodeWorld(width, height int, cells []cellstate.Cell, opts Options) []byte {
	img := drawCells(width, height, cells, nil, nil, opts)
	return export(img)
}

// EncodePath renders the full visualization: cells, visited overlay,
// path overlay, and the trajectory with point markers.
func EncodePath(width, height int, result *solve.PathResult, opts Options) []byte {
	pathSet := cellKeys(result.Path)
	visitedSet := cellKeys(result.Visited)

	img := drawCells(width, height, result.Cells, visitedSet, pathSet, opts)
	drawTrajectory(img, result.Points, opts)
	return export(img)
}

func drawCells(width, height int, cells []cellstate.Cell, visited, path map[string]bool, opts Options) *rl.Image {
	img := rl.GenImageColor(width, height, rl.White)

	for _, c := range cells {
		fill := palette.ColorFor(c.State)
		key := cellstate.CellKey(c)
		switch {
		case path != nil && path[key]:
			fill = palette.Path
		case visited != nil && visited[key]:
			fill = palette.Visited
		}

		rl.ImageDrawRectangle(img, int32(c.Position.X), int32(c.Position.Y), int32(c.Width), int32(c.Height), fill)
		if opts.BorderSize > 0 {
			rect := rl.NewRectangle(float32(c.Position.X), float32(c.Position.Y), float32(c.Width), float32(c.Height))
			rl.ImageDrawRectangleLines(img, rect, int32(opts.BorderSize), palette.Border)
		}
	}

	return img
}

func drawTrajectory(img *rl.Image, points []geometry.Vector2D, opts Options) {
	if len(points) == 0 {
		return
	}

	if opts.TrajectorySize > 0 {
		for i := 0; i < len(points)-1; i++ {
			a, b := points[i], points[i+1]
			rl.ImageDrawLineEx(img,
				rl.NewVector2(float32(a.X), float32(a.Y)),
				rl.NewVector2(float32(b.X), float32(b.Y)),
				int32(opts.TrajectorySize), palette.Trajectory)
		}
	}

	if opts.PointSize > 0 {
		for _, p := range points {
			rl.ImageDrawCircle(img, int32(p.X), int32(p.Y), int32(opts.PointSize), palette.Point)
		}
	}
}

func export(img *rl.Image) []byte {
	defer rl.UnloadImage(img)
	fileSize := int32(0)
	return rl.ExportImageToMemory(*img, ".png", &fileSize)
}

func cellKeys(cells []cellstate.Cell) map[string]bool {
	set := make(map[string]bool, len(cells))
	for _, c := range cells {
		set[cellstate.CellKey(c)] = true
	}
	return set
}
