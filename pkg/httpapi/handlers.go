package httpapi

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/render"
	"github.com/chazu/wayfarer/pkg/solve"
	"github.com/chazu/wayfarer/pkg/world"
)

// Server holds the collaborators every handler needs: a logger and the
// request-param defaults loaded from config.
type Server struct {
	Logger   *zap.Logger
	Defaults solve.Params
}

// handleWorldImage serves POST /world/image: decompose the uploaded
// raster and render the cell decomposition with no path overlay.
func (s *Server) handleWorldImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := s.requestLogger(r)

	data, ext, err := readUpload(r)
	if err != nil {
		log.Warn("world image: bad upload", zap.Error(err))
		writeError(w, err)
		return
	}

	matrix, err := render.Decode(ext, data)
	if err != nil {
		log.Warn("world image: decode failed", zap.Error(err))
		writeError(w, err)
		return
	}

	p, err := worldParams(r, s.Defaults)
	if err != nil {
		log.Warn("world image: bad params", zap.Error(err))
		writeError(w, err)
		return
	}

	var built world.World
	if p.World == solve.QTreeWorld {
		built, err = world.NewQuadtree(matrix, p.CellSize)
	} else {
		built, err = world.NewGrid(matrix, p.CellSize)
	}
	if err != nil {
		log.Warn("world image: decomposition failed", zap.Error(err))
		writeError(w, err)
		return
	}

	elements := built.Elements()
	cells := make([]cellstate.Cell, len(elements))
	for i, e := range elements {
		cells[i] = e.Cell()
	}

	png := render.EncodeWorld(matrix.Width, matrix.Height, cells, render.Options{BorderSize: p.BorderSize})
	log.Info("world image rendered", zap.String("world", p.World.String()), zap.Int("cells", len(cells)))
	writePNG(w, png)
}

// handlePathImage serves POST /path/image: decode, solve, and render
// the cell decomposition with visited/path overlays and the trajectory.
func (s *Server) handlePathImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := s.requestLogger(r)

	data, ext, err := readUpload(r)
	if err != nil {
		log.Warn("path image: bad upload", zap.Error(err))
		writeError(w, err)
		return
	}

	matrix, err := render.Decode(ext, data)
	if err != nil {
		log.Warn("path image: decode failed", zap.Error(err))
		writeError(w, err)
		return
	}

	p, err := pathParams(r, s.Defaults)
	if err != nil {
		log.Warn("path image: bad params", zap.Error(err))
		writeError(w, err)
		return
	}

	result, err := solve.Solve(matrix, p, log)
	if err != nil {
		log.Warn("path image: solve failed", zap.Error(err))
		writeError(w, err)
		return
	}

	// An empty Path/Points means the search exhausted without reaching
	// end — a normal result per spec.md §7, rendered as the world plus
	// whatever was visited, with no path/trajectory overlay.
	opts := render.Options{BorderSize: p.BorderSize, TrajectorySize: p.TrajectorySize, PointSize: p.PointSize}
	png := render.EncodePath(matrix.Width, matrix.Height, result, opts)
	log.Info("path image rendered",
		zap.String("pathfinder", p.Pathfinder.String()),
		zap.Int("path_cells", len(result.Path)),
		zap.Int("visited_cells", len(result.Visited)))
	writePNG(w, png)
}

func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	id := r.Header.Get("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	return s.Logger.With(zap.String("request_id", id), zap.String("path", r.URL.Path))
}

func readUpload(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, "", err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return data, extOf(header), nil
}

func extOf(header *multipart.FileHeader) string {
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		return ".png"
	}
	return ext
}

func writePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
