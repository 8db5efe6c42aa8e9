// Package httpapi exposes the engine over HTTP: POST /world/image and
// POST /path/image, mirroring the original service's app/router/world.py
// and app/router/path.py under a single router instead of FastAPI's
// per-module APIRouter.
package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/chazu/wayfarer/pkg/solve"
)

// NewHandler builds the full HTTP handler: routes wrapped in a
// permissive CORS policy, matching the original's
// CORSMiddleware(allow_origins=['*'], allow_credentials=True).
func NewHandler(logger *zap.Logger, defaults solve.Params) http.Handler {
	s := &Server{Logger: logger, Defaults: defaults}

	router := httprouter.New()
	router.POST("/world/image", s.handleWorldImage)
	router.POST("/path/image", s.handlePathImage)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(router)
}
