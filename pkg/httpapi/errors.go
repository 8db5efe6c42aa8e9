package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/chazu/wayfarer/pkg/solve"
)

// writeError maps a core error to a status code and writes a JSON
// {"error": "..."} body, per SPEC_FULL.md's HTTP surface. Any error
// that isn't a *solve.CoreError (decode failure, malformed form field)
// is treated as a 400.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	kind, ok := solve.KindOf(err)
	if !ok {
		return http.StatusBadRequest
	}
	switch kind {
	case solve.EndpointsCoincide, solve.OutOfBounds, solve.EndpointUnsafe, solve.UnsupportedPair, solve.MalformedRaster:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
