package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dutyswap/logger"
)

// RunIDHeader carries the per-request run id back to the client.
const RunIDHeader = "X-Run-ID"

type runIDKey struct{}

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	API     *APIHandlers
	Metrics *Metrics
}

// NewRouter wires the HTTP routes.
func NewRouter(log logger.Logger, deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", handleHealth)
	if deps.API != nil {
		mux.HandleFunc("/optimize", deps.API.handleOptimize)
	}
	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}

	return loggingMiddleware(log, mux)
}

// RunID returns the id assigned to the request by the router, or "" outside it.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

func loggingMiddleware(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set(RunIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), runIDKey{}, id))

		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Infof("run %s: %s %s -> %d in %dms",
			id, r.Method, r.URL.Path, rec.status, time.Since(start).Milliseconds())
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
