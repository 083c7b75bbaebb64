// Package status exposes loop health over HTTP for a dashboard or an
// external prober. It reads loop statistics only; nothing here feeds back
// into the poll cycle.
package status

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/unrolled/logger"

	"tramflux/internal/poll"
)

// NewServer builds the status HTTP server around a running loop.
func NewServer(loop *poll.Loop, port int) *http.Server {
	r := mux.NewRouter()
	l := logger.New()
	r.Use(l.Handler)
	r.HandleFunc("/healthz", handleHealth(loop)).Methods(http.MethodGet)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func handleHealth(loop *poll.Loop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := loop.Stats()
		status := "ok"
		if snap.LastError != "" {
			status = "degraded"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
			poll.Snapshot
		}{Status: status, Snapshot: snap})
	}
}
