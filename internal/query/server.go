// Package query implements the service's sole user-facing surface: GET /
// returns the latest wrapper proof, hex-encoded, or a 404/500 status.
package query

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/timewave-computer/lightwave-go/internal/anchor"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
	"github.com/timewave-computer/lightwave-go/log"
	"github.com/timewave-computer/lightwave-go/node"
)

// Handler serves the query surface against an anchor store. It never
// mutates the store — the prover loop is the sole writer. GET / returns
// the latest wrapper proof; GET /healthz reports the lifecycle state of
// the process's own services (set via SetLifecycle once they're
// registered).
type Handler struct {
	store     *anchor.Store
	logger    *log.Logger
	lifecycle *node.LifecycleManager
}

func NewHandler(store *anchor.Store) *Handler {
	return &Handler{store: store, logger: log.Module("query")}
}

// SetLifecycle attaches the process's lifecycle manager so /healthz can
// report live service state. Safe to call after the handler is already
// serving, since lifecycle is only read, never written, by this package.
func (h *Handler) SetLifecycle(lm *node.LifecycleManager) {
	h.lifecycle = lm
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/healthz" {
		h.serveHealthz(w, r)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	a, err := h.store.Load()
	if err != nil {
		h.logger.Error("load anchor failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if a == nil || !a.HasWrapperProof() {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	proof, err := groth16.DecodeProof(a.WrapperProof)
	if err != nil {
		h.logger.Error("decode wrapper proof failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	serialized, err := json.Marshal(proof)
	if err != nil {
		h.logger.Error("marshal wrapper proof failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(hex.EncodeToString(serialized)))
}

// serveHealthz reports per-service lifecycle state as JSON. Returns 503
// if any registered service isn't running, or if no lifecycle manager
// has been attached yet.
func (h *Handler) serveHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.lifecycle == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	status := h.lifecycle.HealthCheck()
	healthy := true
	for _, up := range status {
		if !up {
			healthy = false
			break
		}
	}

	body, err := json.Marshal(status)
	if err != nil {
		h.logger.Error("marshal health status failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	w.Write(body)
}
