package prover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/timewave-computer/lightwave-go/internal/anchor"
	"github.com/timewave-computer/lightwave-go/internal/baseproof"
	"github.com/timewave-computer/lightwave-go/internal/circuit"
	"github.com/timewave-computer/lightwave-go/internal/config"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
	"github.com/timewave-computer/lightwave-go/log"
)

// fakeBackend never gets far enough to be called in these tests; every
// round fails during the consensus RPC fetch, before backend.Prove runs.
type fakeBackend struct{}

func (fakeBackend) Setup(ctx context.Context, elf []byte) ([]byte, error) { return nil, nil }
func (fakeBackend) Prove(ctx context.Context, elf []byte, witness []byte) (*groth16.Proof, []byte, error) {
	return nil, nil, nil
}

func openTestStore(t *testing.T) *anchor.Store {
	t.Helper()
	dir := t.TempDir()
	store, err := anchor.Open(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("anchor.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.Initialize(0, 0, [32]byte{}); err != nil {
		t.Fatalf("store.Initialize: %v", err)
	}
	return store
}

// TestRunEscalatesAfterConsecutiveFailures drives the loop against a
// beacon endpoint that always errors. Every round fails the same
// retryable way, so Run must give up once MaxConsecutiveFailures is
// reached rather than retrying forever.
func TestRunEscalatesAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := openTestStore(t)
	vk := &groth16.VerifyingKey{IC: [][]byte{make([]byte, 64)}}

	loop := &Loop{
		Mode:          config.ChainHelios,
		Store:         store,
		Backend:       fakeBackend{},
		RecursionVK:   &circuit.RecursionVK{Identifier: "vk", VK: vk},
		HeliosGenesis: &circuit.HeliosGenesis{HeliosVK: vk},
		HeliosSource:  baseproof.NewHeliosSource(srv.URL),

		Backoff:                time.Millisecond,
		MaxConsecutiveFailures: 3,
		logger:                 log.Module("test"),
	}

	err := loop.Run(context.Background())
	if err == nil {
		t.Fatal("expected Run to return an error after repeated failures")
	}
	if !strings.Contains(err.Error(), "3 consecutive retryable round failures") {
		t.Errorf("error = %q, want mention of consecutive failure count", err.Error())
	}
}

// TestRunStopsOnFatalError confirms a non-retryable failure (here, an
// invalid chain mode) returns immediately without retrying.
func TestRunStopsOnFatalError(t *testing.T) {
	store := openTestStore(t)

	loop := &Loop{
		Mode:                   "not-a-mode",
		Store:                  store,
		Backend:                fakeBackend{},
		Backoff:                time.Millisecond,
		MaxConsecutiveFailures: DefaultMaxConsecutiveFailures,
		logger:                 log.Module("test"),
	}

	err := loop.Run(context.Background())
	if err == nil {
		t.Fatal("expected Run to return a fatal error for an invalid mode")
	}
	if strings.Contains(err.Error(), "consecutive retryable") {
		t.Errorf("fatal error should not be reported as a retry escalation, got %q", err.Error())
	}
}

// TestRunReturnsNilOnContextCancellation confirms the loop shuts down
// cleanly, with no error, when its context is cancelled mid-retry.
func TestRunReturnsNilOnContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := openTestStore(t)
	vk := &groth16.VerifyingKey{IC: [][]byte{make([]byte, 64)}}

	loop := &Loop{
		Mode:          config.ChainHelios,
		Store:         store,
		Backend:       fakeBackend{},
		RecursionVK:   &circuit.RecursionVK{Identifier: "vk", VK: vk},
		HeliosGenesis: &circuit.HeliosGenesis{HeliosVK: vk},
		HeliosSource:  baseproof.NewHeliosSource(srv.URL),

		Backoff:                time.Hour,
		MaxConsecutiveFailures: DefaultMaxConsecutiveFailures,
		logger:                 log.Module("test"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := loop.Run(ctx); err != nil {
		t.Errorf("Run returned %v, want nil on context cancellation", err)
	}
}
