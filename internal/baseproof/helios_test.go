package baseproof

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/timewave-computer/lightwave-go/internal/retry"
)

func newTestHeliosServer(t *testing.T, finalizedSlot uint64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/eth/v1/beacon/headers/finalized", func(w http.ResponseWriter, r *http.Request) {
		writeBeaconHeader(t, w, finalizedSlot)
	})
	return httptest.NewServer(mux)
}

func newTestHeliosServerWithGenesis(t *testing.T, finalizedSlot, genesisTime uint64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/eth/v1/beacon/headers/finalized", func(w http.ResponseWriter, r *http.Request) {
		writeBeaconHeader(t, w, finalizedSlot)
	})
	mux.HandleFunc("/eth/v1/beacon/genesis", func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"data": map[string]any{
				"genesis_time": strconv.FormatUint(genesisTime, 10),
			},
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	})
	return httptest.NewServer(mux)
}

func writeBeaconHeader(t *testing.T, w http.ResponseWriter, slot uint64) {
	t.Helper()
	resp := map[string]any{
		"data": map[string]any{
			"header": map[string]any{
				"message": map[string]any{
					"slot": strconv.FormatUint(slot, 10),
				},
			},
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestHeliosSourceRunRejectsWhenFinalityNotReady(t *testing.T) {
	srv := newTestHeliosServer(t, 100) // latestSlot == trustedSlot -> not ready
	defer srv.Close()

	src := NewHeliosSource(srv.URL)
	_, err := src.Run(context.Background(), nil, nil, 100)
	if err == nil {
		t.Fatal("expected error when no new finalized slot is available")
	}
	if !retry.IsRetryable(err) {
		t.Errorf("expected retryable error, got %v", err)
	}
}

func TestHeliosSourceRunUsesSlotClockForRetryDelay(t *testing.T) {
	srv := newTestHeliosServerWithGenesis(t, 100, 0) // latestSlot == trustedSlot -> not ready
	defer srv.Close()

	src := NewHeliosSource(srv.URL)
	_, err := src.Run(context.Background(), nil, nil, 100)
	if err == nil {
		t.Fatal("expected error when no new finalized slot is available")
	}
	if !retry.IsRetryable(err) {
		t.Fatalf("expected retryable error, got %v", err)
	}
	delay, ok := retry.After(err)
	if !ok {
		t.Fatal("expected a slot-clock-derived retry delay")
	}
	if delay <= 0 || delay > 12*time.Second {
		t.Errorf("delay = %v, want a positive duration within one 12s slot", delay)
	}
}

func TestHeliosSourceLatestFinalizedSlot(t *testing.T) {
	srv := newTestHeliosServer(t, 11716416)
	defer srv.Close()

	src := NewHeliosSource(srv.URL)
	slot, err := src.latestFinalizedSlot(context.Background())
	if err != nil {
		t.Fatalf("latestFinalizedSlot: %v", err)
	}
	if slot != 11716416 {
		t.Errorf("slot = %d, want 11716416", slot)
	}
}
