package query

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/anchor"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
	"github.com/timewave-computer/lightwave-go/node"
)

type fakeService struct{ name string }

func (f *fakeService) Name() string { return f.name }
func (f *fakeService) Start() error { return nil }
func (f *fakeService) Stop() error  { return nil }

func TestHandlerHealthzWithoutLifecycleIs503(t *testing.T) {
	store := anchor.OpenMemory()
	defer store.Close()

	h := NewHandler(store)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rr.Code)
	}
}

func TestHandlerHealthzReflectsLifecycleState(t *testing.T) {
	store := anchor.OpenMemory()
	defer store.Close()

	lm := node.NewLifecycleManager(node.DefaultLifecycleConfig())
	if err := lm.Register(&fakeService{name: "svc-a"}, 0); err != nil {
		t.Fatalf("Register: %v", err)
	}

	h := NewHandler(store)
	h.SetLifecycle(lm)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status before start = %d, want 503", rr.Code)
	}

	if errs := lm.StartAll(); len(errs) > 0 {
		t.Fatalf("StartAll: %v", errs)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("status after start = %d, want 200", rr.Code)
	}
}

func TestHandlerReturns404WhenStoreEmpty(t *testing.T) {
	store, err := anchor.Open(t.TempDir())
	if err != nil {
		t.Fatalf("anchor.Open: %v", err)
	}
	defer store.Close()

	h := NewHandler(store)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestHandlerReturns404WhenNoWrapperProofYet(t *testing.T) {
	store, err := anchor.Open(t.TempDir())
	if err != nil {
		t.Fatalf("anchor.Open: %v", err)
	}
	defer store.Close()

	if _, err := store.Initialize(100, 0, crypto.Hash{}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	h := NewHandler(store)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestHandlerReturnsHexEncodedProof(t *testing.T) {
	store, err := anchor.Open(t.TempDir())
	if err != nil {
		t.Fatalf("anchor.Open: %v", err)
	}
	defer store.Close()

	a, err := store.Initialize(100, 0, crypto.Hash{})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	proof := &groth16.Proof{A: make([]byte, 64), B: make([]byte, 128), C: make([]byte, 64)}
	a.WrapperProof = groth16.EncodeProof(proof)
	a.WrapperProofPresent = true
	if err := store.Save(a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	h := NewHandler(store)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if _, err := hex.DecodeString(rr.Body.String()); err != nil {
		t.Errorf("response body is not valid hex: %v", err)
	}
}
