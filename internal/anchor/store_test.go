package anchor

import (
	"bytes"
	"testing"

	"github.com/timewave-computer/lightwave-go/crypto"
)

func TestOpenMemoryRoundTrip(t *testing.T) {
	s := OpenMemory()
	defer s.Close()

	root := crypto.Keccak256Hash([]byte("genesis"))
	a, err := s.Initialize(100, 0, root)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if a.TrustedSlot != 100 {
		t.Fatalf("unexpected genesis anchor: %+v", a)
	}

	a.Counter = 5
	a.WrapperProofPresent = true
	a.WrapperProof = []byte("proof-bytes")
	if err := s.Save(a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Counter != 5 || !bytes.Equal(loaded.WrapperProof, []byte("proof-bytes")) {
		t.Fatalf("unexpected loaded anchor: %+v", loaded)
	}
}

func TestStoreInitializeWritesGenesisOnce(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	root := crypto.Keccak256Hash([]byte("genesis"))
	a, err := s.Initialize(100, 0, root)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if a.TrustedSlot != 100 || a.Counter != 0 || a.HasRecursiveProof() {
		t.Fatalf("unexpected genesis anchor: %+v", a)
	}

	// Second call must not overwrite the first.
	again, err := s.Initialize(999, 0, crypto.Hash{})
	if err != nil {
		t.Fatalf("Initialize (second): %v", err)
	}
	if again.TrustedSlot != 100 {
		t.Fatalf("Initialize overwrote existing anchor: got slot %d", again.TrustedSlot)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	a := Genesis(0, 42, crypto.Keccak256Hash([]byte("root")))
	a.RecursiveProof = []byte{1, 2, 3}
	a.RecursiveProofPresent = true
	a.RecursivePublicValues = []byte{4, 5}
	a.Counter = 7

	if err := s.Save(a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.TrustedHeight != 42 || got.Counter != 7 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if !bytes.Equal(got.RecursiveProof, a.RecursiveProof) {
		t.Fatalf("recursive proof mismatch: %x != %x", got.RecursiveProof, a.RecursiveProof)
	}
	if got.WrapperProofPresent {
		t.Fatalf("expected no wrapper proof, got one")
	}
}

func TestStoreLoadMissingReturnsNil(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil anchor before initialization, got %+v", got)
	}
}

func TestStoreDeleteThenLoadMissing(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := s.Initialize(1, 1, crypto.Hash{}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := s.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil anchor after delete, got %+v", got)
	}
}
