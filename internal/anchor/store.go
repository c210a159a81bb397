package anchor

import (
	"fmt"

	"github.com/timewave-computer/lightwave-go/core/rawdb"
	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/codec"
)

// anchorKey is the sole key under which the trust anchor is stored. The
// store holds exactly one logical row at any time (I1).
var anchorKey = []byte("trust-anchor")

// Store persists a TrustAnchor to a single-row, crash-safe key-value
// store. Every Save call replaces the entire row atomically — FileDB.Put
// already writes via temp-file-then-rename, so no additional batching is
// needed for a store this shape.
type Store struct {
	db rawdb.KeyValueStore
}

// Open opens (or creates) the trust anchor store at dir, backed by a
// crash-safe on-disk FileDB.
func Open(dir string) (*Store, error) {
	db, err := rawdb.NewFileDB(dir)
	if err != nil {
		return nil, fmt.Errorf("anchor: open store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenMemory returns a Store backed by an in-memory, non-persistent
// database. Intended for tests and short-lived processes that don't need
// the trust anchor to survive a restart.
func OpenMemory() *Store {
	return &Store{db: rawdb.NewMemoryDB()}
}

// Close releases the store's underlying file lock and handles.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted trust anchor, or (nil, nil) if none has ever
// been saved — the caller must then initialize one via Genesis.
func (s *Store) Load() (*TrustAnchor, error) {
	raw, err := s.db.Get(anchorKey)
	if err != nil {
		if err == rawdb.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("anchor: load: %w", err)
	}
	return decodeAnchor(raw)
}

// Save atomically replaces the persisted trust anchor with a.
func (s *Store) Save(a *TrustAnchor) error {
	if err := s.db.Put(anchorKey, encodeAnchor(a)); err != nil {
		return fmt.Errorf("anchor: save: %w", err)
	}
	return nil
}

// Initialize writes the genesis anchor if and only if no anchor is
// currently persisted. It returns the anchor now on disk, whether newly
// written or pre-existing.
func (s *Store) Initialize(trustedSlot, trustedHeight uint64, trustedRoot crypto.Hash) (*TrustAnchor, error) {
	existing, err := s.Load()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	a := Genesis(trustedSlot, trustedHeight, trustedRoot)
	if err := s.Save(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the persisted anchor entirely. Used by the CLI's
// --delete flag to force a resync from genesis.
func (s *Store) Delete() error {
	if err := s.db.Delete(anchorKey); err != nil && err != rawdb.ErrNotFound {
		return fmt.Errorf("anchor: delete: %w", err)
	}
	return nil
}

func encodeAnchor(a *TrustAnchor) []byte {
	w := codec.NewWriter()
	w.PutUint64(a.TrustedSlot)
	w.PutUint64(a.TrustedHeight)
	w.PutFixed(a.TrustedRoot[:])
	w.PutBool(a.RecursiveProofPresent)
	w.PutBytes(a.RecursiveProof)
	w.PutBytes(a.RecursivePublicValues)
	w.PutBool(a.WrapperProofPresent)
	w.PutBytes(a.WrapperProof)
	w.PutUint64(a.Counter)
	return w.Bytes()
}

func decodeAnchor(raw []byte) (*TrustAnchor, error) {
	r := codec.NewReader(raw)
	a := &TrustAnchor{}

	var err error
	if a.TrustedSlot, err = r.Uint64(); err != nil {
		return nil, fmt.Errorf("anchor: decode trusted slot: %w", err)
	}
	if a.TrustedHeight, err = r.Uint64(); err != nil {
		return nil, fmt.Errorf("anchor: decode trusted height: %w", err)
	}
	root, err := r.Fixed(32)
	if err != nil {
		return nil, fmt.Errorf("anchor: decode trusted root: %w", err)
	}
	copy(a.TrustedRoot[:], root)
	if a.RecursiveProofPresent, err = r.Bool(); err != nil {
		return nil, fmt.Errorf("anchor: decode recursive proof flag: %w", err)
	}
	if a.RecursiveProof, err = r.Bytes(); err != nil {
		return nil, fmt.Errorf("anchor: decode recursive proof: %w", err)
	}
	if a.RecursivePublicValues, err = r.Bytes(); err != nil {
		return nil, fmt.Errorf("anchor: decode recursive public values: %w", err)
	}
	if a.WrapperProofPresent, err = r.Bool(); err != nil {
		return nil, fmt.Errorf("anchor: decode wrapper proof flag: %w", err)
	}
	if a.WrapperProof, err = r.Bytes(); err != nil {
		return nil, fmt.Errorf("anchor: decode wrapper proof: %w", err)
	}
	if a.Counter, err = r.Uint64(); err != nil {
		return nil, fmt.Errorf("anchor: decode counter: %w", err)
	}
	if !r.Done() {
		return nil, fmt.Errorf("anchor: decode: trailing bytes in stored record")
	}
	return a, nil
}
