// Package anchor defines the trust anchor — the single persisted row of
// state the prover loop advances on every iteration — and the store that
// keeps it durable across restarts.
package anchor

import "github.com/timewave-computer/lightwave-go/crypto"

// TrustAnchor is the latest proven state of the recursion chain. Exactly
// one instance exists for the lifetime of a configured service; it is
// replaced atomically on every successful prover iteration.
//
// Invariants (I1-I4):
//   I1: Counter == 0 iff RecursiveProof/WrapperProof are both absent.
//   I2: WrapperProof, when present, was produced from RecursiveProof at
//       the same Counter.
//   I3: TrustedRoot always reflects the chain head committed by the most
//       recent successful recursion, never a pending or speculative one.
//   I4: TrustedSlot/TrustedHeight is monotonically non-decreasing across
//       successive stores.
type TrustAnchor struct {
	TrustedSlot   uint64 // Helios: beacon slot of the proven head; Tendermint: target height
	TrustedHeight uint64 // execution block number (Helios) or block height (Tendermint)
	TrustedRoot   crypto.Hash

	RecursiveProof         []byte
	RecursiveProofPresent  bool
	RecursivePublicValues  []byte

	WrapperProof        []byte
	WrapperProofPresent bool

	// Counter is the number of recursion steps folded into RecursiveProof.
	// Zero means no recursive proof has ever been produced.
	Counter uint64
}

// HasRecursiveProof reports whether a recursive proof has been stored.
func (a *TrustAnchor) HasRecursiveProof() bool {
	return a.RecursiveProofPresent
}

// HasWrapperProof reports whether a wrapper proof has been stored.
func (a *TrustAnchor) HasWrapperProof() bool {
	return a.WrapperProofPresent
}

// Genesis builds the initial trust anchor for a fresh deployment: the
// documented trusted checkpoint with no proofs yet produced (I1).
func Genesis(trustedSlot, trustedHeight uint64, trustedRoot crypto.Hash) *TrustAnchor {
	return &TrustAnchor{
		TrustedSlot:   trustedSlot,
		TrustedHeight: trustedHeight,
		TrustedRoot:   trustedRoot,
		Counter:       0,
	}
}
