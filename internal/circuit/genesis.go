// Package circuit implements the predicates that the recursion and
// wrapper circuits attest to. These functions are the logical contract a
// zk-VM guest program would enforce; the actual SNARK arithmetization and
// proof generation is delegated to a groth16.Backend (see internal/worker).
package circuit

import (
	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
)

// HeliosGenesis holds the compiled-in bootstrap constants for a Helios
// deployment: the trusted head slot, the sync committee hash valid at
// that slot, and the base circuit's verifying key. These are produced by
// the --generate-recursion-circuit bootstrap action and fixed for the
// deployment's lifetime thereafter.
type HeliosGenesis struct {
	TrustedHead              uint64
	TrustedSyncCommitteeHash crypto.Hash
	HeliosVK                 *groth16.VerifyingKey
}

// TendermintGenesis is the Tendermint-mode equivalent of HeliosGenesis.
type TendermintGenesis struct {
	TrustedHeight uint64
	TrustedRoot   crypto.Hash
	TendermintVK  *groth16.VerifyingKey
}

// RecursionVK is the canonical recursion-circuit verifying key the
// wrapper circuit hard-codes. It is produced once, at
// --generate-wrapper-circuit time, by compiling the recursion circuit and
// reading back its VK — never recomputed at runtime.
type RecursionVK struct {
	Identifier string
	VK         *groth16.VerifyingKey
}
