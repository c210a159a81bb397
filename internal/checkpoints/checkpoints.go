// Package checkpoints holds the hard-coded genesis constants each
// deployment bootstraps its recursion circuit from: a trusted slot or
// height, and the chain state known to be valid at that point. These are
// the seeds --generate-recursion-circuit compiles into the circuit
// blueprint; they never change at runtime.
package checkpoints

import "github.com/timewave-computer/lightwave-go/crypto"

// HeliosTrustedSlot is the bootstrap beacon slot for Helios deployments.
// HeliosTrustedSyncCommitteeHash is derived from this slot at
// --generate-recursion-circuit time rather than hard-coded, since it
// depends on the sync committee active at that slot.
const HeliosTrustedSlot uint64 = 11715392

// TendermintTrustedHeight is the bootstrap block height for Tendermint
// deployments, and TendermintTrustedRoot the header hash known valid at
// that height.
const TendermintTrustedHeight uint64 = 31134400

var TendermintTrustedRoot = crypto.Hash{
	133, 197, 217, 208, 182, 161, 40, 102, 214, 74, 216, 44, 87, 164, 134, 95,
	150, 222, 115, 170, 222, 9, 183, 138, 57, 107, 86, 21, 40, 96, 131, 113,
}
