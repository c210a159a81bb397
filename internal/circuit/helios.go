package circuit

import (
	"context"
	"fmt"

	"github.com/timewave-computer/lightwave-go/consensus"
	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/codec"
	"github.com/timewave-computer/lightwave-go/internal/electra"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
)

// HeliosRecursionInputs is the witness for one Helios recursion round.
type HeliosRecursionInputs struct {
	ElectraHeader     electra.BlockHeader
	ElectraBodyRoots  electra.BodyRoots
	HeliosProof       *groth16.Proof
	HeliosPublicValues []byte

	// Absent (nil) exactly when PreviousHead == genesis.TrustedHead.
	RecursiveProof        *groth16.Proof
	RecursivePublicValues []byte

	// RecursiveVKIdentifier is committed into this round's outputs; it
	// never changes across rounds since one deployment uses exactly one
	// recursion circuit. RecursiveVKObj is the same circuit's actual
	// verifying key, used to verify the previous round's proof.
	RecursiveVKIdentifier string
	RecursiveVKObj         *groth16.VerifyingKey
	PreviousHead           uint64
}

// Encode packages the witness fields into the opaque blob handed to the
// external recursion prover. The prover's own ELF is responsible for
// interpreting this layout; CheckHelios never reads it back.
func (in *HeliosRecursionInputs) Encode() []byte {
	w := codec.NewWriter()
	w.PutBytes(in.HeliosPublicValues)
	w.PutBytes(in.HeliosProof.A)
	w.PutBytes(in.HeliosProof.B)
	w.PutBytes(in.HeliosProof.C)
	if in.RecursiveProof != nil {
		w.PutBool(true)
		w.PutBytes(in.RecursivePublicValues)
		w.PutBytes(in.RecursiveProof.A)
		w.PutBytes(in.RecursiveProof.B)
		w.PutBytes(in.RecursiveProof.C)
	} else {
		w.PutBool(false)
	}
	w.PutBytes([]byte(in.RecursiveVKIdentifier))
	w.PutUint64(in.PreviousHead)
	return w.Bytes()
}

// CheckHelios evaluates the Helios recursion circuit's contract against
// inputs and returns the outputs it would commit on success. The Groth16
// oracle groth16.Verify is used for both the base-proof check and, on
// non-bootstrap rounds, the previous recursive-proof check.
func CheckHelios(genesis *HeliosGenesis, in *HeliosRecursionInputs) (*HeliosRecursionOutputs, error) {
	heliosOutput, err := DecodeHeliosBaseOutputs(in.HeliosPublicValues)
	if err != nil {
		return nil, fmt.Errorf("helios recursion: decode base outputs: %w", err)
	}

	stateRoot, blockNumberLeaf, err := electra.Bind(&in.ElectraHeader, &in.ElectraBodyRoots, heliosOutput.NewHeader)
	if err != nil {
		return nil, fmt.Errorf("helios recursion: header binding: %w", err)
	}

	ok, err := groth16.Verify(genesis.HeliosVK, in.HeliosProof, [][]byte{publicValuesDigest(in.HeliosPublicValues)})
	if err != nil {
		return nil, fmt.Errorf("helios recursion: base proof verify: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("helios recursion: base proof failed verification against HELIOS_VK")
	}

	if in.PreviousHead == genesis.TrustedHead {
		if in.RecursiveProof != nil {
			return nil, fmt.Errorf("helios recursion: bootstrap round must not carry a previous recursive proof")
		}
		if heliosOutput.PrevSyncCommitteeHash != genesis.TrustedSyncCommitteeHash {
			return nil, fmt.Errorf("helios recursion: bootstrap prevSyncCommitteeHash does not match TRUSTED_SYNC_COMMITTEE_HASH")
		}
	} else {
		if in.RecursiveProof == nil {
			return nil, fmt.Errorf("helios recursion: non-bootstrap round requires a previous recursive proof")
		}
		ok, err := groth16.Verify(in.RecursiveVKObj, in.RecursiveProof, [][]byte{publicValuesDigest(in.RecursivePublicValues)})
		if err != nil {
			return nil, fmt.Errorf("helios recursion: previous proof verify: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("helios recursion: previous recursive proof failed verification")
		}
		prev, err := DecodeHeliosRecursionOutputs(in.RecursivePublicValues)
		if err != nil {
			return nil, fmt.Errorf("helios recursion: decode previous outputs: %w", err)
		}

		if heliosOutput.PrevHead >= heliosOutput.NewHead {
			return nil, fmt.Errorf("helios recursion: newHead %d must be strictly greater than prevHead %d", heliosOutput.NewHead, heliosOutput.PrevHead)
		}

		prevPeriod := consensus.SyncCommitteePeriod(consensus.Slot(heliosOutput.PrevHead))
		newPeriod := consensus.SyncCommitteePeriod(consensus.Slot(heliosOutput.NewHead))
		if prevPeriod < newPeriod {
			if heliosOutput.PrevSyncCommitteeHash != prev.ActiveCommittee {
				return nil, fmt.Errorf("helios recursion: period boundary crossed but prevSyncCommitteeHash does not match previous active_committee")
			}
		} else {
			if heliosOutput.PrevSyncCommitteeHash != prev.PreviousCommittee {
				return nil, fmt.Errorf("helios recursion: same-period step but prevSyncCommitteeHash does not match previous previous_committee")
			}
		}
	}

	return &HeliosRecursionOutputs{
		ActiveCommittee:   heliosOutput.SyncCommitteeHash,
		PreviousCommittee: heliosOutput.PrevSyncCommitteeHash,
		Root:              stateRoot,
		Height:            electra.UnpadBlockNumber(blockNumberLeaf),
		VK:                in.RecursiveVKIdentifier,
	}, nil
}

// ProveHelios checks the circuit contract and, on success, hands the
// witness to backend to produce the actual recursive proof.
func ProveHelios(ctx context.Context, backend groth16.Backend, elf []byte, genesis *HeliosGenesis, in *HeliosRecursionInputs) (*groth16.Proof, []byte, error) {
	if _, err := CheckHelios(genesis, in); err != nil {
		return nil, nil, err
	}
	return backend.Prove(ctx, elf, in.Encode())
}

// publicValuesDigest reduces an arbitrary-length public-values blob to a
// single 32-byte field element, the form the Groth16 oracle's public
// input slot expects.
func publicValuesDigest(publicValues []byte) []byte {
	h := crypto.Keccak256Hash(publicValues)
	return h[:]
}

