package circuit

import (
	"context"
	"fmt"

	"github.com/timewave-computer/lightwave-go/internal/codec"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
)

// TendermintRecursionInputs is the witness for one Tendermint recursion
// round.
type TendermintRecursionInputs struct {
	TendermintProof        *groth16.Proof
	TendermintPublicValues []byte

	// Absent (nil) exactly when TrustedHeight == genesis.TrustedHeight.
	RecursiveProof        *groth16.Proof
	RecursivePublicValues []byte

	RecursiveVKIdentifier string
	RecursiveVKObj        *groth16.VerifyingKey
	TrustedHeight         uint64
}

// Encode packages the witness fields into the opaque blob handed to the
// external recursion prover.
func (in *TendermintRecursionInputs) Encode() []byte {
	w := codec.NewWriter()
	w.PutBytes(in.TendermintPublicValues)
	w.PutBytes(in.TendermintProof.A)
	w.PutBytes(in.TendermintProof.B)
	w.PutBytes(in.TendermintProof.C)
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
	w.PutUint64(in.TrustedHeight)
	return w.Bytes()
}

// CheckTendermint evaluates the Tendermint recursion circuit's contract.
//
// Per the spec's O1 note, the non-bootstrap branch here additionally
// asserts tendermint_output.trusted_header_hash == prev.root — a
// strengthening over the gap in the original implementation, adopted as
// the recommended fix rather than left unchecked (see DESIGN.md).
func CheckTendermint(genesis *TendermintGenesis, in *TendermintRecursionInputs) (*TendermintRecursionOutputs, error) {
	tendermintOutput, err := DecodeTendermintBaseOutputs(in.TendermintPublicValues)
	if err != nil {
		return nil, fmt.Errorf("tendermint recursion: decode base outputs: %w", err)
	}

	ok, err := groth16.Verify(genesis.TendermintVK, in.TendermintProof, [][]byte{publicValuesDigest(in.TendermintPublicValues)})
	if err != nil {
		return nil, fmt.Errorf("tendermint recursion: base proof verify: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("tendermint recursion: base proof failed verification against TENDERMINT_VK")
	}

	if in.TrustedHeight == genesis.TrustedHeight {
		if in.RecursiveProof != nil {
			return nil, fmt.Errorf("tendermint recursion: bootstrap round must not carry a previous recursive proof")
		}
		if tendermintOutput.TrustedHeaderHash != genesis.TrustedRoot {
			return nil, fmt.Errorf("tendermint recursion: bootstrap trusted_header_hash does not match TRUSTED_ROOT")
		}
	} else {
		if in.RecursiveProof == nil {
			return nil, fmt.Errorf("tendermint recursion: non-bootstrap round requires a previous recursive proof")
		}
		ok, err := groth16.Verify(in.RecursiveVKObj, in.RecursiveProof, [][]byte{publicValuesDigest(in.RecursivePublicValues)})
		if err != nil {
			return nil, fmt.Errorf("tendermint recursion: previous proof verify: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("tendermint recursion: previous recursive proof failed verification")
		}
		prev, err := DecodeTendermintRecursionOutputs(in.RecursivePublicValues)
		if err != nil {
			return nil, fmt.Errorf("tendermint recursion: decode previous outputs: %w", err)
		}

		if tendermintOutput.TargetHeight <= prev.Height {
			return nil, fmt.Errorf("tendermint recursion: target_height %d must be strictly greater than prev.height %d", tendermintOutput.TargetHeight, prev.Height)
		}
		if tendermintOutput.TrustedHeaderHash != prev.Root {
			return nil, fmt.Errorf("tendermint recursion: trusted_header_hash does not match previous proof's committed root")
		}
	}

	return &TendermintRecursionOutputs{
		Root:   tendermintOutput.TargetHeaderHash,
		Height: tendermintOutput.TargetHeight,
		VK:     in.RecursiveVKIdentifier,
	}, nil
}

// ProveTendermint checks the circuit contract and, on success, hands the
// witness to backend to produce the actual recursive proof.
func ProveTendermint(ctx context.Context, backend groth16.Backend, elf []byte, genesis *TendermintGenesis, in *TendermintRecursionInputs) (*groth16.Proof, []byte, error) {
	if _, err := CheckTendermint(genesis, in); err != nil {
		return nil, nil, err
	}
	return backend.Prove(ctx, elf, in.Encode())
}
