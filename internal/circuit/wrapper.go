package circuit

import (
	"context"
	"fmt"

	"github.com/timewave-computer/lightwave-go/internal/codec"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
)

// WrapperInputs is the witness for the wrapper circuit: just the latest
// recursive proof and its public values.
type WrapperInputs struct {
	RecursiveProof        *groth16.Proof
	RecursivePublicValues []byte
}

// Encode packages the witness fields into the opaque blob handed to the
// external wrapper prover.
func (in *WrapperInputs) Encode() []byte {
	w := codec.NewWriter()
	w.PutBytes(in.RecursivePublicValues)
	w.PutBytes(in.RecursiveProof.A)
	w.PutBytes(in.RecursiveProof.B)
	w.PutBytes(in.RecursiveProof.C)
	return w.Bytes()
}

// CheckWrapper evaluates the wrapper circuit's contract: the recursion
// proof must have been produced under exactly the canonical recursion VK
// compiled into this wrapper, and must itself verify.
//
// Variant marker distinguishes Helios (HeliosRecursionOutputs) from
// Tendermint (TendermintRecursionOutputs) recursion outputs, since both
// share the same wrapper contract but decode differently.
func CheckWrapper(recursionVK *RecursionVK, variant RecursionVariant, in *WrapperInputs) (*WrapperOutputs, error) {
	vkField, height, root, err := decodeRecursionOutputsByVariant(variant, in.RecursivePublicValues)
	if err != nil {
		return nil, fmt.Errorf("wrapper: decode recursive outputs: %w", err)
	}

	if vkField != recursionVK.Identifier {
		return nil, fmt.Errorf("wrapper: recursive proof's vk %q does not match canonical RECURSIVE_VK %q", vkField, recursionVK.Identifier)
	}

	ok, err := groth16.Verify(recursionVK.VK, in.RecursiveProof, [][]byte{publicValuesDigest(in.RecursivePublicValues)})
	if err != nil {
		return nil, fmt.Errorf("wrapper: recursive proof verify: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("wrapper: recursive proof failed verification against RECURSIVE_VK")
	}

	return &WrapperOutputs{Height: height, Root: root}, nil
}

// ProveWrapper checks the wrapper contract and, on success, hands the
// witness to backend to produce the actual wrapper proof.
func ProveWrapper(ctx context.Context, backend groth16.Backend, elf []byte, recursionVK *RecursionVK, variant RecursionVariant, in *WrapperInputs) (*groth16.Proof, []byte, error) {
	if _, err := CheckWrapper(recursionVK, variant, in); err != nil {
		return nil, nil, err
	}
	return backend.Prove(ctx, elf, in.Encode())
}

// RecursionVariant tags which chain mode's RecursionOutputs schema a
// public-values blob decodes as.
type RecursionVariant int

const (
	VariantHelios RecursionVariant = iota
	VariantTendermint
)

func decodeRecursionOutputsByVariant(variant RecursionVariant, publicValues []byte) (vkHex string, height uint64, root [32]byte, err error) {
	switch variant {
	case VariantHelios:
		o, e := DecodeHeliosRecursionOutputs(publicValues)
		if e != nil {
			return "", 0, [32]byte{}, e
		}
		return o.VK, o.Height, o.Root, nil
	case VariantTendermint:
		o, e := DecodeTendermintRecursionOutputs(publicValues)
		if e != nil {
			return "", 0, [32]byte{}, e
		}
		return o.VK, o.Height, o.Root, nil
	default:
		return "", 0, [32]byte{}, fmt.Errorf("wrapper: unknown recursion variant %d", variant)
	}
}
