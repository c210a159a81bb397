package circuit

import (
	"encoding/hex"
	"fmt"

	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/codec"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
)

// EncodeVK serializes a verifying key to raw bytes for hashing or storage.
func EncodeVK(vk *groth16.VerifyingKey) []byte {
	w := codec.NewWriter()
	w.PutBytes(vk.Alpha)
	w.PutBytes(vk.Beta)
	w.PutBytes(vk.Gamma)
	w.PutBytes(vk.Delta)
	w.PutUint64(uint64(len(vk.IC)))
	for _, ic := range vk.IC {
		w.PutBytes(ic)
	}
	return w.Bytes()
}

// EncodeVKHex is EncodeVK, hex-encoded — the form used when templating a
// VK into generated circuit source (--generate-wrapper-circuit).
func EncodeVKHex(vk *groth16.VerifyingKey) string {
	return hex.EncodeToString(EncodeVK(vk))
}

// VKIdentifier is the short, stable hash of a verifying key committed
// into RecursionOutputs.VK and compared against the wrapper's compiled-in
// RECURSIVE_VK — analogous to an SP1 vkey's bytes32() digest.
func VKIdentifier(vk *groth16.VerifyingKey) string {
	return crypto.Keccak256Hash(EncodeVK(vk)).Hex()
}

// DecodeVKHex is the inverse of EncodeVKHex.
func DecodeVKHex(s string) (*groth16.VerifyingKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("circuit: decode vk hex: %w", err)
	}
	return DecodeVK(raw)
}

// DecodeVK is the inverse of EncodeVK, parsing a verifying key from its
// raw byte encoding — the form the external proving worker returns from
// Setup.
func DecodeVK(raw []byte) (*groth16.VerifyingKey, error) {
	r := codec.NewReader(raw)
	vk := &groth16.VerifyingKey{}

	var err error
	if vk.Alpha, err = r.Bytes(); err != nil {
		return nil, err
	}
	if vk.Beta, err = r.Bytes(); err != nil {
		return nil, err
	}
	if vk.Gamma, err = r.Bytes(); err != nil {
		return nil, err
	}
	if vk.Delta, err = r.Bytes(); err != nil {
		return nil, err
	}
	n, err := r.Uint64()
	if err != nil {
		return nil, err
	}
	vk.IC = make([][]byte, n)
	for i := range vk.IC {
		if vk.IC[i], err = r.Bytes(); err != nil {
			return nil, err
		}
	}
	return vk, nil
}
