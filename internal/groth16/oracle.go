// Package groth16 implements the proof verification oracle used by every
// stage of the recursion chain: base, recursive, and wrapper proofs are
// all Groth16 proofs over BN254, verified through the same black-box
// equation. The circuits themselves are opaque to this package — it only
// needs a verifying key and a proof to decide valid/invalid.
package groth16

import (
	"fmt"
	"math/big"

	"github.com/timewave-computer/lightwave-go/crypto"
)

// bn254FieldModulus is the BN254 base field prime. It is public domain
// (part of the curve definition, not a secret) and is needed here only to
// negate a G1 point's y-coordinate ahead of the pairing check.
var bn254FieldModulus, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)

// VerifyingKey holds the fixed parameters of a Groth16 circuit, encoded in
// the same raw big-endian byte layout crypto.BN254PairingCheck expects:
// G1 points are 64 bytes, G2 points are 128 bytes.
type VerifyingKey struct {
	Alpha []byte   // G1, 64 bytes
	Beta  []byte   // G2, 128 bytes
	Gamma []byte   // G2, 128 bytes
	Delta []byte   // G2, 128 bytes
	IC    [][]byte // G1 points, 64 bytes each; len(IC) == len(publicInputs)+1
}

// Proof is a single Groth16 proof, encoded the same way as VerifyingKey's
// points.
type Proof struct {
	A []byte // G1, 64 bytes
	B []byte // G2, 128 bytes
	C []byte // G1, 64 bytes
}

// Verify checks proof against vk for the given public inputs, each a
// field element encoded as a 32-byte big-endian integer. It is the single
// oracle every circuit stage (base, recursive, wrapper) calls through;
// none of them implement pairing arithmetic themselves.
func Verify(vk *VerifyingKey, proof *Proof, publicInputs [][]byte) (bool, error) {
	if len(vk.IC) != len(publicInputs)+1 {
		return false, fmt.Errorf("groth16: verifying key has %d IC points for %d public inputs", len(vk.IC), len(publicInputs))
	}
	if len(proof.A) != 64 || len(proof.B) != 128 || len(proof.C) != 64 {
		return false, fmt.Errorf("groth16: malformed proof encoding")
	}

	vkx := append([]byte(nil), vk.IC[0]...)
	for i, pub := range publicInputs {
		if len(pub) != 32 {
			return false, fmt.Errorf("groth16: public input %d is %d bytes, want 32", i, len(pub))
		}
		term, err := crypto.BN254ScalarMul(append(append([]byte(nil), vk.IC[i+1]...), pub...))
		if err != nil {
			return false, fmt.Errorf("groth16: scalar mul on IC[%d]: %w", i+1, err)
		}
		vkx, err = crypto.BN254Add(append(vkx, term...))
		if err != nil {
			return false, fmt.Errorf("groth16: accumulate vk_x: %w", err)
		}
	}

	negA, err := negateG1(proof.A)
	if err != nil {
		return false, fmt.Errorf("groth16: negate proof.A: %w", err)
	}

	// e(-A,B) * e(alpha,beta) * e(vk_x,gamma) * e(C,delta) == 1
	input := make([]byte, 0, 192*4)
	input = append(input, negA...)
	input = append(input, proof.B...)
	input = append(input, vk.Alpha...)
	input = append(input, vk.Beta...)
	input = append(input, vkx...)
	input = append(input, vk.Gamma...)
	input = append(input, proof.C...)
	input = append(input, vk.Delta...)

	result, err := crypto.BN254PairingCheck(input)
	if err != nil {
		return false, fmt.Errorf("groth16: pairing check: %w", err)
	}
	return result[31] == 1, nil
}

// negateG1 flips the sign of a 64-byte (x,y) G1 point: y -> p - y.
func negateG1(g1 []byte) ([]byte, error) {
	if len(g1) != 64 {
		return nil, fmt.Errorf("groth16: g1 point is %d bytes, want 64", len(g1))
	}
	y := new(big.Int).SetBytes(g1[32:64])
	negY := new(big.Int).Mod(new(big.Int).Sub(bn254FieldModulus, y), bn254FieldModulus)

	out := make([]byte, 64)
	copy(out[0:32], g1[0:32])
	negYBytes := negY.Bytes()
	copy(out[64-len(negYBytes):64], negYBytes)
	return out, nil
}
