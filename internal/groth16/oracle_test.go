package groth16

import (
	"bytes"
	"testing"

	"github.com/timewave-computer/lightwave-go/crypto"
)

func TestNegateG1RoundTripsToInfinity(t *testing.T) {
	gen := crypto.G1Generator().Marshal()

	neg, err := negateG1(gen)
	if err != nil {
		t.Fatalf("negateG1: %v", err)
	}

	sum, err := crypto.BN254Add(append(append([]byte(nil), gen...), neg...))
	if err != nil {
		t.Fatalf("BN254Add: %v", err)
	}

	want := make([]byte, 64)
	if !bytes.Equal(sum, want) {
		t.Errorf("generator + (-generator) = %x, want point at infinity (all zero)", sum)
	}
}

func TestVerifyRejectsMismatchedPublicInputCount(t *testing.T) {
	vk := &VerifyingKey{
		Alpha: make([]byte, 64),
		Beta:  make([]byte, 128),
		Gamma: make([]byte, 128),
		Delta: make([]byte, 128),
		IC:    [][]byte{make([]byte, 64)},
	}
	proof := &Proof{A: make([]byte, 64), B: make([]byte, 128), C: make([]byte, 64)}

	_, err := Verify(vk, proof, [][]byte{make([]byte, 32)})
	if err == nil {
		t.Fatal("expected error for IC/public-input length mismatch, got nil")
	}
}

func TestVerifyRejectsMalformedProofEncoding(t *testing.T) {
	vk := &VerifyingKey{
		Alpha: make([]byte, 64),
		Beta:  make([]byte, 128),
		Gamma: make([]byte, 128),
		Delta: make([]byte, 128),
		IC:    [][]byte{make([]byte, 64)},
	}
	proof := &Proof{A: make([]byte, 32), B: make([]byte, 128), C: make([]byte, 64)}

	_, err := Verify(vk, proof, nil)
	if err == nil {
		t.Fatal("expected error for malformed proof.A length, got nil")
	}
}
