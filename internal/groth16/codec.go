package groth16

import (
	"fmt"

	"github.com/timewave-computer/lightwave-go/internal/codec"
)

// EncodeProof serializes a proof to the self-describing binary form used
// for anchor storage and the HTTP query surface.
func EncodeProof(p *Proof) []byte {
	w := codec.NewWriter()
	w.PutBytes(p.A)
	w.PutBytes(p.B)
	w.PutBytes(p.C)
	return w.Bytes()
}

// DecodeProof is the inverse of EncodeProof.
func DecodeProof(data []byte) (*Proof, error) {
	r := codec.NewReader(data)
	a, err := r.Bytes()
	if err != nil {
		return nil, fmt.Errorf("groth16: decode proof.a: %w", err)
	}
	b, err := r.Bytes()
	if err != nil {
		return nil, fmt.Errorf("groth16: decode proof.b: %w", err)
	}
	c, err := r.Bytes()
	if err != nil {
		return nil, fmt.Errorf("groth16: decode proof.c: %w", err)
	}
	if !r.Done() {
		return nil, fmt.Errorf("groth16: decode proof: trailing bytes")
	}
	return &Proof{A: a, B: b, C: c}, nil
}
