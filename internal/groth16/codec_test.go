package groth16

import "testing"

func TestProofCodecRoundTrip(t *testing.T) {
	p := &Proof{A: make([]byte, 64), B: make([]byte, 128), C: make([]byte, 64)}
	p.A[0] = 0xAB
	p.B[10] = 0xCD
	p.C[63] = 0xEF

	decoded, err := DecodeProof(EncodeProof(p))
	if err != nil {
		t.Fatalf("DecodeProof: %v", err)
	}
	if string(decoded.A) != string(p.A) || string(decoded.B) != string(p.B) || string(decoded.C) != string(p.C) {
		t.Error("round-tripped proof does not match original")
	}
}
