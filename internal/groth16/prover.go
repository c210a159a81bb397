package groth16

import "context"

// Backend is the external SNARK proving oracle: given a compiled circuit
// ELF and an encoded witness, it produces a Groth16 proof and the
// circuit's committed public values. Setup derives the circuit's
// verifying key from its ELF — deterministic, so callers may cache it.
//
// This package never implements proving itself; a Backend is always a
// black-box collaborator (a local worker process, a remote prover
// network, or a test double), matching how the base/recursion/wrapper
// provers are treated everywhere else in this service.
type Backend interface {
	Setup(ctx context.Context, elf []byte) (vk []byte, err error)
	Prove(ctx context.Context, elf []byte, witness []byte) (proof *Proof, publicValues []byte, err error)
}
