// Package baseproof adapts external consensus sources (an Ethereum beacon
// chain for Helios mode, a Tendermint chain for Tendermint mode) into the
// witness inputs the base circuit prover expects, and invokes the base
// prover. This is the only part of the service that talks to the outside
// world.
package baseproof

import (
	"context"

	"github.com/timewave-computer/lightwave-go/internal/groth16"
)

// Result is what a base-proof adapter hands back to the prover loop:
// the base proof itself plus whatever extra chain-specific material the
// recursion circuit needs alongside it.
type Result struct {
	Proof        *groth16.Proof
	PublicValues []byte
}

// Backend is satisfied by internal/worker.Process; kept as an interface
// here so adapters can be tested without a real worker subprocess.
type Backend interface {
	Setup(ctx context.Context, elf []byte) ([]byte, error)
	Prove(ctx context.Context, elf []byte, witness []byte) (*groth16.Proof, []byte, error)
}
