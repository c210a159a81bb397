package circuit

import (
	"encoding/json"
	"testing"

	"github.com/timewave-computer/lightwave-go/crypto"
)

func tendermintBaseOutputsBytes(t *testing.T, o *TendermintBaseOutputs) []byte {
	t.Helper()
	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal tendermint base outputs: %v", err)
	}
	return b
}

func TestCheckTendermintBootstrapSucceeds(t *testing.T) {
	trustedRoot := crypto.Keccak256Hash([]byte("trusted-root"))
	baseOutputs := &TendermintBaseOutputs{
		TrustedHeaderHash: trustedRoot,
		TargetHeaderHash:  crypto.Keccak256Hash([]byte("target-root")),
		TargetHeight:      31134500,
	}
	genesis := &TendermintGenesis{
		TrustedHeight: 31134400,
		TrustedRoot:   trustedRoot,
		TendermintVK:  trivialVK(),
	}
	in := &TendermintRecursionInputs{
		TendermintProof:        trivialProof(),
		TendermintPublicValues: tendermintBaseOutputsBytes(t, baseOutputs),
		RecursiveVKIdentifier:  "recursive-vk-v1",
		TrustedHeight:          31134400,
	}

	out, err := CheckTendermint(genesis, in)
	if err != nil {
		t.Fatalf("CheckTendermint bootstrap: %v", err)
	}
	if out.Height != 31134500 {
		t.Errorf("Height = %d, want 31134500", out.Height)
	}
	if out.Root != baseOutputs.TargetHeaderHash {
		t.Errorf("Root = %s, want %s", out.Root, baseOutputs.TargetHeaderHash)
	}
}

func TestCheckTendermintBootstrapRejectsWrongRoot(t *testing.T) {
	baseOutputs := &TendermintBaseOutputs{
		TrustedHeaderHash: crypto.Keccak256Hash([]byte("wrong-root")),
		TargetHeaderHash:  crypto.Keccak256Hash([]byte("target-root")),
		TargetHeight:      31134500,
	}
	genesis := &TendermintGenesis{
		TrustedHeight: 31134400,
		TrustedRoot:   crypto.Keccak256Hash([]byte("trusted-root")),
		TendermintVK:  trivialVK(),
	}
	in := &TendermintRecursionInputs{
		TendermintProof:        trivialProof(),
		TendermintPublicValues: tendermintBaseOutputsBytes(t, baseOutputs),
		TrustedHeight:          31134400,
	}

	if _, err := CheckTendermint(genesis, in); err == nil {
		t.Fatal("expected bootstrap root mismatch to be rejected")
	}
}

func TestCheckTendermintContinuityRequiresRootLink(t *testing.T) {
	prevOutputs := &TendermintRecursionOutputs{
		Root:   crypto.Keccak256Hash([]byte("prev-root")),
		Height: 1000,
		VK:     "recursive-vk-v1",
	}
	genesis := &TendermintGenesis{TrustedHeight: 0, TendermintVK: trivialVK()}

	// trusted_header_hash does not match prev.root -- the O1 strengthening
	// this implementation adds over the original gap.
	baseOutputs := &TendermintBaseOutputs{
		TrustedHeaderHash: crypto.Keccak256Hash([]byte("unrelated-root")),
		TargetHeaderHash:  crypto.Keccak256Hash([]byte("new-root")),
		TargetHeight:      2000,
	}
	in := &TendermintRecursionInputs{
		TendermintProof:        trivialProof(),
		TendermintPublicValues: tendermintBaseOutputsBytes(t, baseOutputs),
		RecursiveProof:         trivialProof(),
		RecursivePublicValues:  prevOutputs.Encode(),
		RecursiveVKObj:         trivialVK(),
		RecursiveVKIdentifier:  "recursive-vk-v1",
		TrustedHeight:          1000,
	}

	if _, err := CheckTendermint(genesis, in); err == nil {
		t.Fatal("expected continuity check to reject unrelated trusted_header_hash")
	}

	baseOutputs.TrustedHeaderHash = prevOutputs.Root
	in.TendermintPublicValues = tendermintBaseOutputsBytes(t, baseOutputs)
	if _, err := CheckTendermint(genesis, in); err != nil {
		t.Fatalf("expected continuity check to accept matching trusted_header_hash: %v", err)
	}
}

func TestCheckTendermintRejectsNonIncreasingHeight(t *testing.T) {
	prevOutputs := &TendermintRecursionOutputs{
		Root:   crypto.Keccak256Hash([]byte("prev-root")),
		Height: 1000,
		VK:     "recursive-vk-v1",
	}
	genesis := &TendermintGenesis{TrustedHeight: 0, TendermintVK: trivialVK()}
	baseOutputs := &TendermintBaseOutputs{
		TrustedHeaderHash: prevOutputs.Root,
		TargetHeaderHash:  crypto.Keccak256Hash([]byte("new-root")),
		TargetHeight:      1000, // not strictly greater
	}
	in := &TendermintRecursionInputs{
		TendermintProof:        trivialProof(),
		TendermintPublicValues: tendermintBaseOutputsBytes(t, baseOutputs),
		RecursiveProof:         trivialProof(),
		RecursivePublicValues:  prevOutputs.Encode(),
		RecursiveVKObj:         trivialVK(),
		RecursiveVKIdentifier:  "recursive-vk-v1",
		TrustedHeight:          1000,
	}

	if _, err := CheckTendermint(genesis, in); err == nil {
		t.Fatal("expected non-increasing height to be rejected")
	}
}
