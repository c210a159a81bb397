package circuit

import (
	"encoding/binary"
	"testing"

	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/electra"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
)

// trivialVK and trivialProof construct a Groth16 verifying key/proof pair
// that is trivially valid under Verify: every point is the group
// identity, so every pairing in the verification equation collapses to 1
// regardless of the (absent) witness. IC holds two points because the
// circuit checks pass exactly one public input (the public-values
// digest). This isolates the circuit contract's own branching logic from
// the pairing arithmetic, which crypto/bn254_test.go already covers
// directly.
func trivialVK() *groth16.VerifyingKey {
	return &groth16.VerifyingKey{
		Alpha: make([]byte, 64),
		Beta:  make([]byte, 128),
		Gamma: make([]byte, 128),
		Delta: make([]byte, 128),
		IC:    [][]byte{make([]byte, 64), make([]byte, 64)},
	}
}

func trivialProof() *groth16.Proof {
	return &groth16.Proof{A: make([]byte, 64), B: make([]byte, 128), C: make([]byte, 64)}
}

func heliosBaseOutputsBytes(o *HeliosBaseOutputs) []byte {
	out := make([]byte, 6*32)
	putWord := func(i int, h crypto.Hash) { copy(out[i*32:(i+1)*32], h[:]) }
	var prevHead, newHead crypto.Hash
	binary.BigEndian.PutUint64(prevHead[24:32], o.PrevHead)
	binary.BigEndian.PutUint64(newHead[24:32], o.NewHead)
	putWord(0, prevHead)
	putWord(1, newHead)
	putWord(2, o.PrevSyncCommitteeHash)
	putWord(3, o.SyncCommitteeHash)
	putWord(4, o.NextSyncCommitteeHash)
	putWord(5, o.NewHeader)
	return out
}

// sampleElectraBinding builds a header/body pair whose roots are
// internally consistent (header.BodyRoot == body.Root()); callers read
// back header.Root() to use as the base proof's committed newHeader.
func sampleElectraBinding(blockNumber uint64, stateRoot crypto.Hash) (electra.BlockHeader, electra.BodyRoots) {
	var blockNumberLeaf crypto.Hash
	binary.LittleEndian.PutUint64(blockNumberLeaf[:8], blockNumber)

	body := electra.BodyRoots{
		PayloadRoots: electra.PayloadRoots{
			StateRoot:   stateRoot,
			BlockNumber: blockNumberLeaf,
		},
	}
	header := electra.BlockHeader{BodyRoot: body.Root()}
	return header, body
}

func TestCheckHeliosBootstrapSucceeds(t *testing.T) {
	trustedCommittee := crypto.Keccak256Hash([]byte("trusted-committee"))
	stateRoot := crypto.Keccak256Hash([]byte("state-root"))

	header, body := sampleElectraBinding(11716416, stateRoot)
	newHeader := header.Root()

	baseOutputs := &HeliosBaseOutputs{
		PrevHead:              11715392,
		NewHead:                11716416,
		PrevSyncCommitteeHash:  trustedCommittee,
		SyncCommitteeHash:      crypto.Keccak256Hash([]byte("next-committee")),
		NextSyncCommitteeHash:  crypto.Keccak256Hash([]byte("next-next-committee")),
		NewHeader:              newHeader,
	}

	genesis := &HeliosGenesis{
		TrustedHead:              11715392,
		TrustedSyncCommitteeHash: trustedCommittee,
		HeliosVK:                 trivialVK(),
	}

	in := &HeliosRecursionInputs{
		ElectraHeader:         header,
		ElectraBodyRoots:      body,
		HeliosProof:           trivialProof(),
		HeliosPublicValues:    heliosBaseOutputsBytes(baseOutputs),
		RecursiveVKIdentifier: "recursive-vk-v1",
		PreviousHead:          11715392,
	}

	out, err := CheckHelios(genesis, in)
	if err != nil {
		t.Fatalf("CheckHelios bootstrap: %v", err)
	}
	if out.Height != 11716416 {
		t.Errorf("Height = %d, want 11716416", out.Height)
	}
	if out.PreviousCommittee != trustedCommittee {
		t.Errorf("PreviousCommittee = %s, want %s", out.PreviousCommittee, trustedCommittee)
	}
	if out.Root != stateRoot {
		t.Errorf("Root = %s, want %s", out.Root, stateRoot)
	}
}

func TestCheckHeliosBootstrapRejectsWrongCommittee(t *testing.T) {
	header, body := sampleElectraBinding(11716416, crypto.Hash{})
	newHeader := header.Root()

	baseOutputs := &HeliosBaseOutputs{
		PrevHead:              11715392,
		NewHead:                11716416,
		PrevSyncCommitteeHash:  crypto.Keccak256Hash([]byte("wrong-committee")),
		NewHeader:              newHeader,
	}
	genesis := &HeliosGenesis{
		TrustedHead:              11715392,
		TrustedSyncCommitteeHash: crypto.Keccak256Hash([]byte("trusted-committee")),
		HeliosVK:                 trivialVK(),
	}
	in := &HeliosRecursionInputs{
		ElectraHeader:      header,
		ElectraBodyRoots:   body,
		HeliosProof:        trivialProof(),
		HeliosPublicValues: heliosBaseOutputsBytes(baseOutputs),
		PreviousHead:       11715392,
	}

	if _, err := CheckHelios(genesis, in); err == nil {
		t.Fatal("expected bootstrap committee mismatch to be rejected")
	}
}

func TestCheckHeliosPeriodBoundaryRequiresActiveCommittee(t *testing.T) {
	prevOutputs := &HeliosRecursionOutputs{
		ActiveCommittee:   crypto.Keccak256Hash([]byte("A")),
		PreviousCommittee: crypto.Keccak256Hash([]byte("B")),
		Height:             1000,
		VK:                 "recursive-vk-v1",
	}

	header, body := sampleElectraBinding(2000, crypto.Hash{})
	newHeader := header.Root()

	// prevHead=11722751 (period 1430) and newHead=11722753 (period 1431)
	// straddle the period boundary at 8192*1431=11722752.
	baseOutputs := &HeliosBaseOutputs{
		PrevHead:             11722751,
		NewHead:              11722753,
		PrevSyncCommitteeHash: prevOutputs.ActiveCommittee, // correct: must equal active_committee
		NewHeader:            newHeader,
	}

	genesis := &HeliosGenesis{TrustedHead: 0, HeliosVK: trivialVK()}
	in := &HeliosRecursionInputs{
		ElectraHeader:          header,
		ElectraBodyRoots:       body,
		HeliosProof:            trivialProof(),
		HeliosPublicValues:     heliosBaseOutputsBytes(baseOutputs),
		RecursiveProof:         trivialProof(),
		RecursivePublicValues:  prevOutputs.Encode(),
		RecursiveVKObj:         trivialVK(),
		RecursiveVKIdentifier:  "recursive-vk-v1",
		PreviousHead:           11722751,
	}

	if _, err := CheckHelios(genesis, in); err != nil {
		t.Fatalf("expected period-boundary step with correct active_committee to succeed: %v", err)
	}

	// Same inputs but claiming prevSyncCommitteeHash == previous_committee
	// (B) instead of active_committee (A) must be rejected.
	baseOutputs.PrevSyncCommitteeHash = prevOutputs.PreviousCommittee
	in.HeliosPublicValues = heliosBaseOutputsBytes(baseOutputs)
	if _, err := CheckHelios(genesis, in); err == nil {
		t.Fatal("expected period-boundary step with stale committee to be rejected")
	}
}

func TestCheckHeliosRejectsNonMonotoneHead(t *testing.T) {
	prevOutputs := &HeliosRecursionOutputs{
		ActiveCommittee:   crypto.Keccak256Hash([]byte("A")),
		PreviousCommittee: crypto.Keccak256Hash([]byte("B")),
		Height:            1000,
		VK:                "recursive-vk-v1",
	}
	header, body := sampleElectraBinding(2000, crypto.Hash{})
	newHeader := header.Root()

	baseOutputs := &HeliosBaseOutputs{
		PrevHead:             500,
		NewHead:              500, // not strictly increasing
		PrevSyncCommitteeHash: prevOutputs.PreviousCommittee,
		NewHeader:            newHeader,
	}
	genesis := &HeliosGenesis{TrustedHead: 0, HeliosVK: trivialVK()}
	in := &HeliosRecursionInputs{
		ElectraHeader:         header,
		ElectraBodyRoots:      body,
		HeliosProof:           trivialProof(),
		HeliosPublicValues:    heliosBaseOutputsBytes(baseOutputs),
		RecursiveProof:        trivialProof(),
		RecursivePublicValues: prevOutputs.Encode(),
		RecursiveVKObj:        trivialVK(),
		RecursiveVKIdentifier: "recursive-vk-v1",
		PreviousHead:          500,
	}

	if _, err := CheckHelios(genesis, in); err == nil {
		t.Fatal("expected non-monotone head to be rejected")
	}
}
