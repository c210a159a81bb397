package electra

import (
	"testing"

	"github.com/timewave-computer/lightwave-go/crypto"
)

func sampleBody() *BodyRoots {
	return &BodyRoots{
		RandaoReveal: crypto.Keccak256Hash([]byte("randao")),
		Eth1Data:     crypto.Keccak256Hash([]byte("eth1")),
		Graffiti:     crypto.Keccak256Hash([]byte("graffiti")),
		SyncAggregate: crypto.Keccak256Hash([]byte("sync")),
		PayloadRoots: PayloadRoots{
			ParentHash:  crypto.Keccak256Hash([]byte("parent")),
			StateRoot:   crypto.Keccak256Hash([]byte("state")),
			BlockNumber: uintLeaf(123456),
			BlockHash:   crypto.Keccak256Hash([]byte("blockhash")),
		},
	}
}

func TestBindSucceedsOnMatchingRoots(t *testing.T) {
	body := sampleBody()
	bodyRoot := body.Root()

	header := &BlockHeader{
		Slot:          100,
		ProposerIndex: 7,
		ParentRoot:    crypto.Keccak256Hash([]byte("header-parent")),
		StateRoot:     crypto.Keccak256Hash([]byte("header-state")),
		BodyRoot:      bodyRoot,
	}
	headerRoot := header.Root()

	stateRoot, blockNumberLeaf, err := Bind(header, body, headerRoot)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if stateRoot != body.PayloadRoots.StateRoot {
		t.Errorf("state root = %s, want %s", stateRoot, body.PayloadRoots.StateRoot)
	}
	if UnpadBlockNumber(blockNumberLeaf) != 123456 {
		t.Errorf("block number = %d, want 123456", UnpadBlockNumber(blockNumberLeaf))
	}
}

func TestBindRejectsBodyRootMismatch(t *testing.T) {
	body := sampleBody()
	header := &BlockHeader{BodyRoot: crypto.Keccak256Hash([]byte("wrong"))}

	_, _, err := Bind(header, body, header.Root())
	if err == nil {
		t.Fatal("expected body root mismatch error, got nil")
	}
}

func TestBindRejectsHeaderRootMismatch(t *testing.T) {
	body := sampleBody()
	header := &BlockHeader{BodyRoot: body.Root()}

	_, _, err := Bind(header, body, crypto.Keccak256Hash([]byte("not-the-header-root")))
	if err == nil {
		t.Fatal("expected header root mismatch error, got nil")
	}
}

func TestUnpadBlockNumberIgnoresPadding(t *testing.T) {
	leaf := uintLeaf(42)
	leaf[31] = 0xFF // non-zero padding byte
	if got := UnpadBlockNumber(leaf); got != 42 {
		t.Errorf("UnpadBlockNumber = %d, want 42", got)
	}
	if err := EnforceZeroPadding(leaf); err == nil {
		t.Fatal("expected EnforceZeroPadding to reject non-zero padding")
	}
}
