// Package electra reconstructs the Merkle roots of a post-Electra beacon
// block header and body from their field roots, and extracts the
// execution-payload fields the recursion circuit needs: state_root and
// block_number.
package electra

import (
	"encoding/binary"
	"fmt"

	"github.com/timewave-computer/lightwave-go/crypto"
)

// BlockHeader is the SSZ beacon block header: five top-level fields,
// Merkleized as a tree of depth 3 (padded from 5 to 8 leaves).
type BlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    crypto.Hash
	StateRoot     crypto.Hash
	BodyRoot      crypto.Hash
}

// Root recomputes the header's Merkle root from its field roots.
func (h *BlockHeader) Root() crypto.Hash {
	leaves := [][32]byte{
		uintLeaf(h.Slot),
		uintLeaf(h.ProposerIndex),
		h.ParentRoot,
		h.StateRoot,
		h.BodyRoot,
	}
	return crypto.Hash(crypto.MerkleRoot(leaves))
}

// PayloadRoots holds the field roots of the execution payload nested
// inside the block body. StateRoot and BlockNumber are consumed directly
// by the recursion circuit; the remaining fields only participate in the
// body root recomputation.
type PayloadRoots struct {
	ParentHash    crypto.Hash
	FeeRecipient  crypto.Hash
	StateRoot     crypto.Hash
	ReceiptsRoot  crypto.Hash
	LogsBloom     crypto.Hash
	PrevRandao    crypto.Hash
	BlockNumber   crypto.Hash // little-endian u64 in the first 8 bytes, zero-padded
	GasLimit      crypto.Hash
	GasUsed       crypto.Hash
	Timestamp     crypto.Hash
	ExtraData     crypto.Hash
	BaseFeePerGas crypto.Hash
	BlockHash     crypto.Hash
	Transactions  crypto.Hash
	Withdrawals   crypto.Hash
	BlobGasUsed   crypto.Hash
	ExcessBlobGas crypto.Hash
}

func (p *PayloadRoots) merkleRoot() crypto.Hash {
	leaves := [][32]byte{
		p.ParentHash, p.FeeRecipient, p.StateRoot, p.ReceiptsRoot,
		p.LogsBloom, p.PrevRandao, p.BlockNumber, p.GasLimit,
		p.GasUsed, p.Timestamp, p.ExtraData, p.BaseFeePerGas,
		p.BlockHash, p.Transactions, p.Withdrawals, p.BlobGasUsed,
		p.ExcessBlobGas,
	}
	return crypto.Hash(crypto.MerkleRoot(leaves))
}

// BodyRoots is the set of top-level field roots of a post-Electra beacon
// block body.
type BodyRoots struct {
	RandaoReveal          crypto.Hash
	Eth1Data              crypto.Hash
	Graffiti              crypto.Hash
	ProposerSlashings     crypto.Hash
	AttesterSlashings     crypto.Hash
	Attestations          crypto.Hash
	Deposits              crypto.Hash
	VoluntaryExits        crypto.Hash
	SyncAggregate         crypto.Hash
	PayloadRoots          PayloadRoots
	BLSToExecutionChanges crypto.Hash
	BlobKZGCommitments    crypto.Hash
	ExecutionRequests     crypto.Hash
}

// Root recomputes the body's Merkle root from its field roots, hashing
// the nested execution payload first.
func (b *BodyRoots) Root() crypto.Hash {
	leaves := [][32]byte{
		b.RandaoReveal, b.Eth1Data, b.Graffiti, b.ProposerSlashings,
		b.AttesterSlashings, b.Attestations, b.Deposits, b.VoluntaryExits,
		b.SyncAggregate, b.PayloadRoots.merkleRoot(), b.BLSToExecutionChanges,
		b.BlobKZGCommitments, b.ExecutionRequests,
	}
	return crypto.Hash(crypto.MerkleRoot(leaves))
}

// Bind recomputes body_root and header_root from the supplied roots and
// asserts them against the header fields and the base proof's committed
// newHeader, per the recursion circuit's header-binding step. On success
// it returns the extracted execution state_root and raw (still-padded)
// block_number leaf.
func Bind(header *BlockHeader, body *BodyRoots, newHeader crypto.Hash) (stateRoot crypto.Hash, blockNumberLeaf crypto.Hash, err error) {
	bodyRoot := body.Root()
	if bodyRoot != header.BodyRoot {
		return crypto.Hash{}, crypto.Hash{}, fmt.Errorf("electra: recomputed body root %s does not match header.body_root %s", bodyRoot, header.BodyRoot)
	}

	headerRoot := header.Root()
	if headerRoot != newHeader {
		return crypto.Hash{}, crypto.Hash{}, fmt.Errorf("electra: recomputed header root %s does not match base proof newHeader %s", headerRoot, newHeader)
	}

	return body.PayloadRoots.StateRoot, body.PayloadRoots.BlockNumber, nil
}

// UnpadBlockNumber decodes the little-endian u64 stored in the first 8
// bytes of a 32-byte SSZ-padded leaf. Per the spec's O2 note, the source
// implementation does not enforce that the remaining 24 bytes are zero;
// EnforceZeroPadding does that check separately for callers that want it.
func UnpadBlockNumber(leaf crypto.Hash) uint64 {
	return binary.LittleEndian.Uint64(leaf[:8])
}

// EnforceZeroPadding returns an error if any of the 24 padding bytes of a
// block-number leaf are non-zero. Not called by Bind itself — see O2.
func EnforceZeroPadding(leaf crypto.Hash) error {
	for _, b := range leaf[8:] {
		if b != 0 {
			return fmt.Errorf("electra: block number leaf has non-zero padding: %x", leaf[:])
		}
	}
	return nil
}

func uintLeaf(v uint64) crypto.Hash {
	var h crypto.Hash
	binary.LittleEndian.PutUint64(h[:8], v)
	return h
}
