package circuit

import (
	"encoding/json"
	"fmt"

	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/codec"
)

// HeliosBaseOutputs is the fixed ABI-encoded schema committed by the
// Helios base proof: six 32-byte words packed back to back, matching the
// static-field Solidity ABI layout the base circuit emits.
type HeliosBaseOutputs struct {
	PrevHead              uint64
	NewHead               uint64
	PrevSyncCommitteeHash crypto.Hash
	SyncCommitteeHash     crypto.Hash
	NextSyncCommitteeHash crypto.Hash
	NewHeader             crypto.Hash
}

const heliosBaseOutputsWords = 6

// DecodeHeliosBaseOutputs parses the base proof's committed public
// values. Each field occupies one 32-byte word; integers are the low 8
// bytes of a big-endian word (matching ABI uint256 encoding of small
// values).
func DecodeHeliosBaseOutputs(data []byte) (*HeliosBaseOutputs, error) {
	if len(data) != heliosBaseOutputsWords*32 {
		return nil, fmt.Errorf("circuit: helios base outputs is %d bytes, want %d", len(data), heliosBaseOutputsWords*32)
	}
	word := func(i int) crypto.Hash {
		var h crypto.Hash
		copy(h[:], data[i*32:(i+1)*32])
		return h
	}
	beUint64 := func(h crypto.Hash) uint64 {
		var v uint64
		for _, b := range h[24:32] {
			v = v<<8 | uint64(b)
		}
		return v
	}
	return &HeliosBaseOutputs{
		PrevHead:              beUint64(word(0)),
		NewHead:               beUint64(word(1)),
		PrevSyncCommitteeHash: word(2),
		SyncCommitteeHash:     word(3),
		NextSyncCommitteeHash: word(4),
		NewHeader:             word(5),
	}, nil
}

// TendermintBaseOutputs is the JSON-encoded schema committed by the
// Tendermint base proof.
type TendermintBaseOutputs struct {
	TrustedHeaderHash crypto.Hash `json:"trusted_header_hash"`
	TargetHeaderHash  crypto.Hash `json:"target_header_hash"`
	TargetHeight      uint64      `json:"target_height"`
}

func DecodeTendermintBaseOutputs(data []byte) (*TendermintBaseOutputs, error) {
	var out TendermintBaseOutputs
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("circuit: decode tendermint base outputs: %w", err)
	}
	return &out, nil
}

// HeliosRecursionOutputs is committed by the Helios recursion circuit and
// carried forward as the witness for the next round and for the wrapper.
type HeliosRecursionOutputs struct {
	ActiveCommittee   crypto.Hash
	PreviousCommittee crypto.Hash
	Root              crypto.Hash
	Height            uint64
	VK                string // hex-encoded recursive_vk used for this proof
}

func (o *HeliosRecursionOutputs) Encode() []byte {
	w := codec.NewWriter()
	w.PutFixed(o.ActiveCommittee[:])
	w.PutFixed(o.PreviousCommittee[:])
	w.PutFixed(o.Root[:])
	w.PutUint64(o.Height)
	w.PutBytes([]byte(o.VK))
	return w.Bytes()
}

func DecodeHeliosRecursionOutputs(data []byte) (*HeliosRecursionOutputs, error) {
	r := codec.NewReader(data)
	o := &HeliosRecursionOutputs{}

	activeCommittee, err := r.Fixed(32)
	if err != nil {
		return nil, err
	}
	copy(o.ActiveCommittee[:], activeCommittee)

	previousCommittee, err := r.Fixed(32)
	if err != nil {
		return nil, err
	}
	copy(o.PreviousCommittee[:], previousCommittee)

	root, err := r.Fixed(32)
	if err != nil {
		return nil, err
	}
	copy(o.Root[:], root)

	if o.Height, err = r.Uint64(); err != nil {
		return nil, err
	}
	vk, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	o.VK = string(vk)
	if !r.Done() {
		return nil, fmt.Errorf("circuit: trailing bytes in helios recursion outputs")
	}
	return o, nil
}

// TendermintRecursionOutputs is committed by the Tendermint recursion
// circuit.
type TendermintRecursionOutputs struct {
	Root   crypto.Hash
	Height uint64
	VK     string
}

func (o *TendermintRecursionOutputs) Encode() []byte {
	w := codec.NewWriter()
	w.PutFixed(o.Root[:])
	w.PutUint64(o.Height)
	w.PutBytes([]byte(o.VK))
	return w.Bytes()
}

func DecodeTendermintRecursionOutputs(data []byte) (*TendermintRecursionOutputs, error) {
	r := codec.NewReader(data)
	o := &TendermintRecursionOutputs{}
	root, err := r.Fixed(32)
	if err != nil {
		return nil, err
	}
	copy(o.Root[:], root)
	if o.Height, err = r.Uint64(); err != nil {
		return nil, err
	}
	vk, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	o.VK = string(vk)
	if !r.Done() {
		return nil, fmt.Errorf("circuit: trailing bytes in tendermint recursion outputs")
	}
	return o, nil
}

// WrapperOutputs is committed by the wrapper circuit: the sole public
// surface an on-chain verifier needs to read.
type WrapperOutputs struct {
	Height uint64
	Root   crypto.Hash
}

func (o *WrapperOutputs) Encode() []byte {
	w := codec.NewWriter()
	w.PutUint64(o.Height)
	w.PutFixed(o.Root[:])
	return w.Bytes()
}

func DecodeWrapperOutputs(data []byte) (*WrapperOutputs, error) {
	r := codec.NewReader(data)
	o := &WrapperOutputs{}
	var err error
	if o.Height, err = r.Uint64(); err != nil {
		return nil, err
	}
	root, err := r.Fixed(32)
	if err != nil {
		return nil, err
	}
	copy(o.Root[:], root)
	if !r.Done() {
		return nil, fmt.Errorf("circuit: trailing bytes in wrapper outputs")
	}
	return o, nil
}
