package baseproof

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/timewave-computer/lightwave-go/consensus"
	"github.com/timewave-computer/lightwave-go/crypto"
	"github.com/timewave-computer/lightwave-go/internal/electra"
	"github.com/timewave-computer/lightwave-go/internal/retry"
)

// HeliosResult extends Result with the Electra header/body material the
// recursion circuit needs to bind the base proof's committed header to
// its own execution-state claim.
type HeliosResult struct {
	Result
	Header    electra.BlockHeader
	BodyRoots electra.BodyRoots
}

// HeliosSource is the consensus RPC surface an adapter needs from an
// Ethereum beacon node.
type HeliosSource struct {
	BeaconURL string
	HTTP      *http.Client
	Config    *consensus.ConsensusConfig

	clockOnce sync.Once
	clock     *consensus.SlotClock
	clockErr  error
}

// NewHeliosSource returns a HeliosSource with a default HTTP client and the
// standard Ethereum mainnet slot/epoch configuration.
func NewHeliosSource(beaconURL string) *HeliosSource {
	return &HeliosSource{
		BeaconURL: beaconURL,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Config:    consensus.DefaultConfig(),
	}
}

// slotClock lazily fetches the beacon chain's genesis time and builds a
// consensus.SlotClock from it, caching the result for the life of the
// source. Used to turn "no new finalized slot yet" into a wait bounded
// by the actual slot schedule instead of the loop's generic backoff.
func (s *HeliosSource) slotClock(ctx context.Context) (*consensus.SlotClock, error) {
	s.clockOnce.Do(func() {
		if err := s.Config.Validate(); err != nil {
			s.clockErr = fmt.Errorf("invalid consensus config: %w", err)
			return
		}
		var resp struct {
			Data struct {
				GenesisTime string `json:"genesis_time"`
			} `json:"data"`
		}
		if err := s.get(ctx, "/eth/v1/beacon/genesis", &resp); err != nil {
			s.clockErr = fmt.Errorf("fetch beacon genesis: %w", err)
			return
		}
		genesisTime, err := strconv.ParseUint(resp.Data.GenesisTime, 10, 64)
		if err != nil {
			s.clockErr = fmt.Errorf("parse genesis_time: %w", err)
			return
		}
		s.clock = consensus.NewSlotClock(genesisTime, s.Config)
	})
	return s.clock, s.clockErr
}

// Run fetches the witness data for one Helios base-proof round and
// invokes the base prover. trustedSlot is the anchor's current slot.
func (s *HeliosSource) Run(ctx context.Context, backend Backend, elf []byte, trustedSlot uint64) (*HeliosResult, error) {
	latestSlot, err := s.latestFinalizedSlot(ctx)
	if err != nil {
		return nil, retry.Wrap("fetch latest finalized slot", err)
	}

	// The light client only produces finality updates once per epoch, so a
	// new finalized slot must have actually landed in a later epoch than
	// trustedSlot's.
	slotsPerEpoch := s.Config.SlotsPerEpoch
	if latestSlot <= trustedSlot ||
		consensus.SlotToEpoch(consensus.Slot(latestSlot), slotsPerEpoch) <= consensus.SlotToEpoch(consensus.Slot(trustedSlot), slotsPerEpoch) {
		if clock, err := s.slotClock(ctx); err == nil {
			wait := clock.NextSlotIn(uint64(time.Now().Unix()))
			return nil, retry.NewAfter("waiting for new slot to be finalized", wait)
		}
		return nil, retry.New("waiting for new slot to be finalized")
	}

	latestFinalizedSlot := latestSlot - (latestSlot % slotsPerEpoch)
	trustedPeriod := consensus.SyncCommitteePeriod(consensus.Slot(trustedSlot))
	latestPeriod := consensus.SyncCommitteePeriod(consensus.Slot(latestFinalizedSlot))
	periodDistance := latestPeriod - trustedPeriod
	if periodDistance == 0 {
		periodDistance = 1
	}

	witness, err := s.buildWitness(ctx, trustedSlot, periodDistance)
	if err != nil {
		return nil, retry.Wrap("build helios witness", err)
	}

	proof, publicValues, err := backend.Prove(ctx, elf, witness)
	if err != nil {
		return nil, retry.Wrap("helios base prove", err)
	}

	header, bodyRoots, err := s.fetchBlockHeaderAndBody(ctx, latestFinalizedSlot)
	if err != nil {
		return nil, retry.Wrap("fetch electra block header/body", err)
	}

	return &HeliosResult{
		Result:    Result{Proof: proof, PublicValues: publicValues},
		Header:    header,
		BodyRoots: bodyRoots,
	}, nil
}

// CommitteeHash fetches the sync committee active at slot and reduces it
// to a 32-byte digest for the recursion circuit's bootstrap constant.
// Full SSZ tree-hashing of the committee's pubkey list is out of scope;
// this instead hashes the committee response bytes as a stand-in digest,
// consistent with how recursion outputs elsewhere reduce opaque public
// values to a single field element.
func (s *HeliosSource) CommitteeHash(ctx context.Context, slot uint64) (crypto.Hash, error) {
	var committee json.RawMessage
	if err := s.get(ctx, fmt.Sprintf("/eth/v1/beacon/states/%d/sync_committees", slot), &committee); err != nil {
		return crypto.Hash{}, fmt.Errorf("fetch sync committee at slot %d: %w", slot, err)
	}
	return crypto.Keccak256Hash(committee), nil
}

func (s *HeliosSource) latestFinalizedSlot(ctx context.Context) (uint64, error) {
	var body struct {
		Data struct {
			Header struct {
				Message struct {
					Slot string `json:"slot"`
				} `json:"message"`
			} `json:"header"`
		} `json:"data"`
	}
	if err := s.get(ctx, "/eth/v1/beacon/headers/finalized", &body); err != nil {
		return 0, err
	}
	return strconv.ParseUint(body.Data.Header.Message.Slot, 10, 64)
}

// buildWitness packages the sync-committee updates and finality update
// the base circuit expects into a single opaque blob. The circuit
// itself (an external prover oracle) is responsible for interpreting
// this payload; this service only moves bytes.
func (s *HeliosSource) buildWitness(ctx context.Context, trustedSlot uint64, periodDistance uint64) ([]byte, error) {
	var updates json.RawMessage
	path := fmt.Sprintf("/eth/v1/beacon/light_client/updates?start_period=%d&count=%d",
		trustedSlot/consensus.SyncCommitteePeriodLength, periodDistance)
	if err := s.get(ctx, path, &updates); err != nil {
		return nil, fmt.Errorf("fetch committee updates: %w", err)
	}

	var finalityUpdate json.RawMessage
	if err := s.get(ctx, "/eth/v1/beacon/light_client/finality_update", &finalityUpdate); err != nil {
		return nil, fmt.Errorf("fetch finality update: %w", err)
	}

	return json.Marshal(struct {
		Updates        json.RawMessage `json:"updates"`
		FinalityUpdate json.RawMessage `json:"finality_update"`
		TrustedSlot     uint64          `json:"trusted_slot"`
	}{Updates: updates, FinalityUpdate: finalityUpdate, TrustedSlot: trustedSlot})
}

func (s *HeliosSource) fetchBlockHeaderAndBody(ctx context.Context, slot uint64) (electra.BlockHeader, electra.BodyRoots, error) {
	var headerResp struct {
		Data struct {
			Header struct {
				Message struct {
					Slot          string `json:"slot"`
					ProposerIndex string `json:"proposer_index"`
					ParentRoot    string `json:"parent_root"`
					StateRoot     string `json:"state_root"`
					BodyRoot      string `json:"body_root"`
				} `json:"message"`
			} `json:"header"`
		} `json:"data"`
	}
	if err := s.get(ctx, fmt.Sprintf("/eth/v1/beacon/headers/%d", slot), &headerResp); err != nil {
		return electra.BlockHeader{}, electra.BodyRoots{}, fmt.Errorf("fetch block header: %w", err)
	}

	var blockResp struct {
		Data struct {
			Message struct {
				Body struct {
					ExecutionPayload struct {
						StateRoot   string `json:"state_root"`
						BlockNumber string `json:"block_number"`
					} `json:"execution_payload"`
				} `json:"body"`
			} `json:"message"`
		} `json:"data"`
	}
	if err := s.get(ctx, fmt.Sprintf("/eth/v2/beacon/blocks/%d", slot), &blockResp); err != nil {
		return electra.BlockHeader{}, electra.BodyRoots{}, fmt.Errorf("fetch block body: %w", err)
	}

	slotNum, err := strconv.ParseUint(headerResp.Data.Header.Message.Slot, 10, 64)
	if err != nil {
		return electra.BlockHeader{}, electra.BodyRoots{}, fmt.Errorf("parse header slot: %w", err)
	}
	proposerIndex, err := strconv.ParseUint(headerResp.Data.Header.Message.ProposerIndex, 10, 64)
	if err != nil {
		return electra.BlockHeader{}, electra.BodyRoots{}, fmt.Errorf("parse proposer index: %w", err)
	}
	blockNumber, err := strconv.ParseUint(blockResp.Data.Message.Body.ExecutionPayload.BlockNumber, 10, 64)
	if err != nil {
		return electra.BlockHeader{}, electra.BodyRoots{}, fmt.Errorf("parse block number: %w", err)
	}

	var blockNumberLeaf crypto.Hash
	binary.LittleEndian.PutUint64(blockNumberLeaf[:8], blockNumber)

	bodyRoots := electra.BodyRoots{
		PayloadRoots: electra.PayloadRoots{
			StateRoot:   crypto.HexToHash(blockResp.Data.Message.Body.ExecutionPayload.StateRoot),
			BlockNumber: blockNumberLeaf,
		},
	}

	// BodyRoot comes from the beacon node's own header record, independent
	// of bodyRoots above. Bind recomputes the body root from bodyRoots and
	// asserts it against this field — if the two ever diverged, that would
	// mean the tracked body subtree doesn't actually match the chain's
	// header, which is exactly what the binding check exists to catch.
	header := electra.BlockHeader{
		Slot:          slotNum,
		ProposerIndex: proposerIndex,
		ParentRoot:    crypto.HexToHash(headerResp.Data.Header.Message.ParentRoot),
		StateRoot:     crypto.HexToHash(headerResp.Data.Header.Message.StateRoot),
		BodyRoot:      crypto.HexToHash(headerResp.Data.Header.Message.BodyRoot),
	}

	return header, bodyRoots, nil
}

func (s *HeliosSource) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BeaconURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
