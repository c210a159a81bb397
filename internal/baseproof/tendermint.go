package baseproof

import (
	"context"
	"encoding/json"
	"fmt"

	cmthttp "github.com/cometbft/cometbft/rpc/client/http"

	"github.com/timewave-computer/lightwave-go/internal/retry"
)

// TendermintSource is the RPC surface an adapter needs from a Tendermint
// full node to assemble a light-client base-proof witness.
type TendermintSource struct {
	client *cmthttp.HTTP
}

// NewTendermintSource dials a Tendermint RPC endpoint. No network call
// happens until Run is invoked.
func NewTendermintSource(rpcURL string) (*TendermintSource, error) {
	client, err := cmthttp.New(rpcURL, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("baseproof: dial tendermint rpc %s: %w", rpcURL, err)
	}
	return &TendermintSource{client: client}, nil
}

// Run fetches the trusted and target light blocks for one Tendermint
// base-proof round and invokes the base prover. expirationLimit bounds
// how far ahead of trustedHeight the target block may be, per
// TENDERMINT_EXPIRATION_LIMIT.
func (s *TendermintSource) Run(ctx context.Context, backend Backend, elf []byte, trustedHeight uint64, expirationLimit uint64) (*Result, error) {
	status, err := s.client.Status(ctx)
	if err != nil {
		return nil, retry.Wrap("query tendermint status", err)
	}
	latestHeight := uint64(status.SyncInfo.LatestBlockHeight)

	if latestHeight <= trustedHeight {
		return nil, retry.New("waiting for new tendermint block height")
	}

	targetHeight := latestHeight
	if max := trustedHeight + expirationLimit; targetHeight > max {
		targetHeight = max
	}

	trustedBlock, err := s.lightBlock(ctx, int64(trustedHeight))
	if err != nil {
		return nil, retry.Wrap("fetch trusted light block", err)
	}
	targetBlock, err := s.lightBlock(ctx, int64(targetHeight))
	if err != nil {
		return nil, retry.Wrap("fetch target light block", err)
	}

	witness, err := json.Marshal(struct {
		Trusted json.RawMessage `json:"trusted"`
		Target  json.RawMessage `json:"target"`
	}{Trusted: trustedBlock, Target: targetBlock})
	if err != nil {
		return nil, fmt.Errorf("baseproof: encode tendermint witness: %w", err)
	}

	proof, publicValues, err := backend.Prove(ctx, elf, witness)
	if err != nil {
		return nil, retry.Wrap("tendermint base prove", err)
	}

	return &Result{Proof: proof, PublicValues: publicValues}, nil
}

// lightBlock fetches the signed header and validator set at height and
// packages them as the opaque JSON blob the base circuit consumes.
func (s *TendermintSource) lightBlock(ctx context.Context, height int64) (json.RawMessage, error) {
	h := height
	commit, err := s.client.Commit(ctx, &h)
	if err != nil {
		return nil, fmt.Errorf("fetch commit at height %d: %w", height, err)
	}
	validators, err := s.client.Validators(ctx, &h, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch validators at height %d: %w", height, err)
	}
	return json.Marshal(struct {
		SignedHeader any `json:"signed_header"`
		Validators   any `json:"validators"`
	}{SignedHeader: commit.SignedHeader, Validators: validators.Validators})
}
