// Package prover implements the prover loop: the long-running state
// machine that, each round, drives base → recursion → wrapper proof
// generation and advances the persisted trust anchor.
package prover

import (
	"context"
	"fmt"
	"time"

	"github.com/timewave-computer/lightwave-go/internal/anchor"
	"github.com/timewave-computer/lightwave-go/internal/baseproof"
	"github.com/timewave-computer/lightwave-go/internal/circuit"
	"github.com/timewave-computer/lightwave-go/internal/config"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
	"github.com/timewave-computer/lightwave-go/internal/retry"
	"github.com/timewave-computer/lightwave-go/log"
	"github.com/timewave-computer/lightwave-go/node"
)

// DefaultBackoff is the fixed retry delay for transient round failures.
const DefaultBackoff = 60 * time.Second

// DefaultMaxConsecutiveFailures bounds how many consecutive retryable
// round failures the loop tolerates before escalating to fatal. The
// spec leaves retry liveness unbounded; a circuit-level integrity
// violation (as opposed to a transient RPC hiccup) would otherwise spin
// forever and never surface to an operator. This does not distinguish
// the two causes — any retryable failure counts — but a long run of
// them either way warrants investigation.
const DefaultMaxConsecutiveFailures = 20

// ELFs bundles the three circuit binaries a round needs, read once from
// ELFS_OUT at startup.
type ELFs struct {
	Base      []byte
	Recursion []byte
	Wrapper   []byte
}

// Backend is the proving oracle used for every stage of a round.
type Backend interface {
	Setup(ctx context.Context, elf []byte) ([]byte, error)
	Prove(ctx context.Context, elf []byte, witness []byte) (*groth16.Proof, []byte, error)
}

// Loop is the §4.5 state machine. Exactly one instance runs per process;
// rounds are strictly sequential.
type Loop struct {
	Mode    config.ChainMode
	Store   *anchor.Store
	Backend Backend
	ELFs    ELFs

	HeliosGenesis     *circuit.HeliosGenesis
	TendermintGenesis *circuit.TendermintGenesis
	RecursionVK       *circuit.RecursionVK

	HeliosSource      *baseproof.HeliosSource
	TendermintSource  *baseproof.TendermintSource
	ExpirationLimit   uint64

	Backoff                 time.Duration
	MaxConsecutiveFailures  int

	events *node.EventBus
	logger *log.Logger
}

// NewLoop validates the mode-specific wiring and returns a ready Loop.
// Setup failures here are fatal — the process must not start with a
// misconfigured mode.
func NewLoop(mode config.ChainMode, store *anchor.Store, backend Backend, elfs ELFs, recursionVK *circuit.RecursionVK, heliosGenesis *circuit.HeliosGenesis, heliosSource *baseproof.HeliosSource, tendermintGenesis *circuit.TendermintGenesis, tendermintSource *baseproof.TendermintSource, expirationLimit uint64, events *node.EventBus) (*Loop, error) {
	switch mode {
	case config.ChainHelios:
		if heliosGenesis == nil || heliosSource == nil {
			return nil, fmt.Errorf("prover: helios mode requires a genesis and a source")
		}
	case config.ChainTendermint:
		if tendermintGenesis == nil || tendermintSource == nil {
			return nil, fmt.Errorf("prover: tendermint mode requires a genesis and a source")
		}
	default:
		return nil, fmt.Errorf("prover: invalid chain mode %q", mode)
	}
	if recursionVK == nil {
		return nil, fmt.Errorf("prover: missing canonical recursion vk")
	}

	return &Loop{
		Mode:              mode,
		Store:             store,
		Backend:           backend,
		ELFs:              elfs,
		HeliosGenesis:     heliosGenesis,
		TendermintGenesis: tendermintGenesis,
		RecursionVK:       recursionVK,
		HeliosSource:           heliosSource,
		TendermintSource:       tendermintSource,
		ExpirationLimit:        expirationLimit,
		Backoff:                DefaultBackoff,
		MaxConsecutiveFailures: DefaultMaxConsecutiveFailures,
		events:                 events,
		logger:                 log.Module("prover-loop"),
	}, nil
}

// Run drives rounds until ctx is cancelled or a fatal error occurs.
func (l *Loop) Run(ctx context.Context) error {
	consecutiveFailures := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		l.publish(node.EventRoundStarted, nil)
		err := l.runRound(ctx)
		if err == nil {
			consecutiveFailures = 0
			l.publish(node.EventRoundPersisted, nil)
			continue
		}

		if !retry.IsRetryable(err) {
			l.logger.Error("round failed with fatal error", "error", err)
			return err
		}

		consecutiveFailures++
		if l.MaxConsecutiveFailures > 0 && consecutiveFailures >= l.MaxConsecutiveFailures {
			l.logger.Error("round failed too many times consecutively, escalating to fatal",
				"error", err, "consecutive_failures", consecutiveFailures)
			return fmt.Errorf("prover: %d consecutive retryable round failures, last error: %w", consecutiveFailures, err)
		}

		backoff := l.Backoff
		if after, ok := retry.After(err); ok {
			backoff = after
		}
		l.logger.Warn("round failed, retrying", "error", err, "backoff", backoff, "consecutive_failures", consecutiveFailures)
		l.publish(node.EventRoundFailed, err.Error())
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
	}
}

func (l *Loop) publish(eventType node.EventType, data any) {
	if l.events != nil {
		l.events.PublishAsync(eventType, data)
	}
}

// runRound executes one full base → recursion → wrapper round and
// persists the advanced anchor. Any returned error that is not a
// retry.Error is fatal.
func (l *Loop) runRound(ctx context.Context) error {
	a, err := l.Store.Load()
	if err != nil {
		return fmt.Errorf("prover: load anchor: %w", err)
	}
	if a == nil {
		return fmt.Errorf("prover: no anchor persisted; the service must be initialized before the loop starts")
	}

	switch l.Mode {
	case config.ChainHelios:
		return l.runHeliosRound(ctx, a)
	case config.ChainTendermint:
		return l.runTendermintRound(ctx, a)
	default:
		return fmt.Errorf("prover: invalid chain mode %q", l.Mode)
	}
}

func (l *Loop) runHeliosRound(ctx context.Context, a *anchor.TrustAnchor) error {
	base, err := l.HeliosSource.Run(ctx, l.Backend, l.ELFs.Base, a.TrustedSlot)
	if err != nil {
		return err
	}

	in := &circuit.HeliosRecursionInputs{
		ElectraHeader:      base.Header,
		ElectraBodyRoots:   base.BodyRoots,
		HeliosProof:        base.Proof,
		HeliosPublicValues: base.PublicValues,

		RecursiveVKIdentifier: l.RecursionVK.Identifier,
		RecursiveVKObj:        l.RecursionVK.VK,
		PreviousHead:          a.TrustedSlot,
	}
	if a.HasRecursiveProof() {
		prevProof, err := groth16.DecodeProof(a.RecursiveProof)
		if err != nil {
			return fmt.Errorf("prover: decode previous recursive proof: %w", err)
		}
		in.RecursiveProof = prevProof
		in.RecursivePublicValues = a.RecursivePublicValues
	}

	recursiveProof, recursivePublicValues, err := circuit.ProveHelios(ctx, l.Backend, l.ELFs.Recursion, l.HeliosGenesis, in)
	if err != nil {
		return retry.Wrap("prove helios recursion circuit", err)
	}

	wrapperProof, _, err := circuit.ProveWrapper(ctx, l.Backend, l.ELFs.Wrapper, l.RecursionVK, circuit.VariantHelios, &circuit.WrapperInputs{
		RecursiveProof:        recursiveProof,
		RecursivePublicValues: recursivePublicValues,
	})
	if err != nil {
		return retry.Wrap("prove wrapper circuit", err)
	}

	outputs, err := circuit.DecodeHeliosRecursionOutputs(recursivePublicValues)
	if err != nil {
		return fmt.Errorf("prover: decode recursion outputs: %w", err)
	}
	baseOutputs, err := circuit.DecodeHeliosBaseOutputs(base.PublicValues)
	if err != nil {
		return fmt.Errorf("prover: decode base outputs: %w", err)
	}

	a.RecursiveProof = groth16.EncodeProof(recursiveProof)
	a.RecursiveProofPresent = true
	a.RecursivePublicValues = recursivePublicValues
	a.WrapperProof = groth16.EncodeProof(wrapperProof)
	a.WrapperProofPresent = true
	a.TrustedSlot = baseOutputs.NewHead
	a.TrustedHeight = outputs.Height
	a.TrustedRoot = outputs.Root
	a.Counter++

	if err := l.Store.Save(a); err != nil {
		return fmt.Errorf("prover: save anchor: %w", err)
	}
	return nil
}

func (l *Loop) runTendermintRound(ctx context.Context, a *anchor.TrustAnchor) error {
	base, err := l.TendermintSource.Run(ctx, l.Backend, l.ELFs.Base, a.TrustedSlot, l.ExpirationLimit)
	if err != nil {
		return err
	}

	in := &circuit.TendermintRecursionInputs{
		TendermintProof:        base.Proof,
		TendermintPublicValues: base.PublicValues,

		RecursiveVKIdentifier: l.RecursionVK.Identifier,
		RecursiveVKObj:        l.RecursionVK.VK,
		TrustedHeight:         a.TrustedSlot,
	}
	if a.HasRecursiveProof() {
		prevProof, err := groth16.DecodeProof(a.RecursiveProof)
		if err != nil {
			return fmt.Errorf("prover: decode previous recursive proof: %w", err)
		}
		in.RecursiveProof = prevProof
		in.RecursivePublicValues = a.RecursivePublicValues
	}

	recursiveProof, recursivePublicValues, err := circuit.ProveTendermint(ctx, l.Backend, l.ELFs.Recursion, l.TendermintGenesis, in)
	if err != nil {
		return retry.Wrap("prove tendermint recursion circuit", err)
	}

	wrapperProof, _, err := circuit.ProveWrapper(ctx, l.Backend, l.ELFs.Wrapper, l.RecursionVK, circuit.VariantTendermint, &circuit.WrapperInputs{
		RecursiveProof:        recursiveProof,
		RecursivePublicValues: recursivePublicValues,
	})
	if err != nil {
		return retry.Wrap("prove wrapper circuit", err)
	}

	outputs, err := circuit.DecodeTendermintRecursionOutputs(recursivePublicValues)
	if err != nil {
		return fmt.Errorf("prover: decode recursion outputs: %w", err)
	}
	baseOutputs, err := circuit.DecodeTendermintBaseOutputs(base.PublicValues)
	if err != nil {
		return fmt.Errorf("prover: decode base outputs: %w", err)
	}

	a.RecursiveProof = groth16.EncodeProof(recursiveProof)
	a.RecursiveProofPresent = true
	a.RecursivePublicValues = recursivePublicValues
	a.WrapperProof = groth16.EncodeProof(wrapperProof)
	a.WrapperProofPresent = true
	a.TrustedSlot = baseOutputs.TargetHeight
	a.TrustedHeight = outputs.Height
	a.TrustedRoot = outputs.Root
	a.Counter++

	if err := l.Store.Save(a); err != nil {
		return fmt.Errorf("prover: save anchor: %w", err)
	}
	return nil
}
