// Command prover runs the recursive light-client proof service: it
// either performs a one-shot bootstrap action (--delete,
// --generate-recursion-circuit, --generate-wrapper-circuit,
// --dump-elfs) and exits, or starts the long-running prover loop and
// query surface.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/timewave-computer/lightwave-go/internal/anchor"
	"github.com/timewave-computer/lightwave-go/internal/baseproof"
	"github.com/timewave-computer/lightwave-go/internal/checkpoints"
	"github.com/timewave-computer/lightwave-go/internal/circuit"
	"github.com/timewave-computer/lightwave-go/internal/circuitgen"
	"github.com/timewave-computer/lightwave-go/internal/config"
	"github.com/timewave-computer/lightwave-go/internal/elfs"
	"github.com/timewave-computer/lightwave-go/internal/prover"
	"github.com/timewave-computer/lightwave-go/internal/query"
	"github.com/timewave-computer/lightwave-go/internal/service"
	"github.com/timewave-computer/lightwave-go/internal/worker"
	"github.com/timewave-computer/lightwave-go/log"
	"github.com/timewave-computer/lightwave-go/node"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the testable entry point: parses flags, resolves config, and
// dispatches to either a bootstrap action or the long-running service.
func run(args []string) int {
	logger := log.Module("main")

	f, exit, code := parseFlags(args)
	if exit {
		return code
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	if f.delete {
		store, err := anchor.Open(cfg.ServiceStateDBPath)
		if err != nil {
			logger.Error("open anchor store", "error", err)
			return 1
		}
		defer store.Close()
		if err := store.Delete(); err != nil {
			logger.Error("delete anchor store", "error", err)
			return 1
		}
		logger.Info("anchor store deleted")
		return 0
	}

	if f.dumpElfs {
		if err := elfs.Dump(cfg.ElfsOut, cfg.ClientBackend); err != nil {
			logger.Error("dump elfs", "error", err)
			return 1
		}
		logger.Info("elfs dumped", "dir", cfg.ElfsOut)
		return 0
	}

	w := worker.New(f.workerBinary)
	defer w.Close()
	ctx := context.Background()

	if f.generateRecursionCircuit {
		if err := generateRecursionCircuit(ctx, cfg, w); err != nil {
			logger.Error("generate recursion circuit", "error", err)
			return 1
		}
		logger.Info("recursion circuit source generated")
		return 0
	}

	if f.generateWrapperCircuit {
		if err := generateWrapperCircuit(ctx, cfg, w); err != nil {
			logger.Error("generate wrapper circuit", "error", err)
			return 1
		}
		logger.Info("wrapper circuit source generated")
		return 0
	}

	return serve(cfg, w, logger)
}

// generateRecursionCircuit implements --generate-recursion-circuit: it
// fetches the bootstrap genesis material for the configured mode, sets
// up the base circuit's verifying key, and writes the templated
// recursion circuit source an external zk-VM toolchain will compile.
func generateRecursionCircuit(ctx context.Context, cfg *config.Config, w *worker.Process) error {
	set, err := elfs.ForMode(cfg.ClientBackend)
	if err != nil {
		return err
	}
	baseVKBytes, err := w.Setup(ctx, set.Base)
	if err != nil {
		return fmt.Errorf("setup base circuit vk: %w", err)
	}

	switch cfg.ClientBackend {
	case config.ChainHelios:
		source := baseproof.NewHeliosSource(cfg.SourceConsensusRPCURL)
		committeeHash, err := source.CommitteeHash(ctx, checkpoints.HeliosTrustedSlot)
		if err != nil {
			return fmt.Errorf("fetch trusted sync committee hash: %w", err)
		}
		src, err := circuitgen.HeliosRecursionCircuit(checkpoints.HeliosTrustedSlot, committeeHash, hex.EncodeToString(baseVKBytes))
		if err != nil {
			return err
		}
		return os.WriteFile("helios_recursion_circuit.go", []byte(src), 0o644)
	case config.ChainTendermint:
		src, err := circuitgen.TendermintRecursionCircuit(checkpoints.TendermintTrustedHeight, checkpoints.TendermintTrustedRoot, hex.EncodeToString(baseVKBytes))
		if err != nil {
			return err
		}
		return os.WriteFile("tendermint_recursion_circuit.go", []byte(src), 0o644)
	default:
		return fmt.Errorf("invalid chain mode %q", cfg.ClientBackend)
	}
}

// generateWrapperCircuit implements --generate-wrapper-circuit: it
// compiles the recursion circuit's verifying key and templates it into
// the wrapper blueprint, closing the two-phase build cycle.
func generateWrapperCircuit(ctx context.Context, cfg *config.Config, w *worker.Process) error {
	set, err := elfs.ForMode(cfg.ClientBackend)
	if err != nil {
		return err
	}
	recursionVKBytes, err := w.Setup(ctx, set.Recursion)
	if err != nil {
		return fmt.Errorf("setup recursion circuit vk: %w", err)
	}
	src, err := circuitgen.WrapperCircuit(hex.EncodeToString(recursionVKBytes))
	if err != nil {
		return err
	}
	name := "helios_wrapper_circuit.go"
	if cfg.ClientBackend == config.ChainTendermint {
		name = "tendermint_wrapper_circuit.go"
	}
	return os.WriteFile(name, []byte(src), 0o644)
}

// serve wires up the anchor store, genesis constants, and the prover
// loop / query surface services, then runs until a shutdown signal.
func serve(cfg *config.Config, w *worker.Process, logger *log.Logger) int {
	ctx := context.Background()

	store, err := anchor.Open(cfg.ServiceStateDBPath)
	if err != nil {
		logger.Error("open anchor store", "error", err)
		return 1
	}
	defer store.Close()

	set, err := elfs.Load(cfg.ElfsOut)
	if err != nil {
		logger.Error("load circuit binaries, run --dump-elfs first", "error", err)
		return 1
	}

	baseVKBytes, err := w.Setup(ctx, set.Base)
	if err != nil {
		logger.Error("setup base circuit vk", "error", err)
		return 1
	}
	baseVK, err := circuit.DecodeVK(baseVKBytes)
	if err != nil {
		logger.Error("decode base circuit vk", "error", err)
		return 1
	}

	recursionVKBytes, err := w.Setup(ctx, set.Recursion)
	if err != nil {
		logger.Error("setup recursion circuit vk", "error", err)
		return 1
	}
	recursionVKObj, err := circuit.DecodeVK(recursionVKBytes)
	if err != nil {
		logger.Error("decode recursion circuit vk", "error", err)
		return 1
	}
	recursionVK := &circuit.RecursionVK{Identifier: circuit.VKIdentifier(recursionVKObj), VK: recursionVKObj}

	var heliosGenesis *circuit.HeliosGenesis
	var heliosSource *baseproof.HeliosSource
	var tendermintGenesis *circuit.TendermintGenesis
	var tendermintSource *baseproof.TendermintSource

	switch cfg.ClientBackend {
	case config.ChainHelios:
		heliosSource = baseproof.NewHeliosSource(cfg.SourceConsensusRPCURL)
		committeeHash, err := heliosSource.CommitteeHash(ctx, checkpoints.HeliosTrustedSlot)
		if err != nil {
			logger.Error("fetch trusted sync committee hash", "error", err)
			return 1
		}
		heliosGenesis = &circuit.HeliosGenesis{
			TrustedHead:              checkpoints.HeliosTrustedSlot,
			TrustedSyncCommitteeHash: committeeHash,
			HeliosVK:                 baseVK,
		}
		if _, err := store.Initialize(checkpoints.HeliosTrustedSlot, 0, heliosGenesis.TrustedSyncCommitteeHash); err != nil {
			logger.Error("initialize anchor", "error", err)
			return 1
		}
	case config.ChainTendermint:
		tendermintSource, err = baseproof.NewTendermintSource(cfg.TendermintRPCURL)
		if err != nil {
			logger.Error("dial tendermint rpc", "error", err)
			return 1
		}
		tendermintGenesis = &circuit.TendermintGenesis{
			TrustedHeight: checkpoints.TendermintTrustedHeight,
			TrustedRoot:   checkpoints.TendermintTrustedRoot,
			TendermintVK:  baseVK,
		}
		if _, err := store.Initialize(checkpoints.TendermintTrustedHeight, checkpoints.TendermintTrustedHeight, checkpoints.TendermintTrustedRoot); err != nil {
			logger.Error("initialize anchor", "error", err)
			return 1
		}
	default:
		logger.Error("invalid chain mode", "mode", cfg.ClientBackend)
		return 1
	}

	events := node.NewEventBus(64)
	defer events.Close()

	loop, err := prover.NewLoop(cfg.ClientBackend, store, w, prover.ELFs{Base: set.Base, Recursion: set.Recursion, Wrapper: set.Wrapper},
		recursionVK, heliosGenesis, heliosSource, tendermintGenesis, tendermintSource, cfg.TendermintExpirationLimit, events)
	if err != nil {
		logger.Error("construct prover loop", "error", err)
		return 1
	}

	lifecycle := node.NewLifecycleManager(node.DefaultLifecycleConfig())
	if err := lifecycle.Register(service.NewLoopService(loop), 0); err != nil {
		logger.Error("register prover loop service", "error", err)
		return 1
	}
	queryHandler := query.NewHandler(store)
	queryHandler.SetLifecycle(lifecycle)
	queryAddr := fmt.Sprintf(":%d", cfg.APIPort)
	if err := lifecycle.Register(service.NewQueryService(queryAddr, queryHandler), 1); err != nil {
		logger.Error("register query service", "error", err)
		return 1
	}

	if errs := lifecycle.StartAll(); len(errs) > 0 {
		for _, e := range errs {
			logger.Error("service failed to start", "error", e)
		}
		return 1
	}
	logger.Info("prover service started", "mode", cfg.ClientBackend, "api_port", cfg.APIPort)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig.String())

	if errs := lifecycle.StopAll(); len(errs) > 0 {
		for _, e := range errs {
			logger.Error("service failed to stop cleanly", "error", e)
		}
		return 1
	}
	logger.Info("shutdown complete")
	return 0
}
