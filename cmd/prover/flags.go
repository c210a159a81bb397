package main

import "flag"

// bootstrapFlags are the mutually exclusive one-shot CLI actions: each,
// if set, runs to completion and exits without starting the service.
type bootstrapFlags struct {
	delete                   bool
	generateRecursionCircuit bool
	generateWrapperCircuit   bool
	dumpElfs                 bool
	workerBinary             string
}

// parseFlags parses CLI arguments into bootstrapFlags. Returns the
// flags, whether the caller should exit immediately, and the exit code.
func parseFlags(args []string) (*bootstrapFlags, bool, int) {
	f := &bootstrapFlags{}
	fs := flag.NewFlagSet("prover", flag.ContinueOnError)
	fs.BoolVar(&f.delete, "delete", false, "remove the persisted trust anchor and exit")
	fs.BoolVar(&f.generateRecursionCircuit, "generate-recursion-circuit", false, "emit the recursion circuit source for the configured mode and exit")
	fs.BoolVar(&f.generateWrapperCircuit, "generate-wrapper-circuit", false, "emit the wrapper circuit source for the configured mode and exit")
	fs.BoolVar(&f.dumpElfs, "dump-elfs", false, "write the embedded circuit binaries to ELFS_OUT and exit")
	fs.StringVar(&f.workerBinary, "worker-binary", "prover-worker", "path to the external proving worker binary")
	if err := fs.Parse(args); err != nil {
		return nil, true, 2
	}
	return f, false, 0
}
