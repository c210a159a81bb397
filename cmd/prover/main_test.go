package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunDeleteOnEmptyStoreSucceeds(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIENT_BACKEND", "TENDERMINT")
	t.Setenv("TENDERMINT_RPC_URL", "http://localhost:26657")
	t.Setenv("SERVICE_STATE_DB_PATH", filepath.Join(dir, "state.db"))

	code := run([]string{"--delete"})
	if code != 0 {
		t.Fatalf("run(--delete) = %d, want 0", code)
	}
}

func TestRunDumpElfsWritesCircuitTrio(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "elfs")
	t.Setenv("CLIENT_BACKEND", "TENDERMINT")
	t.Setenv("TENDERMINT_RPC_URL", "http://localhost:26657")
	t.Setenv("SERVICE_STATE_DB_PATH", filepath.Join(dir, "state.db"))
	t.Setenv("ELFS_OUT", out)

	code := run([]string{"--dump-elfs"})
	if code != 0 {
		t.Fatalf("run(--dump-elfs) = %d, want 0", code)
	}
	for _, name := range []string{"base.elf", "recursion.elf", "wrapper.elf"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestRunRejectsInvalidClientBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIENT_BACKEND", "NOT_A_CHAIN")
	t.Setenv("SERVICE_STATE_DB_PATH", filepath.Join(dir, "state.db"))

	code := run([]string{"--delete"})
	if code == 0 {
		t.Fatal("expected non-zero exit for invalid CLIENT_BACKEND")
	}
}

func TestParseFlagsRecognizesAllBootstrapActions(t *testing.T) {
	f, exit, _ := parseFlags([]string{"--delete", "--generate-recursion-circuit", "--generate-wrapper-circuit", "--dump-elfs", "--worker-binary", "/opt/worker"})
	if exit {
		t.Fatal("parseFlags should not request exit for valid flags")
	}
	if !f.delete {
		t.Error("expected delete=true")
	}
	if !f.generateRecursionCircuit {
		t.Error("expected generateRecursionCircuit=true")
	}
	if !f.generateWrapperCircuit {
		t.Error("expected generateWrapperCircuit=true")
	}
	if !f.dumpElfs {
		t.Error("expected dumpElfs=true")
	}
	if f.workerBinary != "/opt/worker" {
		t.Errorf("workerBinary = %q, want /opt/worker", f.workerBinary)
	}
}

func TestParseFlagsRejectsUnknownFlag(t *testing.T) {
	_, exit, code := parseFlags([]string{"--not-a-flag"})
	if !exit || code != 2 {
		t.Errorf("exit=%v code=%d, want exit=true code=2", exit, code)
	}
}
