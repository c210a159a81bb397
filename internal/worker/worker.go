// Package worker manages the external proving worker process: the
// GPU-bound child process that actually runs the Groth16 prover for a
// circuit ELF. It implements groth16.Backend by shelling out to the
// worker binary, and guarantees the process is torn down on every exit
// path so GPU state never leaks across rounds.
package worker

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os/exec"
	"sync"

	"github.com/timewave-computer/lightwave-go/internal/codec"
	"github.com/timewave-computer/lightwave-go/internal/groth16"
	"github.com/timewave-computer/lightwave-go/log"
)

// Process wraps a single invocation of the proving worker binary. Callers
// acquire one before a proof and must Close it before acquiring the next
// — §5's prover isolation rule: only one worker process alive at a time.
type Process struct {
	mu     sync.Mutex
	binary string
	cmd    *exec.Cmd
	logger *log.Logger
}

// New returns a Process bound to the given worker binary path. No
// subprocess is started until Setup or Prove is called.
func New(binaryPath string) *Process {
	return &Process{
		binary: binaryPath,
		logger: log.Module("worker"),
	}
}

// Setup asks the worker to derive a circuit's verifying key from its ELF.
func (p *Process) Setup(ctx context.Context, elf []byte) ([]byte, error) {
	out, err := p.run(ctx, "setup", elf, nil)
	if err != nil {
		return nil, fmt.Errorf("worker: setup: %w", err)
	}
	return out, nil
}

// Prove runs the worker to produce a Groth16 proof for elf against
// witness, returning the proof and the circuit's committed public
// values. Any prior worker process is torn down first.
func (p *Process) Prove(ctx context.Context, elf []byte, witness []byte) (*groth16.Proof, []byte, error) {
	out, err := p.run(ctx, "prove", elf, witness)
	if err != nil {
		return nil, nil, fmt.Errorf("worker: prove: %w", err)
	}

	r := codec.NewReader(out)
	a, err := r.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("worker: decode proof.a: %w", err)
	}
	b, err := r.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("worker: decode proof.b: %w", err)
	}
	c, err := r.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("worker: decode proof.c: %w", err)
	}
	publicValues, err := r.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("worker: decode public values: %w", err)
	}

	return &groth16.Proof{A: a, B: b, C: c}, publicValues, nil
}

// run tears down any previous subprocess, launches a fresh one for the
// given command, feeds it the ELF+witness on stdin, and returns its
// stdout in full. The child is always killed before run returns, whether
// it succeeded, failed, or the context was cancelled.
func (p *Process) run(ctx context.Context, command string, elf, witness []byte) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.teardownLocked()

	cmd := exec.CommandContext(ctx, p.binary, command)

	var stdin bytes.Buffer
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(elf)))
	stdin.Write(lenBuf[:])
	stdin.Write(elf)
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(witness)))
	stdin.Write(lenBuf[:])
	stdin.Write(witness)
	cmd.Stdin = &stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	p.cmd = cmd
	err := cmd.Run()
	p.cmd = nil

	if err != nil {
		p.logger.Error("worker process failed", "command", command, "stderr", stderr.String(), "error", err)
		return nil, fmt.Errorf("%s: %w: %s", command, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Close tears down any live worker subprocess. Safe to call even if no
// process is running.
func (p *Process) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.teardownLocked()
	return nil
}

func (p *Process) teardownLocked() {
	if p.cmd == nil || p.cmd.Process == nil {
		return
	}
	if err := p.cmd.Process.Kill(); err != nil {
		p.logger.Warn("failed to kill prior worker process", "error", err)
	}
	p.cmd.Wait()
	p.cmd = nil
}
