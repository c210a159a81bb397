// Package elfs embeds the circuit binaries this service does not build
// itself: the base circuits (an external collaborator's SP1-style
// program) and, once a release has gone through the
// --generate-recursion-circuit / --generate-wrapper-circuit /
// external-compile pipeline, the recursion and wrapper circuits for that
// release. --dump-elfs writes the mode-appropriate trio to ELFS_OUT,
// where the prover loop reads them from at startup.
package elfs

import (
	_ "embed"

	"fmt"
	"os"
	"path/filepath"

	"github.com/timewave-computer/lightwave-go/internal/config"
)

// File names ELFS_OUT holds a dumped circuit trio under.
const (
	BaseFile      = "base.elf"
	RecursionFile = "recursion.elf"
	WrapperFile   = "wrapper.elf"
)

//go:embed constant/helios-base.elf
var heliosBase []byte

//go:embed constant/tendermint-base.elf
var tendermintBase []byte

//go:embed constant/helios-recursion.elf
var heliosRecursion []byte

//go:embed constant/tendermint-recursion.elf
var tendermintRecursion []byte

//go:embed constant/helios-wrapper.elf
var heliosWrapper []byte

//go:embed constant/tendermint-wrapper.elf
var tendermintWrapper []byte

// Set bundles the three circuit binaries one chain mode needs.
type Set struct {
	Base      []byte
	Recursion []byte
	Wrapper   []byte
}

// ForMode returns the embedded circuit trio for mode.
func ForMode(mode config.ChainMode) (Set, error) {
	switch mode {
	case config.ChainHelios:
		return Set{Base: heliosBase, Recursion: heliosRecursion, Wrapper: heliosWrapper}, nil
	case config.ChainTendermint:
		return Set{Base: tendermintBase, Recursion: tendermintRecursion, Wrapper: tendermintWrapper}, nil
	default:
		return Set{}, fmt.Errorf("elfs: invalid chain mode %q", mode)
	}
}

// Dump writes the mode-appropriate circuit trio to dir, creating it if
// necessary. Used by the --dump-elfs bootstrap action.
func Dump(dir string, mode config.ChainMode) error {
	set, err := ForMode(mode)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("elfs: create %s: %w", dir, err)
	}
	writes := map[string][]byte{
		BaseFile:      set.Base,
		RecursionFile: set.Recursion,
		WrapperFile:   set.Wrapper,
	}
	for name, data := range writes {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("elfs: write %s: %w", name, err)
		}
	}
	return nil
}

// Load reads a previously dumped circuit trio back from dir. Callers
// should suggest --dump-elfs on error.
func Load(dir string) (Set, error) {
	base, err := os.ReadFile(filepath.Join(dir, BaseFile))
	if err != nil {
		return Set{}, fmt.Errorf("elfs: read %s: %w", BaseFile, err)
	}
	recursion, err := os.ReadFile(filepath.Join(dir, RecursionFile))
	if err != nil {
		return Set{}, fmt.Errorf("elfs: read %s: %w", RecursionFile, err)
	}
	wrapper, err := os.ReadFile(filepath.Join(dir, WrapperFile))
	if err != nil {
		return Set{}, fmt.Errorf("elfs: read %s: %w", WrapperFile, err)
	}
	return Set{Base: base, Recursion: recursion, Wrapper: wrapper}, nil
}
