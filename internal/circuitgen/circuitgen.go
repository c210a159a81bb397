// Package circuitgen implements the --generate-recursion-circuit and
// --generate-wrapper-circuit bootstrap actions: template-substituting
// genesis constants and verifying keys into a circuit blueprint to
// produce the guest-program source an external zk-VM toolchain compiles
// into the next release's ELF. This package only emits that source; the
// actual circuit compilation is an out-of-scope external collaborator
// step, same as the circuits themselves.
package circuitgen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/timewave-computer/lightwave-go/crypto"
)

var heliosRecursionBlueprint = template.Must(template.New("helios-recursion").Parse(`// Code generated by --generate-recursion-circuit. DO NOT EDIT.
package main

var (
	trustedHead              uint64 = {{.TrustedHead}}
	trustedSyncCommitteeHash        = [32]byte{ {{.CommitteeHashBytes}} }
	heliosVK                        = "{{.HeliosVKHex}}"
)
`))

var tendermintRecursionBlueprint = template.Must(template.New("tendermint-recursion").Parse(`// Code generated by --generate-recursion-circuit. DO NOT EDIT.
package main

var (
	trustedHeight uint64 = {{.TrustedHeight}}
	trustedRoot          = [32]byte{ {{.TrustedRootBytes}} }
	tendermintVK         = "{{.TendermintVKHex}}"
)
`))

var wrapperBlueprint = template.Must(template.New("wrapper").Parse(`// Code generated by --generate-wrapper-circuit. DO NOT EDIT.
package main

// recursiveVK is the canonical recursion-circuit verifying key this
// wrapper's verification logic is fixed against.
var recursiveVK = "{{.RecursiveVKHex}}"
`))

func hashBytes(h crypto.Hash) string {
	var b bytes.Buffer
	for i, v := range h {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", v)
	}
	return b.String()
}

// HeliosRecursionCircuit renders the Helios recursion circuit blueprint
// with the bootstrap constants compiled in.
func HeliosRecursionCircuit(trustedHead uint64, committeeHash crypto.Hash, heliosVKHex string) (string, error) {
	var out bytes.Buffer
	err := heliosRecursionBlueprint.Execute(&out, struct {
		TrustedHead        uint64
		CommitteeHashBytes string
		HeliosVKHex        string
	}{trustedHead, hashBytes(committeeHash), heliosVKHex})
	if err != nil {
		return "", fmt.Errorf("circuitgen: render helios recursion blueprint: %w", err)
	}
	return out.String(), nil
}

// TendermintRecursionCircuit renders the Tendermint recursion circuit
// blueprint with the bootstrap constants compiled in.
func TendermintRecursionCircuit(trustedHeight uint64, trustedRoot crypto.Hash, tendermintVKHex string) (string, error) {
	var out bytes.Buffer
	err := tendermintRecursionBlueprint.Execute(&out, struct {
		TrustedHeight    uint64
		TrustedRootBytes string
		TendermintVKHex  string
	}{trustedHeight, hashBytes(trustedRoot), tendermintVKHex})
	if err != nil {
		return "", fmt.Errorf("circuitgen: render tendermint recursion blueprint: %w", err)
	}
	return out.String(), nil
}

// WrapperCircuit renders the wrapper circuit blueprint with the
// canonical recursion VK compiled in, closing the build-time cycle
// described for the two-phase recursion-then-wrapper build.
func WrapperCircuit(recursiveVKHex string) (string, error) {
	var out bytes.Buffer
	if err := wrapperBlueprint.Execute(&out, struct{ RecursiveVKHex string }{recursiveVKHex}); err != nil {
		return "", fmt.Errorf("circuitgen: render wrapper blueprint: %w", err)
	}
	return out.String(), nil
}
