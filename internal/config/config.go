// Package config resolves the process-wide configuration for the prover
// service from environment variables. It is read once at startup and
// passed explicitly to every subsystem that needs it — no package-level
// ambient lookups outside this package.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ChainMode selects which source chain the service ingests finality data
// from. It is constant for the lifetime of the process.
type ChainMode string

const (
	ChainHelios     ChainMode = "HELIOS"
	ChainTendermint ChainMode = "TENDERMINT"
)

func (m ChainMode) Valid() bool {
	return m == ChainHelios || m == ChainTendermint
}

// Config holds every environment-derived setting the service needs.
type Config struct {
	ClientBackend ChainMode

	// Helios-only.
	SourceConsensusRPCURL string
	SourceChainID         uint64

	// Tendermint-only.
	TendermintRPCURL          string
	TendermintExpirationLimit uint64

	ServiceStateDBPath string
	APIPort            int
	ElfsOut            string
}

// FromEnv resolves a Config from environment variables, applying the
// documented defaults for any variable that is unset.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ClientBackend:             ChainMode(getEnv("CLIENT_BACKEND", string(ChainTendermint))),
		SourceConsensusRPCURL:     os.Getenv("SOURCE_CONSENSUS_RPC_URL"),
		TendermintRPCURL:          os.Getenv("TENDERMINT_RPC_URL"),
		TendermintExpirationLimit: 100000,
		ServiceStateDBPath:        getEnv("SERVICE_STATE_DB_PATH", "service_state.db"),
		APIPort:                   7778,
		ElfsOut:                   getEnv("ELFS_OUT", "elfs/variable"),
	}

	if v := os.Getenv("SOURCE_CHAIN_ID"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: invalid SOURCE_CHAIN_ID %q: %w", v, err)
		}
		cfg.SourceChainID = n
	}

	if v := os.Getenv("TENDERMINT_EXPIRATION_LIMIT"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: invalid TENDERMINT_EXPIRATION_LIMIT %q: %w", v, err)
		}
		cfg.TendermintExpirationLimit = n
	}

	if v := os.Getenv("API_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: invalid API_PORT %q: %w", v, err)
		}
		cfg.APIPort = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants. A failure here is a fatal
// config error per the error taxonomy: the process must not start.
func (c *Config) Validate() error {
	if !c.ClientBackend.Valid() {
		return fmt.Errorf("config: invalid CLIENT_BACKEND %q, want HELIOS or TENDERMINT", c.ClientBackend)
	}
	if c.ClientBackend == ChainHelios && c.SourceConsensusRPCURL == "" {
		return fmt.Errorf("config: SOURCE_CONSENSUS_RPC_URL is required when CLIENT_BACKEND=HELIOS")
	}
	if c.ClientBackend == ChainTendermint && c.TendermintRPCURL == "" {
		return fmt.Errorf("config: TENDERMINT_RPC_URL is required when CLIENT_BACKEND=TENDERMINT")
	}
	if c.ServiceStateDBPath == "" {
		return fmt.Errorf("config: SERVICE_STATE_DB_PATH must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
