package config

import "testing"

func TestFromEnvDefaultsToTendermint(t *testing.T) {
	t.Setenv("CLIENT_BACKEND", "")
	t.Setenv("TENDERMINT_RPC_URL", "http://localhost:26657")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.ClientBackend != ChainTendermint {
		t.Errorf("ClientBackend = %q, want %q", cfg.ClientBackend, ChainTendermint)
	}
	if cfg.TendermintExpirationLimit != 100000 {
		t.Errorf("TendermintExpirationLimit = %d, want 100000", cfg.TendermintExpirationLimit)
	}
	if cfg.APIPort != 7778 {
		t.Errorf("APIPort = %d, want 7778", cfg.APIPort)
	}
}

func TestFromEnvRequiresConsensusRPCForHelios(t *testing.T) {
	t.Setenv("CLIENT_BACKEND", "HELIOS")
	t.Setenv("SOURCE_CONSENSUS_RPC_URL", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error when SOURCE_CONSENSUS_RPC_URL is unset in HELIOS mode")
	}
}

func TestFromEnvRequiresTendermintRPCForTendermint(t *testing.T) {
	t.Setenv("CLIENT_BACKEND", "TENDERMINT")
	t.Setenv("TENDERMINT_RPC_URL", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error when TENDERMINT_RPC_URL is unset in TENDERMINT mode")
	}
}

func TestFromEnvRejectsInvalidBackend(t *testing.T) {
	t.Setenv("CLIENT_BACKEND", "SOLANA")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for invalid CLIENT_BACKEND")
	}
}

func TestFromEnvRejectsInvalidSourceChainID(t *testing.T) {
	t.Setenv("CLIENT_BACKEND", "HELIOS")
	t.Setenv("SOURCE_CONSENSUS_RPC_URL", "http://localhost:5052")
	t.Setenv("SOURCE_CHAIN_ID", "not-a-number")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non-numeric SOURCE_CHAIN_ID")
	}
}
