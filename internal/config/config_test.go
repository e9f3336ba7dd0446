package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"XRPL_RPC_URL", "XRPL_FAUCET_URL", "IDENTITY_URL", "DATABASE_URL", "WALLET_FILE", "HTTP_PORT", "XRPL_RETRY_MAX"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.XRPLRPCURL != "https://s.altnet.rippletest.net:51234" {
		t.Errorf("XRPLRPCURL = %q, want testnet default", cfg.XRPLRPCURL)
	}
	if cfg.XRPLFaucetURL != "https://faucet.altnet.rippletest.net" {
		t.Errorf("XRPLFaucetURL = %q, want faucet default", cfg.XRPLFaucetURL)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.WalletFile != "wallet.json" {
		t.Errorf("WalletFile = %q, want wallet.json", cfg.WalletFile)
	}
	if cfg.HTTPPort != "5002" {
		t.Errorf("HTTPPort = %q, want 5002", cfg.HTTPPort)
	}
	if cfg.XRPLRetryMax != 5 {
		t.Errorf("XRPLRetryMax = %d, want 5", cfg.XRPLRetryMax)
	}
	if cfg.XRPLRetryBaseDelay != 2*time.Second {
		t.Errorf("XRPLRetryBaseDelay = %v, want 2s", cfg.XRPLRetryBaseDelay)
	}
	if cfg.BalanceRefreshInterval != 5*time.Minute {
		t.Errorf("BalanceRefreshInterval = %v, want 5m", cfg.BalanceRefreshInterval)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XRPL_RPC_URL", "https://custom-node.example.com")
	t.Setenv("WALLET_FILE", "/tmp/demo-wallet.json")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("XRPL_RETRY_MAX", "10")
	t.Setenv("XRPL_RETRY_BASE_DELAY", "5s")

	cfg := Load()

	if cfg.XRPLRPCURL != "https://custom-node.example.com" {
		t.Errorf("XRPLRPCURL = %q, want override", cfg.XRPLRPCURL)
	}
	if cfg.WalletFile != "/tmp/demo-wallet.json" {
		t.Errorf("WalletFile = %q, want override", cfg.WalletFile)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.XRPLRetryMax != 10 {
		t.Errorf("XRPLRetryMax = %d, want 10", cfg.XRPLRetryMax)
	}
	if cfg.XRPLRetryBaseDelay != 5*time.Second {
		t.Errorf("XRPLRetryBaseDelay = %v, want 5s", cfg.XRPLRetryBaseDelay)
	}
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("XRPL_RETRY_MAX", "not-a-number")
	t.Setenv("XRPL_RETRY_BASE_DELAY", "invalid-duration")

	cfg := Load()

	if cfg.XRPLRetryMax != 5 {
		t.Errorf("XRPLRetryMax = %d, want default 5 on invalid input", cfg.XRPLRetryMax)
	}
	if cfg.XRPLRetryBaseDelay != 2*time.Second {
		t.Errorf("XRPLRetryBaseDelay = %v, want default 2s on invalid input", cfg.XRPLRetryBaseDelay)
	}
}
