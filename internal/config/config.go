package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	XRPLRPCURL             string
	XRPLFaucetURL          string
	IdentityURL            string
	DatabaseURL            string
	WalletFile             string
	HTTPPort               string
	XRPLRetryMax           int
	XRPLRetryBaseDelay     time.Duration
	BalanceRefreshInterval time.Duration
}

// Load reads configuration from the environment with testnet defaults. A
// .env file in the working directory is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		XRPLRPCURL:             envOrDefault("XRPL_RPC_URL", "https://s.altnet.rippletest.net:51234"),
		XRPLFaucetURL:          envOrDefault("XRPL_FAUCET_URL", "https://faucet.altnet.rippletest.net"),
		IdentityURL:            envOrDefaultWarn("IDENTITY_URL", ""),
		DatabaseURL:            envOrDefaultWarn("DATABASE_URL", ""),
		WalletFile:             envOrDefault("WALLET_FILE", "wallet.json"),
		HTTPPort:               envOrDefault("HTTP_PORT", "5002"),
		XRPLRetryMax:           envOrDefaultInt("XRPL_RETRY_MAX", 5),
		XRPLRetryBaseDelay:     envOrDefaultDuration("XRPL_RETRY_BASE_DELAY", 2*time.Second),
		BalanceRefreshInterval: envOrDefaultDuration("BALANCE_REFRESH_INTERVAL", 5*time.Minute),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultWarn(key, defaultVal string) string {
	v := envOrDefault(key, defaultVal)
	if v == "" {
		slog.Warn("required env var not set", "key", key)
	}
	return v
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
