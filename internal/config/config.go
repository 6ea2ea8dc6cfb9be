package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidAddress error = errors.New("invalid contract address")
)

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	marketEnvKey         = "MARKET_CONTRACT_ADDRESS"
	energyTokenEnvKey    = "ENERGY_TOKEN_ADDRESS"
	paymentTokenEnvKey   = "PAYMENT_TOKEN_ADDRESS"
	keystoreDirEnvKey    = "WALLET_KEYSTORE_DIR"
	walletPassEnvKey     = "WALLET_PASSPHRASE"
	logLevelEnvKey       = "LOG_LEVEL"
	defaultLogLevelValue = "info"
)

type App struct {
	Port               string
	NodeURL            string
	DBConnectionURL    string
	JWTSecret          string
	MarketAddress      common.Address
	EnergyTokenAddress common.Address
	PaymentTokenAddr   common.Address
	KeystoreDir        string
	WalletPassphrase   string
	LogLevel           string
}

// NewApp reads the application configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set win.
func NewApp() (App, error) {
	_ = godotenv.Load()

	required := map[string]string{}
	for _, key := range []string{
		apiPortEnvKey,
		ethNodeEnvKey,
		dbConnEnvKey,
		jwtSecretEnvKey,
		marketEnvKey,
		energyTokenEnvKey,
		paymentTokenEnvKey,
		keystoreDirEnvKey,
	} {
		value, ok := os.LookupEnv(key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		required[key] = value
	}

	addresses := map[string]common.Address{}
	for _, key := range []string{marketEnvKey, energyTokenEnvKey, paymentTokenEnvKey} {
		if !common.IsHexAddress(required[key]) {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidAddress, key, required[key])
		}
		addresses[key] = common.HexToAddress(required[key])
	}

	logLevel, ok := os.LookupEnv(logLevelEnvKey)
	if !ok {
		logLevel = defaultLogLevelValue
	}

	return App{
		Port:               required[apiPortEnvKey],
		NodeURL:            required[ethNodeEnvKey],
		DBConnectionURL:    required[dbConnEnvKey],
		JWTSecret:          required[jwtSecretEnvKey],
		MarketAddress:      addresses[marketEnvKey],
		EnergyTokenAddress: addresses[energyTokenEnvKey],
		PaymentTokenAddr:   addresses[paymentTokenEnvKey],
		KeystoreDir:        required[keystoreDirEnvKey],
		WalletPassphrase:   os.Getenv(walletPassEnvKey),
		LogLevel:           logLevel,
	}, nil
}
