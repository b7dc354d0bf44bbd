// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-chain-keeper/models"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHAINKEEPER_"

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json/toml/yaml: keys used by the config file decoders.
type StructuredConfig struct {
	// App holds price API credentials and request settings.
	App App `envPrefix:"APP_" json:"app" toml:"app" yaml:"app"`

	// Chain holds the configured networks and the one selected at startup.
	Chain Chain `envPrefix:"CHAIN_" json:"chain" toml:"chain" yaml:"chain"`

	// Storage holds the local sqlite settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" toml:"storage" yaml:"storage"`

	// Log holds the file logger settings.
	Log Log `envPrefix:"LOG_" json:"log" toml:"log" yaml:"log"`

	// Workers holds polling intervals of the background workers.
	Workers Workers `envPrefix:"WORKERS_" json:"workers" toml:"workers" yaml:"workers"`

	// FilePath is the optional path to a config file.
	// Env: CHAINKEEPER_CONFIG, flags: -c / -config.
	FilePath string `env:"CONFIG" json:"-" toml:"-" yaml:"-"`

	// PrintConfig asks the client to dump the merged config and exit.
	// Flag only: -print-config.
	PrintConfig bool `json:"-" toml:"-" yaml:"-"`
}

// App holds application-level settings.
type App struct {
	// PriceAPIKey is sent as the x-cg-demo-api-key header.
	// Env: CHAINKEEPER_APP_PRICE_API_KEY
	PriceAPIKey string `env:"PRICE_API_KEY" json:"price_api_key" toml:"price_api_key" yaml:"price_api_key"`

	// PriceURL is the base URL of the price API.
	// Env: CHAINKEEPER_APP_PRICE_URL
	PriceURL string `env:"PRICE_URL" json:"price_url" toml:"price_url" yaml:"price_url"`

	// RequirePriceKey makes a missing PriceAPIKey an APIKeyMissing error
	// instead of falling back to the keyless tier.
	// Env: CHAINKEEPER_APP_REQUIRE_PRICE_KEY
	RequirePriceKey bool `env:"REQUIRE_PRICE_KEY" json:"require_price_key" toml:"require_price_key" yaml:"require_price_key"`

	// RequestTimeout bounds every outbound RPC and price request.
	// Env: CHAINKEEPER_APP_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
}

// Chain lists the networks the client can switch between.
type Chain struct {
	// Networks is read from the config file only.
	Networks []models.Network `json:"networks" toml:"networks" yaml:"networks"`

	// DefaultNetwork is the name of the network selected at startup.
	// Env: CHAINKEEPER_CHAIN_NETWORK
	DefaultNetwork string `env:"NETWORK" json:"default_network" toml:"default_network" yaml:"default_network"`
}

// Storage groups the configuration for the local database.
type Storage struct {
	DB DB `envPrefix:"DB_" json:"db" toml:"db" yaml:"db"`
}

// DB holds connection settings for the sqlite database.
type DB struct {
	// DSN is the sqlite file path.
	// Env: CHAINKEEPER_STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn" toml:"dsn" yaml:"dsn"`
}

// Log configures the file logger. The TUI owns stdout so logs never go there.
type Log struct {
	// Dir is the directory of the log file. Empty means "logs" next to the
	// executable.
	// Env: CHAINKEEPER_LOG_DIR
	Dir string `env:"DIR" json:"dir" toml:"dir" yaml:"dir"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PriceInterval is how often the price ticker refreshes.
	// Env: CHAINKEEPER_WORKERS_PRICE_INTERVAL
	PriceInterval Duration `env:"PRICE_INTERVAL" json:"price_interval" toml:"price_interval" yaml:"price_interval"`

	// TxPollInterval is how often a tracked transaction is polled.
	// Env: CHAINKEEPER_WORKERS_TX_POLL_INTERVAL
	TxPollInterval Duration `env:"TX_POLL_INTERVAL" json:"tx_poll_interval" toml:"tx_poll_interval" yaml:"tx_poll_interval"`
}

func defaultConfig() *StructuredConfig {
	networks := make([]models.Network, len(models.DefaultNetworks))
	copy(networks, models.DefaultNetworks)

	return &StructuredConfig{
		App: App{
			PriceURL:       "https://api.coingecko.com/api/v3",
			RequestTimeout: Duration(10 * time.Second),
		},
		Chain: Chain{
			Networks:       networks,
			DefaultNetwork: networks[0].Name,
		},
		Storage: Storage{DB: DB{DSN: "chainkeeper.db"}},
		Workers: Workers{
			PriceInterval:  Duration(30 * time.Second),
			TxPollInterval: Duration(4 * time.Second),
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. See the package documentation for the priority order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		build()
}
