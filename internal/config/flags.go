package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-c/-config config file path (.toml, .yaml, .yml, .json)
//	-d database DSN (sqlite file)
//	-network network selected at startup
//	-price-api-key price API key
//	-price-url price API base URL
//	-require-price-key fail instead of using the keyless price tier
//	-request-timeout outbound request timeout (e.g., "10s")
//	-log-dir directory of the log file
//	-price-interval price refresh interval (e.g., "30s")
//	-tx-poll-interval pending transaction poll interval (e.g., "4s")
//	-print-config print the effective config as TOML and exit
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var filePath string
	var databaseDSN string
	var network string
	var priceAPIKey string
	var priceURL string
	var requirePriceKey bool
	var requestTimeout time.Duration
	var logDir string
	var priceInterval time.Duration
	var txPollInterval time.Duration
	var printConfig bool

	fs.StringVar(&filePath, "c", "", "Config file path")
	fs.StringVar(&filePath, "config", "", "Config file path (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&network, "network", "", "Network selected at startup")
	fs.StringVar(&priceAPIKey, "price-api-key", "", "Price API key")
	fs.StringVar(&priceURL, "price-url", "", "Price API base URL")
	fs.BoolVar(&requirePriceKey, "require-price-key", false, "Require a price API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&logDir, "log-dir", "", "Log file directory")
	fs.DurationVar(&priceInterval, "price-interval", 0, "Price refresh interval (e.g., 30s)")
	fs.DurationVar(&txPollInterval, "tx-poll-interval", 0, "Transaction poll interval (e.g., 4s)")

	fs.BoolVar(&printConfig, "print-config", false, "Print the effective config as TOML and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PriceAPIKey:     priceAPIKey,
			PriceURL:        priceURL,
			RequirePriceKey: requirePriceKey,
			RequestTimeout:  Duration(requestTimeout),
		},
		Chain:   Chain{DefaultNetwork: network},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Log:     Log{Dir: logDir},
		Workers: Workers{
			PriceInterval:  Duration(priceInterval),
			TxPollInterval: Duration(txPollInterval),
		},
		FilePath:    filePath,
		PrintConfig: printConfig,
	}, nil
}
