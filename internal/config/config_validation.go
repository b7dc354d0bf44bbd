// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
)

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.RequestTimeout <= 0 {
		return ErrInvalidAppConfigs
	}
	if _, err := url.ParseRequestURI(cfg.App.PriceURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, apperr.FromURL(err))
	}

	if cfg.Workers.PriceInterval <= 0 || cfg.Workers.TxPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return cfg.Chain.validate()
}

func (c *Chain) validate() error {
	if len(c.Networks) == 0 {
		return ErrInvalidNetworkConfigs
	}

	seen := make(map[string]struct{}, len(c.Networks))
	for _, n := range c.Networks {
		if n.Name == "" || n.RPCURL == "" {
			return fmt.Errorf("%w: network %q needs a name and rpc_url", ErrInvalidNetworkConfigs, n.Name)
		}
		if _, err := url.ParseRequestURI(n.RPCURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidNetworkConfigs, apperr.FromURL(err))
		}
		if _, dup := seen[n.Name]; dup {
			return fmt.Errorf("%w: duplicate network %q", ErrInvalidNetworkConfigs, n.Name)
		}
		seen[n.Name] = struct{}{}
	}

	if _, ok := seen[c.DefaultNetwork]; !ok {
		return apperr.NetworkNotFound(c.DefaultNetwork)
	}

	return nil
}
