// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (TOML, YAML or JSON, chosen by extension)
//  3. Environment variables prefixed with CHAINKEEPER_
//  4. Command-line flags
//
// The main entry point is [GetClientConfig].
package config
