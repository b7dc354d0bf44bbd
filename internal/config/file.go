package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"gopkg.in/yaml.v3"
)

// SecretMask replaces secret values wherever config content is shown.
const SecretMask = "********"

var secretValue = regexp.MustCompile(`(?i)("?price_api_key"?\s*[:=]\s*)("[^"\n]*"|'[^'\n]*'|[^\s,}#]+)`)

// redactSecrets masks secret values in raw file content before it is
// attached to a decode error.
func redactSecrets(raw []byte) string {
	return secretValue.ReplaceAllString(string(raw), `${1}"`+SecretMask+`"`)
}

// LoadFile reads the config file at path and decodes it by extension
// (.toml, .yaml, .yml or .json). Decode failures are returned as
// *apperr.Error carrying the raw file content with secrets masked.
func LoadFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.FromIO(err)
	}

	cfg := new(StructuredConfig)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err = toml.Unmarshal(raw, cfg); err != nil {
			return nil, apperr.FromTOMLDecode(err, redactSecrets(raw))
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, apperr.FromYAML(err, redactSecrets(raw))
		}
	case ".json":
		if err = json.Unmarshal(raw, cfg); err != nil {
			return nil, apperr.FromJSON(err, json.RawMessage(redactSecrets(raw)))
		}
	default:
		return nil, apperr.Internal(fmt.Sprintf("unsupported config file extension %q", ext))
	}
	cfg.FilePath = ""

	return cfg, nil
}

// EncodeTOML renders cfg in the TOML file format accepted by [LoadFile].
func EncodeTOML(cfg *StructuredConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, apperr.FromTOMLEncode(err)
	}
	return buf.Bytes(), nil
}
