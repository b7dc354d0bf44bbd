package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func rawString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case json.RawMessage:
		return string(v)
	default:
		return ""
	}
}

const tomlConfig = `
[app]
price_api_key = "toml-key"
request_timeout = "7s"

[chain]
default_network = "local"

[[chain.networks]]
name = "local"
rpc_url = "http://127.0.0.1:8545"
chain_id = 31337
symbol = "ETH"

[workers]
price_interval = "1m"
`

func TestLoadFile_TOML(t *testing.T) {
	cfg, err := LoadFile(writeTempConfig(t, "keeper.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, "toml-key", cfg.App.PriceAPIKey)
	assert.Equal(t, 7*time.Second, cfg.App.RequestTimeout.Std())
	assert.Equal(t, "local", cfg.Chain.DefaultNetwork)
	require.Len(t, cfg.Chain.Networks, 1)
	assert.Equal(t, uint64(31337), cfg.Chain.Networks[0].ChainID)
	assert.Equal(t, time.Minute, cfg.Workers.PriceInterval.Std())
}

func TestLoadFile_YAML(t *testing.T) {
	content := `
app:
  price_url: http://localhost:9000
chain:
  default_network: local
  networks:
    - name: local
      rpc_url: http://127.0.0.1:8545
      chain_id: 31337
workers:
  tx_poll_interval: 2s
`
	for _, name := range []string{"keeper.yaml", "keeper.yml"} {
		cfg, err := LoadFile(writeTempConfig(t, name, content))
		require.NoError(t, err, name)
		assert.Equal(t, "http://localhost:9000", cfg.App.PriceURL)
		assert.Equal(t, "local", cfg.Chain.Networks[0].Name)
		assert.Equal(t, 2*time.Second, cfg.Workers.TxPollInterval.Std())
	}
}

func TestLoadFile_JSON(t *testing.T) {
	content := `{"storage":{"db":{"dsn":"x.db"}},"app":{"request_timeout":"1s"},"log":{"dir":"/tmp"}}`
	cfg, err := LoadFile(writeTempConfig(t, "keeper.json", content))
	require.NoError(t, err)
	assert.Equal(t, "x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Second, cfg.App.RequestTimeout.Std())
	assert.Equal(t, "/tmp", cfg.Log.Dir)
}

func TestLoadFile_DecodeErrorsCarryRawPayload(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		kind    apperr.Kind
	}{
		{"toml", "bad.toml", "[app\nprice_api_key=", apperr.KindTOMLDecode},
		{"yaml", "bad.yaml", "app: [unclosed", apperr.KindYAML},
		{"json", "bad.json", `{"app":`, apperr.KindJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeTempConfig(t, tt.file, tt.content))
			require.Error(t, err)

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.kind, appErr.Kind())

			raw, ok := appErr.Raw()
			require.True(t, ok)
			assert.Contains(t, rawString(raw), tt.content)
		})
	}
}

func TestLoadFile_DecodeErrorMasksAPIKey(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"bad.toml", "[app]\nprice_api_key = \"sk-live-123\"\nrequest_timeout = [\n"},
		{"bad.yaml", "app:\n  price_api_key: sk-live-123\n  price_url: [unclosed\n"},
		{"bad.json", `{"app": {"price_api_key": "sk-live-123", "price_url": }`},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := LoadFile(writeTempConfig(t, tt.file, tt.content))
			require.Error(t, err)

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)

			raw, ok := appErr.Raw()
			require.True(t, ok)
			assert.NotContains(t, rawString(raw), "sk-live-123")
			assert.Contains(t, rawString(raw), SecretMask)
			assert.NotContains(t, appErr.FormatFor("config"), "sk-live-123")
		})
	}
}

func TestRedactSecrets(t *testing.T) {
	assert.Equal(t, `price_api_key = "********"`, redactSecrets([]byte(`price_api_key = "abc"`)))
	assert.Equal(t, `price_api_key: "********"`, redactSecrets([]byte(`price_api_key: abc`)))
	assert.Equal(t, `{"price_api_key":"********","x":1}`, redactSecrets([]byte(`{"price_api_key":"abc","x":1}`)))
	assert.Equal(t, `price_url = "http://x"`, redactSecrets([]byte(`price_url = "http://x"`)))
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindIO, appErr.Kind())
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	_, err := LoadFile(writeTempConfig(t, "keeper.ini", "a=b"))

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindInternal, appErr.Kind())
}

func TestEncodeTOML_RoundTripsThroughLoadFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.PriceAPIKey = "secret"

	data, err := EncodeTOML(cfg)
	require.NoError(t, err)

	loaded, err := LoadFile(writeTempConfig(t, "dump.toml", string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg.App, loaded.App)
	assert.Equal(t, cfg.Chain, loaded.Chain)
	assert.Equal(t, cfg.Workers, loaded.Workers)
}
