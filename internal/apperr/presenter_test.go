package apperr

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenter_LogsAndFormats(t *testing.T) {
	var buf bytes.Buffer
	log := logger.Nop()
	log.Logger = log.Output(&buf).Level(zerolog.DebugLevel)

	p := NewPresenter(log)
	out := p.Present("sign", SecretNotFound("0xabc"))

	assert.Equal(t, `sign: SecretNotFound("0xabc")`, out)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sign", entry["op"])
	assert.Equal(t, "SecretNotFound", entry["kind"])
	assert.Equal(t, false, entry["connect"])
}

func TestPresenter_PlainError(t *testing.T) {
	p := NewPresenter(logger.Nop())

	out := p.Present("load", errors.New("weird"))
	assert.Equal(t, `load: Internal(cause=*errors.errorString "weird")`, out)
	assert.Empty(t, p.Present("load", nil))
}
