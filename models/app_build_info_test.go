package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123")
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "go-chain-keeper v1.2.0 (commit abc123, built 2026-10-01)", info.String())

	empty := NewAppBuildInfo("", "", "")
	assert.Equal(t, "N/A", empty.BuildVersion())
	assert.Equal(t, "N/A", empty.BuildDate())
	assert.Equal(t, "N/A", empty.BuildCommit())
}
