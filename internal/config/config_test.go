package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.jsonc"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, "warp-cli", s.ToolPath)
	assert.Equal(t, 15*time.Second, s.CommandTimeout())
}

func TestLoadJSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.jsonc")
	content := `{
	// custom install location
	"tool_path": "/opt/cloudflare/warp-cli",
	"command_timeout_seconds": 30, /* slow daemon */
	"theme": "dark",
	"proxy_addr": "127.0.0.1:40001", // proxy mode port
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cloudflare/warp-cli", s.ToolPath)
	assert.Equal(t, 30*time.Second, s.CommandTimeout())
	assert.Equal(t, "Dark", s.Theme)
	assert.Equal(t, "127.0.0.1:40001", s.ProxyAddr)
	assert.Equal(t, Default().STUNServer, s.STUNServer, "unset fields keep defaults")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"broken json", `{"tool_path": }`},
		{"timeout too large", `{"command_timeout_seconds": 1000}`},
		{"negative timeout", `{"command_timeout_seconds": -1}`},
		{"unknown theme", `{"theme": "Solarized"}`},
		{"proxy without port", `{"proxy_addr": "localhost"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, Default(), s, "defaults are returned on error")
		})
	}
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}
