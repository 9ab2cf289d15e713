package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	base := t.TempDir()

	c := Default()
	c.Network = "testnet"
	c.RPCURL = "https://rpc.example.com"
	c.WebAppURL = "https://viewer.example.com"
	require.NoError(t, Save(base, c))

	assert.True(t, IsInitialized(base))
	assert.FileExists(t, filepath.Join(base, ".zklense", "config.yaml"))

	got, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", got.Version)
	assert.Equal(t, "testnet", got.Network)
	assert.Equal(t, "https://rpc.example.com", got.RPCURL)
	assert.Equal(t, "https://viewer.example.com", got.WebAppURL)
	assert.Equal(t, "console", got.LogConf.Format)
	assert.Equal(t, "info", got.LogConf.Level)
}

func TestLoad_NotInitialized(t *testing.T) {
	base := t.TempDir()

	assert.False(t, IsInitialized(base))
	_, err := Load(base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zklense init")
}

func TestLoad_UnknownNetwork(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(base), 0o755))
	require.NoError(t, os.WriteFile(Path(base), []byte("network: mars\n"), 0o644))

	_, err := Load(base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mars")
}

// network 字段缺失时回落 devnet
func TestLoad_EmptyNetworkDefaults(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(base), 0o755))
	require.NoError(t, os.WriteFile(Path(base), []byte("version: 0.1.0\n"), 0o644))

	got, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "devnet", got.Network)
}

func TestEffectiveRPCURL(t *testing.T) {
	c := &ProjectConfig{Network: "devnet"}
	assert.Equal(t, "https://api.devnet.solana.com", c.EffectiveRPCURL())

	// 自定义端点优先
	c.RPCURL = "http://127.0.0.1:8899"
	assert.Equal(t, "http://127.0.0.1:8899", c.EffectiveRPCURL())
}

func TestNetworks(t *testing.T) {
	for _, n := range Networks() {
		assert.True(t, ValidNetwork(n))
		assert.NotEmpty(t, DefaultRPCURL(n))
	}
	assert.False(t, ValidNetwork("mainnet"))
	assert.Empty(t, DefaultRPCURL("mainnet"))
}
