package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const validConfig = `
server:
  port: 9000
tracker:
  poll_interval: 2s
chains:
  - chain_id: 1
    name: ethereum
    rpc_url: ${TEST_ETH_RPC}
    graph_url: https://api.thegraph.com/subgraphs/name/raid-guild/mainnet-omnibridge
    amb_address: "0x4C36d2919e407f0Cc2Ee3c993ccF8ac26d9CE64e"
    bridge_chain_id: 100
    required_confirmations: 12
  - chain_id: 100
    name: xdai
    rpc_url: https://rpc.gnosischain.com
    graph_url: https://api.thegraph.com/subgraphs/name/raid-guild/xdai-omnibridge
    amb_address: "0x75Df5AF045d91108662D8080fD1FEFAd6aA0bb59"
    bridge_chain_id: 1
    signature_collection: true
`

func TestParse_AppliesDefaults(t *testing.T) {
	t.Setenv("TEST_ETH_RPC", "https://mainnet.example.org")

	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, 2*time.Second, cfg.Tracker.PollInterval)
	require.Equal(t, 5*time.Second, cfg.Tracker.PersistTimeout)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, "/metrics", cfg.Monitoring.MetricsPath)
	require.False(t, cfg.Database.Enabled)

	require.Len(t, cfg.Chains, 2)
	require.Equal(t, "https://mainnet.example.org", cfg.Chains[0].RPCURL)
	require.Equal(t, uint64(12), cfg.Chains[0].RequiredConfirmations)
	require.Equal(t, uint64(8), cfg.Chains[1].RequiredConfirmations)
	require.True(t, cfg.Chains[1].SignatureCollection)
	require.Equal(t, "https://alm-xdai.herokuapp.com", cfg.Chains[1].MonitorURL)

	require.Equal(t, "xdai", cfg.Chain(100).Name)
	require.Nil(t, cfg.Chain(5))
}

func TestParse_PollIntervalDefaultsToOneSecond(t *testing.T) {
	t.Setenv("TEST_ETH_RPC", "https://mainnet.example.org")

	cfg, err := Parse([]byte(`
chains:
  - chain_id: 1
    name: ethereum
    rpc_url: https://mainnet.example.org
    graph_url: https://graph.example.org/mainnet
    amb_address: "0x4C36d2919e407f0Cc2Ee3c993ccF8ac26d9CE64e"
    bridge_chain_id: 100
  - chain_id: 100
    name: xdai
    rpc_url: https://rpc.gnosischain.com
    graph_url: https://graph.example.org/xdai
    amb_address: "0x75Df5AF045d91108662D8080fD1FEFAd6aA0bb59"
    bridge_chain_id: 1
`))
	require.NoError(t, err)
	require.Equal(t, time.Second, cfg.Tracker.PollInterval)
}

func TestParse_Validation(t *testing.T) {
	for name, doc := range map[string]string{
		"no chains": `server: {port: 8080}`,
		"unknown bridge chain": `
chains:
  - chain_id: 1
    name: ethereum
    rpc_url: https://mainnet.example.org
    graph_url: https://graph.example.org/mainnet
    amb_address: "0x4C36d2919e407f0Cc2Ee3c993ccF8ac26d9CE64e"
    bridge_chain_id: 100
`,
		"bad amb address": `
chains:
  - chain_id: 1
    name: ethereum
    rpc_url: https://mainnet.example.org
    graph_url: https://graph.example.org/mainnet
    amb_address: "not-an-address"
    bridge_chain_id: 100
`,
		"bad log format": `
logging:
  format: xml
chains:
  - chain_id: 1
    name: ethereum
    rpc_url: https://mainnet.example.org
    graph_url: https://graph.example.org/mainnet
    amb_address: "0x4C36d2919e407f0Cc2Ee3c993ccF8ac26d9CE64e"
    bridge_chain_id: 1
`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("TEST_ETH_RPC", "https://mainnet.example.org")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Chains, 2)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console", OutputPath: "stdout"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}
