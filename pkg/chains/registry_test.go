package chains

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/bridge-tracker/pkg/config"
)

func testChains() []config.ChainConfig {
	return []config.ChainConfig{
		{
			ChainID:               1,
			Name:                  "ethereum",
			AMBAddress:            "0x4C36d2919e407f0Cc2Ee3c993ccF8ac26d9CE64e",
			BridgeChainID:         100,
			RequiredConfirmations: 12,
			MonitorURL:            "https://alm-xdai.herokuapp.com/",
		},
		{
			ChainID:               100,
			Name:                  "xdai",
			AMBAddress:            "0x75Df5AF045d91108662D8080fD1FEFAd6aA0bb59",
			BridgeChainID:         1,
			SignatureCollection:   true,
			RequiredConfirmations: 8,
		},
	}
}

func TestRegistry_Classification(t *testing.T) {
	r, err := NewRegistry(testChains())
	require.NoError(t, err)

	require.True(t, r.IsSignatureCollectionChain(100))
	require.False(t, r.IsSignatureCollectionChain(1))
	require.False(t, r.IsSignatureCollectionChain(42), "unknown chains are execution-status chains")

	bridge, err := r.BridgeChain(1)
	require.NoError(t, err)
	require.Equal(t, int64(100), bridge.ID)

	require.Equal(t, int64(1), r.BridgeChainID(100))
	require.Zero(t, r.BridgeChainID(42))

	_, err = r.BridgeChain(42)
	require.Error(t, err)

	require.Equal(t, uint64(12), r.DefaultConfirmations(1))
	require.Equal(t, uint64(0), r.DefaultConfirmations(42))
	require.Len(t, r.Chains(), 2)
	require.Equal(t, int64(1), r.Chains()[0].ID)
}

func TestRegistry_RejectsBadConfig(t *testing.T) {
	cfgs := testChains()
	cfgs[1].BridgeChainID = 5
	_, err := NewRegistry(cfgs)
	require.Error(t, err)

	cfgs = testChains()
	cfgs[0].AMBAddress = "0x123"
	_, err = NewRegistry(cfgs)
	require.Error(t, err)

	cfgs = append(testChains(), testChains()[0])
	_, err = NewRegistry(cfgs)
	require.Error(t, err)
}

func TestRegistry_MonitorURL(t *testing.T) {
	r, err := NewRegistry(testChains())
	require.NoError(t, err)

	hash := "0x3f3c5a1e7d8b9c0a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f607182"
	require.Equal(t, "https://alm-xdai.herokuapp.com/1/"+hash, r.MonitorURL(1, hash))
	require.Empty(t, r.MonitorURL(100, hash), "no monitor configured")
	require.Empty(t, r.MonitorURL(1, ""))
}

func TestShortHash(t *testing.T) {
	require.Equal(t, "0x3f3c...7182", ShortHash("0x3f3c5a1e7d8b9c0a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f607182"))
	require.Equal(t, "0xabc", ShortHash("0xabc"))
}
