// Package chains classifies the bridged chains known to the tracker.
package chains

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/bridge-tracker/pkg/config"
)

// Chain is the static description of one bridged chain.
type Chain struct {
	ID                    int64
	Name                  string
	RPCURL                string
	GraphURL              string
	AMBAddress            common.Address
	BridgeChainID         int64
	SignatureCollection   bool
	RequiredConfirmations uint64
	MonitorURL            string
}

// Registry is an immutable chain-id lookup table.
type Registry struct {
	chains map[int64]*Chain
	order  []int64
}

// NewRegistry builds a registry from the chain configuration.
func NewRegistry(cfgs []config.ChainConfig) (*Registry, error) {
	r := &Registry{chains: make(map[int64]*Chain, len(cfgs))}
	for _, c := range cfgs {
		if _, dup := r.chains[c.ChainID]; dup {
			return nil, fmt.Errorf("duplicate chain %d", c.ChainID)
		}
		if !common.IsHexAddress(c.AMBAddress) {
			return nil, fmt.Errorf("chain %d: invalid AMB address %q", c.ChainID, c.AMBAddress)
		}
		r.chains[c.ChainID] = &Chain{
			ID:                    c.ChainID,
			Name:                  c.Name,
			RPCURL:                c.RPCURL,
			GraphURL:              c.GraphURL,
			AMBAddress:            common.HexToAddress(c.AMBAddress),
			BridgeChainID:         c.BridgeChainID,
			SignatureCollection:   c.SignatureCollection,
			RequiredConfirmations: c.RequiredConfirmations,
			MonitorURL:            strings.TrimRight(c.MonitorURL, "/"),
		}
		r.order = append(r.order, c.ChainID)
	}
	for _, c := range r.chains {
		if _, ok := r.chains[c.BridgeChainID]; !ok {
			return nil, fmt.Errorf("chain %d: bridge chain %d is not configured", c.ID, c.BridgeChainID)
		}
	}
	return r, nil
}

// IsSignatureCollectionChain reports whether transfers from chainID finalize
// by collecting validator signatures. Unknown chains report false.
func (r *Registry) IsSignatureCollectionChain(chainID int64) bool {
	c, ok := r.chains[chainID]
	return ok && c.SignatureCollection
}

// Chain returns the chain with the given id.
func (r *Registry) Chain(chainID int64) (*Chain, bool) {
	c, ok := r.chains[chainID]
	return c, ok
}

// Chains returns all chains in configuration order.
func (r *Registry) Chains() []*Chain {
	out := make([]*Chain, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.chains[id])
	}
	return out
}

// GraphEndpoints maps every chain id to its bridge subgraph URL.
func (r *Registry) GraphEndpoints() map[int64]string {
	out := make(map[int64]string, len(r.chains))
	for id, c := range r.chains {
		out[id] = c.GraphURL
	}
	return out
}

// BridgeChainID returns the id of the chain on the other side of the bridge,
// or 0 for unknown chains.
func (r *Registry) BridgeChainID(chainID int64) int64 {
	if c, ok := r.chains[chainID]; ok {
		return c.BridgeChainID
	}
	return 0
}

// BridgeChain returns the chain on the other side of the bridge.
func (r *Registry) BridgeChain(chainID int64) (*Chain, error) {
	c, ok := r.chains[chainID]
	if !ok {
		return nil, fmt.Errorf("unknown chain %d", chainID)
	}
	return r.chains[c.BridgeChainID], nil
}

// DefaultConfirmations is the confirmation threshold used when the caller
// does not provide one.
func (r *Registry) DefaultConfirmations(chainID int64) uint64 {
	if c, ok := r.chains[chainID]; ok {
		return c.RequiredConfirmations
	}
	return 0
}

// MonitorURL links a source transaction to the bridge monitor (ALM).
func (r *Registry) MonitorURL(chainID int64, txHash string) string {
	c, ok := r.chains[chainID]
	if !ok || c.MonitorURL == "" || txHash == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s", c.MonitorURL, chainID, txHash)
}

// ShortHash abbreviates a transaction hash as 0x1234...abcd.
func ShortHash(hash string) string {
	if len(hash) <= 10 {
		return hash
	}
	return hash[:6] + "..." + hash[len(hash)-4:]
}
