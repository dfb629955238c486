package ethereum

import (
	"context"
	"fmt"

	geth "github.com/ethereum/go-ethereum"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

// Pool holds one client per configured chain.
type Pool struct {
	clients map[int64]*Client
}

// NewPool builds a pool from ready clients.
func NewPool(clients ...*Client) *Pool {
	p := &Pool{clients: make(map[int64]*Client, len(clients))}
	for _, c := range clients {
		p.clients[c.ChainID()] = c
	}
	return p
}

// DialPool connects to every configured chain. Already opened connections are
// closed if one dial fails.
func DialPool(ctx context.Context, chains []config.ChainConfig, logger *zap.Logger) (*Pool, error) {
	p := NewPool()
	for i := range chains {
		c, err := Dial(ctx, &chains[i], logger)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.clients[c.ChainID()] = c
	}
	return p, nil
}

// Client returns the client of chainID.
func (p *Pool) Client(chainID int64) (*Client, error) {
	c, ok := p.clients[chainID]
	if !ok {
		return nil, fmt.Errorf("no RPC client for chain %d", chainID)
	}
	return c, nil
}

// Close closes all clients
func (p *Pool) Close() {
	for _, c := range p.clients {
		c.Close()
	}
}

// Caller returns the client of chainID as a contract caller.
func (p *Pool) Caller(chainID int64) (geth.ContractCaller, error) {
	c, err := p.Client(chainID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Receipts returns the client of chainID as a receipt fetcher.
func (p *Pool) Receipts(chainID int64) (tracker.ReceiptFetcher, error) {
	c, err := p.Client(chainID)
	if err != nil {
		return nil, err
	}
	return c, nil
}
