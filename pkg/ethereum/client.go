// Package ethereum reads transaction receipts and contract state from
// EVM chains over JSON-RPC.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

// Client represents a read-only connection to one chain
type Client struct {
	chainID int64
	backend Backend
	logger  *zap.Logger
}

// NewClient wraps an existing backend.
func NewClient(chainID int64, backend Backend, logger *zap.Logger) *Client {
	return &Client{
		chainID: chainID,
		backend: backend,
		logger:  logger.With(zap.Int64("chain_id", chainID)),
	}
}

// Dial connects to the RPC endpoint of cfg.
func Dial(ctx context.Context, cfg *config.ChainConfig, logger *zap.Logger) (*Client, error) {
	backend, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain %d RPC: %w", cfg.ChainID, err)
	}

	logger.Info("Connected to chain",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("name", cfg.Name),
		zap.String("rpc_url", cfg.RPCURL))

	return NewClient(cfg.ChainID, backend, logger), nil
}

// ChainID returns the chain this client is connected to.
func (c *Client) ChainID() int64 {
	return c.chainID
}

// Close closes the underlying connection
func (c *Client) Close() {
	if c.backend != nil {
		c.backend.Close()
	}
}

// FetchReceipt returns the receipt of txHash with its confirmation count, or
// nil if the transaction is not mined yet.
func (c *Client) FetchReceipt(ctx context.Context, txHash string) (*tracker.Receipt, error) {
	hash, err := ParseTxHash(txHash)
	if err != nil {
		return nil, err
	}

	receipt, err := c.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, geth.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get receipt of %s: %v", tracker.ErrNetwork, txHash, err)
	}
	if receipt == nil || receipt.BlockNumber == nil {
		return nil, nil
	}

	latest, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get latest block: %v", tracker.ErrNetwork, err)
	}

	mined := receipt.BlockNumber.Uint64()
	c.logger.Debug("Fetched receipt",
		zap.String("tx_hash", txHash),
		zap.Uint64("block", mined),
		zap.Uint64("latest", latest))

	return &tracker.Receipt{
		TxHash:        hash.Hex(),
		BlockNumber:   mined,
		Confirmations: Confirmations(latest, mined),
	}, nil
}

// CallContract executes a read-only call against the latest block.
func (c *Client) CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error) {
	out, err := c.backend.CallContract(ctx, msg, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: call to %s failed: %v", tracker.ErrNetwork, addrHex(msg.To), err)
	}
	return out, nil
}

// Confirmations counts the mining block itself as the first confirmation.
// A node that lags behind the block still reports one.
func Confirmations(latest, mined uint64) uint64 {
	if latest < mined {
		return 1
	}
	return latest - mined + 1
}

// ParseTxHash decodes a 0x-prefixed 32-byte transaction hash.
func ParseTxHash(s string) (common.Hash, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid transaction hash %q: %w", s, err)
	}
	if len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid transaction hash %q: want %d bytes, got %d", s, common.HashLength, len(raw))
	}
	return common.BytesToHash(raw), nil
}

func addrHex(a *common.Address) string {
	if a == nil {
		return "<nil>"
	}
	return a.Hex()
}
