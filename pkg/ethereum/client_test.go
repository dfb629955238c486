package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

const testHash = "0x3f3c5a1e7d8b9c0a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f607182"

type fakeBackend struct {
	TransactionReceiptFunc func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumberFunc        func(ctx context.Context) (uint64, error)
	CallContractFunc       func(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
	closed                 bool
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return f.TransactionReceiptFunc(ctx, txHash)
}

func (f *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	return f.BlockNumberFunc(ctx)
}

func (f *fakeBackend) CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return f.CallContractFunc(ctx, msg, blockNumber)
}

func (f *fakeBackend) Close() { f.closed = true }

func TestClient_FetchReceipt(t *testing.T) {
	backend := &fakeBackend{
		TransactionReceiptFunc: func(_ context.Context, h common.Hash) (*types.Receipt, error) {
			require.Equal(t, common.HexToHash(testHash), h)
			return &types.Receipt{TxHash: h, BlockNumber: big.NewInt(100)}, nil
		},
		BlockNumberFunc: func(context.Context) (uint64, error) { return 107, nil },
	}
	c := NewClient(1, backend, zap.NewNop())

	r, err := c.FetchReceipt(context.Background(), testHash)
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, uint64(100), r.BlockNumber)
	require.Equal(t, uint64(8), r.Confirmations)
	require.Equal(t, common.HexToHash(testHash).Hex(), r.TxHash)
}

func TestClient_FetchReceiptNotMined(t *testing.T) {
	backend := &fakeBackend{
		TransactionReceiptFunc: func(context.Context, common.Hash) (*types.Receipt, error) {
			return nil, geth.NotFound
		},
	}
	c := NewClient(1, backend, zap.NewNop())

	r, err := c.FetchReceipt(context.Background(), testHash)
	require.NoError(t, err)
	require.Nil(t, r)
}

func TestClient_FetchReceiptErrors(t *testing.T) {
	rpcDown := errors.New("connection refused")

	t.Run("receipt call fails", func(t *testing.T) {
		c := NewClient(1, &fakeBackend{
			TransactionReceiptFunc: func(context.Context, common.Hash) (*types.Receipt, error) {
				return nil, rpcDown
			},
		}, zap.NewNop())
		_, err := c.FetchReceipt(context.Background(), testHash)
		require.ErrorIs(t, err, tracker.ErrNetwork)
		require.Contains(t, err.Error(), "connection refused")
	})

	t.Run("block number fails", func(t *testing.T) {
		c := NewClient(1, &fakeBackend{
			TransactionReceiptFunc: func(context.Context, common.Hash) (*types.Receipt, error) {
				return &types.Receipt{BlockNumber: big.NewInt(5)}, nil
			},
			BlockNumberFunc: func(context.Context) (uint64, error) { return 0, rpcDown },
		}, zap.NewNop())
		_, err := c.FetchReceipt(context.Background(), testHash)
		require.ErrorIs(t, err, tracker.ErrNetwork)
	})

	t.Run("malformed hash", func(t *testing.T) {
		c := NewClient(1, &fakeBackend{}, zap.NewNop())
		_, err := c.FetchReceipt(context.Background(), "0x1234")
		require.Error(t, err)
		require.NotErrorIs(t, err, tracker.ErrNetwork)
	})
}

func TestConfirmations(t *testing.T) {
	tests := []struct {
		latest, mined, want uint64
	}{
		{latest: 10, mined: 10, want: 1},
		{latest: 17, mined: 10, want: 8},
		{latest: 9, mined: 10, want: 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Confirmations(tt.latest, tt.mined))
	}
}

func TestParseTxHash(t *testing.T) {
	h, err := ParseTxHash(testHash)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash(testHash), h)

	for _, bad := range []string{"", "3f3c", "0xzz", "0x" + testHash[2:10]} {
		_, err := ParseTxHash(bad)
		require.Error(t, err, bad)
	}
}

func TestClient_CallContractWrapsErrors(t *testing.T) {
	to := common.HexToAddress("0x75Df5AF045d91108662D8080fD1FEFAd6aA0bb59")
	c := NewClient(100, &fakeBackend{
		CallContractFunc: func(_ context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
			require.Equal(t, &to, msg.To)
			return nil, errors.New("timeout")
		},
	}, zap.NewNop())

	_, err := c.CallContract(context.Background(), geth.CallMsg{To: &to}, nil)
	require.ErrorIs(t, err, tracker.ErrNetwork)
}

func TestPool(t *testing.T) {
	a, b := &fakeBackend{}, &fakeBackend{}
	p := NewPool(NewClient(1, a, zap.NewNop()), NewClient(100, b, zap.NewNop()))

	c, err := p.Client(100)
	require.NoError(t, err)
	require.Equal(t, int64(100), c.ChainID())

	_, err = p.Client(5)
	require.Error(t, err)

	p.Close()
	require.True(t, a.closed)
	require.True(t, b.closed)
}
