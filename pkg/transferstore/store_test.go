package transferstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	mghelper "github.com/chainsafe/bridge-tracker/pkg/pgutil/migrations"
	"github.com/chainsafe/bridge-tracker/pkg/pgutil"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const (
	alice = "0x00000000000000000000000000000000000a11ce"
	bob   = "0x0000000000000000000000000000000000000b0b"
)

func newTestTransfer(account, hash string, updated time.Time) *transfer.Transfer {
	return &transfer.Transfer{
		ID:                    uuid.New(),
		Account:               account,
		SessionID:             1,
		TxHash:                hash,
		SourceChainID:         100,
		ConfirmationThreshold: 8,
		Phase:                 tracker.PhaseAwaitingReceipt,
		CreatedAt:             updated,
		UpdatedAt:             updated,
	}
}

// runStoreTests exercises behavior every Store implementation shares.
func runStoreTests(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetLatestTransfer(context.Background(), alice)
		require.ErrorIs(t, err, ErrTransferNotFound)
	})

	t.Run("save updates in place", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		base := time.Now().UTC().Truncate(time.Millisecond)

		rec := newTestTransfer(alice, "0x01", base)
		require.NoError(t, s.SaveTransfer(ctx, rec))

		rec.Phase = tracker.PhaseNeedsManualConfirmation
		rec.Confirmations = 8
		rec.MessageID = "0xabcd"
		rec.SignatureCount = 2
		rec.NeedsConfirmation = true
		rec.UpdatedAt = base.Add(time.Second)
		require.NoError(t, s.SaveTransfer(ctx, rec))

		got, err := s.GetLatestTransfer(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, rec.ID, got.ID)
		require.Equal(t, tracker.PhaseNeedsManualConfirmation, got.Phase)
		require.Equal(t, uint64(8), got.Confirmations)
		require.Equal(t, "0xabcd", got.MessageID)
		require.Equal(t, 2, got.SignatureCount)
		require.True(t, got.NeedsConfirmation)
		require.Empty(t, got.Error)

		all, err := s.ListTransfers(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("list newest first", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		base := time.Now().UTC().Truncate(time.Millisecond)

		older := newTestTransfer(alice, "0x01", base)
		newer := newTestTransfer(alice, "0x02", base.Add(time.Minute))
		other := newTestTransfer(bob, "0x03", base.Add(2*time.Minute))
		for _, rec := range []*transfer.Transfer{older, newer, other} {
			require.NoError(t, s.SaveTransfer(ctx, rec))
		}

		latest, err := s.GetLatestTransfer(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, newer.ID, latest.ID)

		all, err := s.ListTransfers(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, other.ID, all[0].ID)
		require.Equal(t, older.ID, all[2].ID)

		limited, err := s.ListTransfers(ctx, WithLimit(2))
		require.NoError(t, err)
		require.Len(t, limited, 2)

		mine, err := s.ListTransfers(ctx, WithAccount(alice))
		require.NoError(t, err)
		require.Len(t, mine, 2)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func(*testing.T) Store { return NewMemoryStore() })
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	rec := newTestTransfer(alice, "0x01", time.Now())
	require.NoError(t, s.SaveTransfer(ctx, rec))

	rec.Phase = tracker.PhaseFailed
	got, err := s.GetLatestTransfer(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, tracker.PhaseAwaitingReceipt, got.Phase)
}

func TestPGStore(t *testing.T) {
	pgutil.RequireDocker(t)
	runStoreTests(t, func(t *testing.T) Store {
		db, cleanup := pgutil.SetupTestDB(t)
		t.Cleanup(cleanup)
		if err := mghelper.CreateSchema(context.Background(), db, &TransferDao{}); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
		return NewStore(db)
	})
}
