package transferstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the transfer store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) SaveTransfer(ctx context.Context, t *transfer.Transfer) error {
	dao := toTransferDao(t)

	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (id) DO UPDATE").
		Set("phase = EXCLUDED.phase").
		Set("confirmations = EXCLUDED.confirmations").
		Set("message_id = EXCLUDED.message_id").
		Set("signature_count = EXCLUDED.signature_count").
		Set("needs_confirmation = EXCLUDED.needs_confirmation").
		Set("error = EXCLUDED.error").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", t.ID, err)
	}
	return nil
}

func (s *pgStore) GetLatestTransfer(ctx context.Context, account string) (*transfer.Transfer, error) {
	dao := new(TransferDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("account = ?", account).
		OrderExpr("updated_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return toTransfer(dao), nil
}

func (s *pgStore) ListTransfers(ctx context.Context, opts ...QueryOption) ([]*transfer.Transfer, error) {
	options := applyQueryOptions(opts)

	var daos []TransferDao
	query := s.db.NewSelect().Model(&daos)
	if options.Account != nil {
		query = query.Where("account = ?", *options.Account)
	}
	err := query.
		OrderExpr("updated_at DESC").
		Limit(options.Limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	transfers := make([]*transfer.Transfer, len(daos))
	for i := range daos {
		transfers[i] = toTransfer(&daos[i])
	}
	return transfers, nil
}
