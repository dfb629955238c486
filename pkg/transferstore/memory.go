package transferstore

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// memoryStore keeps records in process. It is used when no database is
// configured.
type memoryStore struct {
	records *xsync.MapOf[uuid.UUID, transfer.Transfer]
}

// NewMemoryStore creates an in-memory transfer store
func NewMemoryStore() Store {
	return &memoryStore{records: xsync.NewMapOf[uuid.UUID, transfer.Transfer]()}
}

func (s *memoryStore) SaveTransfer(_ context.Context, t *transfer.Transfer) error {
	s.records.Store(t.ID, *t)
	return nil
}

func (s *memoryStore) GetLatestTransfer(ctx context.Context, account string) (*transfer.Transfer, error) {
	list, err := s.ListTransfers(ctx, WithAccount(account), WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrTransferNotFound
	}
	return list[0], nil
}

func (s *memoryStore) ListTransfers(_ context.Context, opts ...QueryOption) ([]*transfer.Transfer, error) {
	options := applyQueryOptions(opts)

	var out []*transfer.Transfer
	s.records.Range(func(_ uuid.UUID, t transfer.Transfer) bool {
		if options.Account == nil || *options.Account == t.Account {
			out = append(out, &t)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if len(out) > options.Limit {
		out = out[:options.Limit]
	}
	return out, nil
}
