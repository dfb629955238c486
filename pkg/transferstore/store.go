// Package transferstore persists tracked transfer records.
package transferstore

import (
	"context"
	"errors"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// ErrTransferNotFound is returned when a lookup finds no matching record.
var ErrTransferNotFound = errors.New("transfer not found")

// DefaultListLimit caps ListTransfers when no limit is given.
const DefaultListLimit = 100

// Store defines the interface for transfer record persistence
type Store interface {
	// SaveTransfer inserts the record or updates it by id.
	SaveTransfer(ctx context.Context, t *transfer.Transfer) error
	// GetLatestTransfer returns the most recently updated record of account.
	GetLatestTransfer(ctx context.Context, account string) (*transfer.Transfer, error)
	// ListTransfers returns records ordered by last update, newest first.
	ListTransfers(ctx context.Context, opts ...QueryOption) ([]*transfer.Transfer, error)
}

// QueryOptions defines options for listing transfers
type QueryOptions struct {
	Account *string
	Limit   int
}

// QueryOption is a functional option for listing transfers
type QueryOption func(*QueryOptions)

// WithAccount sets the account filter
func WithAccount(account string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Account = &account
	}
}

// WithLimit caps the number of returned records
func WithLimit(limit int) QueryOption {
	return func(opts *QueryOptions) {
		opts.Limit = limit
	}
}

func applyQueryOptions(opts []QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Limit <= 0 {
		options.Limit = DefaultListLimit
	}
	return options
}
