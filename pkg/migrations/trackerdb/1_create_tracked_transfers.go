package trackerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/bridge-tracker/pkg/pgutil/migrations"
	"github.com/chainsafe/bridge-tracker/pkg/transferstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating tracked_transfers table...")
		if err := mghelper.CreateSchema(ctx, db, &transferstore.TransferDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &transferstore.TransferDao{}, "account, updated_at", "tx_hash")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping tracked_transfers table...")
		return mghelper.DropTables(ctx, db, &transferstore.TransferDao{})
	})
}
