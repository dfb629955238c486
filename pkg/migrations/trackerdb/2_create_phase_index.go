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
		log.Println("creating tracked_transfers phase index...")
		return mghelper.CreateModelIndexes(ctx, db, &transferstore.TransferDao{}, "phase")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping tracked_transfers phase index...")
		return mghelper.DropModelIndexes(ctx, db, &transferstore.TransferDao{}, "phase")
	})
}
