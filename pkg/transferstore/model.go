package transferstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-tracker/pkg/tracker"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// TransferDao is a data access object that maps directly to the 'tracked_transfers' table in PostgreSQL.
type TransferDao struct {
	bun.BaseModel         `bun:"table:tracked_transfers,alias:tt"`
	ID                    uuid.UUID `bun:"id,pk,type:uuid"`
	Account               string    `bun:"account,notnull,type:varchar(64)"`
	SessionID             int64     `bun:"session_id,notnull"`
	TxHash                string    `bun:"tx_hash,notnull,type:varchar(66)"`
	SourceChainID         int64     `bun:"source_chain_id,notnull"`
	ConfirmationThreshold int64     `bun:"confirmation_threshold,notnull,default:0"`
	Phase                 string    `bun:"phase,notnull,type:varchar(32)"`
	Confirmations         int64     `bun:"confirmations,notnull,default:0"`
	MessageID             *string   `bun:"message_id,type:varchar(66)"`
	SignatureCount        int       `bun:"signature_count,notnull,default:0"`
	NeedsConfirmation     bool      `bun:"needs_confirmation,notnull,default:false"`
	Error                 *string   `bun:"error,type:text"`
	CreatedAt             time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt             time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toTransferDao(t *transfer.Transfer) *TransferDao {
	dao := &TransferDao{
		ID:                    t.ID,
		Account:               t.Account,
		SessionID:             int64(t.SessionID),
		TxHash:                t.TxHash,
		SourceChainID:         t.SourceChainID,
		ConfirmationThreshold: int64(t.ConfirmationThreshold),
		Phase:                 string(t.Phase),
		Confirmations:         int64(t.Confirmations),
		SignatureCount:        t.SignatureCount,
		NeedsConfirmation:     t.NeedsConfirmation,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
	if t.MessageID != "" {
		dao.MessageID = &t.MessageID
	}
	if t.Error != "" {
		dao.Error = &t.Error
	}
	return dao
}

func toTransfer(dao *TransferDao) *transfer.Transfer {
	t := &transfer.Transfer{
		ID:                    dao.ID,
		Account:               dao.Account,
		SessionID:             uint64(dao.SessionID),
		TxHash:                dao.TxHash,
		SourceChainID:         dao.SourceChainID,
		ConfirmationThreshold: uint64(dao.ConfirmationThreshold),
		Phase:                 tracker.Phase(dao.Phase),
		Confirmations:         uint64(dao.Confirmations),
		SignatureCount:        dao.SignatureCount,
		NeedsConfirmation:     dao.NeedsConfirmation,
		CreatedAt:             dao.CreatedAt,
		UpdatedAt:             dao.UpdatedAt,
	}
	if dao.MessageID != nil {
		t.MessageID = *dao.MessageID
	}
	if dao.Error != nil {
		t.Error = *dao.Error
	}
	return t
}
