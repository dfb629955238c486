// Package transfer defines the tracked transfer record and its API views.
package transfer

import (
	"time"

	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

// TrackRequest starts tracking a source-chain transaction.
// An empty TxHash stops tracking.
type TrackRequest struct {
	TxHash  string `json:"tx_hash" validate:"omitempty,startswith=0x,len=66,hexadecimal"`
	ChainID int64  `json:"chain_id" validate:"required_with=TxHash"`
	// Confirmations overrides the chain default threshold when set.
	Confirmations *uint64 `json:"confirmations,omitempty"`
}

// ProviderChainRequest reports the chain the wallet is connected to.
type ProviderChainRequest struct {
	ChainID int64 `json:"chain_id" validate:"required"`
}

// Status is the API view of a tracker state
type Status struct {
	Phase             tracker.Phase `json:"phase"`
	Label             string        `json:"label,omitzero"`
	TxHash            string        `json:"tx_hash,omitzero"`
	ShortTxHash       string        `json:"short_tx_hash,omitzero"`
	ChainID           int64         `json:"chain_id,omitzero"`
	ShowProgress      bool          `json:"show_progress"`
	Confirmations     uint64        `json:"confirmations"`
	Threshold         uint64        `json:"threshold"`
	MessageID         string        `json:"message_id,omitzero"`
	SignatureCount    int           `json:"signature_count"`
	NeedsConfirmation bool          `json:"needs_confirmation"`
	MonitorURL        string        `json:"monitor_url,omitzero"`
	Error             string        `json:"error,omitzero"`
}

// Record is the API view of a persisted transfer
type Record struct {
	ID                string        `json:"id"`
	Account           string        `json:"account"`
	TxHash            string        `json:"tx_hash"`
	ChainID           int64         `json:"chain_id"`
	Phase             tracker.Phase `json:"phase"`
	Confirmations     uint64        `json:"confirmations"`
	Threshold         uint64        `json:"threshold"`
	MessageID         string        `json:"message_id,omitzero"`
	SignatureCount    int           `json:"signature_count"`
	NeedsConfirmation bool          `json:"needs_confirmation"`
	Error             string        `json:"error,omitzero"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// HistoryResponse lists recent transfers, newest first.
type HistoryResponse struct {
	Transfers []Record `json:"transfers"`
}

// NewStatus builds the API view of st.
func NewStatus(st tracker.State, shortHash, monitorURL string) Status {
	s := Status{
		Phase:             st.Phase,
		Label:             st.Label(),
		TxHash:            st.Tx.Hash,
		ShortTxHash:       shortHash,
		ChainID:           st.Tx.SourceChainID,
		ShowProgress:      st.ShowProgress(),
		Confirmations:     st.Progress(),
		Threshold:         st.Tx.ConfirmationThreshold,
		NeedsConfirmation: st.NeedsConfirmation,
		MonitorURL:        monitorURL,
	}
	if st.Message != nil {
		s.MessageID = st.Message.ID
		s.SignatureCount = len(st.Message.Signatures)
	}
	if st.Err != nil {
		s.Error = st.Err.Error()
	}
	return s
}

// NewRecord builds the API view of a persisted transfer.
func NewRecord(t *Transfer) Record {
	return Record{
		ID:                t.ID.String(),
		Account:           t.Account,
		TxHash:            t.TxHash,
		ChainID:           t.SourceChainID,
		Phase:             t.Phase,
		Confirmations:     t.Confirmations,
		Threshold:         t.ConfirmationThreshold,
		MessageID:         t.MessageID,
		SignatureCount:    t.SignatureCount,
		NeedsConfirmation: t.NeedsConfirmation,
		Error:             t.Error,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
