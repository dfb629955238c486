package transfer

import (
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

// Transfer is the persisted record of one tracking session.
type Transfer struct {
	ID                    uuid.UUID
	Account               string
	SessionID             uint64
	TxHash                string
	SourceChainID         int64
	ConfirmationThreshold uint64
	Phase                 tracker.Phase
	Confirmations         uint64
	MessageID             string
	SignatureCount        int
	NeedsConfirmation     bool
	Error                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// New creates the record of a freshly started session.
func New(account string, st tracker.State) *Transfer {
	now := time.Now().UTC()
	t := &Transfer{
		ID:                    uuid.New(),
		Account:               account,
		SessionID:             st.SessionID,
		TxHash:                st.Tx.Hash,
		SourceChainID:         st.Tx.SourceChainID,
		ConfirmationThreshold: st.Tx.ConfirmationThreshold,
		CreatedAt:             now,
	}
	t.Apply(st)
	t.UpdatedAt = now
	return t
}

// Apply copies the observable parts of st into the record. The last seen
// confirmation count and message are kept once the tracker clears them.
func (t *Transfer) Apply(st tracker.State) {
	t.Phase = st.Phase
	t.NeedsConfirmation = st.NeedsConfirmation
	if st.Receipt != nil {
		t.Confirmations = st.Receipt.Confirmations
	}
	if st.Message != nil {
		t.MessageID = st.Message.ID
		t.SignatureCount = len(st.Message.Signatures)
	}
	t.Error = ""
	if st.Err != nil {
		t.Error = st.Err.Error()
	}
	t.UpdatedAt = time.Now().UTC()
}

// Stopped marks a record whose session was cancelled before it finished.
func (t *Transfer) Stopped() {
	if !t.Phase.IsTerminal() {
		t.Phase = PhaseStopped
	}
	t.UpdatedAt = time.Now().UTC()
}

// PhaseStopped is recorded for sessions cancelled by the caller.
const PhaseStopped tracker.Phase = "stopped"
