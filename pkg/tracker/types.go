package tracker

import (
	"context"
)

// Phase is the progress phase of a tracking session.
type Phase string

const (
	PhaseIdle                    Phase = "idle"
	PhaseAwaitingReceipt         Phase = "awaiting_receipt"
	PhaseAwaitingConfirmations   Phase = "awaiting_confirmations"
	PhaseCollectingSignatures    Phase = "collecting_signatures"
	PhaseAwaitingExecution       Phase = "awaiting_execution"
	PhaseCompleted               Phase = "completed"
	PhaseNeedsManualConfirmation Phase = "needs_manual_confirmation"
	PhaseFailed                  Phase = "failed"
)

// IsTerminal reports whether no further polls happen in this phase.
func (p Phase) IsTerminal() bool {
	switch p {
	case PhaseCompleted, PhaseNeedsManualConfirmation, PhaseFailed:
		return true
	default:
		return false
	}
}

// ChainKind selects how a bridge transfer finalizes on its source chain.
type ChainKind int

const (
	// ChainKindExecutionStatus chains finalize once the destination AMB
	// reports the message as executed.
	ChainKindExecutionStatus ChainKind = iota
	// ChainKindSignatureCollection chains finalize once the message carries
	// validator signatures; the user then confirms on the other side.
	ChainKindSignatureCollection
)

func (k ChainKind) String() string {
	if k == ChainKindSignatureCollection {
		return "signature_collection"
	}
	return "execution_status"
}

// TrackedTransaction identifies the source-chain transaction of one session.
type TrackedTransaction struct {
	Hash                  string `json:"hash"`
	SourceChainID         int64  `json:"source_chain_id"`
	ConfirmationThreshold uint64 `json:"confirmation_threshold"`
}

// Receipt is the mined state of a transaction. A nil *Receipt means the
// transaction is still pending.
type Receipt struct {
	TxHash        string `json:"tx_hash"`
	BlockNumber   uint64 `json:"block_number"`
	Confirmations uint64 `json:"confirmations"`
}

// Message is the bridge relay record derived from a source transaction.
type Message struct {
	ID         string   `json:"id"`
	Data       string   `json:"data"`
	Signatures []string `json:"signatures,omitempty"`
}

// HasSignatures reports whether validators have signed the message.
func (m *Message) HasSignatures() bool {
	return m != nil && len(m.Signatures) > 0
}

// ReceiptFetcher fetches a transaction receipt by hash. It returns a nil
// receipt while the transaction is pending.
type ReceiptFetcher interface {
	FetchReceipt(ctx context.Context, hash string) (*Receipt, error)
}

// MessageLookup resolves the bridge message of a source transaction.
// It returns ErrMessageNotFound (or a nil message) while the message is not
// indexed yet.
type MessageLookup interface {
	LookupMessage(ctx context.Context, chainID int64, hash string) (*Message, error)
}

// ExecutionChecker reports whether a message was executed on the
// destination chain.
type ExecutionChecker interface {
	CheckExecutionStatus(ctx context.Context, chainID int64, msg *Message) (bool, error)
}

// ChainClassifier tells signature-collection chains apart. It must not do I/O.
type ChainClassifier interface {
	IsSignatureCollectionChain(chainID int64) bool
}

// Collaborators are the external lookups a session polls.
type Collaborators struct {
	Receipts   ReceiptFetcher
	Messages   MessageLookup
	Executions ExecutionChecker
	Classifier ChainClassifier
}

// Observer receives a snapshot after every observable state change.
// It is called synchronously and must not call back into the tracker.
type Observer func(State)
