package tracker

const (
	labelWaitingConfirmations = "Waiting for Block Confirmations"
	labelCollectingSignatures = "Collecting Signatures"
	labelWaitingExecution     = "Waiting for Execution"
)

// State is a snapshot of the tracker state for the active session.
type State struct {
	SessionID         uint64             `json:"session_id"`
	Tx                TrackedTransaction `json:"tx"`
	Phase             Phase              `json:"phase"`
	Receipt           *Receipt           `json:"receipt,omitempty"`
	Message           *Message           `json:"message,omitempty"`
	NeedsConfirmation bool               `json:"needs_confirmation"`
	Err               error              `json:"-"`
}

// Label is the progress text shown next to the confirmation counter.
func (s State) Label() string {
	switch s.Phase {
	case PhaseAwaitingReceipt, PhaseAwaitingConfirmations:
		return labelWaitingConfirmations
	case PhaseCollectingSignatures:
		return labelCollectingSignatures
	case PhaseAwaitingExecution:
		return labelWaitingExecution
	default:
		return ""
	}
}

// ShowProgress reports whether a confirmation counter is meaningful.
// A zero threshold has nothing to count.
func (s State) ShowProgress() bool {
	return s.Receipt != nil && s.Tx.ConfirmationThreshold > 0
}

// Progress is the confirmation count capped at the threshold.
func (s State) Progress() uint64 {
	if s.Receipt == nil {
		return 0
	}
	if s.Receipt.Confirmations < s.Tx.ConfirmationThreshold {
		return s.Receipt.Confirmations
	}
	return s.Tx.ConfirmationThreshold
}

// clone copies the snapshot so observers cannot alias tracker-owned memory.
func (s State) clone() State {
	if s.Receipt != nil {
		r := *s.Receipt
		s.Receipt = &r
	}
	if s.Message != nil {
		m := *s.Message
		m.Signatures = append([]string(nil), s.Message.Signatures...)
		s.Message = &m
	}
	return s
}

func (s State) sameAs(o State) bool {
	if s.SessionID != o.SessionID || s.Tx != o.Tx || s.Phase != o.Phase ||
		s.NeedsConfirmation != o.NeedsConfirmation || errText(s.Err) != errText(o.Err) {
		return false
	}
	if (s.Receipt == nil) != (o.Receipt == nil) || (s.Receipt != nil && *s.Receipt != *o.Receipt) {
		return false
	}
	if (s.Message == nil) != (o.Message == nil) {
		return false
	}
	if s.Message != nil {
		return s.Message.ID == o.Message.ID && len(s.Message.Signatures) == len(o.Message.Signatures)
	}
	return true
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
