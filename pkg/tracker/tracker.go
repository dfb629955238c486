// Package tracker follows a bridge transfer from its source-chain receipt to
// the final state of its bridge message.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
)

// session is the per-transaction polling context. Its message and executed
// fields are only touched by the poll cycle, and cycles of one session never
// overlap.
type session struct {
	id     uint64
	tx     TrackedTransaction
	collab Collaborators
	kind   ChainKind

	ctx    context.Context
	cancel context.CancelFunc
	active bool

	message  *Message
	executed bool
}

// ConfirmationTracker polls the collaborators of one tracked transaction at a
// time. Starting a new session supersedes the previous one; results of a
// superseded session are discarded.
type ConfirmationTracker struct {
	logger       *zap.Logger
	scheduler    Scheduler
	pollInterval time.Duration
	observer     Observer

	sessionSeq atomic.Uint64

	mu      sync.Mutex
	current *session
	state   State
	handle  Timer

	// notifyMu keeps observer calls in mutation order. It is taken before mu
	// is released.
	notifyMu sync.Mutex
}

// New creates an idle tracker.
func New(opts ...Option) *ConfirmationTracker {
	s := applyOptions(opts)
	return &ConfirmationTracker{
		logger:       s.logger,
		scheduler:    s.scheduler,
		pollInterval: s.pollInterval,
		observer:     s.observer,
		state:        State{Phase: PhaseIdle},
	}
}

// Start begins tracking tx, cancelling any previous session. An empty hash or
// a missing receipt fetcher stops tracking instead.
func (t *ConfirmationTracker) Start(tx TrackedTransaction, collab Collaborators) error {
	if tx.Hash == "" || collab.Receipts == nil {
		t.Stop()
		return nil
	}
	if collab.Messages == nil || collab.Classifier == nil {
		return fmt.Errorf("%w: message lookup and chain classifier are required", ErrMissingCollaborator)
	}

	kind := ChainKindExecutionStatus
	if collab.Classifier.IsSignatureCollectionChain(tx.SourceChainID) {
		kind = ChainKindSignatureCollection
	}
	if kind == ChainKindExecutionStatus && collab.Executions == nil {
		return fmt.Errorf("%w: execution checker is required for chain %d", ErrMissingCollaborator, tx.SourceChainID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		id:     t.sessionSeq.Inc(),
		tx:     tx,
		collab: collab,
		kind:   kind,
		ctx:    ctx,
		cancel: cancel,
		active: true,
	}

	t.mu.Lock()
	t.endLocked()
	t.current = sess
	t.state = State{SessionID: sess.id, Tx: tx, Phase: PhaseAwaitingReceipt}
	t.scheduleLocked(sess, 0)
	metrics.ActiveSessions.Inc()
	metrics.PhaseTransitions.WithLabelValues(string(PhaseAwaitingReceipt)).Inc()
	t.unlockAndPublish(true)

	t.logger.Info("Tracking transaction",
		zap.Uint64("session", sess.id),
		zap.String("tx_hash", tx.Hash),
		zap.Int64("chain_id", tx.SourceChainID),
		zap.Uint64("threshold", tx.ConfirmationThreshold),
		zap.Stringer("chain_kind", kind))
	return nil
}

// Stop cancels the outstanding poll and resets the tracker to idle.
func (t *ConfirmationTracker) Stop() {
	t.mu.Lock()
	if t.current == nil && t.state.Phase == PhaseIdle {
		t.mu.Unlock()
		return
	}
	if t.current != nil && t.current.active {
		metrics.SessionsTotal.WithLabelValues("stopped").Inc()
	}
	t.endLocked()
	t.current = nil
	t.state = State{Phase: PhaseIdle}
	t.unlockAndPublish(true)
}

// ObserveProviderChain records that the wallet switched to chainID. A pending
// manual confirmation is withdrawn if that chain does not collect signatures.
func (t *ConfirmationTracker) ObserveProviderChain(chainID int64) {
	t.mu.Lock()
	if t.current == nil || !t.state.NeedsConfirmation {
		t.mu.Unlock()
		return
	}
	needs := t.current.collab.Classifier.IsSignatureCollectionChain(chainID)
	changed := t.state.NeedsConfirmation != needs
	t.state.NeedsConfirmation = needs
	t.unlockAndPublish(changed)
}

// State returns a snapshot of the current state.
func (t *ConfirmationTracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.clone()
}

// HasPendingPoll reports whether a poll is scheduled.
func (t *ConfirmationTracker) HasPendingPoll() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handle != nil
}

// poll runs one cycle for sess and decides what happens next.
func (t *ConfirmationTracker) poll(sess *session) {
	t.mu.Lock()
	if t.current != sess || !sess.active {
		t.mu.Unlock()
		return
	}
	t.handle = nil
	t.mu.Unlock()

	start := time.Now()
	metrics.PollsTotal.WithLabelValues(sess.kind.String()).Inc()
	done, err := t.cycle(sess)
	metrics.PollDuration.WithLabelValues(sess.kind.String()).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, errStaleSession):
		metrics.StaleResults.Inc()
		t.logger.Debug("Discarding result of superseded session", zap.Uint64("session", sess.id))
	case err != nil:
		t.fail(sess, err)
	case done:
	default:
		t.reschedule(sess)
	}
}

// cycle performs the lookups of one poll. It reports true once the session
// reached a terminal phase.
func (t *ConfirmationTracker) cycle(sess *session) (bool, error) {
	receipt, err := sess.collab.Receipts.FetchReceipt(sess.ctx, sess.tx.Hash)
	if err != nil {
		metrics.CollaboratorErrors.WithLabelValues("receipt").Inc()
		return false, fmt.Errorf("fetch receipt: %w", err)
	}
	if !t.apply(sess, func(st *State) {
		st.Receipt = receipt
		st.Phase = sess.progressPhase(receipt)
	}) {
		return false, errStaleSession
	}
	if receipt == nil {
		return false, nil
	}

	if sess.message == nil || (sess.kind == ChainKindSignatureCollection && !sess.message.HasSignatures()) {
		msg, err := sess.collab.Messages.LookupMessage(sess.ctx, sess.tx.SourceChainID, sess.tx.Hash)
		if err != nil && !errors.Is(err, ErrMessageNotFound) {
			metrics.CollaboratorErrors.WithLabelValues("message").Inc()
			return false, fmt.Errorf("lookup message: %w", err)
		}
		if msg != nil {
			sess.message = msg
			if !t.apply(sess, func(st *State) {
				st.Message = msg
				st.Phase = sess.progressPhase(receipt)
			}) {
				return false, errStaleSession
			}
		}
	}
	if sess.message == nil {
		return false, nil
	}

	switch sess.kind {
	case ChainKindSignatureCollection:
		if sess.message.HasSignatures() {
			return true, t.finish(sess, PhaseNeedsManualConfirmation)
		}
	case ChainKindExecutionStatus:
		executed, err := sess.collab.Executions.CheckExecutionStatus(sess.ctx, sess.tx.SourceChainID, sess.message)
		if err != nil {
			metrics.CollaboratorErrors.WithLabelValues("execution").Inc()
			return false, fmt.Errorf("check execution status: %w", err)
		}
		sess.executed = executed
		if executed {
			return true, t.finish(sess, PhaseCompleted)
		}
	}
	return false, nil
}

// progressPhase maps what the session has seen so far to a non-terminal phase.
func (s *session) progressPhase(receipt *Receipt) Phase {
	switch {
	case receipt == nil:
		return PhaseAwaitingReceipt
	case receipt.Confirmations < s.tx.ConfirmationThreshold:
		return PhaseAwaitingConfirmations
	case s.kind == ChainKindExecutionStatus && s.message != nil:
		return PhaseAwaitingExecution
	default:
		return PhaseCollectingSignatures
	}
}

// apply mutates the state of sess if it is still current.
func (t *ConfirmationTracker) apply(sess *session, fn func(*State)) bool {
	t.mu.Lock()
	if t.current != sess || !sess.active {
		t.mu.Unlock()
		return false
	}
	before := t.state.clone()
	fn(&t.state)
	if before.Phase != t.state.Phase {
		metrics.PhaseTransitions.WithLabelValues(string(t.state.Phase)).Inc()
	}
	t.unlockAndPublish(!before.sameAs(t.state))
	return true
}

func (t *ConfirmationTracker) reschedule(sess *session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != sess || !sess.active {
		metrics.StaleResults.Inc()
		return
	}
	t.scheduleLocked(sess, t.pollInterval)
}

// finish moves sess to a terminal phase and halts its polling.
func (t *ConfirmationTracker) finish(sess *session, phase Phase) error {
	t.mu.Lock()
	if t.current != sess || !sess.active {
		t.mu.Unlock()
		return errStaleSession
	}
	t.endLocked()
	t.state.Phase = phase
	t.state.Receipt = nil
	t.state.NeedsConfirmation = phase == PhaseNeedsManualConfirmation
	metrics.PhaseTransitions.WithLabelValues(string(phase)).Inc()
	metrics.SessionsTotal.WithLabelValues(string(phase)).Inc()
	t.unlockAndPublish(true)

	t.logger.Info("Tracking finished",
		zap.Uint64("session", sess.id),
		zap.String("tx_hash", sess.tx.Hash),
		zap.String("phase", string(phase)))
	return nil
}

// fail moves sess to PhaseFailed. The caller may Start again to retry.
func (t *ConfirmationTracker) fail(sess *session, err error) {
	t.mu.Lock()
	if t.current != sess || !sess.active {
		t.mu.Unlock()
		metrics.StaleResults.Inc()
		return
	}
	t.endLocked()
	t.state.Phase = PhaseFailed
	t.state.Receipt = nil
	t.state.Err = err
	metrics.PhaseTransitions.WithLabelValues(string(PhaseFailed)).Inc()
	metrics.SessionsTotal.WithLabelValues(string(PhaseFailed)).Inc()
	t.unlockAndPublish(true)

	t.logger.Error("Tracking failed",
		zap.Uint64("session", sess.id),
		zap.String("tx_hash", sess.tx.Hash),
		zap.Error(err))
}

// scheduleLocked arms the single poll handle for sess. Caller holds mu.
func (t *ConfirmationTracker) scheduleLocked(sess *session, delay time.Duration) {
	if t.handle != nil {
		t.handle.Stop()
	}
	t.handle = t.scheduler.AfterFunc(delay, func() { t.poll(sess) })
}

// endLocked cancels the poll handle and the context of the current session.
// Caller holds mu.
func (t *ConfirmationTracker) endLocked() {
	if t.handle != nil {
		t.handle.Stop()
		t.handle = nil
	}
	if sess := t.current; sess != nil && sess.active {
		sess.active = false
		sess.cancel()
		metrics.ActiveSessions.Dec()
	}
}

// unlockAndPublish releases mu and, if changed, hands a snapshot to the
// observer. Caller holds mu.
func (t *ConfirmationTracker) unlockAndPublish(changed bool) {
	if !changed || t.observer == nil {
		t.mu.Unlock()
		return
	}
	snapshot := t.state.clone()
	t.notifyMu.Lock()
	t.mu.Unlock()
	defer t.notifyMu.Unlock()
	t.observer(snapshot)
}
