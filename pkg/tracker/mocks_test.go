package tracker

import (
	"context"
	"sync"
	"time"
)

// manualScheduler records scheduled polls; tests fire them explicitly.
type manualScheduler struct {
	mu      sync.Mutex
	pending []*manualTimer
	delays  []time.Duration
}

type manualTimer struct {
	s       *manualScheduler
	f       func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	tm := &manualTimer{s: s, f: f}
	s.pending = append(s.pending, tm)
	s.delays = append(s.delays, d)
	return tm
}

func (tm *manualTimer) Stop() bool {
	tm.s.mu.Lock()
	defer tm.s.mu.Unlock()
	if tm.stopped || tm.fired {
		return false
	}
	tm.stopped = true
	tm.s.removeLocked(tm)
	return true
}

func (s *manualScheduler) removeLocked(tm *manualTimer) {
	for i, p := range s.pending {
		if p == tm {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// outstanding returns the number of armed timers.
func (s *manualScheduler) outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// fire runs the oldest armed timer synchronously. It reports false if none
// was armed.
func (s *manualScheduler) fire() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	tm := s.pending[0]
	s.pending = s.pending[1:]
	tm.fired = true
	s.mu.Unlock()

	tm.f()
	return true
}

// stepReceipt is one scripted FetchReceipt answer.
type stepReceipt struct {
	receipt *Receipt
	err     error
}

// mockReceipts answers FetchReceipt from a script; the last step repeats.
type mockReceipts struct {
	mu    sync.Mutex
	steps []stepReceipt
	calls int

	FetchReceiptFunc func(ctx context.Context, hash string) (*Receipt, error)
}

func (m *mockReceipts) FetchReceipt(ctx context.Context, hash string) (*Receipt, error) {
	if m.FetchReceiptFunc != nil {
		m.mu.Lock()
		m.calls++
		m.mu.Unlock()
		return m.FetchReceiptFunc(ctx, hash)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if len(m.steps) == 0 {
		return nil, nil
	}
	idx := m.calls - 1
	if idx >= len(m.steps) {
		idx = len(m.steps) - 1
	}
	return m.steps[idx].receipt, m.steps[idx].err
}

func (m *mockReceipts) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockMessages struct {
	mu                sync.Mutex
	calls             int
	LookupMessageFunc func(ctx context.Context, chainID int64, hash string) (*Message, error)
}

func (m *mockMessages) LookupMessage(ctx context.Context, chainID int64, hash string) (*Message, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.LookupMessageFunc != nil {
		return m.LookupMessageFunc(ctx, chainID, hash)
	}
	return nil, ErrMessageNotFound
}

func (m *mockMessages) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockExecutions struct {
	mu                       sync.Mutex
	calls                    int
	CheckExecutionStatusFunc func(ctx context.Context, chainID int64, msg *Message) (bool, error)
}

func (m *mockExecutions) CheckExecutionStatus(ctx context.Context, chainID int64, msg *Message) (bool, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.CheckExecutionStatusFunc != nil {
		return m.CheckExecutionStatusFunc(ctx, chainID, msg)
	}
	return false, nil
}

func (m *mockExecutions) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// classifier marks the listed chain ids as signature-collection chains.
type classifier map[int64]bool

func (c classifier) IsSignatureCollectionChain(chainID int64) bool {
	return c[chainID]
}

// recorder collects observer snapshots.
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) observe(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) all() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

func (r *recorder) last() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return State{}
	}
	return r.states[len(r.states)-1]
}
