package tracker

import (
	"time"

	"go.uber.org/zap"
)

// DefaultPollInterval is the delay between two poll cycles of a session.
const DefaultPollInterval = time.Second

// Option configures a ConfirmationTracker.
type Option func(*settings)

type settings struct {
	logger       *zap.Logger
	scheduler    Scheduler
	pollInterval time.Duration
	observer     Observer
}

// WithLogger sets the tracker logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithScheduler overrides the timer implementation, primarily for tests.
func WithScheduler(sch Scheduler) Option {
	return func(s *settings) { s.scheduler = sch }
}

// WithPollInterval sets the delay between poll cycles. Non-positive values
// keep the default.
func WithPollInterval(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithObserver registers the state observer.
func WithObserver(o Observer) Option {
	return func(s *settings) { s.observer = o }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:       zap.NewNop(),
		scheduler:    SystemScheduler{},
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
