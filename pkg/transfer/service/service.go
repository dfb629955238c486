package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
	"github.com/chainsafe/bridge-tracker/pkg/chains"
	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
	"github.com/chainsafe/bridge-tracker/pkg/transferstore"
)

var (
	ErrInvalidAccount   = errors.New("invalid account address")
	ErrUnsupportedChain = errors.New("unsupported chain")
)

// Store is the narrow data-access interface for the transfer service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	SaveTransfer(ctx context.Context, t *transfer.Transfer) error
	ListTransfers(ctx context.Context, opts ...transferstore.QueryOption) ([]*transfer.Transfer, error)
}

// ReceiptSource hands out the receipt fetcher of a source chain.
type ReceiptSource interface {
	Receipts(chainID int64) (tracker.ReceiptFetcher, error)
}

// Service defines the interface for tracking transfers per wallet account
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Track(ctx context.Context, account string, req *transfer.TrackRequest) (*transfer.Status, error)
	Status(ctx context.Context, account string) (*transfer.Status, error)
	Cancel(ctx context.Context, account string) error
	SetProviderChain(ctx context.Context, account string, chainID int64) (*transfer.Status, error)
	History(ctx context.Context, account string, limit int) (*transfer.HistoryResponse, error)
}

// Dependencies are the collaborators shared by all account trackers.
type Dependencies struct {
	Registry   *chains.Registry
	Receipts   ReceiptSource
	Messages   tracker.MessageLookup
	Executions tracker.ExecutionChecker
	Store      Store
}

// accountTracker is the tracker of one wallet account together with the
// record of its current session.
type accountTracker struct {
	account string
	tracker *tracker.ConfirmationTracker

	mu     sync.Mutex
	record *transfer.Transfer
}

type transferService struct {
	deps     Dependencies
	cfg      config.TrackerConfig
	logger   *zap.Logger
	validate *validator.Validate
	opts     []tracker.Option

	trackers *xsync.MapOf[string, *accountTracker]
}

// TrackerService is the transfer Service with lifecycle control.
type TrackerService interface {
	Service
	// Close stops every running tracker.
	Close()
}

// NewService creates a new transfer service. Extra tracker options are
// applied to every account tracker after the configured ones.
func NewService(deps Dependencies, cfg config.TrackerConfig, logger *zap.Logger, opts ...tracker.Option) TrackerService {
	// zero values left by hand-built configs fall back to the config defaults
	_ = defaults.Set(&cfg)
	return &transferService{
		deps:     deps,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
		opts:     opts,
		trackers: xsync.NewMapOf[string, *accountTracker](),
	}
}

func (s *transferService) Track(ctx context.Context, account string, req *transfer.TrackRequest) (*transfer.Status, error) {
	account, err := normalizeAccount(account)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid track request")
	}

	if req.TxHash == "" {
		if at, ok := s.trackers.Load(account); ok {
			at.tracker.Stop()
		}
		return s.status(account), nil
	}

	chain, ok := s.deps.Registry.Chain(req.ChainID)
	if !ok {
		return nil, apperrors.BadRequestError(
			fmt.Errorf("%w: %d", ErrUnsupportedChain, req.ChainID),
			fmt.Sprintf("chain %d is not supported", req.ChainID))
	}
	threshold := chain.RequiredConfirmations
	if req.Confirmations != nil {
		threshold = *req.Confirmations
	}

	receipts, err := s.deps.Receipts.Receipts(req.ChainID)
	if err != nil {
		return nil, apperrors.DependencyError(err, fmt.Sprintf("chain %d is unavailable", req.ChainID))
	}

	at := s.accountTracker(account)
	err = at.tracker.Start(tracker.TrackedTransaction{
		Hash:                  strings.ToLower(req.TxHash),
		SourceChainID:         req.ChainID,
		ConfirmationThreshold: threshold,
	}, tracker.Collaborators{
		Receipts:   receipts,
		Messages:   s.deps.Messages,
		Executions: s.deps.Executions,
		Classifier: s.deps.Registry,
	})
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return s.status(account), nil
}

func (s *transferService) Status(_ context.Context, account string) (*transfer.Status, error) {
	account, err := normalizeAccount(account)
	if err != nil {
		return nil, err
	}
	return s.status(account), nil
}

func (s *transferService) Cancel(_ context.Context, account string) error {
	account, err := normalizeAccount(account)
	if err != nil {
		return err
	}
	at, ok := s.trackers.Load(account)
	if !ok {
		return apperrors.ResourceNotFoundError(nil, "no transfer is tracked for this account")
	}
	at.tracker.Stop()
	return nil
}

func (s *transferService) SetProviderChain(_ context.Context, account string, chainID int64) (*transfer.Status, error) {
	account, err := normalizeAccount(account)
	if err != nil {
		return nil, err
	}
	if chainID <= 0 {
		return nil, apperrors.BadRequestError(nil, "chain_id must be positive")
	}
	if at, ok := s.trackers.Load(account); ok {
		at.tracker.ObserveProviderChain(chainID)
	}
	return s.status(account), nil
}

func (s *transferService) History(ctx context.Context, account string, limit int) (*transfer.HistoryResponse, error) {
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	opts := []transferstore.QueryOption{transferstore.WithLimit(limit)}
	if account != "" {
		normalized, err := normalizeAccount(account)
		if err != nil {
			return nil, err
		}
		opts = append(opts, transferstore.WithAccount(normalized))
	}

	list, err := s.deps.Store.ListTransfers(ctx, opts...)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	resp := &transfer.HistoryResponse{Transfers: make([]transfer.Record, 0, len(list))}
	for _, t := range list {
		resp.Transfers = append(resp.Transfers, transfer.NewRecord(t))
	}
	return resp, nil
}

func (s *transferService) Close() {
	s.trackers.Range(func(_ string, at *accountTracker) bool {
		at.tracker.Stop()
		return true
	})
}

func (s *transferService) status(account string) *transfer.Status {
	st := tracker.State{Phase: tracker.PhaseIdle}
	if at, ok := s.trackers.Load(account); ok {
		st = at.tracker.State()
	}
	view := transfer.NewStatus(st,
		chains.ShortHash(st.Tx.Hash),
		s.deps.Registry.MonitorURL(st.Tx.SourceChainID, st.Tx.Hash))
	return &view
}

// accountTracker returns the tracker of account, creating it on first use.
func (s *transferService) accountTracker(account string) *accountTracker {
	at, _ := s.trackers.LoadOrCompute(account, func() *accountTracker {
		at := &accountTracker{account: account}
		opts := []tracker.Option{
			tracker.WithLogger(s.logger.With(zap.String("account", account))),
			tracker.WithPollInterval(s.cfg.PollInterval),
			tracker.WithObserver(func(st tracker.State) { s.persist(at, st) }),
		}
		at.tracker = tracker.New(append(opts, s.opts...)...)
		return at
	})
	return at
}

// persist writes the snapshot st into the record of its session. A new
// session closes the record of the one it replaced. Store failures never
// affect tracking.
func (s *transferService) persist(at *accountTracker, st tracker.State) {
	at.mu.Lock()
	defer at.mu.Unlock()

	var pending []*transfer.Transfer
	prev := at.record
	switch {
	case st.Phase == tracker.PhaseIdle:
		at.record = nil
	case prev != nil && prev.SessionID == st.SessionID:
		prev.Apply(st)
		pending = append(pending, prev)
		prev = nil
	default:
		at.record = transfer.New(at.account, st)
		pending = append(pending, at.record)
	}
	if prev != nil && !prev.Phase.IsTerminal() {
		prev.Stopped()
		pending = append([]*transfer.Transfer{prev}, pending...)
	}

	for _, rec := range pending {
		s.save(rec)
	}
}

func (s *transferService) save(rec *transfer.Transfer) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.PersistTimeout)
	defer cancel()

	snapshot := *rec
	if err := s.deps.Store.SaveTransfer(ctx, &snapshot); err != nil {
		metrics.PersistErrors.Inc()
		s.logger.Warn("Failed to persist transfer",
			zap.String("account", rec.Account),
			zap.String("tx_hash", rec.TxHash),
			zap.String("phase", string(rec.Phase)),
			zap.Error(err))
	}
}

func normalizeAccount(account string) (string, error) {
	if !common.IsHexAddress(account) {
		return "", apperrors.BadRequestError(fmt.Errorf("%w: %q", ErrInvalidAccount, account), "invalid account address")
	}
	return strings.ToLower(common.HexToAddress(account).Hex()), nil
}
