package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const serviceName = "TransferService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the transfer Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)))
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

// Track wraps the service method with logging
func (ls *logService) Track(ctx context.Context, account string, req *transfer.TrackRequest) (resp *transfer.Status, err error) {
	start := time.Now()
	ls.logger.Info("Track started",
		zap.String("service", serviceName),
		zap.String("method", "Track"),
		zap.String("account", account),
		zap.String("tx_hash", req.TxHash),
		zap.Int64("chain_id", req.ChainID))

	defer func() {
		var fields []zap.Field
		if resp != nil {
			fields = append(fields, zap.String("phase", string(resp.Phase)), zap.Uint64("threshold", resp.Threshold))
		}
		ls.done("Track", start, err, fields...)
	}()

	return ls.svc.Track(ctx, account, req)
}

// Status wraps the service method with logging
func (ls *logService) Status(ctx context.Context, account string) (resp *transfer.Status, err error) {
	start := time.Now()
	defer func() {
		ls.done("Status", start, err, zap.String("account", account))
	}()

	return ls.svc.Status(ctx, account)
}

// Cancel wraps the service method with logging
func (ls *logService) Cancel(ctx context.Context, account string) (err error) {
	start := time.Now()
	ls.logger.Info("Cancel started",
		zap.String("service", serviceName),
		zap.String("method", "Cancel"),
		zap.String("account", account))

	defer func() {
		ls.done("Cancel", start, err, zap.String("account", account))
	}()

	return ls.svc.Cancel(ctx, account)
}

// SetProviderChain wraps the service method with logging
func (ls *logService) SetProviderChain(ctx context.Context, account string, chainID int64) (resp *transfer.Status, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("account", account), zap.Int64("chain_id", chainID)}
		if resp != nil {
			fields = append(fields, zap.Bool("needs_confirmation", resp.NeedsConfirmation))
		}
		ls.done("SetProviderChain", start, err, fields...)
	}()

	return ls.svc.SetProviderChain(ctx, account, chainID)
}

// History wraps the service method with logging
func (ls *logService) History(ctx context.Context, account string, limit int) (resp *transfer.HistoryResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("account", account), zap.Int("limit", limit)}
		if resp != nil {
			fields = append(fields, zap.Int("count", len(resp.Transfers)))
		}
		ls.done("History", start, err, fields...)
	}()

	return ls.svc.History(ctx, account, limit)
}
