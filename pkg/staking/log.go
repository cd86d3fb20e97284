package staking

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/reward-distribution-ops/pkg/ledger"
)

const serviceName = "RewardDistribution"

// logService wraps Service with logging of every contract call
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the RewardDistribution Service.
// It logs call entry, duration and outcome.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) started(method string, fields ...zap.Field) time.Time {
	ls.logger.Info(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)...)
	return time.Now()
}

func (ls *logService) finished(method string, start time.Time, err error, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		ls.logger.Error(method+" failed", append(base, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", append(base, fields...)...)
}

func receiptFields(r ledger.Receipt) []zap.Field {
	return []zap.Field{
		zap.String("status", r.Status),
		zap.String("tx_id", r.TransactionID),
	}
}

// StakeTokens wraps the service method with logging
func (ls *logService) StakeTokens(ctx context.Context, amount uint64) (r ledger.Receipt, err error) {
	start := ls.started("StakeTokens", zap.Uint64("amount", amount))
	defer func() { ls.finished("StakeTokens", start, err, receiptFields(r)...) }()
	return ls.svc.StakeTokens(ctx, amount)
}

// UnstakeTokens wraps the service method with logging
func (ls *logService) UnstakeTokens(ctx context.Context, amount uint64) (r ledger.Receipt, err error) {
	start := ls.started("UnstakeTokens", zap.Uint64("amount", amount))
	defer func() { ls.finished("UnstakeTokens", start, err, receiptFields(r)...) }()
	return ls.svc.UnstakeTokens(ctx, amount)
}

// TransferMptTokens wraps the service method with logging
func (ls *logService) TransferMptTokens(
	ctx context.Context,
	amount uint64,
	recipient common.Address,
) (r ledger.Receipt, err error) {
	start := ls.started("TransferMptTokens",
		zap.Uint64("amount", amount),
		zap.String("recipient", recipient.Hex()))
	defer func() { ls.finished("TransferMptTokens", start, err, receiptFields(r)...) }()
	return ls.svc.TransferMptTokens(ctx, amount, recipient)
}

// ClaimRewards wraps the service method with logging
func (ls *logService) ClaimRewards(ctx context.Context) (r ledger.Receipt, err error) {
	start := ls.started("ClaimRewards")
	defer func() { ls.finished("ClaimRewards", start, err, receiptFields(r)...) }()
	return ls.svc.ClaimRewards(ctx)
}

// GetStakes wraps the service method with logging
func (ls *logService) GetStakes(ctx context.Context, account common.Address) (v uint64, err error) {
	start := ls.started("GetStakes", zap.String("account", account.Hex()))
	defer func() { ls.finished("GetStakes", start, err, zap.Uint64("stakes", v)) }()
	return ls.svc.GetStakes(ctx, account)
}

// GetRewards wraps the service method with logging
func (ls *logService) GetRewards(ctx context.Context, account common.Address) (v uint64, err error) {
	start := ls.started("GetRewards", zap.String("account", account.Hex()))
	defer func() { ls.finished("GetRewards", start, err, zap.Uint64("rewards", v)) }()
	return ls.svc.GetRewards(ctx, account)
}

// Position wraps the service method with logging
func (ls *logService) Position(ctx context.Context, account common.Address) (p *Position, err error) {
	start := ls.started("Position", zap.String("account", account.Hex()))
	defer func() {
		var fields []zap.Field
		if p != nil {
			fields = append(fields, zap.Uint64("stakes", p.Stakes), zap.Uint64("rewards", p.Rewards))
		}
		ls.finished("Position", start, err, fields...)
	}()
	return ls.svc.Position(ctx, account)
}
