package historysync

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"go.uber.org/zap"
)

// Runner drives the synchronization of one address: a gap sync on start, then
// a heartbeat every interval, with forced rescans when credits are signalled.
type Runner struct {
	service  *Service
	address  string
	interval time.Duration
	credits  <-chan struct{}
	logger   *zap.Logger
}

// NewRunner builds a Runner for address. credits may be nil.
func NewRunner(service *Service, address string, credits <-chan struct{}, logger *zap.Logger) (*Runner, error) {
	if service == nil {
		return nil, errors.New("history service is required")
	}
	if err := service.ValidateAddress(address); err != nil {
		return nil, err
	}
	return &Runner{
		service:  service,
		address:  address,
		interval: service.Config().Interval,
		credits:  credits,
		logger:   logger.With(zap.String("address", address)),
	}, nil
}

// Run loops until ctx is canceled. Persistence errors are logged and the loop
// keeps going; the next cycle retries.
func (r *Runner) Run(ctx context.Context) error {
	if _, err := r.service.SyncGap(ctx, r.address); err != nil {
		r.logger.Error("initial gap sync failed", zap.Error(err))
	}

	forced := false
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var err error
		if forced {
			_, err = r.service.OnPossibleCredit(ctx, r.address)
		} else {
			_, err = r.service.SyncHeartbeat(ctx, r.address)
		}
		if err != nil && ctx.Err() == nil {
			r.logger.Error("sync cycle failed", zap.Bool("forced", forced), zap.Error(err))
		}

		forced, err = r.wait(ctx)
		if err != nil {
			return err
		}
	}
}

// wait sleeps for one interval and reports whether a credit arrived meanwhile.
func (r *Runner) wait(ctx context.Context) (bool, error) {
	return clock.Wait(ctx, r.interval, r.credits)
}
