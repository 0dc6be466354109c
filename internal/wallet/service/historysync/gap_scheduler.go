package historysync

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// GapScheduler re-runs gap sync for followed addresses on a cron schedule, so
// activity missed while the host was suspended is recovered without restart.
type GapScheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewGapScheduler registers one job per address. spec accepts the standard
// five field syntax and descriptors such as "@every 10m".
func NewGapScheduler(ctx context.Context, service *Service, addresses []string, spec string, logger *zap.Logger) (*GapScheduler, error) {
	if service == nil {
		return nil, errors.New("history service is required")
	}
	logger = logger.Named("gapScheduler")
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})))

	for _, address := range addresses {
		address := address
		if err := service.ValidateAddress(address); err != nil {
			return nil, err
		}
		_, err := c.AddFunc(spec, func() {
			if ctx.Err() != nil {
				return
			}
			if _, err := service.SyncGap(ctx, address); err != nil {
				logger.Error("scheduled gap sync failed", zap.String("address", address), zap.Error(err))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("schedule gap sync %q: %w", spec, err)
		}
	}
	return &GapScheduler{cron: c, logger: logger}, nil
}

func (s *GapScheduler) Start() {
	s.cron.Start()
	s.logger.Info("gap sync scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop stops scheduling and waits for running jobs.
func (s *GapScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("gap sync scheduler stopped")
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
