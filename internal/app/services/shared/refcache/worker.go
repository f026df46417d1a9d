package refcache

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackCronSpec = "@every 10m"
	leaderLockTTL    = 2 * time.Minute
)

// Worker refreshes the reference lists on a cron schedule. Only the instance
// holding the leader lock refreshes in a given run.
type Worker struct {
	log    *zap.Logger
	spec   string
	locker contracts.LockerService
	cache  contracts.ReferenceCache
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewWorker(log *zap.Logger, spec string, locker contracts.LockerService, cache contracts.ReferenceCache) *Worker {
	return &Worker{log: log, spec: spec, locker: locker, cache: cache}
}

// Start schedules the refresh job and runs it once right away.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("refcache.worker: invalid cron spec, falling back",
			zap.String("spec", w.spec),
			zap.String("fallback", fallbackCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	go w.runOnce(w.runCtx)
}

// Stop cancels in-flight refreshes and waits for running jobs.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisRefcacheLeaderLockKey, leaderLockTTL)
	if err != nil {
		w.log.Warn("refcache.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("refcache.worker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisRefcacheLeaderLockKey, token); err != nil {
			w.log.Warn("refcache.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisRefcacheLeaderLockKey, token, leaderLockTTL); err != nil {
					w.log.Warn("refcache.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	start := time.Now()
	if err := w.cache.Refresh(ctx); err != nil {
		w.log.Warn("refcache.worker: refresh failed", zap.Error(err))
		return
	}
	w.log.Info("refcache.worker: reference lists refreshed", zap.Duration(constvars.LoggingDurationKey, time.Since(start)))
}
