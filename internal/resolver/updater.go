package resolver

import (
	"context"
	"time"

	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

// Start runs the periodic updater. A stale database is refreshed right away,
// then every RefreshInterval until ctx is done or Stop is called.
func (r *Resolver) Start(ctx context.Context) error {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	if r.cancel != nil {
		return errors.Newf("updater already started").
			Component("resolver").
			Category(errors.CategoryState).
			Build()
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.run(ctx, r.done)

	r.log.Info("updater started",
		logger.Duration("interval", r.config.RefreshInterval),
		logger.Duration("max_age", r.config.MaxAge),
		logger.Int("sources", len(r.config.Sources)))
	return nil
}

// Stop halts the updater and waits for an in-flight refresh to return.
func (r *Resolver) Stop() {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
	r.done = nil
	r.log.Info("updater stopped")
}

func (r *Resolver) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.config.RefreshInterval)
	defer ticker.Stop()

	if r.Stale(r.now()) {
		r.refreshQuietly(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refreshQuietly(ctx)
		}
	}
}

// refreshQuietly runs Refresh for the updater, which has nobody to report to.
// Refresh already logs failures.
func (r *Resolver) refreshQuietly(ctx context.Context) {
	if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
		r.log.Debug("scheduled refresh will retry next interval",
			logger.Duration("interval", r.config.RefreshInterval))
	}
}
