package resolver

import (
	"bytes"
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/observability/metrics"
)

type fetchResult struct {
	state   sourceState
	changed bool
}

// Refresh downloads all sources concurrently, merges them in configured
// order and merges the result over the published database.
//
// A source that fails falls back to its last good document. Refresh fails
// only when no source has any document. When every source answers
// "not modified" nothing is published. Persistence errors are returned after
// the new database has been published.
func (r *Resolver) Refresh(ctx context.Context) error {
	if r.fetcher == nil || len(r.config.Sources) == 0 {
		return errors.Newf("no country data sources configured").
			Component("resolver").
			Category(errors.CategoryConfiguration).
			Build()
	}

	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	start := time.Now()
	status, err := r.refreshLocked(ctx)
	r.statusMu.Lock()
	r.lastRefresh = r.now()
	r.lastErr = err
	r.statusMu.Unlock()
	if r.metrics != nil {
		r.metrics.RecordRefresh(status, time.Since(start))
	}

	if err != nil {
		r.log.Error("refresh failed",
			logger.String("status", status),
			logger.Duration("duration", time.Since(start)),
			logger.Error(err))
		return err
	}
	r.log.Info("refresh complete",
		logger.String("status", status),
		logger.Duration("duration", time.Since(start)))
	return nil
}

// TriggerRefresh runs Refresh unless one was triggered within the configured
// manual interval.
func (r *Resolver) TriggerRefresh(ctx context.Context) error {
	if !r.limiter.Allow() {
		return errors.Newf("refresh requested too soon, minimum interval is %s", r.config.ManualInterval).
			Component("resolver").
			Category(errors.CategoryLimit).
			Priority(errors.PriorityLow).
			Build()
	}
	return r.Refresh(ctx)
}

func (r *Resolver) refreshLocked(ctx context.Context) (string, error) {
	results := make([]fetchResult, len(r.config.Sources))

	prevs := make([]sourceState, len(r.config.Sources))
	r.statusMu.Lock()
	for i, src := range r.config.Sources {
		if st, ok := r.sources[src.Name]; ok {
			prevs[i] = *st
		}
	}
	r.statusMu.Unlock()

	var g errgroup.Group
	for i, src := range r.config.Sources {
		prev := prevs[i]
		g.Go(func() error {
			results[i] = r.fetchSource(ctx, src, prev)
			return results[i].state.err
		})
	}
	// Per-source errors stay in results; a failed source does not cancel the others.
	_ = g.Wait()

	var (
		fresh   *country.Database
		changed bool
		errs    []error
	)
	r.statusMu.Lock()
	for i, src := range r.config.Sources {
		r.sources[src.Name] = &results[i].state
	}
	r.statusMu.Unlock()

	for i, src := range r.config.Sources {
		res := results[i]
		if res.state.err != nil {
			errs = append(errs, res.state.err)
			r.log.Warn("source unavailable",
				logger.String("source", src.Name),
				logger.Bool("cached", res.state.db != nil),
				logger.Error(res.state.err))
		}
		if res.state.db == nil {
			continue
		}
		changed = changed || res.changed
		if fresh == nil {
			fresh = res.state.db
		} else {
			fresh = fresh.Merge(res.state.db)
		}
	}

	if fresh == nil {
		cause := errors.Join(errs...)
		if cause == nil {
			// every source answered without a document, e.g. 304 to a first request
			cause = errors.NewStd("no source returned a document")
		}
		return metrics.StatusError, errors.New(cause).
			Component("resolver").
			Category(errors.CategorySource).
			Context("sources", len(r.config.Sources)).
			Build()
	}
	if !changed {
		r.log.Debug("sources unchanged, keeping published database")
		return metrics.StatusNotModified, nil
	}

	merged := r.Database().Merge(fresh)
	r.Publish(merged)

	if err := r.persist(ctx, merged); err != nil {
		return metrics.StatusError, err
	}
	return metrics.StatusSuccess, nil
}

func (r *Resolver) fetchSource(ctx context.Context, src Source, prev sourceState) fetchResult {
	failed := func(err error) fetchResult {
		if r.metrics != nil {
			r.metrics.RecordSourceFetch(src.Name, metrics.StatusError, 0)
		}
		next := prev
		next.err = err
		return fetchResult{state: next}
	}

	lastModified := ""
	if prev.db != nil {
		lastModified = prev.lastModified
	}

	resp, err := r.fetcher.FetchIfModified(ctx, src.URL, lastModified)
	if err != nil {
		return failed(err)
	}

	if resp.NotModified {
		if r.metrics != nil {
			r.metrics.RecordSourceFetch(src.Name, metrics.StatusNotModified, 0)
		}
		next := prev
		next.fetchedAt = r.now()
		next.err = nil
		return fetchResult{state: next}
	}

	db, err := src.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return failed(errors.New(err).
			Component("resolver").
			Category(errors.CategorySource).
			Context("source", src.Name).
			Build())
	}
	if stats := db.Stats(); stats.Entities == 0 && stats.Records == 0 {
		return failed(errors.Newf("source %s returned an empty document", src.Name).
			Component("resolver").
			Category(errors.CategorySource).
			Context("bytes", len(resp.Body)).
			Build())
	}

	if r.metrics != nil {
		r.metrics.RecordSourceFetch(src.Name, metrics.StatusSuccess, len(resp.Body))
	}
	return fetchResult{
		state: sourceState{
			lastModified: resp.LastModified,
			db:           db,
			fetchedAt:    r.now(),
		},
		changed: true,
	}
}

// persist writes the snapshot file and archives the database.
func (r *Resolver) persist(ctx context.Context, db *country.Database) error {
	var errs []error

	if r.store != nil {
		if err := r.store.Save(db); err != nil {
			errs = append(errs, err)
		}
	}

	if r.archive != nil {
		if _, err := r.archive.Save(ctx, SourceMerged, db); err != nil {
			errs = append(errs, err)
		} else if pruned, err := r.archive.Prune(ctx, r.config.Retain); err != nil {
			errs = append(errs, err)
		} else if pruned > 0 {
			r.log.Debug("pruned archived snapshots", logger.Int64("count", pruned))
		}
	}

	return errors.Join(errs...)
}
