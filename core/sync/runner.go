package sync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"chain-sync/core/logger"

	"go.uber.org/zap"
)

// ErrMissingUpstreamRoot means the upstream dataset is not on disk at
// all. This is the only fatal condition: there is nothing to merge
// against, so the run aborts instead of skipping.
var ErrMissingUpstreamRoot = errors.New("upstream root not found")

// Runner executes a sync run over a set of registered resources.
type Runner struct {
	rt        *Runtime
	resources []Resource
}

// NewRunner creates a runner over the given resources. Resources are
// processed in registration order; each targets disjoint output paths,
// so no ordering guarantee exists between them.
func NewRunner(rt *Runtime, resources ...Resource) *Runner {
	return &Runner{rt: rt, resources: resources}
}

// Run merges every registered resource and returns the run summary.
// A failure on one resource never aborts the others; only a missing
// upstream root is fatal.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if _, err := os.Stat(r.rt.Base); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingUpstreamRoot, r.rt.Base)
		}
		return nil, fmt.Errorf("stat upstream root %s: %w", r.rt.Base, err)
	}

	log, runID := logger.WithRunID(r.rt.Log)
	rt := *r.rt
	rt.Log = log

	summary := &Summary{RunID: runID}

	for _, res := range r.resources {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		log.Info("syncing resource family", zap.String("family", res.Name()))
		outcomes := res.Sync(ctx, &rt)
		summary.Add(outcomes...)

		for _, o := range outcomes {
			switch o.Status {
			case StatusSkipped:
				log.Warn("resource skipped", zap.String("resource", o.Resource), zap.String("reason", o.Reason))
			case StatusFailed:
				log.Error("resource failed", zap.String("resource", o.Resource), zap.String("reason", o.Reason))
			}
		}
	}

	log.Info("sync complete",
		zap.Int("merged", summary.Merged()),
		zap.Int("skipped", summary.Skipped()),
		zap.Int("failed", summary.Failed()),
	)

	return summary, nil
}
