package pipeline

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/registry-enrich/internal/model"
)

// CheckpointFunc persists the records produced so far. Called with a
// snapshot of the append-only collection; implementations own durability.
type CheckpointFunc func(records []model.CanonicalRecord) error

// BatchOptions configures the batch loop.
type BatchOptions struct {
	// Concurrency is the number of companies processed in parallel.
	// The fetch engine's global host-class limiters preserve aggregate
	// inter-request spacing regardless of this value. Default 1.
	Concurrency int

	// CheckpointEvery is the checkpoint cadence in companies. Default 10.
	CheckpointEvery int
}

func (o BatchOptions) withDefaults() BatchOptions {
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.CheckpointEvery <= 0 {
		o.CheckpointEvery = 10
	}
	return o
}

// RunBatch enriches every name in order, checkpointing partial output at
// the configured cadence and once more at completion. Blank names are
// skipped with a warning. A cancelled context stops the batch between
// companies; records already produced are still checkpointed and returned.
func (p *Pipeline) RunBatch(ctx context.Context, names []string, opts BatchOptions, checkpoint CheckpointFunc) ([]model.CanonicalRecord, error) {
	opts = opts.withDefaults()

	var (
		mu      sync.Mutex
		records []model.CanonicalRecord
	)
	var processed, skipped atomic.Int64

	zap.L().Info("batch: starting",
		zap.Int("companies", len(names)),
		zap.Int("concurrency", opts.Concurrency),
	)

	collect := func(record model.CanonicalRecord) {
		mu.Lock()
		records = append(records, record)
		snapshot := make([]model.CanonicalRecord, len(records))
		copy(snapshot, records)
		count := len(records)
		mu.Unlock()

		if checkpoint != nil && count%opts.CheckpointEvery == 0 {
			if err := checkpoint(snapshot); err != nil {
				zap.L().Error("batch: checkpoint failed", zap.Error(err))
			} else {
				zap.L().Info("batch: progress checkpointed", zap.Int("records", count))
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	total := len(names)
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			skipped.Add(1)
			zap.L().Warn("batch: skipping blank company name", zap.Int("row", i+1))
			continue
		}

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			zap.L().Info("batch: progress",
				zap.Int("index", i+1),
				zap.Int("total", total),
			)
			collect(p.Run(gctx, name))
			processed.Add(1)
			return nil
		})
	}

	err := g.Wait()

	mu.Lock()
	final := make([]model.CanonicalRecord, len(records))
	copy(final, records)
	mu.Unlock()

	if checkpoint != nil && len(final) > 0 {
		if cpErr := checkpoint(final); cpErr != nil {
			zap.L().Error("batch: final checkpoint failed", zap.Error(cpErr))
		}
	}

	zap.L().Info("batch: complete",
		zap.Int64("processed", processed.Load()),
		zap.Int64("skipped", skipped.Load()),
	)
	return final, err
}
