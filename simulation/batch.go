package simulation

import (
	"context"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// BatchResult holds what a batch produced beyond the recorded episodes.
type BatchResult struct {
	ID        string
	Aggregate Aggregate
	Elapsed   time.Duration
}

// RunBatch executes cfg.Episodes episodes across cfg.Workers goroutines.
// Episode indexes are handed out through a channel, each worker folds its
// episodes into a private aggregate and the partials are merged at the
// end, so the final statistics do not depend on scheduling. Records flow
// to the recorder from a single goroutine in completion order.
//
// Cancelling ctx stops the batch after the in-flight episodes finish; the
// aggregate then covers only the episodes that completed.
func RunBatch(ctx context.Context, cfg Config, rec Recorder) (*BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = NopRecorder{}
	}

	res := &BatchResult{ID: uuid.NewV4().String()}
	start := time.Now()
	log.WithFields(log.Fields{
		"batch":     res.ID,
		"episodes":  cfg.Episodes,
		"workers":   cfg.Workers,
		"seed":      cfg.Seed,
		"strategy1": cfg.Strategy1,
		"strategy2": cfg.Strategy2,
	}).Info("starting batch")

	indexes := make(chan int)
	records := make(chan EpisodeRecord, cfg.Workers)
	partials := make(chan *Aggregate, cfg.Workers)

	go func() {
		defer close(indexes)
		for i := 0; i < cfg.Episodes; i++ {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agg := &Aggregate{}
			for i := range indexes {
				r := RunEpisode(cfg, i)
				agg.Observe(r)
				records <- r
			}
			partials <- agg
		}()
	}

	go func() {
		wg.Wait()
		close(records)
		close(partials)
	}()

	// Single consumer: the recorder never sees concurrent writes.
	var recErr error
	for r := range records {
		if err := rec.Record(r); err != nil && recErr == nil {
			recErr = err
			log.WithError(err).WithField("batch", res.ID).Error("recording episode")
		}
	}
	for p := range partials {
		res.Aggregate.Merge(p)
	}

	res.Elapsed = time.Since(start)
	log.WithFields(log.Fields{
		"batch":    res.ID,
		"episodes": res.Aggregate.Episodes,
		"elapsed":  res.Elapsed,
	}).Info("batch finished")
	return res, recErr
}
