package simulation

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryRecorder struct {
	mu   sync.Mutex
	recs []EpisodeRecord
}

func (m *memoryRecorder) Record(rec EpisodeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memoryRecorder) Close() error { return nil }

func TestRunBatchRecordsEveryEpisode(t *testing.T) {
	cfg := testConfig()
	cfg.Episodes = 20
	cfg.Workers = 4

	rec := &memoryRecorder{}
	res, err := RunBatch(context.Background(), cfg, rec)
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)
	require.Equal(t, int64(20), res.Aggregate.Episodes)
	require.Len(t, rec.recs, 20)

	indexes := make([]int, len(rec.recs))
	for i, r := range rec.recs {
		indexes[i] = r.Index
	}
	sort.Ints(indexes)
	for i, idx := range indexes {
		require.Equal(t, i, idx)
	}
}

func TestRunBatchAggregateMatchesSequentialRuns(t *testing.T) {
	cfg := testConfig()
	cfg.Episodes = 30
	cfg.Workers = 4

	res, err := RunBatch(context.Background(), cfg, nil)
	require.NoError(t, err)

	var want Aggregate
	for i := 0; i < cfg.Episodes; i++ {
		want.Observe(RunEpisode(cfg, i))
	}
	require.Equal(t, want, res.Aggregate)
}

func TestRunBatchReproducible(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy1 = "interceptor"
	cfg.Strategy2 = "balanced"
	cfg.Episodes = 100
	cfg.Workers = 8

	first, err := RunBatch(context.Background(), cfg, nil)
	require.NoError(t, err)
	second, err := RunBatch(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Equal(t, first.Aggregate, second.Aggregate)
}

func TestRunBatchWorkerCountDoesNotAffectResults(t *testing.T) {
	serial := testConfig()
	serial.Episodes = 40
	serial.Workers = 1

	parallel := serial
	parallel.Workers = 6

	a, err := RunBatch(context.Background(), serial, nil)
	require.NoError(t, err)
	b, err := RunBatch(context.Background(), parallel, nil)
	require.NoError(t, err)
	require.Equal(t, a.Aggregate, b.Aggregate)
}

func TestRunBatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig()
	cfg.Episodes = 1000
	cfg.Workers = 2

	res, err := RunBatch(ctx, cfg, nil)
	require.NoError(t, err)
	require.True(t, res.Aggregate.Episodes < 1000)
}

func TestRunBatchRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy1 = "deep-rl"
	_, err := RunBatch(context.Background(), cfg, nil)
	require.Error(t, err)
}
