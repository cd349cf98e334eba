package simulation

import (
	"fmt"
	"io"
	"math"
)

// runningStat is a streaming mean/min/max accumulator. Merging two stats
// is commutative and associative, so partial aggregates from parallel
// workers combine in any order.
type runningStat struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

func (r *runningStat) observe(v float64) {
	if r.Count == 0 || v < r.Min {
		r.Min = v
	}
	if r.Count == 0 || v > r.Max {
		r.Max = v
	}
	r.Count++
	r.Sum += v
}

func (r *runningStat) merge(o runningStat) {
	if o.Count == 0 {
		return
	}
	if r.Count == 0 {
		*r = o
		return
	}
	r.Min = math.Min(r.Min, o.Min)
	r.Max = math.Max(r.Max, o.Max)
	r.Count += o.Count
	r.Sum += o.Sum
}

func (r *runningStat) mean() (float64, bool) {
	if r.Count == 0 {
		return 0, false
	}
	return r.Sum / float64(r.Count), true
}

// SideStats aggregates one player's side of the batch.
type SideStats struct {
	Wins             int64
	Score            runningStat
	MaxLength        runningStat
	PointsPerCapture runningStat
}

func (s *SideStats) merge(o SideStats) {
	s.Wins += o.Wins
	s.Score.merge(o.Score)
	s.MaxLength.merge(o.MaxLength)
	s.PointsPerCapture.merge(o.PointsPerCapture)
}

// Aggregate is the batch-level statistic. It never retains individual
// episodes, so arbitrarily large batches run in constant memory.
type Aggregate struct {
	Episodes int64
	Draws    int64
	Timeouts int64
	Aborted  int64
	Steps    runningStat
	Side1    SideStats
	Side2    SideStats
}

// Observe folds one finished episode into the aggregate.
func (a *Aggregate) Observe(rec EpisodeRecord) {
	a.Episodes++

	switch rec.Outcome {
	case OutcomeAborted:
		a.Aborted++
		return
	case OutcomeDraw:
		a.Draws++
	case OutcomeTimeout:
		a.Timeouts++
	}
	switch rec.Winner {
	case 1:
		a.Side1.Wins++
	case 2:
		a.Side2.Wins++
	}

	a.Steps.observe(float64(rec.Steps))
	a.Side1.Score.observe(float64(rec.Score1))
	a.Side2.Score.observe(float64(rec.Score2))
	a.Side1.MaxLength.observe(float64(rec.MaxLen1))
	a.Side2.MaxLength.observe(float64(rec.MaxLen2))
	if rec.Caps1 > 0 {
		a.Side1.PointsPerCapture.observe(float64(rec.Points1) / float64(rec.Caps1))
	}
	if rec.Caps2 > 0 {
		a.Side2.PointsPerCapture.observe(float64(rec.Points2) / float64(rec.Caps2))
	}
}

// Merge folds a partial aggregate from another worker into this one.
// Merge order does not affect the result.
func (a *Aggregate) Merge(o *Aggregate) {
	a.Episodes += o.Episodes
	a.Draws += o.Draws
	a.Timeouts += o.Timeouts
	a.Aborted += o.Aborted
	a.Steps.merge(o.Steps)
	a.Side1.merge(o.Side1)
	a.Side2.merge(o.Side2)
}

// WriteReport renders the aggregate as the human-readable batch report.
// Empty statistics print as n/a rather than dividing by zero.
func (a *Aggregate) WriteReport(w io.Writer, name1, name2 string) error {
	pct := func(n int64) string {
		if a.Episodes == 0 {
			return "n/a"
		}
		return fmt.Sprintf("%.1f%%", float64(n)/float64(a.Episodes)*100)
	}
	meanStr := func(r runningStat) string {
		if m, ok := r.mean(); ok {
			return fmt.Sprintf("%.1f", m)
		}
		return "n/a"
	}

	_, err := fmt.Fprintf(w, `=== Simulation Report ===
Strategies: %s vs %s
Total Games: %d

Wins:
Player 1: %d (%s)
Player 2: %d (%s)
Draws: %d  Timeouts: %d  Aborted: %d

Final Scores:
Player 1 - Avg: %s, Min: %.0f, Max: %.0f
Player 2 - Avg: %s, Min: %.0f, Max: %.0f

Points per Food:
Player 1 - Avg: %s
Player 2 - Avg: %s

Snake Lengths:
Player 1 - Avg Max: %s
Player 2 - Avg Max: %s

Game Length:
Average Steps: %s
Min/Max Steps: %.0f/%.0f
`,
		name1, name2, a.Episodes,
		a.Side1.Wins, pct(a.Side1.Wins),
		a.Side2.Wins, pct(a.Side2.Wins),
		a.Draws, a.Timeouts, a.Aborted,
		meanStr(a.Side1.Score), a.Side1.Score.Min, a.Side1.Score.Max,
		meanStr(a.Side2.Score), a.Side2.Score.Min, a.Side2.Score.Max,
		meanStr(a.Side1.PointsPerCapture),
		meanStr(a.Side2.PointsPerCapture),
		meanStr(a.Side1.MaxLength),
		meanStr(a.Side2.MaxLength),
		meanStr(a.Steps), a.Steps.Min, a.Steps.Max,
	)
	return err
}
