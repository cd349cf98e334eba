package simulation

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Recorder receives finished episodes in completion order.
type Recorder interface {
	Record(rec EpisodeRecord) error
	Close() error
}

// NopRecorder discards every episode.
type NopRecorder struct{}

func (NopRecorder) Record(EpisodeRecord) error { return nil }
func (NopRecorder) Close() error               { return nil }

// winnerLabel renders the winner column as 1, 2 or none; a finished
// episode without a winner is "none", never a third player id.
func winnerLabel(winner int) string {
	if winner == 0 {
		return "none"
	}
	return strconv.Itoa(winner)
}

var csvHeader = []string{
	"episode", "winner", "outcome", "steps",
	"score1", "score2", "max_length1", "max_length2",
	"captures1", "captures2", "points1", "points2",
}

// CSVRecorder streams episode records to a CSV file. Each record is
// flushed as it arrives so a cancelled batch still leaves a readable
// file behind.
type CSVRecorder struct {
	w *csv.Writer
	c io.Closer
}

// NewCSVRecorder writes the header row and returns a recorder ready for
// records. If out is also an io.Closer, Close closes it.
func NewCSVRecorder(out io.Writer) (*CSVRecorder, error) {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "writing csv header")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flushing csv header")
	}
	c, _ := out.(io.Closer)
	return &CSVRecorder{w: w, c: c}, nil
}

func (r *CSVRecorder) Record(rec EpisodeRecord) error {
	row := []string{
		strconv.Itoa(rec.Index),
		winnerLabel(rec.Winner),
		string(rec.Outcome),
		strconv.FormatInt(rec.Steps, 10),
		strconv.FormatInt(rec.Score1, 10),
		strconv.FormatInt(rec.Score2, 10),
		strconv.Itoa(rec.MaxLen1),
		strconv.Itoa(rec.MaxLen2),
		strconv.FormatInt(rec.Caps1, 10),
		strconv.FormatInt(rec.Caps2, 10),
		strconv.FormatInt(rec.Points1, 10),
		strconv.FormatInt(rec.Points2, 10),
	}
	if err := r.w.Write(row); err != nil {
		return errors.Wrapf(err, "writing episode %d", rec.Index)
	}
	r.w.Flush()
	return errors.Wrapf(r.w.Error(), "flushing episode %d", rec.Index)
}

func (r *CSVRecorder) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return errors.Wrap(err, "flushing csv")
	}
	if r.c != nil {
		return r.c.Close()
	}
	return nil
}
