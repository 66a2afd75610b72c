package automatic

// Batches of computer-played games, for measuring score distributions.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/yahtzee/game"
	"github.com/domino14/yahtzee/stats"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("autoplayGames")
	IsPlaying = expvar.NewInt("autoplayIsPlaying")
}

// playing admits one batch at a time; IsPlaying only publishes it.
var playing atomic.Bool

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

var csvHeader = []string{"gameID", "total", "upper", "lower", "bonus", "yahtzees"}

// Options control a batch of automatic games.
type Options struct {
	NumGames   int
	Threads    int
	SeedPhrase string
	Policy     string
	// LogFile, if set, gets one CSV line per finished game.
	LogFile string
}

// Report summarises a batch.
type Report struct {
	Scores   stats.Statistic
	Totals   []float64
	Bonuses  int
	Yahtzees int
}

func (r *Report) add(res GameResult) {
	r.Scores.Push(float64(res.Total))
	r.Totals = append(r.Totals, float64(res.Total))
	if res.Bonus {
		r.Bonuses++
	}
	r.Yahtzees += res.Yahtzees
}

func (r *Report) String() string {
	var sb strings.Builder
	n := r.Scores.Iterations()
	fmt.Fprintf(&sb, "Games played: %d\n", n)
	if n == 0 {
		return sb.String()
	}
	fmt.Fprintf(&sb, "Scores: %s\n", r.Scores.String())
	fmt.Fprintf(&sb, "Mean score: %.2f ± %.2f (95%%)\n", r.Scores.Mean(), stats.MarginOfError(&r.Scores, 95))
	fmt.Fprintf(&sb, "Upper bonus earned: %d (%.1f%%)\n", r.Bonuses, 100*float64(r.Bonuses)/float64(n))
	fmt.Fprintf(&sb, "Yahtzees scored: %d\n", r.Yahtzees)
	if r.Scores.Max() == r.Scores.Min() {
		return sb.String()
	}
	h := histogram.Hist(10, r.Totals)
	if err := histogram.Fprint(&sb, h, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("printing-histogram")
	}
	return sb.String()
}

// PlayGames plays opts.NumGames games on up to opts.Threads goroutines and
// returns the summary. Results are reported in game order regardless of
// which goroutine finished first.
func PlayGames(ctx context.Context, rules game.Rules, opts Options) (*Report, error) {
	if opts.NumGames < 0 {
		return nil, fmt.Errorf("number of games must not be negative, got %d", opts.NumGames)
	}
	if !playing.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer playing.Store(false)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	if opts.Policy == "" {
		opts.Policy = OneRollPolicy
	}
	if opts.Threads < 1 {
		opts.Threads = 1
	}
	if !ValidPolicy(opts.Policy) {
		return nil, fmt.Errorf("unknown policy %q", opts.Policy)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	log.Debug().Int("games", opts.NumGames).Int("threads", opts.Threads).
		Str("policy", opts.Policy).Msg("autoplay-starting")

	results := make([]GameResult, opts.NumGames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Threads)
	for i := range opts.NumGames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := NewGameRunner(rules, GameSource(opts.SeedPhrase, i), opts.Policy)
			if err != nil {
				return err
			}
			res, err := r.PlayGame(i + 1)
			if err != nil {
				return err
			}
			results[i] = res
			GamesCounter.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, res := range results {
		report.add(res)
	}
	if opts.LogFile != "" {
		if err := writeLog(opts.LogFile, results); err != nil {
			return report, err
		}
	}
	log.Info().Int("games", len(results)).Float64("mean", report.Scores.Mean()).Msg("autoplay-done")
	return report, nil
}

func writeLog(path string, results []GameResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, res := range results {
		if err := w.Write(res.csvRecord()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
