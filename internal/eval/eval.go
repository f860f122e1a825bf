package eval

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/trknhr/tonality/internal/logger"
	"github.com/trknhr/tonality/internal/model/entity"
)

// Config holds evaluation parameters.
type Config struct {
	Workers int // concurrent predictions, <= 0 means runtime.NumCPU()
}

func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// Miss is a case the classifier got wrong.
type Miss struct {
	Case
	Predicted entity.Label
}

type CategoryResult struct {
	Total   int
	Correct int
}

type Result struct {
	Total      int
	Correct    int
	Accuracy   float64
	Confusion  Confusion
	PerLabel   map[entity.Label]Metrics
	ByCategory map[string]CategoryResult
	Misses     []Miss
}

// Run predicts every case and aggregates the outcome. Predictions run
// concurrently, so clf must be safe for concurrent Predict calls.
func Run(ctx context.Context, clf entity.Classifier, cases []Case, cfg Config) (Result, error) {
	if len(cases) == 0 {
		return Result{}, ErrNoCases
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	predicted := make([]entity.Label, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cases {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			predicted[i] = clf.Predict(cases[i].Text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{
		Confusion:  make(Confusion),
		PerLabel:   make(map[entity.Label]Metrics),
		ByCategory: make(map[string]CategoryResult),
	}

	for i, c := range cases {
		got := predicted[i]
		res.Total++
		res.Confusion.add(c.Expected, got)

		cat := res.ByCategory[c.Category]
		cat.Total++
		if got == c.Expected {
			res.Correct++
			cat.Correct++
		} else {
			res.Misses = append(res.Misses, Miss{Case: c, Predicted: got})
		}
		res.ByCategory[c.Category] = cat
	}

	res.Accuracy = float64(res.Correct) / float64(res.Total)
	for _, l := range entity.Labels {
		res.PerLabel[l] = res.Confusion.LabelMetrics(l)
	}

	logger.Debug("evaluated %d cases with %d workers, accuracy %.3f", res.Total, workers, res.Accuracy)
	return res, nil
}
