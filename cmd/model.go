package cmd

import (
	"context"
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/dataset"
	"github.com/trknhr/tonality/internal/logger"
	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/model/freq"
	"github.com/trknhr/tonality/internal/store"
	"github.com/trknhr/tonality/internal/worker"
)

const journalAnnotation = "journal"

// journaled marks commands that record their predictions.
var journaled = map[string]string{journalAnnotation: "true"}

func usesJournal(cmd *cobra.Command) bool {
	return cmd.Annotations[journalAnnotation] == "true"
}

func newTrainedModel() *freq.FreqModel {
	logger.Info("training model...")
	m := freq.NewModel()
	m.Train(dataset.SampleReviews())
	return m
}

// startJournal returns a recorder for predictions and a func that flushes
// it. Without a database both are no-ops.
func startJournal(ctx context.Context, db *sql.DB) (record func(entity.Prediction), stop func()) {
	if db == nil {
		return func(entity.Prediction) {}, func() {}
	}

	w := worker.NewJournalWorker(store.NewSQLPredictionStore(db), worker.DefaultQueueSize)
	w.Start(ctx)
	return func(p entity.Prediction) { w.Record(p) }, w.Close
}
