package cmd

import (
	"database/sql"
	"os"

	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/dataset"
	"github.com/trknhr/tonality/internal/eval"
	"github.com/trknhr/tonality/internal/logger"
)

// NewRootCmd builds the command tree. journalErr is why db is nil, if it
// is; commands that record predictions warn about it once.
func NewRootCmd(db *sql.DB, journalErr error) *cobra.Command {
	var (
		logFile  string
		logLevel string
		plain    bool
		stopWord string
	)

	cmd := &cobra.Command{
		Use:   "tonality",
		Short: "Classify review sentiment with a bag-of-words frequency model",
		Long: `tonality trains a word-frequency classifier on a built-in set of
labeled reviews, prints its verdict on the sample test reviews and then
classifies whatever you type.`,
		SilenceUsage: true,
		Annotations:  journaled,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(logFile, logLevel); err != nil {
				return err
			}
			if journalErr != nil && usesJournal(cmd) {
				logger.WarnOnce(journalErr)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newTrainedModel()
			eval.PrintSamples(cmd.OutOrStdout(), model, dataset.SampleTexts())
			return runInteractive(cmd, db, model, plain, stopWord)
		},
	}

	defaultLevel := os.Getenv("TONALITY_LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also append logs to this file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "log level (debug, info, warn, error, none)")
	addInteractiveFlags(cmd, &plain, &stopWord)

	cmd.AddCommand(
		NewPredictCmd(db),
		NewTestCmd(),
		NewEvalCmd(),
		NewInteractiveCmd(db),
		NewHistoryCmd(db),
		NewVocabCmd(),
	)

	return cmd
}

func Execute(db *sql.DB, journalErr error) error {
	cmd := NewRootCmd(db, journalErr)
	return cmd.Execute()
}
