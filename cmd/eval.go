package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/dataset"
	"github.com/trknhr/tonality/internal/eval"
)

func NewEvalCmd() *cobra.Command {
	var (
		evalFile string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the classifier on labeled CSV or JSONL cases",
		Long: `Evaluate the classifier on labeled cases. CSV files need 'text' and
'expected' columns (optional 'category'); JSONL lines are objects with the
same keys. Without --file the built-in sample reviews are used.`,
		Example: `
  # Evaluate with CSV file
  tonality eval -f reviews.csv

  # Evaluate with JSONL file using 2 workers
  tonality eval -f reviews.jsonl --workers 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cases []eval.Case
			if evalFile == "" {
				cases = eval.CasesFromExamples(dataset.SampleReviews())
			} else {
				var err error
				cases, err = eval.LoadCases(evalFile)
				if err != nil {
					return fmt.Errorf("failed to load evaluation cases: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📊 Loaded %d evaluation cases\n", len(cases))

			start := time.Now()
			cfg := eval.DefaultConfig()
			if workers > 0 {
				cfg.Workers = workers
			}
			result, err := eval.Run(cmd.Context(), newTrainedModel(), cases, cfg)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			eval.PrintReport(out, result)
			fmt.Fprintf(out, "⏱️  Time: %v\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&evalFile, "file", "f", "", "Path to CSV or JSONL evaluation file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent predictions (0 = number of CPUs)")
	return cmd
}
