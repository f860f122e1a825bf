package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/tui"
)

func NewPredictCmd(db *sql.DB) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "predict TEXT...",
		Short: "Classify each argument as positive, negative or neutral",
		Example: `
  tonality predict "Отличный товар! Очень рад что купил"
  tonality predict --explain "Ужасное качество" "Хороший продукт"`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: journaled,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newTrainedModel()
			record, stop := startJournal(cmd.Context(), db)
			defer stop()

			out := cmd.OutOrStdout()
			posCounts, negCounts := model.Positive(), model.Negative()
			for _, text := range args {
				p := tui.Classify(model, text)
				fmt.Fprintf(out, "%s\t+%d/-%d\t%s\n", p.Label, p.Score.Positive, p.Score.Negative, text)
				if explain {
					for _, token := range p.Score.Tokens {
						fmt.Fprintf(out, "  %-20s +%d/-%d\n", token, posCounts[token], negCounts[token])
					}
				}
				record(p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "x", false, "show per-word counts")
	return cmd
}
