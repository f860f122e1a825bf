package cmd

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/store"
)

var errNoJournal = errors.New("prediction journal is not available")

func NewHistoryCmd(db *sql.DB) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:         "history",
		Short:       "Show recently classified reviews",
		Args:        cobra.NoArgs,
		Annotations: journaled,
		RunE: func(cmd *cobra.Command, args []string) error {
			if db == nil {
				return errNoJournal
			}
			s := store.NewSQLPredictionStore(db)

			recent, err := s.Recent(limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			counts, err := s.LabelCounts()
			if err != nil {
				return fmt.Errorf("failed to count labels: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(recent) == 0 {
				fmt.Fprintln(out, "No predictions recorded yet.")
				return nil
			}
			for _, p := range recent {
				fmt.Fprintf(out, "%s  %-8s x%-3d +%d/-%d  %s\n",
					p.UpdatedAt.Format("2006-01-02 15:04"), p.Label, p.Count, p.Score.Positive, p.Score.Negative, p.Text)
			}
			fmt.Fprintf(out, "\nTotals: positive=%d negative=%d neutral=%d\n",
				counts[entity.Positive], counts[entity.Negative], counts[entity.Neutral])
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	return cmd
}
