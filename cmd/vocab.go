package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/model/entity"
)

func NewVocabCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the most frequent words of each class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newTrainedModel()
			out := cmd.OutOrStdout()

			pos, neg := model.Vocabulary()
			fmt.Fprintf(out, "Positive words: %d\n", pos)
			fmt.Fprintf(out, "Negative words: %d\n", neg)

			for _, label := range []entity.Label{entity.Positive, entity.Negative} {
				fmt.Fprintf(out, "\n%s:\n", label)
				for _, wc := range model.TopWords(label, top) {
					fmt.Fprintf(out, "  %-20s %d\n", wc.Word, wc.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "words per class (0 = all)")
	return cmd
}
