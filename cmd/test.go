package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/dataset"
	"github.com/trknhr/tonality/internal/eval"
)

func NewTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Classify the built-in sample test reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eval.PrintSamples(cmd.OutOrStdout(), newTrainedModel(), dataset.SampleTexts())
			return nil
		},
	}
}
