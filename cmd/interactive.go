package cmd

import (
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/tui"
)

func NewInteractiveCmd(db *sql.DB) *cobra.Command {
	var (
		plain    bool
		stopWord string
	)

	cmd := &cobra.Command{
		Use:         "interactive",
		Aliases:     []string{"i"},
		Short:       "Classify reviews as you type them",
		Args:        cobra.NoArgs,
		Annotations: journaled,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, db, newTrainedModel(), plain, stopWord)
		},
	}
	addInteractiveFlags(cmd, &plain, &stopWord)
	return cmd
}

func addInteractiveFlags(cmd *cobra.Command, plain *bool, stopWord *string) {
	cmd.Flags().BoolVar(plain, "plain", false, "read lines from stdin instead of starting the TUI")
	cmd.Flags().StringVar(stopWord, "stop", tui.DefaultStopWord, "word that ends the session (case-insensitive)")
}

func runInteractive(cmd *cobra.Command, db *sql.DB, clf entity.Scorer, plain bool, stopWord string) error {
	record, stop := startJournal(cmd.Context(), db)
	defer stop()

	opts := tui.Options{StopWord: stopWord, OnPredict: record}

	if plain || !isTerminal(cmd) {
		return tui.RunPlain(cmd.InOrStdin(), cmd.OutOrStdout(), clf, opts)
	}

	p := tea.NewProgram(tui.NewSession(clf, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func isTerminal(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd())
}
