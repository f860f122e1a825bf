// Package tui runs the interactive review prompt, either as a bubbletea
// session or as a plain line loop for pipes and dumb terminals.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/textnorm"
)

const DefaultStopWord = "выход"

type Options struct {
	// StopWord ends the session, compared case-insensitively.
	StopWord string
	// OnPredict, if set, sees every prediction (the CLI journals them).
	OnPredict func(entity.Prediction)
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.StopWord) == "" {
		o.StopWord = DefaultStopWord
	}
	return o
}

func IsStopWord(input, stop string) bool {
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(stop))
}

func IsBlank(input string) bool {
	return strings.TrimSpace(input) == ""
}

// Classify predicts text and packages the result for display and journaling.
func Classify(clf entity.Scorer, text string) entity.Prediction {
	score := clf.Score(text)
	return entity.Prediction{
		Text:       text,
		Normalized: textnorm.Normalize(text),
		Label:      score.Label(),
		Score:      score,
	}
}

// RunPlain reads reviews line by line from r until EOF or the stop word and
// writes each label to w. Blank lines are skipped.
func RunPlain(r io.Reader, w io.Writer, clf entity.Scorer, opts Options) error {
	opts = opts.withDefaults()

	fmt.Fprintln(w, "=== INTERACTIVE MODE ===")
	fmt.Fprintf(w, "Enter review text (or '%s' to quit):\n", opts.StopWord)

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line == "" && err == io.EOF {
			fmt.Fprintln(w)
			return nil
		}

		input := strings.TrimRight(line, "\r\n")
		if IsStopWord(input, opts.StopWord) {
			return nil
		}
		if IsBlank(input) {
			continue
		}

		p := Classify(clf, input)
		fmt.Fprintf(w, "Result: %s\n", p.Label)
		if opts.OnPredict != nil {
			opts.OnPredict(p)
		}
	}
}
