package eval

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/trknhr/tonality/internal/model/entity"
)

// PrintSamples classifies each text and prints it with its label.
func PrintSamples(w io.Writer, clf entity.Classifier, texts []string) {
	fmt.Fprintln(w, "=== TEST ===")
	for _, text := range texts {
		fmt.Fprintf(w, "Review: %s\n", text)
		fmt.Fprintf(w, "Sentiment: %s\n\n", clf.Predict(text))
	}
}

func PrintReport(w io.Writer, result Result) {
	fmt.Fprintf(w, "\n🔎 Evaluation Results\n")
	fmt.Fprintf(w, "═══════════════════════════════════════\n")
	fmt.Fprintf(w, "  Total Cases: %d\n", result.Total)
	fmt.Fprintf(w, "  Accuracy: %.2f%% (%d/%d)\n", result.Accuracy*100, result.Correct, result.Total)

	fmt.Fprintf(w, "\nPer Label:\n")
	fmt.Fprintf(w, "  %-10s %-8s %-8s %-8s\n", "Label", "Prec", "Rec", "F1")
	for _, l := range entity.Labels {
		m := result.PerLabel[l]
		fmt.Fprintf(w, "  %-10s %-8.2f %-8.2f %-8.2f\n", l, m.Precision, m.Recall, m.F1)
	}

	fmt.Fprintf(w, "\nConfusion (rows expected, columns predicted):\n")
	fmt.Fprintf(w, "  %-10s", "")
	for _, l := range entity.Labels {
		fmt.Fprintf(w, " %-9s", l)
	}
	fmt.Fprintln(w)
	for _, expected := range entity.Labels {
		fmt.Fprintf(w, "  %-10s", expected)
		for _, predicted := range entity.Labels {
			fmt.Fprintf(w, " %-9d", result.Confusion[expected][predicted])
		}
		fmt.Fprintln(w)
	}

	if len(result.ByCategory) > 1 {
		categories := make([]string, 0, len(result.ByCategory))
		for c := range result.ByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		fmt.Fprintf(w, "\nBy Category:\n")
		for _, c := range categories {
			cr := result.ByCategory[c]
			fmt.Fprintf(w, "  %s: %.2f%% (%d/%d)\n", c, float64(cr.Correct)/float64(cr.Total)*100, cr.Correct, cr.Total)
		}
	}

	if len(result.Misses) > 0 {
		fmt.Fprintf(w, "\nMisses:\n")
		for _, m := range result.Misses {
			fmt.Fprintf(w, "  🔴 %q expected %s, got %s\n", m.Text, m.Expected, m.Predicted)
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", 39))
}
