package eval

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/tonality/internal/dataset"
)

func TestPrintSamples(t *testing.T) {
	var buf bytes.Buffer
	PrintSamples(&buf, trainedModel(), dataset.SampleTexts())

	out := buf.String()
	assert.Contains(t, out, "Review: Отличный товар! Очень рад что купил\nSentiment: positive")
	assert.Contains(t, out, "Review: Ужасное качество, никогда больше\nSentiment: neutral")
	assert.Contains(t, out, "Review: Плохая работа, не доволен\nSentiment: negative")
	assert.Equal(t, 5, strings.Count(out, "Review: "))
}

func TestPrintReport(t *testing.T) {
	res, err := Run(context.Background(), trainedModel(), CasesFromExamples(dataset.SampleReviews()), DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintReport(&buf, res)

	out := buf.String()
	assert.Contains(t, out, "Total Cases: 14")
	assert.Contains(t, out, "Accuracy: 92.86% (13/14)")
	assert.Contains(t, out, "Обычный продукт за обычные деньги")
}
