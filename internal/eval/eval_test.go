package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/tonality/internal/dataset"
	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/model/freq"
)

func trainedModel() *freq.FreqModel {
	m := freq.NewModel()
	m.Train(dataset.SampleReviews())
	return m
}

func TestRun_SampleReviews(t *testing.T) {
	cases := CasesFromExamples(dataset.SampleReviews())

	res, err := Run(context.Background(), trainedModel(), cases, Config{Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, 14, res.Total)
	assert.Equal(t, 13, res.Correct)
	assert.InDelta(t, 13.0/14.0, res.Accuracy, 1e-9)

	// "Обычный продукт за обычные деньги" shares продукт/за/деньги with positive reviews.
	require.Len(t, res.Misses, 1)
	assert.Equal(t, entity.Neutral, res.Misses[0].Expected)
	assert.Equal(t, entity.Positive, res.Misses[0].Predicted)

	assert.Equal(t, 5, res.Confusion[entity.Positive][entity.Positive])
	assert.Equal(t, 5, res.Confusion[entity.Negative][entity.Negative])
	assert.Equal(t, 3, res.Confusion[entity.Neutral][entity.Neutral])
	assert.Equal(t, 1, res.Confusion[entity.Neutral][entity.Positive])

	pos := res.PerLabel[entity.Positive]
	assert.Equal(t, 5, pos.TruePositives)
	assert.Equal(t, 1, pos.FalsePositives)
	assert.InDelta(t, 5.0/6.0, pos.Precision, 1e-9)
	assert.InDelta(t, 1.0, pos.Recall, 1e-9)

	neu := res.PerLabel[entity.Neutral]
	assert.InDelta(t, 1.0, neu.Precision, 1e-9)
	assert.InDelta(t, 0.75, neu.Recall, 1e-9)
}

func TestRun_NoCases(t *testing.T) {
	_, err := Run(context.Background(), trainedModel(), nil, DefaultConfig())
	assert.True(t, errors.Is(err, ErrNoCases))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := CasesFromExamples(dataset.SampleReviews())
	_, err := Run(ctx, trainedModel(), cases, Config{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_UntrainedIsAllNeutral(t *testing.T) {
	cases := CasesFromExamples(dataset.SampleReviews())
	res, err := Run(context.Background(), freq.NewModel(), cases, Config{})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Correct)
	assert.Equal(t, 0.0, res.PerLabel[entity.Positive].Recall)
	assert.Equal(t, 1.0, res.PerLabel[entity.Neutral].Recall)
}

func TestConfusion_LabelMetrics(t *testing.T) {
	c := make(Confusion)
	c.add(entity.Positive, entity.Positive)
	c.add(entity.Positive, entity.Negative)
	c.add(entity.Negative, entity.Negative)
	c.add(entity.Neutral, entity.Negative)

	m := c.LabelMetrics(entity.Negative)
	assert.Equal(t, 1, m.TruePositives)
	assert.Equal(t, 2, m.FalsePositives)
	assert.Equal(t, 0, m.FalseNegatives)
	assert.InDelta(t, 1.0/3.0, m.Precision, 1e-9)
	assert.InDelta(t, 1.0, m.Recall, 1e-9)
	assert.InDelta(t, 0.5, m.F1, 1e-9)

	empty := c.LabelMetrics("missing")
	assert.Equal(t, Metrics{}, empty)
}
