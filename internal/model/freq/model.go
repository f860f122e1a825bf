// Package freq implements the bag-of-words frequency classifier: per-class
// word counts summed over the input and compared.
package freq

import (
	"sync"

	"github.com/trknhr/tonality/internal/logger"
	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/textnorm"
)

type FreqModel struct {
	mu       sync.RWMutex
	positive *Table
	negative *Table
}

// NewModel returns an untrained model. Every prediction is neutral until
// Train is called.
func NewModel() *FreqModel {
	return &FreqModel{
		positive: NewTable(),
		negative: NewTable(),
	}
}

// Train adds the tokens of every positive and negative example to the
// matching table. Neutral examples are skipped. Calls accumulate.
func (m *FreqModel) Train(examples []entity.Example) {
	logger.Debug("training on %d examples", len(examples))

	m.mu.Lock()
	for _, ex := range examples {
		var table *Table
		switch ex.Sentiment {
		case entity.Positive:
			table = m.positive
		case entity.Negative:
			table = m.negative
		default:
			continue
		}
		for _, token := range textnorm.Tokenize(ex.Text) {
			table.Increment(token)
		}
	}
	pos, neg := m.positive.Len(), m.negative.Len()
	m.mu.Unlock()

	logger.Info("positive words: %d, negative words: %d", pos, neg)
}

// Score sums the counts of every token of text in both tables.
func (m *FreqModel) Score(text string) entity.Score {
	tokens := textnorm.Tokenize(text)

	m.mu.RLock()
	defer m.mu.RUnlock()

	score := entity.Score{Tokens: tokens}
	for _, token := range tokens {
		score.Positive += m.positive.Get(token, 0)
		score.Negative += m.negative.Get(token, 0)
	}
	return score
}

func (m *FreqModel) Predict(text string) entity.Label {
	return m.Score(text).Label()
}

// Vocabulary returns the number of distinct words in each table.
func (m *FreqModel) Vocabulary() (positive, negative int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.positive.Len(), m.negative.Len()
}

// Positive returns a copy of the positive counts.
func (m *FreqModel) Positive() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.positive.Snapshot()
}

// Negative returns a copy of the negative counts.
func (m *FreqModel) Negative() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.negative.Snapshot()
}

// TopWords returns the n most frequent words of the class. Only positive
// and negative have tables; neutral returns nil.
func (m *FreqModel) TopWords(label entity.Label, n int) []WordCount {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch label {
	case entity.Positive:
		return m.positive.Top(n)
	case entity.Negative:
		return m.negative.Top(n)
	}
	return nil
}
