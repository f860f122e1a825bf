package entity

import "time"

// Example is one labeled review used for training.
type Example struct {
	Text      string `json:"text"`
	Sentiment Label  `json:"sentiment"`
}

// Score holds the per-class sums behind a prediction.
type Score struct {
	Positive int
	Negative int
	Tokens   []string
}

// Label applies the strict comparison to the two sums.
func (s Score) Label() Label {
	return Decide(s.Positive, s.Negative)
}

// Decide returns the label of the larger sum. Equal sums (including 0 and 0)
// are neutral.
func Decide(positive, negative int) Label {
	switch {
	case positive > negative:
		return Positive
	case negative > positive:
		return Negative
	default:
		return Neutral
	}
}

// Prediction is a classified input as recorded in the journal.
type Prediction struct {
	Text       string
	Normalized string
	Label      Label
	Score      Score
	Count      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Classifier interface {
	Train(examples []Example)
	Predict(text string) Label
}

// Scorer is implemented by classifiers that can explain a prediction.
type Scorer interface {
	Classifier
	Score(text string) Score
}
