package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLabel is returned when a sentiment name is not one of the three labels.
var ErrUnknownLabel = errors.New("unknown sentiment label")

// Label is a sentiment class. The string values match the labels used in
// datasets and evaluation files.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Labels lists every label in report order.
var Labels = []Label{Positive, Negative, Neutral}

func (l Label) String() string { return string(l) }

// Valid reports whether l is one of the three known labels.
func (l Label) Valid() bool {
	switch l {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// ParseLabel accepts a label name in any case, ignoring surrounding spaces.
func ParseLabel(s string) (Label, error) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}
	return l, nil
}
