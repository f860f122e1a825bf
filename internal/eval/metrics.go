package eval

import "github.com/trknhr/tonality/internal/model/entity"

// Metrics are one-vs-rest counts and scores for a single label.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
}

// Confusion counts predictions per expected label: Confusion[expected][predicted].
type Confusion map[entity.Label]map[entity.Label]int

func (c Confusion) add(expected, predicted entity.Label) {
	row, ok := c[expected]
	if !ok {
		row = make(map[entity.Label]int)
		c[expected] = row
	}
	row[predicted]++
}

// LabelMetrics derives precision, recall and F1 for label from the matrix.
func (c Confusion) LabelMetrics(label entity.Label) Metrics {
	var m Metrics
	for expected, row := range c {
		for predicted, n := range row {
			switch {
			case expected == label && predicted == label:
				m.TruePositives += n
			case predicted == label:
				m.FalsePositives += n
			case expected == label:
				m.FalseNegatives += n
			}
		}
	}

	tp, fp, fn := m.TruePositives, m.FalsePositives, m.FalseNegatives
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
