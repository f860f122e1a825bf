package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/trknhr/tonality/internal/logger"
	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/utils"
)

//go:generate mockgen -source=prediction.go -destination=mock_prediction_store.go -package=store

type PredictionStore interface {
	SavePredictions(predictions []entity.Prediction) error
	Recent(limit int) ([]entity.Prediction, error)
	LabelCounts() (map[entity.Label]int, error)
}

type SQLPredictionStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLPredictionStore(db *sql.DB) PredictionStore {
	return &SQLPredictionStore{db: db, now: time.Now}
}

// SavePredictions records each prediction. A repeated normalized text bumps
// the row's count and refreshes its label and scores.
func (s *SQLPredictionStore) SavePredictions(predictions []entity.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
        INSERT INTO predictions(text, normalized, hash, label, positive_score, negative_score, count, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
        ON CONFLICT(hash) DO UPDATE SET
            count = count + 1,
            text = excluded.text,
            label = excluded.label,
            positive_score = excluded.positive_score,
            negative_score = excluded.negative_score,
            updated_at = excluded.updated_at
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range predictions {
		ts := s.now().UnixMilli()
		hash := utils.Hash(p.Normalized)
		if _, err := stmt.Exec(p.Text, p.Normalized, hash, string(p.Label), p.Score.Positive, p.Score.Negative, ts, ts); err != nil {
			logger.Error("failed to save prediction: %q, %v", p.Text, err)
		}
	}
	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit predictions tx: %v", err)
		return err
	}
	return nil
}

// Recent returns up to limit predictions, most recently seen first.
func (s *SQLPredictionStore) Recent(limit int) ([]entity.Prediction, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT text, normalized, label, positive_score, negative_score, count, created_at, updated_at
		FROM predictions
		ORDER BY updated_at DESC, id DESC
		LIMIT ?;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []entity.Prediction
	for rows.Next() {
		var (
			p                entity.Prediction
			label            string
			created, updated int64
		)
		if err := rows.Scan(&p.Text, &p.Normalized, &label, &p.Score.Positive, &p.Score.Negative, &p.Count, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		p.Label = entity.Label(label)
		p.CreatedAt = time.UnixMilli(created)
		p.UpdatedAt = time.UnixMilli(updated)
		results = append(results, p)
	}
	return results, rows.Err()
}

// LabelCounts sums the hit counts per label.
func (s *SQLPredictionStore) LabelCounts() (map[entity.Label]int, error) {
	rows, err := s.db.Query(`SELECT label, SUM(count) FROM predictions GROUP BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[entity.Label]int)
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("scan label count: %w", err)
		}
		counts[entity.Label(label)] = n
	}
	return counts, rows.Err()
}
