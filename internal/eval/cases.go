// Package eval runs a classifier over labeled cases and reports how well it did.
package eval

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trknhr/tonality/internal/logger"
	"github.com/trknhr/tonality/internal/model/entity"
)

var (
	// ErrUnsupportedFormat is returned for case files that are neither .csv nor .jsonl.
	ErrUnsupportedFormat = errors.New("unsupported case file format")

	// ErrNoCases is returned when there is nothing to evaluate.
	ErrNoCases = errors.New("no evaluation cases")
)

// Case is a text with the label it should receive.
type Case struct {
	Text     string       `json:"text"`
	Expected entity.Label `json:"expected"`
	Category string       `json:"category,omitempty"`
}

// CasesFromExamples turns labeled examples into cases, e.g. to check a
// model against its own training data.
func CasesFromExamples(examples []entity.Example) []Case {
	cases := make([]Case, 0, len(examples))
	for _, ex := range examples {
		cases = append(cases, Case{Text: ex.Text, Expected: ex.Sentiment, Category: "sample"})
	}
	return cases
}

// LoadCases reads cases from a .csv or .jsonl file.
func LoadCases(filePath string) ([]Case, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".csv":
		return loadFromCSV(filePath)
	case ".jsonl":
		return loadFromJSONL(filePath)
	default:
		return nil, fmt.Errorf("%w: %q (supported: .csv, .jsonl)", ErrUnsupportedFormat, ext)
	}
}

func loadFromCSV(filePath string) ([]Case, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty CSV file", ErrNoCases)
	}

	header := records[0]
	textIdx, expectedIdx, categoryIdx := -1, -1, -1

	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "text", "input":
			textIdx = i
		case "expected", "sentiment", "label":
			expectedIdx = i
		case "category":
			categoryIdx = i
		}
	}

	if textIdx == -1 || expectedIdx == -1 {
		return nil, fmt.Errorf("CSV must contain 'text' and 'expected' columns")
	}

	var cases []Case
	for i, record := range records[1:] {
		row := i + 2
		if len(record) <= textIdx || len(record) <= expectedIdx {
			logger.Warn("skipping malformed row %d", row)
			continue
		}

		text := strings.TrimSpace(record[textIdx])
		if text == "" {
			continue
		}
		expected, err := entity.ParseLabel(record[expectedIdx])
		if err != nil {
			logger.Warn("skipping row %d: %v", row, err)
			continue
		}

		category := "unknown"
		if categoryIdx != -1 && len(record) > categoryIdx {
			if cat := strings.TrimSpace(record[categoryIdx]); cat != "" {
				category = cat
			}
		}

		cases = append(cases, Case{
			Text:     text,
			Expected: expected,
			Category: category,
		})
	}

	return cases, nil
}

// maxJSONLLine bounds a single JSONL record.
const maxJSONLLine = 16 * 1024 * 1024

func loadFromJSONL(filePath string) ([]Case, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cases []Case
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLLine)
	line := 0

	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var c Case
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			logger.Warn("line %d: JSON decode error: %v", line, err)
			continue
		}
		expected, err := entity.ParseLabel(string(c.Expected))
		if err != nil {
			logger.Warn("skipping line %d: %v", line, err)
			continue
		}
		c.Expected = expected
		if c.Category == "" {
			c.Category = "unknown"
		}
		cases = append(cases, c)
	}

	return cases, scanner.Err()
}
