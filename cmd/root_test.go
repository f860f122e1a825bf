package cmd_test

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/tonality/cmd"
	"github.com/trknhr/tonality/internal/store"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func execute(t *testing.T, db *sql.DB, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd(db, nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--log-level", "none"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_RunsDemoInPlainMode(t *testing.T) {
	out, err := execute(t, nil, "Отвратительный сервис\nвыход\n")
	require.NoError(t, err)

	assert.Contains(t, out, "=== TEST ===")
	assert.Contains(t, out, "Review: Хороший продукт, советую\nSentiment: positive")
	assert.Contains(t, out, "=== INTERACTIVE MODE ===")
	assert.Contains(t, out, "Result: negative")
}

func TestPredictCommand(t *testing.T) {
	out, err := execute(t, nil, "", "predict", "Отличный товар! Очень рад что купил", "Ужасное качество, никогда больше")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "positive\t+4/-2\tОтличный товар! Очень рад что купил", lines[0])
	assert.Equal(t, "neutral\t+2/-2\tУжасное качество, никогда больше", lines[1])
}

func TestPredictCommand_Explain(t *testing.T) {
	out, err := execute(t, nil, "", "predict", "--explain", "Плохая работа, не доволен")
	require.NoError(t, err)
	assert.Contains(t, out, "negative\t+1/-2")
	assert.Regexp(t, `не\s+\+0/-2`, out)
	assert.Regexp(t, `доволен\s+\+1/-0`, out)
}

func TestPredictCommand_RequiresText(t *testing.T) {
	_, err := execute(t, nil, "", "predict")
	assert.Error(t, err)
}

func TestTestCommand(t *testing.T) {
	out, err := execute(t, nil, "", "test")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "Review: "))
	assert.Contains(t, out, "Review: Нормальный товар за свои деньги\nSentiment: positive")
}

func TestEvalCommand_BuiltinSamples(t *testing.T) {
	out, err := execute(t, nil, "", "eval", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 14 evaluation cases")
	assert.Contains(t, out, "Accuracy: 92.86% (13/14)")
}

func TestEvalCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.csv")
	require.NoError(t, os.WriteFile(path, []byte("text,expected\nОтличный товар,positive\nПлохой сервис,negative\n"), 0644))

	out, err := execute(t, nil, "", "eval", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 2 evaluation cases")
	assert.Contains(t, out, "Accuracy: 100.00% (2/2)")
}

func TestEvalCommand_BadFile(t *testing.T) {
	_, err := execute(t, nil, "", "eval", "-f", "cases.xml")
	assert.Error(t, err)
}

func TestVocabCommand(t *testing.T) {
	out, err := execute(t, nil, "", "vocab", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Positive words: 19")
	assert.Contains(t, out, "Negative words: 20")
	assert.Regexp(t, `качество\s+2`, out)
}

func TestHistoryCommand_WithoutJournal(t *testing.T) {
	_, err := execute(t, nil, "", "history")
	assert.Error(t, err)
}

func TestHistoryCommand_RecordsPredictions(t *testing.T) {
	db := openTestDB(t)

	out, err := execute(t, db, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No predictions recorded yet.")

	_, err = execute(t, db, "", "predict", "Хороший продукт, советую")
	require.NoError(t, err)
	_, err = execute(t, db, "Отвратительный сервис\n\nхороший ПРОДУКТ советую!\nвыход\n", "interactive", "--plain")
	require.NoError(t, err)

	out, err = execute(t, db, "", "history", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Отвратительный сервис")
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "Totals: positive=2 negative=1 neutral=0")
}

func TestInteractiveCommand_CustomStopWord(t *testing.T) {
	out, err := execute(t, nil, "Хороший продукт\nQUIT\nОтвратительный сервис\n", "interactive", "--plain", "--stop", "quit")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Result: "))
	assert.NotContains(t, out, "=== TEST ===")
}
