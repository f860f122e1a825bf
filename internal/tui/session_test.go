package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/tonality/internal/model/entity"
)

func submit(t *testing.T, s *Session, text string) tea.Cmd {
	t.Helper()
	s.input.SetValue(text)
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestSession_ClassifiesOnEnter(t *testing.T) {
	var journaled []entity.Prediction
	s := NewSession(trainedModel(), Options{
		OnPredict: func(p entity.Prediction) { journaled = append(journaled, p) },
	})

	assert.Nil(t, submit(t, s, "Отличный товар! Очень рад что купил"))
	assert.Nil(t, submit(t, s, "Плохая работа, не доволен"))

	results := s.Results()
	require.Len(t, results, 2)
	assert.Equal(t, entity.Negative, results[0].Label, "newest first")
	assert.Equal(t, entity.Positive, results[1].Label)
	assert.Len(t, journaled, 2)
	assert.Equal(t, "", s.input.Value(), "input is cleared after submit")

	view := s.View()
	assert.Contains(t, view, "positive")
	assert.Contains(t, view, "Плохая работа, не доволен")
}

func TestSession_SkipsBlankInput(t *testing.T) {
	s := NewSession(trainedModel(), Options{})
	assert.Nil(t, submit(t, s, "   "))
	assert.Empty(t, s.Results())
}

func TestSession_StopWordQuits(t *testing.T) {
	s := NewSession(trainedModel(), Options{})

	cmd := submit(t, s, "Выход")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, s.Results())
	assert.Equal(t, "", s.View())
}

func TestSession_CtrlCQuits(t *testing.T) {
	s := NewSession(trainedModel(), Options{})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestSession_KeepsLastResults(t *testing.T) {
	s := NewSession(trainedModel(), Options{})
	for i := 0; i < maxResults+3; i++ {
		submit(t, s, "Хороший продукт")
	}
	assert.Len(t, s.Results(), maxResults)
}
