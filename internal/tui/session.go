package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trknhr/tonality/internal/model/entity"
)

const maxResults = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	labelStyles = map[entity.Label]lipgloss.Style{
		entity.Positive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		entity.Negative: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		entity.Neutral:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
	}
)

type Session struct {
	input    textinput.Model
	clf      entity.Scorer
	opts     Options
	results  []entity.Prediction
	width    int
	quitting bool
}

func NewSession(clf entity.Scorer, opts Options) *Session {
	input := textinput.New()
	input.Placeholder = "Type a review..."
	input.Prompt = "> "
	input.Focus()

	return &Session{
		input: input,
		clf:   clf,
		opts:  opts.withDefaults(),
	}
}

func (m *Session) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			value := m.input.Value()
			m.input.Reset()

			if IsStopWord(value, m.opts.StopWord) {
				m.quitting = true
				return m, tea.Quit
			}
			if IsBlank(value) {
				return m, nil
			}

			p := Classify(m.clf, value)
			m.results = append([]entity.Prediction{p}, m.results...)
			if len(m.results) > maxResults {
				m.results = m.results[:maxResults]
			}
			if m.opts.OnPredict != nil {
				m.opts.OnPredict(p)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Session) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Review sentiment"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("Enter to classify, '%s' or Esc to quit", m.opts.StopWord)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for _, p := range m.results {
		label := labelStyles[p.Label].Render(fmt.Sprintf("%-8s", p.Label))
		score := hintStyle.Render(fmt.Sprintf("+%d/-%d", p.Score.Positive, p.Score.Negative))
		fmt.Fprintf(&b, "%s %s %s\n", label, score, textStyle.Render(p.Text))
	}
	return b.String()
}

// Results returns the predictions shown, newest first.
func (m *Session) Results() []entity.Prediction {
	return m.results
}
