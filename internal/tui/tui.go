// Package tui is the interactive terminal quiz: one keypress per answer,
// feedback on the previous hand and a running score.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/internal/strategy"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// KeyMap holds the quiz key bindings
type KeyMap struct {
	Raise key.Binding
	Call  key.Binding
	Fold  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap answers with r/c/f and quits with q, esc or ctrl+c
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Raise: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "raise")),
		Call:  key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "call")),
		Fold:  key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "fold")),
		Quit:  key.NewBinding(key.WithKeys("q", "Q", "esc", "ctrl+c", "ctrl+d"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Raise, k.Call, k.Fold, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the Bubble Tea model for a quiz session
type Model struct {
	session *trainer.Session
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	spot     trainer.Spot
	feedback *trainer.Feedback
	err      error
	quitting bool
}

// NewModel creates the quiz model and asks the first question
func NewModel(session *trainer.Session, logger *log.Logger) (*Model, error) {
	m := &Model{
		session: session,
		logger:  logger.WithPrefix("tui"),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	spot, err := session.Next()
	if err != nil {
		return nil, err
	}
	m.spot = spot
	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Debug("Quit requested")
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Raise):
			return m, m.answer(trainer.Raise)
		case key.Matches(msg, m.keys.Call):
			return m, m.answer(trainer.Call)
		case key.Matches(msg, m.keys.Fold):
			return m, m.answer(trainer.Fold)
		}
	}
	return m, nil
}

func (m *Model) answer(action trainer.Action) tea.Cmd {
	fb, err := m.session.Answer(action)
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.feedback = &fb

	spot, err := m.session.Next()
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.spot = spot
	return nil
}

// quizHelp leaves the call key out of the footer in unopened pots, where
// calling is never right. The key itself still works and grades as wrong.
type quizHelp struct {
	keys KeyMap
	open bool
}

func (h quizHelp) ShortHelp() []key.Binding {
	if h.open {
		return []key.Binding{h.keys.Raise, h.keys.Fold, h.keys.Quit}
	}
	return h.keys.ShortHelp()
}

func (h quizHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return ErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Preflop Trainer ♦ ♣ "))
	b.WriteString("\n\n")

	if m.feedback != nil {
		b.WriteString(PanelStyle.Render(renderFeedback(*m.feedback)))
		b.WriteString("\n")
	}

	stats := m.session.Stats()
	b.WriteString(fmt.Sprintf("Question %d\n", stats.Questions+1))
	b.WriteString("Position:   " + SituationStyle.Render(m.spot.Situation.String()) + "\n")
	b.WriteString("Hole cards: " + RenderHand(m.spot.Hand) + "\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("RNG: %d", m.spot.Draw)) + "\n\n")
	b.WriteString(PromptStyle.Render(Prompt(m.spot.Situation)) + "\n\n")
	b.WriteString(RenderScore(stats) + "\n")
	_, open := m.spot.Situation.(strategy.Open)
	b.WriteString(m.help.View(quizHelp{keys: m.keys, open: open}))
	return b.String()
}

// Err returns the error that ended the quiz, if any
func (m *Model) Err() error {
	return m.err
}

// Prompt returns the actions on offer in sit
func Prompt(sit strategy.Situation) string {
	switch sit.(type) {
	case strategy.Open:
		return "(R)aise or (F)old?"
	case strategy.BBDefense:
		return "(R)aise, (C)all, or (F)old?"
	default:
		return ""
	}
}

func renderFeedback(fb trainer.Feedback) string {
	lines := []string{
		fmt.Sprintf("Last hand: %s (%s, top %.0f%%) in %s",
			RenderHand(fb.Spot.Hand), fb.Class, topShare(fb.Class.Percentile()), fb.Spot.Situation),
		fmt.Sprintf("You chose %s: %s", fb.Action, RenderResult(fb.Result)),
		fmt.Sprintf("Answer at RNG %d: %s", fb.Spot.Draw, fb.CorrectAction),
		renderFrequencies(fb.Spot.Situation, fb.Frequencies),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// topShare turns a percentile into the share of starting hands at least as
// strong, never below 1% so aces read as "top 1%".
func topShare(percentile float64) float64 {
	return max(1, (1-percentile)*100)
}

func renderFrequencies(sit strategy.Situation, f trainer.ActionFrequencies) string {
	if _, open := sit.(strategy.Open); open {
		return InfoStyle.Render(fmt.Sprintf("Raise %.0f%% / Fold %.0f%%", f.Raise*100, f.Fold*100))
	}
	return InfoStyle.Render(fmt.Sprintf("Raise %.0f%% / Call %.0f%% / Fold %.0f%%", f.Raise*100, f.Call*100, f.Fold*100))
}

// RenderScore renders "Score: 3.5/5 (70.00%)"
func RenderScore(s trainer.Stats) string {
	return fmt.Sprintf("Score: %g/%d (%.2f%%)", s.Score, s.Questions, s.Percentage())
}

// Run plays the quiz until the user quits and returns the final tally
func Run(session *trainer.Session, logger *log.Logger, opts ...tea.ProgramOption) (trainer.Stats, error) {
	m, err := NewModel(session, logger)
	if err != nil {
		return trainer.Stats{}, err
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return session.Stats(), fmt.Errorf("quiz UI failed: %w", err)
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		return session.Stats(), fm.err
	}
	return session.Stats(), nil
}
