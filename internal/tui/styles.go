package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/preflop-trainer/internal/trainer"
	"github.com/lox/preflop-trainer/poker"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	SituationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// RenderCard renders a card with its suit symbol, red suits in red
func RenderCard(c poker.Card) string {
	text := c.Rank.String() + c.Suit.Symbol()
	if c.Suit.IsRed() {
		return RedCardStyle.Render(text)
	}
	return BlackCardStyle.Render(text)
}

// RenderHand renders both hole cards
func RenderHand(h poker.Hand) string {
	return RenderCard(h.Card1) + " " + RenderCard(h.Card2)
}

// RenderResult renders a graded result in its colour
func RenderResult(r trainer.Result) string {
	switch r {
	case trainer.Correct:
		return SuccessStyle.Render("Correct!")
	case trainer.FrequencyMistake:
		return WarningStyle.Render("Frequency mistake.")
	default:
		return ErrorStyle.Render("Wrong.")
	}
}
