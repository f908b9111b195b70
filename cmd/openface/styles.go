package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openfacepoker/engine/internal/deck"
)

// Static styles for content elements
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)
)

// renderCard colors a card code by suit, red for hearts and diamonds
func renderCard(code string) string {
	c, err := deck.Parse(code)
	if err != nil {
		return errorStyle.Render(code)
	}
	if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
		return redCardStyle.Render(c.Code())
	}
	return blackCardStyle.Render(c.Code())
}

// renderCards joins colored card codes with spaces
func renderCards(codes []string) string {
	rendered := make([]string, len(codes))
	for i, code := range codes {
		rendered[i] = renderCard(code)
	}
	return strings.Join(rendered, " ")
}
