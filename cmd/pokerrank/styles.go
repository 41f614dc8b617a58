package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/pokerrank/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// prettyCard renders a card with its suit glyph, hearts and diamonds in red.
func prettyCard(c poker.Card) string {
	s := c.Pretty()
	switch c.Suit() {
	case poker.Hearts, poker.Diamonds:
		return redSuitStyle.Render(s)
	}
	return s
}
