package main

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("240"))

	styleOn = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	styleOff = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	styleBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)
