package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses ANSI 6 (Cyan), readable on light and dark terminals.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// UsageStyle ANSI 2 (Green) for arguments and usage lines.
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black / Gray) for descriptions.
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags.
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// Chat view styles.
	UserLabelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	AssistantLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	TimestampStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	StatusStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	NoticeStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)
