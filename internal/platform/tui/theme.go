package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles of the menu screens.
type Theme struct {
	Logo lipgloss.Style

	// Menus
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Settings editor
	InputPrompt lipgloss.Style
	Notice      lipgloss.Style

	// Results
	ResultHeading lipgloss.Style
	ResultValue   lipgloss.Style

	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Logo: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true), // Cyan like the selection cursor
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		InputPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		ResultHeading: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ResultValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Logo = lipgloss.NewStyle().Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.ResultHeading = lipgloss.NewStyle().Bold(true)
	return theme
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
