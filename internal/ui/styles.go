package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gmh5225/awesome-game-security-site/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Result list styles
	Section  lipgloss.Style
	Title    lipgloss.Style
	Desc     lipgloss.Style
	URL      lipgloss.Style
	Tag      lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Dim      lipgloss.Style

	// Chrome styles
	Divider lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style

	// Colors for direct access
	SelectedBg lipgloss.Color
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Section:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Desc:       lipgloss.NewStyle(),
		URL:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Tag:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		SelectedBg: lipgloss.Color("236"),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	sectionColor := lipgloss.Color(config.GetColorSection())
	titleColor := lipgloss.Color(config.GetColorTitle())
	descColor := lipgloss.Color(config.GetColorDesc())
	urlColor := lipgloss.Color(config.GetColorURL())
	tagColor := lipgloss.Color(config.GetColorTag())
	borderColor := lipgloss.Color(config.GetColorBorder())
	cursorColor := lipgloss.Color(config.GetColorCursor())
	selectedBg := lipgloss.Color(config.GetColorSelected())
	dimColor := lipgloss.Color(config.GetColorDim())

	s.Section = lipgloss.NewStyle().Bold(true).Foreground(sectionColor)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	s.Desc = lipgloss.NewStyle().Foreground(descColor)
	s.URL = lipgloss.NewStyle().Foreground(urlColor)
	s.Tag = lipgloss.NewStyle().Foreground(tagColor)
	s.Selected = lipgloss.NewStyle().Background(selectedBg)
	s.Cursor = lipgloss.NewStyle().Foreground(cursorColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
	s.SelectedBg = selectedBg
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
