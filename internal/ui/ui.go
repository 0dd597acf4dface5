package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gmh5225/awesome-game-security-site/internal/fetch"
	"github.com/gmh5225/awesome-game-security-site/internal/search"
)

// Run launches the browser TUI. The initial query seeds the search state
// so an invocation can land directly on a filtered view.
func Run(fetcher *fetch.Fetcher, initial search.Query) error {
	RefreshStyles()

	p := tea.NewProgram(NewModel(fetcher, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
