package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptcraft/internal/config"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	err := a.state.fatalError
	if err == nil {
		err = a.state.providerError
	}
	errMsg := "Unknown error"
	if err != nil {
		errMsg = err.Error()
	}

	errBox := styleBox.
		Width(min(60, max(30, a.width-4))).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(err); len(suggestions) > 0 {
		suggBox := styleBox.
			Width(min(60, max(30, a.width-4))).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[s] Settings  [n] New  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// suggestionsFor maps common failures to next steps
func suggestionsFor(err error) []string {
	if err == nil {
		return nil
	}
	errLower := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, config.ErrMissingAPIKey),
		strings.Contains(errLower, "401"), strings.Contains(errLower, "unauthorized"):
		return []string{
			"Check your API key in ~/.config/promptcraft/config.yaml",
			"or set " + config.EnvPrefix + "API_KEY, or press [s] for settings",
		}
	case strings.Contains(errLower, "permission denied"), strings.Contains(errLower, "saving config"):
		return []string{
			"Make sure ~/.config/promptcraft is writable",
			"or pass --config with a writable path",
		}
	case strings.Contains(errLower, "connection"), strings.Contains(errLower, "timeout"):
		return []string{
			"Check your internet connection",
			"or switch to Ollama in settings for local generation",
		}
	case strings.Contains(errLower, "ollama"):
		return []string{
			"Make sure Ollama is running: ollama serve",
			"or switch to a cloud provider in settings",
		}
	case strings.Contains(errLower, "rate limit"), strings.Contains(errLower, "429"):
		return []string{
			"You've hit the API rate limit",
			"Wait a moment and try again",
		}
	}
	return nil
}
