package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptcraft/internal/config"
)

// setupProviders lists the providers the wizard can configure. Custom
// endpoints need a base URL and model and are set in the config file.
func setupProviders() []config.ProviderInfo {
	var out []config.ProviderInfo
	for _, p := range config.Providers {
		if !p.NeedsBaseURL {
			out = append(out, p)
		}
	}
	return out
}

func providerIndex(id string) int {
	for i, p := range setupProviders() {
		if p.ID == id {
			return i
		}
	}
	return 0
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	providers := setupProviders()

	switch s.setupStep {
	case 0: // Provider selection
		switch {
		case key.Matches(msg, keys.Quit):
			a.quitting = true
			return tea.Quit
		case key.Matches(msg, keys.Up):
			if s.selectedProvider > 0 {
				s.selectedProvider--
			}
		case key.Matches(msg, keys.Down):
			if s.selectedProvider < len(providers)-1 {
				s.selectedProvider++
			}
		case key.Matches(msg, keys.Enter):
			provider := providers[s.selectedProvider]
			s.config.SetProvider(provider.ID)

			if provider.NeedsAPIKey {
				s.setupStep = 1
				s.apiKeyInput.Reset()
				s.apiKeyInput.Focus()
				return textinput.Blink
			}
			return a.saveConfig(setupCompleteMsg{})
		}

	case 1: // API key entry
		switch {
		case key.Matches(msg, keys.Quit):
			s.setupStep = 0
			s.apiKeyInput.Reset()
			return nil
		case key.Matches(msg, keys.Enter):
			apiKey := strings.TrimSpace(s.apiKeyInput.Value())
			if apiKey == "" {
				return nil
			}
			s.config.APIKey = apiKey
			s.apiKeyInput.Reset()
			return a.saveConfig(setupCompleteMsg{})
		}

		var cmd tea.Cmd
		s.apiKeyInput, cmd = s.apiKeyInput.Update(msg)
		return cmd
	}

	return nil
}
