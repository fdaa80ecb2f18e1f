package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptcraft/internal/config"
)

func (a *App) openSettings() {
	a.state.settingsMode = ""
	a.state.settingsSelected = 0
	a.view = viewSettings
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch s.settingsMode {
	case "provider":
		return a.handleSettingsProviderKey(msg)
	case "model":
		return a.handleSettingsModelKey(msg)
	case "apikey":
		return a.handleSettingsAPIKeyKey(msg)
	}

	switch msg.String() {
	case "p":
		s.settingsMode = "provider"
		s.settingsSelected = providerIndex(s.config.Provider)
	case "m":
		s.settingsMode = "model"
		s.settingsSelected = 0
		if info := config.GetProvider(s.config.Provider); info != nil {
			s.settingsSelected = max(0, slices.Index(info.Models, s.config.Model))
		}
	case "k":
		s.settingsMode = "apikey"
		s.apiKeyInput.Reset()
		s.apiKeyInput.Focus()
		return textinput.Blink
	case "r":
		s.needsSetup = true
		s.setupStep = 0
		s.selectedProvider = providerIndex(s.config.Provider)
		a.view = viewSetup
	case "esc":
		a.view = viewCompose
	}
	return nil
}

func (a *App) handleSettingsProviderKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	providers := setupProviders()

	switch {
	case key.Matches(msg, keys.Quit):
		s.settingsMode = ""
	case key.Matches(msg, keys.Up):
		if s.settingsSelected > 0 {
			s.settingsSelected--
		}
	case key.Matches(msg, keys.Down):
		if s.settingsSelected < len(providers)-1 {
			s.settingsSelected++
		}
	case key.Matches(msg, keys.Enter):
		provider := providers[s.settingsSelected]
		if provider.ID != s.config.Provider {
			s.config.SetProvider(provider.ID)
			s.config.APIKey = ""
		}
		if provider.NeedsAPIKey && s.config.APIKey == "" {
			s.settingsMode = "apikey"
			s.apiKeyInput.Reset()
			s.apiKeyInput.Focus()
			return textinput.Blink
		}
		return a.saveConfig(settingsSavedMsg{})
	}
	return nil
}

func (a *App) handleSettingsModelKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	info := config.GetProvider(s.config.Provider)
	if info == nil || len(info.Models) == 0 {
		s.settingsMode = ""
		return nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		s.settingsMode = ""
	case key.Matches(msg, keys.Up):
		if s.settingsSelected > 0 {
			s.settingsSelected--
		}
	case key.Matches(msg, keys.Down):
		if s.settingsSelected < len(info.Models)-1 {
			s.settingsSelected++
		}
	case key.Matches(msg, keys.Enter):
		s.config.Model = info.Models[s.settingsSelected]
		return a.saveConfig(settingsSavedMsg{})
	}
	return nil
}

func (a *App) handleSettingsAPIKeyKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch {
	case key.Matches(msg, keys.Quit):
		s.settingsMode = ""
		s.apiKeyInput.Reset()
		return nil
	case key.Matches(msg, keys.Enter):
		apiKey := strings.TrimSpace(s.apiKeyInput.Value())
		if apiKey == "" {
			return nil
		}
		s.config.APIKey = apiKey
		s.apiKeyInput.Reset()
		return a.saveConfig(settingsSavedMsg{})
	}

	var cmd tea.Cmd
	s.apiKeyInput, cmd = s.apiKeyInput.Update(msg)
	return cmd
}

// maskKey hides all but the ends of an API key
func maskKey(k string) string {
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}
