package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/config"
)

func (a *App) renderCompose() string {
	s := a.state
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleLogo.Render(logo)))
	b.WriteString("\n")
	subtitle := styleSubtitle.Render("Turn a few keywords into a professional prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	boxWidth := min(70, max(30, a.width-4))

	// Keywords
	label := styleSubtitle.Render("Keywords (comma separated)")
	if s.focus == fieldKeywords {
		label = styleSelected.Render("Keywords (comma separated)")
	}
	inputStyle := styleBox.Width(boxWidth)
	if s.focus == fieldKeywords {
		inputStyle = inputStyle.BorderForeground(colorSecondary)
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, label, inputStyle.Render(s.input.View()))))
	b.WriteString("\n")

	if s.inputError != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleErrorText.Render(s.inputError)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Selectors
	tmpl := catalog.LookupTaskTemplate(s.task())
	task := fmt.Sprintf("%s %s", tmpl.Emoji, tmpl.DisplayName)
	platform := catalog.LookupPlatformProfile(s.platform()).DisplayName
	selectors := []string{
		a.renderSelector("Task", task, s.focus == fieldTask),
		a.renderSelector("Platform", platform, s.focus == fieldPlatform),
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleBox.Width(boxWidth).Render(strings.Join(selectors, "\n"))))
	b.WriteString("\n\n")

	// Status
	status := a.providerStatus()
	if s.offline {
		status = styleWarning.Render("Offline mode: templates only")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Enter] Generate  [Tab] Next field  [←/→] Change  [Ctrl+O] Offline  /help  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSelector(label, value string, focused bool) string {
	line := fmt.Sprintf("%-9s ‹ %s ›", label+":", value)
	if focused {
		return styleSelected.Render("> " + line)
	}
	return styleSubtitle.Render("  " + line)
}

func (a *App) providerStatus() string {
	s := a.state
	name := s.config.Provider
	if info := config.GetProvider(s.config.Provider); info != nil {
		name = info.Name
	}
	model := fmt.Sprintf("%s · %s", name, truncate(s.config.Model, 40))

	switch {
	case s.providerReady:
		return lipgloss.NewStyle().Foreground(colorSuccess).Render("● " + model)
	case s.providerError != nil:
		return styleWarning.Render("● " + model + " unreachable, offline templates will be used")
	default:
		return styleSubtitle.Render("○ " + model + " connecting...")
	}
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
