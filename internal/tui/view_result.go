package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptcraft/internal/catalog"
)

func (a *App) renderResult() string {
	s := a.state
	resp := s.response
	var b strings.Builder

	tmpl := catalog.LookupTaskTemplate(catalog.ParseTaskCategory(resp.TaskType))
	platform := catalog.LookupPlatformProfile(catalog.ParsePlatform(resp.Platform))
	header := styleSubtitle.Render(fmt.Sprintf("%s %s for %s  > %s",
		tmpl.Emoji, tmpl.DisplayName, platform.DisplayName, truncate(s.lastReq.Keywords, 40)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n")

	switch {
	case resp.Offline:
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			styleWarning.Render("Using offline template")))
	case !resp.Success:
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			styleWarning.Render("Using offline template: "+truncate(resp.Error, 60))))
	case resp.Cached:
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			styleSubtitle.Render("From cache")))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(colorSuccess).Render(fmt.Sprintf("Generated in %d attempt(s)", resp.Attempts))))
	}
	b.WriteString("\n\n")

	border := colorPrimary
	if !resp.Success {
		border = colorWarning
	}
	resultBox := styleBox.BorderForeground(border).Render(s.resultView.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	info := fmt.Sprintf("~%d tokens  %3.f%%", estimateTokens(resp.Text()), s.resultView.ScrollPercent()*100)
	if s.notice != "" {
		info = s.notice + "  " + info
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(info)))
	b.WriteString("\n")

	actions := "[c] Copy  [↑/↓] Scroll  [o] Offline template  [n] New  [s] Settings"
	if !resp.Success {
		actions = "[c] Copy  [r] Retry  [↑/↓] Scroll  [n] New  [s] Settings"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(actions)))

	return a.centerVertically(b.String())
}
