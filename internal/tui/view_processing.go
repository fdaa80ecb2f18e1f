package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptcraft/internal/engine"
)

// processingStages are the rows shown while a prompt is generated.
// Formatting and FallbackBuilding share the last row.
var processingStages = []string{"Assembling", "Calling model", "Formatting"}

func stageRow(st engine.Stage) int {
	switch st {
	case engine.StageIdle, engine.StageAssembling:
		return 0
	case engine.StageCalling:
		return 1
	default:
		return 2
	}
}

func (a *App) renderProcessing() string {
	s := a.state
	var b strings.Builder

	title := styleLogo.Render(s.spinner.View() + " Generating")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	asked := styleSubtitle.Render("> " + truncate(s.lastReq.Keywords, 55))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	current := stageRow(s.progress.Stage)
	var stageLines []string
	for i, stage := range processingStages {
		var icon string
		var style lipgloss.Style

		if i < current {
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		} else if i == current {
			icon = "[>]"
			style = styleSelected
		} else {
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(colorMuted)
		}

		name := stage
		if i == 2 && s.progress.Stage == engine.StageFallback {
			name = "Offline template"
		}

		// Attempt bar while calling the model
		var progressBar string
		if i == current && s.progress.Stage == engine.StageCalling && s.progress.MaxAttempts > 0 {
			p := s.progress
			filled := min(20, p.Attempt*20/p.MaxAttempts)
			progressBar = "  " +
				lipgloss.NewStyle().Foreground(colorSecondary).Render(strings.Repeat("=", filled)) +
				lipgloss.NewStyle().Foreground(colorMuted).Render(strings.Repeat("-", 20-filled)) +
				fmt.Sprintf("  %d/%d", p.Attempt, p.MaxAttempts)
		}

		stageLines = append(stageLines, style.Render(fmt.Sprintf("  %s  %-16s", icon, name))+progressBar)
	}

	stagesBox := styleBox.
		Width(min(60, max(30, a.width-4))).
		Render(strings.Join(stageLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, stagesBox))
	b.WriteString("\n\n")

	if s.progress.Message != "" {
		msg := styleSubtitle.Render(truncate(s.progress.Message, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, msg))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render("[Esc] Cancel")))

	return a.centerVertically(b.String())
}
