package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/engine"
	"github.com/sant0-9/promptcraft/internal/llm"
)

type stubCompleter struct {
	text string
	err  error
}

func (s stubCompleter) Do(ctx context.Context, system, user string, onAttempt func(int)) llm.Outcome {
	onAttempt(1)
	if s.err != nil {
		return llm.Outcome{Attempts: 1, Err: s.err}
	}
	return llm.Outcome{Text: s.text, Attempts: 1}
}

func ollamaConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.SetProvider("ollama")
	return cfg
}

func newTestApp(t *testing.T, c engine.Completer) *App {
	t.Helper()
	a := NewApp(ollamaConfig(), filepath.Join(t.TempDir(), "config.yaml"), false)
	require.Equal(t, viewCompose, a.view)
	a.state.engine = engine.New(c)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a
}

func press(a *App, k tea.KeyType) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeRunes(a *App, s string) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

// drain feeds every engine event back into the app until generation ends
func drain(a *App) {
	for msg := range a.state.events {
		a.Update(msg)
	}
}

func TestNewApp_NeedsSetup(t *testing.T) {
	a := NewApp(nil, "", false)
	assert.Equal(t, viewSetup, a.view)
	assert.True(t, a.state.needsSetup)

	cfg := config.DefaultConfig()
	cfg.APIKey = ""
	a = NewApp(cfg, "", false)
	assert.Equal(t, viewSetup, a.view, "missing credentials start the wizard")
}

func TestNewApp_ReadyConfigStartsOnCompose(t *testing.T) {
	a := NewApp(ollamaConfig(), "", false)

	assert.Equal(t, viewCompose, a.view)
	assert.NotNil(t, a.state.engine)
	assert.Equal(t, catalog.TaskGeneral, a.state.task())
	assert.Equal(t, catalog.PlatformGeneral, a.state.platform())
}

func TestCompose_RejectsSingleKeyword(t *testing.T) {
	a := newTestApp(t, stubCompleter{text: "unused"})
	a.state.input.SetValue("react")

	cmd := press(a, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, viewCompose, a.view)
	assert.Equal(t, "please enter at least 2 comma-separated keywords", a.state.inputError)
}

func TestCompose_SelectorsCycle(t *testing.T) {
	a := newTestApp(t, nil)

	press(a, tea.KeyTab)
	require.Equal(t, fieldTask, a.state.focus)
	press(a, tea.KeyRight)
	assert.Equal(t, catalog.TaskImageGeneration, a.state.task())
	assert.Equal(t, catalog.LookupTaskTemplate(catalog.TaskImageGeneration).Placeholder, a.state.input.Placeholder)

	press(a, tea.KeyLeft)
	press(a, tea.KeyLeft)
	assert.Equal(t, catalog.TaskWebsite, a.state.task(), "selection wraps around")

	press(a, tea.KeyTab)
	require.Equal(t, fieldPlatform, a.state.focus)
	press(a, tea.KeyRight)
	press(a, tea.KeyRight)
	assert.Equal(t, catalog.PlatformClaude, a.state.platform())

	press(a, tea.KeyTab)
	assert.Equal(t, fieldKeywords, a.state.focus)
	assert.True(t, a.state.input.Focused())
}

func TestCompose_TypingGoesToKeywords(t *testing.T) {
	a := newTestApp(t, nil)

	typeRunes(a, "react, hooks")

	assert.Equal(t, "react, hooks", a.state.input.Value())
}

func TestGenerate_ShowsResult(t *testing.T) {
	a := newTestApp(t, stubCompleter{text: "model body"})
	a.state.taskIndex = 2
	a.state.platIndex = 2
	a.state.input.SetValue("React, hooks, responsive design")

	cmd := press(a, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, viewProcessing, a.view)
	drain(a)

	require.Equal(t, viewResult, a.view)
	resp := a.state.response
	assert.True(t, resp.Success)
	assert.Equal(t, "code-generation", resp.TaskType)
	assert.Equal(t, "claude", resp.Platform)
	assert.Contains(t, resp.Prompt, "model body")
	assert.Contains(t, a.View(), "Generated in 1 attempt(s)")
}

func TestGenerate_FailureShowsOfflineTemplate(t *testing.T) {
	a := newTestApp(t, stubCompleter{err: errors.New("connection refused")})
	a.state.input.SetValue("one, two")

	press(a, tea.KeyEnter)
	drain(a)

	require.Equal(t, viewResult, a.view)
	assert.False(t, a.state.response.Success)
	assert.NotEmpty(t, a.state.response.Fallback)
	assert.Contains(t, a.View(), "Using offline template")
}

func TestGenerate_OfflineToggle(t *testing.T) {
	a := newTestApp(t, stubCompleter{err: errors.New("must not be called")})
	press(a, tea.KeyCtrlO)
	require.True(t, a.state.offline)
	a.state.input.SetValue("one, two")

	cmd := press(a, tea.KeyEnter)

	assert.Nil(t, cmd)
	require.Equal(t, viewResult, a.view)
	assert.True(t, a.state.response.Offline)
	assert.Contains(t, a.state.response.Prompt, "one, two")
}

func TestGenerate_StaleEventsIgnored(t *testing.T) {
	a := newTestApp(t, stubCompleter{text: "body"})
	a.state.generation = 5
	a.view = viewCompose

	a.Update(generateDoneMsg{generation: 4, response: engine.Response{Success: true, Prompt: "old"}})
	a.Update(progressMsg{generation: 4, progress: engine.Progress{Stage: engine.StageCalling}})

	assert.Equal(t, viewCompose, a.view)
	assert.Equal(t, engine.StageIdle, a.state.progress.Stage)
}

func TestResult_Copy(t *testing.T) {
	a := newTestApp(t, stubCompleter{text: "body"})
	var copied string
	a.copy = func(s string) error {
		copied = s
		return nil
	}
	a.state.input.SetValue("one, two")
	press(a, tea.KeyEnter)
	drain(a)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Equal(t, a.state.response.Text(), copied)
	assert.Equal(t, "Copied to clipboard", a.state.notice)
}

func TestResult_CopyFailure(t *testing.T) {
	a := newTestApp(t, nil)
	a.copy = func(string) error { return errors.New("no clipboard") }
	a.showResult(engine.Response{Success: true, Prompt: "p"})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	a.Update(cmd())

	assert.Equal(t, "Copy failed: no clipboard", a.state.notice)
}

func TestResult_NewReturnsToCompose(t *testing.T) {
	a := newTestApp(t, nil)
	a.state.input.SetValue("one, two")
	a.showResult(engine.Response{Success: true, Prompt: "p"})

	typeRunes(a, "n")

	assert.Equal(t, viewCompose, a.view)
	assert.Empty(t, a.state.input.Value())
}

func TestSlashCommands(t *testing.T) {
	a := newTestApp(t, nil)

	a.state.input.SetValue("/help")
	press(a, tea.KeyEnter)
	assert.Equal(t, viewHelp, a.view)
	press(a, tea.KeyEsc)
	assert.Equal(t, viewCompose, a.view)

	a.state.input.SetValue("/settings")
	press(a, tea.KeyEnter)
	assert.Equal(t, viewSettings, a.view)
	press(a, tea.KeyEsc)
	assert.Equal(t, viewCompose, a.view)

	a.state.input.SetValue("/bogus")
	press(a, tea.KeyEnter)
	assert.Contains(t, a.state.inputError, "unknown command")
}

func TestSetup_ProviderWithoutKeySavesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	a := NewApp(nil, path, true)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	ollama := providerIndex("ollama")
	for range ollama {
		press(a, tea.KeyDown)
	}
	require.Equal(t, ollama, a.state.selectedProvider)

	cmd := press(a, tea.KeyEnter)
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, setupCompleteMsg{}, msg)
	a.Update(msg)

	assert.Equal(t, viewCompose, a.view)
	assert.False(t, a.state.needsSetup)

	saved, err := config.LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "ollama", saved.Provider)
	assert.Equal(t, "llama3.1:8b", saved.Model)
}

func TestSetup_APIKeyStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	a := NewApp(nil, path, true)

	press(a, tea.KeyEnter)
	require.Equal(t, 1, a.state.setupStep)

	assert.Nil(t, press(a, tea.KeyEnter), "empty key is not accepted")

	typeRunes(a, "sk-novita-123")
	cmd := press(a, tea.KeyEnter)
	require.NotNil(t, cmd)
	a.Update(cmd())

	saved, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "novita", saved.Provider)
	assert.Equal(t, "sk-novita-123", saved.APIKey)
}

func TestSetup_EscGoesBackFromKeyEntry(t *testing.T) {
	a := NewApp(nil, "", true)
	press(a, tea.KeyEnter)
	require.Equal(t, 1, a.state.setupStep)

	press(a, tea.KeyEsc)

	assert.Equal(t, 0, a.state.setupStep)
	assert.Equal(t, viewSetup, a.view)
}

func TestSetupProvidersExcludeCustom(t *testing.T) {
	for _, p := range setupProviders() {
		assert.NotEqual(t, "custom", p.ID)
	}
	assert.Equal(t, 0, providerIndex("custom"))
}

func TestViewsRender(t *testing.T) {
	a := newTestApp(t, nil)

	for _, v := range []view{viewCompose, viewSetup, viewProcessing, viewResult, viewSettings, viewHelp, viewError} {
		a.view = v
		assert.NotEmpty(t, a.View(), v)
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 6, wrap(-1, 7))
	assert.Equal(t, 0, wrap(7, 7))
	assert.Equal(t, "Not set", maskKey(""))
	assert.Equal(t, "****", maskKey("short"))
	assert.Equal(t, "sk-a****wxyz", maskKey("sk-abcdefwxyz"))
	assert.Equal(t, "héll...", truncate("héllo world", 7))
	assert.Equal(t, 3, estimateTokens("123456789"))
	assert.NotEmpty(t, suggestionsFor(config.ErrMissingAPIKey))
	assert.Nil(t, suggestionsFor(nil))
}
