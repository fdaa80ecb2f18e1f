// Package tui is the interactive terminal front end: a setup wizard, a
// compose screen for keywords, task and platform, and a copyable result.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/engine"
	"github.com/sant0-9/promptcraft/internal/llm"
)

type view int

const (
	viewCompose view = iota
	viewSetup
	viewProcessing
	viewResult
	viewSettings
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool

	copy func(string) error
}

// NewApp creates the TUI for cfg. Changes made in setup and settings are
// saved to configPath, or the default path when it is empty.
func NewApp(cfg *config.Config, configPath string, needsSetup bool) *App {
	s := newState()
	if cfg == nil {
		cfg = config.DefaultConfig()
		needsSetup = true
	}
	s.config = cfg
	s.configPath = configPath
	s.needsSetup = needsSetup || cfg.CheckCredentials() != nil

	a := &App{
		view:  viewCompose,
		state: s,
		copy:  clipboard.WriteAll,
	}
	if s.needsSetup {
		a.view = viewSetup
		s.selectedProvider = providerIndex(cfg.Provider)
	} else {
		a.rebuildEngine()
	}
	s.input.Focus()
	return a
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.testProvider(),
	)
}

// rebuildEngine applies the current config. The TUI owns the terminal, so the engine logs nowhere.
func (a *App) rebuildEngine() {
	eng, err := engine.FromConfig(context.Background(), a.state.config, zap.NewNop())
	if eng == nil {
		eng = engine.New(nil)
	}
	a.state.engine = eng
	a.state.providerReady = false
	a.state.providerError = err
}

func (a *App) testProvider() tea.Cmd {
	cfg := *a.state.config
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		provider, err := llm.NewProvider(ctx, &cfg, nil)
		if err != nil {
			return providerErrorMsg{err}
		}
		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{}
	}
}

type setupCompleteMsg struct{}
type saveErrorMsg struct{ error }
type settingsSavedMsg struct{}
type providerReadyMsg struct{}
type providerErrorMsg struct{ error }
type copiedMsg struct{ err error }

type progressMsg struct {
	generation int
	progress   engine.Progress
}

type generateDoneMsg struct {
	generation int
	response   engine.Response
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := a.state

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		s.resultView.Width = max(20, min(76, a.width-4))
		s.resultView.Height = max(5, a.height-10)

	case setupCompleteMsg:
		s.needsSetup = false
		s.setupStep = 0
		a.view = viewCompose
		a.rebuildEngine()
		s.input.Focus()
		return a, tea.Batch(textinput.Blink, a.testProvider())

	case settingsSavedMsg:
		s.settingsMode = ""
		a.rebuildEngine()
		return a, a.testProvider()

	case saveErrorMsg:
		s.fatalError = msg.error
		a.view = viewError
		return a, nil

	case providerReadyMsg:
		s.providerReady = true
		s.providerError = nil
		return a, nil

	case providerErrorMsg:
		s.providerError = msg.error
		return a, nil

	case progressMsg:
		if msg.generation != s.generation {
			return a, nil
		}
		s.progress = msg.progress
		return a, waitForEvent(s.events)

	case generateDoneMsg:
		if msg.generation != s.generation {
			return a, nil
		}
		a.showResult(msg.response)
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			s.notice = "Copy failed: " + msg.err.Error()
		} else {
			s.notice = "Copied to clipboard"
		}
		return a, nil

	case spinner.TickMsg:
		if a.view != viewProcessing {
			return a, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.cancelGeneration()
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewCompose:
		return a.handleComposeKey(msg)
	case viewProcessing:
		if key.Matches(msg, keys.Quit) {
			a.cancelGeneration()
			a.view = viewCompose
		}
	case viewResult:
		return a.handleResultKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Enter) {
			a.view = viewCompose
		}
	case viewError:
		return a.handleErrorKey(msg)
	}

	return nil
}

func (a *App) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		return a.submit()

	case key.Matches(msg, keys.Tab):
		a.setFocus((s.focus + 1) % fieldCount)
		return nil

	case key.Matches(msg, keys.Back):
		a.setFocus((s.focus + fieldCount - 1) % fieldCount)
		return nil

	case msg.String() == "ctrl+o":
		s.offline = !s.offline
		return nil
	}

	switch s.focus {
	case fieldTask:
		switch {
		case key.Matches(msg, keys.Left):
			s.taskIndex = wrap(s.taskIndex-1, len(s.tasks))
		case key.Matches(msg, keys.Right):
			s.taskIndex = wrap(s.taskIndex+1, len(s.tasks))
		}
		s.input.Placeholder = s.placeholder()
		return nil

	case fieldPlatform:
		switch {
		case key.Matches(msg, keys.Left):
			s.platIndex = wrap(s.platIndex-1, len(s.platforms))
		case key.Matches(msg, keys.Right):
			s.platIndex = wrap(s.platIndex+1, len(s.platforms))
		}
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (a *App) setFocus(f composeField) {
	a.state.focus = f
	if f == fieldKeywords {
		a.state.input.Focus()
	} else {
		a.state.input.Blur()
	}
}

func wrap(i, n int) int {
	return (i%n + n) % n
}

// submit validates the compose form and starts generation. Input starting
// with "/" is a command.
func (a *App) submit() tea.Cmd {
	s := a.state
	raw := strings.TrimSpace(s.input.Value())

	if strings.HasPrefix(raw, "/") {
		return a.runCommand(strings.ToLower(raw))
	}

	req := s.request()
	if err := engine.ValidateRequest(req); err != nil {
		s.inputError = strings.TrimPrefix(err.Error(), engine.ErrInvalidInput.Error()+": ")
		return nil
	}
	s.inputError = ""
	return a.generate(req)
}

func (a *App) runCommand(cmd string) tea.Cmd {
	s := a.state
	s.input.Reset()

	switch cmd {
	case "/help", "/h":
		a.view = viewHelp
	case "/settings", "/s":
		a.openSettings()
	case "/offline", "/o":
		s.offline = !s.offline
	case "/quit", "/q":
		a.quitting = true
		return tea.Quit
	default:
		s.inputError = "unknown command " + cmd + ", try /help"
	}
	return nil
}

// generate runs the engine in the background and streams its progress
// back as messages
func (a *App) generate(req engine.Request) tea.Cmd {
	s := a.state
	s.lastReq = req
	s.notice = ""

	if s.offline {
		a.showResult(s.engine.Offline(req))
		return nil
	}

	s.generation++
	gen := s.generation
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	events := make(chan tea.Msg, 16)
	s.events = events
	s.progress = engine.Progress{}
	a.view = viewProcessing

	eng := s.engine
	go func() {
		defer close(events)
		defer cancel()

		send := func(msg tea.Msg) {
			select {
			case events <- msg:
			case <-ctx.Done():
			}
		}
		resp := eng.GenerateWithProgress(ctx, req, func(p engine.Progress) {
			send(progressMsg{generation: gen, progress: p})
		})
		send(generateDoneMsg{generation: gen, response: resp})
	}()

	return tea.Batch(waitForEvent(events), s.spinner.Tick)
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// cancelGeneration abandons the running request, if any
func (a *App) cancelGeneration() {
	s := a.state
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
}

func (a *App) showResult(resp engine.Response) {
	s := a.state
	s.cancel = nil
	s.response = resp
	s.resultView.SetContent(resp.Text())
	s.resultView.GotoTop()
	a.view = viewResult
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch msg.String() {
	case "c", "y":
		return a.copyResult()
	case "r":
		return a.generate(s.lastReq)
	case "o":
		s.notice = ""
		a.showResult(s.engine.Offline(s.lastReq))
		return nil
	case "s":
		a.openSettings()
		return nil
	case "n", "esc":
		s.input.Reset()
		s.notice = ""
		a.setFocus(fieldKeywords)
		a.view = viewCompose
		return textinput.Blink
	}

	var cmd tea.Cmd
	s.resultView, cmd = s.resultView.Update(msg)
	return cmd
}

func (a *App) copyResult() tea.Cmd {
	text := a.state.response.Text()
	copyFn := a.copy
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "s":
		if !a.state.needsSetup {
			a.openSettings()
		}
	case "n", "esc", "enter":
		a.state.fatalError = nil
		a.view = viewCompose
		if a.state.needsSetup {
			a.view = viewSetup
		}
	}
	return nil
}

// saveConfig writes the config and reports the outcome with done
func (a *App) saveConfig(done tea.Msg) tea.Cmd {
	cfg := *a.state.config
	path := a.state.configPath
	return func() tea.Msg {
		var err error
		if path != "" {
			err = cfg.SaveTo(path)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return saveErrorMsg{fmt.Errorf("saving config: %w", err)}
		}
		return done
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderCompose()
	}
}
