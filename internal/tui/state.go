package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/engine"
)

// composeField is the focused control on the compose screen
type composeField int

const (
	fieldKeywords composeField = iota
	fieldTask
	fieldPlatform
	fieldCount
)

type state struct {
	// Config
	config     *config.Config
	configPath string
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Compose
	input      textinput.Model
	focus      composeField
	taskIndex  int
	platIndex  int
	inputError string
	offline    bool
	tasks      []catalog.TaskCategory
	platforms  []catalog.PlatformID

	// Processing
	generation int
	events     <-chan tea.Msg
	cancel     context.CancelFunc
	progress   engine.Progress
	spinner    spinner.Model
	lastReq    engine.Request

	// Result
	response   engine.Response
	resultView viewport.Model
	notice     string

	// Settings
	settingsMode     string
	settingsSelected int

	// Engine
	engine        *engine.Engine
	providerReady bool
	providerError error
	fatalError    error
}

func newState() *state {
	input := textinput.New()
	input.CharLimit = 500
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	s := &state{
		input:       input,
		apiKeyInput: apiKey,
		tasks:       catalog.TaskCategories(),
		platforms:   catalog.Platforms(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		resultView:  viewport.New(70, 20),
	}
	s.input.Placeholder = s.placeholder()
	return s
}

func (s *state) task() catalog.TaskCategory {
	return s.tasks[s.taskIndex]
}

func (s *state) platform() catalog.PlatformID {
	return s.platforms[s.platIndex]
}

// placeholder shows the example keywords for the selected task
func (s *state) placeholder() string {
	return catalog.LookupTaskTemplate(s.task()).Placeholder
}

func (s *state) request() engine.Request {
	return engine.Request{
		Keywords: s.input.Value(),
		TaskType: s.task().String(),
		Platform: s.platform().String(),
	}
}
