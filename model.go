package main

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const noTargetMessage = "Please select a block first."

type model struct {
	width          int
	height         int
	editor         *Editor
	scene          *termScene
	config         *Config
	log            *log.Logger
	prompt         *prompt
	labelInput     textinput.Model
	help           bool
	errorMessage   string
	successMessage string
}

func newModel(config *Config, logger *log.Logger) *model {
	scene := newTermScene(config.View.CellWidth, config.View.CellHeight)
	editor := NewEditor(scene, logger)
	scene.bind(editor)

	input := textinput.New()
	input.Prompt = "Label: "
	input.CharLimit = 64
	input.Width = 32

	return &model{
		editor:     editor,
		scene:      scene,
		config:     config,
		log:        logger,
		labelInput: input,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

// canvasHeight leaves the last row for the status line.
func (m *model) canvasHeight() int {
	return max(m.height-1, 1)
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scene.Invalidate()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.handlePromptKey(msg)
		}
		if _, editing := m.editor.Editing(); editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.scene.cellToWorld(msg.X, msg.Y)
	// A release always ends the gesture, even one started before a prompt
	// or the help screen opened.
	if msg.Action == tea.MouseActionRelease {
		m.editor.PointerUp(p)
		return m, nil
	}
	if m.prompt != nil || m.help {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y >= m.canvasHeight() {
			return m, nil
		}
		if _, editing := m.editor.Editing(); editing {
			m.commitLabel()
		}
		m.clearMessages()
		m.editor.PointerDown(p)
	case tea.MouseActionMotion:
		m.editor.PointerMove(p)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.help {
		if key == "?" || key == "esc" || key == "q" {
			m.help = false
		}
		return m, nil
	}

	m.clearMessages()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.help = true
	case "b":
		m.startBlockPrompt()
		return m, textinput.Blink
	case "i":
		m.startPortPrompt(SideInput)
		return m, textinput.Blink
	case "o":
		m.startPortPrompt(SideOutput)
		return m, textinput.Blink
	case "l":
		if !m.editor.AddLine() {
			m.errorMessage = "Finish the current gesture first."
		}
	case "d", "delete", "backspace":
		m.editor.DeleteSelected()
	case "e", "enter":
		label, ok := m.editor.BeginEdit()
		if !ok {
			m.errorMessage = "Select a block or port to edit."
			return m, nil
		}
		m.labelInput.SetValue(label)
		m.labelInput.CursorEnd()
		return m, m.labelInput.Focus()
	case "+", "=":
		m.editor.ScaleSelected(scaleStep)
	case "-", "_":
		m.editor.ScaleSelected(-scaleStep)
	case "esc":
		m.editor.Selection().Clear()
	case "x":
		m.exportPNG()
	default:
		m.handleNudge(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.commitLabel()
		return m, nil
	case "esc":
		m.editor.CancelEdit()
		m.labelInput.Blur()
		return m, nil
	case "ctrl+v":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = "Clipboard unavailable"
			m.log.Warn("clipboard read failed", "err", err)
			return m, nil
		}
		m.labelInput.SetValue(m.labelInput.Value() + cleanClipboardText(text))
		m.labelInput.CursorEnd()
		return m, nil
	}
	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

func (m *model) commitLabel() {
	m.editor.CommitEdit(m.labelInput.Value())
	m.labelInput.Blur()
}

func (m *model) exportPNG() {
	path, err := m.config.ExportPath(exportFilename(time.Now()))
	if err == nil {
		err = ExportPNG(m.editor.Diagram(), path)
	}
	switch {
	case errors.Is(err, errNothingToExport):
		m.errorMessage = "Nothing to export"
	case err != nil:
		m.errorMessage = "Export failed: " + err.Error()
		m.log.Error("export failed", "err", err)
	default:
		m.successMessage = "Exported " + path
		m.log.Info("exported", "path", path)
	}
}
