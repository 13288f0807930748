package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptField struct {
	label string
	value string
}

// prompt asks for a fixed list of values one at a time, each prefilled
// with its default. done receives the raw answers in field order.
type prompt struct {
	title  string
	fields []promptField
	step   int
	values []string
	input  textinput.Model
	done   func(m *model, values []string)
}

func newPrompt(title string, fields []promptField, done func(m *model, values []string)) *prompt {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 32
	p := &prompt{
		title:  title,
		fields: fields,
		values: make([]string, 0, len(fields)),
		input:  input,
		done:   done,
	}
	p.focusStep()
	return p
}

func (p *prompt) current() promptField {
	return p.fields[p.step]
}

func (p *prompt) focusStep() {
	f := p.current()
	p.input.Prompt = f.label + ": "
	p.input.Placeholder = f.value
	p.input.SetValue(f.value)
	p.input.CursorEnd()
	p.input.Focus()
}

// submit records the current answer and reports whether that was the last one.
func (p *prompt) submit() bool {
	p.values = append(p.values, p.input.Value())
	p.step++
	if p.step >= len(p.fields) {
		p.input.Blur()
		return true
	}
	p.focusStep()
	return false
}

func (m *model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.prompt = nil
		return m, nil
	case "enter":
		p := m.prompt
		if p.submit() {
			m.prompt = nil
			p.done(m, p.values)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m *model) startBlockPrompt() {
	d := m.config.BlockDefaults()
	m.prompt = newPrompt("New block", []promptField{
		{label: "Color", value: d.Color},
		{label: "Width", value: formatSize(d.Width)},
		{label: "Height", value: formatSize(d.Height)},
		{label: "Text", value: d.Label},
	}, func(m *model, values []string) {
		b := m.editor.AddBlock(blockParamsFrom(values, d))
		m.successMessage = "Added " + b.Label
	})
}

func (m *model) startPortPrompt(side Side) {
	if ref, ok := m.editor.Selection().Active(); !ok || ref.Kind != KindBlock {
		m.errorMessage = noTargetMessage
		return
	}
	size := m.config.Port.Size
	m.prompt = newPrompt("New "+side.String()+" port", []promptField{
		{label: "Label", value: defaultPortLabel(side)},
		{label: "Size", value: formatSize(size)},
	}, func(m *model, values []string) {
		p, err := m.editor.AddPort(side, portParamsFrom(values, side, size))
		if err != nil {
			m.errorMessage = noTargetMessage
			return
		}
		m.successMessage = "Added " + side.String() + " port " + p.Label
	})
}
