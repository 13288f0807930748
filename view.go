package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")

	styleMode    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

func (m *model) View() string {
	if m.help {
		return m.helpView()
	}
	width := max(m.width, 1)
	lines := m.scene.Render(width, m.canvasHeight())
	return strings.Join(lines, "\n") + "\n" + m.statusLine()
}

func (m *model) statusLine() string {
	if m.prompt != nil {
		return styleTitle.Render(m.prompt.title) + "  " + m.prompt.input.View()
	}
	if _, editing := m.editor.Editing(); editing {
		return styleMode.Render(m.editor.Mode().String()) + "  " + m.labelInput.View()
	}

	parts := []string{styleMode.Render(m.editor.Mode().String())}
	if m.scene.cursor != CursorDefault {
		parts = append(parts, styleDim.Render("cursor:"+m.scene.cursor.String()))
	}
	if ref, ok := m.editor.Selection().Active(); ok {
		parts = append(parts, m.describe(ref))
	}
	switch {
	case m.errorMessage != "":
		parts = append(parts, styleError.Render(m.errorMessage))
	case m.successMessage != "":
		parts = append(parts, styleSuccess.Render(m.successMessage))
	default:
		parts = append(parts, styleDim.Render("? for help"))
	}
	return strings.Join(parts, "  ")
}

func (m *model) describe(ref EntityRef) string {
	d := m.editor.Diagram()
	switch ref.Kind {
	case KindBlock:
		if b, ok := d.Block(ref.ID); ok {
			return fmt.Sprintf("block %q (%d ports)", b.Label, len(b.Ports))
		}
	case KindPort:
		if p, ok := d.Port(ref.ID); ok {
			return fmt.Sprintf("%s port %q", p.Side, p.Label)
		}
	case KindLine:
		if l, ok := d.Line(ref.ID); ok {
			return fmt.Sprintf("line (%.0f,%.0f)-(%.0f,%.0f)", l.Start.X, l.Start.Y, l.End.X, l.End.Y)
		}
	}
	return ref.String()
}

func (m *model) helpView() string {
	rows := [][2]string{
		{"b", "add block"},
		{"i / o", "add input / output port to the selected block"},
		{"l", "draw a line: press, drag, release"},
		{"click", "select; drag to move blocks and lines"},
		{"e / enter", "edit the selected label (ctrl+v pastes)"},
		{"arrows", "nudge the selection (shift: faster)"},
		{"+ / -", "widen / narrow the selected block"},
		{"d / delete", "delete the selection"},
		{"esc", "deselect"},
		{"x", "export PNG"},
		{"?", "close help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render("blockdraw"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(styleMode.Render(fmt.Sprintf("  %-12s", r[0])))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return b.String()
}
