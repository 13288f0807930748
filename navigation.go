package main

// handleNudge moves the selected block or line one cell per step.
func (m *model) handleNudge(key string, speed int) bool {
	dx, dy := 0.0, 0.0
	switch key {
	case "left", "shift+left":
		dx = -m.scene.cellWidth
	case "right", "shift+right":
		dx = m.scene.cellWidth
	case "up", "shift+up":
		dy = -m.scene.cellHeight
	case "down", "shift+down":
		dy = m.scene.cellHeight
	default:
		return false
	}
	return m.editor.Nudge(dx*float64(speed), dy*float64(speed))
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
