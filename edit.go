package main

// BeginEdit starts editing the label of the selected block or port and
// returns its current text. The entity can't be moved until the edit ends.
func (g *Gesture) BeginEdit() (string, bool) {
	if g.mode != ModeIdle {
		return "", false
	}
	ref, ok := g.selection.Active()
	if !ok {
		return "", false
	}
	label, ok := g.diagram.Label(ref)
	if !ok {
		return "", false
	}
	g.editing = ref
	g.mode = ModeEditingText
	g.diagram.events.Emit(ref, EventEditingStarted)
	g.log.Debug("editing", "entity", ref)
	return label, true
}

func (g *Gesture) Editing() (EntityRef, bool) {
	return g.editing, g.mode == ModeEditingText
}

// CommitEdit stores text as the edited label and ends the edit.
func (g *Gesture) CommitEdit(text string) bool {
	if g.mode != ModeEditingText {
		return false
	}
	ref := g.editing
	g.EndEdit()
	if !g.diagram.SetLabel(ref, text) {
		return false
	}
	g.log.Info("label changed", "entity", ref, "label", text)
	return true
}

// EndEdit leaves editing mode without touching the label.
func (g *Gesture) EndEdit() {
	if g.mode != ModeEditingText {
		return
	}
	ref := g.editing
	g.editing = EntityRef{}
	g.mode = ModeIdle
	g.diagram.events.Emit(ref, EventEditingEnded)
	g.diagram.scene.Invalidate()
}
