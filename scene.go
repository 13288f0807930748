package main

// Scene is everything the editor needs from whatever draws the diagram.
// The model owns geometry; a scene reads it back when it renders.
type Scene interface {
	Add(ref EntityRef)
	Remove(ref EntityRef)
	// Invalidate marks the scene dirty so the next frame redraws it.
	Invalidate()
	HitTest(p Point) (EntityRef, bool)
	SetCursor(c Cursor)
}

// hitTest finds the topmost interactive entity under p. Ports win over
// blocks, blocks over lines, and later entities over earlier ones.
// Lines still being drawn are never hit.
func hitTest(d *Diagram, p Point) (EntityRef, bool) {
	blocks := d.Blocks()
	for i := len(blocks) - 1; i >= 0; i-- {
		ports := blocks[i].Ports
		for j := len(ports) - 1; j >= 0; j-- {
			if ports[j].Bounds().Contains(p) {
				return ports[j].Ref(), true
			}
		}
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		if blocks[i].Bounds().Contains(p) {
			return blocks[i].Ref(), true
		}
	}
	lines := d.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		l := lines[i]
		if l.InProgress {
			continue
		}
		if pointSegmentDistance(p, l.Start, l.End) <= hitTolerance+l.StrokeWidth/2 {
			return l.Ref(), true
		}
	}
	return EntityRef{}, false
}
