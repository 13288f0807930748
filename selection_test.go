package main

import "testing"

func TestSelectionAtMostOne(t *testing.T) {
	d, _ := newTestDiagram()
	s := NewSelection(d)
	a := d.CreateBlock(BlockParams{})
	b := d.CreateBlock(BlockParams{})

	var deselected []EntityRef
	d.events.On(a.ID, EventDeselected, func(ref EntityRef) { deselected = append(deselected, ref) })

	s.Select(a.Ref())
	s.Select(b.Ref())

	if !s.Is(b.Ref()) || s.Is(a.Ref()) {
		t.Errorf("active = %v", s.active)
	}
	if len(deselected) != 1 || deselected[0] != a.Ref() {
		t.Errorf("deselected = %v", deselected)
	}
}

func TestSelectDeadEntity(t *testing.T) {
	d, _ := newTestDiagram()
	s := NewSelection(d)
	b := d.CreateBlock(BlockParams{})
	d.Delete(b.Ref())

	s.Select(b.Ref())
	if _, ok := s.Active(); ok {
		t.Error("selected a deleted block")
	}
}

func TestCascadeClearsSelectedPort(t *testing.T) {
	d, _ := newTestDiagram()
	s := NewSelection(d)
	b := d.CreateBlock(BlockParams{})
	p, _ := d.CreatePort(b.Ref(), SideOutput, PortParams{})
	s.Select(p.Ref())

	d.Delete(b.Ref())

	if _, ok := s.Active(); ok {
		t.Error("selection points at a port removed by cascade")
	}
}

func TestDeleteSelected(t *testing.T) {
	tests := []struct {
		name string
		kind EntityKind
	}{
		{name: "block", kind: KindBlock},
		{name: "port", kind: KindPort},
		{name: "line", kind: KindLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDiagram()
			s := NewSelection(d)
			b := d.CreateBlock(BlockParams{})
			p, _ := d.CreatePort(b.Ref(), SideInput, PortParams{})
			l := d.StartLine(Point{})
			d.FinishLine(l.ID)

			target := map[EntityKind]EntityRef{KindBlock: b.Ref(), KindPort: p.Ref(), KindLine: l.Ref()}[tt.kind]
			s.Select(target)
			if !s.DeleteSelected() {
				t.Fatal("DeleteSelected() = false")
			}
			if d.Exists(target) {
				t.Errorf("%v still exists", target)
			}
			if _, ok := s.Active(); ok {
				t.Error("selection not cleared")
			}
			if s.DeleteSelected() {
				t.Error("second DeleteSelected() = true")
			}
		})
	}
}
