package main

// Selection tracks the one active entity, if any. Selection changes are
// announced to the entity's listeners so it can restyle itself.
type Selection struct {
	active  EntityRef
	diagram *Diagram
}

func NewSelection(d *Diagram) *Selection {
	s := &Selection{diagram: d}
	d.OnRemove(func(ref EntityRef) {
		if s.active == ref {
			s.active = EntityRef{}
		}
	})
	return s
}

func (s *Selection) Active() (EntityRef, bool) {
	return s.active, !s.active.IsZero()
}

func (s *Selection) Is(ref EntityRef) bool {
	return !ref.IsZero() && s.active == ref
}

func (s *Selection) Select(ref EntityRef) {
	if s.active == ref {
		return
	}
	s.Clear()
	if !s.diagram.Exists(ref) {
		return
	}
	s.active = ref
	s.diagram.events.Emit(ref, EventSelected)
	s.diagram.scene.Invalidate()
}

func (s *Selection) Clear() {
	if s.active.IsZero() {
		return
	}
	prev := s.active
	s.active = EntityRef{}
	s.diagram.events.Emit(prev, EventDeselected)
	s.diagram.scene.Invalidate()
}

// DeleteSelected deletes the active entity and clears the selection.
// With nothing selected it does nothing and reports false.
func (s *Selection) DeleteSelected() bool {
	ref, ok := s.Active()
	if !ok {
		return false
	}
	s.active = EntityRef{}
	return s.diagram.Delete(ref)
}
