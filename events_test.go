package main

import (
	"testing"

	"github.com/google/uuid"
)

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	a, b := uuid.New(), uuid.New()

	var calls []string
	d.On(a, EventMoved, func(EntityRef) { calls = append(calls, "a1") })
	d.On(a, EventMoved, func(EntityRef) { calls = append(calls, "a2") })
	d.On(a, EventScaled, func(EntityRef) { calls = append(calls, "a-scaled") })
	d.On(b, EventMoved, func(EntityRef) { calls = append(calls, "b") })

	d.Emit(EntityRef{Kind: KindBlock, ID: a}, EventMoved)
	if len(calls) != 2 || calls[0] != "a1" || calls[1] != "a2" {
		t.Fatalf("calls = %v, want [a1 a2]", calls)
	}

	d.Drop(a)
	calls = nil
	d.Emit(EntityRef{Kind: KindBlock, ID: a}, EventMoved)
	d.Emit(EntityRef{Kind: KindBlock, ID: a}, EventScaled)
	d.Emit(EntityRef{Kind: KindBlock, ID: b}, EventMoved)
	if len(calls) != 1 || calls[0] != "b" {
		t.Errorf("calls after Drop = %v, want [b]", calls)
	}
}
