package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionDigLeft)

	if !f.Has(ActionLeft) {
		t.Error("ActionLeft should be held after Set")
	}
	if !f.Has(ActionDigLeft) {
		t.Error("ActionDigLeft should be held after Set")
	}
	if f.Has(ActionRight) {
		t.Error("ActionRight was never set")
	}
}

func TestInputFrameConsume(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDigRight)
	f.Set(ActionRight)

	f.Consume(ActionDigRight)

	if f.Has(ActionDigRight) {
		t.Error("Consumed action should no longer be held")
	}
	if !f.Has(ActionRight) {
		t.Error("Consume must not affect other actions")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionJump)
	f.Clear()

	if f.Has(ActionUp) || f.Has(ActionJump) {
		t.Error("Clear should release all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-value frame must be safe to query and set.
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate and store")
	}
}
