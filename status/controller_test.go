package status

import (
	"testing"
	"time"
)

type fakeLED struct {
	colors []RGB
}

func (f *fakeLED) WriteColor(c RGB) error {
	f.colors = append(f.colors, c)
	return nil
}

func TestControllerStartsInit(t *testing.T) {
	c := NewController(&fakeLED{})
	if c.State() != Init {
		t.Fatalf("got %v, want Init", c.State())
	}
}

func TestControllerSetState(t *testing.T) {
	c := NewController(&fakeLED{})
	c.SetState(Ready)
	if c.State() != Ready {
		t.Fatalf("got %v, want Ready", c.State())
	}
}

func TestControllerTriggerError(t *testing.T) {
	c := NewController(&fakeLED{})
	c.SetState(Ready)
	c.TriggerError(PS2Err)
	if c.State() != PS2Err {
		t.Fatalf("got %v, want PS2Err", c.State())
	}
}

func TestControllerReadyActivityWindow(t *testing.T) {
	led := &fakeLED{}
	c := NewController(led)
	c.SetState(Ready)
	// No activity recorded: sinceLastAct should be large, so the
	// next Ready frame in Run would pick the dim color. We can't
	// call Run (it loops forever), so exercise the decision
	// directly through TriggerActivity and sinceLastAct instead.
	if c.sinceLastAct() < activityWindow {
		t.Fatalf("expected no recent activity by default")
	}
	c.TriggerActivity()
	if c.sinceLastAct() >= activityWindow {
		t.Fatalf("expected recent activity right after TriggerActivity")
	}
}

func TestControllerPS2ErrAutoClearsEventually(t *testing.T) {
	c := NewController(&fakeLED{})
	c.TriggerError(PS2Err)
	if c.sinceLastAct() > ps2ErrAutoClear {
		t.Fatalf("expected fresh error to not yet be past auto-clear window")
	}
	// Simulate elapsed time by forcing lastActU into the past.
	c.lastActU.Store(time.Now().Add(-2 * ps2ErrAutoClear).UnixNano())
	if c.sinceLastAct() <= ps2ErrAutoClear {
		t.Fatalf("expected error to be past the auto-clear window")
	}
}
