package tilemap

import (
	"math/rand"
	"testing"
	"time"
)

func TestRunOnceConsumesEvent(t *testing.T) {
	host := newMockHost()
	me := NewMapEvent(0, 0, nil)
	me.RunOnce = true
	me.SetEvent(GiveGold{Amount: 5})

	me.Trigger(host)
	me.Trigger(host)

	if host.gold != 5 {
		t.Errorf("gold = %d, want 5 (second trigger must be a no-op)", host.gold)
	}
	if me.HasEvent() {
		t.Error("run-once event should be cleared after triggering")
	}
}

func TestRepeatableEventTriggersEveryTime(t *testing.T) {
	host := newMockHost()
	me := NewMapEvent(0, 0, nil)
	me.SetEvent(ShowMessage{Text: "read me"})

	for i := 0; i < 3; i++ {
		me.Trigger(host)
	}

	if len(host.log) != 3 {
		t.Errorf("log has %d entries, want 3", len(host.log))
	}
	if !me.HasEvent() {
		t.Error("repeatable event should stay installed")
	}
}

func TestInactiveEventDoesNotTrigger(t *testing.T) {
	host := newMockHost()
	me := NewMapEvent(0, 0, nil)
	me.Active = false
	me.SetEvent(GiveGold{Amount: 5})

	me.Trigger(host)

	if host.gold != 0 {
		t.Error("inactive event must not run")
	}
	if !me.HasEvent() {
		t.Error("inactive trigger must not consume the event")
	}
}

func TestSetEventReplacesInstalled(t *testing.T) {
	host := newMockHost()
	me := NewMapEvent(0, 0, nil)
	me.SetEvent(ShowMessage{Text: "old"})
	me.SetEvent(GiveGold{Amount: 1})

	me.Trigger(host)

	if len(host.log) != 1 || host.log[0] != "gold" {
		t.Errorf("log = %v, want only the replacement event's mutation", host.log)
	}
}

func TestUpdateWaitsForMoveSpeed(t *testing.T) {
	me := NewMapEvent(0, 0, nil)
	me.SetMovement(RandomWalk{}, 100*time.Millisecond, rand.New(rand.NewSource(1)))

	if dx, dy := me.Update(40 * time.Millisecond); dx != 0 || dy != 0 {
		t.Errorf("step before timer fires = (%d, %d), want (0, 0)", dx, dy)
	}
	if dx, dy := me.Update(40 * time.Millisecond); dx != 0 || dy != 0 {
		t.Errorf("step before timer fires = (%d, %d), want (0, 0)", dx, dy)
	}

	// Third update crosses the threshold; the timer resets.
	me.Update(40 * time.Millisecond)
	if dx, dy := me.Update(40 * time.Millisecond); dx != 0 || dy != 0 {
		t.Errorf("step right after reset = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestUpdateStepsAreAxisAligned(t *testing.T) {
	me := NewMapEvent(0, 0, nil)
	me.SetMovement(RandomWalk{}, time.Millisecond, rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		dx, dy := me.Update(time.Millisecond)
		if dx != 0 && dy != 0 {
			t.Fatalf("diagonal step (%d, %d) on iteration %d", dx, dy, i)
		}
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("step (%d, %d) exceeds one tile on iteration %d", dx, dy, i)
		}
	}
}

func TestUpdateWithoutMovementNeverSteps(t *testing.T) {
	me := NewMapEvent(0, 0, nil)

	for i := 0; i < 10; i++ {
		if dx, dy := me.Update(time.Hour); dx != 0 || dy != 0 {
			t.Fatalf("static event stepped (%d, %d)", dx, dy)
		}
	}
}

func TestUpdateStreamIsDeterministic(t *testing.T) {
	steps := func(seed int64) [][2]int {
		me := NewMapEvent(0, 0, nil)
		me.SetMovement(RandomWalk{}, time.Millisecond, rand.New(rand.NewSource(seed)))
		var out [][2]int
		for i := 0; i < 50; i++ {
			dx, dy := me.Update(time.Millisecond)
			out = append(out, [2]int{dx, dy})
		}
		return out
	}

	a, b := steps(7), steps(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs between identical seeds: %v != %v", i, a[i], b[i])
		}
	}
}
